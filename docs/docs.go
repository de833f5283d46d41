// Package docs holds the Swagger 2.0 document served under /swagger. It is
// maintained alongside the handler annotations; `go generate ./cmd/server`
// rebuilds it with swag, and the handler tests fail when a registered route
// is missing here or a documented route is no longer registered.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "system"
                ],
                "summary": "Service banner",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/test": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "system"
                ],
                "summary": "Store diagnostics",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/service.DiagnosticsReport"
                        }
                    }
                },
                "description": "Always 200. The status field is one of not_configured, unreachable, connected, connected_with_error."
            }
        },
        "/plans": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "system"
                ],
                "summary": "Pricing plans",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Plan"
                            }
                        }
                    }
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/readyz": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Readiness check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/users": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Create user",
                "parameters": [
                    {
                        "type": "string",
                        "description": "replay-safe retry key",
                        "name": "Idempotency-Key",
                        "in": "header"
                    },
                    {
                        "description": "user",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.User"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.createdResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/handler.apiResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/handler.apiResponse"
                        }
                    }
                }
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "List users",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.User"
                            }
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "free|pro|enterprise",
                        "name": "plan",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "exact email",
                        "name": "email",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "organization",
                        "name": "organization",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "description": "active flag",
                        "name": "is_active",
                        "in": "query"
                    }
                ]
            }
        },
        "/strategies": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "strategies"
                ],
                "summary": "Create strategy",
                "parameters": [
                    {
                        "type": "string",
                        "description": "replay-safe retry key",
                        "name": "Idempotency-Key",
                        "in": "header"
                    },
                    {
                        "description": "strategie",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.Strategy"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.createdResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/handler.apiResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/handler.apiResponse"
                        }
                    }
                }
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "strategies"
                ],
                "summary": "List strategies",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Strategy"
                            }
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "draft|active|paused",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "paper|live",
                        "name": "mode",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "asset class",
                        "name": "asset_class",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "bar timeframe",
                        "name": "timeframe",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "owner email",
                        "name": "owner_email",
                        "in": "query"
                    }
                ]
            }
        },
        "/signals": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "signals"
                ],
                "summary": "Ingest signal",
                "parameters": [
                    {
                        "type": "string",
                        "description": "replay-safe retry key",
                        "name": "Idempotency-Key",
                        "in": "header"
                    },
                    {
                        "description": "signal",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.Signal"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.createdResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/handler.apiResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/handler.apiResponse"
                        }
                    }
                },
                "description": "generated_at defaults to the server time (UTC) when omitted."
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "signals"
                ],
                "summary": "List signals",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Signal"
                            }
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "strategy id",
                        "name": "strategy_id",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "symbol",
                        "name": "symbol",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "buy|sell",
                        "name": "side",
                        "in": "query"
                    }
                ]
            }
        },
        "/trades": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "trades"
                ],
                "summary": "Log trade",
                "parameters": [
                    {
                        "type": "string",
                        "description": "replay-safe retry key",
                        "name": "Idempotency-Key",
                        "in": "header"
                    },
                    {
                        "description": "trade",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.Trade"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.createdResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/handler.apiResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/handler.apiResponse"
                        }
                    }
                }
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "trades"
                ],
                "summary": "List trades",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Trade"
                            }
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "broker",
                        "name": "broker",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "strategy id",
                        "name": "strategy_id",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "symbol",
                        "name": "symbol",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "buy|sell",
                        "name": "side",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "submitted|filled|rejected|canceled|error",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "broker order id",
                        "name": "order_id",
                        "in": "query"
                    }
                ]
            }
        },
        "/webhook": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "webhooks"
                ],
                "summary": "Receive broker or alerting webhook",
                "parameters": [
                    {
                        "type": "string",
                        "description": "replay-safe retry key",
                        "name": "Idempotency-Key",
                        "in": "header"
                    },
                    {
                        "description": "webhook",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.WebhookEvent"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.createdResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/handler.apiResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/handler.apiResponse"
                        }
                    }
                },
                "description": "The payload is stored as-is."
            }
        },
        "/backtest": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "backtest"
                ],
                "summary": "Run backtest",
                "parameters": [
                    {
                        "description": "backtest",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.BacktestRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.BacktestResult"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/handler.apiResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/handler.apiResponse"
                        }
                    }
                },
                "description": "Records the request and returns placeholder metrics that do not depend on the input."
            }
        }
    },
    "definitions": {
        "handler.apiResponse": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "integer"
                },
                "message": {
                    "type": "string"
                },
                "data": {},
                "meta": {
                    "type": "object",
                    "additionalProperties": true
                }
            }
        },
        "handler.createdResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                }
            }
        },
        "models.ExchangeCredential": {
            "type": "object",
            "required": [
                "exchange"
            ],
            "properties": {
                "exchange": {
                    "type": "string",
                    "enum": [
                        "alpaca",
                        "binance",
                        "binanceus",
                        "bybit",
                        "kraken",
                        "oanda",
                        "ibkr",
                        "polygon",
                        "tradier",
                        "tda",
                        "paper"
                    ]
                },
                "api_key": {
                    "type": "string"
                },
                "api_secret": {
                    "type": "string"
                },
                "passphrase": {
                    "type": "string"
                },
                "account_id": {
                    "type": "string"
                },
                "sandbox": {
                    "type": "boolean"
                },
                "label": {
                    "type": "string"
                }
            }
        },
        "models.User": {
            "type": "object",
            "required": [
                "email"
            ],
            "properties": {
                "id": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "plan": {
                    "type": "string",
                    "enum": [
                        "free",
                        "pro",
                        "enterprise"
                    ]
                },
                "organization": {
                    "type": "string"
                },
                "credentials": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.ExchangeCredential"
                    }
                },
                "is_active": {
                    "type": "boolean"
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "models.Strategy": {
            "type": "object",
            "required": [
                "name",
                "asset_class",
                "symbols",
                "timeframe"
            ],
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "asset_class": {
                    "type": "string",
                    "enum": [
                        "forex",
                        "futures",
                        "stocks",
                        "options",
                        "crypto"
                    ]
                },
                "symbols": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "timeframe": {
                    "type": "string",
                    "enum": [
                        "1m",
                        "5m",
                        "15m",
                        "1h",
                        "4h",
                        "1d"
                    ]
                },
                "mode": {
                    "type": "string",
                    "enum": [
                        "paper",
                        "live"
                    ]
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "draft",
                        "active",
                        "paused"
                    ]
                },
                "risk_per_trade_pct": {
                    "type": "number",
                    "minimum": 0.1,
                    "maximum": 5
                },
                "max_concurrent_positions": {
                    "type": "integer",
                    "minimum": 1,
                    "maximum": 20
                },
                "code": {
                    "type": "string"
                },
                "owner_email": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "models.Signal": {
            "type": "object",
            "required": [
                "strategy_id",
                "symbol",
                "side"
            ],
            "properties": {
                "id": {
                    "type": "string"
                },
                "strategy_id": {
                    "type": "string"
                },
                "symbol": {
                    "type": "string"
                },
                "side": {
                    "type": "string",
                    "enum": [
                        "buy",
                        "sell"
                    ]
                },
                "confidence": {
                    "type": "number",
                    "minimum": 0,
                    "maximum": 1
                },
                "price": {
                    "type": "number"
                },
                "quantity": {
                    "type": "number"
                },
                "metadata": {
                    "type": "object",
                    "additionalProperties": true
                },
                "generated_at": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "models.Trade": {
            "type": "object",
            "required": [
                "broker",
                "symbol",
                "side",
                "qty"
            ],
            "properties": {
                "id": {
                    "type": "string"
                },
                "broker": {
                    "type": "string"
                },
                "strategy_id": {
                    "type": "string"
                },
                "symbol": {
                    "type": "string"
                },
                "side": {
                    "type": "string",
                    "enum": [
                        "buy",
                        "sell"
                    ]
                },
                "qty": {
                    "type": "number"
                },
                "price": {
                    "type": "number"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "submitted",
                        "filled",
                        "rejected",
                        "canceled",
                        "error"
                    ]
                },
                "order_id": {
                    "type": "string"
                },
                "error": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "models.WebhookEvent": {
            "type": "object",
            "required": [
                "broker",
                "payload"
            ],
            "properties": {
                "id": {
                    "type": "string"
                },
                "broker": {
                    "type": "string"
                },
                "payload": {
                    "type": "object",
                    "additionalProperties": true
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "models.BacktestRequest": {
            "type": "object",
            "required": [
                "strategy_code",
                "symbol",
                "timeframe",
                "start",
                "end"
            ],
            "properties": {
                "id": {
                    "type": "string"
                },
                "strategy_code": {
                    "type": "string"
                },
                "symbol": {
                    "type": "string"
                },
                "timeframe": {
                    "type": "string",
                    "enum": [
                        "1m",
                        "5m",
                        "15m",
                        "1h",
                        "4h",
                        "1d"
                    ]
                },
                "start": {
                    "type": "string"
                },
                "end": {
                    "type": "string"
                },
                "initial_capital": {
                    "type": "number"
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "models.BacktestResult": {
            "type": "object",
            "properties": {
                "total_return_pct": {
                    "type": "number"
                },
                "sharpe": {
                    "type": "number"
                },
                "max_drawdown_pct": {
                    "type": "number"
                },
                "trades": {
                    "type": "integer"
                }
            }
        },
        "models.Plan": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "price_monthly": {
                    "type": "number"
                },
                "features": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "service.DiagnosticsReport": {
            "type": "object",
            "properties": {
                "backend": {
                    "type": "string"
                },
                "database": {
                    "type": "string"
                },
                "database_url": {
                    "type": "string"
                },
                "database_name": {
                    "type": "string"
                },
                "database_driver": {
                    "type": "string"
                },
                "connection_status": {
                    "type": "string"
                },
                "collections": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "not_configured",
                        "unreachable",
                        "connected",
                        "connected_with_error"
                    ]
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "AI Hedge SaaS API",
	Description:      "Users, strategies, signals, trades, webhooks and a placeholder backtest endpoint.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
