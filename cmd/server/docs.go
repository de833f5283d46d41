package main

//go:generate swag init -g cmd/server/main.go -o docs

// @title           AI Hedge SaaS API
// @version         0.1.0
// @description     Users, strategies, signals, trades, webhooks and a placeholder backtest endpoint.
// @host            localhost:8000
// @BasePath        /
// @schemes         http
