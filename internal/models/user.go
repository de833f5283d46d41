package models

import "encoding/json"

const (
	PlanFree       = "free"
	PlanPro        = "pro"
	PlanEnterprise = "enterprise"
)

// ExchangeCredential is a broker account attached to a user.
type ExchangeCredential struct {
	Exchange   string  `json:"exchange" bson:"exchange" binding:"required,oneof=alpaca binance binanceus bybit kraken oanda ibkr polygon tradier tda paper"`
	APIKey     *string `json:"api_key" bson:"api_key"`
	APISecret  *string `json:"api_secret" bson:"api_secret"`
	Passphrase *string `json:"passphrase" bson:"passphrase"`
	AccountID  *string `json:"account_id" bson:"account_id"`
	Sandbox    bool    `json:"sandbox" bson:"sandbox"`
	Label      *string `json:"label" bson:"label"`
}

func (c *ExchangeCredential) UnmarshalJSON(b []byte) error {
	type alias ExchangeCredential
	v := alias{Sandbox: true}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	v.APIKey = nullIfBlank(v.APIKey)
	v.APISecret = nullIfBlank(v.APISecret)
	v.Passphrase = nullIfBlank(v.Passphrase)
	v.AccountID = nullIfBlank(v.AccountID)
	*c = ExchangeCredential(v)
	return nil
}

type User struct {
	ID           string               `json:"id,omitempty" bson:"_id,omitempty"`
	Email        string               `json:"email" bson:"email" binding:"required,email"`
	Name         *string              `json:"name" bson:"name"`
	Plan         string               `json:"plan" bson:"plan" binding:"oneof=free pro enterprise"`
	Organization *string              `json:"organization" bson:"organization"`
	Credentials  []ExchangeCredential `json:"credentials" bson:"credentials" binding:"dive"`
	IsActive     bool                 `json:"is_active" bson:"is_active"`
	Timestamps   `bson:",inline"`
}

func (u *User) UnmarshalJSON(b []byte) error {
	type alias User
	v := alias{
		Plan:        PlanFree,
		Credentials: []ExchangeCredential{},
		IsActive:    true,
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if v.Credentials == nil {
		v.Credentials = []ExchangeCredential{}
	}
	*u = User(v)
	return nil
}
