package models

import (
	"errors"
	"strings"
	"testing"
)

func violations(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err=%v want *ValidationError", err)
	}
	out := map[string]string{}
	for _, v := range verr.Violations {
		out[v.Field] = v.Rule
	}
	return out
}

func TestDecode_UserDefaults(t *testing.T) {
	var u User
	if err := Decode(strings.NewReader(`{"email":"a@example.com","credentials":[{"exchange":"alpaca","api_key":"  "}]}`), &u); err != nil {
		t.Fatalf("err=%v", err)
	}
	if u.Plan != PlanFree || !u.IsActive {
		t.Fatalf("plan=%q active=%v", u.Plan, u.IsActive)
	}
	if len(u.Credentials) != 1 || !u.Credentials[0].Sandbox {
		t.Fatalf("credentials=%+v", u.Credentials)
	}
	if u.Credentials[0].APIKey != nil {
		t.Fatalf("blank api_key kept: %q", *u.Credentials[0].APIKey)
	}
}

func TestDecode_UserCredentialsDefaultEmpty(t *testing.T) {
	var u User
	if err := Decode(strings.NewReader(`{"email":"a@example.com","credentials":null}`), &u); err != nil {
		t.Fatalf("err=%v", err)
	}
	if u.Credentials == nil {
		t.Fatalf("credentials nil")
	}
}

func TestDecode_UserViolations(t *testing.T) {
	var u User
	err := Decode(strings.NewReader(`{"email":"nope","plan":"gold","credentials":[{"exchange":"mtgox"}]}`), &u)
	got := violations(t, err)
	want := map[string]string{
		"email":                   "email",
		"plan":                    "oneof",
		"credentials[0].exchange": "oneof",
	}
	for field, rule := range want {
		if got[field] != rule {
			t.Fatalf("field %s rule=%q want=%q (all=%v)", field, got[field], rule, got)
		}
	}
}

func TestDecode_ExplicitZeroKept(t *testing.T) {
	var s Signal
	if err := Decode(strings.NewReader(`{"strategy_id":"x","symbol":"BTC","side":"buy","confidence":0}`), &s); err != nil {
		t.Fatalf("err=%v", err)
	}
	if s.Confidence != 0 {
		t.Fatalf("confidence=%v want=0", s.Confidence)
	}
	var d Signal
	if err := Decode(strings.NewReader(`{"strategy_id":"x","symbol":"BTC","side":"buy"}`), &d); err != nil {
		t.Fatalf("err=%v", err)
	}
	if d.Confidence != 0.5 || d.Metadata == nil {
		t.Fatalf("defaults not applied: %+v", d)
	}
}

func TestDecode_StrategyViolations(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		field string
		rule  string
	}{
		{"missing name", `{"asset_class":"crypto","symbols":["BTC"],"timeframe":"1h"}`, "name", "required"},
		{"empty symbols", `{"name":"n","asset_class":"crypto","symbols":[],"timeframe":"1h"}`, "symbols", "min"},
		{"bad timeframe", `{"name":"n","asset_class":"crypto","symbols":["BTC"],"timeframe":"2h"}`, "timeframe", "oneof"},
		{"risk too low", `{"name":"n","asset_class":"crypto","symbols":["BTC"],"timeframe":"1h","risk_per_trade_pct":0.05}`, "risk_per_trade_pct", "gte"},
		{"too many positions", `{"name":"n","asset_class":"crypto","symbols":["BTC"],"timeframe":"1h","max_concurrent_positions":21}`, "max_concurrent_positions", "lte"},
		{"bad owner", `{"name":"n","asset_class":"crypto","symbols":["BTC"],"timeframe":"1h","owner_email":"x"}`, "owner_email", "email"},
		{"bad mode", `{"name":"n","asset_class":"crypto","symbols":["BTC"],"timeframe":"1h","mode":"yolo"}`, "mode", "oneof"},
	}
	for _, tc := range cases {
		var s Strategy
		got := violations(t, Decode(strings.NewReader(tc.body), &s))
		if got[tc.field] != tc.rule {
			t.Fatalf("%s: rule=%q want=%q (all=%v)", tc.name, got[tc.field], tc.rule, got)
		}
	}
}

func TestDecode_ReportsAllViolations(t *testing.T) {
	var tr Trade
	got := violations(t, Decode(strings.NewReader(`{"side":"hold","status":"lost"}`), &tr))
	for _, field := range []string{"broker", "symbol", "side", "qty", "status"} {
		if _, ok := got[field]; !ok {
			t.Fatalf("missing violation for %s: %v", field, got)
		}
	}
}

func TestDecode_BodyErrors(t *testing.T) {
	cases := map[string]string{
		"empty":     ``,
		"malformed": `{"broker":`,
		"type":      `{"broker":"x","payload":[1,2]}`,
	}
	for name, body := range cases {
		var evt WebhookEvent
		got := violations(t, Decode(strings.NewReader(body), &evt))
		if len(got) == 0 {
			t.Fatalf("%s: no violations", name)
		}
	}
	var evt WebhookEvent
	got := violations(t, Decode(strings.NewReader(`{"broker":"x","payload":"str"}`), &evt))
	if got["payload"] != "type" {
		t.Fatalf("violations=%v", got)
	}
}

func TestDecode_BacktestDefaults(t *testing.T) {
	var req BacktestRequest
	body := `{"strategy_code":"c","symbol":"BTC","timeframe":"1h","start":"2024-02-01T00:00:00Z","end":"2024-01-01T00:00:00Z"}`
	if err := Decode(strings.NewReader(body), &req); err != nil {
		t.Fatalf("err=%v", err)
	}
	if req.InitialCapital != DefaultInitialCapital {
		t.Fatalf("initial_capital=%v", req.InitialCapital)
	}
	var missing BacktestRequest
	got := violations(t, Decode(strings.NewReader(`{"strategy_code":"c","symbol":"BTC","timeframe":"1h"}`), &missing))
	if got["start"] != "required" || got["end"] != "required" {
		t.Fatalf("violations=%v", got)
	}
}

func TestDecode_ZeroValuesArePresent(t *testing.T) {
	var tr Trade
	if err := Decode(strings.NewReader(`{"broker":"","symbol":"","side":"buy","qty":0}`), &tr); err != nil {
		t.Fatalf("err=%v", err)
	}
	if tr.Qty == nil || *tr.Qty != 0 || tr.Broker == nil || *tr.Broker != "" {
		t.Fatalf("trade=%+v", tr)
	}

	var s Strategy
	if err := Decode(strings.NewReader(`{"name":"","asset_class":"crypto","symbols":["BTC"],"timeframe":"1h"}`), &s); err != nil {
		t.Fatalf("err=%v", err)
	}
	if s.Name == nil || *s.Name != "" {
		t.Fatalf("name=%v", s.Name)
	}

	var sig Signal
	if err := Decode(strings.NewReader(`{"strategy_id":"","symbol":"","side":"sell"}`), &sig); err != nil {
		t.Fatalf("err=%v", err)
	}

	var evt WebhookEvent
	if err := Decode(strings.NewReader(`{"broker":"","payload":{}}`), &evt); err != nil {
		t.Fatalf("err=%v", err)
	}

	var req BacktestRequest
	body := `{"strategy_code":"","symbol":"","timeframe":"1d","start":"2024-01-01T00:00:00Z","end":"2024-01-02T00:00:00Z"}`
	if err := Decode(strings.NewReader(body), &req); err != nil {
		t.Fatalf("err=%v", err)
	}
}

func TestDecode_NullIsMissing(t *testing.T) {
	var tr Trade
	got := violations(t, Decode(strings.NewReader(`{"broker":"alpaca","symbol":"AAPL","side":"buy","qty":null}`), &tr))
	if got["qty"] != "required" {
		t.Fatalf("violations=%v", got)
	}
}

func TestTradeNotional(t *testing.T) {
	price := 10.5
	tr := Trade{Qty: ptr(3.0), Price: &price}
	if got := tr.Notional().String(); got != "31.5" {
		t.Fatalf("notional=%s want=31.5", got)
	}
	if !(Trade{Qty: ptr(3.0)}).Notional().IsZero() {
		t.Fatalf("notional without price should be zero")
	}
}

func TestPlanCatalog(t *testing.T) {
	plans := PlanCatalog()
	if len(plans) != 3 {
		t.Fatalf("len=%d", len(plans))
	}
	prices := []int64{0, 49, 299}
	for i, p := range plans {
		if p.PriceMonthly.IntPart() != prices[i] {
			t.Fatalf("%s price=%s", p.Name, p.PriceMonthly)
		}
		if len(p.Features) == 0 {
			t.Fatalf("%s has no features", p.Name)
		}
	}
}
