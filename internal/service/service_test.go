package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"hedgeapi/internal/backtest"
	"hedgeapi/internal/bus"
	"hedgeapi/internal/cache"
	"hedgeapi/internal/models"
	"hedgeapi/internal/repository"
	memoryrepository "hedgeapi/internal/repository/memory"
)

type stubRepo struct {
	insertErr error
	findErr   error
	namesErr  error
	pingErr   error
	names     []string
}

func (r *stubRepo) Insert(context.Context, string, any) (string, error) {
	return "", r.insertErr
}

func (r *stubRepo) Find(context.Context, string, repository.Filter, int64, any) error {
	return r.findErr
}

func (r *stubRepo) CollectionNames(context.Context) ([]string, error) {
	return r.names, r.namesErr
}

func (r *stubRepo) Ping(context.Context) error {
	return r.pingErr
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []bus.Event
}

func (p *recordingPublisher) Publish(_ context.Context, evt bus.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func ptr[T any](v T) *T { return &v }

func validStrategy() *models.Strategy {
	return &models.Strategy{
		Name:                   ptr("mean reversion"),
		AssetClass:             "crypto",
		Symbols:                []string{"BTCUSDT"},
		Timeframe:              "1h",
		Mode:                   models.StrategyModePaper,
		Status:                 models.StrategyStatusDraft,
		RiskPerTradePct:        1.0,
		MaxConcurrentPositions: 3,
	}
}

func TestCreate_PersistsAndReturnsID(t *testing.T) {
	store := memoryrepository.New()
	svc := &DocumentService{Repo: store}
	res, err := svc.Create(context.Background(), models.CollectionStrategy, validStrategy(), CreateOptions{})
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if res.ID == "" || res.Replayed {
		t.Fatalf("res=%+v", res)
	}
	if n := store.Len(models.CollectionStrategy); n != 1 {
		t.Fatalf("len=%d want=1", n)
	}
}

func TestCreate_InvalidRecordNotPersisted(t *testing.T) {
	store := memoryrepository.New()
	svc := &DocumentService{Repo: store}
	s := validStrategy()
	s.RiskPerTradePct = 10
	_, err := svc.Create(context.Background(), models.CollectionStrategy, s, CreateOptions{})
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err=%v want ValidationError", err)
	}
	if n := store.Len(models.CollectionStrategy); n != 0 {
		t.Fatalf("len=%d want=0", n)
	}
}

func TestCreate_NoStore(t *testing.T) {
	svc := &DocumentService{}
	_, err := svc.Create(context.Background(), models.CollectionStrategy, validStrategy(), CreateOptions{})
	if !repository.IsUnavailable(err) {
		t.Fatalf("err=%v want unavailable", err)
	}
}

func TestCreate_StorageErrorSurfaces(t *testing.T) {
	svc := &DocumentService{Repo: &stubRepo{insertErr: errors.New("duplicate key")}}
	_, err := svc.Create(context.Background(), models.CollectionStrategy, validStrategy(), CreateOptions{})
	var se *repository.StorageError
	if !errors.As(err, &se) {
		t.Fatalf("err=%v want StorageError", err)
	}
	if repository.IsUnavailable(err) {
		t.Fatalf("storage error classified as unavailable")
	}
}

func TestCreate_DeadlineIsUnavailable(t *testing.T) {
	svc := &DocumentService{Repo: &stubRepo{insertErr: context.DeadlineExceeded}}
	_, err := svc.Create(context.Background(), models.CollectionStrategy, validStrategy(), CreateOptions{})
	if !repository.IsUnavailable(err) {
		t.Fatalf("err=%v want unavailable", err)
	}
}

func TestCreate_IdempotencyKeyReplays(t *testing.T) {
	store := memoryrepository.New()
	svc := &DocumentService{Repo: store, Cache: cache.NewMemoryStore()}
	ctx := context.Background()
	first, err := svc.Create(ctx, models.CollectionStrategy, validStrategy(), CreateOptions{IdempotencyKey: "k1"})
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	second, err := svc.Create(ctx, models.CollectionStrategy, validStrategy(), CreateOptions{IdempotencyKey: "k1"})
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if second.ID != first.ID || !second.Replayed {
		t.Fatalf("second=%+v first=%+v", second, first)
	}
	if n := store.Len(models.CollectionStrategy); n != 1 {
		t.Fatalf("len=%d want=1", n)
	}
	// Keys are scoped per collection.
	other, err := svc.Create(ctx, models.CollectionWebhookEvent, &models.WebhookEvent{
		Broker:  ptr("tradingview"),
		Payload: map[string]any{"a": 1},
	}, CreateOptions{IdempotencyKey: "k1"})
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if other.Replayed {
		t.Fatalf("cross-collection replay")
	}
}

func TestListRecords_EmptyCollection(t *testing.T) {
	svc := &DocumentService{Repo: memoryrepository.New()}
	items, err := ListRecords[models.User](context.Background(), svc, models.CollectionUser, nil, 50)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("items=%v want empty non-nil", items)
	}
}

func TestListRecords_DegradesWhenUnavailable(t *testing.T) {
	for name, svc := range map[string]*DocumentService{
		"no store":    {},
		"unreachable": {Repo: &stubRepo{findErr: repository.ErrStorageUnavailable}},
	} {
		items, err := ListRecords[models.User](context.Background(), svc, models.CollectionUser, nil, 50)
		if err != nil {
			t.Fatalf("%s: err=%v", name, err)
		}
		if items == nil || len(items) != 0 {
			t.Fatalf("%s: items=%v", name, items)
		}
	}
}

func TestListRecords_QueryErrorSurfaces(t *testing.T) {
	svc := &DocumentService{Repo: &stubRepo{findErr: errors.New("bad query")}}
	_, err := ListRecords[models.User](context.Background(), svc, models.CollectionUser, nil, 50)
	var se *repository.StorageError
	if !errors.As(err, &se) {
		t.Fatalf("err=%v want StorageError", err)
	}
}

func TestListRecords_LimitAndFilter(t *testing.T) {
	store := memoryrepository.New()
	svc := &DocumentService{Repo: store}
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		plan := models.PlanFree
		if i%2 == 0 {
			plan = models.PlanPro
		}
		u := &models.User{Email: "u@example.com", Plan: plan, IsActive: true, Credentials: []models.ExchangeCredential{}}
		if _, err := svc.Create(ctx, models.CollectionUser, u, CreateOptions{}); err != nil {
			t.Fatalf("err=%v", err)
		}
	}
	items, err := ListRecords[models.User](ctx, svc, models.CollectionUser, nil, 2)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len=%d want=2", len(items))
	}
	pro, err := ListRecords[models.User](ctx, svc, models.CollectionUser, repository.Filter{"plan": models.PlanPro}, 50)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(pro) != 3 {
		t.Fatalf("pro=%d want=3", len(pro))
	}
	for _, u := range pro {
		if u.ID == "" || u.CreatedAt == nil {
			t.Fatalf("missing store fields: %+v", u)
		}
	}
}

func TestSignalIngest_BackfillsGeneratedAt(t *testing.T) {
	store := memoryrepository.New()
	pub := &recordingPublisher{}
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := &SignalService{
		Docs: &DocumentService{Repo: store, Publisher: pub},
		Now:  func() time.Time { return fixed },
	}
	sig := &models.Signal{StrategyID: ptr("does-not-exist"), Symbol: ptr("ETHUSDT"), Side: models.SideBuy, Confidence: 0.5, Metadata: map[string]any{}}
	res, err := svc.Ingest(context.Background(), sig, CreateOptions{})
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if sig.GeneratedAt == nil || !sig.GeneratedAt.Equal(fixed) {
		t.Fatalf("generated_at=%v want=%v", sig.GeneratedAt, fixed)
	}
	items, err := ListRecords[models.Signal](context.Background(), svc.Docs, models.CollectionSignal, nil, 10)
	if err != nil || len(items) != 1 {
		t.Fatalf("items=%v err=%v", items, err)
	}
	if items[0].GeneratedAt == nil || !items[0].GeneratedAt.Equal(fixed) {
		t.Fatalf("stored generated_at=%v", items[0].GeneratedAt)
	}
	if len(pub.events) != 1 || pub.events[0].ID != res.ID || pub.events[0].Collection != models.CollectionSignal {
		t.Fatalf("events=%+v", pub.events)
	}
}

func TestSignalIngest_KeepsExplicitGeneratedAt(t *testing.T) {
	explicit := time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)
	svc := &SignalService{
		Docs: &DocumentService{Repo: memoryrepository.New()},
		Now:  func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) },
	}
	sig := &models.Signal{StrategyID: ptr("s1"), Symbol: ptr("AAPL"), Side: models.SideSell, GeneratedAt: &explicit}
	if _, err := svc.Ingest(context.Background(), sig, CreateOptions{}); err != nil {
		t.Fatalf("err=%v", err)
	}
	items, _ := ListRecords[models.Signal](context.Background(), svc.Docs, models.CollectionSignal, nil, 10)
	if len(items) != 1 || !items[0].GeneratedAt.Equal(explicit) {
		t.Fatalf("items=%+v", items)
	}
}

func TestTradeRecord_Publishes(t *testing.T) {
	pub := &recordingPublisher{}
	svc := &TradeService{Docs: &DocumentService{Repo: memoryrepository.New(), Publisher: pub}}
	price := 101.5
	trade := &models.Trade{Broker: ptr("alpaca"), Symbol: ptr("AAPL"), Side: models.SideBuy, Qty: ptr(2.0), Price: &price, Status: models.TradeStatusFilled}
	if _, err := svc.Record(context.Background(), trade, CreateOptions{}); err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(pub.events) != 1 || pub.events[0].Collection != models.CollectionTrade {
		t.Fatalf("events=%+v", pub.events)
	}
}

func TestBacktestRun_FixedResultAndAudit(t *testing.T) {
	store := memoryrepository.New()
	svc := &BacktestService{Docs: &DocumentService{Repo: store}, Engine: backtest.StaticEngine{}}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := &models.BacktestRequest{StrategyCode: ptr("a"), Symbol: ptr("BTC"), Timeframe: "1h", Start: start, End: start.Add(24 * time.Hour), InitialCapital: 10000}
	b := &models.BacktestRequest{StrategyCode: ptr("b"), Symbol: ptr("ETH"), Timeframe: "1d", Start: start, End: start.Add(-time.Hour), InitialCapital: 5}
	ra, err := svc.Run(context.Background(), a)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	rb, err := svc.Run(context.Background(), b)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if ra != rb || ra != backtest.FixedResult {
		t.Fatalf("ra=%+v rb=%+v", ra, rb)
	}
	if n := store.Len(models.CollectionBacktestRequest); n != 2 {
		t.Fatalf("audit records=%d want=2", n)
	}
}

func TestBacktestRun_AuditFailureFails(t *testing.T) {
	svc := &BacktestService{Docs: &DocumentService{}}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.Run(context.Background(), &models.BacktestRequest{StrategyCode: ptr("a"), Symbol: ptr("BTC"), Timeframe: "1h", Start: start, End: start})
	if !repository.IsUnavailable(err) {
		t.Fatalf("err=%v want unavailable", err)
	}
}

func TestDiagnostics_NotConfigured(t *testing.T) {
	svc := &DiagnosticsService{}
	rep := svc.Report(context.Background())
	if rep.Status != DiagNotConfigured {
		t.Fatalf("status=%q", rep.Status)
	}
	if rep.DatabaseURL != "❌ Not Set" || rep.ConnectionStatus != "Not Connected" {
		t.Fatalf("rep=%+v", rep)
	}
	if rep.Collections == nil {
		t.Fatalf("collections nil")
	}
}

func TestDiagnostics_States(t *testing.T) {
	long := strings.Repeat("x", 200)
	many := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	cases := []struct {
		name   string
		repo   *stubRepo
		status string
	}{
		{"unreachable", &stubRepo{pingErr: errors.New(long)}, DiagUnreachable},
		{"list error", &stubRepo{namesErr: errors.New(long)}, DiagConnectedWithError},
		{"connected", &stubRepo{names: many}, DiagConnected},
	}
	for _, tc := range cases {
		svc := &DiagnosticsService{Repo: tc.repo, URLSet: true, Name: "hedge"}
		rep := svc.Report(context.Background())
		if rep.Status != tc.status {
			t.Fatalf("%s: status=%q want=%q", tc.name, rep.Status, tc.status)
		}
		if rep.DatabaseURL != "✅ Set" || rep.DatabaseName != "hedge" {
			t.Fatalf("%s: rep=%+v", tc.name, rep)
		}
		if strings.Count(rep.Database, "x") > 80 {
			t.Fatalf("%s: message not truncated: %q", tc.name, rep.Database)
		}
		if len(rep.Collections) > 10 {
			t.Fatalf("%s: collections=%d", tc.name, len(rep.Collections))
		}
	}
}

func TestDiagnostics_ConfiguredStoreFailedToOpen(t *testing.T) {
	long := "dial tcp: " + strings.Repeat("y", 200)
	cases := []struct {
		name    string
		openErr error
		want    string
	}{
		{"open error", errors.New(long), "❌ Error: dial tcp: "},
		{"no error recorded", nil, "❌ Error: store client not initialized"},
	}
	for _, tc := range cases {
		svc := &DiagnosticsService{URLSet: true, Repo: nil, OpenErr: tc.openErr, Name: "hedge"}
		rep := svc.Report(context.Background())
		if rep.Status != DiagUnreachable {
			t.Fatalf("%s: status=%q want=%q", tc.name, rep.Status, DiagUnreachable)
		}
		if !strings.HasPrefix(rep.Database, tc.want) {
			t.Fatalf("%s: database=%q", tc.name, rep.Database)
		}
		if n := len([]rune(strings.TrimPrefix(rep.Database, "❌ Error: "))); n > 80 {
			t.Fatalf("%s: message runes=%d want<=80", tc.name, n)
		}
		if rep.DatabaseURL != "✅ Set" || rep.ConnectionStatus != "Not Connected" {
			t.Fatalf("%s: rep=%+v", tc.name, rep)
		}
	}
}

type panicRepo struct{ *stubRepo }

func (panicRepo) Ping(context.Context) error { panic("driver exploded") }

func TestDiagnostics_RecoversPanic(t *testing.T) {
	svc := &DiagnosticsService{Repo: panicRepo{&stubRepo{}}}
	rep := svc.Report(context.Background())
	if rep.Status != DiagUnreachable || !strings.Contains(rep.Database, "driver exploded") {
		t.Fatalf("rep=%+v", rep)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("héllo", 2); got != "hé" {
		t.Fatalf("got=%q", got)
	}
	if got := Truncate("abc", 80); got != "abc" {
		t.Fatalf("got=%q", got)
	}
}
