package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"hedgeapi/internal/repository"
)

const (
	DiagNotConfigured      = "not_configured"
	DiagUnreachable        = "unreachable"
	DiagConnected          = "connected"
	DiagConnectedWithError = "connected_with_error"

	maxDiagCollections = 10
	maxDiagMessage     = 80
)

type DiagnosticsReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	Driver           string   `json:"database_driver,omitempty"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
	Status           string   `json:"status"`
}

// DiagnosticsService reports store connectivity for operators. Repo is nil
// when no store is configured or its client could not be created; OpenErr
// holds the failure in the second case.
type DiagnosticsService struct {
	Repo    repository.Repository
	URLSet  bool
	OpenErr error
	Name    string
	Driver  string
	Timeout time.Duration
	Logger  *zap.Logger
}

// Report never fails; every store problem is folded into the payload.
func (s *DiagnosticsService) Report(ctx context.Context) (rep DiagnosticsReport) {
	rep = DiagnosticsReport{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		DatabaseURL:      "❌ Not Set",
		DatabaseName:     "❌ Not Set",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
		Status:           DiagNotConfigured,
	}
	if s == nil {
		return rep
	}
	if s.URLSet {
		rep.DatabaseURL = "✅ Set"
	}
	if s.Name != "" {
		rep.DatabaseName = s.Name
	}
	rep.Driver = s.Driver
	if s.Repo == nil {
		if s.URLSet || s.OpenErr != nil {
			msg := "store client not initialized"
			if s.OpenErr != nil {
				msg = s.OpenErr.Error()
			}
			rep.Database = "❌ Error: " + Truncate(msg, maxDiagMessage)
			rep.Status = DiagUnreachable
		}
		return rep
	}

	defer func() {
		if r := recover(); r != nil {
			if s.Logger != nil {
				s.Logger.Error("diagnostics panic", zap.Any("panic", r))
			}
			rep.Database = "❌ Error: " + Truncate(fmt.Sprint(r), maxDiagMessage)
			rep.ConnectionStatus = "Not Connected"
			rep.Collections = []string{}
			rep.Status = DiagUnreachable
		}
	}()

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = defaultOpTimeout
	}
	opCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := s.Repo.Ping(opCtx); err != nil {
		rep.Database = "❌ Error: " + Truncate(err.Error(), maxDiagMessage)
		rep.Status = DiagUnreachable
		return rep
	}
	rep.Database = "✅ Available"
	rep.ConnectionStatus = "Connected"

	names, err := s.Repo.CollectionNames(opCtx)
	if err != nil {
		rep.Database = "⚠️  Connected but Error: " + Truncate(err.Error(), maxDiagMessage)
		rep.Status = DiagConnectedWithError
		return rep
	}
	if len(names) > maxDiagCollections {
		names = names[:maxDiagCollections]
	}
	if names == nil {
		names = []string{}
	}
	rep.Collections = names
	rep.Database = "✅ Connected & Working"
	rep.Status = DiagConnected
	return rep
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
