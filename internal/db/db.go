package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hedgeapi/internal/config"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// ErrNotConfigured is returned when no store connection string is set.
var ErrNotConfigured = errors.New("database url not set")

// DB holds the process-wide store handles. Exactly one backend is set.
type DB struct {
	Driver string

	Mongo   *mongo.Client
	MongoDB *mongo.Database

	Gorm *gorm.DB
	SQL  *sql.DB
}

// ResolveDriver picks the backend from the explicit driver setting or the
// connection string scheme.
func ResolveDriver(cfg config.DatabaseConfig) (string, error) {
	if d := strings.ToLower(strings.TrimSpace(cfg.Driver)); d != "" {
		switch d {
		case DriverMongo, DriverPostgres, DriverMemory:
			return d, nil
		default:
			return "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
		}
	}
	raw := strings.TrimSpace(cfg.URL)
	if raw == "" {
		return "", ErrNotConfigured
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse database url: %w", err)
	}
	switch strings.ToLower(u.Scheme) {
	case "mongodb", "mongodb+srv":
		return DriverMongo, nil
	case "postgres", "postgresql":
		return DriverPostgres, nil
	default:
		return "", fmt.Errorf("unsupported database url scheme %q", u.Scheme)
	}
}

// Open creates the store client. Connections are established lazily, so a
// configured but unreachable server still yields a handle; Ping reports the
// actual state.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*DB, error) {
	driver, err := ResolveDriver(cfg)
	if err != nil {
		return nil, err
	}
	switch driver {
	case DriverMongo:
		return openMongo(ctx, cfg)
	case DriverPostgres:
		return openPostgres(cfg)
	default:
		return &DB{Driver: DriverMemory}, nil
	}
}

func openMongo(ctx context.Context, cfg config.DatabaseConfig) (*DB, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, ErrNotConfigured
	}
	if strings.TrimSpace(cfg.Name) == "" {
		return nil, errors.New("database name not set")
	}
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &DB{
		Driver:  DriverMongo,
		Mongo:   client,
		MongoDB: client.Database(cfg.Name),
	}, nil
}

func openPostgres(cfg config.DatabaseConfig) (*DB, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, ErrNotConfigured
	}
	gcfg := &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	}
	gdb, err := gorm.Open(postgres.Open(cfg.URL), gcfg)
	if err != nil {
		return nil, err
	}
	sqldb, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqldb.SetMaxOpenConns(cfg.MaxOpenConns)
	sqldb.SetMaxIdleConns(cfg.MaxIdleConns)
	sqldb.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return &DB{Driver: DriverPostgres, Gorm: gdb, SQL: sqldb}, nil
}

func Close(ctx context.Context, db *DB) error {
	if db == nil {
		return nil
	}
	if db.Mongo != nil {
		return db.Mongo.Disconnect(ctx)
	}
	if db.SQL != nil {
		return db.SQL.Close()
	}
	return nil
}
