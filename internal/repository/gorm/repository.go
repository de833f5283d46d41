package gormrepository

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"net"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hedgeapi/internal/models"
	"hedgeapi/internal/repository"
)

// Store keeps every collection in the documents table, one JSONB body per
// record.
type Store struct {
	db  *gorm.DB
	now func() time.Time
}

func New(db *gorm.DB) *Store {
	return &Store{db: db, now: time.Now}
}

func (s *Store) Insert(ctx context.Context, collection string, doc any) (string, error) {
	if s == nil || s.db == nil {
		return "", repository.ErrStorageUnavailable
	}
	body, err := documentBody(doc)
	if err != nil {
		return "", &repository.StorageError{Op: "encode", Collection: collection, Err: err}
	}
	now := s.now().UTC()
	item := &models.Document{
		ID:         uuid.NewString(),
		Collection: collection,
		Body:       body,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return "", repository.Wrap("insert", collection, err, unavailable(err))
	}
	return item.ID, nil
}

func (s *Store) Find(ctx context.Context, collection string, filter repository.Filter, limit int64, out any) error {
	if s == nil || s.db == nil {
		return repository.ErrStorageUnavailable
	}
	query := s.db.WithContext(ctx).
		Model(&models.Document{}).
		Where("collection = ?", collection)
	if len(filter) > 0 {
		b, err := json.Marshal(filter)
		if err != nil {
			return &repository.StorageError{Op: "find", Collection: collection, Err: err}
		}
		query = query.Where("body @> ?", datatypes.JSON(b))
	}
	query = applyOrder(query, "created_at", true)
	if limit > 0 {
		query = query.Limit(int(limit))
	}
	var items []models.Document
	if err := query.Find(&items).Error; err != nil {
		return repository.Wrap("find", collection, err, unavailable(err))
	}
	records := make([]map[string]any, 0, len(items))
	for _, item := range items {
		record := map[string]any{}
		if err := json.Unmarshal(item.Body, &record); err != nil {
			return &repository.StorageError{Op: "decode", Collection: collection, Err: err}
		}
		record["id"] = item.ID
		record["created_at"] = item.CreatedAt.UTC()
		record["updated_at"] = item.UpdatedAt.UTC()
		records = append(records, record)
	}
	b, err := json.Marshal(records)
	if err != nil {
		return &repository.StorageError{Op: "decode", Collection: collection, Err: err}
	}
	if err := json.Unmarshal(b, out); err != nil {
		return &repository.StorageError{Op: "decode", Collection: collection, Err: err}
	}
	return nil
}

func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	if s == nil || s.db == nil {
		return nil, repository.ErrStorageUnavailable
	}
	var names []string
	if err := s.db.WithContext(ctx).
		Model(&models.Document{}).
		Distinct("collection").
		Order("collection asc").
		Pluck("collection", &names).Error; err != nil {
		return nil, repository.Wrap("list_collections", "", err, unavailable(err))
	}
	return names, nil
}

func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return repository.ErrStorageUnavailable
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return repository.Wrap("ping", "", err, true)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return repository.Wrap("ping", "", err, true)
	}
	return nil
}

// documentBody renders a record as JSON without the store-managed fields.
func documentBody(doc any) (datatypes.JSON, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var body map[string]any
	if err := json.Unmarshal(b, &body); err != nil {
		return nil, err
	}
	delete(body, "id")
	delete(body, "created_at")
	delete(body, "updated_at")
	out, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(out), nil
}

func applyOrder(query *gorm.DB, column string, asc bool) *gorm.DB {
	direction := "desc"
	if asc {
		direction = "asc"
	}
	return query.Order(column + " " + direction)
}

func unavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
