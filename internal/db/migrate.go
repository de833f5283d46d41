package db

import (
	"hedgeapi/internal/models"
)

// AutoMigrate creates the documents table for the Postgres backend. Mongo
// collections are created on first insert.
func AutoMigrate(db *DB) error {
	if db == nil || db.Gorm == nil || db.SQL == nil {
		return nil
	}
	if err := db.Gorm.AutoMigrate(&models.Document{}); err != nil {
		return err
	}
	return db.Gorm.Exec("CREATE INDEX IF NOT EXISTS idx_documents_body ON documents USING GIN (body jsonb_path_ops)").Error
}
