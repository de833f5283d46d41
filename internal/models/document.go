package models

import (
	"time"

	"gorm.io/datatypes"
)

// Document is one record of the JSONB-backed document store. Collection
// partitions the table the same way Mongo collections do.
type Document struct {
	ID         string         `gorm:"type:uuid;primaryKey"`
	Collection string         `gorm:"type:varchar(64);not null;index"`
	Body       datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time      `gorm:"type:timestamptz;not null;index"`
	UpdatedAt  time.Time      `gorm:"type:timestamptz;not null"`
}

func (Document) TableName() string {
	return "documents"
}
