package model

import (
	"time"

	"gorm.io/datatypes"
)

// File is the metadata record of an uploaded file in the content store.
// Chapters and Pages are reserved for population by downstream processing
// and are never written here.
type File struct {
	ID          int64                       `json:"id" gorm:"primaryKey"`
	LocationURL string                      `json:"location_url" gorm:"size:512;not null;uniqueIndex"`
	Topic       string                      `json:"topic" gorm:"size:255;not null;index"`
	Size        int64                       `json:"size" gorm:"not null"`
	Format      string                      `json:"format" gorm:"size:50;not null"`
	Chapters    datatypes.JSONSlice[string] `json:"chapters"`
	Pages       datatypes.JSONSlice[string] `json:"pages"`
	CreatedAt   time.Time                   `json:"created_at" gorm:"not null"`
	UpdatedAt   time.Time                   `json:"updated_at" gorm:"not null"`
}
