package model

import (
	"time"
)

// Book is a catalog entry.
type Book struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	Title         string    `json:"title" gorm:"size:255;not null;index"`
	Author        string    `json:"author" gorm:"size:255;not null"`
	ISBN          *string   `json:"isbn" gorm:"column:isbn;size:13;uniqueIndex"`
	Description   *string   `json:"description" gorm:"type:text"`
	PublishedYear *int      `json:"published_year"`
	CreatedAt     time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"not null"`
}
