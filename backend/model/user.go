package model

import (
	"time"

	"gorm.io/datatypes"
)

// User subscribes to topics derived from uploaded file titles.
// SubscribedTopics keeps subscription order; deduplication happens with a
// membership check at write time, not with a database constraint.
type User struct {
	ID               int64                       `json:"id" gorm:"primaryKey"`
	Email            string                      `json:"email" gorm:"size:255;not null;uniqueIndex"`
	Username         string                      `json:"username" gorm:"size:100;not null;uniqueIndex"`
	SubscribedTopics datatypes.JSONSlice[string] `json:"subscribed_topics"`
	CreatedAt        time.Time                   `json:"created_at" gorm:"not null"`
	UpdatedAt        time.Time                   `json:"updated_at" gorm:"not null"`
}
