// Package domain defines the persistence model for user feedback. The type
// here is mapped with GORM and forms the data layer of the feedback service.
package domain

import "time"

// Feedback represents one user-submitted feedback entry. Name and email are
// optional and stored as NULL when absent; the message is mandatory. Rows are
// insert-only: the service never updates or deletes a feedback entry.
//
// Fields:
//   - ID: auto-incrementing integer primary key, assigned by the database.
//   - Name: optional submitter name (<= 100 chars, trimmed before persisting).
//   - Email: optional submitter email (<= 255 chars, syntax-checked upstream).
//   - Message: the feedback text (1..2000 chars after trimming).
//   - CreatedAt: insertion timestamp; the sole ordering key for listings,
//     indexed to keep newest-first pagination cheap.
type Feedback struct {
	ID        int64     `json:"id"         gorm:"primaryKey;autoIncrement"`
	Name      *string   `json:"name"       gorm:"type:varchar(100)"`
	Email     *string   `json:"email"      gorm:"type:varchar(255)"`
	Message   string    `json:"message"    gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;index:ix_feedbacks_created_at"`
}

// TableName returns the database table name for Feedback.
func (Feedback) TableName() string { return "feedbacks" }
