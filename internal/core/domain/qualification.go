package domain

import (
	"time"

	"github.com/google/uuid"
)

// QualificationStatus is the review state of a submitted qualification.
type QualificationStatus string

const (
	QualificationStatusPending  QualificationStatus = "pending"
	QualificationStatusApproved QualificationStatus = "approved"
	QualificationStatusRejected QualificationStatus = "rejected"
)

// Qualification is a user's proof submission gating entry to an event.
// Policy: a bet is unlocked only by an approved qualification, not a mere
// submission.
type Qualification struct {
	ID            uuid.UUID           `json:"id"`
	EventID       uuid.UUID           `json:"event_id"`
	UserID        string              `json:"user_id"`
	Username      string              `json:"username"`
	ScreenshotURL string              `json:"screenshot_url"`
	Status        QualificationStatus `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
	ReviewedAt    *time.Time          `json:"reviewed_at,omitempty"`
}

// Unlocks reports whether this qualification permits betting.
func (q *Qualification) Unlocks() bool {
	return q.Status == QualificationStatusApproved
}
