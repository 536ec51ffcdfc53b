package model

import (
	"time"
)

// Submission 只增不改，正确性在写入时冻结，事后不会重判
type Submission struct {
	UUIDBase
	TeamID      string    `gorm:"size:36;index;not null" json:"team_id"`
	EventID     string    `gorm:"size:36;index;not null" json:"event_id"`
	ChallengeID string    `gorm:"size:100;index;not null" json:"challenge_id"`
	Answer      string    `gorm:"type:text;not null" json:"answer"`
	IsCorrect   bool      `gorm:"not null" json:"is_correct"`
	SubmittedAt time.Time `gorm:"not null" json:"submitted_at"`
}

func (Submission) TableName() string {
	return "submissions"
}
