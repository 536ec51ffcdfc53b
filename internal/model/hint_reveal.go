package model

import (
	"time"
)

// HintReveal 每个 (team, event, challenge, level) 只计费一次
type HintReveal struct {
	UUIDBase
	TeamID      string    `gorm:"size:36;uniqueIndex:idx_reveal_once;not null" json:"team_id"`
	EventID     string    `gorm:"size:36;uniqueIndex:idx_reveal_once;not null" json:"event_id"`
	ChallengeID string    `gorm:"size:100;uniqueIndex:idx_reveal_once;not null" json:"challenge_id"`
	HintLevel   int       `gorm:"uniqueIndex:idx_reveal_once;not null" json:"hint_level"`
	RevealedAt  time.Time `gorm:"not null" json:"revealed_at"`
	Cost        int       `gorm:"not null" json:"cost"`
}

func (HintReveal) TableName() string {
	return "hint_reveals"
}
