package model

import (
	"time"
)

type EventStatus string

const (
	EventUpcoming EventStatus = "upcoming"
	EventActive   EventStatus = "active"
	EventEnded    EventStatus = "ended"
)

type Event struct {
	UUIDBase
	Name         string     `gorm:"size:200;not null" json:"name"`
	Description  string     `gorm:"type:text" json:"description"`
	StartTime    time.Time  `gorm:"not null" json:"start_time"`
	EndTime      time.Time  `gorm:"not null" json:"end_time"`
	MaxTeamSize  int        `gorm:"not null" json:"max_team_size"` // 仅作提示，不校验队伍人数
	ChallengeIDs StringList `gorm:"type:text;not null" json:"challenge_ids"`

	// 读取时派生，不落库
	Status EventStatus `gorm:"-" json:"status"`
}

func (Event) TableName() string {
	return "events"
}

// StatusAt 按时间窗口派生状态，起止边界均含在内
func (e *Event) StatusAt(now time.Time) EventStatus {
	if now.Before(e.StartTime) {
		return EventUpcoming
	}
	if now.After(e.EndTime) {
		return EventEnded
	}
	return EventActive
}

func (e *Event) HasChallenge(challengeID string) bool {
	return e.ChallengeIDs.Contains(challengeID)
}
