package model

import (
	"time"
)

type Team struct {
	UUIDBase
	Name        string     `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Members     StringList `gorm:"type:text;not null" json:"members"`
	WorkspaceID string     `gorm:"size:100;not null" json:"workspace_id"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (Team) TableName() string {
	return "teams"
}
