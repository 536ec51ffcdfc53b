package model

import (
	"time"
)

type TeamCreateRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=100"`
	Members     []string `json:"members" binding:"required,min=1"`
	WorkspaceID string   `json:"workspace_id" binding:"required,min=1"`
}

type TeamUpdateRequest struct {
	Members *[]string `json:"members" binding:"omitempty,min=1"`
}

type EventCreateRequest struct {
	Name         string    `json:"name" binding:"required,min=1,max=200"`
	Description  string    `json:"description"`
	StartTime    time.Time `json:"start_time" binding:"required"`
	EndTime      time.Time `json:"end_time" binding:"required"`
	MaxTeamSize  int       `json:"max_team_size" binding:"omitempty,min=1"`
	ChallengeIDs []string  `json:"challenge_ids"`
}

type EventUpdateRequest struct {
	Name         *string    `json:"name" binding:"omitempty,min=1,max=200"`
	Description  *string    `json:"description"`
	StartTime    *time.Time `json:"start_time"`
	EndTime      *time.Time `json:"end_time"`
	MaxTeamSize  *int       `json:"max_team_size" binding:"omitempty,min=1"`
	ChallengeIDs *[]string  `json:"challenge_ids"`
}

type SubmitRequest struct {
	TeamID      string `json:"team_id" binding:"required"`
	ChallengeID string `json:"challenge_id" binding:"required"`
	Answer      string `json:"answer"`
}
