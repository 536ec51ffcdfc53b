package model

import (
	"time"
)

type SubmitResult struct {
	Correct      bool   `json:"correct"`
	PointsEarned int    `json:"points_earned"`
	CurrentScore int    `json:"current_score"`
	Message      string `json:"message"`
}

type HintResult struct {
	ChallengeID string `json:"challenge_id"`
	HintLevel   int    `json:"hint_level"`
	Text        string `json:"text"`
	Cost        int    `json:"cost"`
}

type LeaderboardEntry struct {
	Rank                int    `json:"rank"`
	TeamID              string `json:"team_id"`
	TeamName            string `json:"team_name"`
	Score               int    `json:"score"`
	ChallengesCompleted int    `json:"challenges_completed"`
}

type Leaderboard struct {
	EventID     string             `json:"event_id"`
	Rankings    []LeaderboardEntry `json:"rankings"`
	GeneratedAt time.Time          `json:"generated_at"`
}

type TeamProgress struct {
	TeamID              string           `json:"team_id"`
	EventID             string           `json:"event_id"`
	Score               int              `json:"score"`
	ChallengesCompleted []string         `json:"challenges_completed"`
	HintsUsed           map[string][]int `json:"hints_used"`
}
