package util

import "errors"

var (
	ErrTeamNotFound        = errors.New("team not found")
	ErrEventNotFound       = errors.New("event not found")
	ErrChallengeNotFound   = errors.New("challenge not found")
	ErrChallengeNotInEvent = errors.New("challenge not in this event")
	ErrHintLevelNotFound   = errors.New("hint level not available")
	ErrEventNotStarted     = errors.New("event not active: has not started")
	ErrEventEnded          = errors.New("event not active: has ended")
	ErrTeamNameTaken       = errors.New("team name already exists")
	ErrChallengeCompleted  = errors.New("challenge already completed")
	ErrInvalidEventWindow  = errors.New("end_time must be after start_time")
)
