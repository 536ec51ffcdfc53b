package service

import (
	"errors"
	"time"

	"challenge_hub_backend/internal/catalog"
	"challenge_hub_backend/internal/model"
	"challenge_hub_backend/internal/repository"
	"challenge_hub_backend/internal/util"
	"challenge_hub_backend/pkg/monitoring"

	"gorm.io/gorm"
)

// GameplayService 按固定顺序做资格检查，再交给校验/计分。
// 每个请求独立对库求值，没有长驻状态机。
type GameplayService struct {
	Teams       *repository.TeamRepository
	Events      *repository.EventRepository
	Submissions *repository.SubmissionRepository
	HintReveals *repository.HintRevealRepository
	Catalog     *catalog.Catalog
	Validation  *ValidationService
	Scoring     *ScoringService
	Leaderboard *LeaderboardService
}

func NewGameplayService(
	teams *repository.TeamRepository,
	events *repository.EventRepository,
	subs *repository.SubmissionRepository,
	hints *repository.HintRevealRepository,
	cat *catalog.Catalog,
	validation *ValidationService,
	scoring *ScoringService,
	leaderboard *LeaderboardService,
) *GameplayService {
	return &GameplayService{
		Teams:       teams,
		Events:      events,
		Submissions: subs,
		HintReveals: hints,
		Catalog:     cat,
		Validation:  validation,
		Scoring:     scoring,
		Leaderboard: leaderboard,
	}
}

func (s *GameplayService) getEvent(eventID string) (*model.Event, error) {
	event, err := s.Events.GetByID(eventID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return event, nil
}

// 赛事必须存在且处于进行中（起止时刻含在内）
func (s *GameplayService) getActiveEvent(eventID string, now time.Time) (*model.Event, error) {
	event, err := s.getEvent(eventID)
	if err != nil {
		return nil, err
	}
	switch event.StatusAt(now) {
	case model.EventUpcoming:
		return nil, util.ErrEventNotStarted
	case model.EventEnded:
		return nil, util.ErrEventEnded
	}
	return event, nil
}

func (s *GameplayService) requireTeam(teamID string) error {
	exists, err := s.Teams.Exists(teamID)
	if err != nil {
		return err
	}
	if !exists {
		return util.ErrTeamNotFound
	}
	return nil
}

// SubmitAnswer 提交答案。无论对错都落一条提交记录，错误提交保留作审计用。
func (s *GameplayService) SubmitAnswer(eventID string, req *model.SubmitRequest) (*model.SubmitResult, error) {
	now := time.Now().UTC()

	event, err := s.getActiveEvent(eventID, now)
	if err != nil {
		return nil, err
	}
	if err := s.requireTeam(req.TeamID); err != nil {
		return nil, err
	}
	if !event.HasChallenge(req.ChallengeID) {
		return nil, util.ErrChallengeNotInEvent
	}
	ch, ok := s.Catalog.ByID(req.ChallengeID)
	if !ok {
		return nil, util.ErrChallengeNotFound
	}

	// 已经答对过就不允许再提交
	solved, err := s.Submissions.HasCorrect(req.TeamID, eventID, req.ChallengeID)
	if err != nil {
		return nil, err
	}
	if solved {
		return nil, util.ErrChallengeCompleted
	}

	correct := s.Validation.Validate(ch, req.Answer)

	sub := &model.Submission{
		TeamID:      req.TeamID,
		EventID:     eventID,
		ChallengeID: req.ChallengeID,
		Answer:      req.Answer,
		IsCorrect:   correct,
		SubmittedAt: now,
	}
	if err := s.Submissions.Create(sub); err != nil {
		return nil, err
	}

	result := "incorrect"
	if correct {
		result = "correct"
		s.Leaderboard.Invalidate(eventID)
	}
	monitoring.SubmissionCounter.WithLabelValues(result).Inc()

	score, err := s.Scoring.Score(req.TeamID, eventID)
	if err != nil {
		return nil, err
	}

	points := 0
	message := "Incorrect. Try again."
	if correct {
		points = ch.Points
		message = "Correct!"
	}

	return &model.SubmitResult{
		Correct:      correct,
		PointsEarned: points,
		CurrentScore: score,
		Message:      message,
	}, nil
}

// RevealHint 解锁提示。同一层级重复请求幂等：返回相同文本且费用为0。
func (s *GameplayService) RevealHint(eventID, teamID, challengeID string, level int) (*model.HintResult, error) {
	now := time.Now().UTC()

	event, err := s.getActiveEvent(eventID, now)
	if err != nil {
		return nil, err
	}
	if err := s.requireTeam(teamID); err != nil {
		return nil, err
	}
	if !event.HasChallenge(challengeID) {
		return nil, util.ErrChallengeNotInEvent
	}
	ch, ok := s.Catalog.ByID(challengeID)
	if !ok {
		return nil, util.ErrChallengeNotFound
	}
	hint, ok := ch.HintAt(level)
	if !ok {
		return nil, util.ErrHintLevelNotFound
	}

	_, err = s.HintReveals.Get(teamID, eventID, challengeID, level)
	if err == nil {
		// 已经解锁过，不再计费
		return &model.HintResult{
			ChallengeID: challengeID,
			HintLevel:   level,
			Text:        hint.Text,
			Cost:        0,
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	reveal := &model.HintReveal{
		TeamID:      teamID,
		EventID:     eventID,
		ChallengeID: challengeID,
		HintLevel:   level,
		RevealedAt:  now,
		Cost:        hint.Cost,
	}
	if err := s.HintReveals.Create(reveal); err != nil {
		return nil, err
	}

	monitoring.HintRevealCounter.Inc()
	s.Leaderboard.Invalidate(eventID)

	return &model.HintResult{
		ChallengeID: challengeID,
		HintLevel:   level,
		Text:        hint.Text,
		Cost:        hint.Cost,
	}, nil
}

// GetLeaderboard 排行榜入口，先确认赛事存在
func (s *GameplayService) GetLeaderboard(eventID string) (*model.Leaderboard, error) {
	if _, err := s.getEvent(eventID); err != nil {
		return nil, err
	}
	return s.Leaderboard.Rank(eventID)
}

// GetProgress 队伍在赛事中的进度，不要求赛事处于进行中
func (s *GameplayService) GetProgress(eventID, teamID string) (*model.TeamProgress, error) {
	if _, err := s.getEvent(eventID); err != nil {
		return nil, err
	}
	if err := s.requireTeam(teamID); err != nil {
		return nil, err
	}

	score, err := s.Scoring.Score(teamID, eventID)
	if err != nil {
		return nil, err
	}
	completed, err := s.Scoring.CompletedChallenges(teamID, eventID)
	if err != nil {
		return nil, err
	}
	hints, err := s.Scoring.HintsUsed(teamID, eventID)
	if err != nil {
		return nil, err
	}

	return &model.TeamProgress{
		TeamID:              teamID,
		EventID:             eventID,
		Score:               score,
		ChallengesCompleted: completed,
		HintsUsed:           hints,
	}, nil
}
