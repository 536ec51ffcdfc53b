package service

import (
	"challenge_hub_backend/internal/catalog"
	"challenge_hub_backend/internal/repository"
)

// ScoringService 从持久化的提交与提示记录推导队伍当前得分，从不缓存
type ScoringService struct {
	Submissions *repository.SubmissionRepository
	HintReveals *repository.HintRevealRepository
	Catalog     *catalog.Catalog
}

func NewScoringService(subs *repository.SubmissionRepository, hints *repository.HintRevealRepository, cat *catalog.Catalog) *ScoringService {
	return &ScoringService{Submissions: subs, HintReveals: hints, Catalog: cat}
}

// Score = 已答对题目的分值之和（每题只计一次） - 全部提示花费。可以为负。
// 题目已不在目录中时计0分，提交记录本身不受影响。
func (s *ScoringService) Score(teamID, eventID string) (int, error) {
	completed, err := s.Submissions.CorrectChallengeIDs(teamID, eventID)
	if err != nil {
		return 0, err
	}

	points := 0
	for _, id := range completed {
		if ch, ok := s.Catalog.ByID(id); ok {
			points += ch.Points
		}
	}

	cost, err := s.HintReveals.TotalCost(teamID, eventID)
	if err != nil {
		return 0, err
	}

	return points - cost, nil
}

func (s *ScoringService) CompletedChallenges(teamID, eventID string) ([]string, error) {
	return s.Submissions.CorrectChallengeIDs(teamID, eventID)
}

// HintsUsed 返回 challenge_id -> 已解锁层级（升序）
func (s *ScoringService) HintsUsed(teamID, eventID string) (map[string][]int, error) {
	reveals, err := s.HintReveals.ListByTeamEvent(teamID, eventID)
	if err != nil {
		return nil, err
	}

	used := make(map[string][]int)
	for _, r := range reveals {
		used[r.ChallengeID] = append(used[r.ChallengeID], r.HintLevel)
	}
	return used, nil
}
