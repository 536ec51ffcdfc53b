package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"challenge_hub_backend/internal/model"
	"challenge_hub_backend/internal/repository"

	"github.com/go-redis/redis/v8"
)

// LeaderboardService 生成赛事排行榜。
// 结果在Redis中短暂缓存，提交或首次解锁提示时立即失效；
// 未配置Redis时每次现算。
type LeaderboardService struct {
	Submissions *repository.SubmissionRepository
	Scoring     *ScoringService
	Redis       *redis.Client
	CacheTTL    time.Duration
}

func NewLeaderboardService(subs *repository.SubmissionRepository, scoring *ScoringService, rdb *redis.Client, ttl time.Duration) *LeaderboardService {
	return &LeaderboardService{
		Submissions: subs,
		Scoring:     scoring,
		Redis:       rdb,
		CacheTTL:    ttl,
	}
}

func cacheKey(eventID string) string {
	return fmt.Sprintf("leaderboard:%s", eventID)
}

// Rank 只纳入至少有一次正确提交的队伍。
// 排序：得分降序，同分按最近一次正确提交时间升序（先完成者靠前）。
// 名次为1起的连续整数，同分也不并列。
func (s *LeaderboardService) Rank(eventID string) (*model.Leaderboard, error) {
	if cached := s.fromCache(eventID); cached != nil {
		return cached, nil
	}

	refs, err := s.Submissions.TeamsWithCorrect(eventID)
	if err != nil {
		return nil, err
	}

	type scoredTeam struct {
		ref         repository.TeamRef
		score       int
		completed   int
		lastCorrect time.Time
	}

	teams := make([]scoredTeam, 0, len(refs))
	for _, ref := range refs {
		score, err := s.Scoring.Score(ref.TeamID, eventID)
		if err != nil {
			return nil, err
		}
		completed, err := s.Scoring.CompletedChallenges(ref.TeamID, eventID)
		if err != nil {
			return nil, err
		}
		last, err := s.Submissions.LastCorrectAt(ref.TeamID, eventID)
		if err != nil {
			return nil, err
		}
		teams = append(teams, scoredTeam{
			ref:         ref,
			score:       score,
			completed:   len(completed),
			lastCorrect: last,
		})
	}

	sort.SliceStable(teams, func(i, j int) bool {
		if teams[i].score != teams[j].score {
			return teams[i].score > teams[j].score
		}
		return teams[i].lastCorrect.Before(teams[j].lastCorrect)
	})

	rankings := make([]model.LeaderboardEntry, 0, len(teams))
	for i, t := range teams {
		rankings = append(rankings, model.LeaderboardEntry{
			Rank:                i + 1,
			TeamID:              t.ref.TeamID,
			TeamName:            t.ref.TeamName,
			Score:               t.score,
			ChallengesCompleted: t.completed,
		})
	}

	lb := &model.Leaderboard{
		EventID:     eventID,
		Rankings:    rankings,
		GeneratedAt: time.Now().UTC(),
	}

	s.toCache(eventID, lb)
	return lb, nil
}

// Invalidate 在得分可能变化后调用
func (s *LeaderboardService) Invalidate(eventID string) {
	if s.Redis == nil {
		return
	}
	s.Redis.Del(context.Background(), cacheKey(eventID))
}

func (s *LeaderboardService) fromCache(eventID string) *model.Leaderboard {
	if s.Redis == nil {
		return nil
	}
	data, err := s.Redis.Get(context.Background(), cacheKey(eventID)).Bytes()
	if err != nil {
		return nil
	}
	var lb model.Leaderboard
	if err := json.Unmarshal(data, &lb); err != nil {
		return nil
	}
	return &lb
}

func (s *LeaderboardService) toCache(eventID string, lb *model.Leaderboard) {
	if s.Redis == nil {
		return
	}
	data, err := json.Marshal(lb)
	if err != nil {
		return
	}
	s.Redis.Set(context.Background(), cacheKey(eventID), data, s.CacheTTL)
}
