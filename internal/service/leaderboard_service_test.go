package service_test

import (
	"testing"
	"time"

	"challenge_hub_backend/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func TestLeaderboardExcludesTeamsWithoutCorrectSubmissions(t *testing.T) {
	env := newTestEnv(t)
	solver := seedTeam(t, env, "Solvers")
	trier := seedTeam(t, env, "Triers")
	event := seedActiveEvent(t, env, "sql-002")

	now := time.Now().UTC()
	seedSubmission(t, env, solver.ID, event.ID, "sql-002", true, now)
	seedSubmission(t, env, trier.ID, event.ID, "sql-002", false, now)

	lb, err := env.leaderboard.Rank(event.ID)
	if err != nil {
		t.Fatalf("rank failed: %v", err)
	}
	if len(lb.Rankings) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(lb.Rankings))
	}
	if lb.Rankings[0].TeamID != solver.ID {
		t.Fatalf("expected %s on the board, got %+v", solver.ID, lb.Rankings[0])
	}
	if lb.GeneratedAt.IsZero() {
		t.Fatal("generated_at must be set")
	}
}

func TestLeaderboardOrdersByScoreThenEarlierLastCorrect(t *testing.T) {
	env := newTestEnv(t)
	early := seedTeam(t, env, "Early")
	late := seedTeam(t, env, "Late")
	top := seedTeam(t, env, "Top")
	event := seedActiveEvent(t, env, "sql-002", "arch-001")

	now := time.Now().UTC()
	// Top：150分
	seedSubmission(t, env, top.ID, event.ID, "arch-001", true, now.Add(-30*time.Minute))
	// Early 和 Late 同为100分，Early 的最后一次正确提交更早
	seedSubmission(t, env, early.ID, event.ID, "sql-002", true, now.Add(-20*time.Minute))
	seedSubmission(t, env, late.ID, event.ID, "sql-002", true, now.Add(-10*time.Minute))

	lb, err := env.leaderboard.Rank(event.ID)
	if err != nil {
		t.Fatalf("rank failed: %v", err)
	}
	if len(lb.Rankings) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(lb.Rankings))
	}

	wantOrder := []string{top.ID, early.ID, late.ID}
	for i, want := range wantOrder {
		entry := lb.Rankings[i]
		if entry.TeamID != want {
			t.Fatalf("position %d: expected team %s, got %s", i, want, entry.TeamID)
		}
		if entry.Rank != i+1 {
			t.Fatalf("ranks must be sequential from 1, got %d at position %d", entry.Rank, i)
		}
	}
	if lb.Rankings[1].Score != lb.Rankings[2].Score {
		t.Fatal("tie-break fixture broken: scores should be equal")
	}
}

func TestLeaderboardCountsCompletedChallenges(t *testing.T) {
	env := newTestEnv(t)
	team := seedTeam(t, env, "Alpha")
	event := seedActiveEvent(t, env, "sql-002", "arch-001")

	now := time.Now().UTC()
	seedSubmission(t, env, team.ID, event.ID, "sql-002", true, now.Add(-2*time.Minute))
	seedSubmission(t, env, team.ID, event.ID, "arch-001", true, now.Add(-time.Minute))

	lb, err := env.leaderboard.Rank(event.ID)
	if err != nil {
		t.Fatalf("rank failed: %v", err)
	}
	entry := lb.Rankings[0]
	if entry.ChallengesCompleted != 2 {
		t.Fatalf("expected 2 completed, got %d", entry.ChallengesCompleted)
	}
	if entry.Score != 250 {
		t.Fatalf("expected score 250, got %d", entry.Score)
	}
}

func TestLeaderboardCacheRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	team := seedTeam(t, env, "Alpha")
	event := seedActiveEvent(t, env, "sql-002")

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	env.leaderboard = service.NewLeaderboardService(env.subs, env.scoring, rdb, 10*time.Second)

	now := time.Now().UTC()
	seedSubmission(t, env, team.ID, event.ID, "sql-002", true, now)

	first, err := env.leaderboard.Rank(event.ID)
	if err != nil {
		t.Fatalf("rank failed: %v", err)
	}
	if !mr.Exists("leaderboard:" + event.ID) {
		t.Fatal("expected leaderboard to be cached")
	}

	// 缓存命中：结果与首次一致
	second, err := env.leaderboard.Rank(event.ID)
	if err != nil {
		t.Fatalf("rank failed: %v", err)
	}
	if !second.GeneratedAt.Equal(first.GeneratedAt) {
		t.Fatal("expected cached response on second call")
	}

	env.leaderboard.Invalidate(event.ID)
	if mr.Exists("leaderboard:" + event.ID) {
		t.Fatal("expected cache entry to be dropped after invalidation")
	}
}
