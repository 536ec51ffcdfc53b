package service_test

import (
	"errors"
	"testing"
	"time"

	"challenge_hub_backend/internal/model"
	"challenge_hub_backend/internal/util"
)

func TestTeamCreateRejectsDuplicateName(t *testing.T) {
	env := newTestEnv(t)

	req := &model.TeamCreateRequest{
		Name:        "Alpha",
		Members:     []string{"alice", "bob"},
		WorkspaceID: "w1",
	}
	team, err := env.team.Create(req)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if team.ID == "" {
		t.Fatal("expected generated id")
	}

	_, err = env.team.Create(&model.TeamCreateRequest{Name: "Alpha", Members: []string{"carol"}})
	if !errors.Is(err, util.ErrTeamNameTaken) {
		t.Fatalf("expected ErrTeamNameTaken, got %v", err)
	}
}

func TestTeamUpdateChangesMembersOnly(t *testing.T) {
	env := newTestEnv(t)
	team := seedTeam(t, env, "Alpha")

	members := []string{"alice", "bob", "carol"}
	updated, err := env.team.Update(team.ID, &model.TeamUpdateRequest{Members: &members})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(updated.Members) != 3 {
		t.Fatalf("expected 3 members, got %v", updated.Members)
	}
	if updated.Name != "Alpha" || updated.WorkspaceID != "w1" {
		t.Fatalf("name/workspace must not change: %+v", updated)
	}

	// 空请求体什么都不动
	same, err := env.team.Update(team.ID, &model.TeamUpdateRequest{})
	if err != nil {
		t.Fatalf("no-op update failed: %v", err)
	}
	if len(same.Members) != 3 {
		t.Fatalf("no-op update must keep members, got %v", same.Members)
	}
}

func TestTeamGetUnknown(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.team.Get("no-such-team")
	if !errors.Is(err, util.ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}

func TestTeamDeleteLeavesHistoryForCleanup(t *testing.T) {
	env := newTestEnv(t)
	team := seedTeam(t, env, "Alpha")
	survivor := seedTeam(t, env, "Bravo")
	event := seedActiveEvent(t, env, "sql-002")

	now := time.Now().UTC()
	seedSubmission(t, env, team.ID, event.ID, "sql-002", true, now)
	seedSubmission(t, env, survivor.ID, event.ID, "sql-002", true, now)
	reveal := &model.HintReveal{
		TeamID:      team.ID,
		EventID:     event.ID,
		ChallengeID: "sql-002",
		HintLevel:   1,
		RevealedAt:  now,
		Cost:        25,
	}
	if err := env.hints.Create(reveal); err != nil {
		t.Fatalf("seed reveal: %v", err)
	}

	if err := env.team.Delete(team.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	// 历史记录成为孤儿但还在库里
	var subCount int64
	env.db.Model(&model.Submission{}).Count(&subCount)
	if subCount != 2 {
		t.Fatalf("expected 2 submissions kept after delete, got %d", subCount)
	}

	// 孤儿不出现在排行榜上
	lb, err := env.leaderboard.Rank(event.ID)
	if err != nil {
		t.Fatalf("rank failed: %v", err)
	}
	if len(lb.Rankings) != 1 || lb.Rankings[0].TeamID != survivor.ID {
		t.Fatalf("expected only surviving team ranked, got %+v", lb.Rankings)
	}

	subs, reveals, err := env.team.CleanupOrphanHistory()
	if err != nil {
		t.Fatalf("cleanup failed: %v", err)
	}
	if subs != 1 || reveals != 1 {
		t.Fatalf("expected 1 submission and 1 reveal removed, got %d/%d", subs, reveals)
	}

	env.db.Model(&model.Submission{}).Count(&subCount)
	if subCount != 1 {
		t.Fatalf("expected 1 submission left, got %d", subCount)
	}
}

func TestTeamDeleteUnknown(t *testing.T) {
	env := newTestEnv(t)

	err := env.team.Delete("no-such-team")
	if !errors.Is(err, util.ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}
