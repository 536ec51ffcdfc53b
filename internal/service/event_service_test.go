package service_test

import (
	"errors"
	"testing"
	"time"

	"challenge_hub_backend/internal/model"
	"challenge_hub_backend/internal/util"
)

func TestEventCreateValidatesWindow(t *testing.T) {
	env := newTestEnv(t)
	now := time.Now().UTC()

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
	}{
		{"end before start", now.Add(time.Hour), now},
		{"end equals start", now, now},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.event.Create(&model.EventCreateRequest{
				Name:      "Bad Window",
				StartTime: tc.start,
				EndTime:   tc.end,
			})
			if !errors.Is(err, util.ErrInvalidEventWindow) {
				t.Fatalf("expected ErrInvalidEventWindow, got %v", err)
			}
		})
	}
}

func TestEventCreateDefaultsMaxTeamSize(t *testing.T) {
	env := newTestEnv(t)
	now := time.Now().UTC()

	event, err := env.event.Create(&model.EventCreateRequest{
		Name:      "Spring Cup",
		StartTime: now.Add(time.Hour),
		EndTime:   now.Add(2 * time.Hour),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if event.MaxTeamSize != 4 {
		t.Fatalf("expected default max team size 4, got %d", event.MaxTeamSize)
	}
	if event.ChallengeIDs == nil {
		t.Fatal("challenge_ids must default to empty list, not null")
	}
	if event.Status != model.EventUpcoming {
		t.Fatalf("expected upcoming status, got %s", event.Status)
	}
}

func TestEventGetFillsStatus(t *testing.T) {
	env := newTestEnv(t)
	event := seedActiveEvent(t, env, "sql-002")

	got, err := env.event.Get(event.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Status != model.EventActive {
		t.Fatalf("expected active status, got %s", got.Status)
	}

	_, err = env.event.Get("no-such-event")
	if !errors.Is(err, util.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestEventUpdateMergesAndRevalidatesWindow(t *testing.T) {
	env := newTestEnv(t)
	now := time.Now().UTC()
	event := seedEvent(t, env, now.Add(time.Hour), now.Add(2*time.Hour), "sql-002")

	name := "Renamed Cup"
	updated, err := env.event.Update(event.ID, &model.EventUpdateRequest{Name: &name})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Renamed Cup" {
		t.Fatalf("expected renamed event, got %q", updated.Name)
	}
	if !updated.StartTime.Equal(event.StartTime) {
		t.Fatal("unset fields must keep their values")
	}

	// 合并后窗口非法：把结束时间挪到开始时间之前
	badEnd := now.Add(30 * time.Minute)
	_, err = env.event.Update(event.ID, &model.EventUpdateRequest{EndTime: &badEnd})
	if !errors.Is(err, util.ErrInvalidEventWindow) {
		t.Fatalf("expected ErrInvalidEventWindow, got %v", err)
	}

	// 校验失败的更新不落库
	kept, err := env.event.Get(event.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !kept.EndTime.Equal(event.EndTime) {
		t.Fatal("rejected update must not be persisted")
	}
}

func TestEventDelete(t *testing.T) {
	env := newTestEnv(t)
	event := seedActiveEvent(t, env, "sql-002")

	if err := env.event.Delete(event.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	_, err := env.event.Get(event.ID)
	if !errors.Is(err, util.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound after delete, got %v", err)
	}

	err = env.event.Delete("no-such-event")
	if !errors.Is(err, util.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}
