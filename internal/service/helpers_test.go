package service_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"challenge_hub_backend/internal/catalog"
	"challenge_hub_backend/internal/model"
	"challenge_hub_backend/internal/repository"
	"challenge_hub_backend/internal/service"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type testEnv struct {
	db          *gorm.DB
	teams       *repository.TeamRepository
	events      *repository.EventRepository
	subs        *repository.SubmissionRepository
	hints       *repository.HintRevealRepository
	cat         *catalog.Catalog
	validation  *service.ValidationService
	scoring     *service.ScoringService
	leaderboard *service.LeaderboardService
	gameplay    *service.GameplayService
	team        *service.TeamService
	event       *service.EventService
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// 每个测试一个独立的内存库
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(&model.Team{}, &model.Event{}, &model.Submission{}, &model.HintReveal{})
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	cat, err := catalog.New([]catalog.Challenge{
		{
			ID:             "sql-002",
			Title:          "Counting Orders",
			Category:       "sql",
			Points:         100,
			ValidationType: catalog.ValidationExact,
			ExpectedAnswer: "150",
			Hints: []catalog.Hint{
				{Text: "GROUP BY workspace, then filter.", Cost: 25},
				{Text: "The answer is between 100 and 200.", Cost: 50},
			},
		},
		{
			ID:             "arch-001",
			Title:          "Elastic Compute",
			Category:       "architecture",
			Points:         150,
			ValidationType: catalog.ValidationRegex,
			ExpectedAnswer: `auto\s*scal(e|ing)`,
			Hints: []catalog.Hint{
				{Text: "Worker count changes under load.", Cost: 25},
			},
		},
		{
			ID:             "etl-001",
			Title:          "Pipeline Ordering",
			Category:       "etl",
			Points:         75,
			ValidationType: catalog.ValidationExact,
			ExpectedAnswer: "bronze",
			Hints: []catalog.Hint{
				{Text: "Medals, lowest first.", Cost: 15},
			},
		},
	})
	if err != nil {
		t.Fatalf("build test catalog: %v", err)
	}
	return cat
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	cat := newTestCatalog(t)

	teams := repository.NewTeamRepository(db)
	events := repository.NewEventRepository(db)
	subs := repository.NewSubmissionRepository(db)
	hints := repository.NewHintRevealRepository(db)

	validation := service.NewValidationService()
	scoring := service.NewScoringService(subs, hints, cat)
	leaderboard := service.NewLeaderboardService(subs, scoring, nil, 10*time.Second)
	gameplay := service.NewGameplayService(teams, events, subs, hints, cat, validation, scoring, leaderboard)

	return &testEnv{
		db:          db,
		teams:       teams,
		events:      events,
		subs:        subs,
		hints:       hints,
		cat:         cat,
		validation:  validation,
		scoring:     scoring,
		leaderboard: leaderboard,
		gameplay:    gameplay,
		team:        service.NewTeamService(teams, subs, hints),
		event:       service.NewEventService(events, 4),
	}
}

func seedTeam(t *testing.T, env *testEnv, name string) *model.Team {
	t.Helper()
	team := &model.Team{
		Name:        name,
		Members:     model.StringList{"member-1"},
		WorkspaceID: "w1",
	}
	if err := env.teams.Create(team); err != nil {
		t.Fatalf("seed team %q: %v", name, err)
	}
	return team
}

func seedEvent(t *testing.T, env *testEnv, start, end time.Time, challengeIDs ...string) *model.Event {
	t.Helper()
	event := &model.Event{
		Name:         "Test Event",
		StartTime:    start,
		EndTime:      end,
		MaxTeamSize:  4,
		ChallengeIDs: challengeIDs,
	}
	if err := env.events.Create(event); err != nil {
		t.Fatalf("seed event: %v", err)
	}
	return event
}

// 进行中的赛事：一小时前开始，一小时后结束
func seedActiveEvent(t *testing.T, env *testEnv, challengeIDs ...string) *model.Event {
	t.Helper()
	now := time.Now().UTC()
	return seedEvent(t, env, now.Add(-time.Hour), now.Add(time.Hour), challengeIDs...)
}

func seedSubmission(t *testing.T, env *testEnv, teamID, eventID, challengeID string, correct bool, at time.Time) {
	t.Helper()
	sub := &model.Submission{
		TeamID:      teamID,
		EventID:     eventID,
		ChallengeID: challengeID,
		Answer:      "seeded",
		IsCorrect:   correct,
		SubmittedAt: at,
	}
	if err := env.subs.Create(sub); err != nil {
		t.Fatalf("seed submission: %v", err)
	}
}
