package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"challenge_hub_backend/internal/catalog"
	"challenge_hub_backend/internal/config"
	"challenge_hub_backend/internal/controller"
	"challenge_hub_backend/internal/repository"
	"challenge_hub_backend/internal/service"
	"challenge_hub_backend/pkg/database"
	"challenge_hub_backend/pkg/logger"
	"challenge_hub_backend/pkg/monitoring"
	"challenge_hub_backend/pkg/security"
	"challenge_hub_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config  *config.Config
	Router  *gin.Engine
	DB      *gorm.DB
	Redis   *redis.Client
	Catalog *catalog.Catalog
}

type repositories struct {
	team       *repository.TeamRepository
	event      *repository.EventRepository
	submission *repository.SubmissionRepository
	hintReveal *repository.HintRevealRepository
}

type services struct {
	validation  *service.ValidationService
	scoring     *service.ScoringService
	leaderboard *service.LeaderboardService
	gameplay    *service.GameplayService
	team        *service.TeamService
	event       *service.EventService
	challenge   *service.ChallengeService
}

type controllers struct {
	challenge *controller.ChallengeController
	team      *controller.TeamController
	event     *controller.EventController
	gameplay  *controller.GameplayController
	health    *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		team:       repository.NewTeamRepository(db),
		event:      repository.NewEventRepository(db),
		submission: repository.NewSubmissionRepository(db),
		hintReveal: repository.NewHintRevealRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.validation = service.NewValidationService()
	s.scoring = service.NewScoringService(repos.submission, repos.hintReveal, a.Catalog)
	s.leaderboard = service.NewLeaderboardService(
		repos.submission,
		s.scoring,
		rdb,
		time.Duration(cfg.Game.LeaderboardTTL)*time.Second,
	)
	s.gameplay = service.NewGameplayService(
		repos.team,
		repos.event,
		repos.submission,
		repos.hintReveal,
		a.Catalog,
		s.validation,
		s.scoring,
		s.leaderboard,
	)
	s.team = service.NewTeamService(repos.team, repos.submission, repos.hintReveal)
	s.event = service.NewEventService(repos.event, cfg.Game.DefaultMaxTeamSize)
	s.challenge = service.NewChallengeService(a.Catalog)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		challenge: controller.NewChallengeController(s.challenge),
		team:      controller.NewTeamController(s.team),
		event:     controller.NewEventController(s.event),
		gameplay:  controller.NewGameplayController(s.gameplay),
		health:    controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(
		cfg.RateLimit.MaxRequests,
		time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute,
	))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.ForceMigrate || cfg.Server.Mode != "release" {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	// Redis 只用于排行榜缓存，连不上时降级为每次现算
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Warn("Redis unavailable, leaderboard caching disabled", zap.Error(err))
		rdb = nil
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		logger.Log.Fatal("Failed to load challenge catalog", zap.Error(err))
	}
	logger.Log.Info("Challenge catalog loaded", zap.Int("challenges", cat.Size()))

	app := &App{
		Config:  cfg,
		DB:      db,
		Redis:   rdb,
		Catalog: cat,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("challenge-hub", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

	return app
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
