package app

import (
	"challenge_hub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// 挑战目录（只读）
		api.GET("/challenges", c.challenge.ListChallenges)
		api.GET("/challenges/:id", c.challenge.GetChallenge)

		// 队伍
		api.POST("/teams", c.team.CreateTeam)
		api.GET("/teams", c.team.ListTeams)
		api.GET("/teams/:id", c.team.GetTeam)
		api.PUT("/teams/:id", c.team.UpdateTeam)
		api.DELETE("/teams/:id", c.team.DeleteTeam)

		// 赛事
		api.POST("/events", c.event.CreateEvent)
		api.GET("/events", c.event.ListEvents)
		api.GET("/events/:id", c.event.GetEvent)
		api.PUT("/events/:id", c.event.UpdateEvent)
		api.DELETE("/events/:id", c.event.DeleteEvent)

		// 对局
		api.POST("/events/:id/submit", c.gameplay.SubmitAnswer)
		api.GET("/events/:id/hints/:challenge_id", c.gameplay.RevealHint)
		api.GET("/events/:id/leaderboard", c.gameplay.GetLeaderboard)
		api.GET("/events/:id/teams/:team_id/progress", c.gameplay.GetProgress)

		// 运维
		api.POST("/admin/cleanup", c.team.CleanupOrphans)
	}
}
