// @title Challenge Hub API
// @version 1.0
// @description 面向限时团队竞赛的计分后端：提交答案、解锁提示、实时排行榜。

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"

	"challenge_hub_backend/internal/app"
	"challenge_hub_backend/internal/config"
	"challenge_hub_backend/pkg/logger"
)

func main() {
	// 命令行参数
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	migrate := flag.Bool("migrate", false, "启动时强制执行数据库迁移（即使是 release 模式）")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("数据库迁移完成，退出程序")
		return
	}

	application.Run()
}
