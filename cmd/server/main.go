package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/wellnesslog/internal/config"
	"github.com/wellnesslog/internal/db"
	"github.com/wellnesslog/internal/handler"
	"github.com/wellnesslog/internal/router"
	"github.com/wellnesslog/internal/service"
	"github.com/wellnesslog/internal/store"
	"github.com/wellnesslog/internal/wellness"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// 确保主人账户存在
	if err := db.EnsureOwner(cfg.OwnerUsername, cfg.OwnerPassword); err != nil {
		log.Fatalf("failed to ensure owner account: %v", err)
	}

	repo := store.NewRepository(store.NewGormKV(db.DB))
	coordinator := service.NewCoordinator(repo, wellness.NewEngine(nil))
	api := handler.NewAPI(db.DB, coordinator)

	// 设置并运行 Gin 服务器
	r := router.SetupRouter(api, cfg.SessionSecret)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
