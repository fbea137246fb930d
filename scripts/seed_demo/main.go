package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/wellnesslog/internal/config"
	"github.com/wellnesslog/internal/db"
	"github.com/wellnesslog/internal/store"
	"github.com/wellnesslog/internal/wellness"
)

// 生成两周的演示打卡数据，便于本地验证进度页与回顾报告
func main() {
	cfg := config.Load()

	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	repo := store.NewRepository(store.NewGormKV(db.DB))
	engine := wellness.NewEngine(rand.New(rand.NewSource(42)))

	profile := wellness.NewUserProfile()
	profile.ToggleFocus(wellness.DimensionPhysical)
	profile.ToggleFocus(wellness.DimensionMental)

	start := wellness.StartOfDay(time.Now().In(time.Local)).AddDate(0, 0, -13)
	for day := 0; day < 14; day++ {
		now := start.AddDate(0, 0, day).Add(9 * time.Hour)
		engine.ResetDailyState(profile, now)
		engine.CompleteAction(profile, wellness.DimensionPhysical, now)

		// 隔天再完成一个心智行动，制造同日第二次行动的数据
		if day%2 == 0 {
			engine.CompleteAction(profile, wellness.DimensionMental, now.Add(10*time.Hour))
		}
	}

	if err := repo.SaveProfile(profile); err != nil {
		log.Fatal("写入演示档案失败:", err)
	}

	fmt.Printf("演示数据已生成：XP=%d 连胜=%d 证据=%d\n", profile.TotalXP, profile.CurrentStreak, profile.TotalEvidences())
}
