package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/wellnesslog/internal/handler"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, sessionSecret string) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("wellnesslog_session", store))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/login", api.Login)
		auth.POST("/logout", api.Logout)
	}

	// 需要认证的核心接口
	apiGroup := r.Group("/api")
	apiGroup.Use(handler.AuthRequired())
	{
		apiGroup.GET("/state", api.GetState)
		apiGroup.POST("/home", api.ReturnHome)

		apiGroup.POST("/focus/:dimension/toggle", api.ToggleFocus)
		apiGroup.POST("/focus/commit", api.CommitFocus)

		apiGroup.POST("/assessment/begin", api.BeginAssessment)
		apiGroup.POST("/assessment/answer", api.AnswerAssessment)

		apiGroup.POST("/checkin/reset", api.ResetDaily)
		apiGroup.POST("/actions/complete", api.CompleteAction)

		apiGroup.GET("/suggestion", api.GetSuggestion)
		apiGroup.GET("/nudge", api.GetNudge)

		apiGroup.GET("/journey", api.GetJourney)
		apiGroup.POST("/journey/advance", api.AdvanceJourney)

		apiGroup.GET("/progress", api.GetProgress)
		apiGroup.GET("/progress/report", api.GetWeeklyReport)
	}

	return r
}
