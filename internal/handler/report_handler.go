package handler

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GetWeeklyReport 生成本周回顾：Markdown 渲染为 HTML 后做净化
func (a *API) GetWeeklyReport(c *gin.Context) {
	now := time.Now().In(time.Local)
	markdown := a.coordinator.WeeklyReport(now)

	var rendered bytes.Buffer
	if err := markdownEngine.Convert([]byte(markdown), &rendered); err != nil {
		respondError(c, http.StatusInternalServerError, "生成回顾失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"markdown":     markdown,
		"html":         sanitizer.Sanitize(rendered.String()),
		"generated_at": now.Format(time.RFC3339),
	})
}
