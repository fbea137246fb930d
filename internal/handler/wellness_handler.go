package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wellnesslog/internal/wellness"
)

// GetState 返回当前屏幕与档案的概要数字
func (a *API) GetState(c *gin.Context) {
	now := time.Now().In(time.Local)
	current, longest := a.coordinator.GlobalStreak()

	payload := gin.H{
		"screen":              a.coordinator.Screen(),
		"has_completed_today": a.coordinator.HasCompletedToday(now),
		"total_evidences":     a.coordinator.TotalEvidences(),
		"current_streak":      current,
		"longest_streak":      longest,
		"personality_type":    a.coordinator.PersonalityType(),
	}

	if dominant, ok := a.coordinator.DominantIdentity(); ok {
		payload["dominant_identity"] = gin.H{
			"dimension":      dominant.Dimension,
			"evidence_count": dominant.EvidenceCount,
			"level":          dominant.Level,
		}
	}

	c.JSON(http.StatusOK, payload)
}

// ToggleFocus 增删一个关注维度
func (a *API) ToggleFocus(c *gin.Context) {
	dimension := wellness.Dimension(c.Param("dimension"))
	if !dimension.Valid() {
		respondError(c, http.StatusBadRequest, "无效的维度")
		return
	}

	selected, changed := a.coordinator.ToggleFocusDimension(dimension)
	c.JSON(http.StatusOK, gin.H{"selected": selected, "changed": changed})
}

// CommitFocus 提交关注维度选择
func (a *API) CommitFocus(c *gin.Context) {
	state, err := a.coordinator.CompleteFocusSelection()
	if err != nil {
		respondError(c, http.StatusBadRequest, "请先选择至少两个关注维度")
		return
	}
	c.JSON(http.StatusOK, gin.H{"screen": state})
}

// BeginAssessment 开始评估答题
func (a *API) BeginAssessment(c *gin.Context) {
	state := a.coordinator.BeginAssessment()
	c.JSON(http.StatusOK, gin.H{"screen": state, "question_count": wellness.AssessmentQuestionCount})
}

// AnswerAssessment 记录当前题目的打分
func (a *API) AnswerAssessment(c *gin.Context) {
	var payload struct {
		Score int `json:"score"`
	}
	if !bindJSON(c, &payload, "请求参数不合法") {
		return
	}

	state, err := a.coordinator.AnswerAssessmentQuestion(payload.Score, time.Now().In(time.Local))
	if err != nil {
		respondError(c, http.StatusBadRequest, "打分无效或当前不在答题中")
		return
	}
	c.JSON(http.StatusOK, gin.H{"screen": state})
}

// ResetDaily 执行每日状态翻转，应在应用回到前台时调用
func (a *API) ResetDaily(c *gin.Context) {
	a.coordinator.ResetDailyState(time.Now().In(time.Local))
	c.JSON(http.StatusOK, gin.H{"reset": true})
}

// CompleteAction 完成一次行动并返回反馈数据
func (a *API) CompleteAction(c *gin.Context) {
	var payload struct {
		Dimension string `json:"dimension"`
	}
	if !bindJSON(c, &payload, "请求参数不合法") {
		return
	}

	dimension := wellness.Dimension(payload.Dimension)
	if !dimension.Valid() {
		respondError(c, http.StatusBadRequest, "无效的维度")
		return
	}

	result, state := a.coordinator.CompleteAction(dimension, time.Now().In(time.Local))
	c.JSON(http.StatusOK, gin.H{"result": result, "screen": state})
}

// GetSuggestion 返回当前时刻的个性化行动建议
func (a *API) GetSuggestion(c *gin.Context) {
	now := time.Now().In(time.Local)
	action := a.coordinator.SuggestedAction(now)

	tod := wellness.DeriveTimeOfDay(now)
	c.JSON(http.StatusOK, gin.H{
		"action":       action,
		"time_of_day":  tod,
		"energy_level": wellness.EnergyLevel(tod),
	})
}

// GetNudge 返回当前时刻的助推消息；无助推时 nudge 为 null
func (a *API) GetNudge(c *gin.Context) {
	nudge := a.coordinator.Nudge(time.Now().In(time.Local))
	c.JSON(http.StatusOK, gin.H{"nudge": nudge})
}

// GetJourney 返回当前旅程
func (a *API) GetJourney(c *gin.Context) {
	journey := a.coordinator.Journey()
	if journey == nil {
		c.JSON(http.StatusOK, gin.H{"journey": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"journey":       journey,
		"current_phase": journey.CurrentPhase(),
	})
}

// AdvanceJourney 推进旅程阶段；已在最后阶段时 advanced 为 false
func (a *API) AdvanceJourney(c *gin.Context) {
	advanced := a.coordinator.AdvanceJourneyPhase()
	c.JSON(http.StatusOK, gin.H{"advanced": advanced})
}

// GetProgress 返回进度概览
func (a *API) GetProgress(c *gin.Context) {
	a.coordinator.ShowProgress()
	c.JSON(http.StatusOK, a.coordinator.Progress())
}

// ReturnHome 回到主界面
func (a *API) ReturnHome(c *gin.Context) {
	state := a.coordinator.ReturnHome()
	c.JSON(http.StatusOK, gin.H{"screen": state})
}
