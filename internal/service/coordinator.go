package service

import (
	"errors"
	"sync"
	"time"

	"github.com/wellnesslog/internal/store"
	"github.com/wellnesslog/internal/wellness"
)

// Screen 为导航状态机的封闭屏幕集合
type Screen string

const (
	ScreenWelcome            Screen = "welcome"
	ScreenOnboarding         Screen = "onboarding"
	ScreenFocusSelection     Screen = "focus_selection"
	ScreenConfirmation       Screen = "confirmation"
	ScreenHome               Screen = "home"
	ScreenAssessmentWelcome  Screen = "assessment_welcome"
	ScreenAssessmentQuestion Screen = "assessment_question"
	ScreenDailyCheckIn       Screen = "daily_check_in"
	ScreenDailyAction        Screen = "daily_action"
	ScreenFeedback           Screen = "feedback"
	ScreenProgress           Screen = "progress"
)

// ScreenState 为屏幕及其参数（评估题号 / 行动维度）
type ScreenState struct {
	Screen        Screen             `json:"screen"`
	QuestionIndex int                `json:"question_index,omitempty"`
	Dimension     wellness.Dimension `json:"dimension,omitempty"`
}

var (
	// ErrFocusIncomplete 在关注维度不足时由确认操作返回
	ErrFocusIncomplete = errors.New("focus selection incomplete")
	// ErrInvalidScore 表示评估打分不在 1-5 之间
	ErrInvalidScore = errors.New("assessment score out of range")
	// ErrNotInAssessment 表示当前不处于评估答题状态
	ErrNotInAssessment = errors.New("not answering assessment")
)

// Coordinator 为唯一的出入口：串联"行动完成 → 游戏化更新 → 持久化 → 推进界面状态"
// 所有档案变更都经过同一把锁，保证同一时刻只有一个变更在途
type Coordinator struct {
	mu     sync.Mutex
	repo   *store.Repository
	engine *wellness.Engine

	profile    *wellness.UserProfile
	journey    *wellness.WellnessJourney
	assessment *wellness.WellnessAssessment

	responses map[wellness.Dimension]int
	screen    ScreenState

	journeyWG sync.WaitGroup
}

// NewCoordinator 加载已持久化的状态并确定初始屏幕
// 关注维度已提交过的老用户直接回到主界面，否则进入欢迎流程
func NewCoordinator(repo *store.Repository, engine *wellness.Engine) *Coordinator {
	c := &Coordinator{
		repo:       repo,
		engine:     engine,
		profile:    repo.LoadProfile(),
		journey:    repo.LoadJourney(),
		assessment: repo.LoadAssessment(),
		responses:  map[wellness.Dimension]int{},
	}

	if len(c.profile.SelectedWellnessFocus) >= wellness.MinFocusDimensions {
		c.screen = ScreenState{Screen: ScreenHome}
	} else {
		c.screen = ScreenState{Screen: ScreenWelcome}
	}
	return c
}

// Screen 返回当前屏幕状态
func (c *Coordinator) Screen() ScreenState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.screen
}

// StartOnboarding 从欢迎页进入引导
func (c *Coordinator) StartOnboarding() ScreenState {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.screen = ScreenState{Screen: ScreenOnboarding}
	return c.screen
}

// ShowFocusSelection 进入关注维度选择
func (c *Coordinator) ShowFocusSelection() ScreenState {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.screen = ScreenState{Screen: ScreenFocusSelection}
	return c.screen
}

// ToggleFocusDimension 增删一个关注维度并立即持久化
// 超出上限的新增被静默拒绝（返回 false），界面应当据此禁用控件
func (c *Coordinator) ToggleFocusDimension(d wellness.Dimension) ([]wellness.Dimension, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	changed := c.profile.ToggleFocus(d)
	if changed {
		c.saveProfile()
	}

	selected := make([]wellness.Dimension, len(c.profile.SelectedWellnessFocus))
	copy(selected, c.profile.SelectedWellnessFocus)
	return selected, changed
}

// CompleteFocusSelection 提交关注维度并进入确认页
// 不足下限时返回 ErrFocusIncomplete，状态不变
func (c *Coordinator) CompleteFocusSelection() (ScreenState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.profile.SelectedWellnessFocus) < wellness.MinFocusDimensions {
		return c.screen, ErrFocusIncomplete
	}

	c.screen = ScreenState{Screen: ScreenConfirmation}
	return c.screen, nil
}

// ConfirmOnboarding 完成引导，进入评估入口
func (c *Coordinator) ConfirmOnboarding() ScreenState {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.screen = ScreenState{Screen: ScreenAssessmentWelcome}
	return c.screen
}

// BeginAssessment 开始答题，题目按维度声明顺序逐个提问
func (c *Coordinator) BeginAssessment() ScreenState {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.responses = map[wellness.Dimension]int{}
	c.screen = ScreenState{Screen: ScreenAssessmentQuestion, QuestionIndex: 0}
	return c.screen
}

// AnswerAssessmentQuestion 记录当前题目的打分并推进到下一题
// 答完全部题目后：生成评估、后台构建旅程、回到主界面
func (c *Coordinator) AnswerAssessmentQuestion(score int, now time.Time) (ScreenState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.screen.Screen != ScreenAssessmentQuestion {
		return c.screen, ErrNotInAssessment
	}
	if score < 1 || score > 5 {
		return c.screen, ErrInvalidScore
	}

	dimension := wellness.AllDimensions[c.screen.QuestionIndex]
	c.responses[dimension] = score

	next := c.screen.QuestionIndex + 1
	if next < wellness.AssessmentQuestionCount {
		c.screen = ScreenState{Screen: ScreenAssessmentQuestion, QuestionIndex: next}
		return c.screen, nil
	}

	assessment := wellness.NewAssessment(c.responses, now)
	c.assessment = assessment
	c.repo.SaveAssessment(assessment)

	// 旅程生成对调用方即发即忘，界面立即回到主屏
	// 任务句柄保留在协调器上，写回仍走同一把锁，不会与档案保存竞争
	c.journeyWG.Add(1)
	go func() {
		defer c.journeyWG.Done()
		journey := wellness.BuildJourney(assessment, now)

		c.mu.Lock()
		defer c.mu.Unlock()
		c.journey = journey
		c.repo.SaveJourney(journey)
	}()

	c.screen = ScreenState{Screen: ScreenHome}
	return c.screen, nil
}

// WaitForJourney 阻塞等待后台旅程构建完成，供测试与优雅退出使用
func (c *Coordinator) WaitForJourney() {
	c.journeyWG.Wait()
}

// ResetDailyState 每日翻转：过期挑战重新生成、清理隔日残留并持久化
// 应在应用回到前台、当天第一次行动判定之前调用
func (c *Coordinator) ResetDailyState(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.engine.ResetDailyState(c.profile, now)
	c.saveProfile()
}

// CompleteAction 完成一次行动：先做每日翻转，再走游戏化引擎，最后整体持久化一次
// 返回反馈数据与反馈屏幕
func (c *Coordinator) CompleteAction(d wellness.Dimension, now time.Time) (wellness.ActionResult, ScreenState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.engine.ResetDailyState(c.profile, now)
	result := c.engine.CompleteAction(c.profile, d, now)

	c.saveProfile()
	c.repo.SaveDailyCheckin(store.DailyCheckin{
		Date:       wellness.StartOfDay(now),
		Dimensions: append([]wellness.Dimension{}, c.profile.TodaysDimensionCompleted...),
	})

	c.screen = ScreenState{Screen: ScreenFeedback, Dimension: d}
	return result, c.screen
}

// ReturnHome 从任意流程回到主界面（主界面是所有流程的收束点）
func (c *Coordinator) ReturnHome() ScreenState {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.screen = ScreenState{Screen: ScreenHome}
	return c.screen
}

// ShowDailyCheckIn 进入每日签到页
func (c *Coordinator) ShowDailyCheckIn() ScreenState {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.screen = ScreenState{Screen: ScreenDailyCheckIn}
	return c.screen
}

// StartDailyAction 进入指定维度的行动页（带倒计时的练习界面）
func (c *Coordinator) StartDailyAction(d wellness.Dimension) ScreenState {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.screen = ScreenState{Screen: ScreenDailyAction, Dimension: d}
	return c.screen
}

// ShowProgress 进入进度页
func (c *Coordinator) ShowProgress() ScreenState {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.screen = ScreenState{Screen: ScreenProgress}
	return c.screen
}

// AdvanceJourneyPhase 推进旅程阶段并持久化，返回是否发生推进
func (c *Coordinator) AdvanceJourneyPhase() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.journey == nil {
		return false
	}
	advanced := c.journey.AdvanceToNextPhase()
	if advanced {
		c.repo.SaveJourney(c.journey)
	}
	return advanced
}

// HasCompletedToday 判断 now 所在自然日是否已完成过行动
func (c *Coordinator) HasCompletedToday(now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.profile.HasCompletedAnyActionToday(now)
}

// TotalEvidences 返回全部维度证据总数
func (c *Coordinator) TotalEvidences() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.profile.TotalEvidences()
}

// CurrentStreak 返回指定维度的连胜
func (c *Coordinator) CurrentStreak(d wellness.Dimension) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if identity, ok := c.profile.Identities[d]; ok {
		return identity.CurrentStreak
	}
	return 0
}

// GlobalStreak 返回全局连胜与最长连胜
func (c *Coordinator) GlobalStreak() (current, longest int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.profile.CurrentStreak, c.profile.LongestStreak
}

// DominantIdentity 返回证据最多的身份记录副本
func (c *Coordinator) DominantIdentity() (wellness.Identity, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	d, ok := c.profile.DominantDimension()
	if !ok {
		return wellness.Identity{}, false
	}
	return *c.profile.Identities[d], true
}

// PersonalityType 返回当前人格类型，尚无评估时回退 achiever
func (c *Coordinator) PersonalityType() wellness.PersonalityType {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.personalityLocked()
}

func (c *Coordinator) personalityLocked() wellness.PersonalityType {
	if c.journey != nil {
		return c.journey.PersonalityType
	}
	if c.assessment != nil {
		return c.assessment.PersonalityType()
	}
	return wellness.PersonalityAchiever
}

// SuggestedAction 为当前时刻合成下一步行动建议
// 优先取今日未完成的关注维度，其次是主导维度，兜底身体维度
func (c *Coordinator) SuggestedAction(now time.Time) wellness.AdaptiveMicroAction {
	c.mu.Lock()
	defer c.mu.Unlock()

	dimension := wellness.DimensionPhysical
	picked := false
	for _, focus := range c.profile.SelectedWellnessFocus {
		if !c.profile.CompletedDimensionToday(focus) {
			dimension = focus
			picked = true
			break
		}
	}
	if !picked {
		if dominant, ok := c.profile.DominantDimension(); ok {
			dimension = dominant
		}
	}

	identity := c.profile.IdentityFor(dimension)
	level := wellness.SelectActionLevel(identity)
	tod := wellness.DeriveTimeOfDay(now)

	return wellness.BuildAdaptiveAction(dimension, level, tod, c.personalityLocked())
}

// Nudge 返回当前时刻的助推消息，可能为 nil；只读查询，不变更状态
func (c *Coordinator) Nudge(now time.Time) *wellness.MotivationalNudge {
	c.mu.Lock()
	defer c.mu.Unlock()
	return wellness.ContextualNudge(now, c.profile)
}

// Journey 返回当前旅程，可能为 nil
func (c *Coordinator) Journey() *wellness.WellnessJourney {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.journey
}

// ProgressOverview 汇总进度页所需的只读数据
type ProgressOverview struct {
	TotalXP        int                      `json:"total_xp"`
	CurrentStreak  int                      `json:"current_streak"`
	LongestStreak  int                      `json:"longest_streak"`
	TotalEvidences int                      `json:"total_evidences"`
	Identities     []wellness.Identity      `json:"identities"`
	TodaysDone     []wellness.Dimension     `json:"todays_done"`
	Challenge      *wellness.DailyChallenge `json:"challenge,omitempty"`
}

// Progress 返回进度概览（身份按维度声明顺序排列）
func (c *Coordinator) Progress() ProgressOverview {
	c.mu.Lock()
	defer c.mu.Unlock()

	identities := make([]wellness.Identity, 0, len(c.profile.Identities))
	for _, d := range wellness.AllDimensions {
		if identity, ok := c.profile.Identities[d]; ok {
			identities = append(identities, *identity)
		}
	}

	overview := ProgressOverview{
		TotalXP:        c.profile.TotalXP,
		CurrentStreak:  c.profile.CurrentStreak,
		LongestStreak:  c.profile.LongestStreak,
		TotalEvidences: c.profile.TotalEvidences(),
		Identities:     identities,
		TodaysDone:     append([]wellness.Dimension{}, c.profile.TodaysDimensionCompleted...),
	}
	if c.profile.CurrentDailyChallenge != nil {
		challenge := *c.profile.CurrentDailyChallenge
		overview.Challenge = &challenge
	}
	return overview
}

// WeeklyReport 生成本周回顾的 Markdown 文本
func (c *Coordinator) WeeklyReport(now time.Time) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return wellness.WeeklyReport(c.profile, c.journey, now)
}

// saveProfile 持久化档案；写失败按核心规范不作为用户可见错误处理
func (c *Coordinator) saveProfile() {
	c.repo.SaveProfile(c.profile)
}
