package service

import (
	"math/rand"
	"testing"
	"time"

	"github.com/wellnesslog/internal/db"
	"github.com/wellnesslog/internal/store"
	"github.com/wellnesslog/internal/wellness"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupCoordinator(t *testing.T) (*Coordinator, *store.Repository, func()) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.AppState{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	db.DB = gdb
	repo := store.NewRepository(store.NewGormKV(gdb))
	coordinator := NewCoordinator(repo, wellness.NewEngine(rand.New(rand.NewSource(1))))

	return coordinator, repo, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestOnboardingFlowToHome(t *testing.T) {
	c, _, cleanup := setupCoordinator(t)
	defer cleanup()

	if c.Screen().Screen != ScreenWelcome {
		t.Fatalf("new install should start at welcome, got %s", c.Screen().Screen)
	}

	c.StartOnboarding()
	c.ShowFocusSelection()

	// 不足两个关注维度时不允许提交
	if _, err := c.CompleteFocusSelection(); err != ErrFocusIncomplete {
		t.Fatalf("expected ErrFocusIncomplete, got %v", err)
	}

	c.ToggleFocusDimension(wellness.DimensionPhysical)
	c.ToggleFocusDimension(wellness.DimensionMental)
	state, err := c.CompleteFocusSelection()
	if err != nil {
		t.Fatalf("CompleteFocusSelection returned error: %v", err)
	}
	if state.Screen != ScreenConfirmation {
		t.Fatalf("expected confirmation, got %s", state.Screen)
	}

	if got := c.ConfirmOnboarding(); got.Screen != ScreenAssessmentWelcome {
		t.Fatalf("expected assessment welcome, got %s", got.Screen)
	}
}

func TestToggleFocusSilentlyRejectsFourth(t *testing.T) {
	c, _, cleanup := setupCoordinator(t)
	defer cleanup()

	c.ToggleFocusDimension(wellness.DimensionPhysical)
	c.ToggleFocusDimension(wellness.DimensionMental)
	c.ToggleFocusDimension(wellness.DimensionSocial)

	selected, changed := c.ToggleFocusDimension(wellness.DimensionSpiritual)
	if changed {
		t.Fatal("fourth focus dimension must be silently rejected")
	}
	if len(selected) != 3 {
		t.Fatalf("expected 3 selected, got %v", selected)
	}

	// 再次点击已选维度应当移除
	selected, changed = c.ToggleFocusDimension(wellness.DimensionMental)
	if !changed || len(selected) != 2 {
		t.Fatalf("expected removal, got changed=%v selected=%v", changed, selected)
	}
}

func TestAssessmentFlowBuildsJourney(t *testing.T) {
	c, repo, cleanup := setupCoordinator(t)
	defer cleanup()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local)

	state := c.BeginAssessment()
	if state.Screen != ScreenAssessmentQuestion || state.QuestionIndex != 0 {
		t.Fatalf("unexpected first question state: %+v", state)
	}

	// 打分越界被拒绝
	if _, err := c.AnswerAssessmentQuestion(6, now); err != ErrInvalidScore {
		t.Fatalf("expected ErrInvalidScore, got %v", err)
	}

	scores := []int{5, 1, 3, 1, 3, 5, 4}
	for i, score := range scores {
		state, err := c.AnswerAssessmentQuestion(score, now)
		if err != nil {
			t.Fatalf("answer %d returned error: %v", i, err)
		}
		if i < len(scores)-1 && state.QuestionIndex != i+1 {
			t.Fatalf("expected question %d, got %d", i+1, state.QuestionIndex)
		}
	}

	// 答完回到主界面，旅程在后台生成
	if c.Screen().Screen != ScreenHome {
		t.Fatalf("expected home after assessment, got %s", c.Screen().Screen)
	}
	c.WaitForJourney()

	journey := c.Journey()
	if journey == nil || len(journey.Phases) != 4 {
		t.Fatalf("expected built journey, got %+v", journey)
	}
	if repo.LoadJourney() == nil {
		t.Fatal("journey should be persisted")
	}
	if repo.LoadAssessment() == nil {
		t.Fatal("assessment should be persisted")
	}

	// 不在答题状态时拒绝作答
	if _, err := c.AnswerAssessmentQuestion(3, now); err != ErrNotInAssessment {
		t.Fatalf("expected ErrNotInAssessment, got %v", err)
	}
}

func TestCompleteActionPersistsAtomically(t *testing.T) {
	c, repo, cleanup := setupCoordinator(t)
	defer cleanup()
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local)

	c.ResetDailyState(now)
	result, state := c.CompleteAction(wellness.DimensionPhysical, now)

	if result.XPEarned < wellness.BaseActionXP {
		t.Fatalf("expected at least base XP, got %d", result.XPEarned)
	}
	if state.Screen != ScreenFeedback || state.Dimension != wellness.DimensionPhysical {
		t.Fatalf("expected feedback screen, got %+v", state)
	}
	if !c.HasCompletedToday(now) {
		t.Fatal("expected completion recorded")
	}

	// 持久化后的档案与内存一致：流水与完成列表一并写入
	persisted := repo.LoadProfile()
	if persisted.TotalXP != result.XPEarned {
		t.Fatalf("persisted XP %d != result %d", persisted.TotalXP, result.XPEarned)
	}
	if len(persisted.DailyProgressHistory) != 1 || len(persisted.TodaysDimensionCompleted) != 1 {
		t.Fatalf("ledger and completion list must persist together: %+v", persisted)
	}

	checkin, ok := repo.LoadDailyCheckin(now)
	if !ok || len(checkin.Dimensions) != 1 {
		t.Fatalf("expected today's checkin, got ok=%v %+v", ok, checkin)
	}

	if got := c.ReturnHome(); got.Screen != ScreenHome {
		t.Fatalf("expected home, got %s", got.Screen)
	}
}

func TestCoordinatorReloadsCommittedState(t *testing.T) {
	c, repo, cleanup := setupCoordinator(t)
	defer cleanup()
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local)

	c.ToggleFocusDimension(wellness.DimensionPhysical)
	c.ToggleFocusDimension(wellness.DimensionMental)
	c.CompleteAction(wellness.DimensionPhysical, now)

	// 重启后的协调器直接回到主界面并保留进度
	restarted := NewCoordinator(repo, wellness.NewEngine(rand.New(rand.NewSource(2))))
	if restarted.Screen().Screen != ScreenHome {
		t.Fatalf("expected home after restart, got %s", restarted.Screen().Screen)
	}
	if restarted.TotalEvidences() != 1 {
		t.Fatalf("expected 1 evidence after restart, got %d", restarted.TotalEvidences())
	}
	if restarted.CurrentStreak(wellness.DimensionPhysical) != 1 {
		t.Fatalf("expected physical streak 1, got %d", restarted.CurrentStreak(wellness.DimensionPhysical))
	}
}

func TestSuggestedActionPrefersUnfinishedFocus(t *testing.T) {
	c, _, cleanup := setupCoordinator(t)
	defer cleanup()
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local)

	c.ToggleFocusDimension(wellness.DimensionSpiritual)
	c.ToggleFocusDimension(wellness.DimensionSocial)

	action := c.SuggestedAction(now)
	if action.Dimension != wellness.DimensionSpiritual {
		t.Fatalf("expected first focus dimension, got %s", action.Dimension)
	}
	if action.Level != wellness.ActionMicro {
		t.Fatalf("fresh identity should suggest micro, got %s", action.Level)
	}

	// 第一个关注维度完成后建议切到第二个
	c.CompleteAction(wellness.DimensionSpiritual, now)
	action = c.SuggestedAction(now)
	if action.Dimension != wellness.DimensionSocial {
		t.Fatalf("expected second focus dimension, got %s", action.Dimension)
	}
}

func TestAdvanceJourneyPhase(t *testing.T) {
	c, _, cleanup := setupCoordinator(t)
	defer cleanup()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local)

	// 没有旅程时推进是空操作
	if c.AdvanceJourneyPhase() {
		t.Fatal("advance without journey must be a no-op")
	}

	c.BeginAssessment()
	for i := 0; i < wellness.AssessmentQuestionCount; i++ {
		if _, err := c.AnswerAssessmentQuestion(3, now); err != nil {
			t.Fatalf("answer returned error: %v", err)
		}
	}
	c.WaitForJourney()

	for i := 0; i < 3; i++ {
		if !c.AdvanceJourneyPhase() {
			t.Fatalf("advance %d should succeed", i)
		}
	}
	if c.AdvanceJourneyPhase() {
		t.Fatal("advance past final phase must fail")
	}
	if c.Journey().CurrentPhaseIndex != 3 {
		t.Fatalf("expected final phase index 3, got %d", c.Journey().CurrentPhaseIndex)
	}
}

func TestProgressAndReport(t *testing.T) {
	c, _, cleanup := setupCoordinator(t)
	defer cleanup()
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local)

	c.CompleteAction(wellness.DimensionPhysical, now)
	c.CompleteAction(wellness.DimensionMental, now.Add(time.Hour))

	overview := c.Progress()
	if overview.TotalXP != c.Progress().TotalXP {
		t.Fatal("progress overview should be stable")
	}
	if len(overview.Identities) != 2 {
		t.Fatalf("expected 2 identities, got %d", len(overview.Identities))
	}
	if overview.TotalEvidences != 2 {
		t.Fatalf("expected 2 evidences, got %d", overview.TotalEvidences)
	}

	report := c.WeeklyReport(now)
	if report == "" {
		t.Fatal("expected non-empty report")
	}
}
