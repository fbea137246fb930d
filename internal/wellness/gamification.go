package wellness

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

const (
	// BaseActionXP 为每次完成行动的固定基础奖励
	BaseActionXP = 10
	// SecondActionBonusXP 为同日第二次行动的额外奖励
	SecondActionBonusXP = 15
	// DailyChallengeXP 为每日挑战的固定奖励
	DailyChallengeXP = 20
)

// streakMilestoneBonuses 仅在全局连胜恰好等于键值时发放，跳过即不补发
var streakMilestoneBonuses = map[int]int{
	5:  20,
	7:  50,
	14: 100,
}

// ActionResult 返回给调用方用于反馈展示的计算结果
type ActionResult struct {
	XPEarned           int           `json:"xp_earned"`
	CurrentStreak      int           `json:"current_streak"`
	IsSecondAction     bool          `json:"is_second_action"`
	MilestoneBonus     int           `json:"milestone_bonus"`
	ChallengeCompleted bool          `json:"challenge_completed"`
	IdentityLevel      IdentityLevel `json:"identity_level"`
}

// Engine 实现游戏化规则：连胜推进、XP 计算、挑战判定、证据记录
// 随机源由外部注入，保证挑战生成在测试中可复现
type Engine struct {
	rng *rand.Rand
}

// NewEngine 构造游戏化引擎
func NewEngine(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{rng: rng}
}

// CompleteAction 处理一次行动完成，原地变更档案并返回反馈数据
// 全部变更在内存中完成，调用方在本次调用之后整体持久化一次
func (e *Engine) CompleteAction(p *UserProfile, d Dimension, now time.Time) ActionResult {
	isSecondAction := p.HasCompletedAnyActionToday(now)

	e.advanceGlobalStreak(p, now)

	xp := BaseActionXP
	if isSecondAction {
		xp += SecondActionBonusXP
	}

	milestoneBonus := streakMilestoneBonuses[p.CurrentStreak]
	if isSecondAction {
		// 同日第二次行动不会推进连胜，也就不会再次命中里程碑
		milestoneBonus = 0
	}
	xp += milestoneBonus

	challengeCompleted := e.evaluateChallenge(p, d, now)
	if challengeCompleted {
		xp += p.CurrentDailyChallenge.XPReward
	}

	p.TotalXP += xp
	actionTime := now
	p.LastActionDate = &actionTime

	p.DailyProgressHistory = append(p.DailyProgressHistory, DailyProgress{
		Dimension:           d,
		XPEarned:            xp,
		StreakAtCompletion:  p.CurrentStreak,
		IsSecondActionOfDay: isSecondAction,
		Timestamp:           now,
	})

	if !p.CompletedDimensionToday(d) {
		p.TodaysDimensionCompleted = append(p.TodaysDimensionCompleted, d)
	}

	identity := p.IdentityFor(d)
	identity.AddEvidence(now)

	return ActionResult{
		XPEarned:           xp,
		CurrentStreak:      p.CurrentStreak,
		IsSecondAction:     isSecondAction,
		MilestoneBonus:     milestoneBonus,
		ChallengeCompleted: challengeCompleted,
		IdentityLevel:      identity.Level,
	}
}

// advanceGlobalStreak 按自然日差推进全局连胜（独立于各维度连胜）
func (e *Engine) advanceGlobalStreak(p *UserProfile, now time.Time) {
	switch {
	case p.LastActionDate == nil:
		p.CurrentStreak = 1
	default:
		switch DaysBetween(*p.LastActionDate, now) {
		case 0:
			// 同日，不变
		case 1:
			p.CurrentStreak++
		default:
			p.CurrentStreak = 1
		}
	}

	if p.CurrentStreak > p.LongestStreak {
		p.LongestStreak = p.CurrentStreak
	}
}

// evaluateChallenge 检查当前挑战是否在本次行动中达成
// 判定 completeTwoDimensions 时把本次行动的维度计入今日完成集合
func (e *Engine) evaluateChallenge(p *UserProfile, d Dimension, now time.Time) bool {
	challenge := p.CurrentDailyChallenge
	if challenge == nil || challenge.IsCompleted {
		return false
	}

	satisfied := false
	switch challenge.Type {
	case ChallengeCompleteBefore8PM:
		satisfied = now.Hour() < 20
	case ChallengeCompleteTwoDimensions:
		distinct := map[Dimension]struct{}{d: {}}
		for _, done := range p.TodaysDimensionCompleted {
			distinct[done] = struct{}{}
		}
		satisfied = len(distinct) >= 2
	case ChallengeMaintainStreak:
		satisfied = p.CurrentStreak > 0
	}

	if satisfied {
		challenge.IsCompleted = true
	}
	return satisfied
}

// ResetDailyState 每日状态翻转：挑战过期则重新生成，清理隔日残留的完成列表
// 必须在当天第一次行动判定之前执行，通常在应用回到前台时调用
func (e *Engine) ResetDailyState(p *UserProfile, today time.Time) {
	if p.CurrentDailyChallenge == nil || !SameDay(p.CurrentDailyChallenge.Date, today) {
		p.CurrentDailyChallenge = e.generateDailyChallenge(today)
	}

	if !p.HasCompletedAnyActionToday(today) && len(p.TodaysDimensionCompleted) > 0 {
		p.TodaysDimensionCompleted = []Dimension{}
	}
}

// generateDailyChallenge 在三种类型中等概率随机生成当日挑战
func (e *Engine) generateDailyChallenge(today time.Time) *DailyChallenge {
	challengeType := AllChallengeTypes[e.rng.Intn(len(AllChallengeTypes))]
	return &DailyChallenge{
		ID:       uuid.NewString(),
		Type:     challengeType,
		XPReward: DailyChallengeXP,
		Date:     StartOfDay(today),
	}
}
