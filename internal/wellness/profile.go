package wellness

import "time"

const (
	// MinFocusDimensions 为引导期必须选择的最少关注维度数
	MinFocusDimensions = 2
	// MaxFocusDimensions 为允许选择的最多关注维度数，超出时静默拒绝
	MaxFocusDimensions = 3
)

// DailyProgress 是一条不可变的完成记录
// DailyProgressHistory 只追加不修改，重放全部记录即可复原累计 XP
type DailyProgress struct {
	Dimension           Dimension `json:"dimension"`
	XPEarned            int       `json:"xp_earned"`
	StreakAtCompletion  int       `json:"streak_at_completion"`
	IsSecondActionOfDay bool      `json:"is_second_action_of_day"`
	Timestamp           time.Time `json:"timestamp"`
}

// ChallengeType 为每日挑战的三种固定类型
type ChallengeType string

const (
	ChallengeCompleteBefore8PM     ChallengeType = "complete_before_8pm"
	ChallengeCompleteTwoDimensions ChallengeType = "complete_two_dimensions"
	ChallengeMaintainStreak        ChallengeType = "maintain_streak"
)

// AllChallengeTypes 列出可随机生成的挑战类型
var AllChallengeTypes = []ChallengeType{
	ChallengeCompleteBefore8PM,
	ChallengeCompleteTwoDimensions,
	ChallengeMaintainStreak,
}

// DailyChallenge 同一时刻最多一个，日期不是今天时由每日重置重新生成
type DailyChallenge struct {
	ID          string        `json:"id"`
	Type        ChallengeType `json:"type"`
	XPReward    int           `json:"xp_reward"`
	IsCompleted bool          `json:"is_completed"`
	Date        time.Time     `json:"date"`
}

// UserProfile 为单一安装的全部用户状态
// 首次启动创建一次，由游戏化引擎原地变更，整体读写持久层
type UserProfile struct {
	TotalXP                  int                      `json:"total_xp"`
	CurrentStreak            int                      `json:"current_streak"`
	LongestStreak            int                      `json:"longest_streak"`
	LastActionDate           *time.Time               `json:"last_action_date,omitempty"`
	SelectedWellnessFocus    []Dimension              `json:"selected_wellness_focus"`
	Identities               map[Dimension]*Identity  `json:"identities"`
	TodaysDimensionCompleted []Dimension              `json:"todays_dimension_completed"`
	DailyProgressHistory     []DailyProgress          `json:"daily_progress_history"`
	CurrentDailyChallenge    *DailyChallenge          `json:"current_daily_challenge,omitempty"`
}

// NewUserProfile 创建空档案
func NewUserProfile() *UserProfile {
	return &UserProfile{
		SelectedWellnessFocus:    []Dimension{},
		Identities:               map[Dimension]*Identity{},
		TodaysDimensionCompleted: []Dimension{},
		DailyProgressHistory:     []DailyProgress{},
	}
}

// IdentityFor 返回维度对应的身份记录，不存在时惰性创建
func (p *UserProfile) IdentityFor(d Dimension) *Identity {
	if p.Identities == nil {
		p.Identities = map[Dimension]*Identity{}
	}
	identity, ok := p.Identities[d]
	if !ok {
		identity = NewIdentity(d)
		p.Identities[d] = identity
	}
	return identity
}

// HasCompletedAnyActionToday 判断 now 所在自然日是否已有完成记录
func (p *UserProfile) HasCompletedAnyActionToday(now time.Time) bool {
	return p.LastActionDate != nil && SameDay(*p.LastActionDate, now)
}

// HasFocus 判断维度是否已在关注列表中
func (p *UserProfile) HasFocus(d Dimension) bool {
	for _, existing := range p.SelectedWellnessFocus {
		if existing == d {
			return true
		}
	}
	return false
}

// ToggleFocus 在关注列表中增删一个维度
// 已包含则移除；未包含且未达上限则追加；超出上限时静默拒绝并返回 false
func (p *UserProfile) ToggleFocus(d Dimension) bool {
	for idx, existing := range p.SelectedWellnessFocus {
		if existing == d {
			p.SelectedWellnessFocus = append(p.SelectedWellnessFocus[:idx], p.SelectedWellnessFocus[idx+1:]...)
			return true
		}
	}

	if len(p.SelectedWellnessFocus) >= MaxFocusDimensions {
		return false
	}

	p.SelectedWellnessFocus = append(p.SelectedWellnessFocus, d)
	return true
}

// CompletedDimensionToday 判断某维度今日是否已完成
func (p *UserProfile) CompletedDimensionToday(d Dimension) bool {
	for _, done := range p.TodaysDimensionCompleted {
		if done == d {
			return true
		}
	}
	return false
}

// DominantDimension 返回证据数最高的维度，平局按声明顺序取先者
// 尚无任何身份记录时返回 false
func (p *UserProfile) DominantDimension() (Dimension, bool) {
	best := Dimension("")
	bestCount := -1
	for _, d := range AllDimensions {
		identity, ok := p.Identities[d]
		if !ok {
			continue
		}
		if identity.EvidenceCount > bestCount {
			best = d
			bestCount = identity.EvidenceCount
		}
	}
	if bestCount < 0 {
		return "", false
	}
	return best, true
}

// LeastPracticedDimension 返回证据数最低的维度，无记录视作 0
// 平局按声明顺序取先者
func (p *UserProfile) LeastPracticedDimension() Dimension {
	least := AllDimensions[0]
	leastCount := p.evidenceCountFor(least)
	for _, d := range AllDimensions[1:] {
		if count := p.evidenceCountFor(d); count < leastCount {
			least = d
			leastCount = count
		}
	}
	return least
}

func (p *UserProfile) evidenceCountFor(d Dimension) int {
	if identity, ok := p.Identities[d]; ok {
		return identity.EvidenceCount
	}
	return 0
}

// TotalEvidences 返回全部维度的证据总数
func (p *UserProfile) TotalEvidences() int {
	total := 0
	for _, identity := range p.Identities {
		total += identity.EvidenceCount
	}
	return total
}
