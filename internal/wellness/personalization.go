package wellness

import "time"

// ActionLevel 表示行动的强度层级
type ActionLevel string

const (
	ActionMicro    ActionLevel = "micro"
	ActionMini     ActionLevel = "mini"
	ActionStandard ActionLevel = "standard"
	ActionExtended ActionLevel = "extended"
)

// actionDurations 为各层级的固定时长（秒）
var actionDurations = map[ActionLevel]int{
	ActionMicro:    45,
	ActionMini:     90,
	ActionStandard: 150,
	ActionExtended: 270,
}

var actionLevelEmojis = map[ActionLevel]string{
	ActionMicro:    "✨",
	ActionMini:     "🌱",
	ActionStandard: "🌿",
	ActionExtended: "🌳",
}

var actionLevelNames = map[ActionLevel]string{
	ActionMicro:    "微行动",
	ActionMini:     "小练习",
	ActionStandard: "标准练习",
	ActionExtended: "深度练习",
}

// TimeOfDay 为一天的四段划分
type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
	TimeNight     TimeOfDay = "night"
)

var timeOfDayEmojis = map[TimeOfDay]string{
	TimeMorning:   "🌅",
	TimeAfternoon: "☀️",
	TimeEvening:   "🌆",
	TimeNight:     "🌙",
}

// DeriveTimeOfDay 对 24 小时做纯划分：5-11 早晨，12-17 下午，18-22 傍晚，其余夜间
func DeriveTimeOfDay(now time.Time) TimeOfDay {
	hour := now.Hour()
	switch {
	case hour >= 5 && hour <= 11:
		return TimeMorning
	case hour >= 12 && hour <= 17:
		return TimeAfternoon
	case hour >= 18 && hour <= 22:
		return TimeEvening
	default:
		return TimeNight
	}
}

// EnergyLevel 为时段对应的展示用能量启发值，早晨最高夜间最低
// 仅用于排序与展示，绝不参与任何规则判定
func EnergyLevel(tod TimeOfDay) float64 {
	switch tod {
	case TimeMorning:
		return 1.0
	case TimeAfternoon:
		return 0.8
	case TimeEvening:
		return 0.5
	default:
		return 0.2
	}
}

// Consistency 计算身份的一致性得分
// (min(streak,7)/7 + 有无证据的固定项) / 2，取值范围 (0,1)
func Consistency(identity *Identity) float64 {
	streak := identity.CurrentStreak
	if streak > 7 {
		streak = 7
	}

	evidenceTerm := 0.3
	if identity.EvidenceCount > 0 {
		evidenceTerm = 0.8
	}

	return (float64(streak)/7 + evidenceTerm) / 2
}

// SelectActionLevel 按等级与一致性的 3×2 决策表选择行动层级
// 阈值固定：beginner>0.7→mini，building>0.8→standard，established>0.9→extended
func SelectActionLevel(identity *Identity) ActionLevel {
	consistency := Consistency(identity)

	switch identity.Level {
	case LevelEstablished:
		if consistency > 0.9 {
			return ActionExtended
		}
		return ActionStandard
	case LevelBuilding:
		if consistency > 0.8 {
			return ActionStandard
		}
		return ActionMini
	default:
		if consistency > 0.7 {
			return ActionMini
		}
		return ActionMicro
	}
}

// AdaptiveMicroAction 为个性化合成的一次行动建议
type AdaptiveMicroAction struct {
	Title           string      `json:"title"`
	Dimension       Dimension   `json:"dimension"`
	Level           ActionLevel `json:"level"`
	TimeOfDay       TimeOfDay   `json:"time_of_day"`
	DurationSeconds int         `json:"duration_seconds"`
	Instructions    []string    `json:"instructions"`
	Encouragement   string      `json:"encouragement"`
}

// personalityEncouragements 按人格类型附加的一句鼓励
var personalityEncouragements = map[PersonalityType]string{
	PersonalityAchiever: "完成它，就离目标又近一步。",
	PersonalityNurturer: "照顾好自己，才能更好地照顾别人。",
	PersonalitySeeker:   "每一次练习都是一次向内的探索。",
	PersonalityCreator:  "把这一刻当作你自己的作品。",
}

// instructionTable 为维度×层级的指令表
// 并非所有组合都有内容，缺失的组合通过 InstructionsFor 显式回退
var instructionTable = map[Dimension]map[ActionLevel][]string{
	DimensionPhysical: {
		ActionMicro:    {"站起来", "做一组伸展", "喝一杯水"},
		ActionMini:     {"原地快走或爬一层楼梯", "做十次深蹲", "放松肩颈"},
		ActionStandard: {"完成一组 10 分钟的循环训练", "记录身体感受"},
		ActionExtended: {"完成一次 20 分钟以上的锻炼", "拉伸放松", "记录训练内容"},
	},
	DimensionEmotional: {
		ActionMicro:    {"深呼吸三次", "说出此刻的情绪"},
		ActionMini:     {"写下三种感受", "为每种感受找一个原因"},
		ActionStandard: {"写一段情绪日记", "回顾今天触动你的瞬间"},
	},
	DimensionMental: {
		ActionMicro:    {"读一段文字", "合上后复述大意"},
		ActionMini:     {"读完一篇短文", "写一句话笔记"},
		ActionExtended: {"深度阅读 20 分钟", "整理成一页笔记", "讲给别人听"},
	},
	DimensionSocial: {
		ActionMicro:    {"给一位朋友发条消息"},
		ActionMini:     {"给家人打个简短电话", "表达一次感谢"},
	},
	DimensionSpiritual: {
		ActionMicro:    {"闭眼静坐一分钟"},
		ActionMini:     {"静坐三分钟", "写下一件感恩的事"},
		ActionStandard: {"完成一次 10 分钟冥想", "记录内心的变化"},
	},
	DimensionProfessional: {
		ActionMicro:    {"写下明天最重要的一件事"},
		ActionMini:     {"整理今天的待办清单", "划掉已完成项"},
	},
	DimensionEnvironmental: {
		ActionMicro:    {"清理桌面一角"},
		ActionMini:     {"整理一个抽屉", "丢掉三件不需要的物品"},
	},
}

// genericInstructions 为指令表缺口的显式回退文案
var genericInstructions = []string{"按自己的节奏完成这个维度的一次练习", "完成后回到这里打卡"}

// InstructionsFor 以全函数形式查指令表，缺失组合返回通用回退而非静默缺省
func InstructionsFor(d Dimension, level ActionLevel) []string {
	if levels, ok := instructionTable[d]; ok {
		if steps, ok := levels[level]; ok {
			return steps
		}
	}
	return genericInstructions
}

// BuildAdaptiveAction 合成个性化行动：标题、固定时长、指令与人格化鼓励
func BuildAdaptiveAction(d Dimension, level ActionLevel, tod TimeOfDay, personality PersonalityType) AdaptiveMicroAction {
	info := d.Info()
	title := actionLevelEmojis[level] + " " + info.DisplayName + actionLevelNames[level] + " " + timeOfDayEmojis[tod]

	encouragement, ok := personalityEncouragements[personality]
	if !ok {
		encouragement = personalityEncouragements[PersonalityAchiever]
	}

	return AdaptiveMicroAction{
		Title:           title,
		Dimension:       d,
		Level:           level,
		TimeOfDay:       tod,
		DurationSeconds: actionDurations[level],
		Instructions:    InstructionsFor(d, level),
		Encouragement:   encouragement,
	}
}

// NudgeKind 为助推消息的类型
type NudgeKind string

const (
	NudgeEncouragement NudgeKind = "encouragement"
	NudgeCelebration   NudgeKind = "celebration"
	NudgeReminder      NudgeKind = "reminder"
	NudgeExploration   NudgeKind = "exploration"
)

// MotivationalNudge 为只读的助推建议，绝不变更任何状态
type MotivationalNudge struct {
	Kind      NudgeKind `json:"kind"`
	Dimension Dimension `json:"dimension"`
	Message   string    `json:"message"`
}

// ContextualNudge 按时间与档案状态合成助推消息
// 早晨(10 点前)鼓励主导维度；傍晚(18 点后)已完成则庆祝、否则温和提醒；
// 周末建议探索练习最少的维度；其余时段不产生助推
func ContextualNudge(now time.Time, p *UserProfile) *MotivationalNudge {
	hour := now.Hour()

	if hour < 10 {
		dominant, ok := p.DominantDimension()
		if !ok {
			dominant = DimensionPhysical
		}
		return &MotivationalNudge{
			Kind:      NudgeEncouragement,
			Dimension: dominant,
			Message:   "早上好！今天从" + dominant.Info().DisplayName + "开始，延续你的势头。",
		}
	}

	if hour > 18 {
		if p.HasCompletedAnyActionToday(now) {
			return &MotivationalNudge{
				Kind:    NudgeCelebration,
				Message: "今天的练习已完成，给自己一点肯定。",
			}
		}
		return &MotivationalNudge{
			Kind:    NudgeReminder,
			Message: "一天还没结束，花一两分钟完成一个微行动吧。",
		}
	}

	weekday := now.Weekday()
	if weekday == time.Saturday || weekday == time.Sunday {
		least := p.LeastPracticedDimension()
		return &MotivationalNudge{
			Kind:      NudgeExploration,
			Dimension: least,
			Message:   "周末适合尝试新事物，去看看" + least.Info().DisplayName + "维度吧。",
		}
	}

	return nil
}
