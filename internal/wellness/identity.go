package wellness

import (
	"math"
	"time"
)

// IdentityLevel 由 EvidenceCount 唯一推导，不允许单独设置
type IdentityLevel string

const (
	LevelBeginner    IdentityLevel = "beginner"
	LevelBuilding    IdentityLevel = "building"
	LevelEstablished IdentityLevel = "established"
)

// Identity 记录单个维度的累积练习
// 首次记录证据时惰性创建，此后只增不删，只通过 AddEvidence 变更
type Identity struct {
	Dimension        Dimension     `json:"dimension"`
	EvidenceCount    int           `json:"evidence_count"`
	CurrentStreak    int           `json:"current_streak"`
	LastEvidenceDate *time.Time    `json:"last_evidence_date,omitempty"`
	Level            IdentityLevel `json:"level"`
}

// NewIdentity 创建一个空的维度身份记录
func NewIdentity(d Dimension) *Identity {
	return &Identity{Dimension: d, Level: LevelBeginner}
}

// LevelForEvidence 按固定阈值推导等级：0-6 beginner，7-20 building，>=21 established
func LevelForEvidence(count int) IdentityLevel {
	switch {
	case count >= 21:
		return LevelEstablished
	case count >= 7:
		return LevelBuilding
	default:
		return LevelBeginner
	}
}

// AddEvidence 记录一次完成：证据数自增，按自然日差推进连胜，重算等级
// 同日重复调用不改变连胜，但证据数仍会增加（与每日完成记录保持一致由调用方负责）
func (i *Identity) AddEvidence(today time.Time) {
	i.EvidenceCount++

	switch {
	case i.LastEvidenceDate == nil:
		i.CurrentStreak = 1
	default:
		switch DaysBetween(*i.LastEvidenceDate, today) {
		case 0:
			// 同日，连胜不变
		case 1:
			i.CurrentStreak++
		default:
			i.CurrentStreak = 1
		}
	}

	day := StartOfDay(today)
	i.LastEvidenceDate = &day
	i.Level = LevelForEvidence(i.EvidenceCount)
}

// StartOfDay 将时间截断到当天零点（保留时区）
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay 判断两个时间是否落在同一个自然日
func SameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b))
}

// DaysBetween 返回 from 到 to 之间的自然日差
// 夏令时切换日只有 23 或 25 小时，按四舍五入折算以免跨日被算作同日
func DaysBetween(from, to time.Time) int {
	hours := StartOfDay(to).Sub(StartOfDay(from)).Hours()
	return int(math.Round(hours / 24))
}
