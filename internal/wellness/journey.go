package wellness

import (
	"time"

	"github.com/google/uuid"
)

// JourneyPhase 为旅程中的一个固定阶段
type JourneyPhase struct {
	Name                  string      `json:"name"`
	DurationDays          int         `json:"duration_days"`
	FocusDimensions       []Dimension `json:"focus_dimensions"`
	Goals                 []string    `json:"goals"`
	Milestone             string      `json:"milestone"`
	RequiredEvidenceCount int         `json:"required_evidence_count"`
}

// WellnessJourney 由一次评估一次性生成
// CurrentPhaseIndex 只会增加，到最后一个阶段后不再变化
type WellnessJourney struct {
	ID                string          `json:"id"`
	PersonalityType   PersonalityType `json:"personality_type"`
	Phases            []JourneyPhase  `json:"phases"`
	CurrentPhaseIndex int             `json:"current_phase_index"`
	CreatedAt         time.Time       `json:"created_at"`
}

// journeyFallbackDimensions 在推荐维度不足三个时按位补齐
var journeyFallbackDimensions = []Dimension{DimensionPhysical, DimensionEmotional, DimensionMental}

// BuildJourney 从评估推导固定的四阶段旅程
// 阶段时长 14/14/14/28 天，所需证据 10/12(7+5)/15/30
func BuildJourney(assessment *WellnessAssessment, createdAt time.Time) *WellnessJourney {
	recommended := assessment.RecommendedDimensions()
	focus := make([]Dimension, 3)
	for idx := range focus {
		if idx < len(recommended) {
			focus[idx] = recommended[idx]
		} else {
			focus[idx] = journeyFallbackDimensions[idx]
		}
	}

	first := focus[0].Info().DisplayName
	second := focus[1].Info().DisplayName
	third := focus[2].Info().DisplayName

	phases := []JourneyPhase{
		{
			Name:            "打地基",
			DurationDays:    14,
			FocusDimensions: []Dimension{focus[0]},
			Goals: []string{
				"每天完成一个" + first + "微行动",
				"熟悉打卡节奏，不追求强度",
			},
			Milestone:             "累积 10 次" + first + "证据",
			RequiredEvidenceCount: 10,
		},
		{
			Name:            "建立节奏",
			DurationDays:    14,
			FocusDimensions: []Dimension{focus[0], focus[1]},
			Goals: []string{
				"保持" + first + "的日常练习",
				"引入" + second + "作为第二个关注点",
			},
			Milestone:             "两个维度合计 12 次证据（7+5）",
			RequiredEvidenceCount: 12,
		},
		{
			Name:            "融会贯通",
			DurationDays:    14,
			FocusDimensions: []Dimension{focus[2]},
			Goals: []string{
				"把练习扩展到" + third,
				"尝试更高强度的行动层级",
			},
			Milestone:             "累积 15 次新证据",
			RequiredEvidenceCount: 15,
		},
		{
			Name:            "自成习惯",
			DurationDays:    28,
			FocusDimensions: []Dimension{focus[0], focus[1], focus[2]},
			Goals: []string{
				"三个维度交替练习",
				"连胜保持在 7 天以上",
			},
			Milestone:             "累积 30 次证据，身份升级",
			RequiredEvidenceCount: 30,
		},
	}

	return &WellnessJourney{
		ID:              uuid.NewString(),
		PersonalityType: assessment.PersonalityType(),
		Phases:          phases,
		CreatedAt:       createdAt,
	}
}

// CurrentPhase 返回当前阶段
func (j *WellnessJourney) CurrentPhase() JourneyPhase {
	return j.Phases[j.CurrentPhaseIndex]
}

// AdvanceToNextPhase 推进到下一阶段并返回是否发生推进
// 已在最后一个阶段时为空操作，不视为错误
func (j *WellnessJourney) AdvanceToNextPhase() bool {
	if j.CurrentPhaseIndex >= len(j.Phases)-1 {
		return false
	}
	j.CurrentPhaseIndex++
	return true
}
