package wellness

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// PersonalityType 由评估得分推导
// creator 为保留类型：当前打分公式不会产出它，但历史数据可能携带
type PersonalityType string

const (
	PersonalityAchiever PersonalityType = "achiever"
	PersonalityNurturer PersonalityType = "nurturer"
	PersonalitySeeker   PersonalityType = "seeker"
	PersonalityCreator  PersonalityType = "creator"
)

// AssessmentQuestionCount 为评估问卷的题目数（每个维度一题）
var AssessmentQuestionCount = len(AllDimensions)

// WellnessAssessment 为一次完成的评估，创建后不可变
// 人格类型与推荐维度始终从 Responses 现算，不单独存储
type WellnessAssessment struct {
	ID        string            `json:"id"`
	Responses map[Dimension]int `json:"responses"`
	CreatedAt time.Time         `json:"created_at"`
}

// NewAssessment 以一组 1-5 打分创建评估
func NewAssessment(responses map[Dimension]int, createdAt time.Time) *WellnessAssessment {
	copied := make(map[Dimension]int, len(responses))
	for d, score := range responses {
		copied[d] = score
	}
	return &WellnessAssessment{
		ID:        uuid.NewString(),
		Responses: copied,
		CreatedAt: createdAt,
	}
}

// OverallScore 为平均分换算的百分制总分
func (a *WellnessAssessment) OverallScore() float64 {
	if len(a.Responses) == 0 {
		return 0
	}
	sum := 0
	for _, score := range a.Responses {
		sum += score
	}
	mean := float64(sum) / float64(len(a.Responses))
	return mean / 5 * 100
}

// PersonalityType 按固定公式推导人格类型
// achiever = 身体+职业，nurturer = 社交+情绪，seeker = 心灵+心智
func (a *WellnessAssessment) PersonalityType() PersonalityType {
	achieverScore := a.Responses[DimensionPhysical] + a.Responses[DimensionProfessional]
	nurturerScore := a.Responses[DimensionSocial] + a.Responses[DimensionEmotional]
	seekerScore := a.Responses[DimensionSpiritual] + a.Responses[DimensionMental]

	switch {
	case achieverScore >= nurturerScore && achieverScore >= seekerScore:
		return PersonalityAchiever
	case nurturerScore >= seekerScore:
		return PersonalityNurturer
	default:
		return PersonalitySeeker
	}
}

// RecommendedDimensions 返回得分最低的三个维度，按得分升序
// 同分时按维度声明顺序，保证结果确定
func (a *WellnessAssessment) RecommendedDimensions() []Dimension {
	scored := make([]Dimension, 0, len(a.Responses))
	for _, d := range AllDimensions {
		if _, ok := a.Responses[d]; ok {
			scored = append(scored, d)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return a.Responses[scored[i]] < a.Responses[scored[j]]
	})

	if len(scored) > 3 {
		scored = scored[:3]
	}
	return scored
}
