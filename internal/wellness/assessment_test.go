package wellness

import (
	"testing"
	"time"
)

var assessmentNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local)

func TestAssessmentQuestionCountMatchesCatalog(t *testing.T) {
	if AssessmentQuestionCount != len(AllDimensions) {
		t.Fatalf("question count %d != dimension count %d", AssessmentQuestionCount, len(AllDimensions))
	}
	if AssessmentQuestionCount != 7 {
		t.Fatalf("expected 7 questions, got %d", AssessmentQuestionCount)
	}
}

func TestAssessmentAchieverScenario(t *testing.T) {
	assessment := NewAssessment(map[Dimension]int{
		DimensionPhysical:     5,
		DimensionProfessional: 5,
		DimensionSocial:       1,
		DimensionEmotional:    1,
		DimensionSpiritual:    3,
		DimensionMental:       3,
	}, assessmentNow)

	if got := assessment.PersonalityType(); got != PersonalityAchiever {
		t.Fatalf("expected achiever, got %s", got)
	}

	// 平均 3 分 → 60 分
	if got := assessment.OverallScore(); got != 60 {
		t.Fatalf("expected overall score 60, got %v", got)
	}

	recommended := assessment.RecommendedDimensions()
	if len(recommended) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(recommended))
	}
	// 同为 1 分的情绪/社交按声明顺序：emotional 在前
	if recommended[0] != DimensionEmotional || recommended[1] != DimensionSocial {
		t.Fatalf("expected [emotional social ...], got %v", recommended)
	}
	// 3 分档中 mental 声明序先于 spiritual
	if recommended[2] != DimensionMental {
		t.Fatalf("expected mental third, got %v", recommended)
	}
}

func TestAssessmentNurturerAndSeeker(t *testing.T) {
	nurturer := NewAssessment(map[Dimension]int{
		DimensionSocial:    5,
		DimensionEmotional: 5,
		DimensionPhysical:  1,
		DimensionSpiritual: 2,
	}, assessmentNow)
	if got := nurturer.PersonalityType(); got != PersonalityNurturer {
		t.Fatalf("expected nurturer, got %s", got)
	}

	seeker := NewAssessment(map[Dimension]int{
		DimensionSpiritual: 5,
		DimensionMental:    5,
		DimensionSocial:    2,
		DimensionPhysical:  1,
	}, assessmentNow)
	if got := seeker.PersonalityType(); got != PersonalitySeeker {
		t.Fatalf("expected seeker, got %s", got)
	}
}

func TestAssessmentTiesFavorAchiever(t *testing.T) {
	// 全部同分时 achiever 分支优先
	assessment := NewAssessment(map[Dimension]int{
		DimensionPhysical:     3,
		DimensionProfessional: 3,
		DimensionSocial:       3,
		DimensionEmotional:    3,
		DimensionSpiritual:    3,
		DimensionMental:       3,
	}, assessmentNow)

	if got := assessment.PersonalityType(); got != PersonalityAchiever {
		t.Fatalf("expected achiever on tie, got %s", got)
	}
}

func TestAssessmentFewResponses(t *testing.T) {
	assessment := NewAssessment(map[Dimension]int{
		DimensionPhysical: 2,
		DimensionMental:   4,
	}, assessmentNow)

	recommended := assessment.RecommendedDimensions()
	if len(recommended) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recommended))
	}
	if recommended[0] != DimensionPhysical {
		t.Fatalf("expected physical first, got %v", recommended)
	}

	empty := NewAssessment(map[Dimension]int{}, assessmentNow)
	if got := empty.OverallScore(); got != 0 {
		t.Fatalf("expected 0 score for empty assessment, got %v", got)
	}
}

func TestAssessmentResponsesAreCopied(t *testing.T) {
	responses := map[Dimension]int{DimensionPhysical: 5}
	assessment := NewAssessment(responses, assessmentNow)

	responses[DimensionPhysical] = 1
	if assessment.Responses[DimensionPhysical] != 5 {
		t.Fatal("assessment must not share the caller's map")
	}
}
