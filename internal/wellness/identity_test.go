package wellness

import (
	"testing"
	"time"
)

func TestLevelForEvidenceThresholds(t *testing.T) {
	cases := []struct {
		count int
		want  IdentityLevel
	}{
		{0, LevelBeginner},
		{6, LevelBeginner},
		{7, LevelBuilding},
		{20, LevelBuilding},
		{21, LevelEstablished},
		{100, LevelEstablished},
	}

	for _, tc := range cases {
		if got := LevelForEvidence(tc.count); got != tc.want {
			t.Fatalf("LevelForEvidence(%d) = %s, want %s", tc.count, got, tc.want)
		}
	}
}

func TestAddEvidenceConsecutiveDays(t *testing.T) {
	identity := NewIdentity(DimensionPhysical)
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local)

	for i := 0; i < 5; i++ {
		identity.AddEvidence(base.AddDate(0, 0, i))
	}

	if identity.CurrentStreak != 5 {
		t.Fatalf("expected streak 5, got %d", identity.CurrentStreak)
	}
	if identity.EvidenceCount != 5 {
		t.Fatalf("expected evidence count 5, got %d", identity.EvidenceCount)
	}
}

func TestAddEvidenceGapResetsStreak(t *testing.T) {
	identity := NewIdentity(DimensionMental)
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local)

	identity.AddEvidence(base)
	identity.AddEvidence(base.AddDate(0, 0, 1))
	// 隔两天，连胜归一
	identity.AddEvidence(base.AddDate(0, 0, 3))

	if identity.CurrentStreak != 1 {
		t.Fatalf("expected streak reset to 1, got %d", identity.CurrentStreak)
	}
	if identity.EvidenceCount != 3 {
		t.Fatalf("expected evidence count 3, got %d", identity.EvidenceCount)
	}
}

func TestAddEvidenceSameDayKeepsStreak(t *testing.T) {
	identity := NewIdentity(DimensionSocial)
	morning := time.Date(2024, 5, 1, 8, 0, 0, 0, time.Local)
	evening := time.Date(2024, 5, 1, 21, 0, 0, 0, time.Local)

	identity.AddEvidence(morning)
	identity.AddEvidence(evening)

	// 同日重复：连胜不变，证据数仍然累加
	if identity.CurrentStreak != 1 {
		t.Fatalf("expected streak 1 after same-day repeat, got %d", identity.CurrentStreak)
	}
	if identity.EvidenceCount != 2 {
		t.Fatalf("expected evidence count 2, got %d", identity.EvidenceCount)
	}
}

func TestAddEvidenceLevelRecomputed(t *testing.T) {
	identity := NewIdentity(DimensionSpiritual)
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local)

	for i := 0; i < 7; i++ {
		identity.AddEvidence(base.AddDate(0, 0, i))
	}

	if identity.Level != LevelBuilding {
		t.Fatalf("expected level building at 7 evidences, got %s", identity.Level)
	}
}

func TestDaysBetweenIgnoresClockTime(t *testing.T) {
	late := time.Date(2024, 5, 1, 23, 59, 0, 0, time.Local)
	early := time.Date(2024, 5, 2, 0, 1, 0, 0, time.Local)

	if got := DaysBetween(late, early); got != 1 {
		t.Fatalf("expected 1 day between, got %d", got)
	}
	if !SameDay(late, late.Add(-time.Hour)) {
		t.Fatal("expected same day")
	}
}

func TestDaysBetweenAcrossDSTTransitions(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}

	// 2024-03-10 春令时切换：3-10 零点到 3-11 零点只有 23 小时
	shortDay := time.Date(2024, 3, 10, 9, 0, 0, 0, loc)
	afterShortDay := time.Date(2024, 3, 11, 9, 0, 0, 0, loc)
	if got := DaysBetween(shortDay, afterShortDay); got != 1 {
		t.Fatalf("expected 1 day across spring-forward, got %d", got)
	}

	// 2024-11-03 冬令时切换：11-3 零点到 11-4 零点有 25 小时
	longDay := time.Date(2024, 11, 3, 9, 0, 0, 0, loc)
	afterLongDay := time.Date(2024, 11, 4, 9, 0, 0, 0, loc)
	if got := DaysBetween(longDay, afterLongDay); got != 1 {
		t.Fatalf("expected 1 day across fall-back, got %d", got)
	}

	// 跨切换日的连胜推进不得冻结
	identity := NewIdentity(DimensionPhysical)
	identity.AddEvidence(shortDay)
	identity.AddEvidence(afterShortDay)
	if identity.CurrentStreak != 2 {
		t.Fatalf("expected streak 2 across DST boundary, got %d", identity.CurrentStreak)
	}
}
