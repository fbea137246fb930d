package wellness

import (
	"fmt"
	"strings"
	"time"
)

// WeeklyReport 汇总最近七天的进展，生成 Markdown 文本
// 渲染为 HTML 由展示层负责
func WeeklyReport(p *UserProfile, journey *WellnessJourney, now time.Time) string {
	weekStart := StartOfDay(now).AddDate(0, 0, -6)

	weekXP := 0
	weekActions := 0
	perDimension := map[Dimension]int{}
	for _, record := range p.DailyProgressHistory {
		if record.Timestamp.Before(weekStart) {
			continue
		}
		weekXP += record.XPEarned
		weekActions++
		perDimension[record.Dimension]++
	}

	var b strings.Builder
	b.WriteString("# 本周回顾\n\n")
	fmt.Fprintf(&b, "截至 %s，本周共完成 **%d** 次行动，获得 **%d** XP。\n\n", now.Format("2006-01-02"), weekActions, weekXP)
	fmt.Fprintf(&b, "- 当前连胜：%d 天（最长 %d 天）\n", p.CurrentStreak, p.LongestStreak)
	fmt.Fprintf(&b, "- 累计 XP：%d\n", p.TotalXP)
	fmt.Fprintf(&b, "- 累计证据：%d 次\n\n", p.TotalEvidences())

	b.WriteString("## 各维度\n\n")
	b.WriteString("| 维度 | 本周行动 | 累计证据 | 等级 |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, d := range AllDimensions {
		identity, ok := p.Identities[d]
		if !ok && perDimension[d] == 0 {
			continue
		}
		count := 0
		level := LevelBeginner
		if ok {
			count = identity.EvidenceCount
			level = identity.Level
		}
		fmt.Fprintf(&b, "| %s | %d | %d | %s |\n", d.Info().DisplayName, perDimension[d], count, level)
	}
	b.WriteString("\n")

	if journey != nil {
		phase := journey.CurrentPhase()
		b.WriteString("## 旅程\n\n")
		fmt.Fprintf(&b, "当前阶段：**%s**（第 %d/%d 阶段，%d 天）\n\n", phase.Name, journey.CurrentPhaseIndex+1, len(journey.Phases), phase.DurationDays)
		fmt.Fprintf(&b, "阶段目标：%s\n", phase.Milestone)
	}

	return b.String()
}
