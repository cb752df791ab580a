package analysis

import (
	"fmt"
	"strings"

	"github.com/pythonzzgr/bazi-analysis/pkg/models/domain"
)

// RenderText renders a report as the structured Korean text document
// consumed by downstream explanation layers and the terminal reporter.
func RenderText(r *domain.Report) string {
	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	c := &r.Chart
	line("=== 사주팔자 분석 결과 ===")
	if c.Name != "" {
		line("이름: %s", c.Name)
	}
	line("성별: %s", c.Gender)
	line("양력: %s", c.SolarDate)
	line("음력: %s", c.LunarDate)
	line("계절: %s", c.Season())
	line("")

	line("【 사주 원국 (四柱原局) 】")
	pillars := c.Pillars()
	for i, p := range pillars {
		line("  %s: %s(%s) [%s/%s] 납음: %s",
			domain.Position(i).Korean(), p.GanZhi(), p.Korean(),
			p.Stem.Element().Hanja(), p.Branch.Element().Hanja(), p.Nayin())
	}
	line("")

	day := c.DayMaster()
	line("【 일간(日干) 】: %s(%s) - %s(%s)",
		day, day.Korean(), day.Element().Hanja(), day.Polarity().Korean())
	line("")

	line("【 오행 분포 】")
	for _, s := range r.Distribution.Scores {
		bar := strings.Repeat("█", int(s.Ratio/5))
		line("  %s(%s): %5.1f점 (%4.1f%%) %s",
			s.Element.Korean(), s.Element.Hanja(), s.Score, s.Ratio, bar)
	}
	line("  최강: %s  최약: %s",
		r.Distribution.Strongest.Hanja(), r.Distribution.Weakest.Hanja())
	if len(r.Distribution.Missing) > 0 {
		line("  부족한 오행: %s", joinElements(r.Distribution.Missing))
	}
	line("")

	s := &r.Strength
	line("【 신강/신약 판단 】: %s", s.Level.Status())
	line("  일간 세력 비율: %.1f%%", s.SupportRatio)
	line("  득령: %s | 득지: %s | 득세: %s",
		mark(s.MonthSupport), mark(s.DayBranchRoot), mark(s.MajoritySupport))
	line("")

	line("【 십성 배치 】")
	for _, slot := range domain.Slots {
		p := r.TenGods.Placements[slot]
		pillar := pillars[slot.Position()]
		char := pillar.Stem.String()
		if !slot.IsStem() {
			char = pillar.Branch.String()
		}
		line("  %s: %s → %s(%s)", slot.Korean(), char, p.God.Korean(), p.God)
	}
	line("  주도 십성: %s", r.TenGods.Dominant.Korean())
	line("")

	if len(r.Interactions.Interactions) > 0 {
		line("【 합충형파 】")
		for _, in := range r.Interactions.Interactions {
			line("  [%s] %s", in.Kind.Korean(), in.Description)
		}
		line("")
	}

	sel := &r.Selection
	line("【 용신 선정 】")
	line("  용신(用神): %s(%s)", sel.Primary.Hanja(), sel.Primary.Korean())
	line("  희신(喜神): %s(%s)", sel.Ally.Hanja(), sel.Ally.Korean())
	line("  기신(忌神): %s(%s)", sel.Harmful.Hanja(), sel.Harmful.Korean())
	line("  선정 방법: %s", sel.Method.Korean())
	line("  근거: %s", sel.Reason)
	line("")

	rec := sel.Recommendations
	line("【 생활 추천 】")
	line("  행운색: %s", strings.Join(rec.Colors, ", "))
	line("  행운 방위: %s", rec.Direction)
	line("  행운 숫자: %s", joinInts(rec.Numbers))
	line("  적합 직업: %s", rec.Career)
	line("")

	t := &r.Timeline
	line("【 대운(大運) 】")
	line("  대운 시작: %d년 %d개월", t.StartYears, t.StartMonths)
	line("  진행 방향: %s", direction(t.Forward))
	if t.CurrentDecade != nil {
		cd := t.CurrentDecade
		line("  현재 대운: %s(%s) [%d~%d세] - %s (%d점)",
			cd.GanZhi(), cd.Window.Korean(), cd.StartAge, cd.EndAge,
			cd.Rating.Korean(), cd.Score)
	}
	line("")

	line("【 세운(歲運) - 향후 %d년 】", len(t.Years))
	for _, y := range t.Years {
		line("  %d년 %s(%s): %s (%d점)",
			y.Year, y.GanZhi(), y.Window.Korean(), y.Rating.Korean(), y.Score)
	}

	return b.String()
}

func mark(ok bool) string {
	if ok {
		return "○"
	}
	return "✕"
}

func direction(forward bool) string {
	if forward {
		return "순행(順行)"
	}
	return "역행(逆行)"
}

func joinElements(elements []domain.Element) string {
	parts := make([]string, 0, len(elements))
	for _, e := range elements {
		parts = append(parts, e.Hanja())
	}
	return strings.Join(parts, ", ")
}

func joinInts(nums []int) string {
	parts := make([]string, 0, len(nums))
	for _, n := range nums {
		parts = append(parts, fmt.Sprintf("%d", n))
	}
	return strings.Join(parts, ", ")
}
