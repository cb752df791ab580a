package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pythonzzgr/bazi-analysis/pkg/models/domain"
)

func TestRenderText(t *testing.T) {
	chart := jiaYinChart()
	chart.Name = "홍길동"
	chart.SolarDate = "1994-02-15 10:30"
	chart.LunarDate = "1994-01-05"

	dist := AnalyzeElements(chart)
	strength := ClassifyStrength(chart, &dist)
	report := &domain.Report{
		Chart:        *chart,
		Distribution: dist,
		Strength:     strength,
		TenGods:      MapTenGods(chart),
		Interactions: DetectInteractions(chart),
		Selection:    SelectYongShin(chart, &dist, &strength),
		Timeline: domain.Timeline{
			StartYears: 3, StartMonths: 2, Forward: true,
			Years: ScoreWindows([]domain.Window{
				{Stem: domain.StemBing, Branch: domain.BranchWu, Year: 2026},
			}, domain.Metal, domain.Water),
		},
	}

	text := RenderText(report)

	for _, want := range []string{
		"사주팔자 분석 결과",
		"홍길동",
		"甲寅",
		"오행 분포",
		"신강/신약",
		"용신(用神): 金",
		"대운(大運)",
		"2026년",
	} {
		assert.Contains(t, text, want)
	}

	// An empty interaction list renders no interaction section.
	assert.False(t, strings.Contains(text, "합충형파"))
}
