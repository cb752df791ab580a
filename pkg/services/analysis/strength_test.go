package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pythonzzgr/bazi-analysis/pkg/models/domain"
)

func TestClassifyStrength(t *testing.T) {
	t.Run("all jia-yin chart is strong on every indicator", func(t *testing.T) {
		chart := jiaYinChart()
		dist := AnalyzeElements(chart)
		strength := ClassifyStrength(chart, &dist)

		assert.Equal(t, domain.Strong, strength.Level)
		assert.True(t, strength.MonthSupport)
		assert.True(t, strength.DayBranchRoot)
		assert.True(t, strength.MajoritySupport)
		assert.Equal(t, 3, strength.IndicatorCount())
		assert.InDelta(t, 67.6, strength.SupportRatio, 0.01)
	})

	t.Run("wood day master in an all-metal chart is very weak", func(t *testing.T) {
		chart := &domain.Chart{
			Year:  domain.Pillar{Stem: domain.StemGeng, Branch: domain.BranchShen},
			Month: domain.Pillar{Stem: domain.StemXin, Branch: domain.BranchYou},
			Day:   domain.Pillar{Stem: domain.StemJia, Branch: domain.BranchShen},
			Time:  domain.Pillar{Stem: domain.StemGeng, Branch: domain.BranchWu},
		}
		dist := AnalyzeElements(chart)
		strength := ClassifyStrength(chart, &dist)

		assert.Equal(t, domain.VeryWeak, strength.Level)
		assert.False(t, strength.MonthSupport)
		assert.False(t, strength.DayBranchRoot)
		assert.False(t, strength.MajoritySupport)
	})
}

func TestSupportRatioMonotonic(t *testing.T) {
	chart := jiaYinChart()

	// Fabricates a distribution with the given raw wood weight over a
	// fixed remainder, rounding ratios the same way AnalyzeElements does.
	distOf := func(wood float64) *domain.Distribution {
		raw := [5]float64{
			domain.Wood:  wood,
			domain.Fire:  20,
			domain.Earth: 15,
			domain.Metal: 25,
			domain.Water: 10,
		}
		var total float64
		for _, score := range raw {
			total += score
		}
		dist := domain.Distribution{Total: round1(total), DayElement: domain.Wood}
		for _, e := range domain.Elements {
			dist.Scores[e] = domain.ElementScore{
				Element: e,
				Score:   round1(raw[e]),
				Ratio:   round1(raw[e] / total * 100),
			}
		}
		return &dist
	}

	prev := 0.0
	for wood := 5.0; wood <= 80.0; wood += 1.3 {
		ratio := ClassifyStrength(chart, distOf(wood)).SupportRatio

		// The two supporting ratios are rounded to one decimal before
		// summing, so consecutive steps may wobble by up to 0.2.
		assert.GreaterOrEqual(t, ratio+0.2, prev, "wood weight %.1f", wood)
		assert.LessOrEqual(t, ratio, 100.0)
		prev = ratio
	}

	low := ClassifyStrength(chart, distOf(5)).SupportRatio
	high := ClassifyStrength(chart, distOf(80)).SupportRatio
	assert.Greater(t, high, low)
}

func TestClassifyBands(t *testing.T) {
	tests := []struct {
		name       string
		ratio      float64
		indicators int
		want       domain.StrengthLevel
	}{
		{"extreme ratio wins regardless of indicators", 72.0, 0, domain.VeryStrong},
		{"strong band", 56.0, 0, domain.Strong},
		{"indicator-assisted strong", 51.0, 2, domain.Strong},
		{"fifty without indicators stays balanced", 51.0, 1, domain.Balanced},
		{"very weak band", 20.0, 3, domain.VeryWeak},
		{"weak band", 38.0, 3, domain.Weak},
		{"indicator-starved weak", 44.0, 1, domain.Weak},
		{"forty-four with indicators stays balanced", 44.0, 2, domain.Balanced},
		{"middle is balanced", 48.0, 2, domain.Balanced},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.ratio, tt.indicators))
		})
	}
}
