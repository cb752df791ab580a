package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pythonzzgr/bazi-analysis/pkg/models/domain"
)

// jiaYinChart is the all-甲寅 reference chart: every stem 甲, every
// branch 寅.
func jiaYinChart() *domain.Chart {
	pillar := domain.Pillar{Stem: domain.StemJia, Branch: domain.BranchYin}
	return &domain.Chart{
		Gender: domain.Male,
		Year:   pillar,
		Month:  pillar,
		Day:    pillar,
		Time:   pillar,
	}
}

func TestAnalyzeElements(t *testing.T) {
	t.Run("all jia-yin chart", func(t *testing.T) {
		dist := AnalyzeElements(jiaYinChart())

		assert.InDelta(t, 70.9, dist.Score(domain.Wood), 0.01)
		assert.InDelta(t, 17.0, dist.Score(domain.Fire), 0.01)
		assert.InDelta(t, 17.0, dist.Score(domain.Earth), 0.01)
		assert.Zero(t, dist.Score(domain.Metal))
		assert.Zero(t, dist.Score(domain.Water))

		assert.InDelta(t, 105.0, dist.Total, 0.01)
		assert.InDelta(t, 67.6, dist.Ratio(domain.Wood), 0.01)
		assert.InDelta(t, 16.2, dist.Ratio(domain.Fire), 0.01)

		assert.Equal(t, domain.Wood, dist.Strongest)
		assert.Equal(t, []domain.Element{domain.Metal, domain.Water}, dist.Missing)
	})

	t.Run("counts track assigned elements", func(t *testing.T) {
		dist := AnalyzeElements(jiaYinChart())

		// Three stems count (the day stem does not) plus four branches.
		assert.Equal(t, 7, dist.Scores[domain.Wood].Count)
		assert.Zero(t, dist.Scores[domain.Fire].Count)
	})

	t.Run("total is the sum of scores for any chart", func(t *testing.T) {
		chart := &domain.Chart{
			Year:  domain.Pillar{Stem: domain.StemGeng, Branch: domain.BranchShen},
			Month: domain.Pillar{Stem: domain.StemXin, Branch: domain.BranchYou},
			Day:   domain.Pillar{Stem: domain.StemJia, Branch: domain.BranchShen},
			Time:  domain.Pillar{Stem: domain.StemGeng, Branch: domain.BranchWu},
		}
		dist := AnalyzeElements(chart)

		var sum float64
		for _, e := range domain.Elements {
			assert.GreaterOrEqual(t, dist.Score(e), 0.0)
			sum += dist.Score(e)
		}
		assert.InDelta(t, dist.Total, sum, 0.2)
		require.Positive(t, dist.Total)
	})

	t.Run("day element always carries the base bonus", func(t *testing.T) {
		dist := AnalyzeElements(jiaYinChart())
		assert.GreaterOrEqual(t, dist.Score(dist.DayElement), float64(domain.DayElementBase))
	})

	t.Run("rounded ratios sum to one hundred", func(t *testing.T) {
		charts := map[string]*domain.Chart{
			"all jia-yin": jiaYinChart(),
			"metal heavy": {
				Year:  domain.Pillar{Stem: domain.StemGeng, Branch: domain.BranchShen},
				Month: domain.Pillar{Stem: domain.StemXin, Branch: domain.BranchYou},
				Day:   domain.Pillar{Stem: domain.StemJia, Branch: domain.BranchShen},
				Time:  domain.Pillar{Stem: domain.StemGeng, Branch: domain.BranchWu},
			},
			"all five elements present": {
				Year:  domain.Pillar{Stem: domain.StemJia, Branch: domain.BranchZi},
				Month: domain.Pillar{Stem: domain.StemBing, Branch: domain.BranchWu},
				Day:   domain.Pillar{Stem: domain.StemWu, Branch: domain.BranchChen},
				Time:  domain.Pillar{Stem: domain.StemGeng, Branch: domain.BranchShen},
			},
		}
		for name, chart := range charts {
			t.Run(name, func(t *testing.T) {
				dist := AnalyzeElements(chart)
				var sum float64
				for _, e := range domain.Elements {
					sum += dist.Ratio(e)
				}
				assert.InDelta(t, 100.0, sum, 0.2)
			})
		}
	})
}
