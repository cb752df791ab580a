package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pythonzzgr/bazi-analysis/pkg/models/domain"
)

func TestScoreWindow(t *testing.T) {
	primary, harmful := domain.Wood, domain.Metal

	tests := []struct {
		name       string
		window     domain.Window
		wantScore  int
		wantRating domain.Rating
	}{
		{
			"double primary match maxes out",
			domain.Window{Stem: domain.StemJia, Branch: domain.BranchYin},
			100, domain.Exceptional,
		},
		{
			"double generator is favorable",
			domain.Window{Stem: domain.StemRen, Branch: domain.BranchZi},
			80, domain.Favorable,
		},
		{
			"double harmful match is adverse",
			domain.Window{Stem: domain.StemGeng, Branch: domain.BranchShen},
			10, domain.Adverse,
		},
		{
			"mixed window lands in the middle",
			// 丙 Fire is generated by the primary (+5), 戌 Earth feeds
			// the harmful element (-10).
			domain.Window{Stem: domain.StemBing, Branch: domain.BranchXu},
			45, domain.Unfavorable,
		},
		{
			"indifferent window keeps the base",
			// 丙午 is all Fire: +5 from each half, no penalty.
			domain.Window{Stem: domain.StemBing, Branch: domain.BranchWu},
			60, domain.Neutral,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scored := ScoreWindow(tt.window, primary, harmful)
			assert.Equal(t, tt.wantScore, scored.Score)
			assert.Equal(t, tt.wantRating, scored.Rating)
			assert.NotEmpty(t, scored.Summary)
		})
	}
}

func TestScoreWindowBounds(t *testing.T) {
	for _, stem := range domain.Stems {
		for _, branch := range domain.Branches {
			w := domain.Window{Stem: stem, Branch: branch}
			for _, primary := range domain.Elements {
				for _, harmful := range domain.Elements {
					scored := ScoreWindow(w, primary, harmful)
					assert.GreaterOrEqual(t, scored.Score, 0)
					assert.LessOrEqual(t, scored.Score, 100)
				}
			}
		}
	}
}

func TestScoreWindows(t *testing.T) {
	windows := []domain.Window{
		{Stem: domain.StemJia, Branch: domain.BranchYin, Year: 2034},
		{Stem: domain.StemGeng, Branch: domain.BranchShen, Year: 2040},
	}
	scored := ScoreWindows(windows, domain.Wood, domain.Metal)

	assert.Len(t, scored, 2)
	assert.Equal(t, 2034, scored[0].Year)
	assert.Greater(t, scored[0].Score, scored[1].Score)
}
