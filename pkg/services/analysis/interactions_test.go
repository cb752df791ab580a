package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pythonzzgr/bazi-analysis/pkg/models/domain"
)

func chartOf(pillars ...domain.Pillar) *domain.Chart {
	return &domain.Chart{
		Year:  pillars[0],
		Month: pillars[1],
		Day:   pillars[2],
		Time:  pillars[3],
	}
}

func TestDetectInteractions(t *testing.T) {
	t.Run("repeated jia-yin chart has no interactions", func(t *testing.T) {
		report := DetectInteractions(jiaYinChart())

		assert.Empty(t, report.Interactions)
		assert.False(t, report.HasClash)
		assert.False(t, report.HasFusion)
	})

	t.Run("four cardinal branches clash, punish and break", func(t *testing.T) {
		report := DetectInteractions(chartOf(
			domain.Pillar{Stem: domain.StemJia, Branch: domain.BranchZi},
			domain.Pillar{Stem: domain.StemBing, Branch: domain.BranchWu},
			domain.Pillar{Stem: domain.StemYi, Branch: domain.BranchMao},
			domain.Pillar{Stem: domain.StemGui, Branch: domain.BranchYou},
		))

		assert.Equal(t, 2, report.KindCount[domain.Clash])
		assert.Equal(t, 1, report.KindCount[domain.Punishment])
		assert.Equal(t, 2, report.KindCount[domain.Break])
		assert.True(t, report.HasClash)
		assert.False(t, report.HasFusion)

		// 子卯 is the lone two-branch punishment.
		for _, in := range report.Interactions {
			if in.Kind == domain.Punishment {
				assert.ElementsMatch(t,
					[]domain.Branch{domain.BranchZi, domain.BranchMao}, in.Branches)
			}
		}
	})

	t.Run("eastern directional chart stacks fusions", func(t *testing.T) {
		report := DetectInteractions(chartOf(
			domain.Pillar{Stem: domain.StemJia, Branch: domain.BranchYin},
			domain.Pillar{Stem: domain.StemDing, Branch: domain.BranchMao},
			domain.Pillar{Stem: domain.StemRen, Branch: domain.BranchChen},
			domain.Pillar{Stem: domain.StemXin, Branch: domain.BranchHai},
		))

		require.Len(t, report.Interactions, 5)

		kinds := make([]domain.InteractionKind, 0, len(report.Interactions))
		for _, in := range report.Interactions {
			kinds = append(kinds, in.Kind)
		}
		assert.Equal(t, []domain.InteractionKind{
			domain.DirectionalCombination, // 寅卯辰 → Wood
			domain.ThreeHarmony,           // 亥卯(未), partial
			domain.SixCombination,         // 寅亥 → Wood
			domain.StemCombination,        // 丁壬 → Wood
			domain.Break,                  // 寅亥
		}, kinds)

		directional := report.Interactions[0]
		assert.True(t, directional.HasResult)
		assert.Equal(t, domain.Wood, directional.Result)
		assert.Equal(t, domain.SeverityVeryHigh, directional.Severity)

		partial := report.Interactions[1]
		assert.True(t, partial.Partial)
		assert.Equal(t, domain.SeverityMedium, partial.Severity)

		assert.True(t, report.HasFusion)
		assert.False(t, report.HasClash)
	})

	t.Run("full three harmony outranks its partial form", func(t *testing.T) {
		report := DetectInteractions(chartOf(
			domain.Pillar{Stem: domain.StemJia, Branch: domain.BranchShen},
			domain.Pillar{Stem: domain.StemBing, Branch: domain.BranchZi},
			domain.Pillar{Stem: domain.StemWu, Branch: domain.BranchChen},
			domain.Pillar{Stem: domain.StemJia, Branch: domain.BranchYin},
		))

		var harmony *domain.Interaction
		for i := range report.Interactions {
			if report.Interactions[i].Kind == domain.ThreeHarmony {
				harmony = &report.Interactions[i]
				break
			}
		}
		require.NotNil(t, harmony)
		assert.False(t, harmony.Partial)
		assert.Equal(t, domain.Water, harmony.Result)
		assert.Equal(t, domain.SeverityHigh, harmony.Severity)
	})

	t.Run("repeated self-punishing branch", func(t *testing.T) {
		report := DetectInteractions(chartOf(
			domain.Pillar{Stem: domain.StemJia, Branch: domain.BranchWu},
			domain.Pillar{Stem: domain.StemBing, Branch: domain.BranchWu},
			domain.Pillar{Stem: domain.StemJia, Branch: domain.BranchZi},
			domain.Pillar{Stem: domain.StemJia, Branch: domain.BranchShen},
		))

		punishments := 0
		for _, in := range report.Interactions {
			if in.Kind == domain.Punishment {
				punishments++
				assert.Equal(t, []domain.Branch{domain.BranchWu}, in.Branches)
			}
		}
		assert.Equal(t, 1, punishments)
	})

	t.Run("priorities never decrease", func(t *testing.T) {
		report := DetectInteractions(chartOf(
			domain.Pillar{Stem: domain.StemJia, Branch: domain.BranchZi},
			domain.Pillar{Stem: domain.StemJi, Branch: domain.BranchWu},
			domain.Pillar{Stem: domain.StemBing, Branch: domain.BranchXu},
			domain.Pillar{Stem: domain.StemGeng, Branch: domain.BranchYin},
		))

		for i := 1; i < len(report.Interactions); i++ {
			assert.LessOrEqual(t,
				report.Interactions[i-1].Priority, report.Interactions[i].Priority)
		}
	})
}
