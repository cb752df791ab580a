package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pythonzzgr/bazi-analysis/pkg/models/domain"
)

func TestMapTenGods(t *testing.T) {
	t.Run("all jia-yin chart reads as peers", func(t *testing.T) {
		chart := jiaYinChart()
		result := MapTenGods(chart)

		assert.Equal(t, domain.DayMaster, result.Placements[domain.SlotDayStem].God)
		assert.Equal(t, domain.CategorySelf, result.Placements[domain.SlotDayStem].Category)

		assert.Equal(t, domain.Friend, result.Placements[domain.SlotYearStem].God)
		assert.Equal(t, domain.Friend, result.Placements[domain.SlotYearBranch].God)
		assert.Equal(t, domain.CategoryCompanion, result.Dominant)

		// Seven labeled characters, all companions.
		assert.Equal(t, 7, result.CategoryCount[domain.CategoryCompanion])
		assert.ElementsMatch(t, []domain.TenGodCategory{
			domain.CategoryOutput, domain.CategoryWealth,
			domain.CategoryAuthority, domain.CategoryResource,
		}, result.Missing)
	})

	t.Run("branch placements expose the hidden composition", func(t *testing.T) {
		chart := jiaYinChart()
		result := MapTenGods(chart)

		hidden := result.Placements[domain.SlotMonthBranch].Hidden
		assert.Len(t, hidden, 3)
		// 寅 hides 甲 (peer), 丙 (eating god) and 戊 (indirect wealth).
		assert.Equal(t, domain.Friend, hidden[0].God)
		assert.Equal(t, domain.EatingGod, hidden[1].God)
		assert.Equal(t, domain.IndirectWealth, hidden[2].God)
	})

	t.Run("stem slots carry no hidden gods", func(t *testing.T) {
		result := MapTenGods(jiaYinChart())
		for _, slot := range domain.Slots {
			if slot.IsStem() {
				assert.Empty(t, result.Placements[slot].Hidden)
			}
		}
	})

	t.Run("dominance ties break on category order", func(t *testing.T) {
		// 甲 day: output, wealth and resource each count two, so the
		// fixed category order picks output.
		chart := &domain.Chart{
			Year:  domain.Pillar{Stem: domain.StemBing, Branch: domain.BranchWu},
			Month: domain.Pillar{Stem: domain.StemWu, Branch: domain.BranchChen},
			Day:   domain.Pillar{Stem: domain.StemJia, Branch: domain.BranchZi},
			Time:  domain.Pillar{Stem: domain.StemRen, Branch: domain.BranchYin},
		}
		result := MapTenGods(chart)
		assert.Equal(t, 2, result.CategoryCount[domain.CategoryOutput])
		assert.Equal(t, 2, result.CategoryCount[domain.CategoryWealth])
		assert.Equal(t, 2, result.CategoryCount[domain.CategoryResource])
		assert.Equal(t, domain.CategoryOutput, result.Dominant)
	})
}
