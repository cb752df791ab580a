package analysis

import "github.com/pythonzzgr/bazi-analysis/pkg/models/domain"

// MapTenGods labels every chart character relative to the day master.
// Branch slots carry the label of their dominant hidden stem plus the
// labels of the full hidden composition. Category counts exclude the
// day stem; dominance ties break on the fixed category order.
func MapTenGods(chart *domain.Chart) domain.TenGodChart {
	day := chart.DayMaster()
	pillars := chart.Pillars()

	var result domain.TenGodChart
	for _, slot := range domain.Slots {
		pillar := pillars[slot.Position()]

		var placement domain.TenGodPlacement
		placement.Slot = slot

		if slot.IsStem() {
			god := domain.TenGodOfStem(day, pillar.Stem)
			if slot == domain.SlotDayStem {
				god = domain.DayMaster
			}
			placement.God = god
			placement.Category = god.Category()
		} else {
			god := domain.TenGodOfBranch(day, pillar.Branch)
			placement.God = god
			placement.Category = god.Category()
			for _, hidden := range pillar.Branch.HiddenStems() {
				hiddenGod := domain.TenGodOfStem(day, hidden.Stem)
				placement.Hidden = append(placement.Hidden, domain.HiddenGod{
					Stem:     hidden.Stem,
					Days:     hidden.Days,
					God:      hiddenGod,
					Category: hiddenGod.Category(),
				})
			}
		}

		if placement.Category != domain.CategorySelf {
			result.CategoryCount[placement.Category]++
		}
		result.Placements[slot] = placement
	}

	dominant := domain.CategoryCompanion
	for _, category := range domain.TenGodCategories {
		if result.CategoryCount[category] > result.CategoryCount[dominant] {
			dominant = category
		}
		if result.CategoryCount[category] == 0 {
			result.Missing = append(result.Missing, category)
		}
	}
	result.Dominant = dominant

	return result
}
