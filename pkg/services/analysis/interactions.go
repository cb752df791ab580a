package analysis

import (
	"fmt"

	"github.com/pythonzzgr/bazi-analysis/pkg/models/domain"
)

var stemSlots = [4]domain.Slot{
	domain.SlotYearStem, domain.SlotMonthStem, domain.SlotDayStem, domain.SlotTimeStem,
}

var branchSlots = [4]domain.Slot{
	domain.SlotYearBranch, domain.SlotMonthBranch, domain.SlotDayBranch, domain.SlotTimeBranch,
}

// DetectInteractions finds every combination, clash, punishment and
// break pattern among the chart's characters. Pair tables are matched
// over all position pairs (choose-2), triple tables against the set of
// distinct branches, so a confirmed triple is reported once and never
// re-reported as its own sub-pairs. The result is ordered by ascending
// priority; equal priorities keep discovery order.
func DetectInteractions(chart *domain.Chart) domain.InteractionReport {
	var found []domain.Interaction

	branches := chart.Branches()
	present := map[domain.Branch]bool{}
	firstSlot := map[domain.Branch]domain.Slot{}
	for i, b := range branches {
		if !present[b] {
			present[b] = true
			firstSlot[b] = branchSlots[i]
		}
	}

	// 1. Directional combinations: all three members required.
	for _, triple := range directionalTriples {
		if !present[triple.members[0]] || !present[triple.members[1]] || !present[triple.members[2]] {
			continue
		}
		found = append(found, domain.Interaction{
			Kind:      domain.DirectionalCombination,
			Priority:  domain.DirectionalCombination.Priority(),
			Branches:  triple.members[:],
			Slots:     slotsOf(triple.members[:], firstSlot),
			Result:    triple.result,
			HasResult: true,
			Severity:  domain.SeverityVeryHigh,
			Description: fmt.Sprintf("%s form a directional %s combination",
				branchRun(triple.members[:]), triple.result),
		})
	}

	// 2. Three harmonies: two of three members form a partial harmony.
	for _, triple := range threeHarmonies {
		var matched []domain.Branch
		for _, m := range triple.members {
			if present[m] {
				matched = append(matched, m)
			}
		}
		if len(matched) < 2 {
			continue
		}
		full := len(matched) == 3
		severity := domain.SeverityMedium
		verb := "lean toward"
		if full {
			severity = domain.SeverityHigh
			verb = "form"
		}
		found = append(found, domain.Interaction{
			Kind:      domain.ThreeHarmony,
			Priority:  domain.ThreeHarmony.Priority(),
			Branches:  matched,
			Slots:     slotsOf(matched, firstSlot),
			Result:    triple.result,
			HasResult: true,
			Severity:  severity,
			Partial:   !full,
			Description: fmt.Sprintf("%s %s a %s harmony",
				branchRun(matched), verb, triple.result),
		})
	}

	// 3. Six combinations, over branch position pairs.
	for i := 0; i < len(branches); i++ {
		for j := i + 1; j < len(branches); j++ {
			for _, pair := range sixCombinations {
				if !pairMatches(branches[i], branches[j], pair.a, pair.b) {
					continue
				}
				found = append(found, domain.Interaction{
					Kind:      domain.SixCombination,
					Priority:  domain.SixCombination.Priority(),
					Branches:  []domain.Branch{branches[i], branches[j]},
					Slots:     []domain.Slot{branchSlots[i], branchSlots[j]},
					Result:    pair.result,
					HasResult: true,
					Severity:  domain.SeverityMedium,
					Description: fmt.Sprintf("%s %s and %s %s combine into %s",
						branchSlots[i], branches[i], branchSlots[j], branches[j], pair.result),
				})
			}
		}
	}

	// 4. Stem combinations, over stem position pairs.
	stems := chart.Stems()
	for i := 0; i < len(stems); i++ {
		for j := i + 1; j < len(stems); j++ {
			for _, pair := range stemCombinations {
				if !stemPairMatches(stems[i], stems[j], pair.a, pair.b) {
					continue
				}
				found = append(found, domain.Interaction{
					Kind:      domain.StemCombination,
					Priority:  domain.StemCombination.Priority(),
					Stems:     []domain.Stem{stems[i], stems[j]},
					Slots:     []domain.Slot{stemSlots[i], stemSlots[j]},
					Result:    pair.result,
					HasResult: true,
					Severity:  domain.SeverityMedium,
					Description: fmt.Sprintf("%s %s and %s %s combine into %s",
						stemSlots[i], stems[i], stemSlots[j], stems[j], pair.result),
				})
			}
		}
	}

	// 5. Clashes, over branch position pairs.
	for i := 0; i < len(branches); i++ {
		for j := i + 1; j < len(branches); j++ {
			for _, pair := range clashPairs {
				if !pairMatches(branches[i], branches[j], pair[0], pair[1]) {
					continue
				}
				found = append(found, domain.Interaction{
					Kind:     domain.Clash,
					Priority: domain.Clash.Priority(),
					Branches: []domain.Branch{branches[i], branches[j]},
					Slots:    []domain.Slot{branchSlots[i], branchSlots[j]},
					Severity: domain.SeverityHigh,
					Description: fmt.Sprintf("%s %s clashes with %s %s",
						branchSlots[i], branches[i], branchSlots[j], branches[j]),
				})
			}
		}
	}

	// 6. Punishments: triples (2-of-3 counts), the 子卯 pair, and
	// self-punishment for the four branches that encode it.
	for _, triple := range punishmentTriples {
		var matched []domain.Branch
		for _, m := range triple.members {
			if present[m] {
				matched = append(matched, m)
			}
		}
		if len(matched) < 2 {
			continue
		}
		full := len(matched) == 3
		severity := domain.SeverityMedium
		if full {
			severity = domain.SeverityHigh
		}
		found = append(found, domain.Interaction{
			Kind:     domain.Punishment,
			Priority: domain.Punishment.Priority(),
			Branches: matched,
			Slots:    slotsOf(matched, firstSlot),
			Severity: severity,
			Partial:  !full,
			Description: fmt.Sprintf("%s punish each other (%s)",
				branchRun(matched), triple.label),
		})
	}
	if present[punishmentPair.a] && present[punishmentPair.b] {
		members := []domain.Branch{punishmentPair.a, punishmentPair.b}
		found = append(found, domain.Interaction{
			Kind:     domain.Punishment,
			Priority: domain.Punishment.Priority(),
			Branches: members,
			Slots:    slotsOf(members, firstSlot),
			Severity: domain.SeverityMedium,
			Description: fmt.Sprintf("%s and %s punish each other (%s)",
				punishmentPair.a, punishmentPair.b, punishmentPair.label),
		})
	}
	for _, b := range selfPunishing {
		count := 0
		for _, have := range branches {
			if have == b {
				count++
			}
		}
		if count < 2 {
			continue
		}
		found = append(found, domain.Interaction{
			Kind:        domain.Punishment,
			Priority:    domain.Punishment.Priority(),
			Branches:    []domain.Branch{b},
			Severity:    domain.SeverityMedium,
			Description: fmt.Sprintf("%s repeats and punishes itself (자형)", b),
		})
	}

	// 7. Breaks, over branch position pairs.
	for i := 0; i < len(branches); i++ {
		for j := i + 1; j < len(branches); j++ {
			for _, pair := range breakPairs {
				if !pairMatches(branches[i], branches[j], pair[0], pair[1]) {
					continue
				}
				found = append(found, domain.Interaction{
					Kind:     domain.Break,
					Priority: domain.Break.Priority(),
					Branches: []domain.Branch{branches[i], branches[j]},
					Slots:    []domain.Slot{branchSlots[i], branchSlots[j]},
					Severity: domain.SeverityLow,
					Description: fmt.Sprintf("%s %s breaks with %s %s",
						branchSlots[i], branches[i], branchSlots[j], branches[j]),
				})
			}
		}
	}

	report := domain.InteractionReport{
		Interactions: found,
		KindCount:    map[domain.InteractionKind]int{},
	}
	for _, in := range found {
		report.KindCount[in.Kind]++
		if in.Kind == domain.Clash {
			report.HasClash = true
		}
		if in.Kind.IsFusion() {
			report.HasFusion = true
		}
	}
	return report
}

func pairMatches(x, y, a, b domain.Branch) bool {
	return (x == a && y == b) || (x == b && y == a)
}

func stemPairMatches(x, y, a, b domain.Stem) bool {
	return (x == a && y == b) || (x == b && y == a)
}

func slotsOf(members []domain.Branch, firstSlot map[domain.Branch]domain.Slot) []domain.Slot {
	slots := make([]domain.Slot, 0, len(members))
	for _, m := range members {
		slots = append(slots, firstSlot[m])
	}
	return slots
}

func branchRun(members []domain.Branch) string {
	out := ""
	for _, m := range members {
		out += m.String()
	}
	return out
}
