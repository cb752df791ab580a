package analysis

import (
	"fmt"

	"github.com/pythonzzgr/bazi-analysis/pkg/models/domain"
)

// ClassifyStrength judges how strongly the day master stands in its
// chart. Three indicators are computed independently:
//
//   - month support (득령): the month branch's dominant hidden stem
//     shares the day element or generates it.
//   - day branch root (득지): the day branch hides a stem of the day
//     element itself; only the identical element counts as a root.
//   - majority support (득세): strictly more than half of the seven
//     characters other than the day stem share or generate the day
//     element, judged by each character's assigned element.
//
// The support ratio is the share of the distribution held by the day
// element and its generator. Extreme ratios are classified before the
// indicator-assisted bands so favorable indicators can never mask an
// extreme.
func ClassifyStrength(chart *domain.Chart, dist *domain.Distribution) domain.Strength {
	dayElement := chart.DayElement()

	monthDominant := chart.Month.Branch.DominantStem()
	monthSupport := monthDominant.Element().Supports(dayElement)

	dayRoot := false
	for _, hidden := range chart.Day.Branch.HiddenStems() {
		if hidden.Stem.Element() == dayElement {
			dayRoot = true
			break
		}
	}

	supporters := 0
	others := othersOf(chart)
	for _, elem := range others {
		if elem.Supports(dayElement) {
			supporters++
		}
	}
	majoritySupport := supporters*2 > len(others)

	supportScore := dist.Score(dayElement) + dist.Score(dayElement.GeneratedBy())
	ratio := round1(dist.Ratio(dayElement) + dist.Ratio(dayElement.GeneratedBy()))

	strength := domain.Strength{
		SupportScore:    round1(supportScore),
		SupportRatio:    ratio,
		MonthSupport:    monthSupport,
		DayBranchRoot:   dayRoot,
		MajoritySupport: majoritySupport,
	}
	strength.Level = classify(ratio, strength.IndicatorCount())
	strength.Summary = summarize(&strength)

	return strength
}

// othersOf returns the assigned elements of the seven characters other
// than the day stem. Branches count by their assigned element here, not
// by hidden composition; the indicator is deliberately coarser than the
// weighted distribution.
func othersOf(chart *domain.Chart) []domain.Element {
	return []domain.Element{
		chart.Year.Stem.Element(),
		chart.Month.Stem.Element(),
		chart.Time.Stem.Element(),
		chart.Year.Branch.Element(),
		chart.Month.Branch.Element(),
		chart.Day.Branch.Element(),
		chart.Time.Branch.Element(),
	}
}

func classify(ratio float64, indicators int) domain.StrengthLevel {
	switch {
	case ratio >= 70:
		return domain.VeryStrong
	case ratio >= 55:
		return domain.Strong
	case ratio >= 50 && indicators >= 2:
		return domain.Strong
	case ratio <= 25:
		return domain.VeryWeak
	case ratio <= 40:
		return domain.Weak
	case ratio <= 45 && indicators <= 1:
		return domain.Weak
	default:
		return domain.Balanced
	}
}

var levelSummaries = map[domain.StrengthLevel]string{
	domain.VeryStrong: "the day master dominates its chart",
	domain.Strong:     "the day master is well supported",
	domain.Balanced:   "the day master is in equilibrium with its chart",
	domain.Weak:       "the day master lacks support",
	domain.VeryWeak:   "the day master is overwhelmed by its chart",
}

func summarize(s *domain.Strength) string {
	mark := func(ok bool, name string) string {
		if ok {
			return name + " held"
		}
		return name + " missed"
	}
	return fmt.Sprintf("%s (support ratio %.1f%%): %s, %s, %s",
		levelSummaries[s.Level], s.SupportRatio,
		mark(s.MonthSupport, "month support"),
		mark(s.DayBranchRoot, "day-branch root"),
		mark(s.MajoritySupport, "majority support"))
}
