package analysis

import (
	"fmt"
	"sort"

	"github.com/pythonzzgr/bazi-analysis/pkg/models/domain"
)

// conflictThreshold is the distribution share (percent) at which two
// elements in a controlling relation count as a structural conflict.
const conflictThreshold = 30.0

// SelectYongShin chooses the primary-need element (용신) with its ally
// (희신) and harmful (기신) elements. Three strategies compete, in
// ascending precedence:
//
//  3. surplus/deficit balancing (억부), always computed as the baseline;
//  2. temperature regulation (조후), which overrides the baseline when
//     the month branch sits at a temperature extreme;
//  1. conflict mediation (통관), which overrides everything when two
//     large elements stand in a controlling relation.
//
// Overrides replace the primary element only; the ally and harmful
// elements keep their baseline assignment.
func SelectYongShin(chart *domain.Chart, dist *domain.Distribution, strength *domain.Strength) domain.Selection {
	dayElement := chart.DayElement()
	temperature := chart.Month.Branch.Temperature()

	primary, ally, harmful, reason := balanceSelect(dayElement, strength, dist)
	method := domain.MethodBalance

	if counter, extreme := temperatureCounter(temperature); extreme {
		primary = counter
		method = domain.MethodTemperature
		reason = fmt.Sprintf("temperature regulation: a %s chart (month branch %s) needs %s before anything else",
			temperature, chart.Month.Branch, counter)
	}

	if conflict := findConflict(dist); conflict != nil {
		primary = conflict.mediator
		method = domain.MethodMediation
		reason = fmt.Sprintf("conflict mediation: %s (%.1f%%) and %s (%.1f%%) stand in a controlling relation, mediated by %s",
			conflict.first, dist.Ratio(conflict.first),
			conflict.second, dist.Ratio(conflict.second), conflict.mediator)
	}

	return domain.Selection{
		Primary:         primary,
		Ally:            ally,
		Harmful:         harmful,
		Method:          method,
		Reason:          reason,
		Temperature:     temperature,
		Recommendations: recommend(primary, ally),
	}
}

// temperatureCounter returns the counter-element for a month at a
// temperature extreme. Hot charts call for water, cold charts for fire;
// only the extremes trigger the override.
func temperatureCounter(t domain.Temperature) (domain.Element, bool) {
	switch t {
	case domain.VeryHot:
		return domain.Water, true
	case domain.VeryCold:
		return domain.Fire, true
	default:
		return 0, false
	}
}

type conflict struct {
	first, second domain.Element // first controls second
	mediator      domain.Element
}

// findConflict looks for two elements that each hold at least
// conflictThreshold percent of the distribution while one controls the
// other. The mediator is the element the controller generates.
func findConflict(dist *domain.Distribution) *conflict {
	var high []domain.Element
	for _, e := range domain.Elements {
		if dist.Ratio(e) >= conflictThreshold {
			high = append(high, e)
		}
	}
	if len(high) < 2 {
		return nil
	}

	a, b := high[0], high[1]
	switch {
	case a.Controls() == b:
		return &conflict{first: a, second: b, mediator: a.Generates()}
	case b.Controls() == a:
		return &conflict{first: b, second: a, mediator: b.Generates()}
	default:
		return nil
	}
}

// balanceSelect is the 억부 baseline: drain a strong day master through
// its weakest outlet, feed a weak one through its weakest source, and
// top up the globally weakest element when balanced.
func balanceSelect(
	day domain.Element,
	strength *domain.Strength,
	dist *domain.Distribution,
) (primary, ally, harmful domain.Element, reason string) {
	resource := day.GeneratedBy()
	output := day.Generates()
	wealth := day.Controls()
	authority := day.ControlledBy()

	switch strength.Level {
	case domain.Strong, domain.VeryStrong:
		candidates := []domain.Element{output, wealth, authority}
		sortByScore(candidates, dist)
		primary, ally = candidates[0], candidates[1]
		harmful = resource
		reason = fmt.Sprintf("balance: a %s day master (support ratio %.1f%%) drains its excess through %s",
			strength.Level, strength.SupportRatio, primary)

	case domain.Weak, domain.VeryWeak:
		candidates := []domain.Element{resource, day}
		sortByScore(candidates, dist)
		primary, ally = candidates[0], candidates[1]
		harmful = authority
		reason = fmt.Sprintf("balance: a %s day master (support ratio %.1f%%) is replenished through %s",
			strength.Level, strength.SupportRatio, primary)

	default:
		primary = dist.Weakest
		ally = primary.GeneratedBy()
		harmful = strongestExcept(day, dist)
		reason = fmt.Sprintf("balance: the chart is level but %s is short at %.1f%%",
			primary, dist.Ratio(primary))
	}
	return primary, ally, harmful, reason
}

// sortByScore orders candidate elements by ascending distribution
// score, keeping the candidate order on ties.
func sortByScore(candidates []domain.Element, dist *domain.Distribution) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return dist.Score(candidates[i]) < dist.Score(candidates[j])
	})
}

// strongestExcept returns the highest-scored element other than the day
// element, ties broken by canonical order.
func strongestExcept(day domain.Element, dist *domain.Distribution) domain.Element {
	best := domain.Element(-1)
	for _, e := range domain.Elements {
		if e == day {
			continue
		}
		if best < 0 || dist.Score(e) > dist.Score(best) {
			best = e
		}
	}
	return best
}

var luckyColors = [5][]string{
	domain.Wood:  {"green", "blue"},
	domain.Fire:  {"red", "purple"},
	domain.Earth: {"yellow", "brown"},
	domain.Metal: {"white", "silver"},
	domain.Water: {"black", "navy"},
}

var luckyDirections = [5]string{
	domain.Wood: "east", domain.Fire: "south", domain.Earth: "center",
	domain.Metal: "west", domain.Water: "north",
}

var luckyNumbers = [5][]int{
	domain.Wood: {3, 8}, domain.Fire: {2, 7}, domain.Earth: {5, 10},
	domain.Metal: {4, 9}, domain.Water: {1, 6},
}

var careerAdvice = [5]string{
	domain.Wood:  "education, publishing, fashion, agriculture and horticulture",
	domain.Fire:  "media, entertainment, IT, electronics and food service",
	domain.Earth: "real estate, construction, farming and brokerage",
	domain.Metal: "finance, law, medicine, machinery and automotive",
	domain.Water: "trade, logistics, distribution, fishery and tourism",
}

func recommend(primary, ally domain.Element) domain.Recommendations {
	colors := append([]string{}, luckyColors[primary]...)
	colors = append(colors, luckyColors[ally]...)
	return domain.Recommendations{
		Colors:    colors,
		Direction: luckyDirections[primary],
		Numbers:   luckyNumbers[primary],
		Career:    careerAdvice[primary],
	}
}
