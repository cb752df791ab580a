package analysis

import (
	"math"

	"github.com/pythonzzgr/bazi-analysis/pkg/models/domain"
)

// missingThreshold marks an element as missing when it holds less than
// this share of the total distribution, in percent.
const missingThreshold = 5.0

// AnalyzeElements computes the weighted five-element distribution of a
// chart. Stems contribute their full slot weight; branches split their
// weight across the hidden-stem composition proportionally to each
// stem's days out of 30. The day stem's slot weight is zero; its
// presence enters only through the fixed base bonus.
func AnalyzeElements(chart *domain.Chart) domain.Distribution {
	var scores [5]float64
	var counts [5]int

	pillars := chart.Pillars()
	for _, slot := range domain.Slots {
		weight := slot.Weight()
		if weight == 0 {
			continue
		}

		pillar := pillars[slot.Position()]
		if slot.IsStem() {
			elem := pillar.Stem.Element()
			scores[elem] += float64(weight)
			counts[elem]++
			continue
		}

		branch := pillar.Branch
		for _, hidden := range branch.HiddenStems() {
			scores[hidden.Stem.Element()] += float64(weight) * float64(hidden.Days) / 30.0
		}
		counts[branch.Element()]++
	}

	dayElement := chart.DayElement()
	scores[dayElement] += domain.DayElementBase

	var total float64
	for _, s := range scores {
		total += s
	}

	dist := domain.Distribution{
		Total:      round1(total),
		DayElement: dayElement,
	}

	strongest, weakest := domain.Wood, domain.Wood
	for _, e := range domain.Elements {
		ratio := round1(scores[e] / total * 100)
		dist.Scores[e] = domain.ElementScore{
			Element: e,
			Count:   counts[e],
			Score:   round1(scores[e]),
			Ratio:   ratio,
		}
		if scores[e] > scores[strongest] {
			strongest = e
		}
		if scores[e] < scores[weakest] {
			weakest = e
		}
		if ratio < missingThreshold {
			dist.Missing = append(dist.Missing, e)
		}
	}
	dist.Strongest = strongest
	dist.Weakest = weakest

	return dist
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
