package analysis

import (
	"fmt"

	"github.com/pythonzzgr/bazi-analysis/pkg/models/domain"
)

const baseScore = 50

// ScoreWindow rates a fortune window against the selected elements.
// The window's stem element and branch element each contribute
// independently: matching the primary element is worth the most,
// generating it less, being generated by it a little; matching or
// feeding the harmful element subtracts. Scores are clamped to [0, 100].
func ScoreWindow(w domain.Window, primary, harmful domain.Element) domain.ScoredWindow {
	score := baseScore
	for _, elem := range []domain.Element{w.Stem.Element(), w.Branch.Element()} {
		switch {
		case elem == primary:
			score += 25
		case elem.Generates() == primary:
			score += 15
		case primary.Generates() == elem:
			score += 5
		}
		switch {
		case elem == harmful:
			score -= 20
		case elem.Generates() == harmful:
			score -= 10
		}
	}
	score = clamp(score, 0, 100)

	rating := rate(score)
	return domain.ScoredWindow{
		Window:  w,
		Score:   score,
		Rating:  rating,
		Summary: summarizeWindow(w, score, rating),
	}
}

// ScoreWindows scores a batch of windows in order.
func ScoreWindows(windows []domain.Window, primary, harmful domain.Element) []domain.ScoredWindow {
	scored := make([]domain.ScoredWindow, 0, len(windows))
	for _, w := range windows {
		scored = append(scored, ScoreWindow(w, primary, harmful))
	}
	return scored
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func rate(score int) domain.Rating {
	switch {
	case score >= 85:
		return domain.Exceptional
	case score >= 70:
		return domain.Favorable
	case score >= 55:
		return domain.Neutral
	case score >= 40:
		return domain.Unfavorable
	default:
		return domain.Adverse
	}
}

var ratingSummaries = map[domain.Rating]string{
	domain.Exceptional: "an exceptional stretch, the needed element arrives in force",
	domain.Favorable:   "a favorable stretch with solid support",
	domain.Neutral:     "an ordinary stretch, neither helped nor hindered",
	domain.Unfavorable: "an unfavorable stretch, progress takes extra effort",
	domain.Adverse:     "an adverse stretch dominated by the harmful element",
}

func summarizeWindow(w domain.Window, score int, rating domain.Rating) string {
	return fmt.Sprintf("%s scores %d: %s", w.GanZhi(), score, ratingSummaries[rating])
}
