package domain

// ElementScore is the weighted presence of one element in a chart.
type ElementScore struct {
	Element Element
	Count   int // raw character count, hidden stems not included
	Score   float64
	Ratio   float64 // percentage of the total, rounded to one decimal
}

// Distribution is the weighted five-element breakdown of a chart.
// Ratios sum to 100 within rounding; Total is strictly positive for
// every valid chart because of the day-element base bonus.
type Distribution struct {
	Scores     [5]ElementScore // canonical element order
	Total      float64
	DayElement Element
	Strongest  Element
	Weakest    Element
	Missing    []Element // below the 5% presence threshold
}

// Score returns the raw score of an element.
func (d *Distribution) Score(e Element) float64 { return d.Scores[e].Score }

// Ratio returns the rounded percentage of an element.
func (d *Distribution) Ratio(e Element) float64 { return d.Scores[e].Ratio }

// StrengthLevel is the five-step verdict on the day master's strength.
type StrengthLevel int

const (
	VeryWeak StrengthLevel = iota
	Weak
	Balanced
	Strong
	VeryStrong
)

var strengthNames = [5]string{"very_weak", "weak", "balanced", "strong", "very_strong"}

var strengthStatus = [5]string{
	"極弱(극약)", "身弱(신약)", "中和(중화)", "身强(신강)", "極强(극강)",
}

func (l StrengthLevel) String() string { return strengthNames[l] }

// Status returns the traditional hanja/Korean verdict label.
func (l StrengthLevel) Status() string { return strengthStatus[l] }

// Strength is the verdict on the day master's standing, with the three
// classic indicators 득령/득지/득세 and the support ratio that produced it.
type Strength struct {
	Level        StrengthLevel
	SupportScore float64
	SupportRatio float64

	MonthSupport    bool // 득령: the month branch's dominant hidden stem backs the day element
	DayBranchRoot   bool // 득지: the day branch hides a stem of the day element itself
	MajoritySupport bool // 득세: more than half of the other seven characters back the day element

	Summary string
}

// IndicatorCount returns how many of the three indicators hold.
func (s *Strength) IndicatorCount() int {
	n := 0
	for _, ok := range []bool{s.MonthSupport, s.DayBranchRoot, s.MajoritySupport} {
		if ok {
			n++
		}
	}
	return n
}

// HiddenGod is the relation label of one hidden stem inside a branch.
type HiddenGod struct {
	Stem     Stem
	Days     int
	God      TenGod
	Category TenGodCategory
}

// TenGodPlacement is the relation label of one chart slot.
type TenGodPlacement struct {
	Slot     Slot
	God      TenGod
	Category TenGodCategory
	Hidden   []HiddenGod // branch slots only
}

// TenGodChart maps every chart slot to its relation label and
// aggregates the category counts (day stem excluded).
type TenGodChart struct {
	Placements    [8]TenGodPlacement // indexed by Slot
	CategoryCount [5]int             // indexed by TenGodCategory
	Dominant      TenGodCategory
	Missing       []TenGodCategory // categories absent from the chart
}

// Report is the aggregate hand-off artifact of a full analysis: every
// stage's output plus the scored timeline, consumed by the explanation
// and presentation layers.
type Report struct {
	Chart        Chart
	Distribution Distribution
	Strength     Strength
	TenGods      TenGodChart
	Interactions InteractionReport
	Selection    Selection
	Timeline     Timeline
}
