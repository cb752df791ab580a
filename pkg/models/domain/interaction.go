package domain

// InteractionKind is one of the seven pattern kinds detected among the
// chart's characters. The declaration order is the detection and
// reporting priority (1 = highest).
type InteractionKind int

const (
	DirectionalCombination InteractionKind = iota + 1 // 방합
	ThreeHarmony                                      // 삼합 (full or partial)
	SixCombination                                    // 육합
	StemCombination                                   // 천간합
	Clash                                             // 충
	Punishment                                        // 형 (incl. self-punishment)
	Break                                             // 파
)

var interactionKindNames = map[InteractionKind]string{
	DirectionalCombination: "directional_combination",
	ThreeHarmony:           "three_harmony",
	SixCombination:         "six_combination",
	StemCombination:        "stem_combination",
	Clash:                  "clash",
	Punishment:             "punishment",
	Break:                  "break",
}

var interactionKindKorean = map[InteractionKind]string{
	DirectionalCombination: "방합",
	ThreeHarmony:           "삼합",
	SixCombination:         "육합",
	StemCombination:        "천간합",
	Clash:                  "충",
	Punishment:             "형",
	Break:                  "파",
}

func (k InteractionKind) String() string { return interactionKindNames[k] }

// Korean returns the Korean pattern name (방합, 삼합, …).
func (k InteractionKind) Korean() string { return interactionKindKorean[k] }

// Priority returns the numeric priority rank of the kind.
func (k InteractionKind) Priority() int { return int(k) }

// IsFusion reports whether the kind produces a resulting element.
func (k InteractionKind) IsFusion() bool { return k <= StemCombination }

// Severity tags how strongly an interaction shapes the chart.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityVeryHigh
)

var severityNames = [4]string{"low", "medium", "high", "very_high"}

func (s Severity) String() string { return severityNames[s] }

// Interaction is one detected pattern among 2–3 branches or 2 stems.
// Fusions carry a resulting element; conflicts do not.
type Interaction struct {
	Kind        InteractionKind
	Priority    int
	Stems       []Stem   // stem combinations only
	Branches    []Branch // branch patterns
	Slots       []Slot   // participating slots, when position-specific
	Result      Element  // fusion product, valid only when HasResult
	HasResult   bool
	Severity    Severity
	Partial     bool // 2-of-3 members of a triple
	Description string
}

// InteractionReport is the ordered interaction list plus derived
// summary statistics.
type InteractionReport struct {
	Interactions []Interaction
	KindCount    map[InteractionKind]int
	HasClash     bool
	HasFusion    bool
}

// Selection-related types.

// SelectionMethod is the strategy that chose the primary-need element.
type SelectionMethod int

const (
	MethodBalance     SelectionMethod = iota // 억부: surplus/deficit balancing
	MethodTemperature                        // 조후: temperature regulation
	MethodMediation                          // 통관: conflict mediation
)

var methodNames = [3]string{"balance", "temperature", "mediation"}

var methodKorean = [3]string{"억부용신(抑扶用神)", "조후용신(調候用神)", "통관용신(通關用神)"}

func (m SelectionMethod) String() string { return methodNames[m] }

// Korean returns the traditional method name.
func (m SelectionMethod) Korean() string { return methodKorean[m] }

// Recommendations are the lifestyle hints derived from the chosen
// elements, for the presentation layer.
type Recommendations struct {
	Colors    []string
	Direction string
	Numbers   []int
	Career    string
}

// Selection is the primary-need element (용신) with its ally (희신) and
// harmful (기신) elements, the strategy that chose it, and the
// quantitative justification.
type Selection struct {
	Primary Element // 용신
	Ally    Element // 희신
	Harmful Element // 기신

	Method      SelectionMethod
	Reason      string
	Temperature Temperature // month-branch temperature tag

	Recommendations Recommendations
}
