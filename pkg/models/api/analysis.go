package api

// AnalyzeRequest is the birth instant posted to the analyze endpoint.
type AnalyzeRequest struct {
	Name        string `json:"name,omitempty"`
	Gender      string `json:"gender"` // "male" or "female"
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	Day         int    `json:"day"`
	Hour        int    `json:"hour"`
	Minute      int    `json:"minute"`
	IsLunar     bool   `json:"is_lunar,omitempty"`
	IsLeapMonth bool   `json:"is_leap_month,omitempty"`
}

type Pillar struct {
	Stem          string `json:"stem"`
	Branch        string `json:"branch"`
	GanZhi        string `json:"ganzhi"`
	Korean        string `json:"korean"`
	StemElement   string `json:"stem_element"`
	BranchElement string `json:"branch_element"`
	Nayin         string `json:"nayin,omitempty"`
}

type Chart struct {
	Name         string `json:"name,omitempty"`
	Gender       string `json:"gender"`
	SolarDate    string `json:"solar_date"`
	LunarDate    string `json:"lunar_date"`
	IsLunarInput bool   `json:"is_lunar_input"`
	IsLeapMonth  bool   `json:"is_leap_month"`

	Year  Pillar `json:"year"`
	Month Pillar `json:"month"`
	Day   Pillar `json:"day"`
	Time  Pillar `json:"time"`

	DayMaster  string `json:"day_master"`
	DayElement string `json:"day_element"`
	Season     string `json:"season"`
}

type ElementScore struct {
	Element string  `json:"element"`
	Hanja   string  `json:"hanja"`
	Korean  string  `json:"korean"`
	Count   int     `json:"count"`
	Score   float64 `json:"score"`
	Ratio   float64 `json:"ratio"`
}

type Distribution struct {
	Scores    []ElementScore `json:"scores"`
	Total     float64        `json:"total"`
	Strongest string         `json:"strongest"`
	Weakest   string         `json:"weakest"`
	Missing   []string       `json:"missing"`
}

type Strength struct {
	Level           string  `json:"level"`
	Status          string  `json:"status"`
	SupportScore    float64 `json:"support_score"`
	SupportRatio    float64 `json:"support_ratio"`
	MonthSupport    bool    `json:"month_support"`
	DayBranchRoot   bool    `json:"day_branch_root"`
	MajoritySupport bool    `json:"majority_support"`
	Summary         string  `json:"summary"`
}

type HiddenGod struct {
	Stem     string `json:"stem"`
	Days     int    `json:"days"`
	God      string `json:"god"`
	Korean   string `json:"korean"`
	Category string `json:"category"`
}

type TenGodPlacement struct {
	Slot      string      `json:"slot"`
	Korean    string      `json:"korean"`
	God       string      `json:"god"`
	GodKorean string      `json:"god_korean"`
	Category  string      `json:"category"`
	Hidden    []HiddenGod `json:"hidden,omitempty"`
}

type TenGods struct {
	Placements    []TenGodPlacement `json:"placements"`
	CategoryCount map[string]int    `json:"category_count"`
	Dominant      string            `json:"dominant"`
	Missing       []string          `json:"missing"`
}

type Interaction struct {
	Kind        string   `json:"kind"`
	Korean      string   `json:"korean"`
	Priority    int      `json:"priority"`
	Stems       []string `json:"stems,omitempty"`
	Branches    []string `json:"branches,omitempty"`
	Slots       []string `json:"slots,omitempty"`
	Result      string   `json:"result,omitempty"`
	Severity    string   `json:"severity"`
	Partial     bool     `json:"partial,omitempty"`
	Description string   `json:"description"`
}

type Interactions struct {
	Items     []Interaction  `json:"items"`
	KindCount map[string]int `json:"kind_count"`
	HasClash  bool           `json:"has_clash"`
	HasFusion bool           `json:"has_fusion"`
}

type Recommendations struct {
	Colors    []string `json:"colors"`
	Direction string   `json:"direction"`
	Numbers   []int    `json:"numbers"`
	Career    string   `json:"career"`
}

type Selection struct {
	Primary         string          `json:"primary"`
	PrimaryKorean   string          `json:"primary_korean"`
	Ally            string          `json:"ally"`
	Harmful         string          `json:"harmful"`
	Method          string          `json:"method"`
	MethodKorean    string          `json:"method_korean"`
	Reason          string          `json:"reason"`
	Temperature     string          `json:"temperature"`
	Recommendations Recommendations `json:"recommendations"`
}

type ScoredWindow struct {
	GanZhi       string `json:"ganzhi"`
	Korean       string `json:"korean"`
	StartAge     int    `json:"start_age,omitempty"`
	EndAge       int    `json:"end_age,omitempty"`
	Year         int    `json:"year,omitempty"`
	Score        int    `json:"score"`
	Rating       string `json:"rating"`
	RatingKorean string `json:"rating_korean"`
	Summary      string `json:"summary"`
}

type Timeline struct {
	StartYears    int            `json:"start_years"`
	StartMonths   int            `json:"start_months"`
	Forward       bool           `json:"forward"`
	CurrentAge    int            `json:"current_age"`
	Decades       []ScoredWindow `json:"decades"`
	CurrentDecade *ScoredWindow  `json:"current_decade,omitempty"`
	Years         []ScoredWindow `json:"years"`
}

// Report is the full analysis payload returned by the analyze endpoint.
type Report struct {
	Chart        Chart        `json:"chart"`
	Distribution Distribution `json:"distribution"`
	Strength     Strength     `json:"strength"`
	TenGods      TenGods      `json:"ten_gods"`
	Interactions Interactions `json:"interactions"`
	Selection    Selection    `json:"selection"`
	Timeline     Timeline     `json:"timeline"`
	ReportText   string       `json:"report_text"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type LeapMonthResponse struct {
	Year      int  `json:"year"`
	LeapMonth int  `json:"leap_month"`
	HasLeap   bool `json:"has_leap"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
