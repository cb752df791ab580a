package domain

// Window is one timeline span supplied by the calendar oracle: either a
// decade window (~10 years, bounded by ages) or a single calendar year.
type Window struct {
	Stem   Stem
	Branch Branch

	StartAge int // decade windows
	EndAge   int
	Year     int // year windows
}

// GanZhi returns the two-character hanja form of the window.
func (w Window) GanZhi() string { return w.Stem.String() + w.Branch.String() }

// Korean returns the Korean reading of the window's ganzi.
func (w Window) Korean() string { return w.Stem.Korean() + w.Branch.Korean() }

// Rating is the five-band classification of a window score.
type Rating int

const (
	Adverse Rating = iota
	Unfavorable
	Neutral
	Favorable
	Exceptional
)

var ratingNames = [5]string{"adverse", "unfavorable", "neutral", "favorable", "exceptional"}

var ratingKorean = [5]string{"대흉(大凶)", "흉(凶)", "보통(普通)", "길(吉)", "대길(大吉)"}

func (r Rating) String() string { return ratingNames[r] }

// Korean returns the traditional rating label.
func (r Rating) Korean() string { return ratingKorean[r] }

// ScoredWindow is a window with its score attached. Scores are clamped
// to [0, 100].
type ScoredWindow struct {
	Window
	Score   int
	Rating  Rating
	Summary string
}

// DecadePlan is the raw decade-window sequence returned by the
// calendar oracle before scoring.
type DecadePlan struct {
	StartYears  int
	StartMonths int
	Forward     bool
	Windows     []Window
}

// Timeline is the scored decade sequence plus the current and upcoming
// year windows.
type Timeline struct {
	StartYears  int  // years from birth until the first decade window
	StartMonths int  // additional months
	Forward     bool // direction of the decade sequence

	CurrentAge int // Korean reckoning: birth year counts as age one

	Decades       []ScoredWindow
	CurrentDecade *ScoredWindow // nil before the first decade window opens
	Years         []ScoredWindow
}
