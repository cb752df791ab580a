package domain

// Element is one of the five elements (五行). The declaration order is the
// canonical iteration order used everywhere ties are broken.
type Element int

const (
	Wood Element = iota
	Fire
	Earth
	Metal
	Water
)

// Elements lists all five elements in canonical order.
var Elements = [5]Element{Wood, Fire, Earth, Metal, Water}

var elementNames = [5]string{"Wood", "Fire", "Earth", "Metal", "Water"}
var elementHanja = [5]string{"木", "火", "土", "金", "水"}
var elementKorean = [5]string{"목", "화", "토", "금", "수"}

func (e Element) String() string { return elementNames[e] }

// Hanja returns the hanja character (木, 火, 土, 金, 水).
func (e Element) Hanja() string { return elementHanja[e] }

// Korean returns the Korean reading (목, 화, 토, 금, 수).
func (e Element) Korean() string { return elementKorean[e] }

// Generates follows the generation cycle 木→火→土→金→水→木.
func (e Element) Generates() Element { return Element((int(e) + 1) % 5) }

// GeneratedBy returns the element whose generation target is e.
func (e Element) GeneratedBy() Element { return Element((int(e) + 4) % 5) }

// Controls follows the control cycle 木→土→水→火→金→木.
func (e Element) Controls() Element { return Element((int(e) + 2) % 5) }

// ControlledBy returns the element that controls e.
func (e Element) ControlledBy() Element { return Element((int(e) + 3) % 5) }

// Supports reports whether e strengthens the day element: either the
// same element (peer) or an element that generates it (resource).
func (e Element) Supports(day Element) bool {
	return e == day || e.Generates() == day
}

// Polarity is the yin/yang attribute of a stem or branch.
type Polarity int

const (
	Yang Polarity = iota
	Yin
)

func (p Polarity) String() string {
	if p == Yang {
		return "Yang"
	}
	return "Yin"
}

// Korean returns the Korean reading (양, 음).
func (p Polarity) Korean() string {
	if p == Yang {
		return "양"
	}
	return "음"
}
