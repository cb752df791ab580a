package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownCharacter marks a character outside the closed alphabet of
// 10 stems and 12 branches. It can only arise from a malformed chart
// handed over by the calendar oracle and is fatal to the analysis call.
var ErrUnknownCharacter = errors.New("character outside the sexagenary alphabet")

// Position is one of the four pillar positions.
type Position int

const (
	PositionYear Position = iota
	PositionMonth
	PositionDay
	PositionTime
)

var positionNames = [4]string{"year", "month", "day", "time"}
var positionKorean = [4]string{"연주", "월주", "일주", "시주"}

func (p Position) String() string { return positionNames[p] }

// Korean returns the Korean pillar name (연주, 월주, 일주, 시주).
func (p Position) Korean() string { return positionKorean[p] }

// Slot addresses one of the eight characters of a chart.
type Slot int

const (
	SlotYearStem Slot = iota
	SlotYearBranch
	SlotMonthStem
	SlotMonthBranch
	SlotDayStem
	SlotDayBranch
	SlotTimeStem
	SlotTimeBranch
)

// Slots lists the eight character slots in pillar order.
var Slots = [8]Slot{
	SlotYearStem, SlotYearBranch, SlotMonthStem, SlotMonthBranch,
	SlotDayStem, SlotDayBranch, SlotTimeStem, SlotTimeBranch,
}

var slotNames = [8]string{
	"year_stem", "year_branch", "month_stem", "month_branch",
	"day_stem", "day_branch", "time_stem", "time_branch",
}

var slotKorean = [8]string{"연간", "연지", "월간", "월지", "일간", "일지", "시간", "시지"}

// slotWeights is the per-position weight table of the element
// distribution. The month branch (월령) governs the season and carries
// the largest weight; the day stem is the self and carries zero so it
// cannot support itself positionally; its presence enters only through
// the fixed DayElementBase bonus.
var slotWeights = [8]int{
	SlotYearStem:    10,
	SlotYearBranch:  10,
	SlotMonthStem:   10,
	SlotMonthBranch: 35,
	SlotDayStem:     0,
	SlotDayBranch:   18,
	SlotTimeStem:    7,
	SlotTimeBranch:  10,
}

// DayElementBase is the fixed score added to the day element, keeping
// the total strictly positive for every valid chart.
const DayElementBase = 5

func (s Slot) String() string { return slotNames[s] }

// Korean returns the Korean slot name (연간, 연지, …).
func (s Slot) Korean() string { return slotKorean[s] }

// Position returns the pillar the slot belongs to.
func (s Slot) Position() Position { return Position(int(s) / 2) }

// IsStem reports whether the slot holds a stem (even slots) rather than
// a branch.
func (s Slot) IsStem() bool { return int(s)%2 == 0 }

// Weight returns the distribution weight of the slot.
func (s Slot) Weight() int { return slotWeights[s] }

// Pillar is an ordered stem/branch pair at one of the four positions.
type Pillar struct {
	Stem   Stem
	Branch Branch
}

// GanZhi returns the two-character hanja form, e.g. 甲寅.
func (p Pillar) GanZhi() string { return p.Stem.String() + p.Branch.String() }

// Korean returns the Korean reading, e.g. 갑인.
func (p Pillar) Korean() string { return p.Stem.Korean() + p.Branch.Korean() }

// nayinNames holds the thirty melodic-element (納音) labels, one per
// consecutive ganzi pair of the sexagenary cycle.
var nayinNames = [30]string{
	"海中金", "爐中火", "大林木", "路傍土", "劍鋒金",
	"山頭火", "澗下水", "城頭土", "白蠟金", "楊柳木",
	"泉中水", "屋上土", "霹靂火", "松柏木", "長流水",
	"砂中金", "山下火", "平地木", "壁上土", "金箔金",
	"覆燈火", "天河水", "大驛土", "釵釧金", "桑柘木",
	"大溪水", "沙中土", "天上火", "石榴木", "大海水",
}

// Nayin returns the melodic element of the pillar, or the empty string
// for a pair that does not occur in the sexagenary cycle.
func (p Pillar) Nayin() string {
	if int(p.Stem)%2 != int(p.Branch)%2 {
		return ""
	}
	// Solve i ≡ stem (mod 10), i ≡ branch (mod 12) within the 60-cycle.
	idx := (6*int(p.Stem) - 5*int(p.Branch)) % 60
	if idx < 0 {
		idx += 60
	}
	return nayinNames[idx/2]
}

// Gender selects the direction of the decade-fortune sequence.
type Gender int

const (
	Male Gender = iota
	Female
)

func (g Gender) String() string {
	if g == Male {
		return "male"
	}
	return "female"
}

// Chart is the four pillars plus birth metadata: the immutable unit of
// input to every analysis stage. It is built once by the calendar
// oracle and never mutated.
type Chart struct {
	Name   string
	Gender Gender

	Year  Pillar
	Month Pillar
	Day   Pillar
	Time  Pillar

	SolarDate  string
	LunarDate  string
	LunarInput bool
	LeapMonth  bool
}

// DayMaster returns the day stem, the reference point of the whole
// analysis.
func (c *Chart) DayMaster() Stem { return c.Day.Stem }

// DayElement returns the element of the day master.
func (c *Chart) DayElement() Element { return c.Day.Stem.Element() }

// Season returns the season of the month branch.
func (c *Chart) Season() Season { return c.Month.Branch.Season() }

// Pillars returns the four pillars in position order.
func (c *Chart) Pillars() [4]Pillar {
	return [4]Pillar{c.Year, c.Month, c.Day, c.Time}
}

// Stems returns the four stems in position order.
func (c *Chart) Stems() [4]Stem {
	return [4]Stem{c.Year.Stem, c.Month.Stem, c.Day.Stem, c.Time.Stem}
}

// Branches returns the four branches in position order.
func (c *Chart) Branches() [4]Branch {
	return [4]Branch{c.Year.Branch, c.Month.Branch, c.Day.Branch, c.Time.Branch}
}

// StemAt returns the stem in the given pillar position.
func (c *Chart) StemAt(p Position) Stem { return c.Pillars()[p].Stem }

// BranchAt returns the branch in the given pillar position.
func (c *Chart) BranchAt(p Position) Branch { return c.Pillars()[p].Branch }

// Validate checks every character against the closed alphabet. A
// failure means the chart was constructed by something other than the
// calendar oracle.
func (c *Chart) Validate() error {
	for i, p := range c.Pillars() {
		if !p.Stem.valid() {
			return fmt.Errorf("%s pillar stem %d: %w", Position(i), int(p.Stem), ErrUnknownCharacter)
		}
		if !p.Branch.valid() {
			return fmt.Errorf("%s pillar branch %d: %w", Position(i), int(p.Branch), ErrUnknownCharacter)
		}
	}
	return nil
}

// BirthInput is the raw birth instant handed to the calendar oracle.
type BirthInput struct {
	Name      string
	Year      int
	Month     int
	Day       int
	Hour      int
	Minute    int
	Gender    Gender
	Lunar     bool
	LeapMonth bool
}

// Validate bounds-checks the birth instant before it reaches the
// calendar oracle.
func (b BirthInput) Validate() error {
	switch {
	case b.Year < 1900 || b.Year > 2100:
		return fmt.Errorf("year %d out of range 1900..2100", b.Year)
	case b.Month < 1 || b.Month > 12:
		return fmt.Errorf("month %d out of range 1..12", b.Month)
	case b.Day < 1 || b.Day > 31:
		return fmt.Errorf("day %d out of range 1..31", b.Day)
	case b.Hour < 0 || b.Hour > 23:
		return fmt.Errorf("hour %d out of range 0..23", b.Hour)
	case b.Minute < 0 || b.Minute > 59:
		return fmt.Errorf("minute %d out of range 0..59", b.Minute)
	case b.LeapMonth && !b.Lunar:
		return errors.New("leap month only applies to lunar input")
	}
	return nil
}
