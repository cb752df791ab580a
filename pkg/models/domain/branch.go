package domain

import "fmt"

// Branch is one of the twelve earthly branches (地支), 子 through 亥.
type Branch int

const (
	BranchZi   Branch = iota // 子
	BranchChou               // 丑
	BranchYin                // 寅
	BranchMao                // 卯
	BranchChen               // 辰
	BranchSi                 // 巳
	BranchWu                 // 午
	BranchWei                // 未
	BranchShen               // 申
	BranchYou                // 酉
	BranchXu                 // 戌
	BranchHai                // 亥
)

// Branches lists the twelve earthly branches in cycle order.
var Branches = [12]Branch{
	BranchZi, BranchChou, BranchYin, BranchMao, BranchChen, BranchSi,
	BranchWu, BranchWei, BranchShen, BranchYou, BranchXu, BranchHai,
}

var branchHanja = [12]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}
var branchKorean = [12]string{"자", "축", "인", "묘", "진", "사", "오", "미", "신", "유", "술", "해"}

var branchElements = [12]Element{
	Water, Earth, Wood, Wood, Earth, Fire,
	Fire, Earth, Metal, Metal, Earth, Water,
}

// HiddenStem is one component of a branch's hidden-stem composition,
// weighted in days. The days of a branch always sum to 30.
type HiddenStem struct {
	Stem Stem
	Days int
}

// hiddenStems holds the 지장간 composition per branch, ordered with the
// dominant stem (본기) first.
var hiddenStems = [12][]HiddenStem{
	BranchZi:   {{StemGui, 30}},
	BranchChou: {{StemJi, 18}, {StemGui, 9}, {StemXin, 3}},
	BranchYin:  {{StemJia, 16}, {StemBing, 7}, {StemWu, 7}},
	BranchMao:  {{StemYi, 30}},
	BranchChen: {{StemWu, 18}, {StemYi, 9}, {StemGui, 3}},
	BranchSi:   {{StemBing, 16}, {StemGeng, 7}, {StemWu, 7}},
	BranchWu:   {{StemDing, 20}, {StemJi, 10}},
	BranchWei:  {{StemJi, 18}, {StemDing, 9}, {StemYi, 3}},
	BranchShen: {{StemGeng, 16}, {StemRen, 7}, {StemWu, 7}},
	BranchYou:  {{StemXin, 30}},
	BranchXu:   {{StemWu, 18}, {StemXin, 9}, {StemDing, 3}},
	BranchHai:  {{StemRen, 20}, {StemJia, 10}},
}

func (b Branch) String() string { return branchHanja[b] }

// Korean returns the Korean reading of the branch.
func (b Branch) Korean() string { return branchKorean[b] }

// Element returns the branch's assigned element.
func (b Branch) Element() Element { return branchElements[b] }

// Polarity alternates yang/yin along the branch cycle.
func (b Branch) Polarity() Polarity { return Polarity(int(b) % 2) }

// HiddenStems returns the branch's hidden-stem composition, dominant
// stem first. Callers must not mutate the returned slice.
func (b Branch) HiddenStems() []HiddenStem { return hiddenStems[b] }

// DominantStem returns the hidden stem with the largest day weight.
func (b Branch) DominantStem() Stem { return hiddenStems[b][0].Stem }

func (b Branch) valid() bool { return b >= BranchZi && b <= BranchHai }

// ParseBranch maps a hanja character to its branch. Unrecognized
// characters are rejected with ErrUnknownCharacter.
func ParseBranch(ch string) (Branch, error) {
	for i, h := range branchHanja {
		if h == ch {
			return Branch(i), nil
		}
	}
	return 0, fmt.Errorf("parse branch %q: %w", ch, ErrUnknownCharacter)
}

// Season is the season a month branch belongs to.
type Season int

const (
	Spring Season = iota
	Summer
	Autumn
	Winter
	Transitional // 환절기: the four earth months 辰未戌丑
)

var seasonNames = [5]string{"spring", "summer", "autumn", "winter", "transitional"}

func (s Season) String() string { return seasonNames[s] }

var branchSeasons = [12]Season{
	BranchZi: Winter, BranchChou: Transitional, BranchYin: Spring, BranchMao: Spring,
	BranchChen: Transitional, BranchSi: Summer, BranchWu: Summer, BranchWei: Transitional,
	BranchShen: Autumn, BranchYou: Autumn, BranchXu: Transitional, BranchHai: Winter,
}

// Season returns the season the branch governs when in the month slot.
func (b Branch) Season() Season { return branchSeasons[b] }

// Temperature is the seasonal temperature tendency of a month branch,
// the input of the temperature-regulation selection strategy.
type Temperature int

const (
	VeryCold Temperature = iota
	Cold
	SlightlyCold
	Mild
	SlightlyWarm
	Warm
	Hot
	VeryHot
)

var temperatureNames = [8]string{
	"very cold", "cold", "slightly cold", "mild",
	"slightly warm", "warm", "hot", "very hot",
}

func (t Temperature) String() string { return temperatureNames[t] }

var branchTemperatures = [12]Temperature{
	BranchZi: VeryCold, BranchChou: VeryCold, BranchYin: SlightlyCold, BranchMao: Mild,
	BranchChen: Mild, BranchSi: Warm, BranchWu: VeryHot, BranchWei: Hot,
	BranchShen: SlightlyWarm, BranchYou: Mild, BranchXu: SlightlyCold, BranchHai: Cold,
}

// Temperature returns the chart temperature tendency for a month branch.
func (b Branch) Temperature() Temperature { return branchTemperatures[b] }
