package domain

import "fmt"

// Stem is one of the ten heavenly stems (天干), 甲 through 癸.
type Stem int

const (
	StemJia  Stem = iota // 甲
	StemYi               // 乙
	StemBing             // 丙
	StemDing             // 丁
	StemWu               // 戊
	StemJi               // 己
	StemGeng             // 庚
	StemXin              // 辛
	StemRen              // 壬
	StemGui              // 癸
)

// Stems lists the ten heavenly stems in cycle order.
var Stems = [10]Stem{
	StemJia, StemYi, StemBing, StemDing, StemWu,
	StemJi, StemGeng, StemXin, StemRen, StemGui,
}

var stemHanja = [10]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}
var stemKorean = [10]string{"갑", "을", "병", "정", "무", "기", "경", "신", "임", "계"}

func (s Stem) String() string { return stemHanja[s] }

// Korean returns the Korean reading of the stem.
func (s Stem) Korean() string { return stemKorean[s] }

// Element returns the stem's element; stems pair up along the cycle
// (甲乙 wood, 丙丁 fire, 戊己 earth, 庚辛 metal, 壬癸 water).
func (s Stem) Element() Element { return Element(int(s) / 2) }

// Polarity alternates yang/yin along the stem cycle.
func (s Stem) Polarity() Polarity { return Polarity(int(s) % 2) }

func (s Stem) valid() bool { return s >= StemJia && s <= StemGui }

// ParseStem maps a hanja character to its stem. Unrecognized characters
// are rejected with ErrUnknownCharacter.
func ParseStem(ch string) (Stem, error) {
	for i, h := range stemHanja {
		if h == ch {
			return Stem(i), nil
		}
	}
	return 0, fmt.Errorf("parse stem %q: %w", ch, ErrUnknownCharacter)
}
