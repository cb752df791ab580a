package domain

// TenGod is the relation label (십성) of a character relative to the
// day master. DayMaster is the sentinel carried by the day stem itself.
type TenGod int

const (
	DayMaster      TenGod = iota // 일간
	Friend                       // 비견
	RobWealth                    // 겁재
	EatingGod                    // 식신
	HurtingOfficer               // 상관
	IndirectWealth               // 편재
	DirectWealth                 // 정재
	SevenKillings                // 편관
	DirectOfficer                // 정관
	IndirectSeal                 // 편인
	DirectSeal                   // 정인
)

var tenGodNames = [11]string{
	"Day Master", "Peer", "Rob Wealth", "Eating God", "Hurting Officer",
	"Indirect Wealth", "Direct Wealth", "7-Killing", "Direct Officer",
	"Indirect Seal", "Direct Seal",
}

var tenGodKorean = [11]string{
	"일간", "비견", "겁재", "식신", "상관",
	"편재", "정재", "편관", "정관", "편인", "정인",
}

func (g TenGod) String() string { return tenGodNames[g] }

// Korean returns the Korean label (비견, 겁재, …).
func (g TenGod) Korean() string { return tenGodKorean[g] }

// TenGodCategory partitions the ten relation labels into five pairs.
// The declaration order is the fixed priority used to break dominance
// ties.
type TenGodCategory int

const (
	CategoryCompanion TenGodCategory = iota // 비겁
	CategoryOutput                          // 식상
	CategoryWealth                          // 재성
	CategoryAuthority                       // 관성
	CategoryResource                        // 인성
	CategorySelf                            // the day master sentinel
)

// TenGodCategories lists the five real categories in priority order.
var TenGodCategories = [5]TenGodCategory{
	CategoryCompanion, CategoryOutput, CategoryWealth, CategoryAuthority, CategoryResource,
}

var categoryNames = [6]string{
	"companion", "output", "wealth", "authority", "resource", "self",
}

var categoryKorean = [6]string{"비겁", "식상", "재성", "관성", "인성", "본인"}

func (c TenGodCategory) String() string { return categoryNames[c] }

// Korean returns the Korean category name (비겁, 식상, …).
func (c TenGodCategory) Korean() string { return categoryKorean[c] }

// Category returns the pair a relation label belongs to.
func (g TenGod) Category() TenGodCategory {
	if g == DayMaster {
		return CategorySelf
	}
	return TenGodCategory((int(g) - 1) / 2)
}

// TenGodBetween labels an element/polarity pair relative to the day
// master: the element relation picks the category, equal polarity picks
// the first label of the pair.
func TenGodBetween(day Stem, other Element, otherPolarity Polarity) TenGod {
	var category TenGodCategory
	dayElem := day.Element()
	switch {
	case dayElem == other:
		category = CategoryCompanion
	case dayElem.Generates() == other:
		category = CategoryOutput
	case dayElem.Controls() == other:
		category = CategoryWealth
	case other.Controls() == dayElem:
		category = CategoryAuthority
	default: // other generates day
		category = CategoryResource
	}

	god := TenGod(int(category)*2 + 1)
	if day.Polarity() != otherPolarity {
		god++
	}
	return god
}

// TenGodOfStem labels a stem relative to the day master.
func TenGodOfStem(day, other Stem) TenGod {
	return TenGodBetween(day, other.Element(), other.Polarity())
}

// TenGodOfBranch labels a branch by its dominant hidden stem, the rule
// applied to the four branch slots of a chart.
func TenGodOfBranch(day Stem, b Branch) TenGod {
	return TenGodOfStem(day, b.DominantStem())
}
