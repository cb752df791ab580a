// Package analysis implements the symbolic analysis pipeline: element
// distribution, strength classification, ten-relation mapping,
// interaction detection, primary-need selection and timeline scoring.
// Every stage is a pure function of the chart and the prior stages'
// outputs; the only shared state is the read-only tables below.
package analysis

import "github.com/pythonzzgr/bazi-analysis/pkg/models/domain"

// The pattern tables are kept as small ordered slices and matched by
// explicit pair/subset enumeration so the combinatorics stay auditable.
// Every pair/triple maps to at most one pattern per table.

type stemPair struct {
	a, b   domain.Stem
	result domain.Element
}

// stemCombinations: 천간합 (갑기합토, 을경합금, 병신합수, 정임합목, 무계합화).
var stemCombinations = []stemPair{
	{domain.StemJia, domain.StemJi, domain.Earth},
	{domain.StemYi, domain.StemGeng, domain.Metal},
	{domain.StemBing, domain.StemXin, domain.Water},
	{domain.StemDing, domain.StemRen, domain.Wood},
	{domain.StemWu, domain.StemGui, domain.Fire},
}

type branchPair struct {
	a, b   domain.Branch
	result domain.Element
}

// sixCombinations: 지지육합.
var sixCombinations = []branchPair{
	{domain.BranchZi, domain.BranchChou, domain.Earth},
	{domain.BranchYin, domain.BranchHai, domain.Wood},
	{domain.BranchMao, domain.BranchXu, domain.Fire},
	{domain.BranchChen, domain.BranchYou, domain.Metal},
	{domain.BranchSi, domain.BranchShen, domain.Water},
	{domain.BranchWu, domain.BranchWei, domain.Earth},
}

type branchTriple struct {
	members [3]domain.Branch
	result  domain.Element
}

// threeHarmonies: 삼합. Two of three members already form a partial
// harmony.
var threeHarmonies = []branchTriple{
	{[3]domain.Branch{domain.BranchShen, domain.BranchZi, domain.BranchChen}, domain.Water},
	{[3]domain.Branch{domain.BranchHai, domain.BranchMao, domain.BranchWei}, domain.Wood},
	{[3]domain.Branch{domain.BranchYin, domain.BranchWu, domain.BranchXu}, domain.Fire},
	{[3]domain.Branch{domain.BranchSi, domain.BranchYou, domain.BranchChou}, domain.Metal},
}

// directionalTriples: 방합. All three members must be present.
var directionalTriples = []branchTriple{
	{[3]domain.Branch{domain.BranchYin, domain.BranchMao, domain.BranchChen}, domain.Wood},
	{[3]domain.Branch{domain.BranchSi, domain.BranchWu, domain.BranchWei}, domain.Fire},
	{[3]domain.Branch{domain.BranchShen, domain.BranchYou, domain.BranchXu}, domain.Metal},
	{[3]domain.Branch{domain.BranchHai, domain.BranchZi, domain.BranchChou}, domain.Water},
}

// clashPairs: 지충.
var clashPairs = [][2]domain.Branch{
	{domain.BranchZi, domain.BranchWu},
	{domain.BranchChou, domain.BranchWei},
	{domain.BranchYin, domain.BranchShen},
	{domain.BranchMao, domain.BranchYou},
	{domain.BranchChen, domain.BranchXu},
	{domain.BranchSi, domain.BranchHai},
}

type punishmentTriple struct {
	members [3]domain.Branch
	label   string
}

// punishmentTriples: 삼형. Two of three members already punish.
var punishmentTriples = []punishmentTriple{
	{[3]domain.Branch{domain.BranchYin, domain.BranchSi, domain.BranchShen}, "무례지형"},
	{[3]domain.Branch{domain.BranchChou, domain.BranchXu, domain.BranchWei}, "은혜지형"},
}

// punishmentPair: the single two-branch punishment 子卯.
var punishmentPair = struct {
	a, b  domain.Branch
	label string
}{domain.BranchZi, domain.BranchMao, "무례지형"}

// selfPunishing: the four branches that punish themselves (자형) when
// repeated in a chart.
var selfPunishing = []domain.Branch{
	domain.BranchWu, domain.BranchChen, domain.BranchYou, domain.BranchHai,
}

// breakPairs: 지파.
var breakPairs = [][2]domain.Branch{
	{domain.BranchZi, domain.BranchYou},
	{domain.BranchChou, domain.BranchChen},
	{domain.BranchYin, domain.BranchHai},
	{domain.BranchMao, domain.BranchWu},
	{domain.BranchSi, domain.BranchShen},
	{domain.BranchWei, domain.BranchXu},
}
