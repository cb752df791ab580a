package adapters

import (
	"fmt"

	"github.com/pythonzzgr/bazi-analysis/pkg/models/api"
	"github.com/pythonzzgr/bazi-analysis/pkg/models/domain"
)

func MapGenderApiToDomain(s string) (domain.Gender, error) {
	switch s {
	case "male", "m":
		return domain.Male, nil
	case "female", "f":
		return domain.Female, nil
	default:
		return 0, fmt.Errorf("unknown gender %q, expected male or female", s)
	}
}

func MapAnalyzeRequestApiToDomain(req api.AnalyzeRequest) (domain.BirthInput, error) {
	gender, err := MapGenderApiToDomain(req.Gender)
	if err != nil {
		return domain.BirthInput{}, err
	}
	return domain.BirthInput{
		Name:      req.Name,
		Year:      req.Year,
		Month:     req.Month,
		Day:       req.Day,
		Hour:      req.Hour,
		Minute:    req.Minute,
		Gender:    gender,
		Lunar:     req.IsLunar,
		LeapMonth: req.IsLeapMonth,
	}, nil
}

func MapPillarDomainToApi(p domain.Pillar) api.Pillar {
	return api.Pillar{
		Stem:          p.Stem.String(),
		Branch:        p.Branch.String(),
		GanZhi:        p.GanZhi(),
		Korean:        p.Korean(),
		StemElement:   p.Stem.Element().String(),
		BranchElement: p.Branch.Element().String(),
		Nayin:         p.Nayin(),
	}
}

func MapChartDomainToApi(c *domain.Chart) api.Chart {
	return api.Chart{
		Name:         c.Name,
		Gender:       c.Gender.String(),
		SolarDate:    c.SolarDate,
		LunarDate:    c.LunarDate,
		IsLunarInput: c.LunarInput,
		IsLeapMonth:  c.LeapMonth,
		Year:         MapPillarDomainToApi(c.Year),
		Month:        MapPillarDomainToApi(c.Month),
		Day:          MapPillarDomainToApi(c.Day),
		Time:         MapPillarDomainToApi(c.Time),
		DayMaster:    c.DayMaster().String(),
		DayElement:   c.DayElement().String(),
		Season:       c.Season().String(),
	}
}

func MapDistributionDomainToApi(d *domain.Distribution) api.Distribution {
	res := api.Distribution{
		Scores:    make([]api.ElementScore, 0, len(d.Scores)),
		Total:     d.Total,
		Strongest: d.Strongest.String(),
		Weakest:   d.Weakest.String(),
		Missing:   make([]string, 0, len(d.Missing)),
	}
	for _, s := range d.Scores {
		res.Scores = append(res.Scores, api.ElementScore{
			Element: s.Element.String(),
			Hanja:   s.Element.Hanja(),
			Korean:  s.Element.Korean(),
			Count:   s.Count,
			Score:   s.Score,
			Ratio:   s.Ratio,
		})
	}
	for _, m := range d.Missing {
		res.Missing = append(res.Missing, m.String())
	}
	return res
}

func MapStrengthDomainToApi(s *domain.Strength) api.Strength {
	return api.Strength{
		Level:           s.Level.String(),
		Status:          s.Level.Status(),
		SupportScore:    s.SupportScore,
		SupportRatio:    s.SupportRatio,
		MonthSupport:    s.MonthSupport,
		DayBranchRoot:   s.DayBranchRoot,
		MajoritySupport: s.MajoritySupport,
		Summary:         s.Summary,
	}
}

func MapTenGodsDomainToApi(t *domain.TenGodChart) api.TenGods {
	res := api.TenGods{
		Placements:    make([]api.TenGodPlacement, 0, len(t.Placements)),
		CategoryCount: map[string]int{},
		Dominant:      t.Dominant.String(),
		Missing:       make([]string, 0, len(t.Missing)),
	}
	for _, p := range t.Placements {
		placement := api.TenGodPlacement{
			Slot:      p.Slot.String(),
			Korean:    p.Slot.Korean(),
			God:       p.God.String(),
			GodKorean: p.God.Korean(),
			Category:  p.Category.String(),
		}
		for _, h := range p.Hidden {
			placement.Hidden = append(placement.Hidden, api.HiddenGod{
				Stem:     h.Stem.String(),
				Days:     h.Days,
				God:      h.God.String(),
				Korean:   h.God.Korean(),
				Category: h.Category.String(),
			})
		}
		res.Placements = append(res.Placements, placement)
	}
	for _, c := range domain.TenGodCategories {
		res.CategoryCount[c.String()] = t.CategoryCount[c]
	}
	for _, m := range t.Missing {
		res.Missing = append(res.Missing, m.String())
	}
	return res
}

func MapInteractionDomainToApi(in domain.Interaction) api.Interaction {
	res := api.Interaction{
		Kind:        in.Kind.String(),
		Korean:      in.Kind.Korean(),
		Priority:    in.Priority,
		Severity:    in.Severity.String(),
		Partial:     in.Partial,
		Description: in.Description,
	}
	for _, s := range in.Stems {
		res.Stems = append(res.Stems, s.String())
	}
	for _, b := range in.Branches {
		res.Branches = append(res.Branches, b.String())
	}
	for _, s := range in.Slots {
		res.Slots = append(res.Slots, s.String())
	}
	if in.HasResult {
		res.Result = in.Result.String()
	}
	return res
}

func MapInteractionsDomainToApi(r *domain.InteractionReport) api.Interactions {
	res := api.Interactions{
		Items:     make([]api.Interaction, 0, len(r.Interactions)),
		KindCount: map[string]int{},
		HasClash:  r.HasClash,
		HasFusion: r.HasFusion,
	}
	for _, in := range r.Interactions {
		res.Items = append(res.Items, MapInteractionDomainToApi(in))
	}
	for kind, count := range r.KindCount {
		res.KindCount[kind.String()] = count
	}
	return res
}

func MapSelectionDomainToApi(s *domain.Selection) api.Selection {
	return api.Selection{
		Primary:       s.Primary.String(),
		PrimaryKorean: s.Primary.Korean(),
		Ally:          s.Ally.String(),
		Harmful:       s.Harmful.String(),
		Method:        s.Method.String(),
		MethodKorean:  s.Method.Korean(),
		Reason:        s.Reason,
		Temperature:   s.Temperature.String(),
		Recommendations: api.Recommendations{
			Colors:    s.Recommendations.Colors,
			Direction: s.Recommendations.Direction,
			Numbers:   s.Recommendations.Numbers,
			Career:    s.Recommendations.Career,
		},
	}
}

func MapScoredWindowDomainToApi(w domain.ScoredWindow) api.ScoredWindow {
	return api.ScoredWindow{
		GanZhi:       w.GanZhi(),
		Korean:       w.Window.Korean(),
		StartAge:     w.StartAge,
		EndAge:       w.EndAge,
		Year:         w.Year,
		Score:        w.Score,
		Rating:       w.Rating.String(),
		RatingKorean: w.Rating.Korean(),
		Summary:      w.Summary,
	}
}

func MapTimelineDomainToApi(t *domain.Timeline) api.Timeline {
	res := api.Timeline{
		StartYears:  t.StartYears,
		StartMonths: t.StartMonths,
		Forward:     t.Forward,
		CurrentAge:  t.CurrentAge,
		Decades:     make([]api.ScoredWindow, 0, len(t.Decades)),
		Years:       make([]api.ScoredWindow, 0, len(t.Years)),
	}
	for _, d := range t.Decades {
		res.Decades = append(res.Decades, MapScoredWindowDomainToApi(d))
	}
	if t.CurrentDecade != nil {
		current := MapScoredWindowDomainToApi(*t.CurrentDecade)
		res.CurrentDecade = &current
	}
	for _, y := range t.Years {
		res.Years = append(res.Years, MapScoredWindowDomainToApi(y))
	}
	return res
}

// MapReportDomainToApi assembles the full response payload. The
// rendered text report is supplied by the caller so this package stays
// a pure mapping layer.
func MapReportDomainToApi(r *domain.Report, reportText string) api.Report {
	return api.Report{
		Chart:        MapChartDomainToApi(&r.Chart),
		Distribution: MapDistributionDomainToApi(&r.Distribution),
		Strength:     MapStrengthDomainToApi(&r.Strength),
		TenGods:      MapTenGodsDomainToApi(&r.TenGods),
		Interactions: MapInteractionsDomainToApi(&r.Interactions),
		Selection:    MapSelectionDomainToApi(&r.Selection),
		Timeline:     MapTimelineDomainToApi(&r.Timeline),
		ReportText:   reportText,
	}
}
