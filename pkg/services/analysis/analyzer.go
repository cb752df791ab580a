package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pythonzzgr/bazi-analysis/pkg/models/domain"
)

// yearsAhead is how many year windows beyond the current year are
// scored into the timeline.
const yearsAhead = 5

// CalendarOracle supplies everything calendrical: the chart for a birth
// instant, the decade-fortune plan and ganzi year windows. The analysis
// stages themselves never touch a calendar.
type CalendarOracle interface {
	Chart(ctx context.Context, input domain.BirthInput) (*domain.Chart, error)
	DecadePlan(ctx context.Context, input domain.BirthInput) (*domain.DecadePlan, error)
	YearWindows(startYear, count int) []domain.Window
}

// Analyzer runs the full pipeline for a birth instant and returns the
// aggregate report. The same input always yields the same report.
type Analyzer interface {
	Analyze(ctx context.Context, input domain.BirthInput) (*domain.Report, error)
}

type analyzer struct {
	oracle CalendarOracle
	now    func() time.Time
}

// NewAnalyzer wires the pipeline to a calendar oracle.
func NewAnalyzer(oracle CalendarOracle) Analyzer {
	return &analyzer{oracle: oracle, now: time.Now}
}

func (a *analyzer) Analyze(ctx context.Context, input domain.BirthInput) (*domain.Report, error) {
	logger := zerolog.Ctx(ctx)

	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("invalid birth input: %w", err)
	}

	chart, err := a.oracle.Chart(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("building chart: %w", err)
	}
	if err := chart.Validate(); err != nil {
		return nil, err
	}

	dist := AnalyzeElements(chart)
	strength := ClassifyStrength(chart, &dist)
	tenGods := MapTenGods(chart)
	interactions := DetectInteractions(chart)
	selection := SelectYongShin(chart, &dist, &strength)

	timeline, err := a.timeline(ctx, input, selection)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("day_master", chart.DayMaster().String()).
		Str("strength", strength.Level.String()).
		Str("primary_element", selection.Primary.String()).
		Msg("analysis complete")

	return &domain.Report{
		Chart:        *chart,
		Distribution: dist,
		Strength:     strength,
		TenGods:      tenGods,
		Interactions: interactions,
		Selection:    selection,
		Timeline:     timeline,
	}, nil
}

// timeline scores the decade plan and the current-plus-upcoming year
// windows against the selected elements. Ages follow Korean reckoning,
// where the birth year counts as age one.
func (a *analyzer) timeline(
	ctx context.Context,
	input domain.BirthInput,
	selection domain.Selection,
) (domain.Timeline, error) {
	plan, err := a.oracle.DecadePlan(ctx, input)
	if err != nil {
		return domain.Timeline{}, fmt.Errorf("building decade plan: %w", err)
	}

	nowYear := a.now().Year()
	currentAge := nowYear - input.Year + 1

	timeline := domain.Timeline{
		StartYears:  plan.StartYears,
		StartMonths: plan.StartMonths,
		Forward:     plan.Forward,
		CurrentAge:  currentAge,
		Decades:     ScoreWindows(plan.Windows, selection.Primary, selection.Harmful),
		Years: ScoreWindows(
			a.oracle.YearWindows(nowYear, yearsAhead+1),
			selection.Primary, selection.Harmful),
	}

	for i := range timeline.Decades {
		d := &timeline.Decades[i]
		if d.StartAge <= currentAge && currentAge <= d.EndAge {
			timeline.CurrentDecade = d
			break
		}
	}

	return timeline, nil
}
