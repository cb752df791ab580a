// Package calendar adapts the lunar-go ephemeris into the calendar
// oracle the analysis pipeline consumes. All solar/lunar conversion,
// solar-term month boundaries and decade-fortune arithmetic live behind
// this boundary; nothing else in the module touches a calendar.
package calendar

import (
	"context"
	"fmt"

	"github.com/6tail/lunar-go/calendar"

	"github.com/pythonzzgr/bazi-analysis/pkg/models/domain"
)

// Oracle answers every calendrical question the pipeline has: the four
// pillars of a birth instant, its decade-fortune plan, ganzi year
// windows and leap-month lookup.
type Oracle interface {
	Chart(ctx context.Context, input domain.BirthInput) (*domain.Chart, error)
	DecadePlan(ctx context.Context, input domain.BirthInput) (*domain.DecadePlan, error)
	YearWindows(startYear, count int) []domain.Window
	LeapMonth(year int) int
}

type lunarOracle struct{}

// NewOracle returns the lunar-go backed oracle.
func NewOracle() Oracle {
	return &lunarOracle{}
}

func (o *lunarOracle) Chart(_ context.Context, input domain.BirthInput) (*domain.Chart, error) {
	lunar, solar := convert(input)
	eightChar := lunar.GetEightChar()

	year, err := parsePillar(eightChar.GetYearGan(), eightChar.GetYearZhi())
	if err != nil {
		return nil, fmt.Errorf("year pillar: %w", err)
	}
	month, err := parsePillar(eightChar.GetMonthGan(), eightChar.GetMonthZhi())
	if err != nil {
		return nil, fmt.Errorf("month pillar: %w", err)
	}
	day, err := parsePillar(eightChar.GetDayGan(), eightChar.GetDayZhi())
	if err != nil {
		return nil, fmt.Errorf("day pillar: %w", err)
	}
	hour, err := parsePillar(eightChar.GetTimeGan(), eightChar.GetTimeZhi())
	if err != nil {
		return nil, fmt.Errorf("time pillar: %w", err)
	}

	lunarMonth := lunar.GetMonth()
	leap := lunarMonth < 0
	if leap {
		lunarMonth = -lunarMonth
	}

	return &domain.Chart{
		Name:   input.Name,
		Gender: input.Gender,
		Year:   year,
		Month:  month,
		Day:    day,
		Time:   hour,
		SolarDate: fmt.Sprintf("%04d-%02d-%02d %02d:%02d",
			solar.GetYear(), solar.GetMonth(), solar.GetDay(),
			solar.GetHour(), solar.GetMinute()),
		LunarDate: fmt.Sprintf("%04d-%02d-%02d",
			lunar.GetYear(), lunarMonth, lunar.GetDay()),
		LunarInput: input.Lunar,
		LeapMonth:  leap,
	}, nil
}

func (o *lunarOracle) DecadePlan(_ context.Context, input domain.BirthInput) (*domain.DecadePlan, error) {
	lunar, _ := convert(input)

	genderFlag := 0
	if input.Gender == domain.Male {
		genderFlag = 1
	}
	yun := lunar.GetEightChar().GetYun(genderFlag)

	plan := &domain.DecadePlan{
		StartYears:  yun.GetStartYear(),
		StartMonths: yun.GetStartMonth(),
		// Direction follows the traditional rule the library applies:
		// year-stem polarity combined with gender, not gender alone.
		Forward: yun.IsForward(),
	}
	for _, daYun := range yun.GetDaYun() {
		ganZhi := daYun.GetGanZhi()
		if ganZhi == "" {
			// The leading entry covers the span before the first
			// decade window opens and carries no ganzi.
			continue
		}
		runes := []rune(ganZhi)
		stem, err := domain.ParseStem(string(runes[0]))
		if err != nil {
			return nil, fmt.Errorf("decade window %s: %w", ganZhi, err)
		}
		branch, err := domain.ParseBranch(string(runes[1]))
		if err != nil {
			return nil, fmt.Errorf("decade window %s: %w", ganZhi, err)
		}
		plan.Windows = append(plan.Windows, domain.Window{
			Stem:     stem,
			Branch:   branch,
			StartAge: daYun.GetStartAge(),
			EndAge:   daYun.GetEndAge(),
		})
	}
	return plan, nil
}

// YearWindows returns count consecutive calendar-year windows starting
// at startYear. Year ganzi is pure modular arithmetic anchored at 4 CE,
// a 甲子 year.
func (o *lunarOracle) YearWindows(startYear, count int) []domain.Window {
	windows := make([]domain.Window, 0, count)
	for y := startYear; y < startYear+count; y++ {
		windows = append(windows, domain.Window{
			Stem:   domain.Stem(((y-4)%10 + 10) % 10),
			Branch: domain.Branch(((y-4)%12 + 12) % 12),
			Year:   y,
		})
	}
	return windows
}

// LeapMonth returns the leap month of a lunar year, or zero when the
// year has none.
func (o *lunarOracle) LeapMonth(year int) int {
	return calendar.NewLunarYear(year).GetLeapMonth()
}

// convert resolves the birth instant to a lunar/solar pair. Lunar input
// encodes a leap month as a negative month number, which is the
// convention lunar-go itself uses.
func convert(input domain.BirthInput) (*calendar.Lunar, *calendar.Solar) {
	if input.Lunar {
		month := input.Month
		if input.LeapMonth {
			month = -month
		}
		lunar := calendar.NewLunar(
			input.Year, month, input.Day, input.Hour, input.Minute, 0)
		return lunar, lunar.GetSolar()
	}
	solar := calendar.NewSolar(
		input.Year, input.Month, input.Day, input.Hour, input.Minute, 0)
	return solar.GetLunar(), solar
}

func parsePillar(gan, zhi string) (domain.Pillar, error) {
	stem, err := domain.ParseStem(gan)
	if err != nil {
		return domain.Pillar{}, err
	}
	branch, err := domain.ParseBranch(zhi)
	if err != nil {
		return domain.Pillar{}, err
	}
	return domain.Pillar{Stem: stem, Branch: branch}, nil
}
