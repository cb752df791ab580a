package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pythonzzgr/bazi-analysis/pkg/models/domain"
	"github.com/pythonzzgr/bazi-analysis/pkg/runtime/terminal/export"
	"github.com/pythonzzgr/bazi-analysis/pkg/services/analysis"
)

type AnalyzeCmd struct {
	name      string
	gender    string
	date      string
	birthTime string
	lunar     bool
	leapMonth bool
	output    string

	analyzer analysis.Analyzer
	reporter *export.Reporter
}

func NewAnalyzeCmd(analyzer analysis.Analyzer, reporter *export.Reporter) *cobra.Command {
	ac := &AnalyzeCmd{analyzer: analyzer, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze the four pillars of a birth instant",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.name, "name", "", "Name to print on the report")
	cmd.Flags().StringVar(&ac.gender, "gender", "", "Gender: male or female")
	cmd.Flags().StringVar(&ac.date, "date", "", "Birth date in YYYY-MM-DD")
	cmd.Flags().StringVar(&ac.birthTime, "time", "12:00", "Birth time in HH:MM")
	cmd.Flags().BoolVar(&ac.lunar, "lunar", false, "Interpret the date as a lunar date")
	cmd.Flags().BoolVar(&ac.leapMonth, "leap-month", false, "The lunar month is a leap month")
	cmd.Flags().StringVar(&ac.output, "output", "text", "Output format: text, json or yaml")

	_ = cmd.MarkFlagRequired("gender")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, _ []string) error {
	format, err := export.ParseFormat(ac.output)
	if err != nil {
		return err
	}

	input, err := ac.input()
	if err != nil {
		return err
	}

	report, err := ac.analyzer.Analyze(cmd.Context(), input)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	return ac.reporter.Handle(report, format)
}

func (ac *AnalyzeCmd) input() (domain.BirthInput, error) {
	date, err := time.Parse("2006-01-02", ac.date)
	if err != nil {
		return domain.BirthInput{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", ac.date)
	}
	clock, err := time.Parse("15:04", ac.birthTime)
	if err != nil {
		return domain.BirthInput{}, fmt.Errorf("invalid time %q, expected HH:MM", ac.birthTime)
	}

	var gender domain.Gender
	switch ac.gender {
	case "male", "m":
		gender = domain.Male
	case "female", "f":
		gender = domain.Female
	default:
		return domain.BirthInput{}, fmt.Errorf("unknown gender %q, expected male or female", ac.gender)
	}

	return domain.BirthInput{
		Name:      ac.name,
		Year:      date.Year(),
		Month:     int(date.Month()),
		Day:       date.Day(),
		Hour:      clock.Hour(),
		Minute:    clock.Minute(),
		Gender:    gender,
		Lunar:     ac.lunar,
		LeapMonth: ac.leapMonth,
	}, nil
}
