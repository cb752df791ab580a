package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pythonzzgr/bazi-analysis/pkg/services/calendar"
)

type LeapMonthCmd struct {
	oracle calendar.Oracle
}

func NewLeapMonthCmd(oracle calendar.Oracle) *cobra.Command {
	lc := &LeapMonthCmd{oracle: oracle}
	return &cobra.Command{
		Use:   "leap-month <year>",
		Short: "Show the leap month of a lunar year, if any",
		Args:  cobra.ExactArgs(1),
		RunE:  lc.run,
	}
}

func (lc *LeapMonthCmd) run(cmd *cobra.Command, args []string) error {
	year, err := strconv.Atoi(args[0])
	if err != nil || year < 1900 || year > 2100 {
		return fmt.Errorf("year must be an integer in 1900..2100, got %q", args[0])
	}

	leap := lc.oracle.LeapMonth(year)
	if leap == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Lunar year %d has no leap month\n", year)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Lunar year %d has a leap month %d\n", year, leap)
	return nil
}
