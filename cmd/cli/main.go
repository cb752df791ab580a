package main

import (
	"fmt"
	"os"

	"github.com/pythonzzgr/bazi-analysis/pkg/runtime/terminal"
	"github.com/pythonzzgr/bazi-analysis/pkg/services/analysis"
	"github.com/pythonzzgr/bazi-analysis/pkg/services/calendar"
)

func main() {
	oracle := calendar.NewOracle()

	cli := terminal.NewCLI(terminal.Options{
		Analyzer: analysis.NewAnalyzer(oracle),
		Oracle:   oracle,
		Output:   os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
