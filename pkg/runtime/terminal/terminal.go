package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pythonzzgr/bazi-analysis/pkg/runtime/terminal/commands"
	"github.com/pythonzzgr/bazi-analysis/pkg/runtime/terminal/export"
	"github.com/pythonzzgr/bazi-analysis/pkg/services/analysis"
	"github.com/pythonzzgr/bazi-analysis/pkg/services/calendar"
)

// CLI represents the command-line interface
type CLI struct {
	analyzer analysis.Analyzer
	oracle   calendar.Oracle
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Analyzer analysis.Analyzer
	Oracle   calendar.Oracle
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		analyzer: opts.Analyzer,
		oracle:   opts.Oracle,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bazi",
		Short: "Four pillars chart analysis tool",
	}

	cmd.AddCommand(commands.NewAnalyzeCmd(cli.analyzer, cli.reporter))
	cmd.AddCommand(commands.NewLeapMonthCmd(cli.oracle))

	return cmd
}
