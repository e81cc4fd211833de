package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/takatracker/takatracker"
	"github.com/takatracker/takatracker/renderer"
)

type insightsCmd struct {
	window string
}

func (*insightsCmd) Name() string     { return "insights" }
func (*insightsCmd) Synopsis() string { return "display spending breakdown and cash flow trend" }
func (*insightsCmd) Usage() string {
	return `tt insights [-w <window>]

  Shows where the money went (expenses by category, largest first) and the
  recent daily cash flow. Windows are 30d, month, last-month and all.
`
}

func (c *insightsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.window, "w", string(takatracker.Last30Days), "Reporting window (30d, month, last-month, all).")
}

func (c *insightsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	window, err := takatracker.ParseWindow(c.window)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	a, err := openApp()
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	r := window.Range(takatracker.Today())
	breakdown := a.ledger.ExpenseBreakdown(r)
	trend := a.ledger.CashflowTrend(r)
	printMarkdown(renderer.InsightsMarkdown(window, breakdown, trend))
	return subcommands.ExitSuccess
}
