package cmd

import (
	"context"
	"flag"
	"fmt"
	"iter"
	"os"

	"github.com/google/subcommands"

	"github.com/takatracker/takatracker"
	"github.com/takatracker/takatracker/renderer"
)

type txCmd struct {
	window  string
	kind    string
	account string
	person  string
	head    int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions, newest first" }
func (*txCmd) Usage() string {
	return `tt tx [-w <window>] [-t <type>] [-account <account>] [-person <name>] [-head <n>]

  Lists transactions newest first, with options for filtering and limiting
  the output. Windows are 30d, month, last-month and all.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.window, "w", string(takatracker.AllTime), "Reporting window (30d, month, last-month, all).")
	f.StringVar(&c.kind, "t", "", "Only this transaction type.")
	f.StringVar(&c.account, "account", "", "Only transactions touching this account.")
	f.StringVar(&c.person, "person", "", "Only loans with this person.")
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	filters := []func(takatracker.Transaction) bool{
		takatracker.InRange(window.Range(takatracker.Today())),
	}
	if c.kind != "" {
		kind, err := takatracker.ParseTransactionType(c.kind)
		if err != nil {
			return fail(err)
		}
		filters = append(filters, takatracker.ByType(kind))
	}
	if c.account != "" {
		acc, err := findAccount(a.ledger, c.account)
		if err != nil {
			return fail(err)
		}
		filters = append(filters, takatracker.ByAccount(acc.ID))
	}
	if c.person != "" {
		filters = append(filters, takatracker.ByPerson(c.person))
	}

	txs := a.ledger.Transactions(filters...)
	if c.head > 0 {
		txs = limit(txs, c.head)
	}
	printMarkdown(renderer.TransactionsMarkdown(txs, accountName(a.ledger)))
	return subcommands.ExitSuccess
}

// limit truncates an iterator after n elements.
func limit[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		count := 0
		for v := range seq {
			if count >= n || !yield(v) {
				return
			}
			count++
		}
	}
}
