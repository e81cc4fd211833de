package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/takatracker/takatracker"
	"github.com/takatracker/takatracker/renderer"
)

type deleteCmd struct {
	id string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a transaction" }
func (*deleteCmd) Usage() string {
	return `tt delete -id <transaction>

  Removes a transaction and undoes its effect on the account balance.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction id to delete.")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(flag.CommandLine.Output(), "Error: a transaction id is required (-id)")
		return subcommands.ExitUsageError
	}

	a, err := openApp()
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	tx, ok := a.ledger.Transaction(c.id)
	if !ok {
		return fail(fmt.Errorf("%w: transaction %q", takatracker.ErrNotFound, c.id))
	}
	if err := a.ledger.DeleteTransaction(c.id); err != nil {
		return fail(err)
	}
	fmt.Println("Deleted:", renderer.Transaction(tx, accountName(a.ledger)))
	return subcommands.ExitSuccess
}
