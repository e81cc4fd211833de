package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"github.com/takatracker/takatracker"
)

type headsCmd struct {
	kind   string
	add    string
	remove string
	rename string
}

func (*headsCmd) Name() string     { return "heads" }
func (*headsCmd) Synopsis() string { return "list or edit the category heads" }
func (*headsCmd) Usage() string {
	return `tt heads [-t <income|expense>] [-add <name> | -remove <name> | -rename <old>=<new>]

  Without an edit flag, lists the category heads. Removing or renaming a
  head never touches recorded transactions, they keep their category text.
`
}

func (c *headsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "t", string(takatracker.Expense), "Which list to edit (INCOME or EXPENSE).")
	f.StringVar(&c.add, "add", "", "Add a head with this name.")
	f.StringVar(&c.remove, "remove", "", "Remove the head with this name.")
	f.StringVar(&c.rename, "rename", "", "Rename a head, as <old>=<new>.")
}

func (c *headsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind := takatracker.TransactionType(strings.ToUpper(c.kind))

	a, err := openApp()
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	heads := a.settings.Heads()

	switch {
	case c.add != "":
		err = heads.Add(kind, c.add)
	case c.remove != "":
		err = heads.Remove(kind, c.remove)
	case c.rename != "":
		from, to, ok := strings.Cut(c.rename, "=")
		if !ok {
			fmt.Fprintln(flag.CommandLine.Output(), "Error: -rename wants <old>=<new>")
			return subcommands.ExitUsageError
		}
		err = heads.Rename(kind, from, to)
	default:
		fmt.Println("Income: ", strings.Join(heads.Income, ", "))
		fmt.Println("Expense:", strings.Join(heads.Expense, ", "))
		return subcommands.ExitSuccess
	}
	if err != nil {
		return fail(err)
	}
	if err := a.settings.SetHeads(heads); err != nil {
		return fail(err)
	}
	fmt.Println("Income: ", strings.Join(heads.Income, ", "))
	fmt.Println("Expense:", strings.Join(heads.Expense, ", "))
	return subcommands.ExitSuccess
}
