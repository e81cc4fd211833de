package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/takatracker/takatracker"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the whole ledger to a CSV backup" }
func (*exportCmd) Usage() string {
	return `tt export [-o <file>]

  Writes all accounts and transactions to a CSV backup file that
  'tt import' can read back to the same state. Without -o the backup goes
  to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Backup file to write. Defaults to stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	out := os.Stdout
	if c.output != "" {
		out, err = os.Create(c.output)
		if err != nil {
			return fail(err)
		}
		defer out.Close()
	}
	if err := takatracker.ExportCSV(out, a.ledger); err != nil {
		return fail(err)
	}
	if c.output != "" {
		fmt.Fprintf(os.Stderr, "Exported ledger to %s\n", c.output)
	}
	return subcommands.ExitSuccess
}

type importCmd struct {
	input string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the ledger from a CSV backup" }
func (*importCmd) Usage() string {
	return `tt import -i <file>

  Reads a CSV backup and replaces the whole ledger with it. The import is
  all-or-nothing: any malformed row aborts it and nothing changes.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Backup file to read.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		fmt.Fprintln(flag.CommandLine.Output(), "Error: a backup file is required (-i)")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.input)
	if err != nil {
		return fail(err)
	}
	defer in.Close()

	s, err := takatracker.ImportCSV(in)
	if err != nil {
		return fail(err)
	}

	a, err := openApp()
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	if err := a.ledger.ReplaceAll(s.Accounts, s.Transactions); err != nil {
		return fail(err)
	}
	fmt.Fprintf(os.Stderr, "Imported %d accounts and %d transactions from %s\n",
		len(s.Accounts), len(s.Transactions), c.input)
	return subcommands.ExitSuccess
}
