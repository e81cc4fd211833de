package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/takatracker/takatracker"
	"github.com/takatracker/takatracker/assist"
	"github.com/takatracker/takatracker/renderer"
)

type assistCmd struct {
	account string
	date    string
	yes     bool
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "turn free-form text into a transaction" }
func (*assistCmd) Usage() string {
	return `tt assist [-from <account>] [-on <date>] [-yes] <text>...

  Sends the text to the AI, which proposes a structured transaction. The
  proposal is shown for review; with -yes it is recorded directly.
  Requires GEMINI_API_KEY (a .env file is honored).

Usage Examples:
$ tt assist got 20000 salary
$ tt assist -yes lunch with Rahim 250
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "from", "", "Account to record against. Defaults to the first account.")
	f.StringVar(&c.date, "on", "", "Transaction date. Defaults to today.")
	f.BoolVar(&c.yes, "yes", false, "Record the proposal without asking.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	text := strings.TrimSpace(strings.Join(f.Args(), " "))
	if text == "" {
		fmt.Fprintln(flag.CommandLine.Output(), "Error: some text to read is required")
		return subcommands.ExitUsageError
	}

	a, err := openApp()
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	heads := a.settings.Heads()
	parser, err := assist.NewParser(ctx, os.Getenv("GEMINI_API_KEY"))
	if err != nil {
		return fail(err)
	}
	suggestion, err := parser.Parse(ctx, text, heads.Income, heads.Expense)
	if err != nil {
		return fail(err)
	}

	from, err := findAccount(a.ledger, c.account)
	if err != nil {
		return fail(err)
	}
	day := takatracker.Today()
	if c.date != "" {
		if day, err = takatracker.ParseDate(c.date); err != nil {
			return fail(err)
		}
	}

	draft := takatracker.Draft{
		Type:      takatracker.TransactionType(suggestion.Type),
		Amount:    takatracker.M(suggestion.Amount),
		Category:  suggestion.Category,
		AccountID: from.ID,
		Date:      day,
		Note:      suggestion.Note,
	}
	// Loan rows carry the other party natively; income and expense rows
	// cannot, so there a named party goes into the note.
	switch {
	case draft.Type.IsLoan():
		draft.PersonName = suggestion.PersonName
	case suggestion.PersonName != "" && draft.Note == "":
		draft.Note = "with " + suggestion.PersonName
	}

	if !c.yes {
		fmt.Printf("Proposal: %s %s as %s into %q on %s\n",
			draft.Type, draft.Amount, draft.Category, from.Name, draft.Date)
		fmt.Print("Record it? [y/N] ")
		var answer string
		fmt.Scanln(&answer)
		if !strings.EqualFold(answer, "y") {
			fmt.Println("Discarded.")
			return subcommands.ExitSuccess
		}
	}

	tx, err := a.ledger.AddTransaction(draft)
	if err != nil {
		return fail(err)
	}
	fmt.Println(renderer.Transaction(tx, accountName(a.ledger)))
	return subcommands.ExitSuccess
}
