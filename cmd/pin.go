package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type pinCmd struct {
	set   string
	clear bool
}

func (*pinCmd) Name() string     { return "pin" }
func (*pinCmd) Synopsis() string { return "set or clear the 4-digit lock PIN" }
func (*pinCmd) Usage() string {
	return `tt pin [-set <pin> | -clear]

  With a PIN set, every session starts locked and relocks after 2 minutes
  of inactivity. Changing or clearing the PIN requires entering the
  current one first. Without flags, reports whether a PIN is set.
`
}

func (c *pinCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.set, "set", "", "Set this 4-digit PIN.")
	f.BoolVar(&c.clear, "clear", false, "Remove the PIN.")
}

func (c *pinCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// openApp enforces the current PIN before any change.
	a, err := openApp()
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	switch {
	case c.set != "":
		if err := a.settings.SetPIN(c.set); err != nil {
			return fail(err)
		}
		fmt.Println("PIN set.")
	case c.clear:
		if a.settings.PIN() == "" {
			fmt.Println("No PIN is set.")
			return subcommands.ExitSuccess
		}
		if err := a.settings.ClearPIN(); err != nil {
			return fail(err)
		}
		fmt.Println("PIN cleared.")
	default:
		if a.settings.PIN() == "" {
			fmt.Println("No PIN is set.")
		} else {
			fmt.Println("A PIN is set.")
		}
	}
	return subcommands.ExitSuccess
}
