package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"github.com/takatracker/takatracker"
)

type themeCmd struct {
	theme  string
	livery string
}

func (*themeCmd) Name() string     { return "theme" }
func (*themeCmd) Synopsis() string { return "show or change the theme and accent" }
func (*themeCmd) Usage() string {
	return `tt theme [-set <dark|light>] [-livery <accent>]

  The theme drives how reports are rendered in the terminal. The accent is
  a stored display preference.
`
}

func (c *themeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.theme, "set", "", "Theme to use (dark or light).")
	f.StringVar(&c.livery, "livery", "", "Accent to use ("+strings.Join(takatracker.Liveries, ", ")+").")
}

func (c *themeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		return fail(err)
	}
	defer a.Close()

	if c.theme != "" {
		if err := a.settings.SetTheme(c.theme); err != nil {
			return fail(err)
		}
	}
	if c.livery != "" {
		if err := a.settings.SetLivery(c.livery); err != nil {
			return fail(err)
		}
	}
	fmt.Printf("Theme: %s, livery: %s\n", a.settings.Theme(), a.settings.Livery())
	return subcommands.ExitSuccess
}
