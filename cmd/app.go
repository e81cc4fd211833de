// Package cmd implements the CLI application to manage the tracker.
package cmd

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/takatracker/takatracker"
	"github.com/takatracker/takatracker/kvstore"
)

// Commands lists every subcommand of the application. A main package
// registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&editCmd{},
	&deleteCmd{},
	&txCmd{},
	&accountsCmd{},
	&newAccountCmd{},
	&editAccountCmd{},
	&deleteAccountCmd{},
	&summaryCmd{},
	&insightsCmd{},
	&loansCmd{},
	&exportCmd{},
	&importCmd{},
	&headsCmd{},
	&pinCmd{},
	&themeCmd{},
	&assistCmd{},
	&topicCmd{},
}

// As a CLI application with a very short lifecycle, globals are fine here.

var storePath = flag.String("store", defaultStorePath(), "Path to the local storage file")
var verbose = flag.Bool("v", false, "Enable debug logging")

func defaultStorePath() string {
	if p := os.Getenv("TT_STORE"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "taka.db"
	}
	return filepath.Join(home, ".takatracker", "taka.db")
}

// Setup initializes the environment and logging. Main calls it once, after
// flag parsing.
func Setup() {
	// A .env next to the working directory may carry GEMINI_API_KEY.
	_ = godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

// app bundles the opened storage, the settings surface and the loaded
// ledger for the duration of one command.
type app struct {
	store    *kvstore.SQLite
	settings *takatracker.Settings
	ledger   *takatracker.Ledger
}

// openApp opens the storage, enforces the PIN gate and loads the ledger.
// Callers must Close it.
func openApp() (*app, error) {
	store, err := kvstore.OpenSQLite(*storePath)
	if err != nil {
		return nil, err
	}
	settings := takatracker.NewSettings(store)
	if err := unlock(settings); err != nil {
		store.Close()
		return nil, err
	}
	mdStyle = styleFor(settings.Theme())
	ledger := takatracker.LoadLedger(takatracker.NewStoreMirror(store))
	return &app{store: store, settings: settings, ledger: ledger}, nil
}

func (a *app) Close() error { return a.store.Close() }

// unlock prompts for the PIN when one is set, allowing a few attempts.
func unlock(settings *takatracker.Settings) error {
	pin := settings.PIN()
	if pin == "" {
		return nil
	}
	session := takatracker.NewSession(pin, 0, nil)
	defer session.Close()

	in := bufio.NewReader(os.Stdin)
	for range 3 {
		fmt.Fprint(os.Stderr, "PIN: ")
		line, err := in.ReadString('\n')
		if err != nil {
			return fmt.Errorf("cannot read PIN: %w", err)
		}
		err = session.Unlock(strings.TrimSpace(line))
		if err == nil {
			return nil
		}
		if !errors.Is(err, takatracker.ErrWrongPIN) {
			return err
		}
		fmt.Fprintln(os.Stderr, "wrong PIN")
	}
	return takatracker.ErrWrongPIN
}

// findAccount resolves an account reference given as an id or an exact name.
// An empty reference resolves to the first account.
func findAccount(l *takatracker.Ledger, ref string) (takatracker.Account, error) {
	if ref == "" {
		for a := range l.Accounts() {
			return a, nil
		}
		return takatracker.Account{}, takatracker.ErrUnknownAccount
	}
	if a, ok := l.Account(ref); ok {
		return a, nil
	}
	for a := range l.Accounts() {
		if a.Name == ref {
			return a, nil
		}
	}
	return takatracker.Account{}, fmt.Errorf("%w: %q", takatracker.ErrUnknownAccount, ref)
}

// accountName resolves account ids to display names, falling back to the id
// when the account is gone.
func accountName(l *takatracker.Ledger) func(string) string {
	return func(id string) string {
		if a, ok := l.Account(id); ok {
			return a.Name
		}
		return id
	}
}

// mdStyle is the glamour style in effect, driven by the stored theme.
var mdStyle = "auto"

func styleFor(theme string) string {
	if theme == takatracker.ThemeLight {
		return "light"
	}
	return "dark"
}

// printMarkdown renders markdown for the terminal. On any rendering issue
// the raw markdown is printed instead.
func printMarkdown(content string) {
	out, err := glamour.Render(content, mdStyle)
	if err != nil {
		fmt.Print(content)
		return
	}
	fmt.Print(out)
}

// fail prints the error and converts it to an exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
