package takatracker

import (
	"slices"
	"testing"

	"github.com/takatracker/takatracker/kvstore"
)

// TestStoreMirror_EveryMutationPersists checks that each ledger mutation
// writes a fresh snapshot through the mirror.
func TestStoreMirror_EveryMutationPersists(t *testing.T) {
	store := kvstore.NewMemory()
	l := LoadLedger(NewStoreMirror(store))

	cash := slices0(t, l)
	if _, err := l.AddTransaction(draft(Income, 100, cash.ID)); err != nil {
		t.Fatal(err)
	}
	bank, err := l.CreateAccount("Bank", Bank, M(0))
	if err != nil {
		t.Fatal(err)
	}
	if err := l.DeleteAccount(bank.ID); err != nil {
		t.Fatal(err)
	}
	if store.Puts != 3 {
		t.Errorf("store writes = %d, want one per mutation (3)", store.Puts)
	}

	// A second load sees the exact same state.
	l2 := LoadLedger(NewStoreMirror(store))
	if got := l2.TotalBalance(); !got.Equal(M(100)) {
		t.Errorf("reloaded total = %s, want 100", got.Decimal())
	}
	reloaded, ok := l2.Account(cash.ID)
	if !ok {
		t.Fatal("reloaded ledger lost the cash account")
	}
	if !reloaded.Equal(mustAccount(t, l, cash.ID)) {
		t.Errorf("reloaded account differs: %+v", reloaded)
	}
}

func slices0(t *testing.T, l *Ledger) Account {
	t.Helper()
	for a := range l.Accounts() {
		return a
	}
	t.Fatal("ledger has no account")
	return Account{}
}

func mustAccount(t *testing.T, l *Ledger, id string) Account {
	t.Helper()
	a, ok := l.Account(id)
	if !ok {
		t.Fatalf("account %q not found", id)
	}
	return a
}

// TestLoadLedger_CorruptSnapshot checks that unreadable stored state falls
// back to the defaults instead of failing, and that the mirror stays
// attached so the next mutation overwrites the bad data.
func TestLoadLedger_CorruptSnapshot(t *testing.T) {
	store := kvstore.NewMemory()
	if err := store.Put(kvstore.KeyData, []byte("{not json")); err != nil {
		t.Fatal(err)
	}

	l := LoadLedger(NewStoreMirror(store))
	cash := slices0(t, l)
	if cash.Name != "Pocket Cash" || cash.Type != Cash || !cash.Balance.IsZero() {
		t.Errorf("corrupt snapshot should yield the default account, got %+v", cash)
	}

	if _, err := l.AddTransaction(draft(Income, 5, cash.ID)); err != nil {
		t.Fatal(err)
	}
	l2 := LoadLedger(NewStoreMirror(store))
	if got := l2.TotalBalance(); !got.Equal(M(5)) {
		t.Errorf("after recovery write, reloaded total = %s, want 5", got.Decimal())
	}
}

func TestLoadLedger_EmptyStore(t *testing.T) {
	l := LoadLedger(NewStoreMirror(kvstore.NewMemory()))
	cash := slices0(t, l)
	if cash.Name != "Pocket Cash" {
		t.Errorf("fresh ledger account = %q, want Pocket Cash", cash.Name)
	}
}

func TestSettings_Defaults(t *testing.T) {
	s := NewSettings(kvstore.NewMemory())
	if got := s.Theme(); got != ThemeDark {
		t.Errorf("default theme = %q, want dark", got)
	}
	if got := s.Livery(); got != "emerald" {
		t.Errorf("default livery = %q, want emerald", got)
	}
	if got := s.PIN(); got != "" {
		t.Errorf("default PIN = %q, want empty", got)
	}
	heads := s.Heads()
	if len(heads.Income) == 0 || len(heads.Expense) == 0 {
		t.Error("default heads should not be empty")
	}
}

func TestSettings_RoundTrip(t *testing.T) {
	store := kvstore.NewMemory()
	s := NewSettings(store)

	if err := s.SetTheme(ThemeLight); err != nil {
		t.Fatal(err)
	}
	if err := s.SetLivery("rose"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetPIN("1234"); err != nil {
		t.Fatal(err)
	}
	heads := s.Heads()
	if err := heads.Add(Expense, "Pets"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetHeads(heads); err != nil {
		t.Fatal(err)
	}

	s2 := NewSettings(store)
	if got := s2.Theme(); got != ThemeLight {
		t.Errorf("theme = %q, want light", got)
	}
	if got := s2.Livery(); got != "rose" {
		t.Errorf("livery = %q, want rose", got)
	}
	if got := s2.PIN(); got != "1234" {
		t.Errorf("PIN = %q, want 1234", got)
	}
	if !slices.Contains(s2.Heads().Expense, "Pets") {
		t.Error("heads should round-trip through the store")
	}

	if err := s2.ClearPIN(); err != nil {
		t.Fatal(err)
	}
	if got := s2.PIN(); got != "" {
		t.Errorf("PIN after clear = %q, want empty", got)
	}
}

func TestSettings_Invalid(t *testing.T) {
	s := NewSettings(kvstore.NewMemory())
	if err := s.SetTheme("sepia"); err == nil {
		t.Error("SetTheme should reject unknown themes")
	}
	if err := s.SetLivery("golden"); err == nil {
		t.Error("SetLivery should reject unknown liveries")
	}
	if err := s.SetPIN("12a4"); err == nil {
		t.Error("SetPIN should reject non-digit PINs")
	}
	if err := s.SetPIN("123"); err == nil {
		t.Error("SetPIN should reject short PINs")
	}
}

// TestSettings_CorruptValues checks that garbage stored under a settings
// key degrades to the defaults.
func TestSettings_CorruptValues(t *testing.T) {
	store := kvstore.NewMemory()
	store.Put(kvstore.KeyTheme, []byte("sepia"))
	store.Put(kvstore.KeyLivery, []byte("golden"))
	store.Put(kvstore.KeyCategories, []byte("{broken"))

	s := NewSettings(store)
	if got := s.Theme(); got != ThemeDark {
		t.Errorf("corrupt theme should fall back to dark, got %q", got)
	}
	if got := s.Livery(); got != "emerald" {
		t.Errorf("corrupt livery should fall back to emerald, got %q", got)
	}
	if got := s.Heads(); len(got.Income) == 0 {
		t.Error("corrupt heads should fall back to defaults")
	}
}
