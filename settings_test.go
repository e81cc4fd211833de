package takatracker

import (
	"errors"
	"slices"
	"testing"
)

func TestHeads_Edit(t *testing.T) {
	h := DefaultHeads()

	if err := h.Add(Expense, "Pets"); err != nil {
		t.Fatal(err)
	}
	if !slices.Contains(h.Expense, "Pets") {
		t.Error("Add should append the new head")
	}
	if err := h.Add(Expense, "Pets"); err == nil {
		t.Error("Add should reject a duplicate head")
	}
	if err := h.Add(Income, ""); err == nil {
		t.Error("Add should reject an empty name")
	}

	if err := h.Rename(Expense, "Pets", "Animals"); err != nil {
		t.Fatal(err)
	}
	if slices.Contains(h.Expense, "Pets") || !slices.Contains(h.Expense, "Animals") {
		t.Error("Rename should replace the head in place")
	}
	if err := h.Rename(Expense, "Nope", "X"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Rename of a missing head: err = %v, want ErrNotFound", err)
	}

	if err := h.Remove(Expense, "Animals"); err != nil {
		t.Fatal(err)
	}
	if slices.Contains(h.Expense, "Animals") {
		t.Error("Remove should delete the head")
	}
	if err := h.Remove(Expense, "Animals"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove of a missing head: err = %v, want ErrNotFound", err)
	}

	// Heads exist for income and expense only.
	if err := h.Add(Transfer, "X"); err == nil {
		t.Error("Add on TRANSFER should fail")
	}
}

func TestParseTheme(t *testing.T) {
	for _, ok := range []string{ThemeDark, ThemeLight} {
		if _, err := ParseTheme(ok); err != nil {
			t.Errorf("ParseTheme(%q): %v", ok, err)
		}
	}
	if _, err := ParseTheme("sepia"); err == nil {
		t.Error("ParseTheme(sepia) should fail")
	}
}

func TestParseLivery(t *testing.T) {
	for _, ok := range Liveries {
		if _, err := ParseLivery(ok); err != nil {
			t.Errorf("ParseLivery(%q): %v", ok, err)
		}
	}
	if _, err := ParseLivery("golden"); err == nil {
		t.Error("ParseLivery(golden) should fail")
	}
}
