package takatracker

import (
	"fmt"
	"slices"
)

// Heads are the user-defined category labels offered when recording income
// or expense transactions.
type Heads struct {
	Income  []string `json:"income"`
	Expense []string `json:"expense"`
}

// DefaultHeads returns the built-in category labels.
func DefaultHeads() Heads {
	return Heads{
		Income:  []string{"Salary", "Freelance", "Investment", "Business", "Gift", "Other"},
		Expense: []string{"Food", "Rent", "Shopping", "Utility", "Health", "Travel", "Entertainment", "Subscription", "Other"},
	}
}

// listFor returns the mutable list for an income or expense kind.
func (h *Heads) listFor(kind TransactionType) (*[]string, error) {
	switch kind {
	case Income:
		return &h.Income, nil
	case Expense:
		return &h.Expense, nil
	default:
		return nil, fmt.Errorf("heads exist for income and expense only, not %s", kind)
	}
}

// Add appends a new head label.
func (h *Heads) Add(kind TransactionType, name string) error {
	list, err := h.listFor(kind)
	if err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("head name is missing")
	}
	if slices.Contains(*list, name) {
		return fmt.Errorf("head %q already exists", name)
	}
	*list = append(*list, name)
	return nil
}

// Rename replaces an existing head label in place.
func (h *Heads) Rename(kind TransactionType, from, to string) error {
	list, err := h.listFor(kind)
	if err != nil {
		return err
	}
	i := slices.Index(*list, from)
	if i < 0 {
		return fmt.Errorf("%w: head %q", ErrNotFound, from)
	}
	(*list)[i] = to
	return nil
}

// Remove deletes a head label. Existing transactions keep their category
// string; heads only drive the pick lists.
func (h *Heads) Remove(kind TransactionType, name string) error {
	list, err := h.listFor(kind)
	if err != nil {
		return err
	}
	i := slices.Index(*list, name)
	if i < 0 {
		return fmt.Errorf("%w: head %q", ErrNotFound, name)
	}
	*list = slices.Delete(*list, i, i+1)
	return nil
}

// Themes the tracker can store.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ParseTheme validates a theme name.
func ParseTheme(s string) (string, error) {
	if s == ThemeLight || s == ThemeDark {
		return s, nil
	}
	return "", fmt.Errorf("unknown theme %q (want %s or %s)", s, ThemeLight, ThemeDark)
}

// Liveries are the accent color identities the tracker can store.
var Liveries = []string{"emerald", "blue", "indigo", "rose", "slate"}

// ParseLivery validates an accent id.
func ParseLivery(s string) (string, error) {
	if slices.Contains(Liveries, s) {
		return s, nil
	}
	return "", fmt.Errorf("unknown livery %q (want one of %v)", s, Liveries)
}
