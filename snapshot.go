package takatracker

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
)

// Snapshot is the full serialized ledger state: the single JSON object
// written to persistent local storage after every mutation.
type Snapshot struct {
	Transactions []Transaction `json:"transactions"`
	Accounts     []Account     `json:"accounts"`
}

// Mirror is the persistence collaborator of the ledger. The stored snapshot
// is a serialized mirror of the in-memory state, never a second source of
// truth.
type Mirror interface {
	// Load reads the last saved snapshot. It returns (nil, nil) when
	// nothing has been stored yet.
	Load() (*Snapshot, error)
	// Save overwrites the stored snapshot.
	Save(*Snapshot) error
}

// MarshalJSON implements json.Marshaler with a fixed field order.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("transactions", s.Transactions)
	w.Append("accounts", s.Accounts)
	return w.MarshalJSON()
}

// EncodeSnapshot writes the snapshot as a single JSON object.
func EncodeSnapshot(w io.Writer, s *Snapshot) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("cannot marshal snapshot: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("cannot write snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot reads and validates a snapshot. A snapshot with no account
// at all is rejected: the ledger never runs without one.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	dec := json.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("cannot parse snapshot: %w", err)
	}
	if len(s.Accounts) == 0 {
		return nil, fmt.Errorf("snapshot holds no accounts")
	}
	return &s, nil
}

// defaultAccountName is the wallet a fresh ledger starts with.
const defaultAccountName = "Pocket Cash"

// DefaultLedger returns the built-in starting state: a single cash wallet
// with a zero balance.
func DefaultLedger() *Ledger {
	l := NewLedger()
	l.accounts = append(l.accounts, NewAccount(defaultAccountName, Cash, M(0)))
	return l
}

// restore builds a ledger from a decoded snapshot.
func restore(s *Snapshot) *Ledger {
	l := NewLedger()
	l.accounts = append(l.accounts, s.Accounts...)
	l.transactions = append(l.transactions, s.Transactions...)
	return l
}

// LoadLedger rehydrates the ledger from the mirror at startup. Absent or
// malformed stored state is discarded in favor of the built-in defaults
// rather than causing a startup failure; the mirror stays attached either
// way so the next mutation writes a clean snapshot.
func LoadLedger(m Mirror) *Ledger {
	var l *Ledger
	s, err := m.Load()
	switch {
	case err != nil:
		log.Warn().Err(err).Msg("stored ledger snapshot is unreadable, starting from defaults")
		l = DefaultLedger()
	case s == nil:
		l = DefaultLedger()
	default:
		l = restore(s)
	}
	l.Attach(m)
	return l
}
