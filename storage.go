package takatracker

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/takatracker/takatracker/kvstore"
)

// StoreMirror persists ledger snapshots into a key-value store, under the
// same key the tracker has always used on device.
type StoreMirror struct {
	store kvstore.Store
}

// NewStoreMirror wraps a key-value store as a ledger mirror.
func NewStoreMirror(s kvstore.Store) *StoreMirror {
	return &StoreMirror{store: s}
}

// Load reads the stored snapshot, (nil, nil) when nothing is stored yet.
func (m *StoreMirror) Load() (*Snapshot, error) {
	data, ok, err := m.store.Get(kvstore.KeyData)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return DecodeSnapshot(bytes.NewReader(data))
}

// Save overwrites the stored snapshot.
func (m *StoreMirror) Save(s *Snapshot) error {
	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, s); err != nil {
		return err
	}
	return m.store.Put(kvstore.KeyData, buf.Bytes())
}

var _ Mirror = (*StoreMirror)(nil)

// Settings reads and writes the non-ledger preferences: theme, livery,
// category heads and the PIN. Reads fall back to defaults when a key is
// absent; a corrupt stored value is logged and treated as absent rather
// than failing the whole program.
type Settings struct {
	store kvstore.Store
}

// NewSettings wraps a key-value store as the settings surface.
func NewSettings(s kvstore.Store) *Settings {
	return &Settings{store: s}
}

func (s *Settings) getString(key, fallback string) string {
	data, ok, err := s.store.Get(key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cannot read setting, using default")
		return fallback
	}
	if !ok {
		return fallback
	}
	return string(data)
}

// Theme returns the stored theme, dark by default.
func (s *Settings) Theme() string {
	theme, err := ParseTheme(s.getString(kvstore.KeyTheme, ThemeDark))
	if err != nil {
		log.Warn().Err(err).Msg("stored theme is invalid, using default")
		return ThemeDark
	}
	return theme
}

// SetTheme stores the theme.
func (s *Settings) SetTheme(theme string) error {
	theme, err := ParseTheme(theme)
	if err != nil {
		return err
	}
	return s.store.Put(kvstore.KeyTheme, []byte(theme))
}

// Livery returns the stored accent id, emerald by default.
func (s *Settings) Livery() string {
	livery, err := ParseLivery(s.getString(kvstore.KeyLivery, Liveries[0]))
	if err != nil {
		log.Warn().Err(err).Msg("stored livery is invalid, using default")
		return Liveries[0]
	}
	return livery
}

// SetLivery stores the accent id.
func (s *Settings) SetLivery(livery string) error {
	livery, err := ParseLivery(livery)
	if err != nil {
		return err
	}
	return s.store.Put(kvstore.KeyLivery, []byte(livery))
}

// Heads returns the stored category heads, the built-in lists by default.
func (s *Settings) Heads() Heads {
	data, ok, err := s.store.Get(kvstore.KeyCategories)
	if err != nil {
		log.Warn().Err(err).Msg("cannot read category heads, using defaults")
		return DefaultHeads()
	}
	if !ok {
		return DefaultHeads()
	}
	var h Heads
	if err := json.Unmarshal(data, &h); err != nil {
		log.Warn().Err(err).Msg("stored category heads are invalid, using defaults")
		return DefaultHeads()
	}
	return h
}

// SetHeads stores the category heads.
func (s *Settings) SetHeads(h Heads) error {
	data, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("cannot marshal category heads: %w", err)
	}
	return s.store.Put(kvstore.KeyCategories, data)
}

// PIN returns the stored PIN, empty when no lock screen is configured.
func (s *Settings) PIN() string {
	return s.getString(kvstore.KeyPIN, "")
}

// SetPIN stores a new PIN after validating it.
func (s *Settings) SetPIN(pin string) error {
	if err := ValidatePIN(pin); err != nil {
		return err
	}
	return s.store.Put(kvstore.KeyPIN, []byte(pin))
}

// ClearPIN removes the lock screen.
func (s *Settings) ClearPIN() error {
	return s.store.Delete(kvstore.KeyPIN)
}
