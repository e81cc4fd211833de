package takatracker

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultIdleTimeout is how long a session survives without activity.
const DefaultIdleTimeout = 2 * time.Minute

// ErrWrongPIN is returned when an unlock attempt fails.
var ErrWrongPIN = errors.New("wrong PIN")

// ValidatePIN checks that a PIN is exactly four digits.
func ValidatePIN(pin string) error {
	if len(pin) != 4 {
		return fmt.Errorf("PIN must be 4 digits")
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return fmt.Errorf("PIN must be 4 digits")
		}
	}
	return nil
}

// Session is the local lock screen state: a PIN gate plus an inactivity
// timer that relocks after a fixed idle window. Any detected activity
// resets the timer through Touch.
type Session struct {
	mu     sync.Mutex
	pin    string
	idle   time.Duration
	timer  *time.Timer
	locked bool
	onLock func()
}

// NewSession creates a session guarded by the given PIN. An empty PIN means
// no lock screen: the session starts unlocked and never expires. onLock is
// invoked (without the lock held) whenever the idle window elapses.
func NewSession(pin string, idle time.Duration, onLock func()) *Session {
	if idle <= 0 {
		idle = DefaultIdleTimeout
	}
	return &Session{
		pin:    pin,
		idle:   idle,
		locked: pin != "",
		onLock: onLock,
	}
}

// Locked reports whether the session is waiting for a PIN.
func (s *Session) Locked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locked
}

// Unlock compares the PIN and opens the session, arming the idle timer.
func (s *Session) Unlock(pin string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.locked {
		return nil
	}
	if pin != s.pin {
		return ErrWrongPIN
	}
	s.locked = false
	s.resetTimer()
	return nil
}

// Touch registers user activity, pushing the idle expiry back.
func (s *Session) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locked || s.pin == "" {
		return
	}
	s.resetTimer()
}

// resetTimer must be called with the mutex held.
func (s *Session) resetTimer() {
	if s.pin == "" {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.idle, s.expire)
}

func (s *Session) expire() {
	s.mu.Lock()
	if s.locked {
		s.mu.Unlock()
		return
	}
	s.locked = true
	cb := s.onLock
	s.mu.Unlock()

	log.Info().Msg("session expired due to inactivity")
	if cb != nil {
		cb()
	}
}

// Lock relocks the session immediately (explicit logout).
func (s *Session) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pin == "" {
		return
	}
	s.locked = true
	if s.timer != nil {
		s.timer.Stop()
	}
}

// Close releases the idle timer.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
