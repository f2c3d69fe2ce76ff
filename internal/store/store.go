// Package store owns the authoritative in-memory expense collection.
// It is the sole writer of record identity and creation timestamps;
// records only enter through Add and only leave through Remove or
// Clear.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"kharcha/internal/core"
)

type Store struct {
	mu    sync.Mutex
	now   func() time.Time
	items []core.Expense
	rev   uint64
}

func New() *Store {
	return &Store{now: time.Now}
}

// Add validates the draft and, on success, appends a new record with a
// fresh unique id and creation timestamp. A failing draft is a no-op:
// nothing is created and the validation error is returned.
func (s *Store) Add(d core.Draft) (core.Expense, error) {
	amount, err := d.Validate()
	if err != nil {
		return core.Expense{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	date := d.Date
	if date.IsZero() {
		// The entry form pre-fills today; a zero date means "today".
		date = core.DateOf(now)
	}

	e := core.Expense{
		ID:          uuid.NewString(),
		Amount:      amount,
		Category:    d.Category,
		PaymentMode: d.PaymentMode,
		Date:        date,
		Notes:       d.Notes,
		CreatedAt:   now,
	}
	s.items = append(s.items, e)
	s.rev++
	return e, nil
}

// Remove deletes the record with the given id. Removing an absent id
// is a no-op, not an error; the return value reports whether a record
// was deleted.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.items {
		if e.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.rev++
			return true
		}
	}
	return false
}

// Clear empties the collection unconditionally. Confirmation is the
// caller's responsibility.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.rev++
}

// List returns a copy of the collection in insertion order.
func (s *Store) List() []core.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Expense(nil), s.items...)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Replace swaps in a previously persisted collection. Used only while
// hydrating from a snapshot at startup.
func (s *Store) Replace(items []core.Expense) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]core.Expense(nil), items...)
	s.rev++
}

// Revision increases on every mutation and identifies the current
// collection content for memoization.
func (s *Store) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rev
}
