// Package snapshot encodes the session's durable state as JSON text
// for the key-value store. Three independent snapshots exist: the
// expense collection, the filter state, and the active view selector.
// Round-tripping any of them reproduces an equal value.
package snapshot

import (
	"encoding/json"
	"fmt"

	"kharcha/internal/core"
)

// Storage keys for the three snapshots.
const (
	KeyExpenses   = "expense_tracker:data"
	KeyFilters    = "expense_tracker:filters"
	KeyActiveView = "expense_tracker:active_view"
)

func EncodeExpenses(expenses []core.Expense) (string, error) {
	if expenses == nil {
		expenses = []core.Expense{}
	}
	b, err := json.Marshal(expenses)
	if err != nil {
		return "", fmt.Errorf("encode expenses: %w", err)
	}
	return string(b), nil
}

func DecodeExpenses(s string) ([]core.Expense, error) {
	var expenses []core.Expense
	if err := json.Unmarshal([]byte(s), &expenses); err != nil {
		return nil, fmt.Errorf("decode expenses: %w", err)
	}
	return expenses, nil
}

func EncodeFilters(f core.FilterState) (string, error) {
	b, err := json.Marshal(f)
	if err != nil {
		return "", fmt.Errorf("encode filters: %w", err)
	}
	return string(b), nil
}

func DecodeFilters(s string) (core.FilterState, error) {
	var f core.FilterState
	if err := json.Unmarshal([]byte(s), &f); err != nil {
		return core.FilterState{}, fmt.Errorf("decode filters: %w", err)
	}
	if !f.DateRange.IsValid() {
		return core.FilterState{}, fmt.Errorf("decode filters: unknown date range %q", f.DateRange)
	}
	return f, nil
}
