package core

import "time"

const (
	RangeAll       DateRange = "all"
	RangeThisMonth DateRange = "thisMonth"
	RangeLast30    DateRange = "last30"
	RangeLast90    DateRange = "last90"
)

type (
	// DateRange selects the date window applied by Filter.
	DateRange string

	// FilterState holds the active date-range mode and the selected
	// category and payment-mode sets. An empty set means no
	// restriction on that dimension. Fields toggle independently.
	FilterState struct {
		DateRange    DateRange     `json:"dateRange"`
		Categories   []Category    `json:"categories"`
		PaymentModes []PaymentMode `json:"paymentModes"`
	}
)

func (r DateRange) IsValid() bool {
	switch r {
	case RangeAll, RangeThisMonth, RangeLast30, RangeLast90:
		return true
	}
	return false
}

// DefaultFilterState returns the unrestricted state: every expense
// passes.
func DefaultFilterState() FilterState {
	return FilterState{DateRange: RangeAll}
}

// SetDateRange overwrites the date-range mode. Unknown values are
// ignored.
func (f *FilterState) SetDateRange(r DateRange) {
	if r.IsValid() {
		f.DateRange = r
	}
}

// ToggleCategory adds the category to the selected set if absent and
// removes it if present.
func (f *FilterState) ToggleCategory(c Category) {
	f.Categories = toggle(f.Categories, c)
}

// TogglePaymentMode adds the payment mode to the selected set if
// absent and removes it if present.
func (f *FilterState) TogglePaymentMode(p PaymentMode) {
	f.PaymentModes = toggle(f.PaymentModes, p)
}

// Reset restores the default state: dateRange all, both sets empty.
func (f *FilterState) Reset() {
	*f = DefaultFilterState()
}

// HasCategory reports membership in the selected category set.
func (f FilterState) HasCategory(c Category) bool {
	return contains(f.Categories, c)
}

// HasPaymentMode reports membership in the selected payment-mode set.
func (f FilterState) HasPaymentMode(p PaymentMode) bool {
	return contains(f.PaymentModes, p)
}

func toggle[T comparable](set []T, v T) []T {
	for i, x := range set {
		if x == v {
			return append(set[:i:i], set[i+1:]...)
		}
	}
	return append(set, v)
}

func contains[T comparable](set []T, v T) bool {
	for _, x := range set {
		if x == v {
			return true
		}
	}
	return false
}

// Filter returns the subset of expenses passing the date, category and
// payment-mode predicates, preserving relative order. It is pure:
// identical inputs, including now, yield identical output.
func Filter(expenses []Expense, state FilterState, now time.Time) []Expense {
	out := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		if !dateMatch(e.Date, state.DateRange, now) {
			continue
		}
		if len(state.Categories) > 0 && !state.HasCategory(e.Category) {
			continue
		}
		if len(state.PaymentModes) > 0 && !state.HasPaymentMode(e.PaymentMode) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func dateMatch(d Date, r DateRange, now time.Time) bool {
	switch r {
	case RangeThisMonth:
		return d.Month() == now.Month() && d.Year() == now.Year()
	case RangeLast30:
		// Fixed-duration window, boundary inclusive. Not calendar-aware.
		return !d.Before(now.Add(-30 * 24 * time.Hour))
	case RangeLast90:
		return !d.Before(now.Add(-90 * 24 * time.Hour))
	default:
		return true
	}
}
