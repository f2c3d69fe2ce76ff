package core

import "sort"

// MonthRow is one chart-ready row: a YYYY-MM month key and the total
// for every category, zero when the month had no spend in it.
type MonthRow struct {
	Month  string             `json:"month"`
	Totals map[Category]Money `json:"totals"`
}

// Total returns the sum across all categories for the row.
func (r MonthRow) Total() Money {
	var sum Money
	for _, m := range r.Totals {
		sum = sum.Add(m)
	}
	return sum
}

// MonthlyBreakdown groups expenses by calendar month and sums amounts
// per category. Rows come back sorted ascending by month key; the
// fixed YYYY-MM format makes lexicographic order chronological. An
// empty input yields an empty result.
func MonthlyBreakdown(expenses []Expense) []MonthRow {
	byMonth := make(map[string]map[Category]Money)
	for _, e := range expenses {
		key := e.Date.MonthKey()
		totals, ok := byMonth[key]
		if !ok {
			totals = make(map[Category]Money, len(Categories()))
			for _, c := range Categories() {
				totals[c] = Money{}
			}
			byMonth[key] = totals
		}
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}

	rows := make([]MonthRow, 0, len(byMonth))
	for key, totals := range byMonth {
		rows = append(rows, MonthRow{Month: key, Totals: totals})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Month < rows[j].Month
	})
	return rows
}
