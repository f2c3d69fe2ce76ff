package core

import "testing"

func TestMonthlyBreakdown(t *testing.T) {
	expenses := []Expense{
		exp("a", NewDate(2024, 2, 10), Groceries, Cash, 50000),
		exp("b", NewDate(2024, 1, 5), Rental, UPI, 100000),
		exp("c", NewDate(2024, 1, 20), Rental, UPI, 25000),
	}
	rows := MonthlyBreakdown(expenses)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	jan, feb := rows[0], rows[1]
	if jan.Month != "2024-01" || feb.Month != "2024-02" {
		t.Fatalf("rows not chronological: %s, %s", jan.Month, feb.Month)
	}
	if jan.Totals[Rental].Cents != 125000 {
		t.Fatalf("expected 125000 rental cents in Jan, got %d", jan.Totals[Rental].Cents)
	}
	if feb.Totals[Groceries].Cents != 50000 {
		t.Fatalf("expected 50000 groceries cents in Feb, got %d", feb.Totals[Groceries].Cents)
	}

	// Every row carries all five categories, zero-filled.
	for _, row := range rows {
		for _, c := range Categories() {
			if _, ok := row.Totals[c]; !ok {
				t.Fatalf("row %s missing category %s", row.Month, c)
			}
		}
	}
	if feb.Totals[Rental].Cents != 0 || jan.Totals[Groceries].Cents != 0 {
		t.Fatalf("untouched categories should be zero")
	}
}

func TestMonthlyBreakdownEmpty(t *testing.T) {
	if rows := MonthlyBreakdown(nil); len(rows) != 0 {
		t.Fatalf("expected empty result, got %v", rows)
	}
}

func TestMonthRowTotal(t *testing.T) {
	rows := MonthlyBreakdown([]Expense{
		exp("a", NewDate(2024, 1, 1), Rental, UPI, 100),
		exp("b", NewDate(2024, 1, 2), Travel, Cash, 250),
	})
	if got := rows[0].Total().Cents; got != 350 {
		t.Fatalf("expected 350, got %d", got)
	}
}

func TestMonthlyBreakdownSortsLexicographically(t *testing.T) {
	expenses := []Expense{
		exp("a", NewDate(2024, 11, 1), Others, Cash, 1),
		exp("b", NewDate(2024, 2, 1), Others, Cash, 1),
		exp("c", NewDate(2023, 12, 1), Others, Cash, 1),
	}
	rows := MonthlyBreakdown(expenses)
	want := []string{"2023-12", "2024-02", "2024-11"}
	for i, w := range want {
		if rows[i].Month != w {
			t.Fatalf("row %d expected %s, got %s", i, w, rows[i].Month)
		}
	}
}
