package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"kharcha/internal/core"
	"kharcha/internal/snapshot"
	"kharcha/internal/storage"
)

// failingKV refuses every operation, simulating unavailable storage.
type failingKV struct{}

var errDown = errors.New("storage down")

func (failingKV) Get(context.Context, string) (string, bool, error) { return "", false, errDown }
func (failingKV) Put(context.Context, string, string) error         { return errDown }
func (failingKV) Delete(context.Context, string) error              { return errDown }
func (failingKV) Close() error                                      { return nil }

func draft(amount string, c core.Category, p core.PaymentMode, d core.Date) core.Draft {
	return core.Draft{Amount: amount, Category: c, PaymentMode: p, Date: d}
}

func TestSessionAddPersistsSnapshot(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	s := NewSession(kv, nil)

	e, err := s.Add(ctx, draft("1000", core.Rental, core.UPI, core.NewDate(2024, 1, 5)))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if e.ID == "" {
		t.Fatalf("expected assigned id")
	}

	raw, ok, _ := kv.Get(ctx, snapshot.KeyExpenses)
	if !ok {
		t.Fatalf("expected expenses snapshot after add")
	}
	persisted, err := snapshot.DecodeExpenses(raw)
	if err != nil || len(persisted) != 1 || persisted[0].ID != e.ID {
		t.Fatalf("snapshot does not match collection: %v %v", persisted, err)
	}
}

func TestSessionHydrateRestoresState(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()

	// First session records state.
	s1 := NewSession(kv, nil)
	s1.Add(ctx, draft("500", core.Groceries, core.Cash, core.NewDate(2024, 2, 10)))
	s1.SetDateRange(ctx, core.RangeLast90)
	s1.ToggleCategory(ctx, core.Groceries)
	s1.SetView(ctx, ViewAnalytics)

	// Second session hydrates from the same store.
	s2 := NewSession(kv, nil)
	s2.Hydrate(ctx)

	if len(s2.Expenses()) != 1 {
		t.Fatalf("expected 1 hydrated expense, got %d", len(s2.Expenses()))
	}
	if s2.Filters().DateRange != core.RangeLast90 || !s2.Filters().HasCategory(core.Groceries) {
		t.Fatalf("filter state not hydrated: %+v", s2.Filters())
	}
	if s2.View() != ViewAnalytics {
		t.Fatalf("view not hydrated: %s", s2.View())
	}
}

func TestSessionHydrateFallsBackOnCorruptSnapshots(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	kv.Put(ctx, snapshot.KeyExpenses, "{broken")
	kv.Put(ctx, snapshot.KeyFilters, "also broken")
	kv.Put(ctx, snapshot.KeyActiveView, "dashboard")

	s := NewSession(kv, nil)
	s.Hydrate(ctx)

	if len(s.Expenses()) != 0 {
		t.Fatalf("corrupt expenses should hydrate empty")
	}
	if s.Filters().DateRange != core.RangeAll {
		t.Fatalf("corrupt filters should hydrate defaults")
	}
	if s.View() != ViewList {
		t.Fatalf("unknown view should hydrate to list")
	}
}

func TestSessionSurvivesStorageFailure(t *testing.T) {
	ctx := context.Background()
	s := NewSession(failingKV{}, nil)
	s.Hydrate(ctx)

	e, err := s.Add(ctx, draft("250", core.Travel, core.NetBanking, core.NewDate(2024, 3, 1)))
	if err != nil {
		t.Fatalf("add must succeed in memory-only mode: %v", err)
	}
	if len(s.Expenses()) != 1 {
		t.Fatalf("in-memory state lost on save failure")
	}

	s.SetDateRange(ctx, core.RangeLast30)
	if s.Filters().DateRange != core.RangeLast30 {
		t.Fatalf("filter state lost on save failure")
	}

	s.Remove(ctx, e.ID)
	if len(s.Expenses()) != 0 {
		t.Fatalf("remove must work in memory-only mode")
	}
}

func TestSessionClearAllRemovesSnapshots(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	s := NewSession(kv, nil)

	s.Add(ctx, draft("100", core.Others, core.Cash, core.NewDate(2024, 1, 1)))
	s.ToggleCategory(ctx, core.Others)
	s.ClearAll(ctx)

	if len(s.Expenses()) != 0 {
		t.Fatalf("expected empty collection after clear")
	}
	if s.Filters().DateRange != core.RangeAll || len(s.Filters().Categories) != 0 {
		t.Fatalf("expected default filters after clear")
	}
	if _, ok, _ := kv.Get(ctx, snapshot.KeyExpenses); ok {
		t.Fatalf("expense snapshot should be deleted, not emptied")
	}
	if _, ok, _ := kv.Get(ctx, snapshot.KeyFilters); ok {
		t.Fatalf("filter snapshot should be deleted")
	}
}

func TestSessionVisibleUsesFilters(t *testing.T) {
	ctx := context.Background()
	s := NewSession(storage.NewMemoryKV(), nil)
	s.now = func() time.Time { return time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC) }

	s.Add(ctx, draft("100", core.Rental, core.UPI, core.NewDate(2024, 3, 1)))
	s.Add(ctx, draft("200", core.Groceries, core.Cash, core.NewDate(2023, 11, 1)))

	if got := len(s.Visible()); got != 2 {
		t.Fatalf("default filters should show all, got %d", got)
	}

	s.SetDateRange(ctx, core.RangeLast30)
	visible := s.Visible()
	if len(visible) != 1 || visible[0].Category != core.Rental {
		t.Fatalf("last30 filter wrong: %v", visible)
	}

	count, total := s.Summary()
	if count != 1 || total.Cents != 10000 {
		t.Fatalf("summary wrong: %d %d", count, total.Cents)
	}
}

func TestSessionChartRowsIgnoreFilters(t *testing.T) {
	ctx := context.Background()
	s := NewSession(storage.NewMemoryKV(), nil)

	s.Add(ctx, draft("1000", core.Rental, core.UPI, core.NewDate(2024, 1, 5)))
	s.Add(ctx, draft("500", core.Groceries, core.Cash, core.NewDate(2024, 2, 10)))
	s.ToggleCategory(ctx, core.Rental) // filters the list view, not the chart

	rows := s.ChartRows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Month != "2024-01" || rows[1].Month != "2024-02" {
		t.Fatalf("rows out of order: %s, %s", rows[0].Month, rows[1].Month)
	}
	if rows[0].Totals[core.Rental].Cents != 100000 || rows[1].Totals[core.Groceries].Cents != 50000 {
		t.Fatalf("totals wrong: %+v", rows)
	}

	// Memoized result for an unchanged collection.
	again := s.ChartRows()
	if len(again) != 2 {
		t.Fatalf("memoized rows wrong: %v", again)
	}

	// A mutation invalidates by revision.
	s.Add(ctx, draft("1", core.Travel, core.Cash, core.NewDate(2024, 3, 1)))
	if len(s.ChartRows()) != 3 {
		t.Fatalf("expected 3 rows after add")
	}
}
