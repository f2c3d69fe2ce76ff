// Package services wires the expense store, filter state and snapshot
// persistence into the single facade the presentation boundary talks
// to. Every mutation is persisted immediately; persistence failures
// are logged and never corrupt or abort the in-memory session.
package services

import (
	"context"
	"strconv"
	"time"

	"kharcha/internal/cache"
	"kharcha/internal/core"
	applog "kharcha/internal/log"
	"kharcha/internal/snapshot"
	"kharcha/internal/storage"
	"kharcha/internal/store"
)

const (
	ViewList      View = "list"
	ViewAnalytics View = "analytics"
)

// View names the screen the user last had active.
type View string

func (v View) IsValid() bool {
	return v == ViewList || v == ViewAnalytics
}

type Session struct {
	store   *store.Store
	kv      storage.KV
	logger  *applog.Logger
	now     func() time.Time
	filters core.FilterState
	view    View

	chartCache *cache.LRUCache[[]core.MonthRow]
}

func NewSession(kv storage.KV, logger *applog.Logger) *Session {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &Session{
		store:      store.New(),
		kv:         kv,
		logger:     logger.WithComponent(applog.ComponentSession),
		now:        time.Now,
		filters:    core.DefaultFilterState(),
		view:       ViewList,
		chartCache: cache.NewLRUCache[[]core.MonthRow](4, 5*time.Minute),
	}
}

// Hydrate loads the three snapshots. Each is independently optional: a
// missing or unparseable snapshot falls back to its default and is
// logged, never fatal.
func (s *Session) Hydrate(ctx context.Context) {
	if raw, ok := s.load(ctx, snapshot.KeyExpenses); ok {
		expenses, err := snapshot.DecodeExpenses(raw)
		if err != nil {
			s.logger.Warn("Corrupt expense snapshot, starting empty",
				applog.FieldKey, snapshot.KeyExpenses, applog.FieldError, err)
		} else {
			s.store.Replace(expenses)
			s.logger.Info("Loaded expenses from snapshot", applog.FieldCount, len(expenses))
		}
	}

	if raw, ok := s.load(ctx, snapshot.KeyFilters); ok {
		filters, err := snapshot.DecodeFilters(raw)
		if err != nil {
			s.logger.Warn("Corrupt filter snapshot, using defaults",
				applog.FieldKey, snapshot.KeyFilters, applog.FieldError, err)
		} else {
			s.filters = filters
		}
	}

	if raw, ok := s.load(ctx, snapshot.KeyActiveView); ok {
		view := View(raw)
		if !view.IsValid() {
			s.logger.Warn("Unknown active view in snapshot, using list",
				applog.FieldView, raw)
		} else {
			s.view = view
		}
	}
}

// Add validates the draft and appends a new expense. Validation
// failures create nothing and are returned for the boundary to
// surface.
func (s *Session) Add(ctx context.Context, draft core.Draft) (core.Expense, error) {
	e, err := s.store.Add(draft)
	if err != nil {
		return core.Expense{}, err
	}

	s.logger.Info("Expense recorded",
		applog.FieldExpenseID, e.ID,
		applog.FieldCategory, string(e.Category),
		applog.FieldPaymentMode, string(e.PaymentMode),
		applog.FieldAmountCents, e.Amount.Cents)

	s.saveExpenses(ctx)
	return e, nil
}

// Remove deletes by id; absent ids are a no-op.
func (s *Session) Remove(ctx context.Context, id string) {
	if !s.store.Remove(id) {
		return
	}
	s.logger.Info("Expense removed", applog.FieldExpenseID, id)
	s.saveExpenses(ctx)
}

// ClearAll empties the collection, resets filters and removes both
// snapshots from durable storage. The confirmation step lives at the
// boundary; this performs the operation unconditionally.
func (s *Session) ClearAll(ctx context.Context) {
	s.store.Clear()
	s.filters.Reset()

	for _, key := range []string{snapshot.KeyExpenses, snapshot.KeyFilters} {
		if err := s.kv.Delete(ctx, key); err != nil {
			s.logger.Error("Failed to remove snapshot",
				applog.FieldOperation, applog.OpClear,
				applog.FieldKey, key, applog.FieldError, err)
		}
	}
	s.logger.Info("All expenses cleared")
}

// SetDateRange overwrites the date-range filter mode.
func (s *Session) SetDateRange(ctx context.Context, r core.DateRange) {
	s.filters.SetDateRange(r)
	s.saveFilters(ctx)
}

// ToggleCategory flips membership in the selected category set.
func (s *Session) ToggleCategory(ctx context.Context, c core.Category) {
	s.filters.ToggleCategory(c)
	s.saveFilters(ctx)
}

// TogglePaymentMode flips membership in the selected payment-mode set.
func (s *Session) TogglePaymentMode(ctx context.Context, p core.PaymentMode) {
	s.filters.TogglePaymentMode(p)
	s.saveFilters(ctx)
}

// ResetFilters restores the default filter state.
func (s *Session) ResetFilters(ctx context.Context) {
	s.filters.Reset()
	s.saveFilters(ctx)
}

// SetView records the active view selector. Unknown views are ignored.
func (s *Session) SetView(ctx context.Context, v View) {
	if !v.IsValid() {
		return
	}
	s.view = v
	if err := s.kv.Put(ctx, snapshot.KeyActiveView, string(v)); err != nil {
		s.logger.Error("Failed to save active view",
			applog.FieldOperation, applog.OpSave, applog.FieldError, err)
	}
}

func (s *Session) View() View {
	return s.view
}

func (s *Session) Filters() core.FilterState {
	return s.filters
}

// Expenses returns the full ordered collection.
func (s *Session) Expenses() []core.Expense {
	return s.store.List()
}

// Visible applies the active filter state to the collection,
// recomputing from current state on every call.
func (s *Session) Visible() []core.Expense {
	return core.Filter(s.store.List(), s.filters, s.now())
}

// ChartRows aggregates the full collection, ignoring active filters as
// the analytics view always charts everything. Rows are memoized per
// store revision; the pure aggregation contract is unchanged.
func (s *Session) ChartRows() []core.MonthRow {
	key := "chart:" + strconv.FormatUint(s.store.Revision(), 10)
	if rows, ok := s.chartCache.Get(key); ok {
		return rows
	}
	rows := core.MonthlyBreakdown(s.store.List())
	s.chartCache.Set(key, rows)
	return rows
}

func (s *Session) load(ctx context.Context, key string) (string, bool) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.logger.Warn("Snapshot unavailable, using defaults",
			applog.FieldOperation, applog.OpLoad,
			applog.FieldKey, key, applog.FieldError, err)
		return "", false
	}
	return raw, ok
}

func (s *Session) saveExpenses(ctx context.Context) {
	encoded, err := snapshot.EncodeExpenses(s.store.List())
	if err != nil {
		s.logger.Error("Failed to encode expenses", applog.FieldError, err)
		return
	}
	s.save(ctx, snapshot.KeyExpenses, encoded)
}

func (s *Session) saveFilters(ctx context.Context) {
	encoded, err := snapshot.EncodeFilters(s.filters)
	if err != nil {
		s.logger.Error("Failed to encode filters", applog.FieldError, err)
		return
	}
	s.save(ctx, snapshot.KeyFilters, encoded)
}

// save attempts one snapshot write. Failures leave the in-memory state
// intact; the session keeps operating memory-only and later saves are
// attempted independently.
func (s *Session) save(ctx context.Context, key, value string) {
	if err := s.kv.Put(ctx, key, value); err != nil {
		s.logger.Error("Failed to save snapshot",
			applog.FieldOperation, applog.OpSave,
			applog.FieldKey, key, applog.FieldError, err)
	}
}

// Summary is a small convenience for the boundary: the number and sum
// of the currently visible expenses.
func (s *Session) Summary() (int, core.Money) {
	visible := s.Visible()
	var total core.Money
	for _, e := range visible {
		total = total.Add(e.Amount)
	}
	return len(visible), total
}
