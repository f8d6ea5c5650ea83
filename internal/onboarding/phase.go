// Package onboarding decides which inventory view a user gets based on how
// long they have been using the reorder workflow: everything at first, low
// stock only after a week, and a server-ranked list after two weeks.
package onboarding

import (
	"context"
	"log"
	"sort"
	"strconv"
	"time"

	"quartermaster/internal/models"
	"quartermaster/internal/storage"
)

// Phase identifies the onboarding stage of the inventory overview.
type Phase string

const (
	// PhaseAllItems shows the whole inventory for the first week.
	PhaseAllItems Phase = "all_items"
	// PhaseLowStockSorted shows low-stock items ranked by urgency ratio.
	PhaseLowStockSorted Phase = "low_stock_sorted"
	// PhaseServerRanked upgrades the low-stock view with server scores.
	PhaseServerRanked Phase = "server_ranked"
)

// Suggester supplies the deferred server-side urgency ranking. It is a
// soft upgrade: any error or empty result leaves the local view in place.
type Suggester interface {
	RankSuggestions(ctx context.Context, items []models.InventoryItem) ([]models.RankedSuggestion, error)
}

// Resolver resolves the onboarding phase from a persisted first-seen
// timestamp and builds the corresponding item view.
type Resolver struct {
	kv            storage.KV
	now           func() time.Time
	forceAllItems bool
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) { r.now = now }
}

// WithForceAllItems is a debug override that pins the resolver to the
// all-items phase regardless of elapsed time.
func WithForceAllItems(force bool) Option {
	return func(r *Resolver) { r.forceAllItems = force }
}

// NewResolver creates a resolver persisting its first-seen timestamp in kv.
func NewResolver(kv storage.KV, opts ...Option) *Resolver {
	r := &Resolver{kv: kv, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// firstSeen loads the persisted first-use timestamp, initializing it to
// now exactly once. A malformed stored value is treated as absent.
func (r *Resolver) firstSeen() time.Time {
	now := r.now()

	raw, ok, err := r.kv.Get(storage.KeyOnboardingFirst)
	if err == nil && ok {
		if ms, perr := strconv.ParseInt(raw, 10, 64); perr == nil {
			return time.UnixMilli(ms)
		}
		log.Printf("onboarding: discarding malformed first-seen value %q", raw)
	}

	if err := r.kv.Set(storage.KeyOnboardingFirst, strconv.FormatInt(now.UnixMilli(), 10)); err != nil {
		log.Printf("onboarding: failed to persist first-seen timestamp: %v", err)
	}
	return now
}

// Phase returns the current onboarding phase. The first call persists the
// first-seen timestamp; subsequent calls never move it.
func (r *Resolver) Phase() Phase {
	if r.forceAllItems {
		return PhaseAllItems
	}

	days := r.now().Sub(r.firstSeen()).Hours() / 24
	switch {
	case days <= 7:
		return PhaseAllItems
	case days < 14:
		return PhaseLowStockSorted
	default:
		return PhaseServerRanked
	}
}

// View builds the item view for the current phase. For the server-ranked
// phase this is the locally sorted view; ResolveView layers the deferred
// server ranking on top.
func (r *Resolver) View(items []models.InventoryItem) []models.InventoryItem {
	if r.Phase() == PhaseAllItems {
		return allItemsView(items)
	}
	return lowStockView(items)
}

// ResolveView builds the phase view and, in the server-ranked phase,
// attempts the suggestion upgrade. The caller bounds the wait through ctx;
// a nil suggester, an error or an empty ranking all leave the locally
// sorted low-stock view authoritative.
func (r *Resolver) ResolveView(ctx context.Context, items []models.InventoryItem, suggester Suggester) []models.InventoryItem {
	view := r.View(items)
	if r.Phase() != PhaseServerRanked || suggester == nil || len(view) == 0 {
		return view
	}

	ranked, err := suggester.RankSuggestions(ctx, view)
	if err != nil {
		log.Printf("onboarding: suggestion service unavailable, keeping local ranking: %v", err)
		return view
	}
	if len(ranked) == 0 {
		return view
	}
	return applyRanking(view, ranked)
}

// allItemsView lists every item, newly added ones last, alphabetical
// within each half.
func allItemsView(items []models.InventoryItem) []models.InventoryItem {
	view := append([]models.InventoryItem(nil), items...)
	sort.SliceStable(view, func(i, j int) bool {
		if view[i].IsNewlyAdded != view[j].IsNewlyAdded {
			return !view[i].IsNewlyAdded
		}
		return view[i].Name < view[j].Name
	})
	return view
}

// lowStockView keeps only low-stock items, most urgent first. Ties break
// with newly added items after established ones, then alphabetically.
func lowStockView(items []models.InventoryItem) []models.InventoryItem {
	view := make([]models.InventoryItem, 0, len(items))
	for _, item := range items {
		if item.IsLowStock {
			view = append(view, item)
		}
	}
	sort.SliceStable(view, func(i, j int) bool {
		ri, rj := view[i].UrgencyRatio(), view[j].UrgencyRatio()
		if ri != rj {
			return ri < rj
		}
		if view[i].IsNewlyAdded != view[j].IsNewlyAdded {
			return !view[i].IsNewlyAdded
		}
		return view[i].Name < view[j].Name
	})
	return view
}

// applyRanking reorders the view by descending server urgency score.
// Items the server did not score keep their relative local order at the
// end of the list.
func applyRanking(view []models.InventoryItem, ranked []models.RankedSuggestion) []models.InventoryItem {
	scores := make(map[string]float64, len(ranked))
	for _, s := range ranked {
		scores[s.ItemID] = s.UrgencyScore
	}

	out := append([]models.InventoryItem(nil), view...)
	sort.SliceStable(out, func(i, j int) bool {
		si, iok := scores[out[i].ItemID]
		sj, jok := scores[out[j].ItemID]
		if iok != jok {
			return iok
		}
		return si > sj
	})
	return out
}
