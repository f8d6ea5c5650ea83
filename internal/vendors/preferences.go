// Package vendors maintains the preferred-vendor list: the single vendor
// designated per canonical category for automatic order routing.
package vendors

import (
	"encoding/json"
	"log"
	"sync"

	"quartermaster/internal/models"
	"quartermaster/internal/storage"
	"quartermaster/internal/taxonomy"
)

// PreferenceStore holds at most one preferred vendor per canonical
// category key and persists the full list through the durable KV store.
// Add is the sole mutation path; it replaces on category conflict, so
// repeated identical adds are idempotent.
type PreferenceStore struct {
	kv storage.KV

	mu      sync.RWMutex
	entries []models.PreferredVendorEntry
}

// NewPreferenceStore loads any persisted preferred-vendor list from kv.
// Malformed or missing stored data yields an empty store, never an error.
func NewPreferenceStore(kv storage.KV) *PreferenceStore {
	s := &PreferenceStore{kv: kv}
	s.entries = s.load()
	return s
}

// load reconstructs the persisted list, degrading to empty on any fault.
func (s *PreferenceStore) load() []models.PreferredVendorEntry {
	raw, ok, err := s.kv.Get(storage.KeyPreferredVendors)
	if err != nil {
		log.Printf("vendors: failed to read preferred list, starting empty: %v", err)
		return nil
	}
	if !ok || raw == "" {
		return nil
	}

	var entries []models.PreferredVendorEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		log.Printf("vendors: discarding malformed preferred list: %v", err)
		return nil
	}
	return Dedupe(entries)
}

// List returns a copy of the current preferred-vendor list in stored order.
func (s *PreferenceStore) List() []models.PreferredVendorEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.PreferredVendorEntry(nil), s.entries...)
}

// Add designates vendor as the preferred supplier for its canonical
// category (categoryOverride, when non-empty, wins over the vendor's own
// category field). Any existing entry for that category is replaced. The
// resulting list is persisted and returned.
func (s *PreferenceStore) Add(vendor models.Vendor, categoryOverride string) []models.PreferredVendorEntry {
	raw := vendor.VendorCategory
	if categoryOverride != "" {
		raw = categoryOverride
	}
	category := taxonomy.Canonicalize(raw)

	entry := models.PreferredVendorEntry{
		Vendor:                  vendor,
		NormalizedCategoryKey:   category.Key,
		NormalizedCategoryLabel: category.Label,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]models.PreferredVendorEntry, 0, len(s.entries)+1)
	for _, e := range s.entries {
		if e.NormalizedCategoryKey != entry.NormalizedCategoryKey {
			kept = append(kept, e)
		}
	}
	s.entries = append(kept, entry)
	s.persist()

	return append([]models.PreferredVendorEntry(nil), s.entries...)
}

// SeedFromVendors populates an empty store from a bulk vendor list, one
// vendor per distinct canonical category, first vendor encountered wins.
// A non-empty store is left untouched.
func (s *PreferenceStore) SeedFromVendors(bulk []models.Vendor) []models.PreferredVendorEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) > 0 {
		return append([]models.PreferredVendorEntry(nil), s.entries...)
	}

	entries := make([]models.PreferredVendorEntry, 0, len(bulk))
	for _, vendor := range bulk {
		category := taxonomy.Canonicalize(vendor.VendorCategory)
		entries = append(entries, models.PreferredVendorEntry{
			Vendor:                  vendor,
			NormalizedCategoryKey:   category.Key,
			NormalizedCategoryLabel: category.Label,
		})
	}

	s.entries = Dedupe(entries)
	s.persist()
	return append([]models.PreferredVendorEntry(nil), s.entries...)
}

// persist writes the current list. Callers hold the lock. Storage faults
// are logged, not raised; the in-memory list stays authoritative.
func (s *PreferenceStore) persist() {
	data, err := json.Marshal(s.entries)
	if err != nil {
		log.Printf("vendors: failed to encode preferred list: %v", err)
		return
	}
	if err := s.kv.Set(storage.KeyPreferredVendors, string(data)); err != nil {
		log.Printf("vendors: failed to persist preferred list: %v", err)
	}
}

// Dedupe keeps the first occurrence of each normalized category key,
// preserving input order.
func Dedupe(entries []models.PreferredVendorEntry) []models.PreferredVendorEntry {
	seen := make(map[string]bool, len(entries))
	out := make([]models.PreferredVendorEntry, 0, len(entries))
	for _, e := range entries {
		if seen[e.NormalizedCategoryKey] {
			continue
		}
		seen[e.NormalizedCategoryKey] = true
		out = append(out, e)
	}
	return out
}
