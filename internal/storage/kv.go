// Package storage provides the durable key-value port the procurement
// state (preferred vendors, onboarding timestamp) is persisted through,
// with a gorm-backed implementation and an in-memory fake for tests.
package storage

// Well-known keys of the persisted procurement state.
const (
	KeyPreferredVendors = "procurement.preferred_vendors"
	KeyOnboardingFirst  = "procurement.onboarding_first_seen"
)

// KV is a durable string key-value store.
type KV interface {
	// Get returns the stored value and whether the key was present.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}
