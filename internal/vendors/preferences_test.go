package vendors

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quartermaster/internal/models"
	"quartermaster/internal/storage"
)

func TestAddCanonicalizesCategory(t *testing.T) {
	store := NewPreferenceStore(storage.NewMemoryKV())

	list := store.Add(models.Vendor{VendorID: "v1", Name: "Amul Traders", VendorCategory: "Milk & Curd"}, "")
	require.Len(t, list, 1)
	assert.Equal(t, "dairy", list[0].NormalizedCategoryKey)
	assert.Equal(t, "Dairy", list[0].NormalizedCategoryLabel)
}

func TestAddReplacesOnCategoryConflict(t *testing.T) {
	store := NewPreferenceStore(storage.NewMemoryKV())

	store.Add(models.Vendor{VendorID: "a", Name: "Vendor A", VendorCategory: "dairy"}, "")
	list := store.Add(models.Vendor{VendorID: "b", Name: "Vendor B", VendorCategory: "dairy"}, "")

	require.Len(t, list, 1)
	assert.Equal(t, "b", list[0].VendorID)
}

func TestAddIsIdempotent(t *testing.T) {
	store := NewPreferenceStore(storage.NewMemoryKV())
	vendor := models.Vendor{VendorID: "v1", Name: "Vendor", VendorCategory: "meat"}

	first := store.Add(vendor, "")
	second := store.Add(vendor, "")
	assert.Equal(t, first, second)
	assert.Len(t, second, 1)
}

func TestAddCategoryOverrideWins(t *testing.T) {
	store := NewPreferenceStore(storage.NewMemoryKV())

	list := store.Add(models.Vendor{VendorID: "v1", VendorCategory: "general"}, "Seafood")
	require.Len(t, list, 1)
	assert.Equal(t, "seafood", list[0].NormalizedCategoryKey)
}

func TestAddPersistsAndReloads(t *testing.T) {
	kv := storage.NewMemoryKV()

	store := NewPreferenceStore(kv)
	store.Add(models.Vendor{VendorID: "v1", VendorCategory: "dairy"}, "")
	store.Add(models.Vendor{VendorID: "v2", VendorCategory: "meat"}, "")

	reloaded := NewPreferenceStore(kv)
	list := reloaded.List()
	require.Len(t, list, 2)
	assert.Equal(t, "v1", list[0].VendorID)
	assert.Equal(t, "v2", list[1].VendorID)
}

func TestLoadToleratesMalformedState(t *testing.T) {
	kv := storage.NewMemoryKV()
	require.NoError(t, kv.Set(storage.KeyPreferredVendors, "{not json"))

	store := NewPreferenceStore(kv)
	assert.Empty(t, store.List())
}

func TestLoadDedupesStoredState(t *testing.T) {
	kv := storage.NewMemoryKV()
	stored := []models.PreferredVendorEntry{
		{Vendor: models.Vendor{VendorID: "a"}, NormalizedCategoryKey: "dairy"},
		{Vendor: models.Vendor{VendorID: "b"}, NormalizedCategoryKey: "dairy"},
	}
	data, err := json.Marshal(stored)
	require.NoError(t, err)
	require.NoError(t, kv.Set(storage.KeyPreferredVendors, string(data)))

	store := NewPreferenceStore(kv)
	list := store.List()
	require.Len(t, list, 1)
	assert.Equal(t, "a", list[0].VendorID)
}

func TestDedupeFirstWinsPreservingOrder(t *testing.T) {
	entries := []models.PreferredVendorEntry{
		{Vendor: models.Vendor{VendorID: "1"}, NormalizedCategoryKey: "dairy"},
		{Vendor: models.Vendor{VendorID: "2"}, NormalizedCategoryKey: "meat"},
		{Vendor: models.Vendor{VendorID: "3"}, NormalizedCategoryKey: "dairy"},
		{Vendor: models.Vendor{VendorID: "4"}, NormalizedCategoryKey: "seafood"},
	}

	out := Dedupe(entries)
	require.Len(t, out, 3)
	assert.Equal(t, "1", out[0].VendorID)
	assert.Equal(t, "2", out[1].VendorID)
	assert.Equal(t, "4", out[2].VendorID)
}

func TestSeedFromVendors(t *testing.T) {
	kv := storage.NewMemoryKV()
	store := NewPreferenceStore(kv)

	bulk := []models.Vendor{
		{VendorID: "1", VendorCategory: "Dairy"},
		{VendorID: "2", VendorCategory: "milk"}, // same canonical category
		{VendorID: "3", VendorCategory: "Meat"},
	}

	list := store.SeedFromVendors(bulk)
	require.Len(t, list, 2)
	assert.Equal(t, "1", list[0].VendorID)
	assert.Equal(t, "3", list[1].VendorID)

	// Seeding persisted immediately
	reloaded := NewPreferenceStore(kv)
	assert.Len(t, reloaded.List(), 2)
}

func TestSeedSkipsNonEmptyStore(t *testing.T) {
	store := NewPreferenceStore(storage.NewMemoryKV())
	store.Add(models.Vendor{VendorID: "existing", VendorCategory: "dairy"}, "")

	list := store.SeedFromVendors([]models.Vendor{{VendorID: "new", VendorCategory: "meat"}})
	require.Len(t, list, 1)
	assert.Equal(t, "existing", list[0].VendorID)
}
