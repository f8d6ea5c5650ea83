// Package taxonomy resolves the heterogeneous category labels used by
// vendors and inventory sources into a closed canonical taxonomy.
// Matching is case-insensitive substring containment against an ordered
// synonym table; the order is fixed so ties resolve deterministically.
package taxonomy

import (
	"strings"

	"quartermaster/internal/models"
)

// synonymGroup maps a set of substring keys to one canonical category.
type synonymGroup struct {
	keys     []string
	category models.CanonicalCategory
}

// synonymGroups is tested in order, first matching group wins. Keep the
// broad wholesale bucket first and the narrower buckets after it.
var synonymGroups = []synonymGroup{
	{[]string{"wholesale", "general", "grocery", "staples", "kirana", "provision"},
		models.CanonicalCategory{Key: "wholesale", Label: "Wholesale"}},
	{[]string{"dairy", "milk", "curd", "paneer", "cheese", "butter", "ghee", "cream"},
		models.CanonicalCategory{Key: "dairy", Label: "Dairy"}},
	{[]string{"meat", "chicken", "mutton", "poultry", "butcher", "lamb", "pork", "beef"},
		models.CanonicalCategory{Key: "meat", Label: "Meat"}},
	{[]string{"seafood", "fish", "prawn", "shrimp", "crab", "squid"},
		models.CanonicalCategory{Key: "seafood", Label: "Seafood"}},
	{[]string{"vegetable", "veggie", "greens", "produce", "sabzi"},
		models.CanonicalCategory{Key: "vegetables", Label: "Vegetables"}},
	{[]string{"fruit"},
		models.CanonicalCategory{Key: "fruits", Label: "Fruits"}},
	{[]string{"spice", "masala", "herb", "condiment mix"},
		models.CanonicalCategory{Key: "spices", Label: "Spices"}},
	{[]string{"grain", "rice", "wheat", "flour", "atta", "pulse", "dal", "lentil", "cereal"},
		models.CanonicalCategory{Key: "grains", Label: "Grains"}},
	{[]string{"bakery", "bread", "bake", "cake", "pastry"},
		models.CanonicalCategory{Key: "bakery", Label: "Bakery"}},
	{[]string{"beverage", "drink", "juice", "tea", "coffee", "soda", "water"},
		models.CanonicalCategory{Key: "beverages", Label: "Beverages"}},
	{[]string{"oil", "ghee supplier", "fats"},
		models.CanonicalCategory{Key: "oils", Label: "Oils"}},
	{[]string{"condiment", "sauce", "ketchup", "vinegar", "pickle"},
		models.CanonicalCategory{Key: "condiments", Label: "Condiments"}},
	{[]string{"snack", "chips", "namkeen", "biscuit", "cracker"},
		models.CanonicalCategory{Key: "snacks", Label: "Snacks"}},
	{[]string{"frozen", "ice cream", "cold storage"},
		models.CanonicalCategory{Key: "frozen", Label: "Frozen"}},
}

// Canonicalize maps any raw category string onto the canonical taxonomy.
// Unknown inputs fall back to a slug derived from the input itself; an
// empty input resolves to the "other" bucket. Never fails.
func Canonicalize(raw string) models.CanonicalCategory {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return models.CanonicalCategory{Key: "other", Label: "Other"}
	}

	for _, group := range synonymGroups {
		for _, key := range group.keys {
			if strings.Contains(name, key) {
				return group.category
			}
		}
	}

	return models.CanonicalCategory{Key: slugify(name), Label: titleCase(name)}
}

// slugify collapses runs of non-alphanumeric characters into single
// hyphens and trims leading/trailing hyphens.
func slugify(s string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// titleCase upper-cases the first letter of each whitespace-separated word.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
