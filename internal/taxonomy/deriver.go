package taxonomy

import "strings"

// nameOverride routes an item to a category from its name alone,
// regardless of the raw category the source attached to it.
type nameOverride struct {
	keyword string
	key     string
}

// nameOverrides is tested in order, first match wins.
var nameOverrides = []nameOverride{
	{"chicken", "meat"},
	{"mutton", "meat"},
	{"lamb", "meat"},
	{"pork", "meat"},
	{"beef", "meat"},
	{"fish", "seafood"},
	{"prawn", "seafood"},
	{"shrimp", "seafood"},
	{"crab", "seafood"},
	{"squid", "seafood"},
	{"milk", "dairy"},
	{"paneer", "dairy"},
	{"cheese", "dairy"},
	{"curd", "dairy"},
	{"butter", "dairy"},
}

// DefaultProcessedKeywords are name stems that mark an item as a processed
// product. A "chicken masala powder" is a spice-shelf item, not something
// a meat vendor stocks, so a hit here suppresses the name overrides above.
// The list is data, not law; pass a custom list to NewDeriver to tune it.
var DefaultProcessedKeywords = []string{
	"masala", "powder", "paste", "marinade", "gravy", "tikka",
	"pickle", "sauce", "premix", "seasoning", "mix", "curry",
}

// Deriver derives the vendor-facing category key for an inventory item
// from its raw category and its name.
type Deriver struct {
	processedKeywords []string
}

// NewDeriver returns a Deriver using the given processed-keyword stems;
// nil selects DefaultProcessedKeywords.
func NewDeriver(processedKeywords []string) *Deriver {
	if processedKeywords == nil {
		processedKeywords = DefaultProcessedKeywords
	}
	return &Deriver{processedKeywords: processedKeywords}
}

// DeriveCategoryFromItemName resolves the category key an item should be
// routed by. Name overrides beat the raw category unless a processed-food
// keyword appears in the name; with no name signal the raw category is
// canonicalized; with neither input the wholesale bucket applies.
func (d *Deriver) DeriveCategoryFromItemName(rawCategory, itemName string) string {
	name := strings.ToLower(strings.TrimSpace(itemName))

	if name != "" && !d.isProcessed(name) {
		for _, o := range nameOverrides {
			if strings.Contains(name, o.keyword) {
				return o.key
			}
		}
	}

	if strings.TrimSpace(rawCategory) == "" && name == "" {
		return "wholesale"
	}
	return Canonicalize(rawCategory).Key
}

func (d *Deriver) isProcessed(loweredName string) bool {
	for _, kw := range d.processedKeywords {
		if strings.Contains(loweredName, kw) {
			return true
		}
	}
	return false
}
