package wardrobe

import (
	"encoding/json"
	"os"
	"sort"
)

// Outfit is a combination of items, at most one per category slot,
// with an aggregate compatibility score assigned by the scorer.
type Outfit struct {
	ID          string   `json:"id"`
	Items       []*Item  `json:"items"`
	Description string   `json:"description"`
	Score       float64  `json:"score"`
	Reasons     []string `json:"reasons,omitempty"`
}

type Outfits struct {
	Items []*Outfit
}

func (o *Outfits) Len() int {
	return len(o.Items)
}

func (o *Outfit) TotalPrice() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Price
	}
	return total
}

// Categories returns the sorted set of categories filled by the outfit.
func (o *Outfit) Categories() []string {
	seen := make(map[string]struct{})
	for _, item := range o.Items {
		seen[item.Category] = struct{}{}
	}
	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// HasCategory reports whether some item in the outfit fills the category.
func (o *Outfit) HasCategory(category string) bool {
	for _, item := range o.Items {
		if item.Category == category {
			return true
		}
	}
	return false
}

// AllItems flattens the items of every outfit into one list, deduplicated by id.
func (o *Outfits) AllItems() *Items {
	seen := make(map[string]struct{})
	items := &Items{}
	for _, outfit := range o.Items {
		for _, item := range outfit.Items {
			if _, ok := seen[item.ID]; ok {
				continue
			}
			seen[item.ID] = struct{}{}
			items.Items = append(items.Items, item)
		}
	}
	return items
}

// SortByScore orders outfits by descending score, ties broken by id.
func (o *Outfits) SortByScore() {
	sort.SliceStable(o.Items, func(i, j int) bool {
		if o.Items[i].Score != o.Items[j].Score {
			return o.Items[i].Score > o.Items[j].Score
		}
		return o.Items[i].ID < o.Items[j].ID
	})
}

func (o *Outfits) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "outfits_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(o); err != nil {
		return "", err
	}
	return file.Name(), nil
}
