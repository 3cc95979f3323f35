package wardrobe

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"
)

const (
	ItemIDField       = "ID"
	ItemCategoryField = "Category"
	ItemColorField    = "ColorFamily"
)

// Known category slots. Anything else is kept in the catalog but is not
// assigned to an outfit slot.
const (
	CategoryTop       = "top"
	CategoryBottom    = "bottom"
	CategoryDress     = "dress"
	CategoryShoe      = "shoe"
	CategoryOuterwear = "outerwear"
	CategoryAccessory = "accessory"
)

// SeasonAll marks an item wearable in any season.
const SeasonAll = "all"

type Items struct {
	Items []*Item
}

// Item is a single catalog entry. Immutable once loaded.
type Item struct {
	ID           string   `json:"id" csv:"item_id"`
	Name         string   `json:"name" csv:"name"`
	Category     string   `json:"category" csv:"category"`
	Brand        string   `json:"brand" csv:"brand"`
	ColorFamily  string   `json:"color_family" csv:"color_family"`
	Price        float64  `json:"price" csv:"price"`
	StyleTags    []string `json:"style_tags" csv:"style_tags"`
	OccasionTags []string `json:"occasion_tags" csv:"occasion_tags"`
	Seasonality  string   `json:"seasonality" csv:"seasonality"`
	Warmth       int      `json:"warmth" csv:"warmth"`
	Formality    int      `json:"formality" csv:"formality"`
	ImagePath    string   `json:"image_path,omitempty" csv:"image_path"`
}

type ExcludedItems struct {
	Items []*ExcludedItem
}

type ExcludedItem struct {
	ID         string
	Name       string
	Brand      string
	ExcludedAt time.Time
}

func (i *Item) GetStringField(name string) string {
	switch name {
	case ItemIDField:
		return i.ID
	case ItemCategoryField:
		return i.Category
	case ItemColorField:
		return i.ColorFamily

	default:
		return ""
	}
}

// HasStyleTag reports whether the item carries the given style tag.
func (i *Item) HasStyleTag(tag string) bool {
	for _, t := range i.StyleTags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasOccasionTag reports whether the item carries the given occasion tag.
func (i *Item) HasOccasionTag(tag string) bool {
	for _, t := range i.OccasionTags {
		if t == tag {
			return true
		}
	}
	return false
}

func (w *Items) Len() int {
	return len(w.Items)
}

func (w *Items) IDs() []string {
	ids := make([]string, 0, len(w.Items))
	for _, item := range w.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

func (w *Items) FindByID(id string) *Item {
	for _, item := range w.Items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// ByCategory groups items by their category, preserving catalog order
// within each group.
func (w *Items) ByCategory() map[string][]*Item {
	grouped := make(map[string][]*Item)
	for _, item := range w.Items {
		grouped[item.Category] = append(grouped[item.Category], item)
	}
	return grouped
}

// Categories returns the sorted set of categories present in the list.
func (w *Items) Categories() []string {
	seen := make(map[string]struct{})
	for _, item := range w.Items {
		seen[item.Category] = struct{}{}
	}
	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// Exclude removes items whose field value matches one of targets.
// Returns the ids of removed items.
func (w *Items) Exclude(name string, targets []string) []string {
	var excluded []string
	for _, target := range targets {
		for idx, item := range w.Items {
			if item.GetStringField(name) == target {
				w.RemoveByIndex(idx)
				excluded = append(excluded, item.ID)
				break
			}
		}
	}
	return excluded
}

// ExcludeWhere removes every item matching the predicate and returns their ids.
func (w *Items) ExcludeWhere(match func(*Item) bool) []string {
	var excluded []string
	kept := w.Items[:0]
	for _, item := range w.Items {
		if match(item) {
			excluded = append(excluded, item.ID)
			continue
		}
		kept = append(kept, item)
	}
	w.Items = kept
	return excluded
}

// RemoveByIndex removes an item from the list by index. Does not preserve order.
func (w *Items) RemoveByIndex(idx int) {
	w.Items[idx] = w.Items[len(w.Items)-1]
	w.Items = w.Items[:len(w.Items)-1]
}

// ReportByCategory groups a human-readable summary of items per category.
func (w *Items) ReportByCategory() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, item := range w.Items {
		report[item.Category] = append(report[item.Category], map[string]string{
			"id":    item.ID,
			"name":  fmt.Sprintf("%s (%s)", item.Name, item.Brand),
			"color": item.ColorFamily,
			"price": fmt.Sprintf("%.2f", item.Price),
		})
	}
	return report
}

func (w *Items) ToExcluded() *ExcludedItems {
	excluded := &ExcludedItems{}
	for _, item := range w.Items {
		excluded.Items = append(excluded.Items, &ExcludedItem{
			ID:         item.ID,
			Name:       item.Name,
			Brand:      item.Brand,
			ExcludedAt: time.Now().UTC(),
		})
	}
	return excluded
}

func GetExcludedItemsFromFile(path string) (*ExcludedItems, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &ExcludedItems{}, nil
	}

	var excluded ExcludedItems
	if err := json.NewDecoder(file).Decode(&excluded); err != nil {
		return nil, err
	}
	return &excluded, nil
}

func (e *ExcludedItems) Append(s *ExcludedItems) {
	e.Items = append(e.Items, s.Items...)
}

func (e *ExcludedItems) ItemIDs() []string {
	ids := make([]string, 0)
	for _, item := range e.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

func (e *ExcludedItems) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(e); err != nil {
		return err
	}
	return nil
}
