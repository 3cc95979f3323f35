package wardrobe

import (
	"path/filepath"
	"testing"
)

func testItems() *Items {
	return &Items{Items: []*Item{
		{ID: "top-1", Name: "Tee", Category: CategoryTop, Brand: "A", ColorFamily: "white", Price: 20, StyleTags: []string{"casual"}},
		{ID: "bottom-1", Name: "Jeans", Category: CategoryBottom, Brand: "B", ColorFamily: "blue", Price: 60, StyleTags: []string{"casual", "denim"}},
		{ID: "shoe-1", Name: "Heels", Category: CategoryShoe, Brand: "C", ColorFamily: "black", Price: 110, StyleTags: []string{"heels"}},
	}}
}

func TestExcludeByID(t *testing.T) {
	items := testItems()

	excluded := items.Exclude(ItemIDField, []string{"bottom-1", "missing"})

	if len(excluded) != 1 || excluded[0] != "bottom-1" {
		t.Fatalf("expected to exclude bottom-1, got %v", excluded)
	}
	if items.Len() != 2 {
		t.Fatalf("expected 2 items left, got %d", items.Len())
	}
	if items.FindByID("bottom-1") != nil {
		t.Fatalf("bottom-1 should be gone")
	}
}

func TestExcludeWhere(t *testing.T) {
	items := testItems()

	excluded := items.ExcludeWhere(func(item *Item) bool {
		return item.HasStyleTag("casual")
	})

	if len(excluded) != 2 {
		t.Fatalf("expected 2 excluded, got %v", excluded)
	}
	if items.Len() != 1 || items.Items[0].ID != "shoe-1" {
		t.Fatalf("expected only shoe-1 left, got %v", items.IDs())
	}
}

func TestByCategoryAndCategories(t *testing.T) {
	items := testItems()

	grouped := items.ByCategory()
	if len(grouped[CategoryTop]) != 1 || len(grouped[CategoryBottom]) != 1 || len(grouped[CategoryShoe]) != 1 {
		t.Fatalf("unexpected grouping: %v", grouped)
	}

	categories := items.Categories()
	want := []string{"bottom", "shoe", "top"}
	if len(categories) != len(want) {
		t.Fatalf("expected %v, got %v", want, categories)
	}
	for i, category := range want {
		if categories[i] != category {
			t.Fatalf("expected %v, got %v", want, categories)
		}
	}
}

func TestReportByCategory(t *testing.T) {
	items := testItems()

	report := items.ReportByCategory()

	entries, ok := report[CategoryShoe]
	if !ok {
		t.Fatalf("expected shoe key in report")
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0]["name"] != "Heels (C)" {
		t.Fatalf("unexpected name: %q", entries[0]["name"])
	}
	if entries[0]["price"] != "110.00" {
		t.Fatalf("unexpected price: %q", entries[0]["price"])
	}
}

func TestExcludedItemsRoundTrip(t *testing.T) {
	items := testItems()
	path := filepath.Join(t.TempDir(), "excluded.json")

	excluded := items.ToExcluded()
	if err := excluded.ToFile(path); err != nil {
		t.Fatalf("writing exclude file: %v", err)
	}

	loaded, err := GetExcludedItemsFromFile(path)
	if err != nil {
		t.Fatalf("reading exclude file: %v", err)
	}

	ids := loaded.ItemIDs()
	if len(ids) != 3 {
		t.Fatalf("expected 3 ids, got %v", ids)
	}

	loaded.Append(&ExcludedItems{Items: []*ExcludedItem{{ID: "extra"}}})
	if len(loaded.ItemIDs()) != 4 {
		t.Fatalf("append did not grow the list")
	}
}

func TestOutfitHelpers(t *testing.T) {
	items := testItems()
	outfit := &Outfit{ID: "outfit_1", Items: items.Items}

	if got := outfit.TotalPrice(); got != 190 {
		t.Fatalf("expected total price 190, got %v", got)
	}
	if !outfit.HasCategory(CategoryShoe) {
		t.Fatalf("expected shoe category")
	}
	if outfit.HasCategory(CategoryDress) {
		t.Fatalf("did not expect dress category")
	}
}

func TestOutfitsSortByScore(t *testing.T) {
	outfits := &Outfits{Items: []*Outfit{
		{ID: "outfit_2", Score: 0.5},
		{ID: "outfit_3", Score: 0.9},
		{ID: "outfit_1", Score: 0.5},
	}}

	outfits.SortByScore()

	got := []string{outfits.Items[0].ID, outfits.Items[1].ID, outfits.Items[2].ID}
	want := []string{"outfit_3", "outfit_1", "outfit_2"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}
