package filtering

import (
	"context"
	"fmt"
	"strings"

	"github.com/tailora/outfit-agent/internal/request"
	"github.com/tailora/outfit-agent/internal/wardrobe"
)

type excludedTagsFilter struct {
	tags []string
}

// NewExcludedTags creates a filter that removes items carrying any of the
// excluded style tags (e.g. "heels" for a no-heels request).
func NewExcludedTags(tags []string) Filter {
	return &excludedTagsFilter{tags: tags}
}

func (f *excludedTagsFilter) Name() string { return "excluded_tags" }

func (f *excludedTagsFilter) Disable(string) {}

func (f *excludedTagsFilter) IsEnabled() bool { return true }

func (f *excludedTagsFilter) Apply(_ context.Context, items *wardrobe.Items) (*wardrobe.Items, Step, error) {
	initial := items.Len()
	if len(f.tags) == 0 {
		return items, Step{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	excluded := items.ExcludeWhere(func(item *wardrobe.Item) bool {
		for _, tag := range f.tags {
			if item.HasStyleTag(tag) {
				return true
			}
		}
		return false
	})

	return items, Step{Initial: initial, Dropped: len(excluded), Left: items.Len()}, nil
}

func (f *excludedTagsFilter) Status() Status {
	details := map[string]string{}
	if len(f.tags) > 0 {
		details["tags"] = strings.Join(f.tags, ",")
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}

type budgetFilter struct {
	budget   *request.Budget
	disabled bool
	reason   string
}

// NewBudget creates a filter that removes items priced above the budget
// ceiling. The filter starts disabled when the request carries no budget.
func NewBudget(budget *request.Budget) Filter {
	f := &budgetFilter{budget: budget}
	if budget == nil || budget.Max <= 0 {
		f.Disable("no budget in request")
	}
	return f
}

func (f *budgetFilter) Name() string { return "budget" }

func (f *budgetFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *budgetFilter) IsEnabled() bool { return !f.disabled }

func (f *budgetFilter) Apply(_ context.Context, items *wardrobe.Items) (*wardrobe.Items, Step, error) {
	initial := items.Len()

	max := f.budget.Max
	excluded := items.ExcludeWhere(func(item *wardrobe.Item) bool {
		return item.Price > max
	})

	return items, Step{Initial: initial, Dropped: len(excluded), Left: items.Len()}, nil
}

func (f *budgetFilter) Status() Status {
	details := map[string]string{}
	if f.budget != nil {
		details["max"] = fmt.Sprintf("%.2f", f.budget.Max)
		if f.budget.Min > 0 {
			details["min"] = fmt.Sprintf("%.2f", f.budget.Min)
		}
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}

type categoriesFilter struct {
	categories []string
}

// NewCategories creates a filter that keeps only the requested categories.
// An empty category list keeps everything.
func NewCategories(categories []string) Filter {
	return &categoriesFilter{categories: categories}
}

func (f *categoriesFilter) Name() string { return "categories" }

func (f *categoriesFilter) Disable(string) {}

func (f *categoriesFilter) IsEnabled() bool { return true }

func (f *categoriesFilter) Apply(_ context.Context, items *wardrobe.Items) (*wardrobe.Items, Step, error) {
	initial := items.Len()
	if len(f.categories) == 0 {
		return items, Step{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	wanted := make(map[string]struct{}, len(f.categories))
	for _, category := range f.categories {
		wanted[strings.ToLower(category)] = struct{}{}
	}

	excluded := items.ExcludeWhere(func(item *wardrobe.Item) bool {
		_, ok := wanted[item.Category]
		return !ok
	})

	return items, Step{Initial: initial, Dropped: len(excluded), Left: items.Len()}, nil
}

func (f *categoriesFilter) Status() Status {
	details := map[string]string{}
	if len(f.categories) > 0 {
		details["categories"] = strings.Join(f.categories, ",")
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}

type excludeFileFilter struct {
	path string
}

// NewExcludeFile creates a filter that removes items listed in the exclude file.
func NewExcludeFile(path string) Filter {
	return &excludeFileFilter{path: strings.TrimSpace(path)}
}

func (f *excludeFileFilter) Name() string { return "exclude_file" }

func (f *excludeFileFilter) Disable(string) {}

func (f *excludeFileFilter) IsEnabled() bool { return true }

func (f *excludeFileFilter) Apply(_ context.Context, items *wardrobe.Items) (*wardrobe.Items, Step, error) {
	initial := items.Len()
	if f.path == "" {
		return items, Step{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	excluded, err := wardrobe.GetExcludedItemsFromFile(f.path)
	if err != nil {
		return items, Step{}, fmt.Errorf("getting excluded items from file: %w", err)
	}

	removed := items.Exclude(wardrobe.ItemIDField, excluded.ItemIDs())

	return items, Step{Initial: initial, Dropped: len(removed), Left: items.Len()}, nil
}

func (f *excludeFileFilter) Status() Status {
	details := map[string]string{}
	if f.path != "" {
		details["path"] = f.path
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}
