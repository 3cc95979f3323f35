// Package render turns assembled outfits into display-ready structures.
// Pure formatting, no business logic.
package render

import (
	"fmt"
	"strings"

	"github.com/tailora/outfit-agent/internal/brandvoice"
	"github.com/tailora/outfit-agent/internal/request"
	"github.com/tailora/outfit-agent/internal/wardrobe"
)

// ItemView is a single item prepared for display.
type ItemView struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Price string `json:"price"`
	Image string `json:"image,omitempty"`
}

// OutfitView is an outfit prepared for display.
type OutfitView struct {
	ID      string     `json:"id"`
	Opener  string     `json:"opener"`
	Title   string     `json:"title"`
	Items   []ItemView `json:"items"`
	Reasons []string   `json:"reasons,omitempty"`
	Summary string     `json:"summary"`
	Score   string     `json:"score"`
	Note    string     `json:"note,omitempty"`
}

// Outfit builds the display structure for one outfit.
func Outfit(outfit *wardrobe.Outfit, req *request.Request, voice *brandvoice.Voice) OutfitView {
	view := OutfitView{
		ID:      outfit.ID,
		Opener:  opener(req, voice),
		Title:   outfit.Description,
		Reasons: reasons(outfit, req),
		Summary: Summary(outfit),
		Score:   fmt.Sprintf("%.2f", outfit.Score),
	}

	for _, item := range outfit.Items {
		view.Items = append(view.Items, ItemView{
			ID:    item.ID,
			Label: fmt.Sprintf("%s (%s, %s, $%.2f)", item.Name, item.Brand, item.ColorFamily, item.Price),
			Price: fmt.Sprintf("$%.2f", item.Price),
			Image: item.ImagePath,
		})
	}

	return view
}

// Text flattens a view into a multi-line description for the terminal.
func Text(view OutfitView) string {
	var b strings.Builder

	b.WriteString(view.Opener)
	b.WriteString("\n\n")
	b.WriteString(view.Title)
	b.WriteString("\n\nItems:\n")
	for _, item := range view.Items {
		fmt.Fprintf(&b, "- %s\n", item.Label)
	}

	if len(view.Reasons) > 0 {
		b.WriteString("\nWhy this works:\n")
		for _, reason := range view.Reasons {
			fmt.Fprintf(&b, "- %s\n", reason)
		}
	}

	if view.Note != "" {
		fmt.Fprintf(&b, "\nStylist note: %s\n", view.Note)
	}

	fmt.Fprintf(&b, "\n%s\nScore: %s", view.Summary, view.Score)

	return b.String()
}

// Summary produces a one-line outfit summary: item count, categories, total price.
func Summary(outfit *wardrobe.Outfit) string {
	if len(outfit.Items) == 0 {
		return "No items"
	}

	summary := fmt.Sprintf("%d items", len(outfit.Items))
	if categories := outfit.Categories(); len(categories) > 0 {
		summary += fmt.Sprintf(" (%s)", strings.Join(categories, ", "))
	}
	summary += fmt.Sprintf(" - $%.2f", outfit.TotalPrice())

	return summary
}

func opener(req *request.Request, voice *brandvoice.Voice) string {
	if voice == nil {
		voice = brandvoice.Default()
	}

	occasion := req.Occasion
	if occasion == "" {
		occasion = "the moment"
	}
	seasonality := req.Seasonality
	if seasonality == "" {
		seasonality = "all-seasons"
	}

	first := voice.Phrase(0, "clean lines")
	last := voice.Phrase(2, "effortless style")

	return fmt.Sprintf("%s meet %s - built for %s in %s.", title(first), last, occasion, seasonality)
}

// reasons lists request-derived selling points followed by scorer reasons.
func reasons(outfit *wardrobe.Outfit, req *request.Request) []string {
	var out []string

	if req.Occasion != "" {
		out = append(out, fmt.Sprintf("Aligned to occasion: %s", req.Occasion))
	}
	if req.Seasonality != "" {
		out = append(out, fmt.Sprintf("Season-ready for %s", req.Seasonality))
	}
	if req.FormalityTarget > 0 {
		out = append(out, fmt.Sprintf("Formality targeted around %d/5", req.FormalityTarget))
	}
	if len(req.Colors) > 0 {
		out = append(out, fmt.Sprintf("Color direction: %s", strings.Join(req.Colors, ", ")))
	}

	out = append(out, outfit.Reasons...)
	return out
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
