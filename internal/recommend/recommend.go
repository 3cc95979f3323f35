// Package recommend wires the full pipeline behind the UI boundary:
// free text in, ranked outfits out.
package recommend

import (
	"context"
	"fmt"

	"github.com/tailora/outfit-agent/internal/assemble"
	"github.com/tailora/outfit-agent/internal/brandvoice"
	"github.com/tailora/outfit-agent/internal/filtering"
	"github.com/tailora/outfit-agent/internal/request"
	"github.com/tailora/outfit-agent/internal/scoring"
	"github.com/tailora/outfit-agent/internal/wardrobe"
	"go.uber.org/zap"
)

// Recommender holds the read-only stores the pipeline consults.
// Safe to reuse across requests; nothing here is mutated per call.
type Recommender struct {
	Catalog     *wardrobe.Items
	Voice       *brandvoice.Voice
	ExcludeFile string
	MaxOutfits  int
	Logger      *zap.Logger
}

// Result carries the parsed request and the ranked outfits for one call.
type Result struct {
	Request *request.Request
	Outfits *wardrobe.Outfits
}

// Recommend runs extract -> filter -> assemble -> rank over the catalog.
// An empty outfit list is a valid result, surfaced to the UI as
// "no recommendations".
func (r *Recommender) Recommend(ctx context.Context, text string) (*Result, error) {
	req := request.Parse(text)

	if r.Logger != nil {
		r.Logger.Debug("parsed request",
			zap.String("occasion", req.Occasion),
			zap.String("seasonality", req.Seasonality),
			zap.Strings("style_cues", req.StyleCues),
			zap.Strings("colors", req.Colors),
			zap.Strings("exclusions", req.Exclusions),
		)
	}

	// Work on a copy so filters never shrink the shared catalog.
	candidates := &wardrobe.Items{Items: append([]*wardrobe.Item(nil), r.Catalog.Items...)}

	steps := []filtering.Filter{
		filtering.NewExcludedTags(req.ExcludedStyleTags()),
		filtering.NewCategories(req.Categories),
		filtering.NewBudget(req.Budget),
		filtering.NewExcludeFile(r.ExcludeFile),
	}

	filtered, err := filtering.New(steps, r.Logger).RunFilters(ctx, candidates)
	if err != nil {
		return nil, fmt.Errorf("filtering: %w", err)
	}

	outfits := assemble.Build(filtered, req, r.MaxOutfits)
	scoring.Rank(outfits, req, r.Voice)

	return &Result{Request: req, Outfits: outfits}, nil
}
