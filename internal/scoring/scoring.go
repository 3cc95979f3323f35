// Package scoring assigns deterministic compatibility scores to catalog
// items and assembled outfits. Weighting scheme: each per-item dimension
// (occasion, style, color, seasonality, warmth, formality) contributes
// 0..1 and the item score is the sum normalized by the number of
// dimensions. The outfit score blends a completeness bonus with the mean
// item score; see completenessWeight.
package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tailora/outfit-agent/internal/brandvoice"
	"github.com/tailora/outfit-agent/internal/request"
	"github.com/tailora/outfit-agent/internal/wardrobe"
)

// completenessWeight is the share of the outfit score reserved for the
// completeness heuristic (shoes + a base layer). The rest goes to the
// mean per-item score.
const completenessWeight = 0.05

// maxReasons caps the reasons attached to one outfit for display.
const maxReasons = 12

var neutrals = map[string]struct{}{
	"black": {}, "white": {}, "gray": {}, "navy": {}, "beige": {}, "brown": {},
}

// ScoreItem scores a single item against the request, returning the score
// in [0,1] and human-readable reasons for any credited dimension.
// Deterministic: repeated calls return identical results.
func ScoreItem(item *wardrobe.Item, req *request.Request) (float64, []string) {
	var reasons []string
	var score, maxScore float64

	// Occasion match.
	maxScore++
	if req.Occasion != "" && item.HasOccasionTag(req.Occasion) {
		score++
		reasons = append(reasons, fmt.Sprintf("Occasion tag match: %s", req.Occasion))
	}

	// Style tag overlap.
	maxScore++
	if len(req.StyleCues) > 0 {
		matched := intersect(item.StyleTags, req.StyleCues)
		score += float64(len(matched)) / float64(len(req.StyleCues))
		if len(matched) > 0 {
			reasons = append(reasons, fmt.Sprintf("Style overlap: %s", strings.Join(matched, ", ")))
		}
	}

	// Color and palette.
	maxScore++
	score += colorPoints(item, req, &reasons)

	// Seasonality.
	maxScore++
	if req.Seasonality != "" && (item.Seasonality == req.Seasonality || item.Seasonality == wardrobe.SeasonAll) {
		score++
		reasons = append(reasons, fmt.Sprintf("Seasonality fit: %s", item.Seasonality))
	}

	// Warmth floor.
	maxScore++
	if req.MinWarmth > 0 && item.Warmth > 0 {
		if item.Warmth >= req.MinWarmth {
			score++
			reasons = append(reasons, fmt.Sprintf("Warmth meets min: %d >= %d", item.Warmth, req.MinWarmth))
		} else {
			score += float64(item.Warmth) / float64(req.MinWarmth)
		}
	}

	// Formality closeness.
	maxScore++
	if req.FormalityTarget > 0 && item.Formality > 0 {
		diff := item.Formality - req.FormalityTarget
		if diff < 0 {
			diff = -diff
		}
		closeness := 1.0 - float64(diff)/4.0
		if closeness < 0 {
			closeness = 0
		}
		score += closeness
		reasons = append(reasons, fmt.Sprintf("Formality: %d vs %d", item.Formality, req.FormalityTarget))
	}

	return score / maxScore, reasons
}

func colorPoints(item *wardrobe.Item, req *request.Request, reasons *[]string) float64 {
	if item.ColorFamily == "" {
		return 0
	}
	for _, avoid := range req.AvoidColors {
		if item.ColorFamily == avoid {
			*reasons = append(*reasons, fmt.Sprintf("Avoid color: %s", item.ColorFamily))
			return 0
		}
	}
	for _, preferred := range req.Colors {
		if item.ColorFamily == preferred {
			*reasons = append(*reasons, fmt.Sprintf("Preferred color: %s", item.ColorFamily))
			return 1
		}
	}
	if req.Palette == "monochrome" || req.Palette == "neutrals" {
		if _, ok := neutrals[item.ColorFamily]; ok {
			*reasons = append(*reasons, "Palette fit (neutral/tonal)")
			return 0.7
		}
	}
	return 0
}

// ScoreOutfit computes the aggregate outfit score in [0,1] and attaches
// the collected reasons to the outfit.
func ScoreOutfit(outfit *wardrobe.Outfit, req *request.Request) float64 {
	if len(outfit.Items) == 0 {
		return 0
	}

	var completeness float64
	if outfit.HasCategory(wardrobe.CategoryShoe) {
		completeness += 0.5
	}
	if outfit.HasCategory(wardrobe.CategoryDress) ||
		(outfit.HasCategory(wardrobe.CategoryTop) && outfit.HasCategory(wardrobe.CategoryBottom)) {
		completeness += 0.5
	}

	var sum float64
	var reasons []string
	for _, item := range outfit.Items {
		s, r := ScoreItem(item, req)
		sum += s
		reasons = append(reasons, r...)
	}
	meta := sum / float64(len(outfit.Items))

	final := completenessWeight*completeness + (1.0-completenessWeight)*meta
	if final < 0 {
		final = 0
	}
	if final > 1 {
		final = 1
	}

	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	outfit.Reasons = reasons

	return final
}

// Rank scores every outfit against the request, biased by the brand voice,
// and returns them ordered by descending score with ties broken by id.
func Rank(outfits *wardrobe.Outfits, req *request.Request, voice *brandvoice.Voice) *wardrobe.Outfits {
	effective := ApplyVoice(req, voice)
	for _, outfit := range outfits.Items {
		outfit.Score = ScoreOutfit(outfit, effective)
	}
	outfits.SortByScore()
	return outfits
}

// ApplyVoice folds the brand voice preferred colors and styles into a copy
// of the request, but only for dimensions the user left open. An explicit
// user preference always wins over brand bias.
func ApplyVoice(req *request.Request, voice *brandvoice.Voice) *request.Request {
	if voice == nil {
		return req
	}
	if len(req.Colors) > 0 && len(req.StyleCues) > 0 {
		return req
	}

	merged := *req
	if len(merged.Colors) == 0 && len(voice.PreferredColors) > 0 {
		merged.Colors = lowerAll(voice.PreferredColors)
	}
	if len(merged.StyleCues) == 0 && len(voice.PreferredStyles) > 0 {
		merged.StyleCues = lowerAll(voice.PreferredStyles)
	}
	return &merged
}

// intersect returns the sorted intersection of two tag lists.
func intersect(a, b []string) []string {
	seen := make(map[string]struct{}, len(a))
	for _, tag := range a {
		seen[tag] = struct{}{}
	}
	var matched []string
	for _, tag := range b {
		if _, ok := seen[tag]; ok {
			matched = append(matched, tag)
		}
	}
	sort.Strings(matched)
	return matched
}

func lowerAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.ToLower(strings.TrimSpace(v)))
	}
	return out
}
