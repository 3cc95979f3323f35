// Package assemble builds candidate outfits from catalog items by filling
// category slots: a base layer (top+bottom, or a dress), shoes, outerwear
// when the request calls for warmth, and an occasional accessory. The
// candidate count is bounded, scoring and ranking happen elsewhere.
package assemble

import (
	"fmt"
	"strings"

	"github.com/tailora/outfit-agent/internal/request"
	"github.com/tailora/outfit-agent/internal/wardrobe"
)

// DefaultMaxOutfits bounds candidate generation when the caller does not.
const DefaultMaxOutfits = 5

// warmthOuterwearFloor is the requested warmth at which outerwear becomes
// part of the base slots.
const warmthOuterwearFloor = 4

// Build assembles up to maxOutfits candidate outfits. An empty item list,
// or one without base items, yields an empty result; that is a valid
// "no recommendations" outcome, not an error.
func Build(items *wardrobe.Items, req *request.Request, maxOutfits int) *wardrobe.Outfits {
	outfits := &wardrobe.Outfits{}
	if maxOutfits <= 0 {
		maxOutfits = DefaultMaxOutfits
	}
	if items == nil || items.Len() == 0 {
		return outfits
	}

	grouped := items.ByCategory()
	tops := grouped[wardrobe.CategoryTop]
	bottoms := grouped[wardrobe.CategoryBottom]
	dresses := grouped[wardrobe.CategoryDress]
	shoes := grouped[wardrobe.CategoryShoe]
	outerwear := grouped[wardrobe.CategoryOuterwear]
	accessories := grouped[wardrobe.CategoryAccessory]

	needsOuterwear := req.Seasonality == "winter" || req.MinWarmth >= warmthOuterwearFloor

	usedTops := make(map[string]bool)
	usedShoes := make(map[string]bool)
	usedAccessories := make(map[string]bool)
	seen := make(map[string]bool)

	for i := 0; i < maxOutfits; i++ {
		var outfitItems []*wardrobe.Item

		switch {
		case len(tops) > 0 && len(bottoms) > 0:
			outfitItems = append(outfitItems, rotate(tops, usedTops, i))
			outfitItems = append(outfitItems, bottoms[i%len(bottoms)])
		case len(dresses) > 0:
			outfitItems = append(outfitItems, dresses[i%len(dresses)])
		case len(tops) > 0:
			outfitItems = append(outfitItems, tops[i%len(tops)])
		default:
			return outfits
		}

		if needsOuterwear && len(outerwear) > 0 {
			outfitItems = append(outfitItems, outerwear[i%len(outerwear)])
		}

		if len(shoes) > 0 {
			outfitItems = append(outfitItems, rotate(shoes, usedShoes, i))
		}

		// At most one accessory, and only on every other outfit.
		if len(accessories) > 0 && i%2 == 0 {
			outfitItems = append(outfitItems, rotate(accessories, usedAccessories, i))
		}

		sig := signature(outfitItems)
		if seen[sig] {
			continue
		}
		seen[sig] = true

		count := outfits.Len() + 1
		outfits.Items = append(outfits.Items, &wardrobe.Outfit{
			ID:          fmt.Sprintf("outfit_%d", count),
			Items:       outfitItems,
			Description: fmt.Sprintf("Outfit %d with %d items", count, len(outfitItems)),
		})
	}

	return outfits
}

// rotate picks the first unused item, falling back to round-robin once
// every item has been used.
func rotate(items []*wardrobe.Item, used map[string]bool, i int) *wardrobe.Item {
	for _, item := range items {
		if !used[item.ID] {
			used[item.ID] = true
			return item
		}
	}
	return items[i%len(items)]
}

func signature(items []*wardrobe.Item) string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return strings.Join(ids, "+")
}
