package ai

import (
	"context"

	"github.com/tailora/outfit-agent/internal/brandvoice"
	"github.com/tailora/outfit-agent/internal/request"
	"github.com/tailora/outfit-agent/internal/wardrobe"
)

// StyleNote is a short piece of on-brand copy for one outfit.
type StyleNote struct {
	Note string
	Raw  string
}

// Stylist produces brand-voiced styling notes. Implementations may call an
// external model; the pipeline treats failures as cosmetic and falls back
// to the deterministic renderer output.
type Stylist interface {
	Compose(ctx context.Context, voice *brandvoice.Voice, outfit *wardrobe.Outfit, req *request.Request) (*StyleNote, error)
}
