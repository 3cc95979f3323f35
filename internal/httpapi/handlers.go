package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tailora/outfit-agent/internal/ai"
	"github.com/tailora/outfit-agent/internal/demo"
	"github.com/tailora/outfit-agent/internal/recommend"
	"github.com/tailora/outfit-agent/internal/render"
)

// Handlers holds the dependencies of the HTTP endpoints.
type Handlers struct {
	logger  *zap.Logger
	rec     *recommend.Recommender
	stylist ai.Stylist
}

// NewHandlers creates the handler set. stylist may be nil; outfits are then
// rendered without AI notes.
func NewHandlers(logger *zap.Logger, rec *recommend.Recommender, stylist ai.Stylist) *Handlers {
	return &Handlers{
		logger:  logger,
		rec:     rec,
		stylist: stylist,
	}
}

// Recommend handles POST /api/recommend.
func (h *Handlers) Recommend(c *gin.Context) {
	var req struct {
		Text  string `json:"text" binding:"required"`
		Limit int    `json:"limit"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid recommend request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	requestID := uuid.NewString()
	logger := h.logger.With(zap.String("request_id", requestID))

	result, err := h.rec.Recommend(c.Request.Context(), req.Text)
	if err != nil {
		logger.Error("recommendation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build recommendations"})
		return
	}

	outfits := result.Outfits.Items
	if req.Limit > 0 && req.Limit < len(outfits) {
		outfits = outfits[:req.Limit]
	}

	views := make([]render.OutfitView, 0, len(outfits))
	for _, outfit := range outfits {
		view := render.Outfit(outfit, result.Request, h.rec.Voice)
		if h.stylist != nil {
			if note, err := h.stylist.Compose(c.Request.Context(), h.rec.Voice, outfit, result.Request); err != nil {
				logger.Warn("stylist note failed", zap.String("outfit_id", outfit.ID), zap.Error(err))
			} else {
				view.Note = note.Note
			}
		}
		views = append(views, view)
	}

	logger.Info("recommendations built",
		zap.String("occasion", result.Request.Occasion),
		zap.Int("count", len(views)),
	)

	c.JSON(http.StatusOK, gin.H{
		"request_id": requestID,
		"request":    result.Request,
		"outfits":    views,
		"count":      len(views),
	})
}

// Prompts handles GET /api/prompts.
func (h *Handlers) Prompts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"prompts": demo.Prompts()})
}

// Catalog handles GET /api/catalog.
func (h *Handlers) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items":      h.rec.Catalog.Len(),
		"categories": h.rec.Catalog.Categories(),
	})
}
