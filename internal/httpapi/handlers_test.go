package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tailora/outfit-agent/internal/ai"
	"github.com/tailora/outfit-agent/internal/brandvoice"
	"github.com/tailora/outfit-agent/internal/recommend"
	"github.com/tailora/outfit-agent/internal/request"
	"github.com/tailora/outfit-agent/internal/wardrobe"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubStylist struct {
	note string
	err  error
}

func (s *stubStylist) Compose(context.Context, *brandvoice.Voice, *wardrobe.Outfit, *request.Request) (*ai.StyleNote, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &ai.StyleNote{Note: s.note}, nil
}

func testRecommender() *recommend.Recommender {
	return &recommend.Recommender{
		Catalog: &wardrobe.Items{Items: []*wardrobe.Item{
			{ID: "top-1", Name: "Tee", Category: wardrobe.CategoryTop, ColorFamily: "gray", Price: 24,
				StyleTags: []string{"casual"}, OccasionTags: []string{"casual"}, Seasonality: wardrobe.SeasonAll, Warmth: 1, Formality: 1},
			{ID: "bottom-1", Name: "Jeans", Category: wardrobe.CategoryBottom, ColorFamily: "blue", Price: 88,
				StyleTags: []string{"casual"}, OccasionTags: []string{"casual"}, Seasonality: wardrobe.SeasonAll, Warmth: 3, Formality: 2},
			{ID: "shoe-1", Name: "Sneakers", Category: wardrobe.CategoryShoe, ColorFamily: "white", Price: 85,
				StyleTags: []string{"casual"}, OccasionTags: []string{"casual"}, Seasonality: wardrobe.SeasonAll, Warmth: 2, Formality: 2},
		}},
		Voice:      brandvoice.Default(),
		MaxOutfits: 3,
		Logger:     zap.NewNop(),
	}
}

func newTestRouter(stylist ai.Stylist) *gin.Engine {
	logger := zap.NewNop()
	return NewRouter(logger, NewHandlers(logger, testRecommender(), stylist))
}

func TestRecommendEndpoint(t *testing.T) {
	router := newTestRouter(nil)

	body := `{"text": "a casual outfit for the weekend"}`
	req := httptest.NewRequest(http.MethodPost, "/api/recommend", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		RequestID string `json:"request_id"`
		Count     int    `json:"count"`
		Outfits   []struct {
			ID    string `json:"id"`
			Items []struct {
				ID string `json:"id"`
			} `json:"items"`
			Note string `json:"note"`
		} `json:"outfits"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if resp.RequestID == "" {
		t.Fatalf("expected a request id")
	}
	if resp.Count == 0 || len(resp.Outfits) != resp.Count {
		t.Fatalf("unexpected outfit count: %+v", resp)
	}
	if len(resp.Outfits[0].Items) == 0 {
		t.Fatalf("expected items in the first outfit")
	}
	if resp.Outfits[0].Note != "" {
		t.Fatalf("did not expect a stylist note without a stylist")
	}
}

func TestRecommendEndpointLimit(t *testing.T) {
	router := newTestRouter(nil)

	body := `{"text": "a casual outfit", "limit": 1}`
	req := httptest.NewRequest(http.MethodPost, "/api/recommend", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Count != 1 {
		t.Fatalf("expected 1 outfit, got %d", resp.Count)
	}
}

func TestRecommendEndpointBadRequest(t *testing.T) {
	router := newTestRouter(nil)

	tests := []struct {
		name string
		body string
	}{
		{"not json", "not json at all"},
		{"missing text", `{"limit": 2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/recommend", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestRecommendEndpointWithStylist(t *testing.T) {
	router := newTestRouter(&stubStylist{note: "Roll the cuffs once."})

	body := `{"text": "a casual outfit", "limit": 1}`
	req := httptest.NewRequest(http.MethodPost, "/api/recommend", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Roll the cuffs once.") {
		t.Fatalf("expected the stylist note in the response: %s", w.Body.String())
	}
}

func TestPromptsEndpoint(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/prompts", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Prompts []string `json:"prompts"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Prompts) == 0 {
		t.Fatalf("expected demo prompts")
	}
}

func TestCatalogEndpoint(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Items      int      `json:"items"`
		Categories []string `json:"categories"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Items != 3 || len(resp.Categories) != 3 {
		t.Fatalf("unexpected catalog summary: %+v", resp)
	}
}
