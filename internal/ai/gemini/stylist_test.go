package gemini

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/tailora/outfit-agent/internal/brandvoice"
	"github.com/tailora/outfit-agent/internal/request"
	"github.com/tailora/outfit-agent/internal/wardrobe"
	"go.uber.org/zap"
)

type stubGenerator struct {
	response string
	err      error
	prompt   string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func testOutfit() *wardrobe.Outfit {
	return &wardrobe.Outfit{
		ID:          "outfit_1",
		Description: "Outfit 1 with 2 items",
		Items: []*wardrobe.Item{
			{ID: "top-1", Name: "Tee", Category: wardrobe.CategoryTop},
			{ID: "shoe-1", Name: "Sneakers", Category: wardrobe.CategoryShoe},
		},
	}
}

func TestComposeParsesPlainJSON(t *testing.T) {
	gen := &stubGenerator{response: `{"note": "Keep the layers light and let the sneakers talk."}`}
	stylist := NewStylist(gen, zap.NewNop(), 0, 0)

	note, err := stylist.Compose(context.Background(), brandvoice.Default(), testOutfit(), &request.Request{Occasion: "casual"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if note.Note != "Keep the layers light and let the sneakers talk." {
		t.Fatalf("unexpected note: %q", note.Note)
	}
	if note.Raw != gen.response {
		t.Fatalf("expected the raw response preserved")
	}
}

func TestComposeParsesFencedJSON(t *testing.T) {
	gen := &stubGenerator{response: "```json\n{\"note\": \"Tonal basics, done.\"}\n```"}
	stylist := NewStylist(gen, zap.NewNop(), 0, 0)

	note, err := stylist.Compose(context.Background(), nil, testOutfit(), &request.Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if note.Note != "Tonal basics, done." {
		t.Fatalf("unexpected note: %q", note.Note)
	}
}

func TestComposeInterpolatesPrompt(t *testing.T) {
	gen := &stubGenerator{response: `{"note": "ok"}`}
	stylist := NewStylist(gen, zap.NewNop(), 0, 0)

	voice := &brandvoice.Voice{Name: "Streetlab"}
	if _, err := stylist.Compose(context.Background(), voice, testOutfit(), &request.Request{Occasion: "casual"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(gen.prompt, "{{VOICE_JSON}}") || strings.Contains(gen.prompt, "{{OUTFIT_JSON}}") || strings.Contains(gen.prompt, "{{REQUEST_JSON}}") {
		t.Fatalf("placeholders left in prompt:\n%s", gen.prompt)
	}
	if !strings.Contains(gen.prompt, "Streetlab") {
		t.Fatalf("expected the voice in the prompt")
	}
	if !strings.Contains(gen.prompt, "outfit_1") {
		t.Fatalf("expected the outfit in the prompt")
	}
}

func TestComposeClampsLongNotes(t *testing.T) {
	long := strings.Repeat("layers ", 100)
	gen := &stubGenerator{response: fmt.Sprintf(`{"note": %q}`, long)}
	stylist := NewStylist(gen, zap.NewNop(), 40, 0)

	note, err := stylist.Compose(context.Background(), nil, testOutfit(), &request.Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len([]rune(note.Note)); got > 40 {
		t.Fatalf("expected the note clamped to 40 runes, got %d", got)
	}
}

func TestComposeErrors(t *testing.T) {
	tests := []struct {
		name     string
		response string
		err      error
	}{
		{"generator failure", "", fmt.Errorf("quota exceeded")},
		{"not json", "plain prose, no braces", nil},
		{"empty note", `{"note": ""}`, nil},
		{"missing note", `{"other": "x"}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &stubGenerator{response: tt.response, err: tt.err}
			stylist := NewStylist(gen, zap.NewNop(), 0, 0)

			if _, err := stylist.Compose(context.Background(), nil, testOutfit(), &request.Request{}); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestComposeRequiresOutfit(t *testing.T) {
	stylist := NewStylist(&stubGenerator{}, zap.NewNop(), 0, 0)

	if _, err := stylist.Compose(context.Background(), nil, nil, &request.Request{}); err == nil {
		t.Fatalf("expected an error for a nil outfit")
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", `{"note": "x"}`, `{"note": "x"}`},
		{"fenced", "```json\n{\"note\": \"x\"}\n```", `{"note": "x"}`},
		{"fenced no lang", "```\n{\"note\": \"x\"}\n```", `{"note": "x"}`},
		{"backticks", "`{\"note\": \"x\"}`", `{"note": "x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSON(tt.raw); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
