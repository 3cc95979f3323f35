package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/tailora/outfit-agent/internal/ai"
	"github.com/tailora/outfit-agent/internal/brandvoice"
	"github.com/tailora/outfit-agent/internal/request"
	"github.com/tailora/outfit-agent/internal/utils"
	"github.com/tailora/outfit-agent/internal/wardrobe"
	"go.uber.org/zap"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Stylist asks Gemini for a short on-brand styling note per outfit.
type Stylist struct {
	generator  contentGenerator
	logger     *zap.Logger
	maxNoteLen int
	maxLogLen  int
}

//go:embed prompt.md
var promptTemplate string

const (
	defaultMaxLogLength = 200
	defaultMaxNoteLen   = 280
)

func NewStylist(generator contentGenerator, logger *zap.Logger, maxNoteLen, maxLogLength int) *Stylist {
	if maxNoteLen <= 0 {
		maxNoteLen = defaultMaxNoteLen
	}
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Stylist{
		generator:  generator,
		logger:     logger,
		maxNoteLen: maxNoteLen,
		maxLogLen:  maxLogLength,
	}
}

// Compose builds the prompt from the voice, outfit and request, and parses
// the model response into a StyleNote.
func (s *Stylist) Compose(ctx context.Context, voice *brandvoice.Voice, outfit *wardrobe.Outfit, req *request.Request) (*ai.StyleNote, error) {
	if outfit == nil {
		return nil, fmt.Errorf("outfit is required")
	}
	if voice == nil {
		voice = brandvoice.Default()
	}

	voiceJSON, err := json.MarshalIndent(voice, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal voice payload: %w", err)
	}

	outfitJSON, err := json.MarshalIndent(outfit, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal outfit payload: %w", err)
	}

	reqJSON, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal request payload: %w", err)
	}

	prompt := buildPrompt(string(voiceJSON), string(outfitJSON), string(reqJSON))

	s.logger.Debug("gemini stylist request",
		zap.String("outfit_id", outfit.ID),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, s.maxLogLen)),
	)

	raw, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("gemini stylist response",
		zap.String("outfit_id", outfit.ID),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, s.maxLogLen)),
	)

	note, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	if runes := []rune(note.Note); len(runes) > s.maxNoteLen {
		note.Note = strings.TrimSpace(string(runes[:s.maxNoteLen]))
	}

	note.Raw = raw
	return note, nil
}

func buildPrompt(voiceJSON, outfitJSON, requestJSON string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Brand voice:\n{{VOICE_JSON}}\n\nOutfit:\n{{OUTFIT_JSON}}\n\nRequest:\n{{REQUEST_JSON}}\n\nJSON Response:"
	}
	prompt := strings.ReplaceAll(template, "{{VOICE_JSON}}", voiceJSON)
	prompt = strings.ReplaceAll(prompt, "{{OUTFIT_JSON}}", outfitJSON)
	prompt = strings.ReplaceAll(prompt, "{{REQUEST_JSON}}", requestJSON)
	return prompt
}

func parseResponse(raw string) (*ai.StyleNote, error) {
	cleaned := extractJSON(strings.TrimSpace(raw))

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	note := coerceString(data["note"])
	if note == "" {
		return nil, fmt.Errorf("gemini response carries no note")
	}

	return &ai.StyleNote{Note: note}, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case fmt.Stringer:
		return strings.TrimSpace(val.String())
	default:
		if v == nil {
			return ""
		}
		bytes, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(bytes)
	}
}
