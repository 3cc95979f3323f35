package request

import (
	"reflect"
	"testing"
)

func TestParseOccasions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		occasion  string
		formality int
	}{
		{
			name:      "casual weekend",
			input:     "I need a casual outfit for the weekend",
			occasion:  "casual",
			formality: 2,
		},
		{
			name:      "business meeting maps to work",
			input:     "Create an outfit for a business meeting",
			occasion:  "work",
			formality: 4,
		},
		{
			name:      "gala is formal",
			input:     "black tie gala tonight",
			occasion:  "formal",
			formality: 5,
		},
		{
			name:      "airport run",
			input:     "something comfy for the airport",
			occasion:  "travel",
			formality: 2,
		},
		{
			name:      "no occasion",
			input:     "something nice",
			occasion:  "",
			formality: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := Parse(tt.input)
			if req.Occasion != tt.occasion {
				t.Fatalf("expected occasion %q, got %q", tt.occasion, req.Occasion)
			}
			if req.FormalityTarget != tt.formality {
				t.Fatalf("expected formality %d, got %d", tt.formality, req.FormalityTarget)
			}
		})
	}
}

func TestParseBudget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		budget *Budget
	}{
		{
			name:   "range with dollars",
			input:  "an outfit for $100-$250",
			budget: &Budget{Min: 100, Max: 250},
		},
		{
			name:   "range with to",
			input:  "somewhere around 100 to 250",
			budget: &Budget{Min: 100, Max: 250},
		},
		{
			name:   "under",
			input:  "a work outfit under $200",
			budget: &Budget{Max: 200},
		},
		{
			name:   "single amount",
			input:  "keep it at $150",
			budget: &Budget{Max: 150},
		},
		{
			name:   "no budget",
			input:  "a casual outfit",
			budget: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := Parse(tt.input)
			if !reflect.DeepEqual(req.Budget, tt.budget) {
				t.Fatalf("expected budget %+v, got %+v", tt.budget, req.Budget)
			}
		})
	}
}

func TestParseTemperatureToWarmth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		warmth int
	}{
		{"freezing", "it is 30F outside", 5},
		{"cool", "around 45 degrees today", 4},
		{"mild", "65F and sunny", 3},
		{"warm", "about 75 degrees", 2},
		{"hot", "a scorching 95F", 1},
		{"no temperature", "a summer outfit", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := Parse(tt.input)
			if req.MinWarmth != tt.warmth {
				t.Fatalf("expected warmth %d, got %d", tt.warmth, req.MinWarmth)
			}
		})
	}
}

func TestParseColorsAndAvoid(t *testing.T) {
	t.Parallel()

	req := Parse("a party outfit in black and white, please avoid red")

	hasColor := func(colors []string, want string) bool {
		for _, c := range colors {
			if c == want {
				return true
			}
		}
		return false
	}

	if !hasColor(req.Colors, "black") || !hasColor(req.Colors, "white") {
		t.Fatalf("expected black and white in colors, got %v", req.Colors)
	}
	if !hasColor(req.AvoidColors, "red") {
		t.Fatalf("expected red in avoid colors, got %v", req.AvoidColors)
	}
}

func TestParseExclusions(t *testing.T) {
	t.Parallel()

	req := Parse("date night outfit, no heels and no leather")

	if len(req.Exclusions) != 2 {
		t.Fatalf("expected 2 exclusions, got %v", req.Exclusions)
	}

	tags := req.ExcludedStyleTags()
	want := map[string]bool{"heels": true, "leather": true}
	for _, tag := range tags {
		if !want[tag] {
			t.Fatalf("unexpected excluded tag %q", tag)
		}
	}
	if len(tags) != 2 {
		t.Fatalf("expected 2 excluded tags, got %v", tags)
	}
}

func TestParseEmptyInputIsNeutral(t *testing.T) {
	t.Parallel()

	req := Parse("")

	if req == nil {
		t.Fatalf("expected a request, got nil")
	}
	if !req.IsNeutral() {
		t.Fatalf("expected a neutral request, got %+v", req)
	}
	if req.StyleCues == nil || req.Colors == nil || req.Exclusions == nil || req.Categories == nil {
		t.Fatalf("expected empty slices, not nil fields: %+v", req)
	}
}

func TestParseStyleCues(t *testing.T) {
	t.Parallel()

	req := Parse("minimal tailored look with a blazer")

	want := []string{"minimal", "tailored"}
	if !reflect.DeepEqual(req.StyleCues, want) {
		t.Fatalf("expected style cues %v, got %v", want, req.StyleCues)
	}
}
