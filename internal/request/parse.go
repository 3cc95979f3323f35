package request

import (
	"regexp"
	"strconv"
	"strings"
)

// Request is the structured form of a free-text outfit request. All fields
// are best-effort: an empty request is valid and imposes nothing.
type Request struct {
	Occasion        string   `json:"occasion,omitempty"`
	Seasonality     string   `json:"seasonality,omitempty"`
	MinWarmth       int      `json:"min_warmth,omitempty"`
	FormalityTarget int      `json:"formality_target,omitempty"`
	Categories      []string `json:"categories,omitempty"`
	StyleCues       []string `json:"style_cues,omitempty"`
	Palette         string   `json:"palette,omitempty"`
	Colors          []string `json:"colors,omitempty"`
	AvoidColors     []string `json:"avoid_colors,omitempty"`
	Exclusions      []string `json:"exclusions,omitempty"`
	Budget          *Budget  `json:"budget,omitempty"`
	Raw             string   `json:"raw,omitempty"`
}

// Budget is a price range. A zero Min or Max means unbounded on that side.
type Budget struct {
	Min float64 `json:"min,omitempty"`
	Max float64 `json:"max,omitempty"`
}

var (
	spaceRe = regexp.MustCompile(`\s+`)

	budgetRangeRe = regexp.MustCompile(`\$?\s*(\d{2,5})\s*(?:-|to)\s*\$?\s*(\d{2,5})`)
	budgetUnderRe = regexp.MustCompile(`(?:under|below|less than)\s*\$?\s*(\d{2,5})`)
	budgetPlainRe = regexp.MustCompile(`\$\s*(\d{2,5})`)

	tempFahrenheitRe = regexp.MustCompile(`(\d{2,3})\s*°?\s*f\b`)
	tempDegreesRe    = regexp.MustCompile(`(\d{2,3})\s*degrees`)

	avoidPhraseRe = regexp.MustCompile(`(?:avoid|no)\s+([a-z\s]+)`)
)

// Parse extracts a structured Request from free text. It never fails:
// unmatched or empty input yields a neutral request.
func Parse(text string) *Request {
	t := normalize(text)

	req := &Request{
		Occasion:    firstMatch(t, occasionKeywords),
		Seasonality: firstMatch(t, seasonKeywords),
		Palette:     firstMatch(t, paletteKeywords),
		StyleCues:   multiMatch(t, styleKeywords),
		Colors:      multiMatch(t, colorKeywords),
		Exclusions:  multiMatch(t, exclusionKeywords),
		Categories:  []string{},
		Budget:      parseBudget(t),
		Raw:         strings.TrimSpace(text),
	}

	if temp, ok := parseTemperatureF(t); ok {
		req.MinWarmth = temperatureToWarmth(temp)
	}

	req.FormalityTarget = formalityForOccasion(req.Occasion)
	req.AvoidColors = parseAvoidColors(t)

	return req
}

// IsNeutral reports whether the request constrains or biases nothing.
func (r *Request) IsNeutral() bool {
	return r.Occasion == "" && r.Seasonality == "" && r.MinWarmth == 0 &&
		r.FormalityTarget == 0 && len(r.Categories) == 0 && len(r.StyleCues) == 0 &&
		r.Palette == "" && len(r.Colors) == 0 && len(r.AvoidColors) == 0 &&
		len(r.Exclusions) == 0 && r.Budget == nil
}

// ExcludedStyleTags expands exclusion labels into the style tags they forbid.
func (r *Request) ExcludedStyleTags() []string {
	var tags []string
	for _, label := range r.Exclusions {
		tags = append(tags, ExclusionTags[label]...)
	}
	return tags
}

func normalize(text string) string {
	return spaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(text)), " ")
}

func matchAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

func firstMatch(text string, table keywordTable) string {
	for _, entry := range table {
		if matchAny(text, entry.Keywords) {
			return entry.Label
		}
	}
	return ""
}

func multiMatch(text string, table keywordTable) []string {
	matches := []string{}
	for _, entry := range table {
		if matchAny(text, entry.Keywords) {
			matches = append(matches, entry.Label)
		}
	}
	return matches
}

// parseBudget understands "$150", "under $200" and "100-250" / "100 to 250".
func parseBudget(text string) *Budget {
	if m := budgetRangeRe.FindStringSubmatch(text); m != nil {
		return &Budget{Min: atof(m[1]), Max: atof(m[2])}
	}
	if m := budgetUnderRe.FindStringSubmatch(text); m != nil {
		return &Budget{Max: atof(m[1])}
	}
	if m := budgetPlainRe.FindStringSubmatch(text); m != nil {
		return &Budget{Max: atof(m[1])}
	}
	return nil
}

func parseTemperatureF(text string) (int, bool) {
	if m := tempFahrenheitRe.FindStringSubmatch(text); m != nil {
		return atoi(m[1]), true
	}
	if m := tempDegreesRe.FindStringSubmatch(text); m != nil {
		return atoi(m[1]), true
	}
	return 0, false
}

// temperatureToWarmth converts Fahrenheit to a 1-5 warmth floor.
func temperatureToWarmth(tempF int) int {
	switch {
	case tempF <= 35:
		return 5
	case tempF <= 50:
		return 4
	case tempF <= 65:
		return 3
	case tempF <= 80:
		return 2
	default:
		return 1
	}
}

// formalityForOccasion maps an occasion label onto a 1-5 formality target.
// Zero means no target.
func formalityForOccasion(occasion string) int {
	switch occasion {
	case "formal":
		return 5
	case "work", "date":
		return 4
	case "travel", "casual", "outdoors":
		return 2
	default:
		return 0
	}
}

func parseAvoidColors(text string) []string {
	m := avoidPhraseRe.FindStringSubmatch(text)
	if m == nil {
		return []string{}
	}
	return multiMatch(m[1], colorKeywords)
}

// The budget and temperature regexes only capture digit runs, so parse
// errors cannot happen here.
func atof(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func atoi(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}
