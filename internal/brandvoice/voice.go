package brandvoice

import "strings"

// Voice is a named set of style guidelines used to bias scoring and to
// shape rendered copy. Immutable once loaded from configuration.
type Voice struct {
	Name             string   `mapstructure:"name" json:"name"`
	Tone             string   `mapstructure:"tone" json:"tone"`
	SignaturePhrases []string `mapstructure:"signature-phrases" json:"signature_phrases"`
	PreferredStyles  []string `mapstructure:"preferred-styles" json:"preferred_styles"`
	PreferredColors  []string `mapstructure:"preferred-colors" json:"preferred_colors"`
	Description      string   `mapstructure:"description" json:"description"`
}

type Voices struct {
	Items []*Voice
}

// Default returns the built-in voice used when the configuration carries none.
func Default() *Voice {
	return &Voice{
		Name:             "YourBrand",
		Tone:             "confident, modern, concise",
		SignaturePhrases: []string{"clean lines", "elevated essentials", "effortless style"},
	}
}

func (v *Voices) Len() int {
	return len(v.Items)
}

// FindByName returns the voice with the given name, matched case-insensitively.
func (v *Voices) FindByName(name string) *Voice {
	for _, voice := range v.Items {
		if strings.EqualFold(voice.Name, name) {
			return voice
		}
	}
	return nil
}

func (v *Voices) Names() []string {
	names := make([]string, 0, len(v.Items))
	for _, voice := range v.Items {
		names = append(names, voice.Name)
	}
	return names
}

// Phrase returns the idx-th signature phrase, or the fallback when the
// voice has no phrase at that position.
func (v *Voice) Phrase(idx int, fallback string) string {
	if idx < 0 || idx >= len(v.SignaturePhrases) {
		return fallback
	}
	if phrase := strings.TrimSpace(v.SignaturePhrases[idx]); phrase != "" {
		return phrase
	}
	return fallback
}
