// Package demo holds the built-in example prompts surfaced in the CLI and
// over the HTTP API.
package demo

// Prompts returns example requests users can try.
func Prompts() []string {
	return []string{
		"Create a casual outfit for a weekend brunch",
		"I need a formal outfit for a business meeting",
		"Show me a party outfit in black and white",
		"Assemble a work-appropriate outfit under $200",
		"Create a summer casual outfit with blue colors",
		"I'm going to a formal wedding and need to wear a tie",
	}
}
