package request

// keywordTable maps a canonical label to the phrases that imply it.
// Tables are ordered slices so that first-match extraction is deterministic.
type keywordTable []keywordEntry

type keywordEntry struct {
	Label    string
	Keywords []string
}

var occasionKeywords = keywordTable{
	{"work", []string{"work", "office", "meeting", "presentation", "interview", "client", "conference"}},
	{"date", []string{"date", "dinner", "night out", "restaurant"}},
	{"casual", []string{"casual", "weekend", "brunch", "coffee", "errands", "hangout"}},
	{"formal", []string{"formal", "black tie", "gala", "wedding", "cocktail", "event"}},
	{"travel", []string{"travel", "airport", "flight", "plane", "hotel", "vacation"}},
	{"outdoors", []string{"outdoor", "hike", "trail", "camp", "festival"}},
}

var styleKeywords = keywordTable{
	{"minimal", []string{"minimal", "clean", "simple", "sleek", "pared-back"}},
	{"tailored", []string{"tailored", "structured", "sharp", "polished", "blazer"}},
	{"classic", []string{"classic", "timeless", "preppy", "heritage"}},
	{"streetwear", []string{"streetwear", "oversized", "graphic", "sneaker", "hoodie"}},
	{"boho", []string{"boho", "bohemian", "flowy", "floral"}},
	{"edgy", []string{"edgy", "leather", "black", "punk"}},
	{"sporty", []string{"sporty", "athleisure", "active", "gym", "running"}},
}

var colorKeywords = keywordTable{
	{"black", []string{"black"}},
	{"white", []string{"white", "ivory"}},
	{"navy", []string{"navy"}},
	{"gray", []string{"gray", "grey", "charcoal"}},
	{"beige", []string{"beige", "tan", "camel", "khaki"}},
	{"brown", []string{"brown", "chocolate"}},
	{"red", []string{"red", "burgundy", "maroon"}},
	{"green", []string{"green", "olive", "sage"}},
	{"blue", []string{"blue", "cobalt"}},
	{"pink", []string{"pink", "fuchsia"}},
	{"purple", []string{"purple", "lavender"}},
	{"yellow", []string{"yellow", "mustard"}},
	{"orange", []string{"orange", "rust"}},
}

var paletteKeywords = keywordTable{
	{"monochrome", []string{"monochrome", "all black", "all-white", "one color"}},
	{"neutrals", []string{"neutral", "neutrals", "tonal", "earth tones"}},
	{"colorful", []string{"colorful", "bright", "bold color", "vibrant"}},
}

// Season and weather signals map to seasonality and warmth.
var seasonKeywords = keywordTable{
	{"winter", []string{"winter", "cold", "snow", "freezing", "chilly"}},
	{"summer", []string{"summer", "hot", "heat", "humid"}},
	{"spring", []string{"spring"}},
	{"fall", []string{"fall", "autumn", "crisp"}},
	{"rainy", []string{"rain", "rainy", "drizzle", "wet"}},
}

var exclusionKeywords = keywordTable{
	{"no_heels", []string{"no heels", "without heels", "no high heels"}},
	{"no_denim", []string{"no denim", "without denim"}},
	{"no_leather", []string{"no leather", "vegan"}},
}

// ExclusionTags maps an exclusion label to the style tags it forbids.
var ExclusionTags = map[string][]string{
	"no_heels":   {"heels"},
	"no_denim":   {"denim"},
	"no_leather": {"leather"},
}
