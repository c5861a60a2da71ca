package briefing

import "strings"

// ClearFilter is the permanent first suggestion; selecting it empties the
// product-line filter.
const ClearFilter = "(clear filter)"

// ProductLines is the fixed set of known product-line labels. It backs the
// autocomplete suggestions only — typed filter text is sent to the API as-is
// and is never validated against this list.
var ProductLines = []string{
	"Push",
	"Email",
	"SMS",
	"In-App",
	"OSM",
	"Web Personalization (WebP)",
	"Cards",
	"Content Management",
	"Flows",
	"Campaign Management",
	"Data",
	"Segmentation",
	"Analyze",
	"ML or AI",
	"Partner Integrations",
	"WhatsApp",
	"RCS",
	"Other Channels",
	"Settings",
	"Miscellaneous & Others",
}

// Suggest filters the product-line catalog by case-insensitive substring
// match. The clear entry is always first, regardless of the filter text.
func Suggest(input string) []string {
	out := []string{ClearFilter}
	needle := strings.ToLower(strings.TrimSpace(input))
	for _, label := range ProductLines {
		if needle == "" || strings.Contains(strings.ToLower(label), needle) {
			out = append(out, label)
		}
	}
	return out
}
