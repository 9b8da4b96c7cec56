package i18n

import (
	"fmt"
	"strings"
)

// M holds placeholder values keyed by placeholder name.
type M = map[string]any

// ReplacePlaceholders substitutes every {{name}} in message with the matching
// value from placeholders. Unknown placeholders are left in place.
//
//	ReplacePlaceholders("{{years}} og {{days}}", M{"years": "20 ára", "days": "1 dags"})
//	// "20 ára og 1 dags"
func ReplacePlaceholders(message string, placeholders M) string {
	if len(placeholders) == 0 || !strings.Contains(message, "{{") {
		return message
	}

	pairs := make([]string, 0, len(placeholders)*2)
	for key, value := range placeholders {
		pairs = append(pairs, "{{"+key+"}}", fmt.Sprint(value))
	}

	return strings.NewReplacer(pairs...).Replace(message)
}
