package query

import (
	"strings"
	"unicode"

	pluralizer "github.com/gertd/go-pluralize"
)

// pluralizeClient is a singleton for consistent pluralization behavior.
var pluralizeClient = pluralizer.NewClient()

// TableName converts an entity name to its snake_case plural table
// name: "User" -> "users", "BlogPost" -> "blog_posts".
func TableName(entity string) string {
	return pluralizeClient.Plural(toSnakeCase(entity))
}

// toSnakeCase converts any naming convention to snake_case.
func toSnakeCase(name string) string {
	if name == "" {
		return ""
	}

	// Already snake_case.
	if strings.Contains(name, "_") && !hasUpperCase(name) {
		return strings.ToLower(name)
	}

	var result strings.Builder
	result.Grow(len(name) + 4)

	runes := []rune(name)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			// aB -> a_b, a1B -> a1_b, ABc -> a_bc
			if unicode.IsLower(prev) || unicode.IsDigit(prev) ||
				(unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])) {
				result.WriteByte('_')
			}
		}
		result.WriteRune(unicode.ToLower(r))
	}

	return result.String()
}

func hasUpperCase(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
