package services

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	gormModels "framework4future/portal/internal/models/gorm"
)

const (
	excerptLength  = 160
	wordsPerMinute = 200
)

// excerptOf returns the first excerptLength characters of content.
func excerptOf(content string) string {
	content = strings.TrimSpace(content)
	runes := []rune(content)
	if len(runes) <= excerptLength {
		return content
	}
	return strings.TrimSpace(string(runes[:excerptLength])) + "..."
}

// readTimeOf estimates reading time at wordsPerMinute, never less than a minute.
func readTimeOf(content string) string {
	words := len(strings.Fields(content))
	minutes := int(math.Ceil(float64(words) / wordsPerMinute))
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

func slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func strPtr(v string) *string {
	return &v
}

// optional returns nil for an empty string.
func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func sortCategories(categories []gormModels.BlogCategory) {
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
}
