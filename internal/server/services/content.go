package services

import (
	"strings"
	"unicode"

	"github.com/dmitrijs2005/studiosite/internal/server/models"
)

// relatedLimit caps the related posts/projects attached to a detail view.
const relatedLimit = 3

// Slugify lowercases s and collapses every run of non-alphanumeric
// characters into a single dash, trimming dashes at both ends.
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
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

// clampPage bounds page.Limit to max. Page and Limit are validated as >= 1
// by the HTTP layer.
func clampPage(page models.Page, max int) models.Page {
	if max > 0 && page.Limit > max {
		page.Limit = max
	}
	return page
}

// missing collects names whose value is blank, keeping the given order.
type missing []string

func (m *missing) check(name, value string) {
	if strings.TrimSpace(value) == "" {
		*m = append(*m, name)
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
