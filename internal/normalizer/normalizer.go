// Package normalizer canonicalizes raw document text for pattern matching.
package normalizer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"policyparse/internal/domain"
)

var blankRuns = regexp.MustCompile(`\n{3,}`)

// Normalize unifies line endings, trims every line, collapses runs of
// spaces and tabs inside a line to a single space, and collapses runs of
// three or more newlines to a blank line so paragraph boundaries survive.
// Normalizing already-normalized text returns it unchanged.
func Normalize(raw string) (string, error) {
	if !utf8.ValidString(raw) {
		return "", fmt.Errorf("normalizer.Normalize: %w", domain.ErrInvalidInput)
	}

	unified := strings.ReplaceAll(raw, "\r\n", "\n")
	unified = strings.ReplaceAll(unified, "\r", "\n")

	lines := strings.Split(unified, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}

	return blankRuns.ReplaceAllString(strings.Join(lines, "\n"), "\n\n"), nil
}
