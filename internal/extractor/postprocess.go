package extractor

import (
	"regexp"
	"strings"
)

// Processor identifies the post-processing applied to a raw pattern match
// before it becomes a field value. The set is closed; dispatch goes through
// applyProcessor only.
type Processor string

const (
	ProcessorNumericClean  Processor = "numeric-clean"
	ProcessorDateNormalize Processor = "date-normalize"
	ProcessorCurrencyStrip Processor = "currency-strip"
	ProcessorListCollect   Processor = "list-collect"
	ProcessorIdentity      Processor = "identity"
)

// Currency markers stripped from monetary matches. Longer tokens first so
// "Rs." is removed before "Rs" would leave a stray dot behind.
var currencyTokens = []string{"USD", "INR", "Rs.", "Rs", "$", "₹"}

var (
	numericShape  = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
	dateSlashForm = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
	dateDashForm  = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)
)

// applyProcessor runs a scalar processor over a raw match. ok=false means
// the candidate is rejected and the next pattern in the field's list is
// tried; it is never an error.
func applyProcessor(proc Processor, raw string) (value string, ok bool) {
	switch proc {
	case ProcessorNumericClean:
		return cleanNumeric(raw)
	case ProcessorDateNormalize:
		return normalizeDate(raw)
	case ProcessorCurrencyStrip:
		return stripCurrency(raw)
	case ProcessorIdentity:
		v := strings.TrimSpace(raw)
		return v, v != ""
	default:
		return "", false
	}
}

// cleanNumeric strips currency markers, thousands separators, and
// whitespace, keeping the value as lossless text. "$1,850.00" becomes
// "1850.00" and "Rs. 4,50,000" becomes "450000". A candidate that does not
// reduce to a plain decimal string is rejected.
func cleanNumeric(raw string) (string, bool) {
	s := stripTokens(raw)
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if !numericShape.MatchString(out) {
		return "", false
	}
	return out, true
}

// stripCurrency removes currency markers and separators without assuming
// anything about the decimal shape of what was matched.
func stripCurrency(raw string) (string, bool) {
	s := strings.ReplaceAll(stripTokens(raw), ",", "")
	s = strings.TrimSpace(s)
	return s, s != ""
}

// normalizeDate accepts only the MM/DD/YYYY and DD-MM-YYYY shapes and
// passes the match through unchanged. Anything else (mixed separators,
// dotted dates, 2-digit years) is rejected, never reformatted.
func normalizeDate(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if dateSlashForm.MatchString(s) || dateDashForm.MatchString(s) {
		return s, true
	}
	return "", false
}

// collectList splits a matched block into trimmed, non-empty items in
// source order. Leading bullet markers are dropped; duplicates are kept.
func collectList(raw string) []string {
	var items []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-•*")
		line = strings.TrimSpace(line)
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}

func stripTokens(raw string) string {
	s := strings.TrimSpace(raw)
	for _, tok := range currencyTokens {
		s = strings.TrimSpace(strings.TrimPrefix(s, tok))
		s = strings.TrimSpace(strings.TrimSuffix(s, tok))
	}
	return s
}
