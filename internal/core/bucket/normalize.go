// Package bucket holds the pure derivation helpers shared by the rollup
// synchronizer and the pivot engine: stable dimension keys, coarse geo cells
// and calendar buckets.
package bucket

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// MaxKeyLength caps a normalized key, counted in runes.
	MaxKeyLength = 80

	// MaxPairKeyLength caps the combined product__device key.
	MaxPairKeyLength = 120

	// UnknownKey is returned when a label normalizes to nothing.
	UnknownKey = "unknown"

	// UnknownLabel is the display label for blank input.
	UnknownLabel = "Unknown"

	pairSeparator = "__"
)

// NormalizeToKey derives a stable dimension key from a free-text label.
// The same label always maps to the same key regardless of casing,
// diacritics, punctuation or surrounding whitespace.
func NormalizeToKey(label string) string {
	folded := stripDiacritics(strings.TrimSpace(label))
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	pendingSep := false
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}

	key := truncateRunes(b.String(), MaxKeyLength)
	if key == "" {
		return UnknownKey
	}
	return key
}

// DisplayLabel returns the trimmed label, or UnknownLabel when blank.
func DisplayLabel(label string) string {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return UnknownLabel
	}
	return trimmed
}

// PairKey combines two normalized keys. The result is derived, never read
// from an event.
func PairKey(productKey, deviceKey string) string {
	return truncateRunes(productKey+pairSeparator+deviceKey, MaxPairKeyLength)
}

// PairLabel is the human-readable counterpart of PairKey.
func PairLabel(productLabel, deviceLabel string) string {
	return DisplayLabel(productLabel) + " + " + DisplayLabel(deviceLabel)
}

// stripDiacritics decomposes s, drops combining marks and recomposes it.
// A fresh transformer is built per call: chained transformers keep state.
func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func truncateRunes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}
