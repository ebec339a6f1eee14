package stages

import (
	"slices"
	"strings"
)

// FallbackGlyph is shown for callout categories missing from the table.
// It is the INFO glyph.
const FallbackGlyph = "\uf05a"

// glyphs maps upper-case callout categories to Nerd Font glyphs.
//
//nolint:gochecknoglobals // Read-only lookup table.
var glyphs = map[string]string{
	"INFO":      "\uf05a",
	"NOTE":      "\uf040",
	"TODO":      "\ue69c",
	"TIP":       "\uf0eb",
	"HINT":      "\uf0eb",
	"ABSTRACT":  "\uf192",
	"SUMMARY":   "\U000f0a38",
	"TLDR":      "\U000f0a38",
	"QUESTION":  "\uf420",
	"SUCCESS":   "\uf00c",
	"IMPORTANT": "\U000f017e",
	"CAUTION":   "\U000f04a1",
	"ALERT":     "\U000f002a",
	"WARNING":   "\uf071",
	"BUG":       "\uf188",
	"ERROR":     "\uea87",
	"FAIL":      "\uf057",
	"FAILURE":   "\uf057",
	"DANGER":    "\u26a1",
	"QUOTE":     "\u0b68\u0b67",
	"EXAMPLE":   "\U000f0279",
	"STICKY":    "\U000f0403",
	"TEA":       "\uf0f4 ",
}

// Glyph returns the glyph for an upper-case category, or FallbackGlyph.
// The match is exact and case-sensitive.
func Glyph(category string) string {
	if glyph, ok := glyphs[category]; ok {
		return glyph
	}
	return FallbackGlyph
}

// Categories returns the known categories in sorted order.
func Categories() []string {
	keys := make([]string, 0, len(glyphs))
	for k := range glyphs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// normalizeCategory trims and upper-cases a raw category tag.
func normalizeCategory(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
