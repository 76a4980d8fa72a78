package render

import (
	"math"
	"strings"

	"github.com/gookit/color"
)

// Bar glyphs. One glyph represents one fixed share of the assumed lifespan.
const (
	GlyphFilled = "█"
	GlyphEmpty  = "─"
)

// DefaultBarLength is the bar width used when no override is configured.
const DefaultBarLength = 40

const (
	csiStart = "\x1b["
	csiReset = "\x1b[0m"
)

// tierColor picks the bar color for a percent-lived value. Four tiers,
// boundary values belong to the higher tier.
func tierColor(pct float64) color.Color {
	switch {
	case pct < 30:
		return color.FgLightGreen
	case pct < 60:
		return color.FgLightYellow
	case pct < 80:
		return color.FgYellow
	default:
		return color.FgLightRed
	}
}

// FilledCount returns how many filled glyphs a bar of the given length gets
// for a percentage in [0, 100]. Rounding is clamped so the count never
// leaves [0, length].
func FilledCount(pct float64, length int) int {
	n := int(math.Round(float64(length) * pct / 100))
	if n < 0 {
		n = 0
	}
	if n > length {
		n = length
	}
	return n
}

// barGlyphs is the single glyph composition shared by the colored and plain
// renderers. Only this function decides glyph counts.
func barGlyphs(pct float64, length int) string {
	filled := FilledCount(pct, length)
	return strings.Repeat(GlyphFilled, filled) + strings.Repeat(GlyphEmpty, length-filled)
}

// Bar renders the bracketed progress bar. When colored, the glyph run is
// wrapped in the tier color and a reset; the plain form is the identical
// glyph run with no control sequences.
func Bar(pct float64, length int, colored bool) string {
	body := barGlyphs(pct, length)
	if colored {
		body = wrapColor(tierColor(pct), body)
	}
	return "[" + body + "]"
}

// wrapColor builds the ANSI sequence by hand rather than via color.Render so
// the output never depends on terminal capability detection; Strip must be
// able to reverse it exactly.
func wrapColor(c color.Color, s string) string {
	return csiStart + c.Code() + "m" + s + csiReset
}

// Strip removes every color-control sequence, leaving glyphs untouched.
func Strip(s string) string {
	return color.ClearCode(s)
}
