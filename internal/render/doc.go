// Package render turns a lifemath.Summary into terminal output: the colored
// progress bar, the optional fill animation, and the full report block. Every
// renderer exists in a colored and a plain form that share one glyph
// composition, so stripping color codes from the colored form always yields
// the plain form exactly.
package render
