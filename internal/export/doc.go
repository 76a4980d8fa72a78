// Package export writes the color-stripped report to a flat text file whose
// name is derived from the age, so repeated runs at the same age overwrite
// the same artifact.
package export
