// Package prompt implements the line-based interactive boundary: write a
// prompt, read one line, report end-of-input as a sentinel error so callers
// can exit cleanly instead of crashing mid-prompt.
package prompt
