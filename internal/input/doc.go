// Package input validates raw textual user input for the age and lifespan
// prompts. Validation is a pure function from a string to a structured
// result, so the retry loop at the prompt boundary stays trivial.
package input
