package input

import (
	"math"
	"strconv"
	"strings"
)

// Field identifies which prompt a raw value came from. Age and lifespan
// share most rules but differ in bounds and integer-ness.
type Field int

const (
	FieldAge Field = iota
	FieldLifespan
)

// Bounds for realistic values. Ages above MaxAge are rejected outright;
// lifespans below MinLifespan are too short to produce a meaningful bar.
const (
	MaxAge      = 150
	MinLifespan = 10
)

// Result is the outcome of validating one raw input value. When OK is
// false, Message holds a user-facing explanation and Value is zero.
type Result struct {
	OK      bool
	Message string
	Value   float64
}

func invalid(msg string) Result {
	return Result{Message: msg}
}

// Validate checks a raw input string against the rules for the given field.
// Age must be a whole number in (0, MaxAge]; lifespan may be fractional but
// must be at least MinLifespan. The age-versus-lifespan ordering check is
// deliberately not here: it needs both values, so the caller performs it
// once both are known.
func Validate(raw string, field Field) Result {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return invalid("Input cannot be empty.")
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return invalid("Please enter a valid number.")
	}

	if field == FieldAge && value != math.Trunc(value) {
		return invalid("Age should be a whole number (e.g., 25).")
	}

	if value <= 0 {
		return invalid("Please enter a positive number.")
	}

	if field == FieldLifespan && value < MinLifespan {
		return invalid("Lifespan should be at least 10 years.")
	}

	if field == FieldAge && value > MaxAge {
		return invalid("Please enter a realistic age (max 150).")
	}

	return Result{OK: true, Value: value}
}
