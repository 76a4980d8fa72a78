package lifemath

// DaysPerYear is the approximation used for the days-remaining figure.
// Deliberately not calendar-accurate.
const DaysPerYear = 365

// Summary bundles every derived value for one age/lifespan pair.
type Summary struct {
	Age          int
	Lifespan     float64
	PercentLived float64
	PercentLeft  float64
	Stage        string
	Reflections  []string

	// YearsRemaining and DaysRemaining are only meaningful while
	// PercentLived < 100; callers must not display them otherwise.
	YearsRemaining float64
	DaysRemaining  int
}

// Percentages splits a life into lived and remaining shares. The lived share
// is capped at 100 so an age beyond the assumed lifespan never leaks a value
// above 100. Lifespan must be positive; validation upstream guarantees that.
func Percentages(age, lifespan float64) (lived, remaining float64) {
	lived = age / lifespan * 100
	if lived > 100 {
		lived = 100
	}
	return lived, 100 - lived
}

// Summarize derives every reportable value for the given age and lifespan.
func Summarize(age int, lifespan float64) Summary {
	lived, remaining := Percentages(float64(age), lifespan)

	s := Summary{
		Age:          age,
		Lifespan:     lifespan,
		PercentLived: lived,
		PercentLeft:  remaining,
		Stage:        Stage(age),
		Reflections:  Reflections(lived),
	}
	if lived < 100 {
		s.YearsRemaining = lifespan - float64(age)
		s.DaysRemaining = int(s.YearsRemaining * DaysPerYear)
	}
	return s
}
