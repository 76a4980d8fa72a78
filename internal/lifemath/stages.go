package lifemath

// stageTable maps ascending age thresholds to life-stage labels. A boundary
// age belongs to the higher bucket (the bound is exclusive).
var stageTable = []struct {
	below int
	label string
}{
	{13, "Childhood 👶"},
	{20, "Teen Years 🧒"},
	{30, "Twenties 🌟"},
	{40, "Thirties 💼"},
	{50, "Forties 🏡"},
	{65, "Fifties 🎯"},
}

const stageFinal = "Golden Years 👴"

// Stage returns the life-stage label for an age. Total over all ages: the
// final bucket is open-ended.
func Stage(age int) string {
	for _, s := range stageTable {
		if age < s.below {
			return s.label
		}
	}
	return stageFinal
}

// reflectionTable maps ascending percent-lived thresholds to ordered message
// sets, same exclusive-bound convention as stageTable.
var reflectionTable = []struct {
	below    float64
	messages []string
}{
	{20, []string{
		"🌟 Your adventure is just beginning!",
		"The whole world is ahead of you.",
		"Every day is a blank page to write your story.",
	}},
	{40, []string{
		"🚀 You're building momentum!",
		"This is where foundations are strengthened.",
		"Your experiences are shaping who you'll become.",
	}},
	{60, []string{
		"💪 You're in your prime!",
		"This is your time to make a real impact.",
		"Use your wisdom to guide your energy.",
	}},
	{80, []string{
		"🎯 You've gained valuable perspective!",
		"Your experience is your superpower.",
		"Now you know what truly matters.",
	}},
}

var reflectionFinal = []string{
	"👑 You are a treasure of wisdom!",
	"Every moment is precious and earned.",
	"Your legacy is being written every day.",
}

// Reflections returns the ordered reflection messages for a percent-lived
// value. The returned slice is shared; callers must not mutate it.
func Reflections(percentLived float64) []string {
	for _, r := range reflectionTable {
		if percentLived < r.below {
			return r.messages
		}
	}
	return reflectionFinal
}
