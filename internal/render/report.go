package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vk/lifebar/internal/lifemath"
)

const ruleWidth = 60

// Header returns the banner printed before the first prompt.
func Header() string {
	var b strings.Builder
	rule := strings.Repeat("=", ruleWidth)

	b.WriteString("\n" + rule + "\n")
	b.WriteString(strings.Repeat(" ", 15) + "🌈 LIFE PROGRESS BAR GENERATOR\n")
	b.WriteString(rule + "\n")
	b.WriteString("\nA visual representation of your life journey\n")
	b.WriteString("Remember: This is just a tool, not a destiny predictor!\n")
	b.WriteString(strings.Repeat("-", ruleWidth) + "\n")
	return b.String()
}

// Farewell returns the closing banner printed after the save prompt.
func Farewell() string {
	sparkle := strings.Repeat("✨", 30)

	var b strings.Builder
	b.WriteString("\n" + sparkle + "\n")
	b.WriteString("Thank you for using the Life Progress Bar Generator!\n")
	b.WriteString("Remember: It's not about the years in your life,\n")
	b.WriteString("          but the life in your years! 🌟\n")
	b.WriteString(sparkle + "\n")
	return b.String()
}

// Report assembles the full result block. The colored and plain variants
// differ only in the bar's color-control sequences.
func Report(s lifemath.Summary, length int, colored bool) string {
	var b strings.Builder
	rule := strings.Repeat("=", ruleWidth)

	b.WriteString("\n" + rule + "\n")
	b.WriteString("📈 YOUR LIFE PROGRESS REPORT\n")
	b.WriteString(rule + "\n\n")

	fmt.Fprintf(&b, "📅 Age: %d years\n", s.Age)
	fmt.Fprintf(&b, "🎯 Assumed Lifespan: %s years\n", formatYears(s.Lifespan))
	fmt.Fprintf(&b, "🏷️  Life Stage: %s\n", s.Stage)
	fmt.Fprintf(&b, "📊 Progress: %.1f%% Lived | %.1f%% Remaining\n", s.PercentLived, s.PercentLeft)

	fmt.Fprintf(&b, "\n%s %.1f%%\n", Bar(s.PercentLived, length, colored), s.PercentLived)

	b.WriteString("\n💭 REFLECTION:\n")
	for _, msg := range s.Reflections {
		fmt.Fprintf(&b, "  • %s\n", msg)
	}

	if s.PercentLived < 100 {
		fmt.Fprintf(&b, "\n⏳ You have approximately %s years ahead!\n", formatYears(s.YearsRemaining))
		fmt.Fprintf(&b, "   That's about %d more days to make count!\n", s.DaysRemaining)
	}

	b.WriteString("\n" + rule + "\n")
	return b.String()
}

// formatYears prints a year count without trailing zeros ("80", "55.5").
func formatYears(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
