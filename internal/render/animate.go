package render

import (
	"fmt"
	"io"
	"math"
	"time"
)

// Animation pacing. Cosmetic only: the final frame is always rendered at the
// exact target percentage, so skipping the animation changes nothing.
const (
	AnimateStep  = 2.0
	AnimateDelay = 50 * time.Millisecond
)

// Animate reveals the bar from zero to pct in AnimateStep increments,
// redrawing the same line with a delay between frames. A zero delay renders
// all frames without sleeping, which keeps tests fast.
func Animate(w io.Writer, pct float64, length int, colored bool, delay time.Duration) {
	fmt.Fprintln(w, "\n📊 Generating your life progress bar...")

	for i := 0.0; i < pct; i += AnimateStep {
		frame := math.Min(i, pct)
		fmt.Fprintf(w, "\rProgress: %s %.1f%%", Bar(frame, length, colored), frame)
		if delay > 0 {
			time.Sleep(delay)
		}
	}
	fmt.Fprintf(w, "\rProgress: %s %.1f%%\n", Bar(pct, length, colored), pct)
}
