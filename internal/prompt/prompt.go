package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrClosed reports that the input stream ended while a prompt was waiting
// for an answer. Callers treat it as a request to exit, not as a failure.
var ErrClosed = errors.New("input closed")

// Prompter asks questions on w and reads answers from r, one line at a time.
type Prompter struct {
	r *bufio.Reader
	w io.Writer
}

// New returns a Prompter reading from r and writing prompts to w.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), w: w}
}

// Ask writes the label and blocks for one line of input. The returned answer
// is whitespace-trimmed. A final unterminated line still counts as an
// answer; ErrClosed is only returned when no input remains at all.
func (p *Prompter) Ask(label string) (string, error) {
	fmt.Fprint(p.w, label)

	line, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		return "", ErrClosed
	}
	return strings.TrimSpace(line), nil
}

// AskYesNo asks a y/n question. Anything other than "y" or "yes" (any case)
// counts as no, matching the forgiving behavior of the prompts this tool
// grew out of.
func (p *Prompter) AskYesNo(label string) (bool, error) {
	answer, err := p.Ask(label)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
