package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsk(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := New(strings.NewReader("  25 \nhello\n"), &out)

	first, err := p.Ask("age? ")
	require.NoError(t, err)
	assert.Equal(t, "25", first)
	assert.Equal(t, "age? ", out.String())

	second, err := p.Ask("next? ")
	require.NoError(t, err)
	assert.Equal(t, "hello", second)
}

func TestAsk_EOF(t *testing.T) {
	t.Parallel()

	p := New(strings.NewReader(""), &bytes.Buffer{})

	_, err := p.Ask("age? ")

	require.ErrorIs(t, err, ErrClosed)
}

func TestAsk_UnterminatedFinalLine(t *testing.T) {
	t.Parallel()

	p := New(strings.NewReader("42"), &bytes.Buffer{})

	answer, err := p.Ask("age? ")

	require.NoError(t, err)
	assert.Equal(t, "42", answer)
}

func TestAskYesNo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"maybe\n", false},
	}

	for _, tt := range tests {
		p := New(strings.NewReader(tt.raw), &bytes.Buffer{})

		got, err := p.AskYesNo("save? ")

		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.raw)
	}
}

func TestAskYesNo_EOF(t *testing.T) {
	t.Parallel()

	p := New(strings.NewReader(""), &bytes.Buffer{})

	_, err := p.AskYesNo("save? ")

	require.ErrorIs(t, err, ErrClosed)
}
