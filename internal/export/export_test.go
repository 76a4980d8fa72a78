package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/lifebar/internal/lifemath"
	"github.com/vk/lifebar/internal/render"
)

func TestWrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	report := render.Report(lifemath.Summarize(25, 80), 40, true)

	path, err := Write(context.Background(), dir, 25, report)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "life_progress_25.txt"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	// The artifact carries the identical glyph composition but no color codes.
	assert.NotContains(t, string(content), "\x1b[")
	assert.Contains(t, string(content), render.Bar(31.25, 40, false))
	assert.Contains(t, string(content), "📅 Age: 25 years")
	assert.Contains(t, string(content), "Remember: Every day is a new opportunity!")
}

func TestWrite_Overwrites(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx := context.Background()

	_, err := Write(ctx, dir, 30, "first run\n")
	require.NoError(t, err)
	path, err := Write(ctx, dir, 30, "second run\n")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "second run")
	assert.NotContains(t, string(content), "first run")
}

func TestWrite_Failure(t *testing.T) {
	t.Parallel()

	_, err := Write(context.Background(), filepath.Join(t.TempDir(), "missing"), 25, "report")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save report")
}
