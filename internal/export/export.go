package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/lifebar/internal/ctxlog"
	"github.com/vk/lifebar/internal/render"
)

// Filename returns the deterministic artifact name for an age.
func Filename(age int) string {
	return fmt.Sprintf("life_progress_%d.txt", age)
}

// Write saves the report to dir, stripping any color-control sequences the
// caller may have left in. It returns the written path. Errors are plain
// wrapped I/O errors; the caller decides that they are non-fatal.
func Write(ctx context.Context, dir string, age int, report string) (string, error) {
	logger := ctxlog.FromContext(ctx)

	path := filepath.Join(dir, Filename(age))
	content := render.Strip(report) + "\nRemember: Every day is a new opportunity!\n"

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to save report: %w", err)
	}

	logger.Debug("Report exported.", "path", path, "bytes", len(content))
	return path, nil
}
