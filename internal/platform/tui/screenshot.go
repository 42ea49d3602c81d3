package tui

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/vovakirdan/gb11/internal/atlas"
	"github.com/vovakirdan/gb11/internal/config"
	"github.com/vovakirdan/gb11/internal/core"
)

// ScreenshotScale is the enlargement applied to saved screenshots.
const ScreenshotScale = 4

// ScreenshotDir returns ~/.gb11/screenshots, or the working directory if
// home is unavailable.
func ScreenshotDir() string {
	dir := config.UserDir()
	if dir == "" {
		return "."
	}
	return filepath.Join(dir, "screenshots")
}

// saveScreenshot writes the framebuffer as a scaled PNG into dir and
// returns the file path.
func saveScreenshot(s *core.Screen, dir string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating screenshot dir: %w", err)
	}

	filename := fmt.Sprintf("gb11_%s.png", now.Format("20060102_150405.000"))
	path := filepath.Join(dir, filename)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return "", fmt.Errorf("creating screenshot: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, atlas.Scale(s.Image(), ScreenshotScale)); err != nil {
		return "", fmt.Errorf("encoding screenshot: %w", err)
	}
	return path, nil
}
