package ansiart

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func solidImage(c color.Color, w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestFromImageDimensions(t *testing.T) {
	art := FromImage(solidImage(color.RGBA{200, 10, 10, 255}, 16, 16), 4, 3)

	lines := strings.Split(strings.TrimSuffix(art, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("unexpected line count: %d", len(lines))
	}
	for _, line := range lines {
		if got := len([]rune(Strip(line))); got != 4 {
			t.Fatalf("unexpected visible width: %d", got)
		}
	}
	if !strings.Contains(art, "\x1b[38;2;200;10;10m") {
		t.Fatalf("expected solid red foreground in %q", lines[0])
	}
}

func TestStrip(t *testing.T) {
	if got := Strip("\x1b[38;2;1;2;3mA\x1b[0mB"); got != "AB" {
		t.Fatalf("unexpected strip result: %q", got)
	}
}

func TestLoadCachesArt(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "card.png")
	f, err := os.Create(imgPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, solidImage(color.White, 8, 8)); err != nil {
		t.Fatal(err)
	}
	f.Close()

	cacheDir := filepath.Join(dir, "cache")
	first, err := Load(imgPath, cacheDir, 2, 2)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	entries, err := os.ReadDir(cacheDir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one cached file, got %v (%v)", entries, err)
	}

	// The cache wins even after the source is gone
	os.Remove(imgPath)
	second, err := Load(imgPath, cacheDir, 2, 2)
	if err != nil {
		t.Fatalf("cached Load returned error: %v", err)
	}
	if first != second {
		t.Fatal("cached art differs")
	}
}

func TestLoadMissingImage(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.png"), "", 2, 2); err == nil {
		t.Fatal("expected error for missing image")
	}
}
