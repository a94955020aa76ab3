package cmd

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arcanaland/binder/internal/album"
	"github.com/arcanaland/binder/internal/ansiart"
	"github.com/arcanaland/binder/internal/catalog"
)

const testCatalogTOML = `
[[collection]]
id = "genesis"
name = "Genesis"
slots = ["fox", "", "owl", "", "", "", "owl"]

[[collection]]
id = "empty"
name = "Empty"

[[card]]
id = "fox"
name = "Ember Fox"
rarity = "rare"
attributes = [{ trait = "element", value = "Fire" }]

[[card]]
id = "owl"
name = "Tide Owl"
rarity = "Legendary"
`

func writeCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	path := filepath.Join(t.TempDir(), catalog.FileName)
	if err := os.WriteFile(path, []byte(testCatalogTOML), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	cat, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return cat
}

func TestPrintPage(t *testing.T) {
	cat := writeCatalog(t)

	var buf bytes.Buffer
	if err := printPage(&buf, cat, ""); err != nil {
		t.Fatalf("printPage returned error: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "Genesis · page 1/2\n") {
		t.Fatalf("unexpected header: %q", out)
	}
	if !strings.Contains(out, "1:Ember Fox [Rare]") || !strings.Contains(out, "2:(empty)") {
		t.Fatalf("unexpected grid: %q", out)
	}

	if err := printPage(&buf, cat, "missing"); err == nil {
		t.Fatal("expected error for unknown collection")
	}
}

func TestPageView(t *testing.T) {
	cat := writeCatalog(t)

	v, err := pageView(cat, "genesis", 1, false)
	if err != nil {
		t.Fatalf("pageView returned error: %v", err)
	}
	if v.Page != 1 || v.Animating {
		t.Fatalf("unexpected view: page=%d animating=%v", v.Page, v.Animating)
	}
	if v.Front[0].Card == nil || v.Front[0].Card.ID != "owl" || v.Front[0].Global != 6 {
		t.Fatalf("unexpected first slot: %+v", v.Front[0])
	}

	v, err = pageView(cat, "genesis", 0, true)
	if err != nil {
		t.Fatalf("pageView returned error: %v", err)
	}
	for _, s := range v.Front {
		if s.Revealed == s.Empty {
			t.Fatalf("reveal should cover exactly the filled slots: %+v", s)
		}
	}

	if _, err := pageView(cat, "genesis", 2, false); !errors.Is(err, album.ErrPageOutOfRange) {
		t.Fatalf("unexpected error: got %v want %v", err, album.ErrPageOutOfRange)
	}
	if _, err := pageView(cat, "empty", 0, false); !errors.Is(err, album.ErrPageOutOfRange) {
		t.Fatalf("unexpected error for empty collection: %v", err)
	}
	if _, err := pageView(cat, "nope", 0, false); err == nil {
		t.Fatal("expected error for unknown collection")
	}
}

func TestCollectionTable(t *testing.T) {
	cat := writeCatalog(t)

	out := collectionTable(cat.Collections(), "genesis")
	for _, want := range []string{"genesis", "Genesis", "Empty", "*"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}

	var genesisRow string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "genesis") {
			genesisRow = line
		}
	}
	fields := strings.FieldsFunc(genesisRow, func(r rune) bool { return r == '│' || r == ' ' })
	got := strings.Join(fields, " ")
	if got != "* genesis Genesis 3 7 2" {
		t.Fatalf("unexpected row: got %q want %q", got, "* genesis Genesis 3 7 2")
	}
}

func TestStarterCatalogLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lib", catalog.FileName)
	if err := writeStarterCatalog(path); err != nil {
		t.Fatalf("writeStarterCatalog returned error: %v", err)
	}

	cat, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("starter catalog does not load: %v", err)
	}
	col, err := cat.Collection("starter")
	if err != nil {
		t.Fatalf("starter collection missing: %v", err)
	}
	if col.CardCount() != 2 || len(col.Slots) != 3 {
		t.Fatalf("unexpected starter collection: cards=%d slots=%d", col.CardCount(), len(col.Slots))
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("the quick brown fox jumps over the lazy dog", 15)
	want := []string{"the quick brown", "fox jumps over", "the lazy dog"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("unexpected wrap: got %q want %q", got, want)
	}
	if got := wrapText("", 20); len(got) != 1 || got[0] != "" {
		t.Fatalf("unexpected wrap of empty text: %q", got)
	}
}

func TestCardArtFromRelativeCatalogDir(t *testing.T) {
	root := t.TempDir()
	t.Chdir(root)
	t.Setenv("XDG_CACHE_HOME", filepath.Join(root, "cache"))

	if err := os.MkdirAll(filepath.Join("lib", "images"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{200, 40, 40, 255})
		}
	}
	f, err := os.Create(filepath.Join("lib", "images", "a.png"))
	if err != nil {
		t.Fatalf("create image: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode image: %v", err)
	}
	f.Close()

	body := "[[card]]\nid = \"a\"\nname = \"A\"\nimage = \"images/a.png\"\nrarity = \"Common\"\n"
	if err := os.WriteFile(filepath.Join("lib", catalog.FileName), []byte(body), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	cat, err := catalog.Load("lib")
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	c, err := cat.Card("a")
	if err != nil {
		t.Fatalf("Card returned error: %v", err)
	}

	art := cardArt(c)
	if art == "" {
		t.Fatalf("no art for %q", c.Image)
	}
	if !strings.Contains(ansiart.Strip(art), "▀") {
		t.Fatalf("unexpected art: %q", art)
	}
}
