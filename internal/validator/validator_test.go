package validator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
}

func contains(list []string, substr string) bool {
	for _, s := range list {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

func TestValidCatalogHasNoErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "images", "fox.png"), "png")
	writeFile(t, filepath.Join(dir, "catalog.toml"), `
[[collection]]
id = "genesis"
name = "Genesis"
slots = ["fox", ""]

[[card]]
id = "fox"
name = "Ember Fox"
image = "images/fox.png"
rarity = "Rare"
`)

	results, err := NewValidator(dir).Validate()
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if len(results.Errors) != 0 || len(results.Warnings) != 0 {
		t.Fatalf("unexpected results: %+v", results)
	}
}

func TestValidatorReportsProblems(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.toml")
	writeFile(t, path, `
[[collection]]
id = "genesis"
name = "Genesis"
cover_image = "covers/missing.png"
slots = ["fox", "ghost"]

[[collection]]
id = "genesis"
slots = ["", ""]

[[card]]
id = "fox"
name = "Ember Fox"
image = "images/missing.png"
rarity = "mythic"
attributes = [ { trait = "Eyes", value = "Gold" }, { trait = "Eyes", value = "Red" } ]

[[card]]
id = "owl"
name = "Owl"
image = "https://cdn.example.com/owl.svg"
rarity = "Epic"
`)

	results, err := NewValidator(path).Validate()
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}

	for _, want := range []string{
		"duplicate collection id: genesis",
		"collection genesis: name is required",
		"references undefined cards: ghost",
		"unknown rarity",
	} {
		if !contains(results.Errors, want) {
			t.Fatalf("missing error %q in %v", want, results.Errors)
		}
	}
	for _, want := range []string{
		"has no cards",
		`trait "Eyes" listed more than once`,
		"cover: image not found",
		"card fox: image not found: images/missing.png",
		"card owl is not placed",
	} {
		if !contains(results.Warnings, want) {
			t.Fatalf("missing warning %q in %v", want, results.Warnings)
		}
	}
}

func TestValidatorMissingCatalog(t *testing.T) {
	if _, err := NewValidator(t.TempDir()).Validate(); err == nil {
		t.Fatal("expected error for missing catalog")
	}
}
