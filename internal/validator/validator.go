package validator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/binder/internal/card"
	"github.com/arcanaland/binder/internal/catalog"
)

// Image formats the card renderers can decode
var supportedImageExts = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	CatalogPath string
	Results     ValidationResults

	dir    string
	config catalog.CatalogConfig
}

// NewValidator creates a validator for a catalog file or a directory holding one
func NewValidator(catalogPath string) *Validator {
	return &Validator{
		CatalogPath: catalogPath,
		Results:     ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.validateCatalogToml(); err != nil {
		return v.Results, err
	}

	v.validateCards()
	v.validateCollections()
	v.validatePlacement()

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

func (v *Validator) validateCatalogToml() error {
	path := v.CatalogPath
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, catalog.FileName)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("%s not found: %s", catalog.FileName, path)
	}
	v.dir = filepath.Dir(path)

	if _, err := toml.DecodeFile(path, &v.config); err != nil {
		return fmt.Errorf("error parsing %s: %w", filepath.Base(path), err)
	}

	if len(v.config.Collections) == 0 {
		v.errorf("catalog defines no collections")
	}
	return nil
}

// validateCards checks card ids, names, rarities, images and traits
func (v *Validator) validateCards() {
	seen := map[string]bool{}
	for i, c := range v.config.Cards {
		label := c.ID
		if c.ID == "" {
			label = fmt.Sprintf("#%d", i+1)
			v.errorf("card %s: id is required", label)
		} else if seen[c.ID] {
			v.errorf("duplicate card id: %s", c.ID)
		}
		seen[c.ID] = true

		if strings.TrimSpace(c.Name) == "" {
			v.errorf("card %s: name is required", label)
		}
		if _, err := card.ParseRarity(c.Rarity); err != nil {
			v.errorf("card %s: %v (supported: %s)", label, err, rarityList())
		}

		if c.Image == "" {
			v.warnf("card %s: no image", label)
		} else {
			v.checkImage(fmt.Sprintf("card %s", label), c.Image)
		}

		traits := map[string]bool{}
		for _, a := range c.Attributes {
			if a.Trait == "" {
				v.errorf("card %s: attribute without trait name", label)
				continue
			}
			if traits[a.Trait] {
				v.warnf("card %s: trait %q listed more than once", label, a.Trait)
			}
			traits[a.Trait] = true
		}
	}
}

// validateCollections checks collection ids, names, slot references and covers
func (v *Validator) validateCollections() {
	cards := map[string]bool{}
	for _, c := range v.config.Cards {
		cards[c.ID] = true
	}

	seen := map[string]bool{}
	for i, col := range v.config.Collections {
		label := col.ID
		if col.ID == "" {
			label = fmt.Sprintf("#%d", i+1)
			v.errorf("collection %s: id is required", label)
		} else if seen[col.ID] {
			v.errorf("duplicate collection id: %s", col.ID)
		}
		seen[col.ID] = true

		if strings.TrimSpace(col.Name) == "" {
			v.errorf("collection %s: name is required", label)
		}

		filled := 0
		missing := []string{}
		for _, ref := range col.Slots {
			ref = strings.TrimSpace(ref)
			if ref == "" {
				continue
			}
			filled++
			if !cards[ref] {
				missing = append(missing, ref)
			}
		}
		if len(missing) > 0 {
			v.errorf("collection %s references undefined cards: %s", label, strings.Join(missing, ", "))
		}
		if filled == 0 {
			v.warnf("collection %s has no cards", label)
		}

		if col.CoverImage != "" {
			v.checkImage(fmt.Sprintf("collection %s cover", label), col.CoverImage)
		}
	}
}

// validatePlacement warns about cards no collection places
func (v *Validator) validatePlacement() {
	placed := map[string]bool{}
	for _, col := range v.config.Collections {
		for _, ref := range col.Slots {
			placed[strings.TrimSpace(ref)] = true
		}
	}
	for _, c := range v.config.Cards {
		if c.ID != "" && !placed[c.ID] {
			v.warnf("card %s is not placed in any collection", c.ID)
		}
	}
}

// checkImage warns about missing or unsupported local images. The album
// draws a placeholder for those, so they never fail validation. Remote URIs
// are not fetched.
func (v *Validator) checkImage(subject, ref string) {
	if strings.Contains(ref, "://") {
		return
	}

	ext := strings.ToLower(filepath.Ext(ref))
	supported := false
	for _, e := range supportedImageExts {
		if e == ext {
			supported = true
			break
		}
	}
	if !supported {
		v.warnf("%s: unsupported image format %q", subject, ext)
	}

	path := ref
	if !filepath.IsAbs(path) {
		path = filepath.Join(v.dir, ref)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		v.warnf("%s: image not found: %s", subject, ref)
	}
}

func rarityList() string {
	names := []string{}
	for _, r := range card.Rarities() {
		names = append(names, r.String())
	}
	return strings.Join(names, ", ")
}
