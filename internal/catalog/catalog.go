package catalog

import (
	"errors"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/microcosm-cc/bluemonday"

	"github.com/arcanaland/binder/internal/card"
)

// FileName is the catalog file looked up when a directory is given
const FileName = "catalog.toml"

var (
	ErrCollectionNotFound = errors.New("collection not found")
	ErrCardNotFound       = errors.New("card not found")
)

// Slot is one position in a collection. A nil Card means the slot is empty.
type Slot struct {
	Card *card.Card
}

// Empty reports whether the slot holds no card
func (s Slot) Empty() bool {
	return s.Card == nil
}

// Collection is an ordered sequence of slots. Collections are immutable once
// loaded and owned by their Catalog.
type Collection struct {
	ID          string
	Name        string
	Description string
	CoverImage  string
	Slots       []Slot
}

// CardCount returns the number of non-empty slots
func (c *Collection) CardCount() int {
	n := 0
	for _, s := range c.Slots {
		if !s.Empty() {
			n++
		}
	}
	return n
}

// Catalog represents a loaded collection catalog
type Catalog struct {
	Path string // Path of the catalog file
	Dir  string // Directory relative assets resolve against

	collections []*Collection
	byID        map[string]*Collection
	cards       map[string]*card.Card
	cardOrder   []*card.Card

	// Raw config data
	config *CatalogConfig
}

// Load loads a catalog from a catalog.toml file or a directory containing one
func Load(path string) (*Catalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("catalog not found: %w", err)
	}
	if info.IsDir() {
		path = filepath.Join(path, FileName)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("%s not found in %s", FileName, filepath.Dir(path))
		}
	}

	var config CatalogConfig
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", filepath.Base(path), err)
	}

	return FromConfig(&config, path)
}

// FromConfig builds a catalog from decoded configuration. path is used to
// resolve relative image paths and may be empty.
func FromConfig(config *CatalogConfig, path string) (*Catalog, error) {
	c := &Catalog{
		Path:   path,
		byID:   make(map[string]*Collection),
		cards:  make(map[string]*card.Card),
		config: config,
	}
	if path != "" {
		c.Dir = filepath.Dir(path)
	}

	if err := c.loadCards(); err != nil {
		return nil, fmt.Errorf("error loading cards: %w", err)
	}
	if err := c.loadCollections(); err != nil {
		return nil, fmt.Errorf("error loading collections: %w", err)
	}

	return c, nil
}

func (c *Catalog) loadCards() error {
	for _, section := range c.config.Cards {
		if section.ID == "" {
			return fmt.Errorf("card without id")
		}
		if _, dup := c.cards[section.ID]; dup {
			return fmt.Errorf("duplicate card id: %s", section.ID)
		}

		rarity, err := card.ParseRarity(section.Rarity)
		if err != nil {
			return fmt.Errorf("card %s: %w", section.ID, err)
		}

		cd := &card.Card{
			ID:     section.ID,
			Name:   section.Name,
			Image:  c.ResolveAsset(section.Image),
			Rarity: rarity,
		}
		for _, attr := range section.Attributes {
			cd.Attributes = append(cd.Attributes, card.Attribute{Trait: attr.Trait, Value: attr.Value})
		}

		c.cards[cd.ID] = cd
		c.cardOrder = append(c.cardOrder, cd)
	}
	return nil
}

func (c *Catalog) loadCollections() error {
	// Descriptions come from marketing copy and may carry markup. Output is
	// terminal text, so entities the policy escapes are decoded again.
	policy := bluemonday.StrictPolicy()

	for _, section := range c.config.Collections {
		if section.ID == "" {
			return fmt.Errorf("collection without id")
		}
		if _, dup := c.byID[section.ID]; dup {
			return fmt.Errorf("duplicate collection id: %s", section.ID)
		}

		col := &Collection{
			ID:          section.ID,
			Name:        section.Name,
			Description: strings.TrimSpace(html.UnescapeString(policy.Sanitize(section.Description))),
			CoverImage:  c.ResolveAsset(section.CoverImage),
			Slots:       make([]Slot, 0, len(section.Slots)),
		}
		for i, ref := range section.Slots {
			ref = strings.TrimSpace(ref)
			if ref == "" {
				col.Slots = append(col.Slots, Slot{})
				continue
			}
			cd, ok := c.cards[ref]
			if !ok {
				return fmt.Errorf("collection %s slot %d: %w: %s", section.ID, i, ErrCardNotFound, ref)
			}
			col.Slots = append(col.Slots, Slot{Card: cd})
		}

		c.byID[col.ID] = col
		c.collections = append(c.collections, col)
	}
	return nil
}

// ResolveAsset resolves a relative asset path against the catalog directory.
// URIs with a scheme and absolute paths are returned unchanged.
func (c *Catalog) ResolveAsset(ref string) string {
	if ref == "" || strings.Contains(ref, "://") || filepath.IsAbs(ref) || c.Dir == "" {
		return ref
	}
	return filepath.Join(c.Dir, ref)
}

// Collections returns the collections in catalog order
func (c *Catalog) Collections() []*Collection {
	out := make([]*Collection, len(c.collections))
	copy(out, c.collections)
	return out
}

// Collection gets a collection by its ID
func (c *Catalog) Collection(id string) (*Collection, error) {
	col, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCollectionNotFound, id)
	}
	return col, nil
}

// Card gets a card by its ID
func (c *Catalog) Card(id string) (*card.Card, error) {
	cd, ok := c.cards[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCardNotFound, id)
	}
	return cd, nil
}

// Cards returns all cards in catalog order
func (c *Catalog) Cards() []*card.Card {
	out := make([]*card.Card, len(c.cardOrder))
	copy(out, c.cardOrder)
	return out
}

// CollectionsWith returns the collections that place the given card
func (c *Catalog) CollectionsWith(cardID string) []*Collection {
	var out []*Collection
	for _, col := range c.collections {
		for _, s := range col.Slots {
			if !s.Empty() && s.Card.ID == cardID {
				out = append(out, col)
				break
			}
		}
	}
	return out
}

// Catalog configuration structures
type CatalogConfig struct {
	Collections []CollectionSection `toml:"collection"`
	Cards       []CardSection       `toml:"card"`
}

type CollectionSection struct {
	ID          string   `toml:"id"`
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	CoverImage  string   `toml:"cover_image"`
	Slots       []string `toml:"slots"`
}

type CardSection struct {
	ID         string             `toml:"id"`
	Name       string             `toml:"name"`
	Image      string             `toml:"image"`
	Rarity     string             `toml:"rarity"`
	Attributes []AttributeSection `toml:"attributes"`
}

type AttributeSection struct {
	Trait string `toml:"trait"`
	Value string `toml:"value"`
}
