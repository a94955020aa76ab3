package card

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Card represents a collectible card
type Card struct {
	ID         string      // Canonical ID (e.g., genesis.ember-fox)
	Name       string      // Display name
	Image      string      // Image URI, resolved against the catalog directory when relative
	Rarity     Rarity      // Rarity tier
	Attributes []Attribute // Ordered trait list
}

// Attribute is a single trait of a card. Order is preserved from the catalog.
type Attribute struct {
	Trait string
	Value string
}

// Rarity is the rarity tier of a card
type Rarity int

const (
	Common Rarity = iota
	Uncommon
	Rare
	Epic
	Legendary
)

var rarityNames = []string{"Common", "Uncommon", "Rare", "Epic", "Legendary"}

func (r Rarity) String() string {
	if r < Common || r > Legendary {
		return fmt.Sprintf("Rarity(%d)", int(r))
	}
	return rarityNames[r]
}

// ParseRarity parses a rarity name case-insensitively
func ParseRarity(s string) (Rarity, error) {
	name := cases.Title(language.English).String(strings.TrimSpace(s))
	for i, n := range rarityNames {
		if n == name {
			return Rarity(i), nil
		}
	}
	return Common, fmt.Errorf("unknown rarity: %q", s)
}

// Rarities returns all rarity tiers from lowest to highest
func Rarities() []Rarity {
	return []Rarity{Common, Uncommon, Rare, Epic, Legendary}
}

// TraitLabel formats a raw trait key (e.g., "eye_color") for display
func TraitLabel(trait string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(trait, "_", " "))
}
