package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/binder/internal/ansiart"
	"github.com/arcanaland/binder/internal/card"
	"github.com/arcanaland/binder/internal/catalog"
	"github.com/arcanaland/binder/internal/config"
)

var showNoArt bool

var showCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display a card with ANSI art",
	Long: `Show displays a card's name, rarity, traits and the collections that
hold it. When the card has a local image it is drawn as terminal art.

Examples:
  binder show ember-fox
  binder show --catalog ./catalog.toml tide-owl
  binder show --no-art ember-fox`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		c, err := cat.Card(args[0])
		if err != nil {
			return fmt.Errorf("error getting card: %w", err)
		}

		art := ""
		if !showNoArt {
			art = cardArt(c)
		}

		displayCard(cmd.OutOrStdout(), c, art, cat.CollectionsWith(c.ID))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolVar(&showNoArt, "no-art", false, "don't render the card image")
}

// cardArt renders the card image, or returns "" when there is nothing local
// to draw. Image paths are already resolved by the catalog.
func cardArt(c *card.Card) string {
	path := c.Image
	if path == "" || strings.Contains(path, "://") {
		return ""
	}

	art, err := ansiart.Load(path, config.GetCacheDir(), ansiart.DefaultWidth, ansiart.DefaultHeight)
	if err != nil {
		logger.Warn("card art unavailable", "card", c.ID, "image", path, "error", err)
		return ""
	}
	return strings.TrimRight(art, "\n")
}

// wrapText splits text into lines of at most width runes
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if utf8.RuneCountInString(line)+1+utf8.RuneCountInString(word) <= width {
			line += " " + word
			continue
		}
		lines = append(lines, line)
		line = word
	}
	return append(lines, line)
}

func rarityString(r card.Rarity) string {
	switch r {
	case card.Uncommon:
		return colorize.GreenString(r.String())
	case card.Rare:
		return colorize.BlueString(r.String())
	case card.Epic:
		return colorize.MagentaString(r.String())
	case card.Legendary:
		return colorize.YellowString(r.String())
	default:
		return colorize.WhiteString(r.String())
	}
}

// displayCard prints the art on the left and the card details beside it
func displayCard(w io.Writer, c *card.Card, art string, holders []*catalog.Collection) {
	var artLines []string
	artWidth := 0
	if art != "" {
		artLines = strings.Split(art, "\n")
		for _, line := range artLines {
			artWidth = max(artWidth, utf8.RuneCountInString(ansiart.Strip(line)))
		}
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}

	label := colorize.CyanString
	info := []string{
		label("Card:   ") + colorize.HiWhiteString("%s", c.Name),
		label("ID:     ") + colorize.HiWhiteString("%s", c.ID),
		label("Rarity: ") + rarityString(c.Rarity),
	}

	if len(c.Attributes) > 0 {
		info = append(info, "", label("Traits:"))
		for _, a := range c.Attributes {
			info = append(info, fmt.Sprintf("  %s %s", colorize.HiBlackString("%s:", card.TraitLabel(a.Trait)), a.Value))
		}
	}

	info = append(info, "", label("Collections:"))
	if len(holders) == 0 {
		info = append(info, colorize.HiBlackString("  not placed in any collection"))
	}

	spacing := 4
	infoStart := 0
	if artWidth > 0 {
		infoStart = artWidth + spacing
	}
	infoWidth := max(width-infoStart-4, 20)
	for _, col := range holders {
		for _, line := range wrapText(fmt.Sprintf("%s (%s)", col.Name, col.ID), infoWidth-2) {
			info = append(info, "  "+line)
		}
	}

	fmt.Fprintln(w)
	for i := 0; i < max(len(artLines), len(info)); i++ {
		fmt.Fprint(w, "  ")
		if artWidth > 0 {
			if i < len(artLines) {
				fmt.Fprint(w, artLines[i])
				fmt.Fprint(w, strings.Repeat(" ", infoStart-utf8.RuneCountInString(ansiart.Strip(artLines[i]))))
			} else {
				fmt.Fprint(w, strings.Repeat(" ", infoStart))
			}
		}
		if i < len(info) {
			fmt.Fprint(w, info[i])
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}
