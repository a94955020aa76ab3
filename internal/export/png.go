// Package export renders album pages to images.
package export

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/nfnt/resize"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/arcanaland/binder/internal/album"
	"github.com/arcanaland/binder/internal/ansiart"
	"github.com/arcanaland/binder/internal/card"
)

// Layout in pixels
const (
	cardWidth  = 220
	cardHeight = 300
	gutter     = 24
	headerSize = 56
	fontSize   = 14.0
	lineHeight = 18.0
)

// RarityColors maps each rarity to its frame color
var RarityColors = map[card.Rarity]color.RGBA{
	card.Common:    {158, 158, 158, 255},
	card.Uncommon:  {76, 175, 80, 255},
	card.Rare:      {33, 150, 243, 255},
	card.Epic:      {156, 39, 176, 255},
	card.Legendary: {255, 160, 0, 255},
}

// Size returns the pixel size of an exported page
func Size() (int, int) {
	w := album.Columns*cardWidth + (album.Columns+1)*gutter
	h := headerSize + album.Rows*cardHeight + (album.Rows+1)*gutter
	return w, h
}

// Page draws the visible page of v as a PNG at path
func Page(v album.View, path string) error {
	if v.CollectionID == "" || len(v.Front) == 0 {
		return fmt.Errorf("nothing to export")
	}

	dc, err := Draw(v)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Draw renders the visible page of v onto a new context
func Draw(v album.View) (*gg.Context, error) {
	w, h := Size()
	dc := gg.NewContext(w, h)
	dc.SetColor(color.RGBA{24, 24, 32, 255})
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	dc.SetFontFace(truetype.NewFace(ttfFont, &truetype.Options{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	dc.SetColor(color.White)
	dc.DrawStringAnchored(fmt.Sprintf("%s  ·  page %d/%d", v.CollectionName, v.Page+1, v.PageCount),
		float64(w)/2, headerSize/2+float64(gutter)/2, 0.5, 0.5)

	for _, slot := range v.Front {
		col := slot.Local % album.Columns
		row := slot.Local / album.Columns
		x := float64(gutter + col*(cardWidth+gutter))
		y := float64(headerSize + gutter + row*(cardHeight+gutter))
		drawSlot(dc, slot, x, y)
	}
	return dc, nil
}

func drawSlot(dc *gg.Context, slot album.SlotView, x, y float64) {
	if slot.Empty {
		dc.SetColor(color.RGBA{70, 70, 80, 255})
		dc.SetDash(6, 6)
		dc.SetLineWidth(2)
		dc.DrawRoundedRectangle(x, y, cardWidth, cardHeight, 12)
		dc.Stroke()
		dc.SetDash()
		return
	}

	frame := RarityColors[slot.Card.Rarity]
	dc.SetColor(color.RGBA{40, 40, 52, 255})
	dc.DrawRoundedRectangle(x, y, cardWidth, cardHeight, 12)
	dc.Fill()
	dc.SetColor(frame)
	dc.SetLineWidth(4)
	dc.DrawRoundedRectangle(x, y, cardWidth, cardHeight, 12)
	dc.Stroke()

	if slot.Revealed {
		drawBack(dc, slot.Card, x, y)
		return
	}
	drawFront(dc, slot.Card, frame, x, y)
}

func drawFront(dc *gg.Context, c *card.Card, frame color.RGBA, x, y float64) {
	artTop := y + 16
	artSize := uint(cardWidth - 32)
	if img, err := localImage(c.Image); err == nil {
		thumb := resize.Thumbnail(artSize, artSize, img, resize.Lanczos3)
		b := thumb.Bounds()
		dc.DrawImage(thumb, int(x)+16+(int(artSize)-b.Dx())/2, int(artTop)+(int(artSize)-b.Dy())/2)
	} else {
		dc.SetColor(color.RGBA{frame.R / 3, frame.G / 3, frame.B / 3, 255})
		dc.DrawRectangle(x+16, artTop, float64(artSize), float64(artSize))
		dc.Fill()
	}

	dc.SetColor(color.White)
	dc.DrawStringAnchored(c.Name, x+cardWidth/2, y+cardHeight-48, 0.5, 0.5)
	dc.SetColor(frame)
	dc.DrawStringAnchored(c.Rarity.String(), x+cardWidth/2, y+cardHeight-24, 0.5, 0.5)
}

func drawBack(dc *gg.Context, c *card.Card, x, y float64) {
	dc.SetColor(color.White)
	dc.DrawStringAnchored(c.Name, x+cardWidth/2, y+28, 0.5, 0.5)

	lineY := y + 64
	for _, a := range c.Attributes {
		if lineY > y+cardHeight-24 {
			break
		}
		dc.SetColor(color.RGBA{170, 170, 190, 255})
		dc.DrawString(card.TraitLabel(a.Trait), x+16, lineY)
		dc.SetColor(color.White)
		dc.DrawStringAnchored(a.Value, x+cardWidth-16, lineY, 1, 0)
		lineY += lineHeight
	}
}

// localImage decodes a card image from disk. Remote URIs are not fetched.
func localImage(ref string) (image.Image, error) {
	if ref == "" || strings.Contains(ref, "://") {
		return nil, fmt.Errorf("no local image")
	}
	return ansiart.DecodeFile(ref)
}
