// Package ebitenrender implements sprite.Canvas on top of ebiten images.
package ebitenrender

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/spritelist/sprite"
)

const (
	cloakedAlpha = 0.25
	cloakedShade = 0.1
)

var _ sprite.Canvas = (*Canvas)(nil)

// Canvas draws sprite tiles from a TileSheet onto a target image. CSets pick
// a tint from the palette; Rect colors index the color table.
type Canvas struct {
	dst     *ebiten.Image
	sheet   *TileSheet
	palette []color.Color
	colors  []color.Color
	combos  []int
}

type Option func(*Canvas)

// WithPalette sets the per-cset tint. CSets outside the palette draw untinted.
func WithPalette(p []color.Color) Option {
	return func(c *Canvas) { c.palette = p }
}

// WithColors sets the table used by Rect and RectFill.
func WithColors(colors []color.Color) Option {
	return func(c *Canvas) { c.colors = colors }
}

// WithCombos maps combo indices to sheet tiles. Combos outside the table
// are drawn as the tile with the same number.
func WithCombos(tiles []int) Option {
	return func(c *Canvas) { c.combos = tiles }
}

func New(dst *ebiten.Image, sheet *TileSheet, opts ...Option) *Canvas {
	c := &Canvas{
		dst:    dst,
		sheet:  sheet,
		colors: DefaultColors(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetTarget switches the image drawn to, typically the screen handed to
// ebiten's Draw.
func (c *Canvas) SetTarget(dst *ebiten.Image) { c.dst = dst }

func (c *Canvas) Target() *ebiten.Image { return c.dst }

func (c *Canvas) DrawTile(tile, x, y, cset int, flip sprite.Flip) {
	c.blit(c.sheet.Tile(tile), tileOptions(x, y, TileSize, flip, c.tint(cset), 1))
}

func (c *Canvas) DrawTileTranslucent(tile, x, y, cset int, flip sprite.Flip, opacity int) {
	c.blit(c.sheet.Tile(tile), tileOptions(x, y, TileSize, flip, c.tint(cset), alpha(opacity)))
}

// DrawTileCloaked draws the tile as a faint dark silhouette.
func (c *Canvas) DrawTileCloaked(tile, x, y int, flip sprite.Flip) {
	op := tileOptions(x, y, TileSize, flip, nil, cloakedAlpha)
	op.ColorScale.Scale(cloakedShade, cloakedShade, cloakedShade, 1)
	c.blit(c.sheet.Tile(tile), op)
}

func (c *Canvas) DrawTile8(tile, x, y, cset int, flip sprite.Flip) {
	c.blit(c.sheet.Tile8(tile), tileOptions(x, y, TileSize/2, flip, c.tint(cset), 1))
}

func (c *Canvas) DrawTile8Translucent(tile, x, y, cset int, flip sprite.Flip, opacity int) {
	c.blit(c.sheet.Tile8(tile), tileOptions(x, y, TileSize/2, flip, c.tint(cset), alpha(opacity)))
}

func (c *Canvas) DrawCombo(combo, x, y, cset int) {
	c.DrawTile(c.comboTile(combo), x, y, cset, sprite.FlipNone)
}

// Rect outlines the inclusive box (x1,y1)-(x2,y2).
func (c *Canvas) Rect(x1, y1, x2, y2, color int) {
	w, h := x2-x1, y2-y1
	vector.StrokeRect(c.dst, float32(x1)+0.5, float32(y1)+0.5, float32(w), float32(h), 1, c.color(color), false)
}

// RectFill fills the inclusive box (x1,y1)-(x2,y2).
func (c *Canvas) RectFill(x1, y1, x2, y2, color int) {
	w, h := x2-x1+1, y2-y1+1
	vector.DrawFilledRect(c.dst, float32(x1), float32(y1), float32(w), float32(h), c.color(color), false)
}

func (c *Canvas) blit(src *ebiten.Image, op *ebiten.DrawImageOptions) {
	if src == nil || c.dst == nil {
		return
	}
	c.dst.DrawImage(src, op)
}

func (c *Canvas) tint(cset int) color.Color {
	if cset < 0 || cset >= len(c.palette) {
		return nil
	}
	return c.palette[cset]
}

func (c *Canvas) color(i int) color.Color {
	if i < 0 || i >= len(c.colors) {
		return color.White
	}
	return c.colors[i]
}

func (c *Canvas) comboTile(combo int) int {
	if combo >= 0 && combo < len(c.combos) {
		return c.combos[combo]
	}
	return combo
}

// tileOptions positions a size x size tile at (x, y). Flipping mirrors the
// tile in place so the drawn box does not move.
func tileOptions(x, y, size int, flip sprite.Flip, tint color.Color, a float32) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	if flip&sprite.FlipHorizontal != 0 {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(size), 0)
	}
	if flip&sprite.FlipVertical != 0 {
		op.GeoM.Scale(1, -1)
		op.GeoM.Translate(0, float64(size))
	}
	op.GeoM.Translate(float64(x), float64(y))
	if tint != nil {
		op.ColorScale.ScaleWithColor(tint)
	}
	op.ColorScale.ScaleAlpha(a)
	return op
}

func alpha(opacity int) float32 {
	return float32(min(max(opacity, 0), 255)) / 255
}

// DefaultColors returns a 256 entry color table. Index 0 is black; the rest
// cycle through distinguishable hues.
func DefaultColors() []color.Color {
	colors := make([]color.Color, 256)
	colors[0] = color.Black
	for i := 1; i < len(colors); i++ {
		colors[i] = color.RGBA{
			R: uint8(64 + (i*67)%192),
			G: uint8(64 + (i*131)%192),
			B: uint8(64 + (i*29)%192),
			A: 0xff,
		}
	}
	return colors
}
