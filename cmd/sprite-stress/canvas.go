package main

import "github.com/plus3/spritelist/sprite"

// countingCanvas is a headless render target that only counts draw calls.
type countingCanvas struct {
	tiles    int64
	combos   int64
	outlines int64
}

var _ sprite.Canvas = (*countingCanvas)(nil)

func (c *countingCanvas) DrawTile(int, int, int, int, sprite.Flip) { c.tiles++ }

func (c *countingCanvas) DrawTileTranslucent(int, int, int, int, sprite.Flip, int) { c.tiles++ }

func (c *countingCanvas) DrawTileCloaked(int, int, int, sprite.Flip) { c.tiles++ }

func (c *countingCanvas) DrawTile8(int, int, int, int, sprite.Flip) { c.tiles++ }

func (c *countingCanvas) DrawTile8Translucent(int, int, int, int, sprite.Flip, int) { c.tiles++ }

func (c *countingCanvas) DrawCombo(int, int, int, int) { c.combos++ }

func (c *countingCanvas) Rect(int, int, int, int, int) { c.outlines++ }

func (c *countingCanvas) RectFill(int, int, int, int, int) { c.outlines++ }
