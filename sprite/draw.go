package sprite

// Spawn animation thresholds: the clock is negative while a sprite spawns and
// the spawn tile advances once the clock passes each threshold.
const (
	spawnStepShort1 = -10
	spawnStepShort2 = -5
	spawnStepLong1  = -12
	spawnStepLong2  = -6
)

func (b *Base) screenPos() (sx, sy int) {
	sx = b.RealX(b.X + FromInt(b.XOfs))
	sy = b.RealY(b.Y+FromInt(b.YOfs)) - b.RealZ(b.Z+FromInt(b.ZOfs))
	return sx, sy
}

// spawnSteps returns how many spawn frames have elapsed for the clock.
func spawnSteps(clk int, f *Frame) int {
	first, second := spawnStepLong1, spawnStepLong2
	if f != nil && f.BSZ {
		first, second = spawnStepShort1, spawnStepShort2
	}
	n := 0
	if clk >= first {
		n++
	}
	if clk >= second {
		n++
	}
	return n
}

func flipStep(flip Flip) int {
	if flip != 0 {
		return -1
	}
	return 1
}

// Draw renders the sprite with its extend mode and draw style. While the
// clock is negative the spawn animation is drawn instead.
func (b *Base) Draw(dst Canvas, f *Frame) {
	if f != nil && !f.ShowSprites {
		return
	}
	sx, sy := b.screenPos()
	if b.ID < 0 {
		return
	}

	e := min(b.Extend, 3)

	if b.Clk >= 0 {
		switch e {
		case 1:
			drawStyled(dst, b.DrawStyle, b.Tile-TilesPerRow, sx, sy-16, b.CSet, b.Flip)
			drawStyled(dst, b.DrawStyle, b.Tile, sx, sy, b.CSet, b.Flip)
		case 2:
			step := flipStep(b.Flip)
			top := b.Tile - TilesPerRow
			drawStyled(dst, b.DrawStyle, top, sx, sy-16, b.CSet, b.Flip)
			drawStyled(dst, b.DrawStyle, top-step, sx-16, sy-16, b.CSet, b.Flip)
			drawStyled(dst, b.DrawStyle, top+step, sx+16, sy-16, b.CSet, b.Flip)
			drawStyled(dst, b.DrawStyle, b.Tile, sx, sy, b.CSet, b.Flip)
			drawStyled(dst, b.DrawStyle, b.Tile-step, sx-16, sy, b.CSet, b.Flip)
			drawStyled(dst, b.DrawStyle, b.Tile+step, sx+16, sy, b.CSet, b.Flip)
		case 3:
			b.drawGrid(dst, sx, sy)
		default:
			drawStyled(dst, b.DrawStyle, b.Tile, sx, sy, b.CSet, b.Flip)
		}
	} else if e != 3 {
		spawn := f.Weapon(spawnWeapon(f))
		dst.DrawTile(spawn.Tile+spawnSteps(b.Clk, f), sx, sy, spawn.CSets&15, FlipNone)
	} else {
		b.drawSpawnGrid(dst, f, sx, sy)
	}

	if f != nil && f.ShowHitboxes && !f.Editor {
		x := b.X.Round() + b.HXOfs
		y := b.Y.Round() + f.PlayingFieldOffset + b.HYOfs - (b.Z.Round() + b.ZOfs)
		dst.Rect(x, y, x+b.HXSz-1, y+b.HYSz-1, (b.ID+16)%255)
	}
}

// drawGrid draws a TXSz x TYSz block of tiles starting at Tile. Flipping
// mirrors the walk order; tiles that would wrap past the sheet row are
// pulled from the rows below instead.
func (b *Base) drawGrid(dst Canvas, sx, sy int) {
	for i := 0; i < b.TYSz; i++ {
		for j := 0; j < b.TXSz; j++ {
			t := b.Tile + i*TilesPerRow + j
			if t%TilesPerRow < j {
				t += TilesPerRow * (b.TYSz - 1)
			}
			col, row := j, i
			if b.Flip&FlipHorizontal != 0 {
				col = b.TXSz - j - 1
			}
			if b.Flip&FlipVertical != 0 {
				row = b.TYSz - i - 1
			}
			drawStyled(dst, b.DrawStyle, t, sx+col*16, sy+row*16, b.CSet, b.Flip)
		}
	}
}

// drawSpawnGrid draws the spawn animation for grid sprites through a
// transient sprite that shares the grid geometry.
func (b *Base) drawSpawnGrid(dst Canvas, f *Frame, sx, sy int) {
	ws := f.Weapon(b.Extend)
	w := NewAt(FromInt(sx), FromInt(sy), ws.Tile, ws.CSets&15, FlipNone, 0, 0)
	w.TXSz = b.TXSz
	w.TYSz = b.TYSz
	w.Extend = 3

	advance := b.TXSz
	if b.Tile/TilesPerRow != (b.Tile+b.TXSz)/TilesPerRow {
		advance += (b.TYSz - 1) * TilesPerRow
	}
	w.Tile += advance * spawnSteps(b.Clk, f)
	w.drawGrid(dst, sx, sy)
}

// Draw8 renders the sprite as a single 8x8 tile. Only the normal and
// translucent styles are drawn.
func (b *Base) Draw8(dst Canvas, f *Frame) {
	sx, sy := b.screenPos()
	if b.ID < 0 || b.Clk < 0 {
		return
	}
	switch b.DrawStyle {
	case StyleNormal:
		dst.DrawTile8(b.Tile, sx, sy, b.CSet, b.Flip)
	case StyleTranslucent:
		dst.DrawTile8Translucent(b.Tile, sx, sy, b.CSet, b.Flip, translucentOpacity)
	}
}

// DrawCloaked renders the sprite's tile with the cloaking effect.
func (b *Base) DrawCloaked(dst Canvas, f *Frame) {
	sx, sy := b.screenPos()
	if b.ID < 0 {
		return
	}
	if b.Clk >= 0 {
		dst.DrawTileCloaked(b.Tile, sx, sy, b.Flip)
	} else {
		spawn := f.Weapon(spawnWeapon(f))
		dst.DrawTile(spawn.Tile+spawnSteps(b.Clk, f), b.X.Round(), sy, spawn.CSets&15, FlipNone)
	}

	if f != nil && f.Debug && f.InspectKey {
		x := b.X.Round() + b.HXOfs
		dst.RectFill(x, sy+b.HYOfs, x+b.HXSz-1, sy+b.HYOfs+b.HYSz-1, b.ID)
	}
}

// DrawShadow renders the shadow tile under the sprite. Extend mode 4, a zero
// shadow tile and inert sprites draw no shadow.
func (b *Base) DrawShadow(dst Canvas, f *Frame, translucent bool) {
	if b.Extend == 4 || b.ShadowTile == 0 || b.ID < 0 {
		return
	}
	shadow := f.Weapon(shadowWeapon(f))
	cs := shadow.CSets & 0xFFFF
	flip := Flip(shadow.Misc & 0xFF)

	sx := b.RealX(b.X+FromInt(b.XOfs)) + (b.TXSz-1)*8
	sy := b.RealY(b.Y + FromInt(b.YOfs+(b.TYSz-1)*16))

	if b.Clk < 0 {
		return
	}
	if translucent {
		dst.DrawTileTranslucent(b.ShadowTile, sx, sy, cs, flip, translucentOpacity)
	} else {
		dst.DrawTile(b.ShadowTile, sx, sy, cs, flip)
	}
}

// Draw2 is a second, top layer pass. The base sprite draws nothing.
func (b *Base) Draw2(Canvas, *Frame) {}

// DrawCloaked2 is the cloaked counterpart of Draw2.
func (b *Base) DrawCloaked2(Canvas, *Frame) {}

func spawnWeapon(f *Frame) int {
	if f == nil {
		return 0
	}
	return f.SpawnWeapon
}

func shadowWeapon(f *Frame) int {
	if f == nil {
		return 0
	}
	return f.ShadowWeapon
}
