package sprite

// TilesPerRow is the width of the tile sheet in tiles.
const TilesPerRow = 20

// Opacity used by translucent draw styles.
const translucentOpacity = 128

// Flip is a bit set of horizontal (1) and vertical (2) mirroring.
type Flip int

const (
	FlipNone       Flip = 0
	FlipHorizontal Flip = 1
	FlipVertical   Flip = 2
	FlipBoth       Flip = FlipHorizontal | FlipVertical
)

// DrawStyle selects how tiles are composited.
type DrawStyle int

const (
	StyleNormal DrawStyle = iota
	StyleTranslucent
	StyleCloaked
	// StyleNormalAlt draws like StyleNormal; variants use it to mark a
	// second visual state.
	StyleNormalAlt
)

func (s DrawStyle) String() string {
	switch s {
	case StyleNormal:
		return "normal"
	case StyleTranslucent:
		return "translucent"
	case StyleCloaked:
		return "cloaked"
	case StyleNormalAlt:
		return "normal-alt"
	}
	return "unknown"
}

// Canvas is the render backend a sprite draws to. Coordinates are screen
// pixels; tiles are 16x16 unless noted.
type Canvas interface {
	DrawTile(tile, x, y, cset int, flip Flip)
	DrawTileTranslucent(tile, x, y, cset int, flip Flip, opacity int)
	DrawTileCloaked(tile, x, y int, flip Flip)
	DrawTile8(tile, x, y, cset int, flip Flip)
	DrawTile8Translucent(tile, x, y, cset int, flip Flip, opacity int)
	DrawCombo(combo, x, y, cset int)
	Rect(x1, y1, x2, y2, color int)
	RectFill(x1, y1, x2, y2, color int)
}

// drawStyled dispatches a 16x16 tile according to the draw style.
func drawStyled(dst Canvas, style DrawStyle, tile, x, y, cset int, flip Flip) {
	switch style {
	case StyleNormal, StyleNormalAlt:
		dst.DrawTile(tile, x, y, cset, flip)
	case StyleTranslucent:
		dst.DrawTileTranslucent(tile, x, y, cset, flip, translucentOpacity)
	case StyleCloaked:
		dst.DrawTileCloaked(tile, x, y, flip)
	}
}
