package sprite_test

import (
	"fmt"

	"github.com/plus3/spritelist/sprite"
)

// drawCall records one call made to a recordingCanvas.
type drawCall struct {
	Op      string
	Tile    int
	X, Y    int
	CSet    int
	Flip    sprite.Flip
	Opacity int
}

func (c drawCall) String() string {
	return fmt.Sprintf("%s(%d @%d,%d cs%d f%d)", c.Op, c.Tile, c.X, c.Y, c.CSet, c.Flip)
}

type recordingCanvas struct {
	calls []drawCall
}

func (r *recordingCanvas) DrawTile(tile, x, y, cset int, flip sprite.Flip) {
	r.calls = append(r.calls, drawCall{Op: "tile", Tile: tile, X: x, Y: y, CSet: cset, Flip: flip})
}

func (r *recordingCanvas) DrawTileTranslucent(tile, x, y, cset int, flip sprite.Flip, opacity int) {
	r.calls = append(r.calls, drawCall{Op: "translucent", Tile: tile, X: x, Y: y, CSet: cset, Flip: flip, Opacity: opacity})
}

func (r *recordingCanvas) DrawTileCloaked(tile, x, y int, flip sprite.Flip) {
	r.calls = append(r.calls, drawCall{Op: "cloaked", Tile: tile, X: x, Y: y, Flip: flip})
}

func (r *recordingCanvas) DrawTile8(tile, x, y, cset int, flip sprite.Flip) {
	r.calls = append(r.calls, drawCall{Op: "tile8", Tile: tile, X: x, Y: y, CSet: cset, Flip: flip})
}

func (r *recordingCanvas) DrawTile8Translucent(tile, x, y, cset int, flip sprite.Flip, opacity int) {
	r.calls = append(r.calls, drawCall{Op: "translucent8", Tile: tile, X: x, Y: y, CSet: cset, Flip: flip, Opacity: opacity})
}

func (r *recordingCanvas) DrawCombo(combo, x, y, cset int) {
	r.calls = append(r.calls, drawCall{Op: "combo", Tile: combo, X: x, Y: y, CSet: cset})
}

func (r *recordingCanvas) Rect(x1, y1, x2, y2, color int) {
	r.calls = append(r.calls, drawCall{Op: "rect", X: x1, Y: y1, Tile: x2*1000 + y2, CSet: color})
}

func (r *recordingCanvas) RectFill(x1, y1, x2, y2, color int) {
	r.calls = append(r.calls, drawCall{Op: "rectfill", X: x1, Y: y1, Tile: x2*1000 + y2, CSet: color})
}

func (r *recordingCanvas) tiles() []int {
	out := make([]int, 0, len(r.calls))
	for _, c := range r.calls {
		out = append(out, c.Tile)
	}
	return out
}

func (r *recordingCanvas) reset() {
	r.calls = r.calls[:0]
}

// countingSprite records how often it was animated and asks to be removed
// once dieOnNext is set.
type countingSprite struct {
	sprite.Base
	visits    int
	dieOnNext bool
	destroyed int
}

func newCountingSprite(id int) *countingSprite {
	s := &countingSprite{Base: *sprite.New(nil)}
	s.ID = id
	s.Bind(s)
	return s
}

func (s *countingSprite) Animate(index int) bool {
	s.visits++
	s.Base.Animate(index)
	return s.dieOnNext
}

func (s *countingSprite) OnDestroy() {
	s.destroyed++
}

// stubAttachment tracks whether it was released.
type stubAttachment struct {
	released int
	object   any
}

func (a *stubAttachment) Object() any { return a.object }

func (a *stubAttachment) Release() { a.released++ }

// visible returns a collidable sprite at the given pixel position.
func visible(x, y int) *sprite.Base {
	b := sprite.New(nil)
	b.ID = 0
	b.X = sprite.FromInt(x)
	b.Y = sprite.FromInt(y)
	return b
}
