package main

import (
	"math/rand"

	"github.com/plus3/spritelist/sprite"
)

const (
	fieldWidth  = 256
	fieldHeight = 176
)

// walker wanders the playing field until its life runs out.
type walker struct {
	sprite.Base
	life int
}

func newWalker(rng *rand.Rand, frame *sprite.Frame, id int) *walker {
	w := &walker{Base: *sprite.New(frame), life: 30 + rng.Intn(300)}
	w.ID = id
	w.Tile = rng.Intn(200)
	w.CSet = rng.Intn(12)
	w.ShadowTile = 1 + rng.Intn(4)
	w.Dir = sprite.Direction(rng.Intn(8))
	w.X = sprite.FromInt(rng.Intn(fieldWidth - 16))
	w.Y = sprite.FromInt(rng.Intn(fieldHeight - 16))
	w.Extend = rng.Intn(4)
	if w.Extend == 3 {
		w.TXSz, w.TYSz = 2, 2
	}
	w.CanFreeze = rng.Intn(4) == 0
	w.Clk = -rng.Intn(16)
	w.Bind(w)
	return w
}

func (w *walker) Animate(index int) bool {
	w.Base.Animate(index)
	w.Clk++
	w.MoveSpeed(sprite.FixOne)
	if x := w.X.Int(); x < 0 || x > fieldWidth-16 {
		w.Dir = mirrorX(w.Dir)
	}
	if y := w.Y.Int(); y < 0 || y > fieldHeight-16 {
		w.Dir = mirrorY(w.Dir)
	}
	w.life--
	return w.life <= 0
}

func mirrorX(d sprite.Direction) sprite.Direction {
	switch d {
	case sprite.Left:
		return sprite.Right
	case sprite.Right:
		return sprite.Left
	case sprite.LeftUp:
		return sprite.RightUp
	case sprite.RightUp:
		return sprite.LeftUp
	case sprite.LeftDown:
		return sprite.RightDown
	case sprite.RightDown:
		return sprite.LeftDown
	}
	return d
}

func mirrorY(d sprite.Direction) sprite.Direction {
	switch d {
	case sprite.Up:
		return sprite.Down
	case sprite.Down:
		return sprite.Up
	case sprite.LeftUp:
		return sprite.LeftDown
	case sprite.LeftDown:
		return sprite.LeftUp
	case sprite.RightUp:
		return sprite.RightDown
	case sprite.RightDown:
		return sprite.RightUp
	}
	return d
}

// newShot fires a fast projectile that expires after a fixed distance.
func newShot(rng *rand.Rand, frame *sprite.Frame) *walker {
	w := newWalker(rng, frame, 0)
	w.life = 20
	w.Extend = 0
	w.TXSz, w.TYSz = 1, 1
	w.HXSz, w.HYSz = 8, 8
	w.Clk = 0
	return w
}
