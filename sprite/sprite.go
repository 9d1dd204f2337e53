package sprite

import "math"

// MiscSlots is the number of script-assignable integer slots per sprite.
const MiscSlots = 16

// Sprite is the per-entity contract driven by a Registry. *Base implements
// every method; variants embed Base and override what they need.
type Sprite interface {
	// Core returns the shared sprite state.
	Core() *Base
	// Animate advances the sprite one frame. Returning true asks the owning
	// registry to delete it immediately.
	Animate(index int) bool
	Draw(dst Canvas, f *Frame)
	DrawShadow(dst Canvas, f *Frame, translucent bool)
	Draw2(dst Canvas, f *Frame)
	DrawCloaked2(dst Canvas, f *Frame)
}

// Destroyer is implemented by variants that release resources of their own
// when the sprite is destroyed.
type Destroyer interface {
	OnDestroy()
}

// ConveyorChecker is implemented by sprites affected by conveyor combos.
type ConveyorChecker interface {
	CheckConveyor()
}

// Attachment is script-side data exclusively owned by a sprite.
type Attachment interface {
	Object() any
	Release()
}

// Base is a single game entity: transform, animation clocks, collision box
// and draw parameters.
type Base struct {
	X, Y, Z Fix
	Fall    Fix

	Tile       int
	ShadowTile int
	CSet       int
	Flip       Flip
	Clk        int
	CClk       int
	Misc       int

	XOfs, YOfs, ZOfs    int
	HXOfs, HYOfs        int
	HXSz, HYSz, HZSz    int
	TXSz, TYSz          int
	ID                  int
	Dir                 Direction
	Angular, CanFreeze  bool
	Angle               float64
	LastHit, LastHitClk int
	DrawStyle           DrawStyle
	Extend              int
	ScriptColDet        int
	Miscellaneous       [MiscSlots]int

	uid         UID
	toBeDeleted bool
	destroyed   bool
	script      Attachment
	ref         *EntityRef
	owner       *Registry
	self        Sprite
}

// New returns an inert sprite with a fresh UID. The vertical draw offset
// starts at the frame's playing field offset; f may be nil.
func New(f *Frame) *Base {
	b := &Base{
		uid:          NextUID(),
		HXSz:         16,
		HYSz:         16,
		HZSz:         1,
		TXSz:         1,
		TYSz:         1,
		ID:           -1,
		Dir:          Down,
		YOfs:         f.fieldOffset(),
		ScriptColDet: 1,
	}
	b.self = b
	return b
}

// NewAt returns a sprite at the given position with the given tile
// parameters. It is used for transient sprites that are drawn once.
func NewAt(x, y Fix, tile, cset int, flip Flip, clk, yofs int) *Base {
	b := &Base{
		uid:          NextUID(),
		X:            x,
		Y:            y,
		Tile:         tile,
		CSet:         cset,
		Flip:         flip,
		Clk:          clk,
		YOfs:         yofs,
		HXSz:         16,
		HYSz:         16,
		HZSz:         1,
		TXSz:         1,
		TYSz:         1,
		ID:           -1,
		Dir:          Down,
		ScriptColDet: 1,
	}
	b.self = b
	return b
}

// Bind records the outer variant that embeds b so that destruction hooks
// and entity refs resolve to it. Variant constructors call it once.
func (b *Base) Bind(outer Sprite) {
	b.self = outer
	if b.ref != nil {
		b.ref.sprite = outer
	}
}

// Clone copies the visual and physical state into a new, independent sprite
// with a fresh UID, no script data and no pending deletion.
func (b *Base) Clone() *Base {
	c := new(Base)
	*c = *b
	c.uid = NextUID()
	c.toBeDeleted = false
	c.destroyed = false
	c.script = nil
	c.ref = nil
	c.owner = nil
	c.self = c
	return c
}

func (b *Base) Core() *Base { return b }

// UID returns the sprite's current key.
func (b *Base) UID() UID { return b.uid }

// Ref returns the shared entity reference for this sprite.
func (b *Base) Ref() *EntityRef {
	if b.ref == nil {
		b.ref = &EntityRef{}
		if !b.destroyed {
			b.ref.sprite = b.self
		}
	}
	return b.ref
}

// MarkForDeletion flags the sprite; the owning registry deletes it on its
// next animate pass.
func (b *Base) MarkForDeletion() { b.toBeDeleted = true }

func (b *Base) MarkedForDeletion() bool { return b.toBeDeleted }

// Destroyed reports whether Destroy has run for this sprite.
func (b *Base) Destroyed() bool { return b.destroyed }

// SetScriptData attaches script data, releasing any previous attachment.
func (b *Base) SetScriptData(a Attachment) {
	if b.script != nil && b.script != a {
		b.script.Release()
	}
	b.script = a
}

func (b *Base) ScriptData() Attachment { return b.script }

// ScriptObject returns the script-side object, or nil without an attachment.
func (b *Base) ScriptObject() any {
	if b.script == nil {
		return nil
	}
	return b.script.Object()
}

// Destroy ends the sprite's life: outstanding refs report gone, variant
// hooks run and the script attachment is released. Calling it twice is a no-op.
func Destroy(s Sprite) {
	b := s.Core()
	if b.destroyed {
		return
	}
	b.destroyed = true
	b.owner = nil
	if b.ref != nil {
		b.ref.invalidate()
	}
	if d, ok := s.(Destroyer); ok {
		d.OnDestroy()
	}
	if b.script != nil {
		b.script.Release()
		b.script = nil
	}
}

// Animate advances the secondary clock.
func (b *Base) Animate(int) bool {
	b.CClk++
	return false
}

// RealX converts a fixed point x to pixels. Sprites facing right-up or
// left-down round fractional positions up.
func (b *Base) RealX(fx Fix) int {
	rx := fx.Int()
	switch b.Dir {
	case 9, 13:
		if fx.Frac() != 0 {
			rx++
		}
	}
	return rx
}

func (b *Base) RealY(fy Fix) int { return fy.Int() }

func (b *Base) RealZ(fz Fix) int { return fz.Int() }

func (b *Base) collides() bool {
	return b.ScriptColDet&1 != 0
}

// Hit reports whether the two sprites' collision boxes overlap.
func (b *Base) Hit(other Sprite) bool {
	if !b.collides() {
		return false
	}
	o := other.Core()
	if b.ID < 0 || o.ID < 0 || b.Clk < 0 {
		return false
	}
	return b.HitBox((o.X + FromInt(o.HXOfs)).Round(), (o.Y + FromInt(o.HYOfs)).Round(), (o.Z + FromInt(o.ZOfs)).Round(),
		o.HXSz, o.HYSz, o.HZSz)
}

// HitBox reports whether the box strictly overlaps the sprite's collision box
// on all three axes. Touching edges do not count.
func (b *Base) HitBox(tx, ty, tz, txsz, tysz, tzsz int) bool {
	if !b.collides() {
		return false
	}
	if b.ID < 0 || b.Clk < 0 {
		return false
	}
	x := b.X + FromInt(b.HXOfs)
	y := b.Y + FromInt(b.HYOfs)
	z := b.Z + FromInt(b.ZOfs)
	return FromInt(tx+txsz) > x &&
		FromInt(ty+tysz) > y &&
		FromInt(tz+tzsz) > z &&
		FromInt(tx) < x+FromInt(b.HXSz) &&
		FromInt(ty) < y+FromInt(b.HYSz) &&
		FromInt(tz) < z+FromInt(b.HZSz)
}

// HitDir returns the coarse direction from the sprite to the target box.
// When approaching horizontally and the centers are within 8 pixels
// vertically, the horizontal direction wins.
func (b *Base) HitDir(tx, ty, txsz, tysz int, approach Direction) Direction {
	if !b.collides() {
		return DirInvalid
	}
	cx1 := b.X.Round() + b.HXOfs + b.HXSz>>1
	cy1 := b.Y.Round() + b.HYOfs + b.HYSz>>1
	cx2 := tx + txsz>>1
	cy2 := ty + tysz>>1

	if approach >= Left && abs(cy1-cy2) <= 8 {
		if cx2-cx1 < 0 {
			return Left
		}
		return Right
	}
	if cy2-cy1 < 0 {
		return Up
	}
	return Down
}

// Move displaces the sprite directly.
func (b *Base) Move(dx, dy Fix) {
	b.X += dx
	b.Y += dy
}

// MoveSpeed moves the sprite s units along its heading. Angular sprites use
// Angle; everything else follows Dir. Directions without a heading do not move.
func (b *Base) MoveSpeed(s Fix) {
	if b.Angular {
		b.X += s.Scale(math.Cos(b.Angle))
		b.Y += s.Scale(math.Sin(b.Angle))
		return
	}
	dx, dy, ok := b.Dir.step()
	if !ok {
		return
	}
	b.X += s * Fix(dx)
	b.Y += s * Fix(dy)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
