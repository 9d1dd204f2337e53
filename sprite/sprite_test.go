package sprite_test

import (
	"math"
	"testing"

	"github.com/plus3/spritelist/sprite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	f := sprite.NewFrame()
	f.PlayingFieldOffset = 56

	s := sprite.New(f)
	assert.Equal(t, 56, s.YOfs)
	assert.Equal(t, -1, s.ID)
	assert.Equal(t, sprite.Down, s.Dir)
	assert.Equal(t, 16, s.HXSz)
	assert.Equal(t, 16, s.HYSz)
	assert.Equal(t, 1, s.HZSz)
	assert.Equal(t, 1, s.TXSz)
	assert.Equal(t, 1, s.TYSz)
	assert.Equal(t, 1, s.ScriptColDet)
	assert.Positive(t, int64(s.UID()))

	other := sprite.New(nil)
	assert.Greater(t, other.UID(), s.UID())
	assert.Equal(t, 0, other.YOfs)
}

func TestNewAt(t *testing.T) {
	s := sprite.NewAt(sprite.FromInt(4), sprite.FromInt(8), 42, 3, sprite.FlipVertical, -2, 16)
	assert.Equal(t, 4, s.X.Int())
	assert.Equal(t, 8, s.Y.Int())
	assert.Equal(t, 42, s.Tile)
	assert.Equal(t, 3, s.CSet)
	assert.Equal(t, sprite.FlipVertical, s.Flip)
	assert.Equal(t, -2, s.Clk)
	assert.Equal(t, 16, s.YOfs)
	assert.Equal(t, -1, s.ID)
}

func TestHitBoxRequiresStrictOverlap(t *testing.T) {
	s := visible(0, 0)

	assert.True(t, s.HitBox(15, 0, 0, 16, 16, 1))
	assert.False(t, s.HitBox(16, 0, 0, 16, 16, 1), "touching on x")
	assert.False(t, s.HitBox(0, 16, 0, 16, 16, 1), "touching on y")
	assert.False(t, s.HitBox(-16, 0, 0, 16, 16, 1))
	assert.False(t, s.HitBox(0, 0, 1, 16, 16, 1), "touching on z")
	assert.True(t, s.HitBox(4, 4, 0, 1, 1, 1))
}

func TestHitBoxUsesFractionalPosition(t *testing.T) {
	s := visible(0, 0)
	s.X = sprite.FromFloat(0.5)

	assert.True(t, s.HitBox(16, 0, 0, 4, 4, 1))
	assert.False(t, s.HitBox(-4, 0, 0, 4, 4, 1))
}

func TestHitRoundsTargetPosition(t *testing.T) {
	s := visible(0, 0)

	touching := visible(0, 0)
	touching.X = sprite.FromFloat(15.5)
	assert.False(t, s.Hit(touching), "15.5 rounds to 16 and only touches")

	inside := visible(0, 0)
	inside.X = sprite.FromFloat(15.25)
	assert.True(t, s.Hit(inside))

	above := visible(0, 0)
	above.Y = sprite.FromFloat(-15.5)
	assert.True(t, s.Hit(above), "-15.5 rounds to -15")
}

func TestHitDirRoundsCenter(t *testing.T) {
	s := visible(0, 0)
	s.X = sprite.FromFloat(23.5)

	// The center rounds to 32, one pixel right of the target's.
	assert.Equal(t, sprite.Left, s.HitDir(23, 0, 16, 16, sprite.Left))
	s.X = sprite.FromFloat(23.25)
	assert.Equal(t, sprite.Right, s.HitDir(23, 0, 16, 16, sprite.Left))

	s.X = 0
	s.Y = sprite.FromFloat(-8.5)
	assert.Equal(t, sprite.Right, s.HitDir(0, 0, 16, 16, sprite.Left), "rounded centers are 8 apart")
}

func TestHitBoxGating(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*sprite.Base)
	}{
		{"collision disabled", func(b *sprite.Base) { b.ScriptColDet = 0 }},
		{"inert id", func(b *sprite.Base) { b.ID = -1 }},
		{"spawning", func(b *sprite.Base) { b.Clk = -3 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := visible(0, 0)
			tt.modify(s)
			assert.False(t, s.HitBox(0, 0, 0, 16, 16, 1))
		})
	}

	s := visible(0, 0)
	s.ScriptColDet = 3
	assert.True(t, s.HitBox(0, 0, 0, 16, 16, 1))
}

func TestHit(t *testing.T) {
	a := visible(0, 0)
	b := visible(10, 10)

	assert.True(t, a.Hit(b))
	assert.True(t, b.Hit(a))

	b.HXOfs = 6
	assert.False(t, a.Hit(b))

	c := visible(4, 4)
	c.ID = -1
	assert.False(t, a.Hit(c), "inert target")

	c.ID = 0
	c.Clk = -1
	assert.True(t, a.Hit(c), "only the hitter's clock gates")
	assert.False(t, c.Hit(a))
}

func TestHitDir(t *testing.T) {
	s := visible(0, 0)

	assert.Equal(t, sprite.Right, s.HitDir(32, 4, 16, 16, sprite.Left))
	assert.Equal(t, sprite.Left, s.HitDir(-32, 4, 16, 16, sprite.Right))
	assert.Equal(t, sprite.Down, s.HitDir(32, 4, 16, 16, sprite.Up))
	assert.Equal(t, sprite.Up, s.HitDir(0, -32, 16, 16, sprite.Down))
	assert.Equal(t, sprite.Down, s.HitDir(32, 40, 16, 16, sprite.Left), "vertical distance over 8")

	s.ScriptColDet = 0
	assert.Equal(t, sprite.DirInvalid, s.HitDir(32, 4, 16, 16, sprite.Left))
}

func TestRealX(t *testing.T) {
	s := sprite.New(nil)
	x := sprite.FromFloat(3.5)

	s.Dir = sprite.Right
	assert.Equal(t, 3, s.RealX(x))

	for _, d := range []sprite.Direction{9, 13} {
		s.Dir = d
		assert.Equal(t, 4, s.RealX(x), "dir %d", d)
		assert.Equal(t, 3, s.RealX(sprite.FromInt(3)), "dir %d", d)
	}

	assert.Equal(t, -1, s.RealY(sprite.FromFloat(-0.25)))
	assert.Equal(t, 2, s.RealZ(sprite.FromFloat(2.75)))
}

func TestMove(t *testing.T) {
	s := sprite.New(nil)
	s.Move(sprite.FromInt(3), sprite.FromInt(-2))
	assert.Equal(t, 3, s.X.Int())
	assert.Equal(t, -2, s.Y.Int())
}

func TestMoveSpeed(t *testing.T) {
	speed := sprite.FromInt(2)
	tests := []struct {
		dir    sprite.Direction
		dx, dy int
	}{
		{sprite.Up, 0, -2},
		{sprite.Down, 0, 2},
		{sprite.Left, -2, 0},
		{sprite.Right, 2, 0},
		{sprite.LeftUp, -2, -2},
		{sprite.RightUp, 2, -2},
		{sprite.LeftDown, -2, 2},
		{sprite.RightDown, 2, 2},
		{9, 2, -2},
		{14, -2, 0},
		{sprite.DirNone, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			s := sprite.New(nil)
			s.Dir = tt.dir
			s.MoveSpeed(speed)
			assert.Equal(t, tt.dx, s.X.Int())
			assert.Equal(t, tt.dy, s.Y.Int())
		})
	}
}

func TestMoveSpeedAngular(t *testing.T) {
	s := sprite.New(nil)
	s.Angular = true
	s.Dir = sprite.Left

	s.Angle = 0
	s.MoveSpeed(sprite.FromInt(2))
	assert.Equal(t, sprite.FromInt(2), s.X)
	assert.Equal(t, sprite.Fix(0), s.Y)

	s.Angle = math.Pi / 2
	s.MoveSpeed(sprite.FromInt(2))
	assert.Equal(t, sprite.FromInt(2), s.X)
	assert.Equal(t, sprite.FromInt(2), s.Y)
}

func TestAnimateAdvancesClock(t *testing.T) {
	s := sprite.New(nil)
	assert.False(t, s.Animate(0))
	assert.False(t, s.Animate(3))
	assert.Equal(t, 2, s.CClk)
}

func TestClone(t *testing.T) {
	s := visible(12, 34)
	s.Tile = 7
	s.Miscellaneous[3] = 99
	s.SetScriptData(&stubAttachment{})
	s.MarkForDeletion()
	r := sprite.NewRegistry()

	c := s.Clone()
	require.True(t, r.Add(c))

	assert.NotEqual(t, s.UID(), c.UID())
	assert.Equal(t, 7, c.Tile)
	assert.Equal(t, 12, c.X.Int())
	assert.Equal(t, 99, c.Miscellaneous[3])
	assert.Nil(t, c.ScriptData())
	assert.False(t, c.MarkedForDeletion())

	c.Miscellaneous[3] = 1
	assert.Equal(t, 99, s.Miscellaneous[3])
	assert.NotSame(t, s.Ref(), c.Ref())
}

func TestScriptData(t *testing.T) {
	s := sprite.New(nil)
	assert.Nil(t, s.ScriptObject())

	first := &stubAttachment{object: "first"}
	s.SetScriptData(first)
	assert.Equal(t, "first", s.ScriptObject())

	s.SetScriptData(first)
	assert.Equal(t, 0, first.released)

	second := &stubAttachment{object: "second"}
	s.SetScriptData(second)
	assert.Equal(t, 1, first.released)
	assert.Same(t, second, s.ScriptData())
}

func TestDestroy(t *testing.T) {
	s := newCountingSprite(2)
	data := &stubAttachment{}
	s.SetScriptData(data)
	ref := s.Ref()

	sprite.Destroy(s)
	sprite.Destroy(s)

	assert.True(t, s.Destroyed())
	assert.Equal(t, 1, s.destroyed)
	assert.Equal(t, 1, data.released)
	assert.Nil(t, s.ScriptData())
	assert.False(t, ref.Alive())
	assert.False(t, s.Ref().Alive())
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "up", sprite.Up.String())
	assert.Equal(t, "right-down", sprite.RightDown.String())
	assert.Equal(t, "right-up", sprite.Direction(9).String())
	assert.Equal(t, "none", sprite.DirNone.String())
	assert.Equal(t, "invalid", sprite.DirInvalid.String())
	assert.Equal(t, "unknown", sprite.Direction(42).String())
}

func TestUIDFront(t *testing.T) {
	u := sprite.NextUID()
	assert.True(t, u.Front().IsFront())
	assert.Equal(t, -u, u.Front())
	assert.Equal(t, -u, u.Front().Front())
	assert.False(t, u.IsFront())
}
