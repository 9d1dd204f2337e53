package sprite

// MovingBlockID is the id every moving block carries.
const MovingBlockID = 1

// MovingBlock is a pushed block sliding across the screen. It is drawn as
// the combo it was lifted from instead of as sprite tiles.
type MovingBlock struct {
	Base
	Combo int
}

// NewMovingBlock creates an idle block. It stays invisible until its clock is set.
func NewMovingBlock(f *Frame) *MovingBlock {
	m := &MovingBlock{Base: *New(f)}
	m.ID = MovingBlockID
	m.Bind(m)
	return m
}

// Draw renders the block's combo while it moves.
func (m *MovingBlock) Draw(dst Canvas, _ *Frame) {
	if m.Clk == 0 {
		return
	}
	dst.DrawCombo(m.Combo, m.RealX(m.X+FromInt(m.XOfs)), m.RealY(m.Y+FromInt(m.YOfs)), m.CSet)
}
