package sprite

// Direction is a facing code. Codes 0-7 are the 8-way directions, 8-15 are the
// 16-way codes that share movement with their 8-way counterparts.
type Direction int

const (
	DirNone Direction = -1

	Up Direction = iota - 1
	Down
	Left
	Right
	LeftUp
	RightUp
	LeftDown
	RightDown

	// DirInvalid is returned by HitDir when collision is disabled.
	DirInvalid Direction = 0xFF
)

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case Up, 8:
		return "up"
	case Down, 12:
		return "down"
	case Left, 14:
		return "left"
	case Right, 10:
		return "right"
	case LeftUp, 15:
		return "left-up"
	case RightUp, 9:
		return "right-up"
	case LeftDown, 13:
		return "left-down"
	case RightDown, 11:
		return "right-down"
	case DirInvalid:
		return "invalid"
	}
	return "unknown"
}

// step returns the unit displacement for the direction, ok=false for codes
// that do not move.
func (d Direction) step() (dx, dy int, ok bool) {
	switch d {
	case Up, 8:
		return 0, -1, true
	case Down, 12:
		return 0, 1, true
	case Left, 14:
		return -1, 0, true
	case Right, 10:
		return 1, 0, true
	case LeftUp, 15:
		return -1, -1, true
	case RightUp, 9:
		return 1, -1, true
	case LeftDown, 13:
		return -1, 1, true
	case RightDown, 11:
		return 1, 1, true
	}
	return 0, 0, false
}
