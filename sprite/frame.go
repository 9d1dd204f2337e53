package sprite

// WeaponSprite is an entry of the weapon sprite table. The spawn and shadow
// effects are drawn from it.
type WeaponSprite struct {
	Tile  int
	CSets int
	Misc  int
}

// Frame holds the global per-frame flags read by the animate and draw passes.
// It is owned by the application; registries and sprites only read it.
type Frame struct {
	ShowSprites  bool
	ShowHitboxes bool
	FreezeGuys   bool
	Debug        bool
	// InspectKey is the debug key that fills cloaked hitboxes while held.
	InspectKey bool
	// Editor suppresses hitbox outlines.
	Editor bool
	// BSZ selects the shorter spawn animation.
	BSZ                bool
	PlayingFieldOffset int

	Weapons      []WeaponSprite
	SpawnWeapon  int
	ShadowWeapon int
}

// NewFrame returns a frame with sprites visible and nothing frozen.
func NewFrame() *Frame {
	return &Frame{ShowSprites: true}
}

// Weapon returns the weapon table entry at i, or the zero entry when out of range.
func (f *Frame) Weapon(i int) WeaponSprite {
	if f == nil || i < 0 || i >= len(f.Weapons) {
		return WeaponSprite{}
	}
	return f.Weapons[i]
}

func (f *Frame) fieldOffset() int {
	if f == nil {
		return 0
	}
	return f.PlayingFieldOffset
}
