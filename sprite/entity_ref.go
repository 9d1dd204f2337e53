package sprite

// EntityRef is a stable, non-owning reference to a sprite. It is shared by
// everyone holding a reference to the same sprite and flips to gone when the
// sprite is destroyed.
type EntityRef struct {
	sprite Sprite
}

// Get returns the referenced sprite if it is still alive.
func (r *EntityRef) Get() (Sprite, bool) {
	if r == nil || r.sprite == nil {
		return nil, false
	}
	return r.sprite, true
}

// Alive reports whether the sprite has not been destroyed.
func (r *EntityRef) Alive() bool {
	return r != nil && r.sprite != nil
}

// UID returns the current key of the sprite, or 0 once it is gone.
func (r *EntityRef) UID() UID {
	if !r.Alive() {
		return 0
	}
	return r.sprite.Core().uid
}

// Registry returns the registry that currently owns the sprite.
func (r *EntityRef) Registry() *Registry {
	if !r.Alive() {
		return nil
	}
	return r.sprite.Core().owner
}

// Index returns the sprite's position inside its owning registry.
func (r *EntityRef) Index() (int, bool) {
	owner := r.Registry()
	if owner == nil {
		return -1, false
	}
	return owner.indexOfKey(r.sprite.Core().uid)
}

func (r *EntityRef) invalidate() {
	r.sprite = nil
}
