package sprite

import (
	"errors"
	"fmt"
)

var (
	ErrKeyOrder    = errors.New("sprite keys out of order")
	ErrKeyLookup   = errors.New("sprite key does not resolve")
	ErrKeyMismatch = errors.New("sprite key differs from sprite uid")
)

// CheckConsistency verifies the registry invariants: keys strictly ascend,
// every stored key resolves to the sprite stored with it, and each sprite's
// uid equals its key. It is a debugging aid and walks the whole registry.
func (r *Registry) CheckConsistency() error {
	for i, s := range r.All() {
		if s.Core().uid != r.keys[i] {
			return fmt.Errorf("%w: index %d key %d uid %d", ErrKeyMismatch, i, r.keys[i], s.Core().uid)
		}
		if got := r.GetByUID(s.Core().uid); got == nil || got.Core() != s.Core() {
			return fmt.Errorf("%w: index %d uid %d", ErrKeyLookup, i, s.Core().uid)
		}
	}
	for i := 0; i+1 < len(r.keys); i++ {
		if r.keys[i] >= r.keys[i+1] {
			return fmt.Errorf("%w: keys[%d]=%d keys[%d]=%d", ErrKeyOrder, i, r.keys[i], i+1, r.keys[i+1])
		}
	}
	return nil
}
