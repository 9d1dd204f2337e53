//go:build spritedebug

package sprite

// debugCheck asserts the registry invariants after every mutation in builds
// tagged spritedebug.
func (r *Registry) debugCheck() {
	if err := r.CheckConsistency(); err != nil {
		panic(err)
	}
}
