//go:build !spritedebug

package sprite

func (r *Registry) debugCheck() {}
