package sprite

import "sync/atomic"

// UID identifies a sprite for as long as it is alive. Keys stored by a
// Registry are UIDs; front-ordered entries carry the negated value.
type UID int64

var lastUID atomic.Int64

// NextUID returns a fresh process-unique UID. The first UID handed out is 1,
// so negating a UID always yields a distinct key.
func NextUID() UID {
	return UID(lastUID.Add(1))
}

// Front returns the key that orders u before every normal key.
func (u UID) Front() UID {
	if u > 0 {
		return -u
	}
	return u
}

// IsFront reports whether u is a front-ordered key.
func (u UID) IsFront() bool {
	return u < 0
}
