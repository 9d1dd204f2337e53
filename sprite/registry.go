package sprite

import (
	"iter"
	"slices"

	"github.com/kamstrup/intmap"
	"go.uber.org/zap"
)

// DefaultCapacity is the maximum number of sprites a registry holds unless
// configured otherwise.
const DefaultCapacity = 255*(511*4) + 1

// OffscreenPos is returned by GetX and GetY for out-of-range indices.
var OffscreenPos = FromInt(1000000)

// NoID is returned by GetID for out-of-range indices.
const NoID = -1

type slotID uint32

// Registry is a UID-ordered collection that owns its sprites. Sprites live in
// an arena addressed by slot id; keys and order are parallel slices kept
// sorted by key so that lookup by UID is a binary search.
type Registry struct {
	name     string
	capacity int
	frame    *Frame
	logger   *zap.Logger

	slots    *intmap.Map[slotID, Sprite]
	nextSlot slotID
	keys     []UID
	order    []slotID
}

// Option configures a Registry.
type Option func(*Registry)

// WithCapacity sets the maximum sprite count. Zero or negative removes the limit.
func WithCapacity(n int) Option {
	return func(r *Registry) { r.capacity = n }
}

// WithFrame sets the global frame state read by the animate and draw passes.
func WithFrame(f *Frame) Option {
	return func(r *Registry) { r.frame = f }
}

func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

// WithName labels the registry in log output.
func WithName(name string) Option {
	return func(r *Registry) { r.name = name }
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		capacity: DefaultCapacity,
		logger:   zap.NewNop(),
		slots:    intmap.New[slotID, Sprite](64),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.frame == nil {
		r.frame = NewFrame()
	}
	r.logger = r.logger.With(zap.String("registry", r.name))
	return r
}

func (r *Registry) Name() string { return r.name }

func (r *Registry) Frame() *Frame { return r.frame }

func (r *Registry) Capacity() int { return r.capacity }

// Count returns the number of sprites in the registry.
func (r *Registry) Count() int { return len(r.order) }

func (r *Registry) full() bool {
	return r.capacity > 0 && len(r.order) >= r.capacity
}

func (r *Registry) reject(s Sprite) bool {
	r.logger.Warn("sprite registry full, destroying sprite",
		zap.Int64("uid", int64(s.Core().uid)),
		zap.Int("capacity", r.capacity))
	Destroy(s)
	return false
}

// ownedElsewhere refuses sprites still held by another registry. They must
// be removed from it first.
func (r *Registry) ownedElsewhere(s Sprite) bool {
	owner := s.Core().owner
	if owner == nil || owner == r {
		return false
	}
	r.logger.Warn("sprite owned by another registry, not added",
		zap.Int64("uid", int64(s.Core().uid)),
		zap.String("owner", owner.name))
	return true
}

// insert places s at position i with key k.
func (r *Registry) insert(i int, k UID, s Sprite) {
	b := s.Core()
	b.uid = k
	b.owner = r
	b.Bind(s)

	id := r.nextSlot
	r.nextSlot++
	r.slots.Put(id, s)
	r.keys = slices.Insert(r.keys, i, k)
	r.order = slices.Insert(r.order, i, id)
	r.debugCheck()
}

// place inserts s under key k at its sorted position. Keys greater than every
// stored key append at the tail.
func (r *Registry) place(k UID, s Sprite) bool {
	n := len(r.keys)
	if n == 0 || r.keys[n-1] < k {
		r.insert(n, k, s)
		return true
	}
	i, found := slices.BinarySearch(r.keys, k)
	if found {
		r.logger.Warn("duplicate sprite key, not added", zap.Int64("uid", int64(k)))
		return false
	}
	r.insert(i, k, s)
	return true
}

// Add transfers ownership of s to the registry. Freshly created sprites carry
// the largest UID and land at the tail. If the registry is full, s is
// destroyed and Add returns false. A sprite whose key is already stored, or
// that another registry still owns, is refused and stays where it was.
func (r *Registry) Add(s Sprite) bool {
	if r.ownedElsewhere(s) {
		return false
	}
	if r.full() {
		return r.reject(s)
	}
	return r.place(s.Core().uid, s)
}

// AddAtFront adds s ahead of every normally keyed sprite. Its UID is replaced
// by the front-ordered key, so the original UID no longer resolves through
// GetByUID; only the stored key does.
func (r *Registry) AddAtFront(s Sprite) bool {
	if r.ownedElsewhere(s) {
		return false
	}
	if r.full() {
		return r.reject(s)
	}
	return r.place(s.Core().uid.Front(), s)
}

// AddExisting gives s a fresh UID and adds it. It is used for sprites moved
// over from another registry.
func (r *Registry) AddExisting(s Sprite) bool {
	if r.ownedElsewhere(s) {
		return false
	}
	s.Core().uid = NextUID()
	return r.Add(s)
}

func (r *Registry) cut(i int) Sprite {
	id := r.order[i]
	s, _ := r.slots.Get(id)
	r.slots.Del(id)
	r.keys = slices.Delete(r.keys, i, i+1)
	r.order = slices.Delete(r.order, i, i+1)
	s.Core().owner = nil
	r.debugCheck()
	return s
}

// Remove takes s out of the registry without destroying it. Ownership
// returns to the caller. It reports false if s is not in the registry.
func (r *Registry) Remove(s Sprite) bool {
	b := s.Core()
	for i, id := range r.order {
		if cur, _ := r.slots.Get(id); cur.Core() == b {
			r.cut(i)
			return true
		}
	}
	return false
}

// Del destroys the sprite at index i. Out-of-range indices are a no-op.
func (r *Registry) Del(i int) bool {
	if uint(i) >= uint(len(r.order)) {
		return false
	}
	Destroy(r.cut(i))
	return true
}

// Clear destroys every sprite.
func (r *Registry) Clear() {
	for i := range r.order {
		s, _ := r.slots.Get(r.order[i])
		s.Core().owner = nil
		Destroy(s)
	}
	r.slots.Clear()
	r.keys = r.keys[:0]
	r.order = r.order[:0]
}

// Spr returns the sprite at index i, or nil.
func (r *Registry) Spr(i int) Sprite {
	if uint(i) >= uint(len(r.order)) {
		return nil
	}
	s, _ := r.slots.Get(r.order[i])
	return s
}

func (r *Registry) indexOfKey(uid UID) (int, bool) {
	i, found := slices.BinarySearch(r.keys, uid)
	if !found {
		return -1, false
	}
	return i, true
}

// GetByUID looks the key up by binary search.
func (r *Registry) GetByUID(uid UID) Sprite {
	i, ok := r.indexOfKey(uid)
	if !ok {
		return nil
	}
	return r.Spr(i)
}

func (r *Registry) IsValidUID(uid UID) bool {
	_, ok := r.indexOfKey(uid)
	return ok
}

// Keys returns a copy of the sorted key sequence.
func (r *Registry) Keys() []UID {
	return slices.Clone(r.keys)
}

// GetX returns the x position of the sprite at i, or OffscreenPos.
func (r *Registry) GetX(i int) Fix {
	s := r.Spr(i)
	if s == nil {
		return OffscreenPos
	}
	return s.Core().X
}

// GetY returns the y position of the sprite at i, or OffscreenPos.
func (r *Registry) GetY(i int) Fix {
	s := r.Spr(i)
	if s == nil {
		return OffscreenPos
	}
	return s.Core().Y
}

// GetID returns the id of the sprite at i, or NoID.
func (r *Registry) GetID(i int) int {
	s := r.Spr(i)
	if s == nil {
		return NoID
	}
	return s.Core().ID
}

// GetMisc returns the misc value of the sprite at i, or -1.
func (r *Registry) GetMisc(i int) int {
	s := r.Spr(i)
	if s == nil {
		return -1
	}
	return s.Core().Misc
}

const defaultIDMask = 0xFFFF

// IDCount returns the number of sprites whose id matches under the default mask.
func (r *Registry) IDCount(id int) int { return r.IDCountMask(id, defaultIDMask) }

// IDFirst returns the index of the first matching sprite, or -1.
func (r *Registry) IDFirst(id int) int { return r.IDFirstMask(id, defaultIDMask) }

// IDLast returns the index of the last matching sprite, or -1.
func (r *Registry) IDLast(id int) int { return r.IDLastMask(id, defaultIDMask) }

func (r *Registry) IDCountMask(id, mask int) int {
	c := 0
	for _, s := range r.All() {
		if s.Core().ID&mask == id&mask {
			c++
		}
	}
	return c
}

func (r *Registry) IDFirstMask(id, mask int) int {
	for i, s := range r.All() {
		if s.Core().ID&mask == id&mask {
			return i
		}
	}
	return -1
}

func (r *Registry) IDLastMask(id, mask int) int {
	for i, s := range r.Backward() {
		if s.Core().ID&mask == id&mask {
			return i
		}
	}
	return -1
}

// Animate runs one animation step over every sprite. Sprites marked for
// deletion are deleted and the sprite that slides into their index is
// processed next. A sprite whose Animate returns true is deleted and the
// cursor steps back so that its successor is visited exactly once. Sprites
// that can freeze are skipped while the frame freezes guys.
func (r *Registry) Animate() {
	for i := 0; i < len(r.order); i++ {
		s := r.Spr(i)
		b := s.Core()
		if b.toBeDeleted {
			r.Del(i)
			i--
			continue
		}
		if r.frame.FreezeGuys && b.CanFreeze {
			continue
		}
		if s.Animate(i) {
			r.Del(i)
			i--
		}
	}
}

// CheckConveyor lets every sprite that rides conveyors react to them.
func (r *Registry) CheckConveyor() {
	for _, s := range r.All() {
		if c, ok := s.(ConveyorChecker); ok {
			c.CheckConveyor()
		}
	}
}

// Draw draws every sprite, lowest index first when lowFirst is set.
func (r *Registry) Draw(dst Canvas, lowFirst bool) {
	for _, s := range r.walk(lowFirst) {
		s.Draw(dst, r.frame)
	}
}

func (r *Registry) DrawShadow(dst Canvas, translucent, lowFirst bool) {
	for _, s := range r.walk(lowFirst) {
		s.DrawShadow(dst, r.frame, translucent)
	}
}

func (r *Registry) Draw2(dst Canvas, lowFirst bool) {
	for _, s := range r.walk(lowFirst) {
		s.Draw2(dst, r.frame)
	}
}

func (r *Registry) DrawCloaked2(dst Canvas, lowFirst bool) {
	for _, s := range r.walk(lowFirst) {
		s.DrawCloaked2(dst, r.frame)
	}
}

// Hit returns the index of the first sprite colliding with s, or -1.
func (r *Registry) Hit(s Sprite) int {
	for i, cur := range r.All() {
		if cur.Core().Hit(s) {
			return i
		}
	}
	return -1
}

// HitBox returns the index of the first sprite overlapping the box, or -1.
func (r *Registry) HitBox(x, y, z, xsz, ysz, zsz int) int {
	for i, cur := range r.All() {
		if cur.Core().HitBox(x, y, z, xsz, ysz, zsz) {
			return i
		}
	}
	return -1
}

// All iterates sprites in ascending key order.
func (r *Registry) All() iter.Seq2[int, Sprite] {
	return func(yield func(int, Sprite) bool) {
		for i := 0; i < len(r.order); i++ {
			if !yield(i, r.Spr(i)) {
				return
			}
		}
	}
}

// Backward iterates sprites in descending key order.
func (r *Registry) Backward() iter.Seq2[int, Sprite] {
	return func(yield func(int, Sprite) bool) {
		for i := len(r.order) - 1; i >= 0; i-- {
			if !yield(i, r.Spr(i)) {
				return
			}
		}
	}
}

func (r *Registry) walk(lowFirst bool) iter.Seq2[int, Sprite] {
	if lowFirst {
		return r.All()
	}
	return r.Backward()
}
