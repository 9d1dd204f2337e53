package sprite_test

import (
	"testing"

	"github.com/plus3/spritelist/sprite"
)

func BenchmarkAdd(b *testing.B) {
	r := sprite.NewRegistry(sprite.WithCapacity(0))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Add(sprite.New(nil))
	}
}

func BenchmarkAddAtFront(b *testing.B) {
	r := sprite.NewRegistry(sprite.WithCapacity(0))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.AddAtFront(sprite.New(nil))
	}
}

func BenchmarkGetByUID(b *testing.B) {
	r := sprite.NewRegistry()
	uids := make([]sprite.UID, 1024)
	for i := range uids {
		s := sprite.New(nil)
		r.Add(s)
		uids[i] = s.UID()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.GetByUID(uids[i%len(uids)])
	}
}

func BenchmarkAnimate(b *testing.B) {
	r := sprite.NewRegistry()
	for range 1024 {
		r.Add(visible(0, 0))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Animate()
	}
}

func BenchmarkDraw(b *testing.B) {
	r := sprite.NewRegistry()
	for range 1024 {
		s := visible(0, 0)
		s.Extend = 3
		s.TXSz = 2
		s.TYSz = 2
		r.Add(s)
	}
	var c recordingCanvas

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.reset()
		r.Draw(&c, true)
	}
}
