package sprite_test

import (
	"fmt"

	"github.com/plus3/spritelist/sprite"
)

// ExampleRegistry shows the ownership rules of a registry. Sprites added
// with Add are kept in creation order; AddAtFront places a sprite ahead of
// them and from then on it resolves only through its new key.
func ExampleRegistry() {
	r := sprite.NewRegistry(sprite.WithName("guys"))

	first := sprite.New(nil)
	second := sprite.New(nil)
	r.Add(first)
	r.Add(second)

	boss := sprite.New(nil)
	original := boss.UID()
	r.AddAtFront(boss)

	fmt.Println("count:", r.Count())
	fmt.Println("boss first:", r.Spr(0) == sprite.Sprite(boss))
	fmt.Println("found by old uid:", r.GetByUID(original) != nil)
	fmt.Println("found by new uid:", r.GetByUID(boss.UID()) != nil)
	fmt.Println("consistent:", r.CheckConsistency() == nil)

	// Output:
	// count: 3
	// boss first: true
	// found by old uid: false
	// found by new uid: true
	// consistent: true
}

type arrow struct {
	sprite.Base
	life int
}

func (a *arrow) Animate(index int) bool {
	a.Base.Animate(index)
	a.MoveSpeed(sprite.FromInt(4))
	a.life--
	return a.life <= 0
}

// ExampleRegistry_Animate shows sprites removing themselves by returning
// true from Animate.
func ExampleRegistry_Animate() {
	r := sprite.NewRegistry()
	for i := 1; i <= 3; i++ {
		a := &arrow{Base: *sprite.New(nil), life: i}
		a.Dir = sprite.Right
		r.Add(a)
	}

	for frame := 1; r.Count() > 0; frame++ {
		r.Animate()
		fmt.Printf("frame %d: %d arrows, last at x=%d\n", frame, r.Count(), r.GetX(r.Count()-1).Int())
	}

	// Output:
	// frame 1: 2 arrows, last at x=4
	// frame 2: 1 arrows, last at x=8
	// frame 3: 0 arrows, last at x=1000000
}

type reaper struct {
	Layer *sprite.Registry
}

func (s *reaper) Execute(frame *sprite.UpdateFrame) {
	for _, spr := range s.Layer.All() {
		if spr.Core().Misc <= 0 {
			frame.Commands.Delete(spr.Core().Ref())
		}
	}
}

// ExampleDriver runs a frame: layers animate, systems queue commands and the
// commands are applied before anything is drawn.
func ExampleDriver() {
	d := sprite.NewDriver(nil)
	guys := sprite.NewRegistry()
	d.Register("guys", guys, sprite.LayerOptions{Shadows: true})
	d.AddSystem(&reaper{Layer: guys})

	for _, hp := range []int{0, 3, 0, 5} {
		s := sprite.New(d.Frame())
		s.Misc = hp
		guys.Add(s)
	}

	d.Once(1.0/60, nil)
	fmt.Println("remaining:", guys.Count())
	fmt.Println("frames:", d.Stats().Frames)

	// Output:
	// remaining: 2
	// frames: 1
}
