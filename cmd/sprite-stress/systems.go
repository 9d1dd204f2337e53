package main

import (
	"math/rand"

	"github.com/plus3/spritelist/sprite"
)

// populationSystem keeps a layer topped up to its target size.
type populationSystem struct {
	rng    *rand.Rand
	layer  *sprite.Registry
	target int
	spawns int64
}

func (s *populationSystem) Execute(frame *sprite.UpdateFrame) {
	for n := s.layer.Count(); n < s.target; n++ {
		frame.Commands.Add(s.layer, newWalker(s.rng, frame.Frame, 1+s.rng.Intn(64)))
		s.spawns++
	}
}

// shootingSystem fires shots ahead of every other sprite in the weapons layer.
type shootingSystem struct {
	rng     *rand.Rand
	weapons *sprite.Registry
	perTick int
}

func (s *shootingSystem) Execute(frame *sprite.UpdateFrame) {
	for range s.perTick {
		frame.Commands.AddAtFront(s.weapons, newShot(s.rng, frame.Frame))
	}
}

// collisionSystem deletes every guy hit by a shot, and the shot with it.
type collisionSystem struct {
	guys    *sprite.Registry
	weapons *sprite.Registry
	hits    int64
}

func (s *collisionSystem) Execute(frame *sprite.UpdateFrame) {
	for _, shot := range s.weapons.All() {
		i := s.guys.Hit(shot)
		if i < 0 {
			continue
		}
		guy := s.guys.Spr(i)
		frame.Commands.Delete(guy.Core().Ref())
		frame.Commands.Delete(shot.Core().Ref())
		s.hits++
	}
}

// freezeSystem toggles the freeze flag every period frames.
type freezeSystem struct {
	period int64
}

func (s *freezeSystem) Execute(frame *sprite.UpdateFrame) {
	if s.period > 0 && frame.Index%s.period == 0 {
		frame.Frame.FreezeGuys = !frame.Frame.FreezeGuys
	}
}
