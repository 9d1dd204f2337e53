package sprite

// Commands buffers registry mutations requested while a pass is walking the
// registries. They are applied together by Flush at the end of the frame.
type Commands struct {
	adds    []addCommand
	removes []*EntityRef
	deletes []*EntityRef
	defers  []func()
}

func NewCommands() *Commands {
	return &Commands{}
}

type addCommand struct {
	registry *Registry
	sprite   Sprite
	front    bool
}

// Add queues adding s to r.
func (c *Commands) Add(r *Registry, s Sprite) {
	c.adds = append(c.adds, addCommand{registry: r, sprite: s})
}

// AddAtFront queues adding s ahead of every normally keyed sprite of r.
func (c *Commands) AddAtFront(r *Registry, s Sprite) {
	c.adds = append(c.adds, addCommand{registry: r, sprite: s, front: true})
}

// Remove queues taking the referenced sprite out of its registry without
// destroying it.
func (c *Commands) Remove(ref *EntityRef) {
	c.removes = append(c.removes, ref)
}

// Delete queues destroying the referenced sprite.
func (c *Commands) Delete(ref *EntityRef) {
	c.deletes = append(c.deletes, ref)
}

// Defer queues a function to run after every other command.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.adds) + len(c.removes) + len(c.deletes) + len(c.defers)
}

// Flush applies queued deletes, removes, adds and deferred functions in that
// order and resets the buffer. Refs that went away in the meantime are skipped.
func (c *Commands) Flush() {
	for _, ref := range c.deletes {
		s, ok := ref.Get()
		if !ok {
			continue
		}
		if owner := s.Core().owner; owner != nil {
			if i, ok := owner.indexOfKey(s.Core().uid); ok {
				owner.Del(i)
				continue
			}
		}
		Destroy(s)
	}

	for _, ref := range c.removes {
		if s, ok := ref.Get(); ok {
			if owner := s.Core().owner; owner != nil {
				owner.Remove(s)
			}
		}
	}

	for _, cmd := range c.adds {
		if cmd.sprite.Core().destroyed {
			continue
		}
		if cmd.front {
			cmd.registry.AddAtFront(cmd.sprite)
		} else {
			cmd.registry.Add(cmd.sprite)
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	clear(c.adds)
	clear(c.removes)
	clear(c.deletes)
	clear(c.defers)
	c.adds = c.adds[:0]
	c.removes = c.removes[:0]
	c.deletes = c.deletes[:0]
	c.defers = c.defers[:0]
}
