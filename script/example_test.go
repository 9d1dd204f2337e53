package script_test

import (
	"fmt"

	"github.com/plus3/spritelist/script"
	"github.com/plus3/spritelist/sprite"
)

// ExampleRuntime attaches a Lua class to a sprite and drives it from Go.
func ExampleRuntime() {
	rt := script.New(nil)
	defer rt.Close()

	err := rt.DoString(`
Spark = {}
function Spark:init() self.sprite.clk = 3 end
function Spark:update()
	self.sprite.clk = self.sprite.clk - 1
	if self.sprite.clk <= 0 then self.sprite:markForDeletion() end
end
`)
	if err != nil {
		panic(err)
	}

	r := sprite.NewRegistry()
	s := sprite.New(nil)
	if _, err := rt.Attach(s, "Spark"); err != nil {
		panic(err)
	}
	r.Add(s)

	for frame := 1; r.Count() > 0; frame++ {
		if _, err := rt.Call(s, "update"); err != nil {
			panic(err)
		}
		r.Animate()
		fmt.Printf("frame %d: clk=%d sprites=%d\n", frame, s.Clk, r.Count())
	}

	// Output:
	// frame 1: clk=2 sprites=1
	// frame 2: clk=1 sprites=1
	// frame 3: clk=0 sprites=0
}
