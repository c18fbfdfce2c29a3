package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its broad-phase shape in the session space.
type ObjectData struct {
	*resolv.Object
}

// MoveTo places the object at integer pixel coordinates and refreshes its cells.
func (o *ObjectData) MoveTo(x, y int) {
	if o.X == float64(x) && o.Y == float64(y) {
		return
	}
	o.X = float64(x)
	o.Y = float64(y)
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
