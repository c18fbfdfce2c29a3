package factory

import (
	"github.com/automoto/pixelrunner/archetypes"
	"github.com/automoto/pixelrunner/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// newObject creates a broad-phase object for entry and adds it to the world's space.
func newObject(w donburi.World, entry *donburi.Entry, x, y, width, height int, tag string) *resolv.Object {
	obj := resolv.NewObject(float64(x), float64(y), float64(width), float64(height), tag)
	obj.Data = entry
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	return obj
}

// RemoveEntity deletes an entity and drops its broad-phase object, if any.
func RemoveEntity(w donburi.World, entry *donburi.Entry) {
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	w.Remove(entry.Entity())
}
