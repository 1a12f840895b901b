package factory

import (
	"github.com/automoto/wishcake/archetypes"
	"github.com/automoto/wishcake/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// addObject creates a tagged resolv object for entry and registers it in space
func addObject(space *resolv.Space, entry *donburi.Entry, x, y, w, h float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tags...)
	obj.Data = entry
	space.Add(obj)
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	return obj
}
