package factory

import (
	"github.com/automoto/wishcake/archetypes"
	"github.com/automoto/wishcake/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS, width, height int) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Width:  float64(width),
		Height: float64(height),
	})
	return camera
}
