package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// GradientShader paints the themed page background
	GradientShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	var err error

	gradientSrc, err := shaderFS.ReadFile("shaders/gradient.kage")
	if err != nil {
		return err
	}
	GradientShader, err = ebiten.NewShader(gradientSrc)
	if err != nil {
		return err
	}

	return nil
}
