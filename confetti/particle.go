package confetti

import (
	"image/color"
	"math"
	"math/rand/v2"
)

// Particle is one confetti streak. Only X and Y change after spawn, plus
// the tilt angle which drives the sideways sway.
type Particle struct {
	X, Y               float64
	Size               float64
	TiltAngle          float64
	TiltAngleIncrement float64
	Sway               float64 // draw offset only, recomputed every frame
	Color              color.RGBA
	FallSpeed          float64
}

// Range is an inclusive-exclusive float interval used for random spawn values.
type Range struct {
	Min, Max float64
}

// Random returns a value in [Min, Max).
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// DefaultPalette holds the seven confetti colors.
var DefaultPalette = []color.RGBA{
	{R: 0xff, G: 0x6f, B: 0x91, A: 0xff},
	{R: 0xff, G: 0x96, B: 0x71, A: 0xff},
	{R: 0xff, G: 0xc7, B: 0x5f, A: 0xff},
	{R: 0xf9, G: 0xf8, B: 0x71, A: 0xff},
	{R: 0x84, G: 0x5e, B: 0xc2, A: 0xff},
	{R: 0x00, G: 0xc9, B: 0xa7, A: 0xff},
	{R: 0xfb, G: 0xea, B: 0xff, A: 0xff},
}

// advance applies one frame of motion: tilt, fall and sway.
func (p *Particle) advance(swayStep, swayDraw float64) {
	p.TiltAngle += p.TiltAngleIncrement
	p.Y += p.FallSpeed
	s := math.Sin(p.TiltAngle)
	p.X += s * swayStep
	p.Sway = s * swayDraw
}

// streak returns the stroke endpoints for the particle's current position.
func (p *Particle) streak(lengthScale float64) (x0, y0, x1, y1 float64) {
	x0 = p.X + p.Sway + p.Size/2
	y0 = p.Y
	x1 = p.X + p.Sway
	y1 = p.Y + p.Size*lengthScale
	return
}
