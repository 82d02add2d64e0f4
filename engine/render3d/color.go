package render3d

import (
	"image/color"
	"math"

	"github.com/1siamBot/tripod-arena/engine/core"
)

// Color3 is a linear RGB color in [0,1]
type Color3 struct {
	R, G, B float64
}

func (c Color3) Scale(s float64) Color3 {
	return Color3{c.R * s, c.G * s, c.B * s}
}

func (c Color3) Add(o Color3) Color3 {
	return Color3{
		math.Min(c.R+o.R, 1),
		math.Min(c.G+o.G, 1),
		math.Min(c.B+o.B, 1),
	}
}

func (c Color3) Mul(o Color3) Color3 {
	return Color3{c.R * o.R, c.G * o.G, c.B * o.B}
}

// FromRGBA converts an 8-bit color
func FromRGBA(c color.RGBA) Color3 {
	return Color3{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}

// Surface is the resolved material of one part for drawing
type Surface struct {
	Base     Color3
	Emissive Color3
	Opacity  float64
}

// SurfaceFor resolves a look over a model's default color. A zero look
// keeps the model color.
func SurfaceFor(look core.Look, fallback Color3) Surface {
	if look.Opacity == 0 {
		return Surface{Base: fallback, Opacity: 1}
	}
	return Surface{
		Base:     FromRGBA(look.Color),
		Emissive: FromRGBA(look.Emissive).Scale(look.Intensity),
		Opacity:  look.Opacity,
	}
}
