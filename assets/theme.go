package assets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// The palette shifts from cold grey stone toward deep ember tones as the
// player descends, blended in Lab space so the ramp stays perceptually even.
var (
	shallowWall  = colorful.Color{R: 0.45, G: 0.45, B: 0.50}
	deepWall     = colorful.Color{R: 0.45, G: 0.20, B: 0.15}
	shallowFloor = colorful.Color{R: 0.25, G: 0.25, B: 0.30}
	deepFloor    = colorful.Color{R: 0.28, G: 0.14, B: 0.10}
)

// paletteDepthSpan is the depth at which the ramp saturates.
const paletteDepthSpan = 12

// WallColor returns the wall tint for the given dungeon depth (1-based).
func WallColor(depth int) tcell.Color {
	return blend(shallowWall, deepWall, depth)
}

// FloorColor returns the floor tint for the given dungeon depth (1-based).
func FloorColor(depth int) tcell.Color {
	return blend(shallowFloor, deepFloor, depth)
}

func blend(from, to colorful.Color, depth int) tcell.Color {
	t := float64(depth-1) / float64(paletteDepthSpan-1)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	c := from.BlendLab(to, t).Clamped()
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Dim darkens a color for explored-but-unlit tiles.
func Dim(c tcell.Color) tcell.Color {
	r, g, b := c.RGB()
	return tcell.NewRGBColor(r/2, g/2, b/2)
}
