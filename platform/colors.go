package platform

import (
	"image/color"
	"math"
	"strings"

	"github.com/faiface/pixel"
	"golang.org/x/image/colornames"
)

var (
	backgroundColor = color.RGBA{0x05, 0x06, 0x12, 0xff}
	bulletColor     = pixel.ToRGBA(color.RGBA{255, 192, 128, 255})
	starColor       = pixel.ToRGBA(colornames.Lightsteelblue)
	hudColor        = colornames.White
	hudDimColor     = colornames.Grey
)

// HSVToColor maps hue in [0, 6), saturation and value in [0, 1] to an opaque
// colour.
func HSVToColor(h float64, s float64, v float64) pixel.RGBA {
	if h == 0 && s == 0 {
		return pixel.RGBA{R: v, G: v, B: v, A: 1.0}
	}

	c := s * v
	x := c * (1 - math.Abs(math.Mod(h, 2)-1))
	m := v - c

	if h < 1 {
		return pixel.RGBA{R: c + m, G: x + m, B: m, A: 1.0}
	} else if h < 2 {
		return pixel.RGBA{R: x + m, G: c + m, B: m, A: 1.0}
	} else if h < 3 {
		return pixel.RGBA{R: m, G: c + m, B: x + m, A: 1.0}
	} else if h < 4 {
		return pixel.RGBA{R: m, G: x + m, B: c + m, A: 1.0}
	} else if h < 5 {
		return pixel.RGBA{R: x + m, G: m, B: c + m, A: 1.0}
	}

	return pixel.RGBA{R: c + m, G: m, B: x + m, A: 1.0}
}

// namedColor resolves an SVG colour name, falling back when it is unknown.
func namedColor(name string, fallback color.RGBA) pixel.RGBA {
	if c, ok := colornames.Map[strings.ToLower(name)]; ok {
		return pixel.ToRGBA(c)
	}
	return pixel.ToRGBA(fallback)
}
