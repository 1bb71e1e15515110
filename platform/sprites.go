package platform

import (
	"image"
	"image/color"

	"github.com/faiface/pixel"
	"golang.org/x/image/colornames"
)

// Enemy art, one string per row. Keys are enemy sprite names.
var spriteRows = map[string][]string{
	"basic": {
		"  GGGG  ",
		" GGGGGG ",
		"GGBGGBGG",
		"GGGGGGGG",
		" G GG G ",
		"G      G",
		" G    G ",
		"        ",
	},
	"fast": {
		"   YY   ",
		"  YYYY  ",
		" YRYYRY ",
		"YYYYYYYY",
		"  Y  Y  ",
		" Y    Y ",
		"Y      Y",
		"        ",
	},
	"tank": {
		"PPPPPPPP",
		"PWPPPPWP",
		"PPPPPPPP",
		"PPWWWWPP",
		"PPPPPPPP",
		" PP  PP ",
		" PP  PP ",
		"PPP  PPP",
	},
}

var spritePalette = map[rune]color.RGBA{
	'G': colornames.Limegreen,
	'B': colornames.Black,
	'Y': colornames.Gold,
	'R': colornames.Red,
	'P': colornames.Mediumpurple,
	'W': colornames.White,
}

func pictureFromRows(rows []string) *pixel.PictureData {
	h := len(rows)
	w := 0
	for _, row := range rows {
		if len(row) > w {
			w = len(row)
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y, row := range rows {
		for x, ch := range row {
			if c, ok := spritePalette[ch]; ok {
				img.Set(x, y, c)
			}
		}
	}
	return pixel.PictureDataFromImage(img)
}

func loadSprites() map[string]*pixel.Sprite {
	sprites := make(map[string]*pixel.Sprite, len(spriteRows))
	for name, rows := range spriteRows {
		pic := pictureFromRows(rows)
		sprites[name] = pixel.NewSprite(pic, pic.Bounds())
	}
	return sprites
}
