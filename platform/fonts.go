package platform

import (
	"log"

	"github.com/faiface/pixel/text"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts builds the title, normal and small atlases from the embedded Go
// Regular face, falling back to basicfont if it cannot be parsed.
func loadFonts() (title, normal, small *text.Atlas) {
	var titleFace font.Face = basicfont.Face7x13
	var normalFace font.Face = basicfont.Face7x13
	var smallFace font.Face = basicfont.Face7x13

	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.Printf("[Boot] error parsing font, using basicfont: %v", err)
	} else {
		titleFace = truetype.NewFace(ttf, &truetype.Options{Size: 40, DPI: 96})
		normalFace = truetype.NewFace(ttf, &truetype.Options{Size: 18, DPI: 96})
		smallFace = truetype.NewFace(ttf, &truetype.Options{Size: 12, DPI: 96})
	}

	return text.NewAtlas(titleFace, text.ASCII),
		text.NewAtlas(normalFace, text.ASCII),
		text.NewAtlas(smallFace, text.ASCII)
}
