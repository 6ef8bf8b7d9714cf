package assets

import (
	"log"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Faces are the text sizes the frontend draws with.
type Faces struct {
	Title font.Face // overlays
	Body  font.Face // HUD, menus
	Small font.Face // hints, driver number
}

// LoadFaces parses the TrueType font at path. Without it every size falls
// back to the fixed 7x13 bitmap font.
func LoadFaces(path string) Faces {
	ttfBytes, err := os.ReadFile(path)
	if err != nil {
		log.Println("Error loading font:", err)
		return DefaultFaces()
	}
	tt, err := opentype.Parse(ttfBytes)
	if err != nil {
		log.Println("Error parsing font:", err)
		return DefaultFaces()
	}

	newFace := func(size float64) font.Face {
		const dpi = 72
		face, err := opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    size,
			DPI:     dpi,
			Hinting: font.HintingFull,
		})
		if err != nil {
			log.Println("Error creating font face:", err)
			return basicfont.Face7x13
		}
		return face
	}
	return Faces{
		Title: newFace(48),
		Body:  newFace(20),
		Small: newFace(16),
	}
}

// DefaultFaces uses the built-in bitmap font for every size.
func DefaultFaces() Faces {
	return Faces{
		Title: basicfont.Face7x13,
		Body:  basicfont.Face7x13,
		Small: basicfont.Face7x13,
	}
}
