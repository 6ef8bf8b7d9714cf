package app

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

func drawTextWithOutline(dst *ebiten.Image, str string, face font.Face, x, y, thickness int, textColor, outlineColor color.Color) {
	for dx := -thickness; dx <= thickness; dx++ {
		for dy := -thickness; dy <= thickness; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}

			dist := math.Sqrt(float64(dx*dx + dy*dy))
			if dist <= float64(thickness) {
				text.Draw(dst, str, face, x+dx, y+dy, outlineColor)
			}
		}
	}

	// Draw main text
	text.Draw(dst, str, face, x, y, textColor)
}

func textWidth(face font.Face, str string) int {
	return text.BoundString(face, str).Dx()
}

// drawCentered draws str horizontally centered on the screen with its
// baseline at y.
func drawCentered(dst *ebiten.Image, str string, face font.Face, y int, clr color.Color) {
	w := dst.Bounds().Dx()
	text.Draw(dst, str, face, (w-textWidth(face, str))/2, y, clr)
}
