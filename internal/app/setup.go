package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"gitlab.com/Goodgis/minif1/internal/setup"
)

var (
	setupBackground = color.RGBA{14, 16, 18, 255}
	labelColor      = color.RGBA{190, 190, 190, 255}
	focusColor      = color.RGBA{255, 210, 0, 255}
	noteColor       = color.RGBA{170, 170, 180, 255}
)

func (a *App) updateSetup() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	f := a.form
	switch {
	case anyJustPressed(ebiten.KeyArrowDown, ebiten.KeyTab):
		f.NextField()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		f.PrevField()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		f.Cycle(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		f.Cycle(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		f.Backspace()
	case anyJustPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeySpace):
		a.startRace()
		return nil
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		f.Type(r)
	}
	return nil
}

func (a *App) drawSetup(screen *ebiten.Image) {
	screen.Fill(setupBackground)
	faces := a.opts.Faces

	drawCentered(screen, "Customization", faces.Title, 120, color.White)
	if a.opts.Driver != "" {
		drawCentered(screen, "Driver: "+a.opts.Driver, faces.Small, 160, noteColor)
	}

	const labelRight, valueLeft = 420, 440
	for i, field := range setup.Fields() {
		y := 240 + i*50
		label := field.String() + ":"
		text.Draw(screen, label, faces.Body, labelRight-textWidth(faces.Body, label), y, labelColor)

		value := a.form.Value(field)
		clr := color.Color(color.White)
		if field == a.form.Focus {
			value = fmt.Sprintf("< %s >", value)
			clr = focusColor
		}
		text.Draw(screen, value, faces.Body, valueLeft, y, clr)
	}

	drawCentered(screen, "Pick a team, number, and where to race", faces.Small, 420, noteColor)
	drawCentered(screen, "Up/Down select   Left/Right change   digits set number", faces.Small, 450, noteColor)
	drawCentered(screen, "ENTER start race   -   ESC quit", faces.Body, 500, color.White)
	if a.lastScore != "" {
		drawCentered(screen, a.lastScore, faces.Small, 550, focusColor)
	}
}
