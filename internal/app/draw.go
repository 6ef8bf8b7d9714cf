package app

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gitlab.com/Goodgis/minif1/internal/race"
)

var (
	asphaltColor = color.RGBA{105, 105, 105, 255}
	dashColor    = color.RGBA{220, 220, 220, 255}
	overlayColor = color.RGBA{0, 0, 0, 160}
	shieldColor  = color.RGBA{0, 0, 255, 255}
	tipColor     = color.RGBA{220, 220, 220, 255}
	goColor      = color.RGBA{60, 220, 60, 255}
	flashColor   = color.RGBA{255, 200, 0, 255}
)

const (
	laneDashLen    = 40
	laneDashGap    = 40
	laneDashPeriod = laneDashLen + laneDashGap
)

func (a *App) drawRace(screen *ebiten.Image) {
	r := a.race
	a.drawTrack(screen, r.Config.Country)

	for _, e := range r.Entities {
		a.drawSprite(screen, e.Skin, e.Rect)
	}
	a.drawParticles(screen)

	p := r.Player
	a.drawSprite(screen, p.Skin, p.Rect)
	if p.Shield {
		cx := float32(p.Rect.X) + float32(p.Rect.W)/2
		cy := float32(p.Rect.Y) + float32(p.Rect.H)/2
		vector.StrokeCircle(screen, cx, cy, float32(p.Rect.H)/2+6, 3, shieldColor, true)
	}

	// Driver number
	num := strconv.Itoa(p.Number)
	face := a.opts.Faces.Small
	text.Draw(screen, num, face,
		p.Rect.X+(p.Rect.W-textWidth(face, num))/2,
		p.Rect.Y+p.Rect.H/2+6, color.White)

	a.drawHUD(screen)

	switch r.Phase {
	case race.PhaseReactionWait, race.PhaseReactionGo:
		a.drawReactionOverlay(screen)
	case race.PhaseFinished:
		a.drawGameOver(screen)
	}
}

func (a *App) drawTrack(screen *ebiten.Image, c race.Country) {
	const (
		w = float32(race.TrackWidth)
		h = float32(race.TrackHeight)
		g = float32(race.Grass)
		k = float32(race.Kerb)
	)
	edge, barrier := c.EdgeColor(), c.BarrierColor()

	vector.DrawFilledRect(screen, 0, 0, g, h, edge, false)
	vector.DrawFilledRect(screen, w-g, 0, g, h, edge, false)
	vector.DrawFilledRect(screen, g, 0, w-2*g, h, asphaltColor, false)
	vector.DrawFilledRect(screen, g, 0, k, h, barrier, false)
	vector.DrawFilledRect(screen, w-g-k, 0, k, h, barrier, false)

	mid := float32(race.LaneLeft+race.LaneRight) / 2
	for y := a.scroll - laneDashPeriod; y < race.TrackHeight; y += laneDashPeriod {
		vector.DrawFilledRect(screen, mid-2, float32(y), 4, laneDashLen, dashColor, false)
	}
}

func (a *App) drawSprite(screen *ebiten.Image, skin string, rect race.Rect) {
	img := a.opts.Images.Get(skin)
	if img == nil {
		vector.DrawFilledRect(screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), race.SkinColor(skin), false)
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.W)/float64(b.Dx()), float64(rect.H)/float64(b.Dy()))
	op.GeoM.Translate(float64(rect.X), float64(rect.Y))
	screen.DrawImage(img, op)
}

func (a *App) drawHUD(screen *ebiten.Image) {
	r := a.race
	body := a.opts.Faces.Body
	cfg := r.Config

	hud := fmt.Sprintf("Team: %s  #%d  (%s)", cfg.Team, cfg.Number, cfg.Country)
	drawTextWithOutline(screen, hud, body, 160, 30, 2, color.White, color.Black)
	if r.Phase == race.PhasePlaying || r.Phase == race.PhaseFinished {
		drawTextWithOutline(screen, fmt.Sprintf("Score: %d", r.Score), body, 160, 60, 2, color.White, color.Black)
	}
	if a.flashTTL > 0 && a.flash != "" {
		drawTextWithOutline(screen, a.flash, body, 160, 90, 2, flashColor, color.Black)
	}
}

func (a *App) drawReactionOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, race.TrackWidth, race.TrackHeight, overlayColor, false)

	faces := a.opts.Faces
	drawCentered(screen, "REACTION TEST", faces.Title, race.TrackHeight/2-90, color.White)
	if a.race.Phase == race.PhaseReactionGo {
		drawCentered(screen, "GO!!!", faces.Title, race.TrackHeight/2, goColor)
	} else {
		drawCentered(screen, "WAIT...", faces.Title, race.TrackHeight/2, color.White)
	}
	drawCentered(screen, "Press SPACE as soon as you see GO!   Faster = more points",
		faces.Small, race.TrackHeight/2+60, tipColor)
}

func (a *App) drawGameOver(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, race.TrackWidth, race.TrackHeight, overlayColor, false)

	faces := a.opts.Faces
	drawCentered(screen, "GAME OVER", faces.Title, race.TrackHeight/2-30, color.White)
	drawCentered(screen, fmt.Sprintf("Final score: %d", a.race.Score), faces.Body, race.TrackHeight/2+10, tipColor)
	drawCentered(screen, "Press R to restart   -   ESC to menu", faces.Body, race.TrackHeight/2+40, color.White)
}
