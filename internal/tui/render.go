package tui

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"gitlab.com/Goodgis/minif1/internal/race"
	"gitlab.com/Goodgis/minif1/internal/setup"
)

var (
	asphalt   = tcell.NewRGBColor(105, 105, 105)
	hudStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	noteStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	focus     = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	goStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorGreen).Bold(true)
	waitStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon).Bold(true)
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (t *terminal) render() {
	t.screen.Clear()
	if t.inRace {
		t.drawRace()
	} else {
		t.drawSetup()
	}
	t.screen.Show()
}

func (t *terminal) drawSetup() {
	s := t.screen
	w, h := s.Size()
	cx, y := w/2, max(1, h/2-7)

	drawCentered(s, cx, y, "Customization", tcell.StyleDefault.Bold(true))
	if t.opts.Driver != "" {
		drawCentered(s, cx, y+1, "Driver: "+t.opts.Driver, noteStyle)
	}
	for i, field := range setup.Fields() {
		line := fmt.Sprintf("%-8s %s", field.String()+":", t.form.Value(field))
		st := tcell.StyleDefault
		if field == t.form.Focus {
			line = fmt.Sprintf("%-8s < %s >", field.String()+":", t.form.Value(field))
			st = focus
		}
		drawText(s, cx-10, y+3+i*2, line, st)
	}
	drawCentered(s, cx, y+10, "Up/Down select  Left/Right change  digits set number", noteStyle)
	drawCentered(s, cx, y+11, "ENTER start race - ESC quit", tcell.StyleDefault)
	if t.lastScore != "" {
		drawCentered(s, cx, y+13, t.lastScore, focus)
	}
}

// grid maps track coordinates onto the cells below the HUD row.
type grid struct {
	cols, rows int
}

func (g grid) col(x int) int { return x * g.cols / race.TrackWidth }
func (g grid) row(y int) int { return 1 + y*g.rows/race.TrackHeight }

func (t *terminal) drawRace() {
	s := t.screen
	w, h := s.Size()
	if w < 1 || h < 2 {
		return
	}
	g := grid{cols: w, rows: h - 1}
	r := t.race

	t.drawTrack(g, r.Config.Country)
	for _, e := range r.Entities {
		st := tcell.StyleDefault.Background(rgb(race.SkinColor(e.Skin)))
		ch := ' '
		if e.Kind == race.KindPowerUp {
			ch = '?'
			st = st.Foreground(tcell.ColorBlack).Bold(true)
		}
		t.fillRect(g, e.Rect, ch, st)
	}

	p := r.Player
	car := tcell.StyleDefault.Background(rgb(r.Config.Team.Color())).Foreground(tcell.ColorWhite).Bold(true)
	t.fillRect(g, p.Rect, ' ', car)
	x0, y0 := g.col(p.Rect.X), g.row(p.Rect.Y)
	x1, y1 := g.col(p.Rect.Right()-1), g.row(p.Rect.Bottom()-1)
	drawCentered(s, (x0+x1+1)/2, (y0+y1)/2, strconv.Itoa(p.Number), car)
	if p.Shield {
		shield := tcell.StyleDefault.Foreground(tcell.ColorBlue).Background(asphalt).Bold(true)
		for y := y0; y <= y1; y++ {
			s.SetContent(x0-1, y, '(', nil, shield)
			s.SetContent(x1+1, y, ')', nil, shield)
		}
	}

	t.drawHUD(w)

	switch r.Phase {
	case race.PhaseReactionWait:
		drawCentered(s, w/2, h/2-1, " REACTION TEST ", hudStyle)
		drawCentered(s, w/2, h/2, " WAIT... ", waitStyle)
		drawCentered(s, w/2, h/2+1, " Press SPACE as soon as you see GO! ", hudStyle)
	case race.PhaseReactionGo:
		drawCentered(s, w/2, h/2-1, " REACTION TEST ", hudStyle)
		drawCentered(s, w/2, h/2, " GO!!! ", goStyle)
		drawCentered(s, w/2, h/2+1, " Press SPACE as soon as you see GO! ", hudStyle)
	case race.PhaseFinished:
		drawCentered(s, w/2, h/2-1, " GAME OVER ", waitStyle)
		drawCentered(s, w/2, h/2, fmt.Sprintf(" Final score: %d ", r.Score), hudStyle)
		drawCentered(s, w/2, h/2+1, " Press R to restart - ESC to menu ", hudStyle)
	}
}

func (t *terminal) drawTrack(g grid, c race.Country) {
	edge := tcell.StyleDefault.Background(rgb(c.EdgeColor()))
	barrier := tcell.StyleDefault.Background(rgb(c.BarrierColor()))
	road := tcell.StyleDefault.Background(asphalt)

	for cx := 0; cx < g.cols; cx++ {
		// Sample the track at the middle of the cell.
		tx := (2*cx + 1) * race.TrackWidth / (2 * g.cols)
		st := road
		switch {
		case tx < race.Grass || tx >= race.TrackWidth-race.Grass:
			st = edge
		case tx < race.LaneLeft || tx >= race.LaneRight:
			st = barrier
		}
		for cy := 1; cy <= g.rows; cy++ {
			t.screen.SetContent(cx, cy, ' ', nil, st)
		}
	}
}

func (t *terminal) fillRect(g grid, r race.Rect, ch rune, st tcell.Style) {
	if r.W <= 0 || r.H <= 0 || r.Bottom() <= 0 || r.Y >= race.TrackHeight {
		return
	}
	x0, x1 := max(0, g.col(r.X)), min(g.cols-1, g.col(r.Right()-1))
	y0, y1 := max(1, g.row(r.Y)), min(g.rows, g.row(r.Bottom()-1))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			t.screen.SetContent(x, y, ch, nil, st)
		}
	}
}

func (t *terminal) drawHUD(w int) {
	r := t.race
	cfg := r.Config
	for x := 0; x < w; x++ {
		t.screen.SetContent(x, 0, ' ', nil, hudStyle)
	}
	hud := fmt.Sprintf("Team: %s  #%d  (%s)", cfg.Team, cfg.Number, cfg.Country)
	if r.Phase == race.PhasePlaying || r.Phase == race.PhaseFinished {
		hud += fmt.Sprintf("  Score: %d", r.Score)
	}
	if t.flashTTL > 0 && t.flash != "" {
		hud += "  " + t.flash
	}
	drawText(t.screen, 1, 0, hud, hudStyle)
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	i := 0
	for _, ch := range text {
		s.SetContent(x+i, y, ch, nil, st)
		i++
	}
}

func drawCentered(s tcell.Screen, cx, cy int, text string, st tcell.Style) {
	x := cx - len([]rune(text))/2
	drawText(s, x, cy, text, st)
}
