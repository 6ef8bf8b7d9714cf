package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/Goodgis/minif1/internal/race"
	"gitlab.com/Goodgis/minif1/internal/setup"
)

type memRecorder struct {
	results []race.Finished
}

func (m *memRecorder) Record(f race.Finished) error {
	m.results = append(m.results, f)
	return nil
}

func newTestTerminal(t *testing.T, rec race.Recorder) (*terminal, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	t.Cleanup(s.Fini)
	s.SetSize(90, 31)

	term := newTerminal(s, Options{
		Form:     setup.NewForm("Haas", 20, "Qatar"),
		Recorder: rec,
		Seed:     7,
		Driver:   "lewis",
	})
	return term, s
}

func screenText(s tcell.Screen) string {
	w, h := s.Size()
	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ch, _, _, _ := s.GetContent(x, y)
			b.WriteRune(ch)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := s.GetContent(x, y)
		b.WriteRune(ch)
	}
	return b.String()
}

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }
func char(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func TestSetupScreen(t *testing.T) {
	term, s := newTestTerminal(t, nil)
	term.render()

	out := screenText(s)
	assert.Contains(t, out, "Customization")
	assert.Contains(t, out, "Driver: lewis")
	assert.Contains(t, out, "< Haas >")
	assert.Contains(t, out, "20")
	assert.Contains(t, out, "Qatar")
}

func TestSetupKeysEditForm(t *testing.T) {
	term, _ := newTestTerminal(t, nil)

	assert.False(t, term.handleKey(key(tcell.KeyRight)))
	assert.Equal(t, race.Cadillac, term.form.Team)

	term.handleKey(key(tcell.KeyDown))
	assert.Equal(t, setup.FieldNumber, term.form.Focus)
	term.handleKey(char('7'))
	assert.Equal(t, "20", term.form.Number, "third digit is ignored")
	term.handleKey(key(tcell.KeyBackspace2))
	term.handleKey(char('7'))
	assert.Equal(t, "27", term.form.Number)

	term.handleKey(key(tcell.KeyTab))
	term.handleKey(key(tcell.KeyLeft))
	assert.Equal(t, race.Brazil, term.form.Country)

	term.handleKey(key(tcell.KeyEnter))
	require.True(t, term.inRace)
	assert.Equal(t, race.Config{Team: race.Cadillac, Number: 27, Country: race.Brazil}, term.race.Config)
	assert.Equal(t, race.PhaseReactionWait, term.race.Phase)
}

func TestQuitKeys(t *testing.T) {
	term, _ := newTestTerminal(t, nil)
	assert.True(t, term.handleKey(key(tcell.KeyEscape)))
	assert.True(t, term.handleKey(char('q')))
	assert.True(t, term.handleKey(key(tcell.KeyCtrlC)))

	term.startRace(time.Now())
	assert.False(t, term.handleKey(key(tcell.KeyEscape)), "escape in a race only leaves the race")
	assert.True(t, term.handleKey(key(tcell.KeyCtrlC)))
}

func TestRaceKeysQueueActions(t *testing.T) {
	term, _ := newTestTerminal(t, nil)
	term.startRace(time.Now())

	term.handleKey(char(' '))
	term.handleKey(char('r'))
	term.handleKey(key(tcell.KeyEscape))

	got := term.input.Drain()
	require.Len(t, got, 3)
	assert.Equal(t, race.ActionReact, got[0].Kind)
	assert.Equal(t, race.ActionRestart, got[1].Kind)
	assert.Equal(t, race.ActionMenu, got[2].Kind)
	assert.False(t, got[0].At.IsZero())

	term.handleKey(key(tcell.KeyLeft))
	term.handleKey(char('s'))
	term.hold.apply(&term.input)
	assert.True(t, term.input.Left)
	assert.True(t, term.input.Down)
	assert.False(t, term.input.Right)
	assert.False(t, term.input.Up)
}

func TestHoldKeysDecay(t *testing.T) {
	var h holdKeys
	var in race.Input
	h.press(dirRight)

	for i := 0; i < holdTicks; i++ {
		h.apply(&in)
		require.True(t, in.Right, "tick %d", i)
	}
	h.apply(&in)
	assert.False(t, in.Right)

	h.press(dirRight)
	h.apply(&in)
	assert.True(t, in.Right, "a repeat re-arms the hold")
}

func TestRaceFlowRendersAndRecords(t *testing.T) {
	rec := &memRecorder{}
	term, s := newTestTerminal(t, rec)
	base := time.Unix(1000, 0)

	term.startRace(base)
	term.render()
	assert.Contains(t, screenText(s), "WAIT...")

	goAt := base.Add(5 * time.Second)
	term.update(goAt)
	require.Equal(t, race.PhaseReactionGo, term.race.Phase)
	term.render()
	assert.Contains(t, screenText(s), "GO!!!")

	term.input.Push(race.ActionReact, goAt.Add(100*time.Millisecond))
	term.update(goAt.Add(110 * time.Millisecond))
	require.Equal(t, race.PhasePlaying, term.race.Phase)
	assert.Equal(t, 30, term.race.Score)

	term.render()
	hud := rowText(s, 0)
	assert.Contains(t, hud, "Team: Haas  #20  (Qatar)")
	assert.Contains(t, hud, "Score: 30")
	assert.Contains(t, hud, "Reaction bonus +30")

	p := term.race.Player.Rect
	term.race.Entities = append(term.race.Entities, race.Entity{
		Kind: race.KindCar,
		Rect: p,
		Skin: race.Ferrari.Skin(),
	})
	term.update(goAt.Add(200 * time.Millisecond))
	require.Equal(t, race.PhaseFinished, term.race.Phase)
	require.Len(t, rec.results, 1)
	assert.Equal(t, race.Finished{Score: 30, Team: race.Haas, Number: 20, Country: race.Qatar}, rec.results[0])

	term.render()
	assert.Contains(t, screenText(s), "GAME OVER")
	assert.Contains(t, screenText(s), "Final score: 30")

	term.handleKey(key(tcell.KeyEscape))
	term.update(goAt.Add(300 * time.Millisecond))
	assert.False(t, term.inRace)

	term.render()
	assert.Contains(t, screenText(s), "Last race: 30 points")
}

func TestFillRectSkipsOffTrack(t *testing.T) {
	term, s := newTestTerminal(t, nil)
	g := grid{cols: 90, rows: 30}
	st := tcell.StyleDefault

	term.fillRect(g, race.Rect{X: 300, Y: -200, W: 46, H: 90}, 'x', st)
	assert.NotContains(t, screenText(s), "x")

	term.fillRect(g, race.Rect{X: 300, Y: 0, W: 46, H: 90}, 'x', st)
	assert.Equal(t, byte('x'), rowText(s, 1)[30])
	assert.NotContains(t, rowText(s, 0), "x", "the HUD row is never drawn over")
}
