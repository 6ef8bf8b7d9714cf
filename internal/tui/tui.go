// Package tui runs the race in a terminal with tcell. Terminals never
// report key releases, so held directions are approximated from key
// repeats.
package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"gitlab.com/Goodgis/minif1/internal/race"
	"gitlab.com/Goodgis/minif1/internal/setup"
)

// Options configures a terminal session.
type Options struct {
	Form     *setup.Form
	Recorder race.Recorder
	Seed     uint64
	Driver   string
}

type terminal struct {
	screen tcell.Screen
	opts   Options
	form   *setup.Form

	race   *race.Race
	input  race.Input
	hold   holdKeys
	inRace bool

	flash     string
	flashTTL  int
	lastScore string
}

const flashTicks = 90

// Run takes over the terminal until the player quits from the setup screen.
func Run(opts Options) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tui: open screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("tui: init screen: %w", err)
	}
	defer s.Fini()
	s.Clear()
	s.HideCursor()

	t := newTerminal(s, opts)

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			events <- ev
		}
	}()

	tick := time.NewTicker(race.TickInterval)
	defer tick.Stop()

	for {
		select {
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				s.Sync()
			case *tcell.EventKey:
				if t.handleKey(e) {
					return nil
				}
			}
		case now := <-tick.C:
			t.update(now)
			t.render()
		}
	}
}

func newTerminal(s tcell.Screen, opts Options) *terminal {
	form := opts.Form
	if form == nil {
		form = setup.NewForm("", 16, "")
	}
	return &terminal{screen: s, opts: opts, form: form}
}

// handleKey reports whether the program should exit.
func (t *terminal) handleKey(e *tcell.EventKey) bool {
	if e.Key() == tcell.KeyCtrlC {
		return true
	}
	if t.inRace {
		t.raceKey(e)
		return false
	}
	return t.setupKey(e)
}

func (t *terminal) setupKey(e *tcell.EventKey) bool {
	f := t.form
	switch e.Key() {
	case tcell.KeyEscape:
		return true
	case tcell.KeyDown, tcell.KeyTab:
		f.NextField()
	case tcell.KeyUp, tcell.KeyBacktab:
		f.PrevField()
	case tcell.KeyLeft:
		f.Cycle(-1)
	case tcell.KeyRight:
		f.Cycle(1)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		f.Backspace()
	case tcell.KeyEnter:
		t.startRace(e.When())
	case tcell.KeyRune:
		switch r := e.Rune(); r {
		case 'q', 'Q':
			return true
		case ' ':
			t.startRace(e.When())
		default:
			f.Type(r)
		}
	}
	return false
}

func (t *terminal) raceKey(e *tcell.EventKey) {
	switch e.Key() {
	case tcell.KeyEscape:
		t.input.Push(race.ActionMenu, e.When())
	case tcell.KeyLeft:
		t.hold.press(dirLeft)
	case tcell.KeyRight:
		t.hold.press(dirRight)
	case tcell.KeyUp:
		t.hold.press(dirUp)
	case tcell.KeyDown:
		t.hold.press(dirDown)
	case tcell.KeyRune:
		switch e.Rune() {
		case ' ':
			t.input.Push(race.ActionReact, e.When())
		case 'r', 'R':
			t.input.Push(race.ActionRestart, e.When())
		case 'a', 'A':
			t.hold.press(dirLeft)
		case 'd', 'D':
			t.hold.press(dirRight)
		case 'w', 'W':
			t.hold.press(dirUp)
		case 's', 'S':
			t.hold.press(dirDown)
		}
	}
}

func (t *terminal) startRace(now time.Time) {
	cfg := t.form.Config()
	t.form.Number = fmt.Sprint(cfg.Number)

	if t.race == nil {
		t.race = race.New(cfg, t.opts.Seed)
		t.race.Recorder = t.opts.Recorder
		t.subscribe(t.race.Events)
	}
	t.race.Config = cfg
	t.input = race.Input{}
	t.hold = holdKeys{}
	t.flash, t.flashTTL = "", 0
	t.race.Start(now)
	t.inRace = true
}

func (t *terminal) update(now time.Time) {
	if !t.inRace {
		return
	}
	t.hold.apply(&t.input)
	if t.race.Update(&t.input, now) == race.StatusMenu {
		t.input.Release()
		if t.race.Phase == race.PhaseFinished {
			t.lastScore = fmt.Sprintf("Last race: %d points", t.race.Score)
		}
		t.inRace = false
	}
}

func (t *terminal) subscribe(bus *race.EventBus) {
	bus.Subscribe(race.EventFalseStart, func(race.Event) {
		t.setFlash("False start! No bonus")
	})
	bus.Subscribe(race.EventReactionScored, func(e race.Event) {
		t.setFlash(fmt.Sprintf("Reaction bonus +%d", e.Data))
	})
	bus.Subscribe(race.EventPowerUp, func(e race.Event) {
		t.setFlash("Power-up: " + race.Effect(e.Data).String())
	})
	bus.Subscribe(race.EventShieldHit, func(race.Event) {
		t.setFlash("Shield absorbed the hit")
	})
	bus.Subscribe(race.EventTick, func(race.Event) {
		if t.flashTTL > 0 {
			t.flashTTL--
		}
	})
}

func (t *terminal) setFlash(msg string) {
	t.flash = msg
	t.flashTTL = flashTicks
}
