// Package app is the ebiten window frontend: the setup screen and the race
// screen around the race simulation.
package app

import (
	"fmt"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"gitlab.com/Goodgis/minif1/internal/assets"
	"gitlab.com/Goodgis/minif1/internal/race"
	"gitlab.com/Goodgis/minif1/internal/setup"
)

type screenID int

const (
	screenSetup screenID = iota
	screenRace
)

// Options wires the frontend to its collaborators. Zero values are usable:
// no images draws colored boxes, a nil Mixer is silent.
type Options struct {
	Form     *setup.Form
	Recorder race.Recorder
	Seed     uint64
	Driver   string // logged in username, shown on the setup screen
	Images   *assets.Images
	Faces    assets.Faces
	Mixer    *assets.Mixer
}

// App implements ebiten.Game.
type App struct {
	opts   Options
	screen screenID
	form   *setup.Form

	race  *race.Race
	input race.Input

	scroll    int
	particles []particle
	flash     string
	flashTTL  int
	lastScore string
}

const flashTicks = 90

func New(opts Options) *App {
	form := opts.Form
	if form == nil {
		form = setup.NewForm("", 16, "")
	}
	if opts.Images == nil {
		opts.Images = assets.LoadImages("")
	}
	if opts.Faces.Title == nil {
		opts.Faces = assets.DefaultFaces()
	}
	return &App{opts: opts, form: form}
}

func (a *App) Update() error {
	switch a.screen {
	case screenSetup:
		return a.updateSetup()
	case screenRace:
		a.updateRace()
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	switch a.screen {
	case screenSetup:
		a.drawSetup(screen)
	case screenRace:
		a.drawRace(screen)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (w, h int) {
	return race.TrackWidth, race.TrackHeight
}

func (a *App) startRace() {
	cfg := a.form.Config()
	a.form.Number = strconv.Itoa(cfg.Number)

	if a.race == nil {
		a.race = race.New(cfg, a.opts.Seed)
		a.race.Recorder = a.opts.Recorder
		a.subscribe(a.race.Events)
	}
	a.race.Config = cfg
	a.input = race.Input{}
	a.particles = a.particles[:0]
	a.flash, a.flashTTL = "", 0
	a.race.Start(time.Now())
	a.opts.Mixer.PlayMusic(assets.Music)
	a.screen = screenRace
}

func (a *App) updateRace() {
	now := time.Now()
	pollInput(&a.input, now)
	if a.race.Update(&a.input, now) == race.StatusMenu {
		a.opts.Mixer.StopMusic()
		a.input.Release()
		if a.race.Phase == race.PhaseFinished {
			a.lastScore = fmt.Sprintf("Last race: %d points", a.race.Score)
		}
		a.screen = screenSetup
	}
}

// subscribe hooks sounds and HUD effects onto the race events.
func (a *App) subscribe(bus *race.EventBus) {
	m := a.opts.Mixer
	bus.Subscribe(race.EventGo, func(race.Event) {
		m.Play(assets.SoundGo)
	})
	bus.Subscribe(race.EventFalseStart, func(race.Event) {
		m.Play(assets.SoundFalseStart)
		a.setFlash("False start! No bonus")
	})
	bus.Subscribe(race.EventReactionScored, func(e race.Event) {
		m.Play(assets.SoundLaunch)
		a.setFlash(fmt.Sprintf("Reaction bonus +%d", e.Data))
	})
	bus.Subscribe(race.EventPowerUp, func(e race.Event) {
		m.Play(assets.SoundPickup)
		a.setFlash("Power-up: " + race.Effect(e.Data).String())
	})
	bus.Subscribe(race.EventShieldHit, func(race.Event) {
		m.Play(assets.SoundShield)
		a.setFlash("Shield absorbed the hit")
	})
	bus.Subscribe(race.EventCrash, func(race.Event) {
		m.StopMusic()
		m.Play(assets.SoundCrash)
	})
	bus.Subscribe(race.EventTick, func(race.Event) {
		if a.flashTTL > 0 {
			a.flashTTL--
		}
		if a.race.Phase == race.PhasePlaying {
			a.scroll = (a.scroll + a.race.BaseSpeed) % laneDashPeriod
		}
		a.updateParticles()
	})
}

func (a *App) setFlash(msg string) {
	a.flash = msg
	a.flashTTL = flashTicks
}
