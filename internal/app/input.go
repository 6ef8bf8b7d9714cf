package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gitlab.com/Goodgis/minif1/internal/race"
)

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// pollInput copies the keyboard into the race intent for this tick.
func pollInput(in *race.Input, now time.Time) {
	in.Left = anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA)
	in.Right = anyPressed(ebiten.KeyArrowRight, ebiten.KeyD)
	in.Up = anyPressed(ebiten.KeyArrowUp, ebiten.KeyW)
	in.Down = anyPressed(ebiten.KeyArrowDown, ebiten.KeyS)

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		in.Push(race.ActionReact, now)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		in.Push(race.ActionRestart, now)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		in.Push(race.ActionMenu, now)
	}
}
