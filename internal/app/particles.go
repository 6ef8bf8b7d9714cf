package app

import (
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gitlab.com/Goodgis/minif1/internal/race"
)

// particle is a puff of exhaust behind the player's car.
type particle struct {
	X, Y     float64
	Radius   float64
	Velocity float64
	Opacity  float64
}

func (a *App) updateParticles() {
	if a.race.Phase == race.PhasePlaying {
		p := a.race.Player.Rect
		a.particles = append(a.particles, particle{
			X:        float64(p.X+p.W/2) + rand.Float64()*6 - 3,
			Y:        float64(p.Bottom()),
			Radius:   4 + rand.Float64()*3,
			Velocity: float64(a.race.BaseSpeed) + rand.Float64()*2,
			Opacity:  0.7,
		})
	}

	for i := 0; i < len(a.particles); i++ {
		p := &a.particles[i]
		p.Y += p.Velocity
		p.Opacity -= 0.035
		p.Radius *= 1.02

		if p.Opacity <= 0 {
			a.particles = append(a.particles[:i], a.particles[i+1:]...)
			i--
		}
	}
}

func (a *App) drawParticles(dst *ebiten.Image) {
	for _, p := range a.particles {
		alpha := uint8(p.Opacity * 255)
		col := color.RGBA{alpha, alpha, alpha, alpha}
		vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(p.Radius), col, true)
	}
}
