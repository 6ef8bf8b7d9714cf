package tui

import "gitlab.com/Goodgis/minif1/internal/race"

type direction int

const (
	dirLeft direction = iota
	dirRight
	dirUp
	dirDown

	dirCount // must stay last
)

// A press keeps its direction held this many ticks. Key repeat on most
// terminals fires faster than this, so a held key never flickers off.
const holdTicks = 8

type holdKeys [dirCount]int

func (h *holdKeys) press(d direction) {
	h[d] = holdTicks
}

// apply copies the held state into in and ages every press by one tick.
func (h *holdKeys) apply(in *race.Input) {
	in.Left = h[dirLeft] > 0
	in.Right = h[dirRight] > 0
	in.Up = h[dirUp] > 0
	in.Down = h[dirDown] > 0
	for d := range h {
		if h[d] > 0 {
			h[d]--
		}
	}
}
