package race

import (
	"strconv"
	"time"
)

// Phase is the top-level state of a session.
type Phase int

const (
	PhaseReactionWait Phase = iota // light is red
	PhaseReactionGo                // light is green, waiting for react
	PhasePlaying
	PhaseFinished // crashed, waiting for restart
)

var phaseNames = [...]string{"reaction-wait", "reaction-go", "playing", "finished"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "Phase(" + strconv.Itoa(int(p)) + ")"
	}
	return phaseNames[p]
}

// Status tells the host what to do with its scheduler after an Update.
type Status int

const (
	StatusRunning Status = iota // keep ticking
	StatusHalted                // race over, only restart or menu will do anything
	StatusMenu                  // player asked for the setup screen
)

// Start resets everything for a fresh race with the current Config and
// schedules the reaction light.
func (r *Race) Start(now time.Time) {
	r.Player = newPlayer(r.Config)
	r.BaseSpeed = DefaultBaseSpeed
	r.Score = 0
	r.GameOver = false
	r.Entities = r.Entities[:0]
	r.Phase = PhaseReactionWait
	r.scheduleGo(now)
	r.SpawnTimer = startSpawnDelay
	r.running = true
}

// Update runs one tick. Queued actions are handled first, in order, then
// the current phase advances.
func (r *Race) Update(in *Input, now time.Time) Status {
	if in != nil {
		for _, a := range in.Drain() {
			at := a.At
			if at.IsZero() {
				at = now
			}
			switch a.Kind {
			case ActionMenu:
				r.running = false
				return StatusMenu
			case ActionRestart:
				if r.Phase == PhaseFinished {
					r.Start(now)
				}
			case ActionReact:
				if r.running {
					r.react(at)
				}
			}
		}
	}

	if !r.running {
		return StatusHalted
	}

	switch r.Phase {
	case PhaseReactionWait:
		r.checkGo(now)
	case PhasePlaying:
		r.tick(in)
	}
	r.Events.Emit(Event{Type: EventTick, Data: r.Score})

	if !r.running {
		return StatusHalted
	}
	return StatusRunning
}
