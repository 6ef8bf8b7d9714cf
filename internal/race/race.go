// Package race simulates one Mini F1 session: the reaction test, the
// fixed-tick race itself and the crash that ends it. It does no rendering
// and no I/O; hosts feed it Input once per tick and draw the exported state.
package race

import (
	"log"
	"math/rand/v2"
	"slices"
)

// Race is the whole mutable state of a session. It is owned by the tick
// loop and must not be touched concurrently.
type Race struct {
	Config     Config
	Player     Player
	BaseSpeed  int
	Score      int
	GameOver   bool
	Entities   []Entity // spawn order
	SpawnTimer int
	Phase      Phase
	Reaction   Reaction

	// Recorder receives the result of every race that ends in a crash.
	Recorder Recorder
	Events   *EventBus

	rng     *rand.Rand
	running bool
}

// New prepares a race for cfg. Call Start before the first Update.
func New(cfg Config, seed uint64) *Race {
	return &Race{
		Config:    cfg,
		Player:    newPlayer(cfg),
		BaseSpeed: DefaultBaseSpeed,
		Events:    NewEventBus(),
		rng:       rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
	}
}

// Running reports whether the tick scheduler should keep advancing the race.
func (r *Race) Running() bool { return r.running }

// Result summarises the race as it stands.
func (r *Race) Result() Finished {
	return Finished{
		Score:   r.Score,
		Team:    r.Config.Team,
		Number:  r.Config.Number,
		Country: r.Config.Country,
	}
}

func (r *Race) tick(in *Input) {
	r.steer(in)
	r.spawn()
	r.resolve()
}

func (r *Race) steer(in *Input) {
	if in == nil {
		return
	}
	dx, dy := 0, 0
	s := r.Player.MoveSpeed
	if in.Left {
		dx -= s
	}
	if in.Right {
		dx += s
	}
	if in.Up {
		dy -= s
	}
	if in.Down {
		dy += s
	}

	p := &r.Player.Rect
	p.X = clamp(p.X+dx, LaneLeft, LaneRight-p.W)
	p.Y = clamp(p.Y+dy, verticalMargin, TrackHeight-p.H-verticalMargin)
}

// resolve walks the entities from newest to oldest so removing index i
// never shifts an entity that is still to be visited.
func (r *Race) resolve() {
	for i := len(r.Entities) - 1; i >= 0; i-- {
		e := &r.Entities[i]
		e.Rect.Y += e.SpeedY
		x, y := e.Rect.X, e.Rect.Y

		if e.Rect.Intersects(r.Player.Rect) {
			switch e.Kind {
			case KindPowerUp:
				r.Score++
				r.remove(i)
				effect := pickEffect(r.rng)
				r.applyEffect(effect)
				r.Events.Emit(Event{Type: EventPowerUp, X: x, Y: y, Data: int(effect)})
				continue
			default:
				if r.Player.Shield {
					r.Player.Shield = false
					r.remove(i)
					r.Events.Emit(Event{Type: EventShieldHit, X: x, Y: y})
					continue
				}
				r.crash(x, y)
				return
			}
		}

		if e.Rect.Y > TrackHeight {
			r.remove(i)
			r.Score++
			r.Events.Emit(Event{Type: EventDodge, X: x, Y: y})
		}
	}
}

func (r *Race) remove(i int) {
	r.Entities = slices.Delete(r.Entities, i, i+1)
}

// applyEffect replaces whatever speed modifier was active; effects never
// stack. The shield survives a later speed effect.
func (r *Race) applyEffect(e Effect) {
	r.resetSpeeds()
	switch e {
	case EffectBoost:
		r.Player.MoveSpeed = BoostMoveSpeed
	case EffectRushHour:
		r.BaseSpeed = RushBaseSpeed
	case EffectPuncture:
		r.Player.MoveSpeed = PunctureMoveSpeed
	case EffectShield:
		r.Player.Shield = true
	}
}

func (r *Race) resetSpeeds() {
	r.Player.MoveSpeed = DefaultMoveSpeed
	r.BaseSpeed = DefaultBaseSpeed
}

func (r *Race) crash(x, y int) {
	r.resetSpeeds()
	r.GameOver = true
	r.Phase = PhaseFinished
	r.running = false

	r.Events.Emit(Event{Type: EventCrash, X: x, Y: y, Data: r.Score})
	if r.Recorder == nil {
		return
	}
	if err := r.Recorder.Record(r.Result()); err != nil {
		log.Printf("race: record result: %v", err)
	}
}
