package race

import "time"

// ActionKind is a one-shot player request.
type ActionKind int

const (
	ActionReact   ActionKind = iota // space: leave the reaction test
	ActionRestart                   // r: new race after a crash
	ActionMenu                      // escape: back to setup
)

// Action is a queued one-shot request. At is when the key went down; the
// reaction test measures against it.
type Action struct {
	Kind ActionKind
	At   time.Time
}

// Input is the player's intent for the next tick. Hosts set the held
// directions and queue actions; the race consumes both once per tick.
type Input struct {
	Left, Right, Up, Down bool

	actions []Action
}

// Push queues a one-shot action.
func (in *Input) Push(kind ActionKind, at time.Time) {
	in.actions = append(in.actions, Action{Kind: kind, At: at})
}

// Pending reports how many actions are queued.
func (in *Input) Pending() int { return len(in.actions) }

// Drain returns the queued actions in order and empties the queue.
func (in *Input) Drain() []Action {
	out := in.actions
	in.actions = nil
	return out
}

// Release clears every held direction.
func (in *Input) Release() {
	in.Left, in.Right, in.Up, in.Down = false, false, false, false
}
