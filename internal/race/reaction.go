package race

import "time"

// Reaction holds the timestamps of the pre-race reaction test.
type Reaction struct {
	ScheduledGo time.Time // when the light turns green
	GoAt        time.Time // when the tick actually saw it turn
	FalseStart  bool
	Bonus       int
}

var reactionBrackets = []struct {
	upTo  int64 // ms, inclusive
	bonus int
}{
	{130, 30},
	{190, 20},
	{260, 12},
	{340, 7},
	{450, 4},
}

const slowReactionBonus = 1

// ReactionBonus maps a reaction time to bonus points. A false start scores
// nothing; negative times count as instant.
func ReactionBonus(elapsed time.Duration, falseStart bool) int {
	if falseStart {
		return 0
	}
	ms := elapsed.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	for _, b := range reactionBrackets {
		if ms <= b.upTo {
			return b.bonus
		}
	}
	return slowReactionBonus
}

func (r *Race) scheduleGo(now time.Time) {
	delay := minGoDelay + time.Duration(r.rng.IntN(goDelayRange))*time.Millisecond
	r.Reaction = Reaction{ScheduledGo: now.Add(delay)}
}

func (r *Race) checkGo(now time.Time) {
	if now.Before(r.Reaction.ScheduledGo) {
		return
	}
	r.Phase = PhaseReactionGo
	r.Reaction.GoAt = now
	r.Events.Emit(Event{Type: EventGo})
}

func (r *Race) react(at time.Time) {
	switch r.Phase {
	case PhaseReactionWait:
		r.Reaction.FalseStart = true
		r.Reaction.Bonus = 0
		r.Events.Emit(Event{Type: EventFalseStart})
		r.beginRace()
	case PhaseReactionGo:
		r.Reaction.Bonus = ReactionBonus(at.Sub(r.Reaction.GoAt), false)
		r.Events.Emit(Event{Type: EventReactionScored, Data: r.Reaction.Bonus})
		r.beginRace()
	}
}

func (r *Race) beginRace() {
	if r.Reaction.Bonus > 0 {
		r.Score += r.Reaction.Bonus
	}
	r.Phase = PhasePlaying
	r.SpawnTimer = bootstrapSpawnDelay
}
