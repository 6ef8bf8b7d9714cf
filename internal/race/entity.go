package race

import (
	"math/rand/v2"
	"strconv"
)

// Kind tells falling entities apart at collision time.
type Kind int

const (
	KindCar Kind = iota
	KindPowerUp
)

func (k Kind) String() string {
	switch k {
	case KindCar:
		return "car"
	case KindPowerUp:
		return "power-up"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Entity is anything falling down the track toward the player.
type Entity struct {
	Kind   Kind
	Rect   Rect
	SpeedY int
	Skin   string
}

// Effect is what a collected power-up does to the race.
type Effect int

const (
	EffectBoost    Effect = iota // player moves at BoostMoveSpeed
	EffectRushHour               // obstacles spawn with RushBaseSpeed
	EffectPuncture               // player crawls at PunctureMoveSpeed
	EffectShield                 // absorbs the next car collision

	effectCount // must stay last
)

var effectNames = [effectCount]string{"boost", "rush hour", "puncture", "shield"}

func (e Effect) String() string {
	if e < 0 || e >= effectCount {
		return "Effect(" + strconv.Itoa(int(e)) + ")"
	}
	return effectNames[e]
}

// pickEffect draws one of the power-up effects uniformly.
func pickEffect(rng *rand.Rand) Effect {
	return Effect(rng.IntN(int(effectCount)))
}

// Player is the car under the player's control.
type Player struct {
	Rect      Rect
	MoveSpeed int
	Shield    bool
	Skin      string
	Number    int
}

func newPlayer(cfg Config) Player {
	return Player{
		Rect: Rect{
			X: (LaneLeft + LaneRight - CarWidth) / 2,
			Y: TrackHeight - playerStartOffset,
			W: CarWidth,
			H: CarHeight,
		},
		MoveSpeed: DefaultMoveSpeed,
		Skin:      cfg.Team.Skin(),
		Number:    cfg.Number,
	}
}
