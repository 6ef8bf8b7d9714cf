package race

// SpawnInterval is the countdown re-armed after each spawn. It shrinks as
// the score grows and never drops below 20 ticks.
func SpawnInterval(score int) int {
	return max(spawnIntervalMin, spawnIntervalMax-score/4)
}

// SpeedBonus is the extra obstacle speed earned by the score, capped at 6.
func SpeedBonus(score int) int {
	return min(maxSpeedBonus, score/25)
}

// spawn counts down and, when the countdown runs out, drops one car and
// sometimes a power-up above the visible track.
func (r *Race) spawn() {
	r.SpawnTimer--
	if r.SpawnTimer > 0 {
		return
	}
	r.Entities = append(r.Entities, r.newEntity(KindCar))
	if r.rng.IntN(powerUpOdds) == 0 {
		r.Entities = append(r.Entities, r.newEntity(KindPowerUp))
	}
	r.SpawnTimer = SpawnInterval(r.Score)
}

func (r *Race) newEntity(kind Kind) Entity {
	// Power-ups reuse the car lane so both stay clear of the kerbs.
	xMin := LaneLeft + spawnMargin
	xMax := LaneRight - CarWidth - spawnMargin
	x := xMin + r.rng.IntN(max(1, xMax-xMin+1))

	drop, w, h := obstacleDrop, CarWidth, CarHeight
	if kind == KindPowerUp {
		drop, w, h = powerUpDrop, PowerUpSize, PowerUpSize
	}
	y := -CarHeight - r.rng.IntN(drop)
	vy := r.BaseSpeed + r.rng.IntN(speedJitter) + SpeedBonus(r.Score)

	skin := PowerUpSkin
	if kind == KindCar {
		skin = teamSkins[r.rng.IntN(len(teamSkins))]
	}
	return Entity{
		Kind:   kind,
		Rect:   Rect{X: x, Y: y, W: w, H: h},
		SpeedY: vy,
		Skin:   skin,
	}
}
