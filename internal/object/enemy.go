package object

// Enemy falls straight down at a fixed speed until it leaves the playfield
// or strikes the player.
type Enemy struct {
	Entity
	Lane      int
	Speed     float64 // px per ms
	HitPlayer bool    // Set by the engine on collision
}

// NewEnemy creates an enemy at the given spot.
func NewEnemy(spot Spot, width, height, speed float64) *Enemy {
	return &Enemy{
		Entity: Entity{
			X:      spot.X,
			Y:      spot.Y,
			Width:  width,
			Height: height,
		},
		Lane:  spot.Lane,
		Speed: speed,
	}
}

// Update moves the enemy down by Speed × Δt and marks it destroyed once its
// top edge is below the playfield. Destroyed enemies are never moved again.
func (e *Enemy) Update(ctx UpdateContext) {
	if e.Destroyed {
		return
	}
	e.Y += e.Speed * ctx.Millis()
	if e.Y > ctx.Playfield.Height {
		e.Destroyed = true
	}
}

// Strike marks the enemy as destroyed by a collision with the player.
func (e *Enemy) Strike() {
	e.HitPlayer = true
	e.Destroyed = true
}

// Expired reports whether the enemy left the playfield without hitting the player.
func (e *Enemy) Expired() bool {
	return e.Destroyed && !e.HitPlayer
}
