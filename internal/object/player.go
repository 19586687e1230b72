package object

// Player is the user-controlled sprite at the bottom of the playfield.
// It only moves sideways, one sprite width per step.
type Player struct {
	Entity
	playfield Screen
}

// NewPlayer places a player of the given size at height y, centred on the
// slot grid.
func NewPlayer(playfield Screen, width, height, y float64) *Player {
	slots := int(playfield.Width / width)
	return &Player{
		Entity: Entity{
			X:      float64(slots/2) * width,
			Y:      y,
			Width:  width,
			Height: height,
		},
		playfield: playfield,
	}
}

// MoveLeft shifts the player one width left if that stays inside the playfield.
func (p *Player) MoveLeft() bool {
	if p.X-p.Width < 0 {
		return false
	}
	p.X -= p.Width
	return true
}

// MoveRight shifts the player one width right if that stays inside the playfield.
func (p *Player) MoveRight() bool {
	if p.X+2*p.Width > p.playfield.Width {
		return false
	}
	p.X += p.Width
	return true
}
