package engine

import "github.com/tomz197/dodger/internal/physics"

// DetectCollisions checks every live enemy against the player. A hit destroys
// the enemy, removes its visual right away and costs one life. All enemies
// are checked even after the last life is gone; the return value reports
// whether the player is out of lives.
func (e *Engine) DetectCollisions() bool {
	pb := e.player.Bounds()
	for _, en := range e.enemies {
		if en.Destroyed || !physics.EnemyStrikesPlayer(en.Bounds(), pb) {
			continue
		}

		en.Strike()
		en.Release(e.host.RemoveVisual)

		if e.lives > 0 {
			e.lives--
			e.host.SetLivesDisplay(e.lives)
		}
		e.logger.Debug("enemy hit player", "lane", en.Lane, "lives", e.lives)
	}
	return e.lives == 0
}
