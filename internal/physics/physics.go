// Package physics provides collision detection utilities.
package physics

import "github.com/tomz197/dodger/internal/object"

// EnemyStrikesPlayer reports whether a falling enemy hits the player.
//
// The enemy's bottom edge must reach the player's top edge and the enemy's
// whole horizontal extent must lie inside the player's. Partial horizontal
// overlap is a miss, and there is no lower bound on the enemy's position.
func EnemyStrikesPlayer(enemy, player object.Rect) bool {
	return enemy.Bottom() >= player.Y &&
		enemy.X >= player.X &&
		enemy.Right() <= player.Right()
}

// Overlaps is the standard AABB intersection test. Touching edges do not overlap.
func Overlaps(a, b object.Rect) bool {
	if a.X >= b.Right() || b.X >= a.Right() {
		return false
	}
	if a.Y >= b.Bottom() || b.Y >= a.Bottom() {
		return false
	}
	return true
}
