// Package object holds the game entities: the player, falling enemies and
// the lane finder that places new enemies.
package object

import (
	"time"
)

// Kind identifies what an entity is to the host that draws it.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
)

// String returns the lowercase kind name used in logs and wire messages.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Handle is an opaque reference to a host-side visual.
type Handle uint64

// Screen represents the playfield dimensions in logical pixels.
type Screen struct {
	Width  float64
	Height float64
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta     time.Duration
	Playfield Screen
}

// Millis returns the frame delta in fractional milliseconds, clamped at zero.
func (ctx UpdateContext) Millis() float64 {
	if ctx.Delta <= 0 {
		return 0
	}
	return float64(ctx.Delta) / float64(time.Millisecond)
}

// Rect is an axis-aligned box, top-left anchored.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Entity is the positioned, sized, destructible shape shared by the player and enemies.
type Entity struct {
	X, Y          float64
	Width, Height float64
	Destroyed     bool
	Visual        Handle // Host visual, valid once created
	released      bool
}

// Bounds returns the entity's bounding box.
func (e *Entity) Bounds() Rect {
	return Rect{X: e.X, Y: e.Y, W: e.Width, H: e.Height}
}

// Release hands the visual to release and reports whether it did.
// Only the first call does anything, so a visual is never removed twice.
func (e *Entity) Release(release func(Handle)) bool {
	if e.released {
		return false
	}
	e.released = true
	release(e.Visual)
	return true
}
