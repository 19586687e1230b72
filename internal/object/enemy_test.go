package object

import (
	"testing"
	"time"

	"pgregory.net/rapid"
)

var testPlayfield = Screen{Width: 375, Height: 500}

func TestEnemyFallsByDelta(t *testing.T) {
	e := NewEnemy(Spot{Lane: 1, X: 75, Y: -156}, 75, 156, 0.5)
	e.Update(UpdateContext{Delta: 100 * time.Millisecond, Playfield: testPlayfield})
	if e.Y != -106 {
		t.Fatalf("Y after 100ms = %v, want -106", e.Y)
	}
	if e.X != 75 {
		t.Fatalf("X changed to %v", e.X)
	}
	if e.Destroyed {
		t.Fatal("enemy destroyed while still on screen")
	}
}

func TestEnemyFirstFrameDoesNotMove(t *testing.T) {
	e := NewEnemy(Spot{Y: 10}, 75, 156, 0.5)
	e.Update(UpdateContext{Delta: 0, Playfield: testPlayfield})
	if e.Y != 10 {
		t.Fatalf("Y after zero delta = %v, want 10", e.Y)
	}
	e.Update(UpdateContext{Delta: -5 * time.Millisecond, Playfield: testPlayfield})
	if e.Y != 10 {
		t.Fatalf("Y after negative delta = %v, want 10", e.Y)
	}
}

func TestEnemyDestroyedBelowPlayfield(t *testing.T) {
	e := NewEnemy(Spot{Y: 499}, 75, 156, 1)
	e.Update(UpdateContext{Delta: time.Millisecond, Playfield: testPlayfield})
	if e.Destroyed {
		t.Fatal("enemy at y == height must still be alive")
	}
	e.Update(UpdateContext{Delta: time.Millisecond, Playfield: testPlayfield})
	if !e.Destroyed {
		t.Fatal("enemy below playfield not destroyed")
	}
	if !e.Expired() {
		t.Fatal("off-screen enemy should count as expired")
	}
}

func TestStruckEnemyIsNotExpired(t *testing.T) {
	e := NewEnemy(Spot{}, 75, 156, 1)
	e.Strike()
	if !e.Destroyed || !e.HitPlayer {
		t.Fatalf("Strike() left destroyed=%v hit=%v", e.Destroyed, e.HitPlayer)
	}
	if e.Expired() {
		t.Fatal("struck enemy must not count as expired")
	}
}

func TestEnemyUpdateProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		speed := rapid.Float64Range(0.01, 2).Draw(t, "speed")
		startY := rapid.Float64Range(-156, 500).Draw(t, "y")
		ms := rapid.IntRange(0, 1000).Draw(t, "ms")
		destroyed := rapid.Bool().Draw(t, "destroyed")

		e := NewEnemy(Spot{Y: startY}, 75, 156, speed)
		e.Destroyed = destroyed
		e.Update(UpdateContext{Delta: time.Duration(ms) * time.Millisecond, Playfield: testPlayfield})

		if destroyed {
			if e.Y != startY {
				t.Fatalf("destroyed enemy moved from %v to %v", startY, e.Y)
			}
			return
		}
		if want := startY + speed*float64(ms); e.Y != want {
			t.Fatalf("Y = %v, want %v", e.Y, want)
		}
		if e.Y < startY {
			t.Fatalf("enemy moved up: %v -> %v", startY, e.Y)
		}
		if e.Destroyed != (e.Y > testPlayfield.Height) {
			t.Fatalf("destroyed=%v at y=%v", e.Destroyed, e.Y)
		}
	})
}

func TestReleaseOnlyOnce(t *testing.T) {
	e := NewEnemy(Spot{}, 75, 156, 1)
	e.Visual = 9
	var calls []Handle
	release := func(h Handle) { calls = append(calls, h) }

	if !e.Release(release) {
		t.Fatal("first Release() = false")
	}
	if e.Release(release) {
		t.Fatal("second Release() = true")
	}
	if len(calls) != 1 || calls[0] != 9 {
		t.Fatalf("release calls = %v, want [9]", calls)
	}
}
