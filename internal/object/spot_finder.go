package object

import (
	"math"
	"math/rand"
)

// Spot is a spawn position for a new enemy.
type Spot struct {
	Lane int
	X, Y float64
}

// SpotFinder places new enemies in free lanes just above the playfield.
type SpotFinder struct {
	lanes     int
	laneWidth float64
	spawnY    float64
	rng       *rand.Rand

	// Reused between calls to avoid per-spawn allocations
	occupied []bool
	topY     []float64
	free     []int
}

// NewSpotFinder creates a finder with floor(playfield width / enemy width) lanes.
func NewSpotFinder(playfield Screen, enemyWidth, enemyHeight float64, rng *rand.Rand) *SpotFinder {
	lanes := int(playfield.Width / enemyWidth)
	if lanes < 1 {
		lanes = 1
	}
	return &SpotFinder{
		lanes:     lanes,
		laneWidth: enemyWidth,
		spawnY:    -enemyHeight,
		rng:       rng,
		occupied:  make([]bool, lanes),
		topY:      make([]float64, lanes),
		free:      make([]int, 0, lanes),
	}
}

// Next picks a random lane no live enemy occupies. When every lane is taken
// it picks the lane whose highest enemy has fallen farthest, lowest index
// first on ties.
func (f *SpotFinder) Next(active []*Enemy) Spot {
	for i := range f.occupied {
		f.occupied[i] = false
		f.topY[i] = math.Inf(1)
	}
	for _, e := range active {
		if e.Destroyed || e.Lane < 0 || e.Lane >= f.lanes {
			continue
		}
		f.occupied[e.Lane] = true
		f.topY[e.Lane] = math.Min(f.topY[e.Lane], e.Y)
	}

	f.free = f.free[:0]
	for lane, taken := range f.occupied {
		if !taken {
			f.free = append(f.free, lane)
		}
	}

	lane := 0
	if len(f.free) > 0 {
		lane = f.free[f.rng.Intn(len(f.free))]
	} else {
		for i := 1; i < f.lanes; i++ {
			if f.topY[i] > f.topY[lane] {
				lane = i
			}
		}
	}

	return Spot{Lane: lane, X: float64(lane) * f.laneWidth, Y: f.spawnY}
}
