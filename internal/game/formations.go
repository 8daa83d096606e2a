package game

import (
	"math"
	"math/rand"
)

// formationPosition lays out the idx-th of count enemies launched from the
// carrier. Screen space is y-down, so "below the carrier" is +Y.
func formationPosition(pattern SpawnPattern, carrier Vec2, idx, count int, rng *rand.Rand) Vec2 {
	if count <= 0 {
		count = 1
	}
	switch pattern {
	case SpawnLine:
		spacing := 300.0 / (float64(count) + 1)
		return Vec2{X: carrier.X + spacing*(float64(idx)+1) - 150, Y: carrier.Y + 40}
	case SpawnVFormation:
		offset := float64(idx - count/2)
		return Vec2{X: carrier.X + offset*50, Y: carrier.Y + 30 + math.Abs(offset)*25}
	case SpawnCircle:
		remaining := count - idx
		angle := float64(remaining) / float64(count) * 2 * math.Pi
		return Vec2{X: carrier.X + math.Cos(angle)*150, Y: carrier.Y - math.Sin(angle)*80 + 20}
	case SpawnSwarm:
		return Vec2{X: carrier.X + rng.Float64()*300 - 150, Y: carrier.Y + 20 + rng.Float64()*60}
	default: // single, random
		return Vec2{X: carrier.X + rng.Float64()*200 - 100, Y: carrier.Y + 50}
	}
}

// GenerateFormation lays out a whole wave at once.
func GenerateFormation(pattern SpawnPattern, carrier Vec2, count int, rng *rand.Rand) []Vec2 {
	if count <= 0 {
		return nil
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(0))
	}
	positions := make([]Vec2, count)
	for i := 0; i < count; i++ {
		positions[i] = clampVec(formationPosition(pattern, carrier, i, count, rng), ScreenW, ScreenH)
	}
	return positions
}

func clampVec(v Vec2, maxX, maxY float64) Vec2 {
	return Vec2{
		X: Clamp(v.X, 0, maxX),
		Y: Clamp(v.Y, 0, maxY),
	}
}
