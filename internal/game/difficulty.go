package game

import "strings"

// Difficulty selects a set of tuning modifiers.
type Difficulty int

const (
	Carebear Difficulty = iota
	Newbro
	BitterVet
	Triglavian
)

// DifficultyModifiers scale spawn counts, boss toughness and scoring.
type DifficultyModifiers struct {
	SpawnRate        float64 // enemy count multiplier for each wave
	BossHealth       float64
	BossFireInterval float64 // >1 means slower boss attacks
	ScoreBase        float64
	ComboDecay       float64 // >1 means the combo window drains faster
}

var difficultyModifiers = map[Difficulty]DifficultyModifiers{
	Carebear:   {SpawnRate: 0.8, BossHealth: 0.6, BossFireInterval: 1.3, ScoreBase: 0.5, ComboDecay: 0.7},
	Newbro:     {SpawnRate: 1.0, BossHealth: 1.0, BossFireInterval: 1.0, ScoreBase: 1.0, ComboDecay: 1.0},
	BitterVet:  {SpawnRate: 1.2, BossHealth: 1.4, BossFireInterval: 0.8, ScoreBase: 1.5, ComboDecay: 1.3},
	Triglavian: {SpawnRate: 1.5, BossHealth: 2.0, BossFireInterval: 0.6, ScoreBase: 3.0, ComboDecay: 2.0},
}

// Modifiers returns the tuning for d, falling back to Newbro.
func (d Difficulty) Modifiers() DifficultyModifiers {
	if m, ok := difficultyModifiers[d]; ok {
		return m
	}
	return difficultyModifiers[Newbro]
}

func (d Difficulty) String() string {
	switch d {
	case Carebear:
		return "carebear"
	case BitterVet:
		return "bittervet"
	case Triglavian:
		return "triglavian"
	default:
		return "newbro"
	}
}

// ParseDifficulty accepts a level name in any case. Unknown names map to Newbro.
func ParseDifficulty(name string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "carebear", "easy":
		return Carebear
	case "bittervet", "bitter_vet", "hard":
		return BitterVet
	case "triglavian", "nightmare":
		return Triglavian
	default:
		return Newbro
	}
}
