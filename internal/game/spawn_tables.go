package game

import (
	"fmt"
	"math"
	"math/rand"
)

// SpawnPattern picks the formation a wave is laid out in.
type SpawnPattern int

const (
	SpawnSingle SpawnPattern = iota
	SpawnLine
	SpawnVFormation
	SpawnCircle
	SpawnRandom
	SpawnSwarm
)

func (p SpawnPattern) String() string {
	switch p {
	case SpawnLine:
		return "line"
	case SpawnVFormation:
		return "v_formation"
	case SpawnCircle:
		return "circle"
	case SpawnRandom:
		return "random"
	case SpawnSwarm:
		return "swarm"
	default:
		return "single"
	}
}

// EnemyBehavior is the movement script a spawned enemy runs.
type EnemyBehavior int

const (
	BehaviorLinear EnemyBehavior = iota
	BehaviorZigzag
	BehaviorWeaver
	BehaviorHoming
	BehaviorSniper
	BehaviorOrbital
	BehaviorTank
	BehaviorSpawner
	BehaviorKamikaze
)

var behaviorNames = map[EnemyBehavior]string{
	BehaviorLinear:   "linear",
	BehaviorZigzag:   "zigzag",
	BehaviorWeaver:   "weaver",
	BehaviorHoming:   "homing",
	BehaviorSniper:   "sniper",
	BehaviorOrbital:  "orbital",
	BehaviorTank:     "tank",
	BehaviorSpawner:  "spawner",
	BehaviorKamikaze: "kamikaze",
}

func (b EnemyBehavior) String() string {
	if name, ok := behaviorNames[b]; ok {
		return name
	}
	return "linear"
}

// Enemy type ids.
const (
	TypePunisher    = 597
	TypeExecutioner = 589
	TypeTormentor   = 591
	TypeCoercer     = 16236
	TypeMaller      = 624
	TypeOmen        = 625
)

// EnemyArchetype holds the combat stats for an enemy type id.
type EnemyArchetype struct {
	TypeID int
	Name   string
	Health float64
	Speed  float64
	Score  int64
}

// ArchetypeRegistry holds the known enemy archetypes keyed by type id.
var ArchetypeRegistry = map[int]EnemyArchetype{
	TypePunisher:    {TypeID: TypePunisher, Name: "Punisher", Health: 40, Speed: 80, Score: 100},
	TypeExecutioner: {TypeID: TypeExecutioner, Name: "Executioner", Health: 25, Speed: 120, Score: 80},
	TypeTormentor:   {TypeID: TypeTormentor, Name: "Tormentor", Health: 35, Speed: 90, Score: 90},
	TypeCoercer:     {TypeID: TypeCoercer, Name: "Coercer", Health: 30, Speed: 100, Score: 50},
	TypeMaller:      {TypeID: TypeMaller, Name: "Maller", Health: 30, Speed: 100, Score: 50},
	TypeOmen:        {TypeID: TypeOmen, Name: "Omen", Health: 30, Speed: 100, Score: 50},
}

// GetArchetype returns the archetype for a type id. Unknown ids get
// generic stats so a stale id never stalls a wave.
func GetArchetype(typeID int) EnemyArchetype {
	if a, ok := ArchetypeRegistry[typeID]; ok {
		return a
	}
	return EnemyArchetype{TypeID: typeID, Name: "Unknown", Health: 30, Speed: 100, Score: 50}
}

// WeightedArchetype pairs an enemy type id with a pick weight.
type WeightedArchetype struct {
	TypeID int
	Weight int
}

type typeBracket struct {
	MinStage, MaxStage int
	Types              []WeightedArchetype
}

type behaviorBracket struct {
	MinStage, MaxStage int
	Behaviors          []EnemyBehavior
}

func even(ids ...int) []WeightedArchetype {
	out := make([]WeightedArchetype, len(ids))
	for i, id := range ids {
		out[i] = WeightedArchetype{TypeID: id, Weight: 1}
	}
	return out
}

// Stage brackets. The first row is the fallback for untabulated stages.
var typeBrackets = []typeBracket{
	{1, 1, even(TypePunisher)},
	{2, 2, even(TypePunisher, TypeExecutioner)},
	{3, 4, even(TypePunisher, TypeExecutioner, TypeTormentor)},
	{5, 6, even(TypePunisher, TypeExecutioner, TypeCoercer)},
	{7, 8, even(TypeExecutioner, TypeCoercer, TypeMaller)},
	{9, 9, even(TypeCoercer, TypeMaller, TypeOmen)},
	{10, 11, even(TypeMaller, TypeOmen, TypeCoercer)},
	{12, 13, even(TypeMaller, TypeOmen)},
}

var behaviorBrackets = []behaviorBracket{
	{1, 2, []EnemyBehavior{BehaviorLinear}},
	{3, 4, []EnemyBehavior{BehaviorLinear, BehaviorZigzag, BehaviorWeaver}},
	{5, 6, []EnemyBehavior{BehaviorLinear, BehaviorZigzag, BehaviorHoming, BehaviorSniper}},
	{7, 8, []EnemyBehavior{BehaviorZigzag, BehaviorHoming, BehaviorWeaver, BehaviorSniper}},
	{9, 10, []EnemyBehavior{BehaviorHoming, BehaviorOrbital, BehaviorTank, BehaviorSpawner}},
	{11, 12, []EnemyBehavior{BehaviorHoming, BehaviorKamikaze, BehaviorTank, BehaviorSpawner}},
	{13, 13, []EnemyBehavior{BehaviorKamikaze, BehaviorTank, BehaviorSpawner, BehaviorSniper}},
}

// WaveDefinition describes one wave. It is derived, never mutated.
type WaveDefinition struct {
	Stage      int
	Wave       int
	EnemyCount int
	EnemyTypes []WeightedArchetype
	Behaviors  []EnemyBehavior
	Pattern    SpawnPattern
}

// SpawnPatternForWave cycles formations by wave number.
func SpawnPatternForWave(wave int) SpawnPattern {
	switch wave % 5 {
	case 1:
		return SpawnSingle
	case 2:
		return SpawnLine
	case 3:
		return SpawnVFormation
	case 4:
		return SpawnRandom
	case 0:
		return SpawnSwarm
	default:
		return SpawnSingle
	}
}

// WaveEnemyCount applies the count formula: 3 + wave + stage/2, scaled by the
// difficulty multiplier and capped at 12 + stage/2. At least one enemy spawns.
func WaveEnemyCount(stage, wave int, difficulty float64) int {
	if stage < 1 {
		stage = 1
	}
	if wave < 1 {
		wave = 1
	}
	if !(difficulty > 0) {
		difficulty = 1
	}
	base := 3 + wave + stage/2
	count := int(float64(base) * difficulty)
	if limit := 12 + stage/2; count > limit {
		count = limit
	}
	if count < 1 {
		count = 1
	}
	return count
}

// DeriveWave computes the definition for (stage, wave). The same inputs always
// produce the same definition; stages outside the tables use the lowest bracket.
func DeriveWave(stage, wave int, difficulty float64) WaveDefinition {
	if wave < 1 {
		wave = 1
	}
	types := typeBrackets[0].Types
	for _, b := range typeBrackets {
		if stage >= b.MinStage && stage <= b.MaxStage {
			types = b.Types
			break
		}
	}
	behaviors := behaviorBrackets[0].Behaviors
	for _, b := range behaviorBrackets {
		if stage >= b.MinStage && stage <= b.MaxStage {
			behaviors = b.Behaviors
			break
		}
	}
	return WaveDefinition{
		Stage:      stage,
		Wave:       wave,
		EnemyCount: WaveEnemyCount(stage, wave, difficulty),
		EnemyTypes: append([]WeightedArchetype(nil), types...),
		Behaviors:  append([]EnemyBehavior(nil), behaviors...),
		Pattern:    SpawnPatternForWave(wave),
	}
}

// PickArchetype draws an enemy type by weight.
func (w WaveDefinition) PickArchetype(rng *rand.Rand) (EnemyArchetype, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(0))
	}
	totalWeight := 0
	for _, t := range w.EnemyTypes {
		if t.Weight > 0 {
			totalWeight += t.Weight
		}
	}
	if totalWeight <= 0 {
		return EnemyArchetype{}, fmt.Errorf("wave %d of stage %d has no weighted enemy types", w.Wave, w.Stage)
	}
	roll := rng.Intn(totalWeight)
	cumulative := 0
	for _, t := range w.EnemyTypes {
		if t.Weight <= 0 {
			continue
		}
		cumulative += t.Weight
		if roll < cumulative {
			return GetArchetype(t.TypeID), nil
		}
	}
	return GetArchetype(w.EnemyTypes[0].TypeID), nil
}

// PickBehavior draws a behavior uniformly.
func (w WaveDefinition) PickBehavior(rng *rand.Rand) EnemyBehavior {
	if len(w.Behaviors) == 0 {
		return BehaviorLinear
	}
	if rng == nil {
		return w.Behaviors[0]
	}
	return w.Behaviors[rng.Intn(len(w.Behaviors))]
}

// SpawnInterval returns the seconds between two spawns of a wave.
func SpawnInterval(wave int) float64 {
	if wave < 1 {
		wave = 1
	}
	return 0.5 + 0.3/math.Sqrt(float64(wave))
}
