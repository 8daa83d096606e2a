package game

import "math/rand"

// WaveSpawner runs the wave the campaign points at: it waits out the
// inter-wave delay, issues one spawn request per interval and reports the
// wave cleared once every issued enemy is gone.
type WaveSpawner struct {
	Seed      int64
	SpawnRate float64 // external difficulty scalar applied to enemy counts
	Carrier   Vec2

	Wave   int
	Def    WaveDefinition
	Active bool
	Delay  float64

	// TotalIssued counts spawn requests since the last Reset.
	TotalIssued int

	pending   bool
	issued    int
	timer     float64
	interval  float64
	positions []Vec2
	rng       *rand.Rand
}

func NewWaveSpawner(seed int64, spawnRate float64) *WaveSpawner {
	if !(spawnRate > 0) {
		spawnRate = 1
	}
	return &WaveSpawner{
		Seed:      seed,
		SpawnRate: spawnRate,
		Carrier:   Vec2{X: CarrierX, Y: CarrierY},
	}
}

// Reset forgets the current wave so the next Tick schedules a fresh one.
func (s *WaveSpawner) Reset() {
	s.Wave = 0
	s.Def = WaveDefinition{}
	s.Active = false
	s.pending = false
	s.issued = 0
	s.positions = nil
	s.rng = nil
	s.TotalIssued = 0
}

// Remaining returns how many enemies of the active wave are still to be issued.
func (s *WaveSpawner) Remaining() int {
	if !s.Active {
		return 0
	}
	return s.Def.EnemyCount - s.issued
}

// Tick advances the spawner for the campaign's current (stage, wave).
// It returns the wave number when that wave has just been cleared, else 0.
func (s *WaveSpawner) Tick(dt float64, stage, wave int, world *World, q *EventQueue) int {
	if wave != s.Wave {
		s.Wave = wave
		s.pending = true
		s.Active = false
		s.Delay = WaveDelay
		s.issued = 0
	}
	if s.pending {
		s.Delay -= dt
		if s.Delay > 0 {
			return 0
		}
		s.begin(stage, wave, q)
	}
	if !s.Active {
		return 0
	}
	if s.issued < s.Def.EnemyCount {
		s.timer -= dt
		if s.timer <= 0 {
			s.spawnNext(world, q)
			s.timer = s.interval
		}
	}
	if s.issued >= s.Def.EnemyCount && world.CountWave(wave) == 0 {
		s.Active = false
		return wave
	}
	return 0
}

func (s *WaveSpawner) begin(stage, wave int, q *EventQueue) {
	s.pending = false
	s.Active = true
	s.Def = DeriveWave(stage, wave, s.SpawnRate)
	seed := s.Seed + int64(stage)*1_000_003 + int64(wave)*97
	s.rng = rand.New(rand.NewSource(seed))
	s.positions = GenerateFormation(s.Def.Pattern, s.Carrier, s.Def.EnemyCount, s.rng)
	s.interval = SpawnInterval(wave)
	s.timer = 0
	s.issued = 0
	q.Emit(EventWaveStarted, WaveStarted{
		Wave:       wave,
		EnemyCount: s.Def.EnemyCount,
		Pattern:    s.Def.Pattern.String(),
	})
}

func (s *WaveSpawner) spawnNext(world *World, q *EventQueue) {
	arch, err := s.Def.PickArchetype(s.rng)
	if err != nil {
		arch = GetArchetype(TypePunisher)
	}
	behavior := s.Def.PickBehavior(s.rng)
	pos := s.Carrier
	if s.issued < len(s.positions) {
		pos = s.positions[s.issued]
	}
	id := world.SpawnEnemy(arch, s.Wave, behavior, pos)
	s.issued++
	s.TotalIssued++
	q.Emit(EventWaveSpawnRequest, WaveSpawnRequest{
		EntityID:    id,
		EnemyTypeID: arch.TypeID,
		Name:        arch.Name,
		Position:    pos,
		Behavior:    behavior.String(),
		Wave:        s.Wave,
	})
}
