package game

import "testing"

// tickSpawner runs the spawner until fn reports done or the tick budget runs out.
func tickSpawner(s *WaveSpawner, w *World, q *EventQueue, stage, wave, budget int, fn func(cleared int) bool) int {
	for i := 0; i < budget; i++ {
		if fn(s.Tick(0.05, stage, wave, w, q)) {
			return i + 1
		}
	}
	return -1
}

func TestSpawnerWaitsOutWaveDelay(t *testing.T) {
	s := NewWaveSpawner(1, 1)
	w := NewWorld()
	var q EventQueue
	ticks := tickSpawner(s, w, &q, 1, 1, 200, func(int) bool { return w.EnemyCount() > 0 })
	if ticks < 0 {
		t.Fatalf("expected the first enemy to spawn")
	}
	if elapsed := float64(ticks) * 0.05; elapsed < WaveDelay-0.05 || elapsed > WaveDelay+0.1 {
		t.Fatalf("expected first spawn after about %.1fs, got %.2fs", WaveDelay, elapsed)
	}
	events := q.Drain()
	if n := countEvents(events, EventWaveStarted); n != 1 {
		t.Fatalf("expected one wave start, got %d", n)
	}
	if n := countEvents(events, EventWaveSpawnRequest); n != 1 {
		t.Fatalf("expected one spawn request, got %d", n)
	}
}

func TestSpawnerIssuesWaveThenReportsCleared(t *testing.T) {
	s := NewWaveSpawner(42, 1)
	w := NewWorld()
	var q EventQueue
	want := WaveEnemyCount(1, 1, 1)

	tickSpawner(s, w, &q, 1, 1, 400, func(int) bool { return s.Remaining() == 0 && s.Active })
	if w.CountWave(1) != want {
		t.Fatalf("expected %d enemies tracked, got %d", want, w.CountWave(1))
	}
	if s.TotalIssued != want {
		t.Fatalf("expected %d issued, got %d", want, s.TotalIssued)
	}
	if cleared := s.Tick(0.05, 1, 1, w, &q); cleared != 0 {
		t.Fatalf("expected no clear while enemies are alive, got %d", cleared)
	}

	var ids []EntityID
	w.ForEach([]ComponentKey{CompEnemy}, func(id EntityID) { ids = append(ids, id) })
	for _, id := range ids {
		w.RemoveEntity(id)
	}
	if cleared := s.Tick(0.05, 1, 1, w, &q); cleared != 1 {
		t.Fatalf("expected wave 1 cleared, got %d", cleared)
	}
	if cleared := s.Tick(0.05, 1, 1, w, &q); cleared != 0 {
		t.Fatalf("expected a cleared wave to be reported once, got %d", cleared)
	}
}

func TestSpawnerSameSeedSameWave(t *testing.T) {
	run := func() []WaveSpawnRequest {
		s := NewWaveSpawner(9, 1)
		w := NewWorld()
		var q EventQueue
		tickSpawner(s, w, &q, 5, 2, 400, func(int) bool { return s.Active && s.Remaining() == 0 })
		var out []WaveSpawnRequest
		for _, ev := range q.Drain() {
			if req, ok := ev.Payload.(WaveSpawnRequest); ok {
				out = append(out, req)
			}
		}
		return out
	}
	a, b := run(), run()
	if len(a) == 0 || len(a) != len(b) {
		t.Fatalf("expected equal non-empty runs, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i].EnemyTypeID != b[i].EnemyTypeID || a[i].Position != b[i].Position || a[i].Behavior != b[i].Behavior {
			t.Fatalf("spawn %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSpawnerResetForgetsWave(t *testing.T) {
	s := NewWaveSpawner(1, 1)
	w := NewWorld()
	tickSpawner(s, w, nil, 1, 1, 100, func(int) bool { return s.TotalIssued > 0 })
	s.Reset()
	if s.Active || s.Wave != 0 || s.TotalIssued != 0 {
		t.Fatalf("expected reset spawner, got active %v wave %d issued %d", s.Active, s.Wave, s.TotalIssued)
	}
}
