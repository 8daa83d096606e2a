package game

import (
	"math"
	"testing"
)

func newTestBoss(t *testing.T, stage int) *Boss {
	t.Helper()
	def, err := GetBoss(stage)
	if err != nil {
		t.Fatalf("GetBoss(%d): %v", stage, err)
	}
	return NewBoss(*def, Newbro.Modifiers())
}

// runIntro steps the boss until it reaches battle.
func runIntro(t *testing.T, b *Boss, q *EventQueue) {
	t.Helper()
	for i := 0; i < 200 && b.State == BossIntro; i++ {
		b.Update(0.05, ScreenW/2, q)
	}
	if b.State != BossBattle {
		t.Fatalf("expected battle after intro, got %s", b.State)
	}
}

func TestBossIntroRevealsNameOnce(t *testing.T) {
	b := newTestBoss(t, 1)
	var q EventQueue
	runIntro(t, b, &q)
	for i := 0; i < 20; i++ {
		b.Update(0.05, ScreenW/2, &q)
	}
	events := q.Drain()
	if n := countEvents(events, EventBossNameRevealed); n != 1 {
		t.Fatalf("expected one name reveal, got %d", n)
	}
	if b.Movement != MoveSweep {
		t.Fatalf("expected sweep after intro, got %s", b.Movement)
	}
	if b.Pos.Y != BossBattleYMobile {
		t.Fatalf("expected boss to settle at y %.0f, got %.1f", BossBattleYMobile, b.Pos.Y)
	}
}

func TestStationaryBossHoldsPosition(t *testing.T) {
	b := newTestBoss(t, 3)
	var q EventQueue
	runIntro(t, b, &q)
	x := b.Pos.X
	for i := 0; i < 100; i++ {
		b.Update(0.05, 120, &q)
	}
	if b.Movement != MoveStationary || b.Pos.X != x {
		t.Fatalf("expected stationary boss at x %.1f, got %s at %.1f", x, b.Movement, b.Pos.X)
	}
}

func TestBossHealthClamp(t *testing.T) {
	b := newTestBoss(t, 1)
	b.ApplyDamage(-50)
	if b.Health != b.MaxHealth {
		t.Fatalf("expected negative damage ignored, got %.1f", b.Health)
	}
	b.ApplyDamage(b.MaxHealth * 3)
	if b.Health != 0 {
		t.Fatalf("expected health clamped at 0, got %.1f", b.Health)
	}
}

// Two lethal hits in the same tick still resolve one defeat.
func TestBossDefeatResolvesOnce(t *testing.T) {
	b := newTestBoss(t, 1)
	var q EventQueue
	runIntro(t, b, &q)
	b.ApplyDamage(b.MaxHealth)
	b.ApplyDamage(b.MaxHealth)
	defeats := 0
	for i := 0; i < 10; i++ {
		if b.Update(0.05, ScreenW/2, &q) {
			defeats++
		}
	}
	if defeats != 1 {
		t.Fatalf("expected exactly one defeat, got %d", defeats)
	}
	if !b.Defeated() {
		t.Fatalf("expected defeated state, got %s", b.State)
	}
	b.ApplyDamage(10)
	if b.Health != 0 {
		t.Fatalf("expected defeated boss to ignore damage, got %.1f", b.Health)
	}
}

// A single hit across several thresholds advances one phase per tick, never
// skipping or repeating a phase.
func TestBossPhasesAdvanceOnePerTick(t *testing.T) {
	b := newTestBoss(t, 13)
	var q EventQueue
	runIntro(t, b, &q)
	q.Drain()

	b.ApplyDamage(b.MaxHealth * 0.9)
	var phases []int
	for i := 0; i < 10; i++ {
		before := b.Phase
		b.Update(0.05, ScreenW/2, &q)
		if b.Phase < before || b.Phase > before+1 {
			t.Fatalf("tick %d: phase jumped from %d to %d", i, before, b.Phase)
		}
	}
	for _, ev := range q.Drain() {
		if pc, ok := ev.Payload.(BossPhaseChanged); ok {
			phases = append(phases, pc.Phase)
		}
	}
	want := []int{2, 3, 4}
	if len(phases) != len(want) {
		t.Fatalf("expected phases %v, got %v", want, phases)
	}
	for i := range want {
		if phases[i] != want[i] {
			t.Fatalf("expected phases %v, got %v", want, phases)
		}
	}
	if b.Attack.Pattern.ID != PatternIDFor(13, 4) {
		t.Fatalf("expected pattern %s, got %s", PatternIDFor(13, 4), b.Attack.Pattern.ID)
	}
	if b.Movement != MoveAggressive {
		t.Fatalf("expected aggressive movement from phase 3, got %s", b.Movement)
	}
}

func TestBossEnrageOnce(t *testing.T) {
	b := newTestBoss(t, 2)
	var q EventQueue
	runIntro(t, b, &q)
	rate := b.Attack.FireRate
	speed := b.Speed

	b.ApplyDamage(b.MaxHealth * (1 - b.EnrageThreshold))
	for i := 0; i < 20; i++ {
		b.Update(0.05, ScreenW/2, &q)
	}
	if !b.Enraged {
		t.Fatalf("expected enrage at %.0f%% health", b.HealthFraction()*100)
	}
	if n := countEvents(q.Drain(), EventBossEnraged); n != 1 {
		t.Fatalf("expected one enrage event, got %d", n)
	}
	if b.Speed != speed*EnrageSpeedScale {
		t.Fatalf("expected speed %.1f, got %.1f", speed*EnrageSpeedScale, b.Speed)
	}
	// Phase 2 also triggered, so the rate carries both reductions.
	want := rate * PhaseFireRateScale * EnrageFireRate
	if diff := b.Attack.FireRate - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("expected fire rate %.4f, got %.4f", want, b.Attack.FireRate)
	}
}

func TestBossFiresOnInterval(t *testing.T) {
	b := newTestBoss(t, 1)
	var q EventQueue
	runIntro(t, b, &q)
	q.Drain()
	interval := b.Attack.Interval()
	ticks := int(2 / 0.05)
	for i := 0; i < ticks; i++ {
		b.Update(0.05, ScreenW/2, &q)
	}
	bursts := countEvents(q.Drain(), EventProjectileBurst)
	want := int(2 / interval)
	if bursts < want-1 || bursts > want+1 {
		t.Fatalf("expected about %d bursts in 2s at %.2fs, got %d", want, interval, bursts)
	}
}

func TestDifficultyScalesBoss(t *testing.T) {
	def := BossForStage(1)
	hard := NewBoss(def, Triglavian.Modifiers())
	if hard.MaxHealth != def.MaxHealth*2 {
		t.Fatalf("expected doubled health, got %.0f", hard.MaxHealth)
	}
	easy := NewBoss(def, Carebear.Modifiers())
	if easy.Attack.Interval() <= NewBoss(def, Newbro.Modifiers()).Attack.Interval() {
		t.Fatalf("expected easier difficulty to fire slower")
	}
}

func TestBossXStaysInBounds(t *testing.T) {
	b := newTestBoss(t, 2)
	var q EventQueue
	runIntro(t, b, &q)
	b.Movement = MoveAggressive
	for i := 0; i < 400; i++ {
		b.Update(0.05, 0, nil)
		if b.Pos.X < 100 || b.Pos.X > ScreenW-100 {
			t.Fatalf("boss left the play band: x %.1f", b.Pos.X)
		}
	}
}

func TestBossStrafeStepsTowardTarget(t *testing.T) {
	b := newTestBoss(t, 1)
	b.Movement = MoveStrafe
	b.Pos.X = ScreenW / 2
	dt := 0.05
	// sin(t*0.5) peaks at t = pi, putting the target at center + range.
	b.MoveTimer = math.Pi - dt
	b.move(dt, 0)
	want := ScreenW/2 + b.Speed*dt
	if math.Abs(b.Pos.X-want) > 1e-9 {
		t.Fatalf("expected one speed step to %.2f, got %.2f", want, b.Pos.X)
	}
	for i := 0; i < 200; i++ {
		b.MoveTimer = math.Pi - dt
		b.move(dt, 0)
	}
	if want := ScreenW/2 + BossStrafeRange; math.Abs(b.Pos.X-want) > 1e-9 {
		t.Fatalf("expected strafe to settle at %.1f, got %.2f", want, b.Pos.X)
	}
}

func TestBossSweepQuarterPeriod(t *testing.T) {
	b := newTestBoss(t, 1)
	b.Movement = MoveSweep
	dt := 0.05
	b.MoveTimer = BossSweepPeriod/4 - dt
	b.move(dt, 0)
	if want := ScreenW/2 + BossSweepAmplitude; math.Abs(b.Pos.X-want) > 1e-6 {
		t.Fatalf("expected sweep peak at %.1f, got %.4f", want, b.Pos.X)
	}
	b.MoveTimer = 3*BossSweepPeriod/4 - dt
	b.move(dt, 0)
	if want := ScreenW/2 - BossSweepAmplitude; math.Abs(b.Pos.X-want) > 1e-6 {
		t.Fatalf("expected sweep trough at %.1f, got %.4f", want, b.Pos.X)
	}
}

func TestBossAggressiveChasesPlayer(t *testing.T) {
	b := newTestBoss(t, 1)
	b.Movement = MoveAggressive
	b.Pos.X = ScreenW / 2
	dt := 0.1
	playerX := 150.0
	b.move(dt, playerX)
	if want := ScreenW/2 - b.Speed*0.5*dt; math.Abs(b.Pos.X-want) > 1e-9 {
		t.Fatalf("expected a half-speed step left to %.2f, got %.2f", want, b.Pos.X)
	}
	for i := 0; i < 200; i++ {
		b.move(dt, playerX)
	}
	if b.Pos.X != playerX {
		t.Fatalf("expected boss over the player at %.0f, got %.2f", playerX, b.Pos.X)
	}
	b.move(dt, ScreenW)
	if b.Pos.X <= playerX {
		t.Fatalf("expected boss to follow the player right, got %.2f", b.Pos.X)
	}
}
