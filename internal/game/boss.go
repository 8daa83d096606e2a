package game

import (
	"log"
	"math"
)

// BossState is the encounter sub-state of the active boss.
type BossState int

const (
	BossIntro BossState = iota
	BossBattle
	BossPhaseTransition
	BossDefeatedState
)

func (s BossState) String() string {
	switch s {
	case BossIntro:
		return "intro"
	case BossBattle:
		return "battle"
	case BossPhaseTransition:
		return "phase_transition"
	case BossDefeatedState:
		return "defeated"
	default:
		return "unknown"
	}
}

// MovementPattern drives the boss's horizontal motion during battle.
type MovementPattern int

const (
	MoveStationary MovementPattern = iota
	MoveSweep
	MoveStrafe
	MoveAggressive
	MoveDescend
)

func (m MovementPattern) String() string {
	switch m {
	case MoveStationary:
		return "stationary"
	case MoveSweep:
		return "sweep"
	case MoveStrafe:
		return "strafe"
	case MoveAggressive:
		return "aggressive"
	case MoveDescend:
		return "descend"
	default:
		return "unknown"
	}
}

// BossAttack is the firing state of a boss.
type BossAttack struct {
	Pattern   AttackPattern
	FireTimer float64
	FireRate  float64 // interval multiplier, shrinks as the fight escalates
	FireScale float64 // difficulty interval multiplier
	Bursts    int
}

// Interval returns the seconds until the next burst after one fires.
func (a *BossAttack) Interval() float64 {
	return a.Pattern.Interval * a.FireRate * a.FireScale
}

// Boss is the single active boss instance.
type Boss struct {
	Def             BossDefinition
	Health          float64
	MaxHealth       float64
	Phase           int
	TotalPhases     int
	EnrageThreshold float64
	Enraged         bool

	State      BossState
	Movement   MovementPattern
	Speed      float64
	Pos        Vec2
	Attack     BossAttack
	IntroTimer float64
	BattleTime float64
	MoveTimer  float64

	nameRevealed bool
}

// NewBoss instantiates def scaled by the difficulty modifiers.
func NewBoss(def BossDefinition, mods DifficultyModifiers) *Boss {
	healthScale := mods.BossHealth
	if !(healthScale > 0) {
		healthScale = 1
	}
	fireScale := mods.BossFireInterval
	if !(fireScale > 0) {
		fireScale = 1
	}
	total := def.TotalPhases
	if total < 1 {
		total = 1
	}
	maxHealth := def.MaxHealth * healthScale
	b := &Boss{
		Def:             def,
		Health:          maxHealth,
		MaxHealth:       maxHealth,
		Phase:           1,
		TotalPhases:     total,
		EnrageThreshold: def.EnrageThreshold,
		State:           BossIntro,
		Movement:        MoveDescend,
		Speed:           BossBaseSpeed,
		Pos:             Vec2{X: ScreenW * 0.5, Y: BossSpawnY},
		IntroTimer:      BossIntroSeconds,
	}
	if def.Stationary {
		b.Movement = MoveStationary
	}
	b.Attack = BossAttack{
		Pattern:   PatternFor(def.Stage, 1),
		FireRate:  1,
		FireScale: fireScale,
	}
	b.Attack.FireTimer = b.Attack.Interval()
	return b
}

// HealthFraction returns health as a fraction of max health.
func (b *Boss) HealthFraction() float64 {
	if b.MaxHealth <= 0 {
		return 0
	}
	return b.Health / b.MaxHealth
}

func (b *Boss) Defeated() bool { return b.State == BossDefeatedState }

// ApplyDamage subtracts amount from health, clamping at zero. Non-positive
// amounts and hits on a defeated boss are ignored.
func (b *Boss) ApplyDamage(amount float64) {
	if b.State == BossDefeatedState || !(amount > 0) {
		return
	}
	b.Health = math.Max(0, b.Health-amount)
}

func (b *Boss) battleY() float64 {
	if b.Def.Stationary {
		return BossBattleYStation
	}
	return BossBattleYMobile
}

// Update advances the boss by dt. It returns true on the tick the boss
// enters Defeated and false on every other call.
func (b *Boss) Update(dt, playerX float64, q *EventQueue) bool {
	if b.State == BossDefeatedState {
		return false
	}
	if b.Health <= 0 {
		b.State = BossDefeatedState
		log.Printf("[boss] %s defeated", b.Def.Name)
		return true
	}
	switch b.State {
	case BossIntro:
		b.updateIntro(dt, q)
	case BossBattle, BossPhaseTransition:
		b.State = BossBattle
		b.updateBattle(dt, playerX, q)
	}
	return false
}

func (b *Boss) updateIntro(dt float64, q *EventQueue) {
	b.IntroTimer -= dt
	b.Pos.Y = approach(b.Pos.Y, b.battleY(), BossDescendSpeed*dt)
	if b.IntroTimer < BossNameRevealAt && !b.nameRevealed {
		b.nameRevealed = true
		log.Printf("[boss] %s - %q", b.Def.Name, b.Def.Title)
		q.Emit(EventBossNameRevealed, BossNameRevealed{
			Name:  b.Def.Name,
			Title: b.Def.Title,
			Line:  b.Def.IntroLine,
		})
	}
	if b.IntroTimer <= 0 {
		b.State = BossBattle
		if b.Def.Stationary {
			b.Movement = MoveStationary
		} else {
			b.Movement = MoveSweep
		}
	}
}

func (b *Boss) updateBattle(dt, playerX float64, q *EventQueue) {
	b.BattleTime += dt
	frac := b.HealthFraction()

	if !b.Enraged && frac <= b.EnrageThreshold {
		b.Enraged = true
		b.Attack.FireRate *= EnrageFireRate
		if !b.Def.Stationary {
			b.Movement = MoveAggressive
			b.Speed *= EnrageSpeedScale
		}
		log.Printf("[boss] %s enraged at %.0f%% health", b.Def.Name, frac*100)
		q.Emit(EventBossEnraged, BossEnraged{HealthFraction: frac})
	}

	// At most one phase per tick; a hit crossing two thresholds is caught on
	// the following tick.
	next := b.Phase + 1
	if next <= b.TotalPhases && frac <= PhaseThreshold(next, b.TotalPhases) {
		b.State = BossPhaseTransition
		b.enterPhase(next, q)
		b.State = BossBattle
	}

	b.move(dt, playerX)

	b.Attack.FireTimer -= dt
	if b.Attack.FireTimer <= 0 {
		target := Vec2{X: playerX, Y: ScreenH - 60}
		shots := b.Attack.Pattern.Burst(b.Pos, target, b.Phase, b.Enraged, b.BattleTime)
		b.Attack.Bursts++
		b.Attack.FireTimer = b.Attack.Interval()
		q.Emit(EventProjectileBurst, ProjectileBurst{
			PatternID:   b.Attack.Pattern.ID,
			Projectiles: shots,
		})
	}
}

func (b *Boss) enterPhase(phase int, q *EventQueue) {
	b.Phase = phase
	b.Attack.Pattern = PatternFor(b.Def.Stage, phase)
	b.Attack.FireRate *= PhaseFireRateScale
	if phase >= 3 && !b.Def.Stationary {
		b.Movement = MoveAggressive
	}
	log.Printf("[boss] phase %d/%d: %s at %.0f%% health", phase, b.TotalPhases, b.Attack.Pattern.ID, b.HealthFraction()*100)
	q.Emit(EventBossPhaseChanged, BossPhaseChanged{Phase: phase, PatternID: b.Attack.Pattern.ID})
}

func (b *Boss) move(dt, playerX float64) {
	b.MoveTimer += dt
	center := ScreenW * 0.5
	switch b.Movement {
	case MoveSweep:
		b.Pos.X = center + math.Sin(b.MoveTimer*2*math.Pi/BossSweepPeriod)*BossSweepAmplitude
	case MoveStrafe:
		target := center + math.Sin(b.MoveTimer*0.5)*BossStrafeRange
		b.Pos.X = approach(b.Pos.X, target, b.Speed*dt)
	case MoveAggressive:
		b.Pos.X = approach(b.Pos.X, playerX, b.Speed*0.5*dt)
	}
	b.Pos.X = Clamp(b.Pos.X, 100, ScreenW-100)
}
