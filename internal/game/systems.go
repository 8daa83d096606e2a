package game

import (
	"log"
	"math"
)

func applyInputs(e *Engine, inputs []Input) {
	for _, in := range inputs {
		switch v := in.(type) {
		case PlayerPositionInput:
			e.PlayerX = Clamp(v.X, 0, ScreenW)
		case FireInput:
			if e.Campaign.InMission {
				e.Scoring.OnFire()
			}
		case DamageInput:
			applyDamage(e, v)
		case KillInput:
			applyKill(e, v)
		case NearMissInput:
			if e.Campaign.InMission {
				e.Scoring.OnNearMiss()
			}
		case PlayerHitInput:
			if e.Campaign.InMission {
				e.Campaign.NoDamageTaken = false
			}
		case BerserkInput:
			if e.Campaign.InMission {
				e.Scoring.ActivateBerserk(&e.queue)
			}
		case ReduceHeatInput:
			if e.Campaign.InMission {
				e.Scoring.ReduceHeat(v.Amount)
			}
		case EscapedInput:
			if e.World.Enemy(v.ID) != nil {
				e.World.RemoveEntity(v.ID)
				e.Campaign.EnemiesEscaped++
			}
		case WaveClearedInput:
			onWaveCleared(e, v.Wave)
		}
	}
}

func applyDamage(e *Engine, in DamageInput) {
	if !(in.Amount > 0) {
		return
	}
	amount := in.Amount * e.Scoring.Berserk.DamageMultiplier()
	switch in.Target {
	case ClassBoss:
		if e.Boss != nil {
			e.Boss.ApplyDamage(amount)
		}
	default:
		enemy := e.World.Enemy(in.ID)
		if enemy == nil {
			return
		}
		enemy.Health = math.Max(0, enemy.Health-amount)
		if enemy.Health <= 0 {
			destroyEnemy(e, in.ID, 0)
		}
	}
}

func applyKill(e *Engine, in KillInput) {
	switch in.Class {
	case ClassBoss:
		if e.Boss != nil {
			e.Boss.ApplyDamage(e.Boss.Health)
		}
	default:
		if tr := e.World.Transform(in.ID); tr != nil && in.Position != (Vec2{}) {
			tr.Pos = in.Position
		}
		destroyEnemy(e, in.ID, in.BaseScore)
	}
}

// destroyEnemy awards and forgets a tracked enemy. Unknown ids are stale
// reports and are ignored.
func destroyEnemy(e *Engine, id EntityID, base int64) {
	enemy := e.World.Enemy(id)
	if enemy == nil {
		return
	}
	if base <= 0 {
		base = enemy.Score
	}
	var pos Vec2
	if tr := e.World.Transform(id); tr != nil {
		pos = tr.Pos
	}
	awarded := e.Scoring.AwardKill(base, &e.queue)
	e.World.RemoveEntity(id)
	e.Campaign.EnemiesDestroyed++
	e.queue.Emit(EventEnemyDestroyed, EnemyDestroyed{
		EntityID:    id,
		EnemyTypeID: enemy.TypeID,
		Position:    pos,
		Score:       awarded,
	})
	if e.Scoring.Combo.Count > e.missionBestCombo {
		e.missionBestCombo = e.Scoring.Combo.Count
	}
}

func onWaveCleared(e *Engine, wave int) {
	if !e.Campaign.OnWaveCleared(wave) {
		return
	}
	// Stragglers of an externally cleared wave were never destroyed.
	var stale []EntityID
	e.World.ForEach([]ComponentKey{CompEnemy}, func(id EntityID) {
		if en := e.World.Enemy(id); en != nil && en.Wave == wave {
			stale = append(stale, id)
		}
	})
	for _, id := range stale {
		e.World.RemoveEntity(id)
		e.Campaign.EnemiesEscaped++
	}
	log.Printf("[mission] wave %d cleared", wave)
	e.queue.Emit(EventWaveCleared, WaveCleared{WaveNumber: wave})
}

func updateScoring(e *Engine, dt float64) {
	e.Scoring.Tick(dt, &e.queue)
}

func updateWaves(e *Engine, dt float64) {
	c := e.Campaign
	if !c.InMission || c.IsBossWave() {
		return
	}
	if cleared := e.Spawner.Tick(dt, c.Stage(), c.Wave, e.World, &e.queue); cleared > 0 {
		onWaveCleared(e, cleared)
	}
	c.EnemiesSpawned = e.Spawner.TotalIssued
}

func updateMission(e *Engine, dt float64) {
	c := e.Campaign
	c.AdvanceTick(dt)
	if !c.BossDue() || (e.Boss != nil && !e.Boss.Defeated()) {
		return
	}
	def := BossForStage(c.Stage())
	e.Boss = NewBoss(def, e.Mods)
	c.MarkBossSpawned()
	log.Printf("[mission] boss spawn stage %d: %s", def.Stage, def.Name)
	e.queue.Emit(EventBossSpawnRequest, BossSpawnRequest{
		StageID:   def.Stage,
		Name:      def.Name,
		Title:     def.Title,
		ShipClass: def.ShipClass,
		MaxHealth: e.Boss.MaxHealth,
		Phases:    e.Boss.TotalPhases,
	})
}

func updateBoss(e *Engine, dt float64) {
	b := e.Boss
	if b == nil {
		return
	}
	if !b.Update(dt, e.PlayerX, &e.queue) {
		if b.State == BossBattle {
			e.Campaign.MarkBossBattle()
		}
		return
	}
	resolveBossDefeat(e, b)
}

func resolveBossDefeat(e *Engine, b *Boss) {
	c := e.Campaign
	def := b.Def
	awarded := e.Scoring.AwardKill(def.Score, &e.queue)
	if e.Scoring.Combo.Count > e.missionBestCombo {
		e.missionBestCombo = e.Scoring.Combo.Count
	}
	e.Scoring.AddSouls(def.SecondaryReward)
	e.queue.Emit(EventBossDefeated, BossDefeated{
		Name:            def.Name,
		Score:           awarded,
		SecondaryReward: def.SecondaryReward,
		Line:            def.DefeatLine,
	})
	c.OnBossDefeated(def.SecondaryReward)

	m := c.Mission()
	if ev := m.Bonus.Evaluator(); ev != nil {
		c.BonusComplete, _ = ev.Evaluate(c.ObjectiveContext(e.missionBestCombo))
	}
	log.Printf("[mission] %s complete in %.1fs, souls %d, bonus %v", m.ID, c.MissionTimer, c.MissionSouls, c.BonusComplete)
	e.queue.Emit(EventMissionCompleted, MissionCompleted{
		MissionID:     m.ID,
		Stage:         def.Stage,
		Souls:         c.MissionSouls,
		BonusComplete: c.BonusComplete,
		Elapsed:       c.MissionTimer,
	})
}
