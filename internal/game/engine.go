package game

import (
	"fmt"
	"log"
)

// EngineConfig configures a new Engine.
type EngineConfig struct {
	Difficulty Difficulty
	Scoring    ScoringParams
	Seed       int64
}

// Engine owns every piece of encounter state and advances it one tick at a
// time. It is not safe for concurrent use; Session serializes access.
type Engine struct {
	Campaign   *CampaignState
	Scoring    *ScoringEngine
	Spawner    *WaveSpawner
	Boss       *Boss
	World      *World
	Difficulty Difficulty
	Mods       DifficultyModifiers

	PlayerX float64
	Now     float64

	missionBestCombo int
	queue            EventQueue
}

func NewEngine(cfg EngineConfig) *Engine {
	mods := cfg.Difficulty.Modifiers()
	scoring := NewScoringEngine(cfg.Scoring)
	scoring.ScoreBase = mods.ScoreBase
	scoring.ComboDecay = mods.ComboDecay
	return &Engine{
		Campaign:   NewCampaignState(),
		Scoring:    scoring,
		Spawner:    NewWaveSpawner(cfg.Seed, mods.SpawnRate),
		World:      NewWorld(),
		Difficulty: cfg.Difficulty,
		Mods:       mods,
		PlayerX:    ScreenW * 0.5,
	}
}

// SetScoringParams swaps scoring tuning, typically after a config reload.
func (e *Engine) SetScoringParams(p ScoringParams) {
	e.Scoring.SetParams(p)
}

// StartMission begins the mission under the campaign pointer.
func (e *Engine) StartMission() []Event {
	e.Campaign.StartMission()
	e.Scoring.ResetStage()
	e.Spawner.Reset()
	e.World.Clear()
	e.Boss = nil
	e.missionBestCombo = 0

	m := e.Campaign.Mission()
	log.Printf("[mission] start act %d mission %d %s (%d waves)", e.Campaign.Act, e.Campaign.MissionIndex+1, m.ID, m.EnemyWaves)
	e.queue.Emit(EventMissionStarted, MissionStarted{
		Act:          int(e.Campaign.Act),
		MissionIndex: e.Campaign.MissionIndex,
		MissionID:    m.ID,
		Name:         m.Name,
		Waves:        m.EnemyWaves,
	})
	return e.queue.Drain()
}

// StartMissionByID points the campaign at the mission with id and starts it.
func (e *Engine) StartMissionByID(id string) ([]Event, error) {
	act, index, err := FindMission(id)
	if err != nil {
		return nil, err
	}
	if err := e.Campaign.SelectMission(act, index); err != nil {
		return nil, err
	}
	return e.StartMission(), nil
}

// Step advances the simulation by dt after applying inputs in arrival order
// and returns the events emitted during the tick.
func (e *Engine) Step(dt float64, inputs []Input) []Event {
	if dt < 0 {
		dt = 0
	}
	e.Now += dt
	applyInputs(e, inputs)
	updateScoring(e, dt)
	updateWaves(e, dt)
	updateMission(e, dt)
	updateBoss(e, dt)
	return e.queue.Drain()
}

// CompleteMission advances the campaign pointer once the boss is down.
// Hosts call it after persisting the mission result.
func (e *Engine) CompleteMission() ([]Event, error) {
	if !e.Campaign.InMission || !e.Campaign.BossDefeated {
		return nil, fmt.Errorf("mission %s not complete", e.Campaign.Mission().ID)
	}
	advance, finished := e.Campaign.CompleteMission()
	e.Boss = nil
	e.World.Clear()
	e.Spawner.Reset()
	switch advance {
	case AdvanceAct:
		e.queue.Emit(EventActCompleted, ActCompleted{ActID: int(finished), Name: finished.Name()})
	case AdvanceCampaignComplete:
		e.queue.Emit(EventActCompleted, ActCompleted{ActID: int(finished), Name: finished.Name()})
		e.queue.Emit(EventCampaignCompleted, CampaignCompleted{
			Score: e.Scoring.Score,
			Souls: e.Scoring.SoulsLiberated,
		})
	}
	return e.queue.Drain(), nil
}

// Abort drops the running mission from any state. The boss and every tracked
// enemy are forgotten; despawning them is the host's job.
func (e *Engine) Abort() {
	if e.Campaign.InMission {
		log.Printf("[mission] abort %s at wave %d", e.Campaign.Mission().ID, e.Campaign.Wave)
	}
	e.Campaign.Abort()
	e.Scoring.Reset()
	e.Spawner.Reset()
	e.World.Clear()
	e.Boss = nil
	e.missionBestCombo = 0
	e.queue.Drain()
}

// SelectMission points the campaign at (act, index) without starting it.
func (e *Engine) SelectMission(act Act, index int) error {
	return e.Campaign.SelectMission(act, index)
}

// MissionBestCombo returns the longest chain reached in the current mission.
func (e *Engine) MissionBestCombo() int {
	return e.missionBestCombo
}
