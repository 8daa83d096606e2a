package game

import (
	"fmt"
	"log"
)

// CampaignStatus is the coarse state of the campaign state machine.
type CampaignStatus int

const (
	StatusNotStarted CampaignStatus = iota
	StatusInMission
	StatusBossIntro
	StatusBossBattle
	StatusMissionComplete
	StatusCampaignComplete
)

func (s CampaignStatus) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusInMission:
		return "in_mission"
	case StatusBossIntro:
		return "boss_intro"
	case StatusBossBattle:
		return "boss_battle"
	case StatusMissionComplete:
		return "mission_complete"
	case StatusCampaignComplete:
		return "campaign_complete"
	default:
		return "unknown"
	}
}

// MissionAdvance reports what CompleteMission moved the pointer to.
type MissionAdvance int

const (
	AdvanceMission          MissionAdvance = iota // next mission in the same act
	AdvanceAct                                    // first mission of the next act
	AdvanceCampaignComplete                       // nothing left to play
)

// CampaignState owns the act/mission/wave pointer and the per-mission flags.
type CampaignState struct {
	Act          Act
	MissionIndex int
	Wave         int
	InMission    bool
	Status       CampaignStatus

	BossSpawned     bool
	BossDefeated    bool
	MissionTimer    float64
	MissionSouls    int
	PrimaryComplete bool
	BonusComplete   bool

	NoDamageTaken    bool
	EnemiesSpawned   int
	EnemiesEscaped   int
	EnemiesDestroyed int
}

func NewCampaignState() *CampaignState {
	return &CampaignState{Act: Act1}
}

// Mission returns the definition the pointer currently refers to.
func (c *CampaignState) Mission() MissionDefinition {
	return MissionAt(c.Act, c.MissionIndex)
}

// Stage is the boss stage of the current mission. It also indexes the wave
// bracket tables.
func (c *CampaignState) Stage() int {
	return c.Mission().BossStage
}

// StartMission resets the per-mission state for the mission under the pointer.
func (c *CampaignState) StartMission() {
	c.Wave = 1
	c.InMission = true
	c.Status = StatusInMission
	c.BossSpawned = false
	c.BossDefeated = false
	c.MissionTimer = 0
	c.MissionSouls = 0
	c.PrimaryComplete = false
	c.BonusComplete = false
	c.NoDamageTaken = true
	c.EnemiesSpawned = 0
	c.EnemiesEscaped = 0
	c.EnemiesDestroyed = 0
}

// AdvanceTick accumulates mission time while a mission is running.
func (c *CampaignState) AdvanceTick(dt float64) {
	if c.InMission && dt > 0 {
		c.MissionTimer += dt
	}
}

// OnWaveCleared moves to the next wave. Reports for any wave other than the
// current one, or after the last enemy wave, are ignored.
func (c *CampaignState) OnWaveCleared(wave int) bool {
	if !c.InMission || wave != c.Wave || c.Wave > c.Mission().EnemyWaves {
		return false
	}
	c.Wave++
	return true
}

// IsBossWave reports whether every enemy wave has been cleared.
func (c *CampaignState) IsBossWave() bool {
	return c.Wave > c.Mission().EnemyWaves
}

// BossDue reports whether the boss should be spawned now.
func (c *CampaignState) BossDue() bool {
	return c.InMission && c.IsBossWave() && !c.BossSpawned && !c.BossDefeated
}

func (c *CampaignState) MarkBossSpawned() {
	c.BossSpawned = true
	c.Status = StatusBossIntro
}

func (c *CampaignState) MarkBossBattle() {
	if c.Status == StatusBossIntro {
		c.Status = StatusBossBattle
	}
}

// OnBossDefeated records the win and its secondary reward once.
func (c *CampaignState) OnBossDefeated(secondaryReward int) {
	if c.BossDefeated {
		return
	}
	c.BossDefeated = true
	c.PrimaryComplete = true
	if secondaryReward > 0 {
		c.MissionSouls += secondaryReward
	}
	c.Status = StatusMissionComplete
}

// CompleteMission closes the current mission and moves the pointer. The
// act-advance and campaign-complete branches are one decision on the same
// index, so at most one of them applies.
func (c *CampaignState) CompleteMission() (MissionAdvance, Act) {
	c.InMission = false
	c.PrimaryComplete = true
	finished := c.Act
	count := len(MissionRegistry[c.Act])
	next, hasNext := c.Act.Next()
	switch {
	case c.Status == StatusCampaignComplete:
		return AdvanceCampaignComplete, finished
	case c.MissionIndex+1 < count:
		c.MissionIndex++
		c.Status = StatusNotStarted
		return AdvanceMission, finished
	case hasNext:
		c.Act = next
		c.MissionIndex = 0
		c.Status = StatusNotStarted
		log.Printf("[campaign] act %d complete, entering act %d %q", finished, next, next.Name())
		return AdvanceAct, finished
	default:
		c.Status = StatusCampaignComplete
		log.Printf("[campaign] campaign complete")
		return AdvanceCampaignComplete, finished
	}
}

// Abort drops back to NotStarted from any state, keeping the pointer so the
// same mission can be retried.
func (c *CampaignState) Abort() {
	c.InMission = false
	c.Status = StatusNotStarted
	c.Wave = 0
	c.BossSpawned = false
	c.BossDefeated = false
	c.PrimaryComplete = false
	c.BonusComplete = false
	c.MissionTimer = 0
	c.MissionSouls = 0
}

// Reset returns to the first mission of the first act.
func (c *CampaignState) Reset() {
	c.Abort()
	c.Act = Act1
	c.MissionIndex = 0
}

// SelectMission points the campaign at (act, index). It is rejected while a
// mission is running.
func (c *CampaignState) SelectMission(act Act, index int) error {
	if c.InMission {
		return fmt.Errorf("cannot select mission while %s is running", c.Mission().ID)
	}
	if _, err := GetMission(act, index); err != nil {
		return err
	}
	c.Act = act
	c.MissionIndex = index
	c.Status = StatusNotStarted
	return nil
}

// MissionNumber returns the 1-based position of the current mission across
// the whole campaign.
func (c *CampaignState) MissionNumber() int {
	return MissionNumber(c.Act, c.MissionIndex)
}

func (c *CampaignState) CurrentMissionName() string {
	m, err := GetMission(c.Act, c.MissionIndex)
	if err != nil {
		return "Unknown Mission"
	}
	return m.Name
}

// ObjectiveContext snapshots the mission for bonus evaluation.
func (c *CampaignState) ObjectiveContext(maxCombo int) ObjectiveContext {
	return ObjectiveContext{
		Souls:            c.MissionSouls,
		Elapsed:          c.MissionTimer,
		NoDamageTaken:    c.NoDamageTaken,
		EnemiesEscaped:   c.EnemiesEscaped,
		EnemiesSpawned:   c.EnemiesSpawned,
		EnemiesDestroyed: c.EnemiesDestroyed,
		MaxCombo:         maxCombo,
	}
}
