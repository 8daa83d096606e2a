package game

// EventType names an output event emitted by the engine.
type EventType string

const (
	EventMissionStarted    EventType = "mission_started"
	EventWaveStarted       EventType = "wave_started"
	EventWaveSpawnRequest  EventType = "wave_spawn_request"
	EventWaveCleared       EventType = "wave_cleared"
	EventEnemyDestroyed    EventType = "enemy_destroyed"
	EventBossSpawnRequest  EventType = "boss_spawn_request"
	EventBossNameRevealed  EventType = "boss_name_revealed"
	EventBossPhaseChanged  EventType = "boss_phase_changed"
	EventBossEnraged       EventType = "boss_enraged"
	EventProjectileBurst   EventType = "projectile_burst"
	EventBossDefeated      EventType = "boss_defeated"
	EventMissionCompleted  EventType = "mission_completed"
	EventActCompleted      EventType = "act_completed"
	EventCampaignCompleted EventType = "campaign_completed"
	EventScoreDelta        EventType = "score_delta"
	EventComboTierChanged  EventType = "combo_tier_changed"
	EventBerserkActivated  EventType = "berserk_activated"
	EventBerserkEnded      EventType = "berserk_ended"
	EventShipUnlocked      EventType = "ship_unlocked"
)

// Event packages a typed payload for downstream collaborators.
type Event struct {
	Type    EventType   `json:"type"`
	Payload interface{} `json:"payload"`
}

type MissionStarted struct {
	Act          int    `json:"act"`
	MissionIndex int    `json:"missionIndex"`
	MissionID    string `json:"missionId"`
	Name         string `json:"name"`
	Waves        int    `json:"waves"`
}

type WaveStarted struct {
	Wave       int    `json:"wave"`
	EnemyCount int    `json:"enemyCount"`
	Pattern    string `json:"pattern"`
}

// WaveSpawnRequest asks the host to instantiate one enemy.
type WaveSpawnRequest struct {
	EntityID    EntityID `json:"entityId"`
	EnemyTypeID int      `json:"enemyTypeId"`
	Name        string   `json:"name"`
	Position    Vec2     `json:"position"`
	Behavior    string   `json:"behavior"`
	Wave        int      `json:"wave"`
}

type WaveCleared struct {
	WaveNumber int `json:"waveNumber"`
}

type EnemyDestroyed struct {
	EntityID    EntityID `json:"entityId"`
	EnemyTypeID int      `json:"enemyTypeId"`
	Position    Vec2     `json:"position"`
	Score       int64    `json:"score"`
}

type BossSpawnRequest struct {
	StageID   int     `json:"stageId"`
	Name      string  `json:"name"`
	Title     string  `json:"title"`
	ShipClass string  `json:"shipClass"`
	MaxHealth float64 `json:"maxHealth"`
	Phases    int     `json:"phases"`
}

type BossNameRevealed struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Line  string `json:"line"`
}

type BossPhaseChanged struct {
	Phase     int    `json:"phase"`
	PatternID string `json:"patternId"`
}

type BossEnraged struct {
	HealthFraction float64 `json:"healthFraction"`
}

type ProjectileBurst struct {
	PatternID   string            `json:"patternId"`
	Projectiles []ProjectileSpawn `json:"projectiles"`
}

type BossDefeated struct {
	Name            string `json:"name"`
	Score           int64  `json:"score"`
	SecondaryReward int    `json:"secondaryReward"`
	Line            string `json:"line"`
}

type MissionCompleted struct {
	MissionID     string  `json:"missionId"`
	Stage         int     `json:"stage"`
	Souls         int     `json:"souls"`
	BonusComplete bool    `json:"bonusComplete"`
	Elapsed       float64 `json:"elapsed"`
}

type ActCompleted struct {
	ActID int    `json:"actId"`
	Name  string `json:"name"`
}

type CampaignCompleted struct {
	Score int64 `json:"score"`
	Souls int   `json:"souls"`
}

type ScoreDelta struct {
	Amount     int64   `json:"amount"`
	Multiplier float64 `json:"multiplier"`
}

type ComboTierChanged struct {
	TierName string `json:"tierName"`
	Count    int    `json:"count"`
}

type BerserkActivated struct {
	Duration   float64 `json:"duration"`
	DamageMult float64 `json:"damageMult"`
	SpeedMult  float64 `json:"speedMult"`
}

type BerserkEnded struct{}

type ShipUnlocked struct {
	Ship string `json:"ship"`
	Act  int    `json:"act"`
}

// EventQueue collects events in emission order. A nil queue discards.
type EventQueue struct {
	events []Event
}

func (q *EventQueue) Emit(t EventType, payload interface{}) {
	if q == nil {
		return
	}
	q.events = append(q.events, Event{Type: t, Payload: payload})
}

// Drain returns the queued events and empties the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.events)
}
