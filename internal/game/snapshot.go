package game

// BossSnapshot is the host-facing view of the active boss.
type BossSnapshot struct {
	Stage          int     `json:"stage"`
	Name           string  `json:"name"`
	Title          string  `json:"title"`
	ShipClass      string  `json:"shipClass"`
	Health         float64 `json:"health"`
	MaxHealth      float64 `json:"maxHealth"`
	HealthFraction float64 `json:"healthFraction"`
	Phase          int     `json:"phase"`
	TotalPhases    int     `json:"totalPhases"`
	State          string  `json:"state"`
	Movement       string  `json:"movement"`
	Pattern        string  `json:"pattern"`
	Enraged        bool    `json:"enraged"`
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
}

// Snapshot is the host-facing view of the whole engine.
type Snapshot struct {
	Act            int     `json:"act"`
	ActName        string  `json:"actName"`
	MissionIndex   int     `json:"missionIndex"`
	MissionNumber  int     `json:"missionNumber"`
	MissionID      string  `json:"missionId"`
	MissionName    string  `json:"missionName"`
	Status         string  `json:"status"`
	Wave           int     `json:"wave"`
	Waves          int     `json:"waves"`
	MissionTime    float64 `json:"missionTime"`
	MissionSouls   int     `json:"missionSouls"`
	BonusObjective string  `json:"bonusObjective"`
	BonusComplete  bool    `json:"bonusComplete"`
	NoDamageTaken  bool    `json:"noDamageTaken"`
	Enemies        int     `json:"enemies"`

	Score            int64   `json:"score"`
	TotalKills       int     `json:"totalKills"`
	SoulsLiberated   int     `json:"soulsLiberated"`
	Combo            int     `json:"combo"`
	MaxCombo         int     `json:"maxCombo"`
	ComboTier        string  `json:"comboTier"`
	ComboTimer       float64 `json:"comboTimer"`
	Multiplier       float64 `json:"multiplier"`
	StyleGrade       string  `json:"styleGrade"`
	Heat             float64 `json:"heat"`
	HeatPercent      float64 `json:"heatPercent"`
	HeatLevel        string  `json:"heatLevel"`
	FireRate         float64 `json:"fireRate"`
	BerserkMeter     float64 `json:"berserkMeter"`
	BerserkActive    bool    `json:"berserkActive"`
	BerserkRemaining float64 `json:"berserkRemaining"`
	BerserkSpeed     float64 `json:"berserkSpeed"` // player speed multiplier

	Difficulty string        `json:"difficulty"`
	Now        float64       `json:"now"`
	Boss       *BossSnapshot `json:"boss,omitempty"`
}

// Snapshot captures the engine state for UI and persistence collaborators.
func (e *Engine) Snapshot() Snapshot {
	c := e.Campaign
	m := c.Mission()
	s := e.Scoring
	snap := Snapshot{
		Act:            int(c.Act),
		ActName:        c.Act.Name(),
		MissionIndex:   c.MissionIndex,
		MissionNumber:  c.MissionNumber(),
		MissionID:      m.ID,
		MissionName:    c.CurrentMissionName(),
		Status:         c.Status.String(),
		Wave:           c.Wave,
		Waves:          m.EnemyWaves,
		MissionTime:    c.MissionTimer,
		MissionSouls:   c.MissionSouls,
		BonusObjective: m.BonusObjective,
		BonusComplete:  c.BonusComplete,
		NoDamageTaken:  c.NoDamageTaken,
		Enemies:        e.World.EnemyCount(),

		Score:            s.Score,
		TotalKills:       s.TotalKills,
		SoulsLiberated:   s.SoulsLiberated,
		Combo:            s.Combo.Count,
		MaxCombo:         s.Combo.Best(),
		ComboTier:        ComboTierName(s.Combo.Count),
		ComboTimer:       s.ComboTimerPercent(),
		Multiplier:       s.RewardMultiplier(),
		StyleGrade:       s.StyleGrade(),
		Heat:             s.Heat.S.Value,
		HeatPercent:      s.HeatPercent(),
		HeatLevel:        s.HeatLevel().String(),
		FireRate:         s.FireRateMultiplier(),
		BerserkMeter:     s.Berserk.S.Meter,
		BerserkActive:    s.Berserk.S.Active,
		BerserkRemaining: s.Berserk.S.Remaining,
		BerserkSpeed:     s.Berserk.SpeedMultiplier(),

		Difficulty: e.Difficulty.String(),
		Now:        e.Now,
	}
	if b := e.Boss; b != nil {
		snap.Boss = &BossSnapshot{
			Stage:          b.Def.Stage,
			Name:           b.Def.Name,
			Title:          b.Def.Title,
			ShipClass:      b.Def.ShipClass,
			Health:         b.Health,
			MaxHealth:      b.MaxHealth,
			HealthFraction: b.HealthFraction(),
			Phase:          b.Phase,
			TotalPhases:    b.TotalPhases,
			State:          b.State.String(),
			Movement:       b.Movement.String(),
			Pattern:        b.Attack.Pattern.ID,
			Enraged:        b.Enraged,
			X:              b.Pos.X,
			Y:              b.Pos.Y,
		}
	}
	return snap
}
