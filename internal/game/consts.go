package game

const (
	SimHz        = 20.0 // server tick rate
	Dt           = 1.0 / SimHz
	UpdateRateHz = 10.0 // per-client WS state pushes
	ScreenW      = 800.0
	ScreenH      = 700.0
	CarrierX     = ScreenW * 0.5
	CarrierY     = 60.0
	WaveDelay    = 3.0 // seconds between a cleared wave and the next one

	ComboTimeout  = 2.0
	HeatMax       = 100.0
	HeatPerShot   = 2.0
	HeatDecay     = 72.0 // per second
	HeatWarmAt    = 50.0
	HeatHotAt     = 75.0
	HeatReleaseAt = 50.0 // overheated sticks until heat drops to this

	BerserkMax         = 100.0
	BerserkPerKill     = 5.0
	BerserkPerGraze    = 1.0
	BerserkDuration    = 10.0
	BerserkDecay       = 2.0 // per second while inactive
	BerserkDamageMult  = 2.0
	BerserkSpeedMult   = 1.5
	BerserkScoreMult   = 2.0
	OverheatFireRate   = 0.7
	DefaultEnrageAt    = 0.2
	BossIntroSeconds   = 3.0
	BossNameRevealAt   = 1.0 // intro seconds remaining when the name is shown
	BossDescendSpeed   = 100.0
	BossSpawnY         = -80.0
	BossBattleYStation = 200.0
	BossBattleYMobile  = 150.0
	BossBaseSpeed      = 80.0
	BossSweepAmplitude = 150.0
	BossSweepPeriod    = 4.0
	BossStrafeRange    = 200.0
	PhaseFireRateScale = 0.85
	EnrageFireRate     = 0.6
	EnrageSpeedScale   = 1.5
	ProjectileMuzzle   = 40.0
)
