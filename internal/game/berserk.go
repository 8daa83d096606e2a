package game

// BerserkParams tunes the proximity burst mode.
type BerserkParams struct {
	PerKill    float64
	PerGraze   float64
	Duration   float64
	Decay      float64 // meter drain per second while inactive
	DamageMult float64
	SpeedMult  float64
	ScoreMult  float64
}

// BerserkState is the meter and the active window.
type BerserkState struct {
	Meter     float64
	Active    bool
	Remaining float64
}

// Berserk pairs tuning with state.
type Berserk struct {
	P BerserkParams
	S BerserkState
}

// Add fills the meter. The meter is frozen while active.
func (b *Berserk) Add(amount float64) {
	if b.S.Active || amount <= 0 {
		return
	}
	b.S.Meter = Clamp(b.S.Meter+amount, 0, BerserkMax)
}

// Activate starts the burst window when the meter is full.
// It is rejected while already active or below a full meter.
func (b *Berserk) Activate() bool {
	if b.S.Active || b.S.Meter < BerserkMax {
		return false
	}
	b.S.Active = true
	b.S.Meter = 0
	b.S.Remaining = b.P.Duration
	return true
}

// Tick advances the window or drains the meter. Returns true when an active
// window ended this tick.
func (b *Berserk) Tick(dt float64) bool {
	if dt <= 0 {
		return false
	}
	if b.S.Active {
		b.S.Remaining -= dt
		if b.S.Remaining <= 0 {
			b.S.Active = false
			b.S.Remaining = 0
			return true
		}
		return false
	}
	if b.S.Meter > 0 && b.S.Meter < BerserkMax {
		b.S.Meter = Clamp(b.S.Meter-b.P.Decay*dt, 0, BerserkMax)
	}
	return false
}

func (b *Berserk) DamageMultiplier() float64 {
	if b.S.Active {
		return b.P.DamageMult
	}
	return 1.0
}

func (b *Berserk) SpeedMultiplier() float64 {
	if b.S.Active {
		return b.P.SpeedMult
	}
	return 1.0
}

func (b *Berserk) ScoreMultiplier() float64 {
	if b.S.Active {
		return b.P.ScoreMult
	}
	return 1.0
}

// SanitizeBerserkParams clamps berserk tuning to safe defaults.
func SanitizeBerserkParams(p BerserkParams) BerserkParams {
	if !(p.PerKill >= 0) {
		p.PerKill = BerserkPerKill
	}
	if !(p.PerGraze >= 0) {
		p.PerGraze = BerserkPerGraze
	}
	if !(p.Duration > 0) {
		p.Duration = BerserkDuration
	}
	if !(p.Decay >= 0) {
		p.Decay = BerserkDecay
	}
	if !(p.DamageMult >= 1) {
		p.DamageMult = BerserkDamageMult
	}
	if !(p.SpeedMult >= 1) {
		p.SpeedMult = BerserkSpeedMult
	}
	if !(p.ScoreMult >= 1) {
		p.ScoreMult = BerserkScoreMult
	}
	return p
}

func DefaultBerserkParams() BerserkParams {
	return SanitizeBerserkParams(BerserkParams{
		PerKill:    BerserkPerKill,
		PerGraze:   BerserkPerGraze,
		Duration:   BerserkDuration,
		Decay:      BerserkDecay,
		DamageMult: BerserkDamageMult,
		SpeedMult:  BerserkSpeedMult,
		ScoreMult:  BerserkScoreMult,
	})
}
