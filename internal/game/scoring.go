package game

import "math"

// ScoringParams groups the tuning of the scoring modulation engine.
type ScoringParams struct {
	ComboTimeout float64
	Heat         HeatParams
	Berserk      BerserkParams
}

// SanitizeScoringParams clamps every section to safe defaults.
func SanitizeScoringParams(p ScoringParams) ScoringParams {
	if !(p.ComboTimeout > 0) {
		p.ComboTimeout = ComboTimeout
	}
	p.Heat = SanitizeHeatParams(p.Heat)
	p.Berserk = SanitizeBerserkParams(p.Berserk)
	return p
}

func DefaultScoringParams() ScoringParams {
	return SanitizeScoringParams(ScoringParams{
		ComboTimeout: ComboTimeout,
		Heat:         DefaultHeatParams(),
		Berserk:      DefaultBerserkParams(),
	})
}

// ScoringEngine turns kills, shots and grazes into score. It owns combo,
// weapon heat and berserk state and exposes the resulting multipliers.
type ScoringEngine struct {
	ComboTimeout float64
	Combo        ComboState
	Heat         HeatComponent
	Berserk      Berserk

	Score          int64
	TotalKills     int
	SoulsLiberated int

	// difficulty modifiers
	ScoreBase  float64
	ComboDecay float64

	tierName string
}

// NewScoringEngine builds an engine with sanitized params and neutral
// difficulty modifiers.
func NewScoringEngine(p ScoringParams) *ScoringEngine {
	s := &ScoringEngine{ScoreBase: 1, ComboDecay: 1}
	s.SetParams(p)
	return s
}

// SetParams swaps tuning without touching accumulated state.
func (s *ScoringEngine) SetParams(p ScoringParams) {
	p = SanitizeScoringParams(p)
	s.ComboTimeout = p.ComboTimeout
	s.Heat.P = p.Heat
	s.Berserk.P = p.Berserk
	s.Heat.reclassify()
}

// Params returns the current tuning.
func (s *ScoringEngine) Params() ScoringParams {
	return ScoringParams{ComboTimeout: s.ComboTimeout, Heat: s.Heat.P, Berserk: s.Berserk.P}
}

// OnKill registers a kill in the chain and returns the combo multiplier.
func (s *ScoringEngine) OnKill() float64 {
	s.TotalKills++
	s.Berserk.Add(s.Berserk.P.PerKill)
	return s.Combo.OnKill(s.ComboTimeout)
}

// OnFire adds weapon heat for one shot.
func (s *ScoringEngine) OnFire() {
	s.Heat.OnFire()
}

// OnNearMiss feeds the berserk meter from a graze.
func (s *ScoringEngine) OnNearMiss() {
	s.Berserk.Add(s.Berserk.P.PerGraze)
}

// ReduceHeat vents weapon heat.
func (s *ScoringEngine) ReduceHeat(amount float64) {
	s.Heat.Reduce(amount)
}

// ActivateBerserk consumes a full meter. Rejected activations return false
// and emit nothing.
func (s *ScoringEngine) ActivateBerserk(q *EventQueue) bool {
	if !s.Berserk.Activate() {
		return false
	}
	q.Emit(EventBerserkActivated, BerserkActivated{
		Duration:   s.Berserk.S.Remaining,
		DamageMult: s.Berserk.P.DamageMult,
		SpeedMult:  s.Berserk.P.SpeedMult,
	})
	return true
}

// Tick advances the combo window, heat decay and berserk timers.
func (s *ScoringEngine) Tick(dt float64, q *EventQueue) {
	if s.Combo.Tick(dt, s.ComboDecay) {
		s.tierName = ""
	}
	s.Heat.Tick(dt)
	if s.Berserk.Tick(dt) {
		q.Emit(EventBerserkEnded, BerserkEnded{})
	}
}

// HeatLevel returns the current derived heat band.
func (s *ScoringEngine) HeatLevel() HeatLevel {
	return s.Heat.S.Level
}

// FireRateMultiplier is applied by the host to the player's fire interval.
func (s *ScoringEngine) FireRateMultiplier() float64 {
	return s.Heat.S.Level.FireRateMultiplier()
}

// RewardMultiplier combines heat and berserk multipliers with the current
// combo multiplier.
func (s *ScoringEngine) RewardMultiplier() float64 {
	return ComboMultiplier(s.Combo.Count) * s.Heat.S.Level.ScoreMultiplier() * s.Berserk.ScoreMultiplier()
}

// AwardKill registers a kill and accumulates base × combo × heat × berserk,
// scaled by the difficulty score base. Returns the amount awarded.
func (s *ScoringEngine) AwardKill(base int64, q *EventQueue) int64 {
	combo := s.OnKill()
	mult := combo * s.Heat.S.Level.ScoreMultiplier() * s.Berserk.ScoreMultiplier()
	amount := int64(math.Round(float64(base) * mult * s.scoreBase()))
	if amount < 0 {
		amount = 0
	}
	s.Score += amount
	q.Emit(EventScoreDelta, ScoreDelta{Amount: amount, Multiplier: mult})
	if name := ComboTierName(s.Combo.Count); name != "" && name != s.tierName {
		s.tierName = name
		q.Emit(EventComboTierChanged, ComboTierChanged{TierName: name, Count: s.Combo.Count})
	}
	return amount
}

// AddSouls credits the secondary reward counter.
func (s *ScoringEngine) AddSouls(n int) {
	if n > 0 {
		s.SoulsLiberated += n
	}
}

func (s *ScoringEngine) scoreBase() float64 {
	if s.ScoreBase <= 0 {
		return 1
	}
	return s.ScoreBase
}

// StyleGrade ranks the current reward multiplier.
func (s *ScoringEngine) StyleGrade() string {
	return StyleGrade(s.RewardMultiplier())
}

// HeatPercent returns weapon heat as a 0..1 fraction of capacity.
func (s *ScoringEngine) HeatPercent() float64 {
	return s.Heat.Percent()
}

// ComboTimerPercent returns the remaining combo window as a 0..1 fraction.
func (s *ScoringEngine) ComboTimerPercent() float64 {
	return s.Combo.TimerPercent(s.ComboTimeout)
}

// ResetStage clears combo, heat and berserk between missions.
func (s *ScoringEngine) ResetStage() {
	best := s.Combo.Best()
	s.Combo = ComboState{Max: best}
	s.Heat.S = HeatState{}
	s.Berserk.S = BerserkState{}
	s.tierName = ""
}

// Reset clears everything except tuning and difficulty modifiers.
func (s *ScoringEngine) Reset() {
	s.Combo = ComboState{}
	s.Heat.S = HeatState{}
	s.Berserk.S = BerserkState{}
	s.Score = 0
	s.TotalKills = 0
	s.SoulsLiberated = 0
	s.tierName = ""
}

var styleGrades = []struct {
	Min   float64
	Grade string
}{
	{50, "SSS"},
	{20, "SS"},
	{10, "S"},
	{5, "A"},
	{3, "B"},
	{1.5, "C"},
}

// StyleGrade maps a multiplier onto the D..SSS ladder.
func StyleGrade(mult float64) string {
	for _, g := range styleGrades {
		if mult >= g.Min {
			return g.Grade
		}
	}
	return "D"
}
