package game

// HeatLevel is the derived weapon heat band.
type HeatLevel int

const (
	HeatCool HeatLevel = iota
	HeatWarm
	HeatHot
	HeatOverheated
)

func (l HeatLevel) String() string {
	switch l {
	case HeatWarm:
		return "warm"
	case HeatHot:
		return "hot"
	case HeatOverheated:
		return "overheated"
	default:
		return "cool"
	}
}

// ScoreMultiplier rewards firing while hot.
func (l HeatLevel) ScoreMultiplier() float64 {
	switch l {
	case HeatWarm:
		return 1.25
	case HeatHot:
		return 1.5
	case HeatOverheated:
		return 2.0
	default:
		return 1.0
	}
}

// FireRateMultiplier slows firing when overheated. Firing is never blocked.
func (l HeatLevel) FireRateMultiplier() float64 {
	if l == HeatOverheated {
		return OverheatFireRate
	}
	return 1.0
}

// HeatParams defines weapon heat tuning. The capacity is fixed at HeatMax.
type HeatParams struct {
	PerShot   float64 // heat added per shot (e.g., 2.0)
	Decay     float64 // heat removed per second (e.g., 72)
	WarmAt    float64 // lower bound of the warm band
	HotAt     float64 // lower bound of the hot band
	ReleaseAt float64 // overheated persists while heat stays above this
}

// HeatState is the raw heat value plus the previous classification, which
// carries the overheated hysteresis between ticks.
type HeatState struct {
	Value float64
	Level HeatLevel
}

// HeatComponent pairs heat tuning with its state.
type HeatComponent struct {
	P HeatParams
	S HeatState
}

// ClassifyHeat derives the heat level. Once overheated, the level sticks
// until heat falls to ReleaseAt or below.
func (p HeatParams) ClassifyHeat(heat float64, wasOverheated bool) HeatLevel {
	switch {
	case heat >= HeatMax, wasOverheated && heat > p.ReleaseAt:
		return HeatOverheated
	case heat >= p.HotAt:
		return HeatHot
	case heat >= p.WarmAt:
		return HeatWarm
	default:
		return HeatCool
	}
}

// ClassifyHeat uses the default bands.
func ClassifyHeat(heat float64, wasOverheated bool) HeatLevel {
	return DefaultHeatParams().ClassifyHeat(heat, wasOverheated)
}

func (h *HeatComponent) reclassify() {
	h.S.Level = h.P.ClassifyHeat(h.S.Value, h.S.Level == HeatOverheated)
}

// OnFire adds the per-shot cost, clamped to HeatMax.
func (h *HeatComponent) OnFire() {
	h.S.Value = Clamp(h.S.Value+h.P.PerShot, 0, HeatMax)
	h.reclassify()
}

// Tick decays heat toward zero.
func (h *HeatComponent) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	h.S.Value = Clamp(h.S.Value-h.P.Decay*dt, 0, HeatMax)
	h.reclassify()
}

// Reduce removes heat immediately, e.g. from a coolant pickup.
func (h *HeatComponent) Reduce(amount float64) {
	if amount <= 0 {
		return
	}
	h.S.Value = Clamp(h.S.Value-amount, 0, HeatMax)
	h.reclassify()
}

// Percent returns heat as a 0..1 fraction of capacity.
func (h *HeatComponent) Percent() float64 {
	return h.S.Value / HeatMax
}

// SanitizeHeatParams clamps and normalizes heat parameters to safe defaults.
func SanitizeHeatParams(p HeatParams) HeatParams {
	if !(p.PerShot > 0) {
		p.PerShot = HeatPerShot
	}
	if !(p.Decay > 0) {
		p.Decay = HeatDecay
	}
	if !(p.WarmAt > 0 && p.WarmAt < HeatMax) {
		p.WarmAt = HeatWarmAt
	}
	if !(p.HotAt >= p.WarmAt && p.HotAt < HeatMax) {
		p.HotAt = HeatHotAt
		if p.HotAt < p.WarmAt {
			p.HotAt = p.WarmAt
		}
	}
	if !(p.ReleaseAt > 0 && p.ReleaseAt < HeatMax) {
		p.ReleaseAt = HeatReleaseAt
	}
	return p
}

// DefaultHeatParams returns the stock weapon heat tuning.
func DefaultHeatParams() HeatParams {
	return SanitizeHeatParams(HeatParams{
		PerShot:   HeatPerShot,
		Decay:     HeatDecay,
		WarmAt:    HeatWarmAt,
		HotAt:     HeatHotAt,
		ReleaseAt: HeatReleaseAt,
	})
}
