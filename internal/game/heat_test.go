package game

import (
	"math"
	"testing"
)

func TestClassifyHeatBands(t *testing.T) {
	cases := []struct {
		heat float64
		was  bool
		want HeatLevel
	}{
		{0, false, HeatCool},
		{49.9, false, HeatCool},
		{50, false, HeatWarm},
		{74.9, false, HeatWarm},
		{75, false, HeatHot},
		{99.9, false, HeatHot},
		{100, false, HeatOverheated},
		{80, true, HeatOverheated},
		{50.1, true, HeatOverheated},
		{50, true, HeatWarm},
		{45, true, HeatCool},
	}
	for _, tc := range cases {
		if got := ClassifyHeat(tc.heat, tc.was); got != tc.want {
			t.Errorf("heat %.1f (was overheated %v): expected %s, got %s", tc.heat, tc.was, tc.want, got)
		}
	}
}

// Overheat should hold through the hot band until heat drops to the release
// point, then fall straight through to whatever band the value is in.
func TestHeatHysteresisWhileCooling(t *testing.T) {
	h := HeatComponent{P: DefaultHeatParams()}
	for i := 0; i < 60; i++ {
		h.OnFire()
	}
	if h.S.Value != HeatMax {
		t.Fatalf("expected heat clamped at %.0f, got %.2f", HeatMax, h.S.Value)
	}
	if h.S.Level != HeatOverheated {
		t.Fatalf("expected overheated at max heat, got %s", h.S.Level)
	}

	h.Reduce(20)
	if h.S.Level != HeatOverheated {
		t.Fatalf("expected overheated to stick at heat 80, got %s", h.S.Level)
	}
	h.Reduce(35)
	if h.S.Level != HeatCool {
		t.Fatalf("expected cool at heat 45, got %s", h.S.Level)
	}

	// Without the sticky flag the same value in the hot band is just hot.
	h.S = HeatState{Value: 80}
	h.reclassify()
	if h.S.Level != HeatHot {
		t.Fatalf("expected hot at 80 without prior overheat, got %s", h.S.Level)
	}
}

func TestHeatDecayClampsAtZero(t *testing.T) {
	h := HeatComponent{P: DefaultHeatParams()}
	h.OnFire()
	h.OnFire()
	for i := 0; i < 10; i++ {
		h.Tick(0.05)
	}
	if h.S.Value != 0 {
		t.Fatalf("expected heat to decay to zero, got %.3f", h.S.Value)
	}
	h.Tick(-1)
	if h.S.Value != 0 {
		t.Fatalf("expected negative dt to be ignored, got %.3f", h.S.Value)
	}
}

func TestHeatMultipliers(t *testing.T) {
	if got := HeatOverheated.FireRateMultiplier(); math.Abs(got-OverheatFireRate) > 1e-9 {
		t.Fatalf("expected overheated fire rate %.2f, got %.2f", OverheatFireRate, got)
	}
	if got := HeatHot.FireRateMultiplier(); got != 1 {
		t.Fatalf("expected hot fire rate 1, got %.2f", got)
	}
	want := map[HeatLevel]float64{HeatCool: 1, HeatWarm: 1.25, HeatHot: 1.5, HeatOverheated: 2}
	for level, mult := range want {
		if got := level.ScoreMultiplier(); got != mult {
			t.Errorf("%s: expected score multiplier %.2f, got %.2f", level, mult, got)
		}
	}
}

func TestSanitizeHeatParams(t *testing.T) {
	p := SanitizeHeatParams(HeatParams{PerShot: -1, Decay: math.NaN(), WarmAt: 200, HotAt: 10, ReleaseAt: 0})
	def := DefaultHeatParams()
	if p != def {
		t.Fatalf("expected defaults %+v, got %+v", def, p)
	}
}
