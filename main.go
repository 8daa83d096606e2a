package main

import (
	"flag"
	"math"

	"EncounterEngine/internal/server"
)

func main() {
	addr := flag.String("addr", ":8080", "address to listen on (e.g., 127.0.0.1:8080)")
	tuningPath := flag.String("tuning", "configs/tuning.yaml", "path to scoring/boss tuning YAML")
	watch := flag.Bool("watch", false, "reload the tuning file when it changes")
	saveApp := flag.String("save-app", "encounter_engine", "save data app name (empty disables persistence)")
	comboTimeout := flag.Float64("combo-timeout", math.NaN(), "override combo window in seconds")
	heatPerShot := flag.Float64("heat-per-shot", math.NaN(), "override heat added per shot")
	heatDecay := flag.Float64("heat-decay", math.NaN(), "override heat removed per second")
	berserkDuration := flag.Float64("berserk-duration", math.NaN(), "override berserk duration in seconds")
	flag.Parse()

	cfg := server.DefaultAppConfig()
	cfg.TuningPath = *tuningPath
	cfg.Watch = *watch
	cfg.SaveApp = *saveApp

	var overrides server.ScoringOverrides

	if !math.IsNaN(*comboTimeout) {
		val := *comboTimeout
		overrides.ComboTimeout = &val
	}
	if !math.IsNaN(*heatPerShot) {
		val := *heatPerShot
		overrides.HeatPerShot = &val
	}
	if !math.IsNaN(*heatDecay) {
		val := *heatDecay
		overrides.HeatDecay = &val
	}
	if !math.IsNaN(*berserkDuration) {
		val := *berserkDuration
		overrides.BerserkDuration = &val
	}

	cfg.Overrides = overrides

	server.StartApp(*addr, cfg)
}
