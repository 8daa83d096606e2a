package server

import (
	"testing"

	. "EncounterEngine/internal/game"
)

func TestAppReloadPushesScoringToSessions(t *testing.T) {
	if err := InitProgression(); err != nil {
		t.Fatalf("init progression: %v", err)
	}
	dir := t.TempDir()
	path := writeTuning(t, dir, "scoring:\n  comboTimeout: 3.5\ndifficulty: carebear\n")
	timeout := 1.5
	app := NewApp(AppConfig{TuningPath: path})
	if got := app.ScoringParams().ComboTimeout; got != 3.5 {
		t.Fatalf("expected combo timeout 3.5 from file, got %.2f", got)
	}
	if app.DefaultDifficulty() != Carebear {
		t.Fatalf("expected carebear, got %s", app.DefaultDifficulty())
	}
	if app.Store.Persistent() {
		t.Fatalf("expected an in-memory store without a save app")
	}

	s := app.Hub.Open(SessionConfig{Engine: EngineConfig{Scoring: app.ScoringParams(), Seed: 1}})
	writeTuning(t, dir, "scoring:\n  comboTimeout: 4\n  heat:\n    decay: 30\n")
	app.reload()
	if got := s.Engine.Scoring.Params(); got.ComboTimeout != 4 || got.Heat.Decay != 30 {
		t.Fatalf("expected reloaded params on the live session, got %+v", got)
	}
	if app.DefaultDifficulty() != Newbro {
		t.Fatalf("expected difficulty back to newbro after the key was removed, got %s", app.DefaultDifficulty())
	}

	// Command-line overrides win over the file.
	app.cfg.Overrides = ScoringOverrides{ComboTimeout: &timeout}
	app.reload()
	if got := s.Engine.Scoring.Params().ComboTimeout; got != 1.5 {
		t.Fatalf("expected override 1.5, got %.2f", got)
	}
}
