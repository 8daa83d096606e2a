package server

import (
	"context"
	"log"
	"sync"
	"time"

	. "EncounterEngine/internal/game"
	"EncounterEngine/internal/save"
)

type AppConfig struct {
	TuningPath string
	Watch      bool
	SaveApp    string
	Overrides  ScoringOverrides
}

func DefaultAppConfig() AppConfig {
	return AppConfig{
		TuningPath: "configs/tuning.yaml",
		SaveApp:    "encounter_engine",
	}
}

// App holds the state shared by every connection.
type App struct {
	Hub   *Hub
	Store *save.Store

	cfg        AppConfig
	mu         sync.RWMutex
	scoring    ScoringParams
	difficulty Difficulty
}

// NewApp resolves tuning and opens the save store. An empty SaveApp, or a
// store that cannot be opened, leaves the app running without persistence.
func NewApp(cfg AppConfig) *App {
	app := &App{Hub: NewHub(), cfg: cfg, Store: save.NewStore(nil)}
	app.reload()

	if cfg.SaveApp != "" {
		store, err := save.Open(cfg.SaveApp)
		if err != nil {
			log.Printf("save store: %v (progress will not persist)", err)
		} else {
			app.Store = store
		}
	}
	return app
}

func resolveTuning(cfg AppConfig) Tuning {
	tuning, err := loadTuningFromFile(cfg.TuningPath, DefaultScoringParams())
	if err != nil {
		log.Printf("tuning config: %v (using defaults)", err)
	}
	tuning.Scoring = applyScoringOverrides(tuning.Scoring, cfg.Overrides)
	return tuning
}

// reload re-reads the tuning file and pushes the result to live sessions.
func (a *App) reload() {
	tuning := resolveTuning(a.cfg)
	if err := applyBossOverrides(tuning.Bosses); err != nil {
		log.Printf("tuning config: boss override rejected: %v", err)
	}
	a.mu.Lock()
	a.scoring = tuning.Scoring
	a.difficulty = tuning.Difficulty
	a.mu.Unlock()

	a.Hub.Each(func(s *Session) {
		s.SetScoringParams(tuning.Scoring)
	})
}

// ScoringParams returns the scoring tuning new sessions start with.
func (a *App) ScoringParams() ScoringParams {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.scoring
}

// DefaultDifficulty is used when a client does not ask for a level.
func (a *App) DefaultDifficulty() Difficulty {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.difficulty
}

// RunTicker steps every session at SimHz until ctx is done.
func (a *App) RunTicker(ctx context.Context) {
	ticker := time.NewTicker(time.Duration(1000.0/SimHz) * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.Hub.Tick()
		}
	}
}

// WatchTuning reloads whenever the tuning file changes, until ctx is done.
func (a *App) WatchTuning(ctx context.Context) error {
	w, err := NewTuningWatcher(a.cfg.TuningPath)
	if err != nil {
		return err
	}
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case name, ok := <-w.Events:
				if !ok {
					return
				}
				log.Printf("tuning config: %s changed, reloading", name)
				a.reload()
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("tuning watcher: %v", err)
			}
		}
	}()
	return nil
}

func StartApp(addr string, cfg AppConfig) {
	if err := ValidateTables(); err != nil {
		log.Fatalf("invalid encounter tables: %v", err)
	}
	if err := InitProgression(); err != nil {
		log.Fatalf("failed to initialize campaign graph: %v", err)
	}

	app := NewApp(cfg)
	ctx := context.Background()
	go app.RunTicker(ctx)
	if cfg.Watch {
		if err := app.WatchTuning(ctx); err != nil {
			log.Printf("tuning watcher: %v (hot reload disabled)", err)
		}
	}

	scoring := app.ScoringParams()
	log.Printf("starting web server on %s (difficulty %s, combo timeout %.1fs, heat decay %.1f/s, persistent %v)\n",
		addr, app.DefaultDifficulty(), scoring.ComboTimeout, scoring.Heat.Decay, app.Store.Persistent())
	startServer(app, addr)
}
