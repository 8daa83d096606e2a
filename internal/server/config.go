package server

import (
	"fmt"
	"os"
	"path/filepath"

	. "EncounterEngine/internal/game"

	"gopkg.in/yaml.v3"
)

type heatConfig struct {
	PerShot   *float64 `yaml:"perShot"`
	Decay     *float64 `yaml:"decay"`
	WarmAt    *float64 `yaml:"warmAt"`
	HotAt     *float64 `yaml:"hotAt"`
	ReleaseAt *float64 `yaml:"releaseAt"`
}

type berserkConfig struct {
	PerKill    *float64 `yaml:"perKill"`
	PerGraze   *float64 `yaml:"perGraze"`
	Duration   *float64 `yaml:"duration"`
	Decay      *float64 `yaml:"decay"`
	DamageMult *float64 `yaml:"damageMult"`
	SpeedMult  *float64 `yaml:"speedMult"`
	ScoreMult  *float64 `yaml:"scoreMult"`
}

type scoringConfig struct {
	ComboTimeout *float64       `yaml:"comboTimeout"`
	Heat         *heatConfig    `yaml:"heat"`
	Berserk      *berserkConfig `yaml:"berserk"`
}

type bossConfig struct {
	Stage           int      `yaml:"stage"`
	MaxHealth       *float64 `yaml:"maxHealth"`
	TotalPhases     *int     `yaml:"totalPhases"`
	Score           *int64   `yaml:"score"`
	SecondaryReward *int     `yaml:"secondaryReward"`
	EnrageThreshold *float64 `yaml:"enrageThreshold"`
}

type tuningFile struct {
	Scoring    *scoringConfig `yaml:"scoring"`
	Difficulty *string        `yaml:"difficulty"`
	Bosses     []bossConfig   `yaml:"bosses"`
}

// Tuning is the resolved content of a tuning file.
type Tuning struct {
	Scoring    ScoringParams
	Difficulty Difficulty
	Bosses     []BossDefinition
}

// ScoringOverrides represents optional command-line overrides for scoring tuning.
type ScoringOverrides struct {
	ComboTimeout    *float64
	HeatPerShot     *float64
	HeatDecay       *float64
	BerserkDuration *float64
}

func (o ScoringOverrides) apply(base ScoringParams) ScoringParams {
	if o.ComboTimeout != nil {
		base.ComboTimeout = *o.ComboTimeout
	}
	if o.HeatPerShot != nil {
		base.Heat.PerShot = *o.HeatPerShot
	}
	if o.HeatDecay != nil {
		base.Heat.Decay = *o.HeatDecay
	}
	if o.BerserkDuration != nil {
		base.Berserk.Duration = *o.BerserkDuration
	}
	return SanitizeScoringParams(base)
}

func mergeHeatConfig(base HeatParams, cfg *heatConfig) HeatParams {
	if cfg == nil {
		return base
	}
	if cfg.PerShot != nil {
		base.PerShot = *cfg.PerShot
	}
	if cfg.Decay != nil {
		base.Decay = *cfg.Decay
	}
	if cfg.WarmAt != nil {
		base.WarmAt = *cfg.WarmAt
	}
	if cfg.HotAt != nil {
		base.HotAt = *cfg.HotAt
	}
	if cfg.ReleaseAt != nil {
		base.ReleaseAt = *cfg.ReleaseAt
	}
	return base
}

func mergeBerserkConfig(base BerserkParams, cfg *berserkConfig) BerserkParams {
	if cfg == nil {
		return base
	}
	if cfg.PerKill != nil {
		base.PerKill = *cfg.PerKill
	}
	if cfg.PerGraze != nil {
		base.PerGraze = *cfg.PerGraze
	}
	if cfg.Duration != nil {
		base.Duration = *cfg.Duration
	}
	if cfg.Decay != nil {
		base.Decay = *cfg.Decay
	}
	if cfg.DamageMult != nil {
		base.DamageMult = *cfg.DamageMult
	}
	if cfg.SpeedMult != nil {
		base.SpeedMult = *cfg.SpeedMult
	}
	if cfg.ScoreMult != nil {
		base.ScoreMult = *cfg.ScoreMult
	}
	return base
}

func mergeScoringConfig(base ScoringParams, cfg *scoringConfig) ScoringParams {
	if cfg == nil {
		return SanitizeScoringParams(base)
	}
	if cfg.ComboTimeout != nil {
		base.ComboTimeout = *cfg.ComboTimeout
	}
	base.Heat = mergeHeatConfig(base.Heat, cfg.Heat)
	base.Berserk = mergeBerserkConfig(base.Berserk, cfg.Berserk)
	return SanitizeScoringParams(base)
}

// mergeBossConfig overlays one override entry on the compiled definition for
// its stage. The result is validated before it is returned.
func mergeBossConfig(cfg bossConfig) (BossDefinition, error) {
	base, err := GetBoss(cfg.Stage)
	if err != nil {
		return BossDefinition{}, err
	}
	def := *base
	if cfg.MaxHealth != nil {
		def.MaxHealth = *cfg.MaxHealth
	}
	if cfg.TotalPhases != nil {
		def.TotalPhases = *cfg.TotalPhases
	}
	if cfg.Score != nil {
		def.Score = *cfg.Score
	}
	if cfg.SecondaryReward != nil {
		def.SecondaryReward = *cfg.SecondaryReward
	}
	if cfg.EnrageThreshold != nil {
		def.EnrageThreshold = *cfg.EnrageThreshold
	}
	if err := def.Validate(); err != nil {
		return BossDefinition{}, err
	}
	return def, nil
}

func defaultTuning(base ScoringParams) Tuning {
	return Tuning{Scoring: SanitizeScoringParams(base), Difficulty: Newbro}
}

// loadTuningFromFile reads a YAML tuning file on top of base. A missing file
// yields the defaults without error.
func loadTuningFromFile(path string, base ScoringParams) (Tuning, error) {
	out := defaultTuning(base)
	if path == "" {
		return out, nil
	}
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return out, fmt.Errorf("read tuning config %q: %w", cleanPath, err)
	}
	var cfg tuningFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return out, fmt.Errorf("parse tuning config %q: %w", cleanPath, err)
	}
	out.Scoring = mergeScoringConfig(base, cfg.Scoring)
	if cfg.Difficulty != nil {
		out.Difficulty = ParseDifficulty(*cfg.Difficulty)
	}
	for _, bc := range cfg.Bosses {
		def, err := mergeBossConfig(bc)
		if err != nil {
			return defaultTuning(base), fmt.Errorf("tuning config %q: %w", cleanPath, err)
		}
		out.Bosses = append(out.Bosses, def)
	}
	return out, nil
}

// applyBossOverrides installs boss definitions into the live table. Bosses
// spawned afterwards use them.
func applyBossOverrides(defs []BossDefinition) error {
	for _, def := range defs {
		if err := SetBoss(def); err != nil {
			return err
		}
	}
	return nil
}

func applyScoringOverrides(base ScoringParams, overrides ScoringOverrides) ScoringParams {
	return overrides.apply(base)
}
