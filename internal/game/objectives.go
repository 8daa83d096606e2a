package game

// ObjectiveContext is the mission state a bonus objective is judged against.
type ObjectiveContext struct {
	Souls            int
	Elapsed          float64
	NoDamageTaken    bool
	EnemiesEscaped   int
	EnemiesSpawned   int
	EnemiesDestroyed int
	MaxCombo         int
}

// ObjectiveEvaluator exposes bonus objective completion checks.
type ObjectiveEvaluator interface {
	// Evaluate returns (complete, progress) where progress is 0.0-1.0.
	Evaluate(ctx ObjectiveContext) (bool, float64)
}

// BonusKind selects the bonus objective evaluator.
type BonusKind int

const (
	BonusNone BonusKind = iota
	BonusSouls
	BonusNoDamage
	BonusTimeLimit
	BonusAllEnemies
	BonusCombo
)

func (k BonusKind) String() string {
	switch k {
	case BonusSouls:
		return "souls"
	case BonusNoDamage:
		return "no_damage"
	case BonusTimeLimit:
		return "time_limit"
	case BonusAllEnemies:
		return "all_enemies"
	case BonusCombo:
		return "combo"
	default:
		return "none"
	}
}

// BonusSpec is the data form of a mission's bonus objective.
type BonusSpec struct {
	Kind      BonusKind
	Threshold float64
}

// Evaluator builds the evaluator for this bonus, or nil for BonusNone.
func (s BonusSpec) Evaluator() ObjectiveEvaluator {
	switch s.Kind {
	case BonusSouls:
		return &SoulsEvaluator{Required: int(s.Threshold)}
	case BonusNoDamage:
		return NoDamageEvaluator{}
	case BonusTimeLimit:
		return &TimerEvaluator{Limit: s.Threshold}
	case BonusAllEnemies:
		return AllEnemiesEvaluator{}
	case BonusCombo:
		return &ComboEvaluator{Required: int(s.Threshold)}
	}
	return nil
}

// SoulsEvaluator checks liberated souls against a target.
type SoulsEvaluator struct {
	Required int
}

// Evaluate implements ObjectiveEvaluator.
func (e *SoulsEvaluator) Evaluate(ctx ObjectiveContext) (bool, float64) {
	if e.Required <= 0 {
		return true, 1
	}
	if ctx.Souls >= e.Required {
		return true, 1
	}
	return false, Clamp(float64(ctx.Souls)/float64(e.Required), 0, 1)
}

// NoDamageEvaluator passes while the player has not been hit.
type NoDamageEvaluator struct{}

// Evaluate implements ObjectiveEvaluator.
func (NoDamageEvaluator) Evaluate(ctx ObjectiveContext) (bool, float64) {
	if ctx.NoDamageTaken {
		return true, 1
	}
	return false, 0
}

// TimerEvaluator passes when the mission finished inside the limit.
type TimerEvaluator struct {
	Limit float64
}

// Evaluate implements ObjectiveEvaluator. Progress is the share of the limit
// still unused.
func (e *TimerEvaluator) Evaluate(ctx ObjectiveContext) (bool, float64) {
	if e.Limit <= 0 {
		return false, 0
	}
	if ctx.Elapsed <= e.Limit {
		return true, Clamp(1-ctx.Elapsed/e.Limit, 0, 1)
	}
	return false, 0
}

// AllEnemiesEvaluator passes when every spawned enemy was destroyed.
type AllEnemiesEvaluator struct{}

// Evaluate implements ObjectiveEvaluator.
func (AllEnemiesEvaluator) Evaluate(ctx ObjectiveContext) (bool, float64) {
	if ctx.EnemiesSpawned <= 0 {
		return ctx.EnemiesEscaped == 0, 1
	}
	if ctx.EnemiesEscaped == 0 && ctx.EnemiesDestroyed >= ctx.EnemiesSpawned {
		return true, 1
	}
	return false, Clamp(float64(ctx.EnemiesDestroyed)/float64(ctx.EnemiesSpawned), 0, 1)
}

// ComboEvaluator checks the best combo reached during the mission.
type ComboEvaluator struct {
	Required int
}

// Evaluate implements ObjectiveEvaluator.
func (e *ComboEvaluator) Evaluate(ctx ObjectiveContext) (bool, float64) {
	if e.Required <= 0 {
		return true, 1
	}
	if ctx.MaxCombo >= e.Required {
		return true, 1
	}
	return false, Clamp(float64(ctx.MaxCombo)/float64(e.Required), 0, 1)
}
