package game

import "testing"

func TestSoulsEvaluator(t *testing.T) {
	e := &SoulsEvaluator{Required: 30}
	done, progress := e.Evaluate(ObjectiveContext{Souls: 15})
	if done || progress != 0.5 {
		t.Fatalf("expected half progress, got %v %.2f", done, progress)
	}
	done, progress = e.Evaluate(ObjectiveContext{Souls: 45})
	if !done || progress != 1 {
		t.Fatalf("expected complete, got %v %.2f", done, progress)
	}
}

func TestNoDamageEvaluator(t *testing.T) {
	var e NoDamageEvaluator
	if done, _ := e.Evaluate(ObjectiveContext{NoDamageTaken: true}); !done {
		t.Fatalf("expected pass without damage")
	}
	if done, _ := e.Evaluate(ObjectiveContext{}); done {
		t.Fatalf("expected fail after a hit")
	}
}

func TestTimerEvaluator(t *testing.T) {
	e := &TimerEvaluator{Limit: 180}
	done, progress := e.Evaluate(ObjectiveContext{Elapsed: 90})
	if !done || progress != 0.5 {
		t.Fatalf("expected pass with half the limit left, got %v %.2f", done, progress)
	}
	if done, _ := e.Evaluate(ObjectiveContext{Elapsed: 180}); !done {
		t.Fatalf("expected pass exactly at the limit")
	}
	if done, _ := e.Evaluate(ObjectiveContext{Elapsed: 181}); done {
		t.Fatalf("expected fail past the limit")
	}
}

func TestAllEnemiesEvaluator(t *testing.T) {
	var e AllEnemiesEvaluator
	if done, _ := e.Evaluate(ObjectiveContext{EnemiesSpawned: 20, EnemiesDestroyed: 20}); !done {
		t.Fatalf("expected pass with every enemy destroyed")
	}
	done, progress := e.Evaluate(ObjectiveContext{EnemiesSpawned: 20, EnemiesDestroyed: 15, EnemiesEscaped: 5})
	if done || progress != 0.75 {
		t.Fatalf("expected fail at 0.75, got %v %.2f", done, progress)
	}
	// Nothing escaped but nothing was destroyed either.
	if done, progress := e.Evaluate(ObjectiveContext{EnemiesSpawned: 5}); done || progress != 0 {
		t.Fatalf("expected fail with no kills, got %v %.2f", done, progress)
	}
}

func TestComboEvaluator(t *testing.T) {
	e := &ComboEvaluator{Required: 30}
	if done, _ := e.Evaluate(ObjectiveContext{MaxCombo: 29}); done {
		t.Fatalf("expected fail below the target")
	}
	if done, _ := e.Evaluate(ObjectiveContext{MaxCombo: 30}); !done {
		t.Fatalf("expected pass at the target")
	}
}

func TestBonusSpecEvaluator(t *testing.T) {
	if (BonusSpec{}).Evaluator() != nil {
		t.Fatalf("expected no evaluator for BonusNone")
	}
	for act := Act1; act <= Act3; act++ {
		for _, m := range MissionRegistry[act] {
			if m.Bonus.Kind != BonusNone && m.Bonus.Evaluator() == nil {
				t.Fatalf("%s: expected an evaluator for %s", m.ID, m.Bonus.Kind)
			}
		}
	}
}
