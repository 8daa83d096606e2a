package game

import "testing"

func newTestEngine() *Engine {
	return NewEngine(EngineConfig{Difficulty: Newbro, Scoring: DefaultScoringParams(), Seed: 1})
}

// stepKilling destroys every tracked enemy through the input path and steps
// one tick.
func stepKilling(e *Engine) []Event {
	var inputs []Input
	e.World.ForEach([]ComponentKey{CompEnemy}, func(id EntityID) {
		inputs = append(inputs, KillInput{Class: ClassEnemy, ID: id})
	})
	return e.Step(0.05, inputs)
}

func runToBoss(t *testing.T, e *Engine) []Event {
	t.Helper()
	var all []Event
	for i := 0; i < 20000 && e.Boss == nil; i++ {
		all = append(all, stepKilling(e)...)
	}
	if e.Boss == nil {
		t.Fatalf("boss never spawned for %s", e.Campaign.Mission().ID)
	}
	return all
}

func killBoss(t *testing.T, e *Engine) []Event {
	t.Helper()
	var all []Event
	all = append(all, e.Step(0.05, []Input{DamageInput{Target: ClassBoss, Amount: e.Boss.MaxHealth * 10}})...)
	for i := 0; i < 10 && !e.Campaign.BossDefeated; i++ {
		all = append(all, e.Step(0.05, nil)...)
	}
	if !e.Campaign.BossDefeated {
		t.Fatalf("boss %s never resolved", e.Boss.Def.Name)
	}
	return all
}

func TestStartMissionEmitsStart(t *testing.T) {
	e := newTestEngine()
	events := e.StartMission()
	if len(events) != 1 || events[0].Type != EventMissionStarted {
		t.Fatalf("expected a single mission start, got %+v", events)
	}
	ms := events[0].Payload.(MissionStarted)
	if ms.MissionID != "m1_convoy_raid" || ms.Act != 1 || ms.Waves != 3 {
		t.Fatalf("unexpected mission start payload: %+v", ms)
	}
	snap := e.Snapshot()
	if snap.Status != "in_mission" || snap.Wave != 1 || snap.Boss != nil {
		t.Fatalf("unexpected snapshot: status %s wave %d boss %v", snap.Status, snap.Wave, snap.Boss)
	}
}

// Clearing waves 1..3 spawns the stage boss exactly once, no matter how long
// the fight then runs.
func TestWavesThenSingleBossSpawn(t *testing.T) {
	e := newTestEngine()
	e.StartMission()
	events := runToBoss(t, e)

	var cleared []int
	for _, ev := range events {
		if wc, ok := ev.Payload.(WaveCleared); ok {
			cleared = append(cleared, wc.WaveNumber)
		}
	}
	if len(cleared) != 3 || cleared[0] != 1 || cleared[1] != 2 || cleared[2] != 3 {
		t.Fatalf("expected waves [1 2 3] cleared, got %v", cleared)
	}

	for i := 0; i < 1500; i++ {
		events = append(events, e.Step(0.05, nil)...)
	}
	if n := countEvents(events, EventBossSpawnRequest); n != 1 {
		t.Fatalf("expected one boss spawn, got %d", n)
	}
	for _, ev := range events {
		if req, ok := ev.Payload.(BossSpawnRequest); ok && req.StageID != 1 {
			t.Fatalf("expected stage 1 boss, got %d", req.StageID)
		}
	}
	if e.Campaign.Status != StatusBossBattle {
		t.Fatalf("expected boss battle, got %s", e.Campaign.Status)
	}
	if countEvents(events, EventProjectileBurst) == 0 {
		t.Fatalf("expected the boss to fire")
	}
}

func TestMissionCompletionFlow(t *testing.T) {
	e := newTestEngine()
	e.StartMission()
	runToBoss(t, e)

	// Two lethal hits land in the same tick.
	events := e.Step(0.05, []Input{
		DamageInput{Target: ClassBoss, Amount: 1e6},
		DamageInput{Target: ClassBoss, Amount: 1e6},
	})
	for i := 0; i < 40; i++ {
		events = append(events, e.Step(0.05, nil)...)
	}
	if n := countEvents(events, EventBossDefeated); n != 1 {
		t.Fatalf("expected one boss defeat, got %d", n)
	}
	if n := countEvents(events, EventMissionCompleted); n != 1 {
		t.Fatalf("expected one mission completion, got %d", n)
	}
	def := BossForStage(1)
	if e.Campaign.MissionSouls != def.SecondaryReward || e.Scoring.SoulsLiberated != def.SecondaryReward {
		t.Fatalf("expected %d souls, got mission %d total %d", def.SecondaryReward, e.Campaign.MissionSouls, e.Scoring.SoulsLiberated)
	}
	if !e.Campaign.BonusComplete {
		t.Fatalf("expected the souls bonus to be met")
	}

	out, err := e.CompleteMission()
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if countEvents(out, EventActCompleted) != 0 {
		t.Fatalf("expected no act change after the first mission")
	}
	if e.Campaign.MissionIndex != 1 || e.Campaign.InMission {
		t.Fatalf("expected pointer at mission 2 and idle, got index %d in %v", e.Campaign.MissionIndex, e.Campaign.InMission)
	}
	if _, err := e.CompleteMission(); err == nil {
		t.Fatalf("expected a second completion to fail")
	}
}

func TestCompleteMissionRequiresBossDefeat(t *testing.T) {
	e := newTestEngine()
	if _, err := e.CompleteMission(); err == nil {
		t.Fatalf("expected error before any mission")
	}
	e.StartMission()
	if _, err := e.CompleteMission(); err == nil {
		t.Fatalf("expected error while the boss is alive")
	}
}

func TestFullCampaign(t *testing.T) {
	e := newTestEngine()
	var acts, campaigns int
	for i := 0; i < TotalMissions(); i++ {
		e.StartMission()
		runToBoss(t, e)
		killBoss(t, e)
		out, err := e.CompleteMission()
		if err != nil {
			t.Fatalf("mission %d: %v", i+1, err)
		}
		acts += countEvents(out, EventActCompleted)
		campaigns += countEvents(out, EventCampaignCompleted)
	}
	if acts != 3 || campaigns != 1 {
		t.Fatalf("expected 3 act completions and 1 campaign completion, got %d and %d", acts, campaigns)
	}
	if e.Campaign.Status != StatusCampaignComplete {
		t.Fatalf("expected campaign complete, got %s", e.Campaign.Status)
	}
}

func TestInputsIgnoredOutsideMission(t *testing.T) {
	e := newTestEngine()
	e.Step(0.05, []Input{FireInput{}, NearMissInput{}, PlayerHitInput{}, BerserkInput{}})
	if e.Scoring.Heat.S.Value != 0 || e.Scoring.Berserk.S.Meter != 0 {
		t.Fatalf("expected idle engine to ignore combat inputs")
	}
	e.Step(0.05, []Input{PlayerPositionInput{X: -50}})
	if e.PlayerX != 0 {
		t.Fatalf("expected player x clamped to 0, got %.1f", e.PlayerX)
	}
}

func TestBerserkDoublesDamage(t *testing.T) {
	e := newTestEngine()
	e.StartMission()
	id := e.World.SpawnEnemy(GetArchetype(TypePunisher), 1, BehaviorLinear, Vec2{X: 400, Y: 100})
	e.Scoring.Berserk.S.Meter = BerserkMax
	events := e.Step(0.05, []Input{BerserkInput{}, DamageInput{Target: ClassEnemy, ID: id, Amount: 25}})
	if e.World.Enemy(id) != nil {
		t.Fatalf("expected 25 x 2 damage to destroy a 40 hp enemy")
	}
	if countEvents(events, EventBerserkActivated) != 1 || countEvents(events, EventEnemyDestroyed) != 1 {
		t.Fatalf("expected activation and destruction, got %+v", events)
	}
}

func TestEscapedEnemiesTracked(t *testing.T) {
	e := newTestEngine()
	e.StartMission()
	id := e.World.SpawnEnemy(GetArchetype(TypePunisher), 1, BehaviorLinear, Vec2{X: 400, Y: 100})
	e.Step(0.05, []Input{EscapedInput{ID: id}, EscapedInput{ID: id}})
	if e.Campaign.EnemiesEscaped != 1 {
		t.Fatalf("expected one escape, got %d", e.Campaign.EnemiesEscaped)
	}
	if e.World.Enemy(id) != nil {
		t.Fatalf("expected escaped enemy forgotten")
	}
}

func TestExternalWaveClearedIsGated(t *testing.T) {
	e := newTestEngine()
	e.StartMission()
	events := e.Step(0.05, []Input{WaveClearedInput{Wave: 2}})
	if countEvents(events, EventWaveCleared) != 0 {
		t.Fatalf("expected future wave report ignored")
	}
	events = e.Step(0.05, []Input{WaveClearedInput{Wave: 1}, WaveClearedInput{Wave: 1}})
	if countEvents(events, EventWaveCleared) != 1 || e.Campaign.Wave != 2 {
		t.Fatalf("expected one clear and wave 2, got %d clears wave %d", countEvents(events, EventWaveCleared), e.Campaign.Wave)
	}
}

func TestAbortFromBossBattle(t *testing.T) {
	e := newTestEngine()
	e.StartMission()
	runToBoss(t, e)
	e.Abort()
	if e.Boss != nil || e.Campaign.InMission || e.Campaign.Status != StatusNotStarted {
		t.Fatalf("expected clean abort, got boss %v in %v status %s", e.Boss, e.Campaign.InMission, e.Campaign.Status)
	}
	if e.Scoring.Score != 0 {
		t.Fatalf("expected score reset, got %d", e.Scoring.Score)
	}
	if events := e.Step(0.05, nil); len(events) != 0 {
		t.Fatalf("expected an idle engine to emit nothing, got %+v", events)
	}
}

func TestSameSeedSameRun(t *testing.T) {
	run := func() []EventType {
		e := newTestEngine()
		e.StartMission()
		var types []EventType
		for i := 0; i < 800; i++ {
			for _, ev := range stepKilling(e) {
				types = append(types, ev.Type)
			}
		}
		return types
	}
	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("expected equal event streams, got %d and %d events", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("event %d differs: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestStartMissionByID(t *testing.T) {
	e := newTestEngine()
	events, err := e.StartMissionByID("m9_battlestation")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if e.Campaign.Act != Act2 || e.Campaign.MissionIndex != 4 || e.Campaign.Stage() != 9 {
		t.Fatalf("expected act 2 index 4 stage 9, got act %d index %d stage %d", e.Campaign.Act, e.Campaign.MissionIndex, e.Campaign.Stage())
	}
	if len(events) != 1 || events[0].Type != EventMissionStarted {
		t.Fatalf("expected mission start, got %+v", events)
	}
	if _, err := e.StartMissionByID("m1_convoy_raid"); err == nil {
		t.Fatalf("expected start to be refused while a mission runs")
	}
	e.Abort()
	if _, err := e.StartMissionByID("nope"); err == nil {
		t.Fatalf("expected error for unknown mission")
	}
}

func TestBerserkSpeedReachesHost(t *testing.T) {
	e := newTestEngine()
	e.StartMission()
	if got := e.Snapshot().BerserkSpeed; got != 1 {
		t.Fatalf("expected neutral speed before berserk, got %.2f", got)
	}
	e.Scoring.Berserk.S.Meter = BerserkMax
	events := e.Step(0.05, []Input{BerserkInput{}})
	var act *BerserkActivated
	for _, ev := range events {
		if p, ok := ev.Payload.(BerserkActivated); ok {
			act = &p
		}
	}
	if act == nil {
		t.Fatalf("expected berserk activation, got %+v", events)
	}
	if act.SpeedMult != BerserkSpeedMult || act.DamageMult != BerserkDamageMult {
		t.Fatalf("expected speed %.2f damage %.2f, got %+v", BerserkSpeedMult, BerserkDamageMult, *act)
	}
	if got := e.Snapshot().BerserkSpeed; got != BerserkSpeedMult {
		t.Fatalf("expected snapshot speed %.2f, got %.2f", BerserkSpeedMult, got)
	}
}

// Stragglers removed by an external wave clear count against the
// destroy-all bonus.
func TestClearedStragglersFailAllEnemiesBonus(t *testing.T) {
	e := newTestEngine()
	if _, err := e.StartMissionByID("m5_customs_strike"); err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 0; i < 20000 && e.Boss == nil; i++ {
		var inputs []Input
		if e.World.EnemyCount() > 0 {
			inputs = append(inputs, WaveClearedInput{Wave: e.Campaign.Wave})
		}
		e.Step(0.05, inputs)
	}
	if e.Boss == nil {
		t.Fatalf("boss never spawned")
	}
	killBoss(t, e)
	c := e.Campaign
	if c.EnemiesSpawned == 0 || c.EnemiesDestroyed != 0 {
		t.Fatalf("expected spawns and no kills, got spawned %d destroyed %d", c.EnemiesSpawned, c.EnemiesDestroyed)
	}
	if c.EnemiesEscaped != c.EnemiesSpawned {
		t.Fatalf("expected every straggler counted as escaped, got %d of %d", c.EnemiesEscaped, c.EnemiesSpawned)
	}
	if c.BonusComplete {
		t.Fatalf("expected destroy-all bonus to fail with nothing destroyed")
	}
}

func TestAllEnemiesBonusWhenEverythingDestroyed(t *testing.T) {
	e := newTestEngine()
	if _, err := e.StartMissionByID("m5_customs_strike"); err != nil {
		t.Fatalf("start: %v", err)
	}
	runToBoss(t, e)
	killBoss(t, e)
	c := e.Campaign
	if c.EnemiesDestroyed != c.EnemiesSpawned || c.EnemiesEscaped != 0 {
		t.Fatalf("expected all %d destroyed, got %d destroyed %d escaped", c.EnemiesSpawned, c.EnemiesDestroyed, c.EnemiesEscaped)
	}
	if !c.BonusComplete {
		t.Fatalf("expected destroy-all bonus")
	}
}

func TestReduceHeatInput(t *testing.T) {
	e := newTestEngine()
	e.Step(0.05, []Input{ReduceHeatInput{Amount: 10}})
	e.StartMission()
	e.Scoring.Heat.S.Value = 60
	e.Scoring.Heat.reclassify()
	e.Step(0, []Input{ReduceHeatInput{Amount: 25}})
	if got := e.Scoring.Heat.S.Value; got != 35 {
		t.Fatalf("expected heat 35 after venting 25, got %.2f", got)
	}
	e.Step(0, []Input{ReduceHeatInput{Amount: -5}, ReduceHeatInput{Amount: 100}})
	if got := e.Scoring.Heat.S.Value; got != 0 {
		t.Fatalf("expected heat clamped at 0, got %.2f", got)
	}
}
