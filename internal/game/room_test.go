package game

import (
	"errors"
	"strings"
	"testing"
)

func newTestHub(t *testing.T) (*Hub, *Session) {
	t.Helper()
	hub := NewHub()
	s := hub.Open(SessionConfig{
		Engine:      EngineConfig{Difficulty: Newbro, Scoring: DefaultScoringParams(), Seed: 3},
		Progression: newTestProgression(t),
	})
	return hub, s
}

func TestHubOpenAndClose(t *testing.T) {
	hub, s := newTestHub(t)
	if hub.Len() != 1 || hub.Get(s.ID) != s {
		t.Fatalf("expected session registered under %s", s.ID)
	}
	if !strings.HasPrefix(s.ID, "s-") {
		t.Fatalf("expected session id prefix s-, got %s", s.ID)
	}
	hub.Close(s.ID)
	if hub.Len() != 0 || hub.Get(s.ID) != nil {
		t.Fatalf("expected session removed")
	}
	// A closed session ignores further input and ticks.
	s.Enqueue(FireInput{})
	s.Tick()
	if len(s.Drain()) != 0 {
		t.Fatalf("expected no events from a closed session")
	}
}

func TestSessionRefusesLockedMission(t *testing.T) {
	_, s := newTestHub(t)
	err := s.StartMission("m5_customs_strike")
	if err == nil || !strings.Contains(err.Error(), "mission locked") {
		t.Fatalf("expected locked mission error, got %v", err)
	}
	if s.Engine.Campaign.InMission {
		t.Fatalf("expected no mission running")
	}
}

func TestSessionMissionRoundTrip(t *testing.T) {
	hub, s := newTestHub(t)
	if err := s.StartMission(""); err != nil {
		t.Fatalf("start: %v", err)
	}
	events := s.Drain()
	if len(events) != 1 || events[0].Type != EventMissionStarted {
		t.Fatalf("expected mission start, got %+v", events)
	}

	for i := 0; i < 20000 && s.Engine.Boss == nil; i++ {
		s.Engine.World.ForEach([]ComponentKey{CompEnemy}, func(id EntityID) {
			s.Enqueue(KillInput{Class: ClassEnemy, ID: id})
		})
		hub.Tick()
	}
	if s.Engine.Boss == nil {
		t.Fatalf("expected boss to spawn")
	}
	s.Enqueue(DamageInput{Target: ClassBoss, Amount: 1e7})
	for i := 0; i < 3; i++ {
		hub.Tick()
	}
	if err := s.CompleteMission(); err != nil {
		t.Fatalf("complete: %v", err)
	}
	events = s.Drain()
	if countEvents(events, EventMissionCompleted) != 1 {
		t.Fatalf("expected mission completion in the outbox")
	}
	if !s.Progression.CanStart("m2_patrol_ambush") {
		t.Fatalf("expected mission 2 unlocked")
	}
	if snap := s.Snapshot(); snap.MissionID != "m2_patrol_ambush" || snap.Status != "not_started" {
		t.Fatalf("expected pointer on mission 2, got %s %s", snap.MissionID, snap.Status)
	}
}

func TestSessionRestartAbortsRunningMission(t *testing.T) {
	_, s := newTestHub(t)
	if err := s.StartMission("m1_convoy_raid"); err != nil {
		t.Fatalf("start: %v", err)
	}
	s.Tick()
	if err := s.StartMission("m1_convoy_raid"); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if !s.Engine.Campaign.InMission || s.Engine.Campaign.Wave != 1 {
		t.Fatalf("expected a fresh mission at wave 1")
	}
	s.Abort()
	if s.Engine.Campaign.InMission {
		t.Fatalf("expected abort to stop the mission")
	}
	if err := s.CompleteMission(); err == nil {
		t.Fatalf("expected completion to fail after abort")
	}
}

func TestHubEachVisitsInIDOrder(t *testing.T) {
	hub := NewHub()
	for i := 0; i < 5; i++ {
		hub.Open(SessionConfig{Engine: EngineConfig{Seed: int64(i)}})
	}
	var ids []string
	hub.Each(func(s *Session) { ids = append(ids, s.ID) })
	if len(ids) != 5 {
		t.Fatalf("expected 5 sessions, got %d", len(ids))
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("expected sorted ids, got %v", ids)
		}
	}
}

func TestClosedSessionRefusesCommands(t *testing.T) {
	hub, s := newTestHub(t)
	hub.Close(s.ID)
	if err := s.StartMission(""); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}
	if s.Engine.Campaign.InMission {
		t.Fatalf("expected a closed session to leave the engine idle")
	}
	if len(s.Drain()) != 0 {
		t.Fatalf("expected no events from a closed session")
	}
}
