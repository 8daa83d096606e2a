package game

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"
)

// ErrSessionClosed is returned for commands that reach a closed session.
var ErrSessionClosed = errors.New("session closed")

// Session is one player's engine plus the inputs and events waiting on it.
// Transport goroutines enqueue inputs; the hub ticker steps the engine.
type Session struct {
	ID          string
	Engine      *Engine
	Progression *Progression
	Mu          sync.Mutex

	inputs  []Input
	outbox  []Event
	stopped bool
}

// SessionConfig configures a new session.
type SessionConfig struct {
	Engine      EngineConfig
	Progression *Progression
}

func newSession(id string, cfg SessionConfig) *Session {
	return &Session{
		ID:          id,
		Engine:      NewEngine(cfg.Engine),
		Progression: cfg.Progression,
	}
}

// Enqueue queues an input for the next tick.
func (s *Session) Enqueue(in Input) {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	if s.stopped {
		return
	}
	s.inputs = append(s.inputs, in)
}

// Tick steps the engine once with the queued inputs.
func (s *Session) Tick() {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	if s.stopped {
		return
	}
	inputs := s.inputs
	s.inputs = nil
	s.outbox = append(s.outbox, s.Engine.Step(Dt, inputs)...)
}

// Do runs fn against the engine under the session lock and queues the events
// it returns.
func (s *Session) Do(fn func(e *Engine) ([]Event, error)) error {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	if s.stopped {
		return ErrSessionClosed
	}
	events, err := fn(s.Engine)
	s.outbox = append(s.outbox, events...)
	return err
}

// StartMission starts missionID, or the mission under the campaign pointer
// when missionID is empty. Locked missions are refused.
func (s *Session) StartMission(missionID string) error {
	return s.Do(func(e *Engine) ([]Event, error) {
		if e.Campaign.InMission {
			e.Abort()
			if s.Progression != nil {
				s.Progression.Abandon()
			}
		}
		if missionID == "" {
			missionID = e.Campaign.Mission().ID
		}
		if s.Progression != nil && !s.Progression.CanStart(missionID) {
			return nil, fmt.Errorf("mission locked: %s", missionID)
		}
		events, err := e.StartMissionByID(missionID)
		if err != nil {
			return nil, err
		}
		if s.Progression != nil {
			if err := s.Progression.Begin(missionID, e.Now); err != nil {
				return events, err
			}
		}
		return events, nil
	})
}

// CompleteMission records the cleared mission in the progression graph and
// advances the campaign pointer.
func (s *Session) CompleteMission() error {
	return s.Do(func(e *Engine) ([]Event, error) {
		missionID := e.Campaign.Mission().ID
		score := e.Scoring.Score
		bonus := e.Campaign.BonusComplete
		events, err := e.CompleteMission()
		if err != nil {
			return nil, err
		}
		if s.Progression != nil {
			unlocks, err := s.Progression.Finish(missionID, score, bonus)
			if err != nil {
				return events, err
			}
			events = append(events, unlocks...)
		}
		return events, nil
	})
}

// Abort drops the running mission.
func (s *Session) Abort() {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	s.inputs = nil
	s.Engine.Abort()
	if s.Progression != nil {
		s.Progression.Abandon()
	}
}

// Drain returns and clears the pending output events.
func (s *Session) Drain() []Event {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	out := s.outbox
	s.outbox = nil
	return out
}

// Snapshot captures the engine state under the session lock.
func (s *Session) Snapshot() Snapshot {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return s.Engine.Snapshot()
}

// SetScoringParams applies new scoring tuning to the session's engine.
func (s *Session) SetScoringParams(p ScoringParams) {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	s.Engine.SetScoringParams(p)
}

// Hub owns every live session.
type Hub struct {
	Sessions map[string]*Session
	Mu       sync.Mutex
}

func NewHub() *Hub { return &Hub{Sessions: map[string]*Session{}} }

// Open registers a new session.
func (h *Hub) Open(cfg SessionConfig) *Session {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	id := RandId("s")
	for _, taken := h.Sessions[id]; taken; _, taken = h.Sessions[id] {
		id = RandId("s")
	}
	s := newSession(id, cfg)
	h.Sessions[id] = s
	return s
}

func (h *Hub) Get(id string) *Session {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	return h.Sessions[id]
}

// Close stops and forgets a session.
func (h *Hub) Close(id string) {
	h.Mu.Lock()
	s := h.Sessions[id]
	delete(h.Sessions, id)
	h.Mu.Unlock()
	if s != nil {
		s.Mu.Lock()
		s.stopped = true
		s.Mu.Unlock()
	}
}

// Tick steps every session once, in id order.
func (h *Hub) Tick() {
	for _, s := range h.snapshot() {
		s.Tick()
	}
}

// Each visits every session, in id order.
func (h *Hub) Each(fn func(*Session)) {
	for _, s := range h.snapshot() {
		fn(s)
	}
}

func (h *Hub) snapshot() []*Session {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	out := make([]*Session, 0, len(h.Sessions))
	for _, s := range h.Sessions {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (h *Hub) Len() int {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	return len(h.Sessions)
}

func RandId(prefix string) string {
	const letters = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, 6)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return prefix + "-" + string(b)
}
