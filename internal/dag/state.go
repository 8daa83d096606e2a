package dag

import (
	"encoding/json"
)

// Status represents the current state of a node for a player.
type Status string

const (
	// StatusLocked means the node's requirements are not met.
	StatusLocked Status = "locked"
	// StatusAvailable means the node can be started.
	StatusAvailable Status = "available"
	// StatusInProgress means a mission attempt is running.
	StatusInProgress Status = "in_progress"
	// StatusCompleted means the node has been cleared at least once.
	StatusCompleted Status = "completed"
)

// Attempt tracks a mission currently being played.
type Attempt struct {
	StartedAt  float64 `json:"started_at"`
	WasCleared bool    `json:"was_cleared"` // replay of an already completed node
}

// Record accumulates per-node results.
type Record struct {
	Attempts      int   `json:"attempts"`
	Clears        int   `json:"clears"`
	BestScore     int64 `json:"best_score"`
	BonusComplete bool  `json:"bonus_complete"`
}

// Result is the outcome of a finished mission attempt.
type Result struct {
	Score         int64
	BonusComplete bool
}

// State represents per-player DAG progression state.
type State struct {
	Status  map[NodeID]Status   `json:"status"`
	Active  map[NodeID]*Attempt `json:"active"`
	Records map[NodeID]*Record  `json:"records"`
}

// NewState creates a new empty state.
func NewState() *State {
	return &State{
		Status:  make(map[NodeID]Status),
		Active:  make(map[NodeID]*Attempt),
		Records: make(map[NodeID]*Record),
	}
}

// GetStatus returns the status of a node, defaulting to locked if not set.
func (s *State) GetStatus(id NodeID) Status {
	if status, exists := s.Status[id]; exists {
		return status
	}
	return StatusLocked
}

// SetStatus updates the status of a node.
func (s *State) SetStatus(id NodeID, status Status) {
	s.Status[id] = status
}

// Record returns the record for a node, creating it on first use.
func (s *State) Record(id NodeID) *Record {
	r, ok := s.Records[id]
	if !ok {
		r = &Record{}
		s.Records[id] = r
	}
	return r
}

// begin marks a node as being played.
func (s *State) begin(id NodeID, now float64) {
	s.Active[id] = &Attempt{StartedAt: now, WasCleared: s.GetStatus(id) == StatusCompleted}
	s.Status[id] = StatusInProgress
	s.Record(id).Attempts++
}

// finish marks a node completed and folds result into its record.
func (s *State) finish(id NodeID, res Result) {
	delete(s.Active, id)
	s.Status[id] = StatusCompleted
	r := s.Record(id)
	r.Clears++
	if res.Score > r.BestScore {
		r.BestScore = res.Score
	}
	r.BonusComplete = r.BonusComplete || res.BonusComplete
}

// abandon returns a node to the status it had before the attempt.
func (s *State) abandon(id NodeID) {
	prev := StatusAvailable
	if a := s.Active[id]; a != nil && a.WasCleared {
		prev = StatusCompleted
	}
	delete(s.Active, id)
	s.Status[id] = prev
}

// Clone creates a deep copy of the state.
func (s *State) Clone() *State {
	clone := NewState()
	for id, status := range s.Status {
		clone.Status[id] = status
	}
	for id, a := range s.Active {
		cp := *a
		clone.Active[id] = &cp
	}
	for id, r := range s.Records {
		cp := *r
		clone.Records[id] = &cp
	}
	return clone
}

// Snapshot returns a JSON encoding of the state for persistence. Attempts in
// flight are not persisted.
func (s *State) Snapshot() ([]byte, error) {
	clone := s.Clone()
	for id := range clone.Active {
		clone.abandon(id)
	}
	return json.Marshal(clone)
}

// LoadSnapshot restores state from a JSON snapshot.
func LoadSnapshot(data []byte) (*State, error) {
	state := NewState()
	if err := json.Unmarshal(data, state); err != nil {
		return nil, err
	}
	if state.Status == nil {
		state.Status = make(map[NodeID]Status)
	}
	if state.Active == nil {
		state.Active = make(map[NodeID]*Attempt)
	}
	if state.Records == nil {
		state.Records = make(map[NodeID]*Record)
	}
	return state, nil
}
