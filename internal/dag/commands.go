package dag

import (
	"errors"
	"fmt"
)

var (
	// ErrNodeNotAvailable is returned when trying to start a node that isn't available.
	ErrNodeNotAvailable = errors.New("dag: node not available")
	// ErrNodeNotInProgress is returned when trying to complete a node that isn't in progress.
	ErrNodeNotInProgress = errors.New("dag: node not in progress")
	// ErrAlreadyInProgress is returned when trying to start a node already in progress.
	ErrAlreadyInProgress = errors.New("dag: node already in progress")
	// ErrNotPlayable is returned when starting a node that is not a mission.
	ErrNotPlayable = errors.New("dag: node is not playable")
)

// Effects is an interface for side effects triggered by DAG events.
type Effects interface {
	// OnStart is called when a mission attempt starts.
	OnStart(nodeID NodeID, node *Node)
	// OnComplete is called when a node completes.
	OnComplete(nodeID NodeID, node *Node)
	// OnCancel is called when a mission attempt is abandoned.
	OnCancel(nodeID NodeID, node *Node)
}

// NoOpEffects is a default implementation that does nothing.
type NoOpEffects struct{}

func (e *NoOpEffects) OnStart(nodeID NodeID, node *Node)    {}
func (e *NoOpEffects) OnComplete(nodeID NodeID, node *Node) {}
func (e *NoOpEffects) OnCancel(nodeID NodeID, node *Node)   {}

// Start begins an attempt at a mission node. Completed missions may be
// replayed; locked ones may not.
func Start(graph *Graph, state *State, nodeID NodeID, now float64, effects Effects) error {
	node := graph.GetNode(nodeID)
	if node == nil {
		return fmt.Errorf("%w: %s", ErrNodeNotFound, nodeID)
	}
	if node.Kind != NodeKindMission {
		return fmt.Errorf("%w: %s (%s)", ErrNotPlayable, nodeID, node.Kind)
	}

	switch status := state.GetStatus(nodeID); status {
	case StatusAvailable, StatusCompleted:
	case StatusInProgress:
		return fmt.Errorf("%w: %s", ErrAlreadyInProgress, nodeID)
	default:
		return fmt.Errorf("%w: %s (status: %s)", ErrNodeNotAvailable, nodeID, status)
	}

	state.begin(nodeID, now)
	effects.OnStart(nodeID, node)
	return nil
}

// Complete closes a running attempt with its result and settles any gates
// the completion opens.
func Complete(graph *Graph, state *State, nodeID NodeID, res Result, effects Effects) error {
	node := graph.GetNode(nodeID)
	if node == nil {
		return fmt.Errorf("%w: %s", ErrNodeNotFound, nodeID)
	}

	if status := state.GetStatus(nodeID); status != StatusInProgress {
		return fmt.Errorf("%w: %s (status: %s)", ErrNodeNotInProgress, nodeID, status)
	}

	state.finish(nodeID, res)
	effects.OnComplete(nodeID, node)
	Settle(graph, state, effects)
	return nil
}

// Cancel abandons a running attempt. If nodeID is empty, every running
// attempt is abandoned. Nodes that are not running are left alone.
func Cancel(graph *Graph, state *State, nodeID NodeID, effects Effects) error {
	if nodeID == "" {
		for id := range state.Active {
			if node := graph.GetNode(id); node != nil {
				state.abandon(id)
				effects.OnCancel(id, node)
			}
		}
		return nil
	}

	node := graph.GetNode(nodeID)
	if node == nil {
		return fmt.Errorf("%w: %s", ErrNodeNotFound, nodeID)
	}
	if state.GetStatus(nodeID) != StatusInProgress {
		return nil
	}
	state.abandon(nodeID)
	effects.OnCancel(nodeID, node)
	return nil
}

// CanStart returns true if a mission node can be started in the current state.
func CanStart(graph *Graph, state *State, nodeID NodeID) bool {
	node := graph.GetNode(nodeID)
	if node == nil || node.Kind != NodeKindMission {
		return false
	}
	status := state.GetStatus(nodeID)
	return status == StatusAvailable || status == StatusCompleted
}
