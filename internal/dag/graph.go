// Package dag implements a small deterministic DAG engine for campaign
// progression: missions unlock in order, act gates close each act and ship
// unlocks hang off the gates.
//
// All transitions are pure with respect to (graph, state). The graph is
// server-authoritative and validated at boot time.
package dag

import (
	"errors"
	"fmt"
)

// NodeID uniquely identifies a node in the graph.
type NodeID string

// NodeKind categorizes the node type.
type NodeKind string

const (
	// NodeKindMission is a playable mission.
	NodeKindMission NodeKind = "mission"
	// NodeKindActGate closes an act once its last mission is cleared.
	NodeKindActGate NodeKind = "act_gate"
	// NodeKindShipUnlock grants a ship when its gate completes.
	NodeKindShipUnlock NodeKind = "ship_unlock"
)

// EffectType describes what completing a node grants.
type EffectType int

const (
	EffectShipUnlock EffectType = iota
	EffectActUnlock
)

// Effect is a reward attached to a node.
type Effect struct {
	Type  EffectType `json:"type"`
	Value string     `json:"value"`
}

// Node represents a single node in the DAG.
type Node struct {
	ID       NodeID            `json:"id"`
	Kind     NodeKind          `json:"kind"`
	Label    string            `json:"label"`
	Auto     bool              `json:"auto"`     // completes as soon as it becomes available
	Payload  map[string]string `json:"payload"`  // arbitrary key-value data
	Requires []NodeID          `json:"requires"` // dependencies (must be completed)
	Effects  []Effect          `json:"effects,omitempty"`
}

// Graph represents the complete DAG.
type Graph struct {
	Nodes      map[NodeID]*Node    // all nodes indexed by ID
	RequiresIn map[NodeID][]NodeID // reverse index: which nodes require this one
	TopoOrder  []NodeID            // topologically sorted node IDs
}

var (
	// ErrCycleDetected is returned when a cycle is detected in the graph.
	ErrCycleDetected = errors.New("dag: cycle detected in graph")
	// ErrNodeNotFound is returned when a referenced node doesn't exist.
	ErrNodeNotFound = errors.New("dag: node not found")
	// ErrDuplicateNode is returned when two nodes share an id.
	ErrDuplicateNode = errors.New("dag: duplicate node")
)

// defaultGraph is the singleton graph instance.
var defaultGraph *Graph

// Build validates nodes and returns the resulting graph.
func Build(nodes []*Node) (*Graph, error) {
	g := &Graph{
		Nodes:      make(map[NodeID]*Node),
		RequiresIn: make(map[NodeID][]NodeID),
	}
	for _, node := range nodes {
		if _, exists := g.Nodes[node.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateNode, node.ID)
		}
		g.Nodes[node.ID] = node
	}
	for _, node := range nodes {
		for _, reqID := range node.Requires {
			if _, exists := g.Nodes[reqID]; !exists {
				return nil, fmt.Errorf("%w: node %s requires missing node %s", ErrNodeNotFound, node.ID, reqID)
			}
			g.RequiresIn[reqID] = append(g.RequiresIn[reqID], node.ID)
		}
	}
	order, err := g.topoSort(nodes)
	if err != nil {
		return nil, err
	}
	g.TopoOrder = order
	return g, nil
}

// Init builds the global graph from nodes.
func Init(nodes []*Node) error {
	g, err := Build(nodes)
	if err != nil {
		return err
	}
	defaultGraph = g
	return nil
}

// GetGraph returns the initialized global graph.
func GetGraph() *Graph {
	return defaultGraph
}

// GetNode returns a node by ID, or nil if not found.
func (g *Graph) GetNode(id NodeID) *Node {
	return g.Nodes[id]
}

// topoSort runs Kahn's algorithm seeded in declaration order so the result
// is stable across runs.
func (g *Graph) topoSort(nodes []*Node) ([]NodeID, error) {
	inDegree := make(map[NodeID]int, len(nodes))
	var queue []NodeID
	for _, node := range nodes {
		inDegree[node.ID] = len(node.Requires)
		if len(node.Requires) == 0 {
			queue = append(queue, node.ID)
		}
	}

	var order []NodeID
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		order = append(order, curr)
		for _, depID := range g.RequiresIn[curr] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if len(order) != len(g.Nodes) {
		return nil, ErrCycleDetected
	}
	return order, nil
}
