package game

import (
	"fmt"
	"strconv"

	"EncounterEngine/internal/dag"
)

// actShips are the hulls granted when each act is closed.
var actShips = map[Act]string{
	Act1: "Wolf",
	Act2: "Jaguar",
	Act3: "Sleipnir",
}

// CampaignNodes builds the progression graph nodes from the mission tables.
func CampaignNodes() []*dag.Node {
	var acts []dag.ActSpec
	for act := Act1; act <= Act3; act++ {
		spec := dag.ActSpec{Number: int(act), Name: act.Name(), Ship: actShips[act]}
		for _, m := range MissionRegistry[act] {
			spec.Missions = append(spec.Missions, dag.MissionSpec{ID: m.ID, Label: m.Name})
		}
		acts = append(acts, spec)
	}
	return dag.SeedCampaignNodes(acts)
}

// InitProgression installs the campaign graph as the global DAG.
func InitProgression() error {
	return dag.Init(CampaignNodes())
}

// ProgressionEffects turns DAG completions into output events.
type ProgressionEffects struct {
	Ships  []string
	events []Event
}

func (e *ProgressionEffects) OnStart(nodeID dag.NodeID, node *dag.Node) {}

func (e *ProgressionEffects) OnComplete(nodeID dag.NodeID, node *dag.Node) {
	if node == nil || node.Kind != dag.NodeKindShipUnlock {
		return
	}
	ship := node.Payload["ship"]
	act := 0
	if gate := node.Requires; len(gate) == 1 {
		if g := dag.GetGraph(); g != nil {
			if gn := g.GetNode(gate[0]); gn != nil {
				act, _ = strconv.Atoi(gn.Payload["act"])
			}
		}
	}
	e.Ships = append(e.Ships, ship)
	e.events = append(e.events, Event{Type: EventShipUnlocked, Payload: ShipUnlocked{Ship: ship, Act: act}})
}

func (e *ProgressionEffects) OnCancel(nodeID dag.NodeID, node *dag.Node) {}

// Progression is one player's position in the campaign unlock graph.
type Progression struct {
	Graph *dag.Graph
	State *dag.State
}

// NewProgression attaches state (nil for a fresh player) to the global graph.
func NewProgression(state *dag.State) (*Progression, error) {
	graph := dag.GetGraph()
	if graph == nil {
		return nil, fmt.Errorf("progression graph not initialized")
	}
	if state == nil {
		state = dag.NewState()
	}
	dag.Settle(graph, state, &dag.NoOpEffects{})
	return &Progression{Graph: graph, State: state}, nil
}

// CanStart reports whether the mission is unlocked.
func (p *Progression) CanStart(missionID string) bool {
	return dag.CanStart(p.Graph, p.State, dag.MissionNodeID(missionID))
}

// Begin records an attempt at the mission.
func (p *Progression) Begin(missionID string, now float64) error {
	return dag.Start(p.Graph, p.State, dag.MissionNodeID(missionID), now, &dag.NoOpEffects{})
}

// Finish records a cleared mission and returns any unlock events.
func (p *Progression) Finish(missionID string, score int64, bonus bool) ([]Event, error) {
	fx := &ProgressionEffects{}
	err := dag.Complete(p.Graph, p.State, dag.MissionNodeID(missionID), dag.Result{Score: score, BonusComplete: bonus}, fx)
	if err != nil {
		return nil, err
	}
	return fx.events, nil
}

// Abandon drops every running attempt.
func (p *Progression) Abandon() {
	_ = dag.Cancel(p.Graph, p.State, "", &dag.NoOpEffects{})
}

// UnlockedShips lists the ships granted so far, starting with the Rifter.
func (p *Progression) UnlockedShips() []string {
	ships := []string{"Rifter"}
	for act := Act1; act <= Act3; act++ {
		ship := actShips[act]
		if p.State.GetStatus(dag.ShipNodeID(ship)) == dag.StatusCompleted {
			ships = append(ships, ship)
		}
	}
	return ships
}

// Available lists the mission ids the player may start.
func (p *Progression) Available() []string {
	var out []string
	for act := Act1; act <= Act3; act++ {
		for _, m := range MissionRegistry[act] {
			if p.CanStart(m.ID) {
				out = append(out, m.ID)
			}
		}
	}
	return out
}
