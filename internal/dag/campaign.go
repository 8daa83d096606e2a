package dag

import "strconv"

// MissionSpec is the slice of mission data the graph needs.
type MissionSpec struct {
	ID    string
	Label string
}

// ActSpec describes one act of the campaign.
type ActSpec struct {
	Number   int
	Name     string
	Missions []MissionSpec
	Ship     string // ship unlocked when the act is closed, empty for none
}

func MissionNodeID(missionID string) NodeID { return NodeID("mission." + missionID) }
func ActGateNodeID(act int) NodeID          { return NodeID("act." + strconv.Itoa(act) + ".gate") }
func ShipNodeID(ship string) NodeID         { return NodeID("ship." + ship) }

// SeedCampaignNodes chains every mission behind its predecessor. Each act
// ends in a gate that requires its last mission, and the first mission of the
// next act requires that gate. A ship unlock hangs off each gate.
func SeedCampaignNodes(acts []ActSpec) []*Node {
	var nodes []*Node
	var prev NodeID
	for _, act := range acts {
		for _, m := range act.Missions {
			id := MissionNodeID(m.ID)
			requires := []NodeID{}
			if prev != "" {
				requires = []NodeID{prev}
			}
			nodes = append(nodes, &Node{
				ID:       id,
				Kind:     NodeKindMission,
				Label:    m.Label,
				Payload:  map[string]string{"mission_id": m.ID, "act": strconv.Itoa(act.Number)},
				Requires: requires,
			})
			prev = id
		}
		if prev == "" {
			continue
		}
		gate := ActGateNodeID(act.Number)
		nodes = append(nodes, &Node{
			ID:       gate,
			Kind:     NodeKindActGate,
			Label:    act.Name,
			Auto:     true,
			Payload:  map[string]string{"act": strconv.Itoa(act.Number)},
			Requires: []NodeID{prev},
			Effects:  []Effect{{Type: EffectActUnlock, Value: strconv.Itoa(act.Number + 1)}},
		})
		if act.Ship != "" {
			nodes = append(nodes, &Node{
				ID:       ShipNodeID(act.Ship),
				Kind:     NodeKindShipUnlock,
				Label:    act.Ship,
				Auto:     true,
				Payload:  map[string]string{"ship": act.Ship},
				Requires: []NodeID{gate},
				Effects:  []Effect{{Type: EffectShipUnlock, Value: act.Ship}},
			})
		}
		prev = gate
	}
	return nodes
}
