package dag

// EvalResult contains the results of evaluating the DAG state.
type EvalResult struct {
	StatusUpdates map[NodeID]Status // nodes whose status changed
	AutoComplete  []NodeID          // auto nodes that just became available
}

// Evaluator compares the state against the graph and reports locked ->
// available transitions. Auto nodes that become available are listed in
// topological order so gates resolve before the unlocks behind them.
//
// The evaluator is pure: it doesn't mutate state, only reports what should change.
func Evaluator(graph *Graph, state *State) *EvalResult {
	result := &EvalResult{
		StatusUpdates: make(map[NodeID]Status),
	}

	for _, nodeID := range graph.TopoOrder {
		node := graph.Nodes[nodeID]
		current := state.GetStatus(nodeID)
		if current == StatusCompleted || current == StatusInProgress {
			continue
		}

		met := true
		for _, reqID := range node.Requires {
			if state.GetStatus(reqID) != StatusCompleted {
				met = false
				break
			}
		}

		switch {
		case met && current != StatusAvailable:
			result.StatusUpdates[nodeID] = StatusAvailable
			if node.Auto {
				result.AutoComplete = append(result.AutoComplete, nodeID)
			}
		case met && node.Auto:
			result.AutoComplete = append(result.AutoComplete, nodeID)
		case !met && current == StatusAvailable:
			result.StatusUpdates[nodeID] = StatusLocked
		}
	}

	return result
}

// ApplyEvalResult applies status updates to the state. Auto nodes are left
// for Settle so their effects fire.
func ApplyEvalResult(state *State, result *EvalResult) {
	for nodeID, newStatus := range result.StatusUpdates {
		state.SetStatus(nodeID, newStatus)
	}
}

// Settle evaluates until no auto node remains pending, completing each one
// and firing its effects. It returns the auto nodes it completed.
func Settle(graph *Graph, state *State, effects Effects) []NodeID {
	var done []NodeID
	for {
		result := Evaluator(graph, state)
		ApplyEvalResult(state, result)
		if len(result.AutoComplete) == 0 {
			return done
		}
		for _, id := range result.AutoComplete {
			state.finish(id, Result{})
			effects.OnComplete(id, graph.Nodes[id])
			done = append(done, id)
		}
	}
}
