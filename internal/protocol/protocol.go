// Package protocol defines the wire types exchanged with the simulator:
// one WorldObservation JSON object per stdin line, one Action JSON object
// per stdout line.
package protocol

import (
	"encoding/json"
	"fmt"
)

// Action names accepted by the simulator.
const (
	ActionRest      = "rest"
	ActionReplicate = "replicate"
	ActionAttack    = "attack"
)

// Neighbor describes an adjacent entity as seen from the agent's cell.
type Neighbor struct {
	Energy  int    `json:"energy"`
	AgentID string `json:"agent_id,omitempty"`
}

// WorldObservation is the per-turn snapshot of world state visible to the
// agent. Position and WorldSize are kept opaque; the simulator sends
// coordinate arrays but the agent never does arithmetic on them.
type WorldObservation struct {
	Tick      int                 `json:"tick,omitempty"`
	AgentID   string              `json:"agent_id,omitempty"`
	Position  json.RawMessage     `json:"position"`
	Energy    int                 `json:"energy"`
	WorldSize json.RawMessage     `json:"world_size,omitempty"`
	Neighbors map[string]Neighbor `json:"neighbors"`

	Generation int `json:"generation,omitempty"`
	TimeoutMS  int `json:"timeout_ms,omitempty"`
}

// Action is the agent's reply for one turn. Target is set only for
// attacks; Message only on the fallback rest emitted after an internal
// failure.
type Action struct {
	Action  string `json:"action"`
	Target  string `json:"target,omitempty"`
	Message string `json:"message,omitempty"`
}

// DecodeObservation parses and validates one observation line.
func DecodeObservation(line []byte) (*WorldObservation, error) {
	var raw any
	if err := json.Unmarshal(line, &raw); err != nil {
		return nil, fmt.Errorf("parse observation: %w", err)
	}
	if err := obsSchema.Validate(raw); err != nil {
		return nil, fmt.Errorf("invalid observation: %w", err)
	}
	var obs WorldObservation
	if err := json.Unmarshal(line, &obs); err != nil {
		return nil, fmt.Errorf("decode observation: %w", err)
	}
	return &obs, nil
}

// Fallback builds the rest action emitted when a turn cannot be decided
// normally. The turn is answered rather than skipped.
func Fallback(err error) Action {
	return Action{
		Action:  ActionRest,
		Message: fmt.Sprintf("Error: %v", err),
	}
}
