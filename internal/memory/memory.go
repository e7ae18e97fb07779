// Package memory holds the agent's persistent state: a small JSON blob
// scoped to one agent identity, reloaded on restart.
package memory

import (
	"encoding/json"
)

// VisitHistory is the capacity of the positions_visited ring.
const VisitHistory = 20

// Memory accumulates across turns. Counters only ever increase;
// PositionsVisited keeps the most recent VisitHistory positions in
// chronological order, oldest evicted first.
type Memory struct {
	TurnsPlayed           int               `json:"turns_played"`
	PositionsVisited      []json.RawMessage `json:"positions_visited,omitempty"`
	ReplicationsMade      int               `json:"replications_made,omitempty"`
	EmergencyReplications int               `json:"emergency_replications,omitempty"`
	DefensiveAttacks      int               `json:"defensive_attacks,omitempty"`
	PeacefulRests         int               `json:"peaceful_rests,omitempty"`
}

// RecordVisit appends a position to the ring, evicting the oldest entry
// once the ring is full.
func (m *Memory) RecordVisit(pos json.RawMessage) {
	m.PositionsVisited = append(m.PositionsVisited, pos)
	if n := len(m.PositionsVisited); n > VisitHistory {
		m.PositionsVisited = m.PositionsVisited[n-VisitHistory:]
	}
}
