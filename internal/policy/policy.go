// Package policy provides action selection strategies for the agent
package policy

import (
	"github.com/mutationsim/agent/internal/memory"
	"github.com/mutationsim/agent/internal/protocol"
)

// Policy interface for action selection
type Policy interface {
	// Decide chooses an action for the current observation and applies
	// the turn's bookkeeping to mem. Deterministic given identical inputs.
	Decide(obs *protocol.WorldObservation, mem *memory.Memory) (protocol.Action, error)
}
