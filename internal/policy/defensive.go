package policy

import (
	"sort"

	"github.com/mutationsim/agent/internal/memory"
	"github.com/mutationsim/agent/internal/protocol"
)

// Defensive implements a survival-first strategy: replicate before dying
// when cornered, replicate when energy is plentiful, otherwise strike the
// weakest neighbor that still poses a danger, and rest when nothing does.
type Defensive struct{}

// NewDefensive creates a defensive policy.
func NewDefensive() *Defensive {
	return &Defensive{}
}

// Decide implements Policy. Branches are evaluated in strict priority
// order; each branch increments only its own counter.
func (p *Defensive) Decide(obs *protocol.WorldObservation, mem *memory.Memory) (protocol.Action, error) {
	// Bookkeeping happens before any branch is taken.
	mem.TurnsPlayed++
	mem.RecordVisit(obs.Position)

	// A threat is any neighbor at least as energetic as we are.
	threats := 0
	for _, n := range obs.Neighbors {
		if n.Energy >= obs.Energy {
			threats++
		}
	}

	switch {
	case threats >= 2 && obs.Energy <= 4:
		// Cornered and low: replicate before dying if there is enough
		// energy left to split, otherwise hunker down.
		if obs.Energy >= 3 {
			mem.EmergencyReplications++
			return protocol.Action{Action: protocol.ActionReplicate}, nil
		}
		return protocol.Action{Action: protocol.ActionRest}, nil

	case obs.Energy >= 10:
		mem.ReplicationsMade++
		return protocol.Action{Action: protocol.ActionReplicate}, nil

	case threats > 0:
		target, ok := p.weakestThreatening(obs)
		if !ok {
			// Only possible when every counted threat is at zero energy
			// (which requires our own energy to be zero as well).
			return protocol.Action{Action: protocol.ActionRest}, nil
		}
		mem.DefensiveAttacks++
		return protocol.Action{Action: protocol.ActionAttack, Target: target}, nil

	default:
		mem.PeacefulRests++
		return protocol.Action{Action: protocol.ActionRest}, nil
	}
}

// weakestThreatening returns the direction of the lowest-energy live
// neighbor within 2 energy of us or above. Directions are scanned in
// sorted order so ties resolve deterministically.
func (p *Defensive) weakestThreatening(obs *protocol.WorldObservation) (string, bool) {
	dirs := make([]string, 0, len(obs.Neighbors))
	for d := range obs.Neighbors {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)

	target := ""
	targetEnergy := 0
	for _, d := range dirs {
		n := obs.Neighbors[d]
		if n.Energy <= 0 || n.Energy < obs.Energy-2 {
			continue
		}
		if target == "" || n.Energy < targetEnergy {
			target = d
			targetEnergy = n.Energy
		}
	}
	return target, target != ""
}
