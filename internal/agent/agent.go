// Package agent runs the read-decide-persist-emit loop against the
// simulator's stdio protocol.
package agent

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/mutationsim/agent/internal/config"
	"github.com/mutationsim/agent/internal/memory"
	"github.com/mutationsim/agent/internal/policy"
	"github.com/mutationsim/agent/internal/protocol"
)

// maxLineSize bounds a single observation line (1 MiB).
const maxLineSize = 1 << 20

// Agent represents a single simulation participant
type Agent struct {
	cfg *config.Config

	store  *memory.Store
	policy policy.Policy

	logger zerolog.Logger
}

// New creates a new agent instance
func New(cfg *config.Config, logger zerolog.Logger) *Agent {
	return &Agent{
		cfg:    cfg,
		store:  memory.NewStore(cfg.MemoryDir),
		policy: policy.NewDefensive(),
		logger: logger,
	}
}

// Run starts the agent main loop: one observation line in, one action
// line out, memory persisted between the two. Returns nil when the input
// stream ends or the turn limit is reached.
func (a *Agent) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	mem := a.store.Load(a.cfg.AgentID)
	a.logger.Info().
		Int("turns_played", mem.TurnsPlayed).
		Str("memory_file", a.store.Path(a.cfg.AgentID)).
		Msg("memory loaded")

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	w := bufio.NewWriter(out)

	turns := 0
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			a.logger.Info().Msg("context cancelled, stopping agent")
			return ctx.Err()
		default:
		}

		act := a.step(scanner.Bytes(), mem)
		if err := a.emit(w, act); err != nil {
			return fmt.Errorf("write action: %w", err)
		}

		turns++
		if a.cfg.MaxTurns > 0 && turns >= a.cfg.MaxTurns {
			a.logger.Info().Int("turns", turns).Msg("reached maximum turns, stopping")
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read observation: %w", err)
	}

	a.logger.Info().Int("turns", turns).Msg("input stream closed")
	return nil
}

// step decides one turn. Any failure produces the fallback rest action
// rather than skipping the turn or stopping the loop.
func (a *Agent) step(line []byte, mem *memory.Memory) protocol.Action {
	obs, err := protocol.DecodeObservation(line)
	if err != nil {
		a.logger.Warn().Err(err).Msg("turn failed, emitting fallback action")
		return protocol.Fallback(err)
	}

	act, err := a.policy.Decide(obs, mem)
	if err != nil {
		a.logger.Warn().Err(err).Msg("turn failed, emitting fallback action")
		return protocol.Fallback(err)
	}

	// Best-effort persistence: a failed save never interrupts the loop.
	if err := a.store.Save(a.cfg.AgentID, mem); err != nil {
		a.logger.Warn().Err(err).Msg("memory save failed")
	}

	a.logger.Debug().
		Int("tick", obs.Tick).
		Int("turn", mem.TurnsPlayed).
		Int("energy", obs.Energy).
		Str("action", act.Action).
		Str("target", act.Target).
		Msg("turn decided")
	return act
}

// emit writes one action line and flushes it immediately so the
// simulator can consume actions turn-by-turn.
func (a *Agent) emit(w *bufio.Writer, act protocol.Action) error {
	data, err := json.Marshal(act)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if err := w.WriteByte('\n'); err != nil {
		return err
	}
	return w.Flush()
}
