package memory

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	m := &Memory{
		TurnsPlayed:           7,
		PositionsVisited:      []json.RawMessage{json.RawMessage(`[1,2]`), json.RawMessage(`[2,2]`)},
		ReplicationsMade:      2,
		EmergencyReplications: 1,
		DefensiveAttacks:      3,
		PeacefulRests:         1,
	}
	require.NoError(t, store.Save("agent-7", m))

	loaded := store.Load("agent-7")
	assert.Equal(t, m.TurnsPlayed, loaded.TurnsPlayed)
	assert.Equal(t, m.ReplicationsMade, loaded.ReplicationsMade)
	assert.Equal(t, m.EmergencyReplications, loaded.EmergencyReplications)
	assert.Equal(t, m.DefensiveAttacks, loaded.DefensiveAttacks)
	assert.Equal(t, m.PeacefulRests, loaded.PeacefulRests)

	// Positions survive as JSON values; the indented file may reformat
	// the raw bytes.
	require.Len(t, loaded.PositionsVisited, 2)
	assert.JSONEq(t, `[1,2]`, string(loaded.PositionsVisited[0]))
	assert.JSONEq(t, `[2,2]`, string(loaded.PositionsVisited[1]))
}

func TestStore_LoadMissingYieldsEmpty(t *testing.T) {
	store := NewStore(t.TempDir())

	m := store.Load("never-saved")
	require.NotNil(t, m)
	assert.Equal(t, &Memory{}, m)
}

func TestStore_LoadCorruptYieldsEmpty(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	path := store.Path("agent-1")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`{"turns_played": "not a number`), 0o644))

	m := store.Load("agent-1")
	require.NotNil(t, m)
	assert.Equal(t, &Memory{}, m)
}

func TestStore_SaveOverwritesPriorState(t *testing.T) {
	store := NewStore(t.TempDir())

	require.NoError(t, store.Save("a", &Memory{TurnsPlayed: 1, PeacefulRests: 1}))
	require.NoError(t, store.Save("a", &Memory{TurnsPlayed: 2}))

	loaded := store.Load("a")
	assert.Equal(t, 2, loaded.TurnsPlayed)
	assert.Zero(t, loaded.PeacefulRests)
}

func TestStore_SaveReportsUnwritableDir(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "agents")
	require.NoError(t, os.WriteFile(blocker, []byte("in the way"), 0o644))

	// The identity directory cannot be created under a regular file.
	store := NewStore(blocker)
	err := store.Save("a", &Memory{TurnsPlayed: 1})
	assert.Error(t, err)
}

func TestStore_FileIsHumanReadableJSON(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, store.Save("a", &Memory{TurnsPlayed: 3}))

	data, err := os.ReadFile(store.Path("a"))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, float64(3), decoded["turns_played"])
	assert.Contains(t, string(data), "\n") // indented, not a single line
}

func TestMemory_RecordVisitEvictsOldest(t *testing.T) {
	m := &Memory{}
	for i := 0; i < VisitHistory+3; i++ {
		m.RecordVisit(json.RawMessage(`[0,0]`))
	}
	assert.Len(t, m.PositionsVisited, VisitHistory)
}
