package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LoocasGoose/BetaGomoku/gomoku"
)

func sampleRecord(t *testing.T) gomoku.Record {
	t.Helper()
	s := gomoku.NewGameState()
	require.NoError(t, s.Place(gomoku.Point{Row: 8, Col: 8}, gomoku.Black))
	require.NoError(t, s.Place(gomoku.Point{Row: 9, Col: 9}, gomoku.White))
	return gomoku.NewRecord(s, "alice", "bob")
}

func TestRecordStoreRoundTrip(t *testing.T) {
	store, err := NewRecordStore(t.TempDir())
	require.NoError(t, err)

	name, err := store.Save(sampleRecord(t))
	require.NoError(t, err)

	names, err := store.List()
	require.NoError(t, err)
	require.Contains(t, names, name)

	rec, err := store.Load(name)
	require.NoError(t, err)
	require.Equal(t, "alice", rec.Black)
	require.Equal(t, []string{"H8", "I9"}, rec.Moves)
}

func TestRecordStoreRejectsPathEscape(t *testing.T) {
	store, err := NewRecordStore(t.TempDir())
	require.NoError(t, err)
	for _, name := range []string{"../evil.json", "a/b.json", ".", ".."} {
		_, err := store.Load(name)
		require.Error(t, err, "name %q", name)
	}
}

func TestRecordStoreListsNewestFirst(t *testing.T) {
	dir := t.TempDir()
	store, err := NewRecordStore(dir)
	require.NoError(t, err)

	for _, name := range []string{
		"game-20250101-000000.000.json",
		"game-20250301-000000.000.json",
		"game-20250201-000000.000.json",
		"notes.txt",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644))
	}

	names, err := store.List()
	require.NoError(t, err)
	require.Equal(t, []string{
		"game-20250301-000000.000.json",
		"game-20250201-000000.000.json",
		"game-20250101-000000.000.json",
	}, names)
}

func TestRecordStoreLoadMissing(t *testing.T) {
	store, err := NewRecordStore(t.TempDir())
	require.NoError(t, err)
	_, err = store.Load("absent.json")
	require.Error(t, err)
}
