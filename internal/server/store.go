package server

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/LoocasGoose/BetaGomoku/gomoku"
)

// RecordStore keeps saved games as pretty-printed JSON files in one
// directory. File names are generated; callers address records by name.
type RecordStore struct {
	dir string
}

func NewRecordStore(dir string) (*RecordStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create records dir: %w", err)
	}
	return &RecordStore{dir: dir}, nil
}

// Save writes the record and returns its name.
func (st *RecordStore) Save(rec gomoku.Record) (string, error) {
	data, err := rec.MarshalText()
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("game-%s.json", time.Now().Format("20060102-150405.000"))
	if err := os.WriteFile(filepath.Join(st.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write record: %w", err)
	}
	return name, nil
}

// List returns saved record names, newest first. Names embed a timestamp,
// so reverse lexical order is reverse chronological.
func (st *RecordStore) List() ([]string, error) {
	entries, err := os.ReadDir(st.dir)
	if err != nil {
		return nil, fmt.Errorf("read records dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

func (st *RecordStore) Load(name string) (gomoku.Record, error) {
	// Reject anything that could escape the directory.
	if name != filepath.Base(name) || name == "." || name == ".." {
		return gomoku.Record{}, fmt.Errorf("invalid record name %q", name)
	}
	data, err := os.ReadFile(filepath.Join(st.dir, name))
	if err != nil {
		return gomoku.Record{}, fmt.Errorf("read record: %w", err)
	}
	return gomoku.ParseRecord(data)
}
