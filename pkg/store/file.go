package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/matzehuels/architectus/pkg/errors"
	"github.com/matzehuels/architectus/pkg/plan"
)

// FileStore keeps one JSON file per plan in a directory.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a file-based plan store.
// If baseDir is empty, defaults to ~/.config/architectus/plans/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeStorage, err, "locate config dir")
		}
		baseDir = filepath.Join(dir, "architectus", "plans")
	}
	if err := os.MkdirAll(baseDir, 0o700); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "create plan dir")
	}
	return &FileStore{baseDir: baseDir}, nil
}

// Path returns the directory holding plan files.
func (s *FileStore) Path() string { return s.baseDir }

func (s *FileStore) planPath(id string) string {
	return filepath.Join(s.baseDir, id+".json")
}

func (s *FileStore) Save(_ context.Context, snap *plan.Snapshot) (string, error) {
	if err := prepare(snap); err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "marshal plan")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.WriteFile(s.planPath(snap.ID), data, 0o600); err != nil {
		return "", errors.Wrap(errors.ErrCodeStorage, err, "write plan file")
	}
	return snap.ID, nil
}

func (s *FileStore) Get(_ context.Context, id string) (*plan.Snapshot, error) {
	if err := errors.ValidatePlanID(id); err != nil {
		return nil, notFound(id)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read(s.planPath(id), id)
}

func (s *FileStore) read(path, id string) (*plan.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, notFound(id)
		}
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "read plan file")
	}
	var snap plan.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse plan %s", id)
	}
	return &snap, nil
}

// List reads every plan file; files that fail to parse are skipped.
func (s *FileStore) List(_ context.Context, limit int) ([]*plan.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "read plan dir")
	}
	var out []*plan.Snapshot
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		id := entry.Name()[:len(entry.Name())-len(".json")]
		snap, err := s.read(filepath.Join(s.baseDir, entry.Name()), id)
		if err != nil {
			continue
		}
		out = append(out, snap)
	}
	sortNewestFirst(out)
	return out[:min(len(out), listLimit(limit))], nil
}

func (s *FileStore) Delete(_ context.Context, id string) error {
	if errors.ValidatePlanID(id) != nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.planPath(id)); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeStorage, err, "remove plan file")
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

var _ Store = (*FileStore)(nil)
