package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apell0/managerspelet/internal/core"
	"github.com/apell0/managerspelet/internal/world"
)

// JSONStore is the always-available CareerStore backend: one JSON file per
// career under SaveDir, written by temp-file-plus-rename so a save is never
// observed half-written (spec §5's persistence guarantee).
type JSONStore struct {
	SaveDir string
}

// NewJSONStore creates a JSONStore rooted at dir, creating it if absent.
func NewJSONStore(dir string) (*JSONStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create save directory: %w", err)
	}
	return &JSONStore{SaveDir: dir}, nil
}

func (s *JSONStore) path(careerID string) string {
	return filepath.Join(s.SaveDir, careerID+".json")
}

// Load reads and decodes the career file, healing and validating the
// resulting world before returning it.
func (s *JSONStore) Load(ctx context.Context, careerID string) (*world.GameState, error) {
	data, err := os.ReadFile(s.path(careerID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, core.NewNotFoundError("career", careerID)
		}
		return nil, fmt.Errorf("failed to read career %s: %w", careerID, err)
	}

	var w world.GameState
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, core.NewCorruptError(fmt.Sprintf("career %s: %v", careerID, err))
	}
	w.EnsureContainers()
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &w, nil
}

// Save atomically replaces the career file: it writes to a sibling temp
// file and renames over the destination, so a crash mid-write never leaves
// a truncated save on disk.
func (s *JSONStore) Save(ctx context.Context, careerID string, w *world.GameState) error {
	if err := os.MkdirAll(s.SaveDir, 0o755); err != nil {
		return fmt.Errorf("failed to create save directory: %w", err)
	}

	data, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal career %s: %w", careerID, err)
	}

	dest := s.path(careerID)
	tmp, err := os.CreateTemp(s.SaveDir, ".tmp-"+careerID+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp save file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write career %s: %w", careerID, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync career %s: %w", careerID, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp save file: %w", err)
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		return fmt.Errorf("failed to finalize career %s: %w", careerID, err)
	}
	return nil
}

// List returns every career id with a save file under SaveDir.
func (s *JSONStore) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.SaveDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list save directory: %w", err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") || strings.HasPrefix(e.Name(), ".tmp-") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ".json"))
	}
	return ids, nil
}

// Delete removes a career's save file.
func (s *JSONStore) Delete(ctx context.Context, careerID string) error {
	if err := os.Remove(s.path(careerID)); err != nil {
		if os.IsNotExist(err) {
			return core.NewNotFoundError("career", careerID)
		}
		return fmt.Errorf("failed to delete career %s: %w", careerID, err)
	}
	return nil
}
