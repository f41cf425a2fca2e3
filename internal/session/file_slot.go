package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ripple/internal/models"
)

// fileSlot stores the session as a small JSON document on disk. Writes go
// through a temp file and rename so a crash never leaves a torn record.
type fileSlot struct {
	path string
}

// NewFileSlot returns a Slot persisting to the given file path.
func NewFileSlot(path string) Slot {
	return &fileSlot{path: path}
}

func (s *fileSlot) Load(_ context.Context) (*models.Identity, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session slot: %w", err)
	}

	var id models.Identity
	if err := json.Unmarshal(data, &id); err != nil {
		return nil, fmt.Errorf("decode session slot: %w", err)
	}
	return &id, nil
}

func (s *fileSlot) Save(_ context.Context, id models.Identity) error {
	data, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("encode session slot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("create session temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write session slot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close session temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace session slot: %w", err)
	}
	return nil
}

func (s *fileSlot) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear session slot: %w", err)
	}
	return nil
}
