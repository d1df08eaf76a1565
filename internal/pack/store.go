package pack

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// ErrUnavailable is returned when the runtime pack document exists but
// cannot be read or written. A missing runtime document is not an error;
// it means the default pack is in effect.
var ErrUnavailable = errors.New("prompt pack store unavailable")

// Store provides read/update access to the prompt pack. Reads return the
// runtime document when present and the embedded default otherwise.
// Updates are read-modify-write with last-write-wins semantics; the write
// itself is atomic at the document level (temp file + rename).
type Store struct {
	runtimePath string
	defaults    PromptPack
	logger      *slog.Logger

	mu sync.Mutex // serializes Set within this process
}

// NewStore creates a store persisting the runtime pack at runtimePath.
func NewStore(runtimePath string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	defaults, err := Default()
	if err != nil {
		return nil, err
	}
	return &Store{
		runtimePath: runtimePath,
		defaults:    defaults,
		logger:      logger,
	}, nil
}

// Get returns the current pack.
func (s *Store) Get() (PromptPack, error) {
	data, err := os.ReadFile(s.runtimePath)
	if errors.Is(err, fs.ErrNotExist) {
		return s.defaults.clone(), nil
	}
	if err != nil {
		return PromptPack{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var p PromptPack
	if err := json.Unmarshal(data, &p); err != nil {
		return PromptPack{}, fmt.Errorf("%w: runtime pack is corrupt: %v", ErrUnavailable, err)
	}
	return p, nil
}

// Set applies update to the current pack and persists the result, returning
// the new pack. Concurrent Set calls from other processes are
// last-write-wins; within this process they are serialized.
func (s *Store) Set(update func(PromptPack) PromptPack) (PromptPack, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, err := s.Get()
	if err != nil {
		return PromptPack{}, err
	}

	next := update(prev)
	if err := s.write(next); err != nil {
		return PromptPack{}, err
	}

	s.logger.Info("prompt pack updated",
		"version", next.Version,
		"templates", len(next.Templates))
	return next, nil
}

// ApplyPatch merges an admin-supplied partial pack over the current one.
func (s *Store) ApplyPatch(patch Patch) (PromptPack, error) {
	return s.Set(func(prev PromptPack) PromptPack {
		return patch.Apply(prev, time.Now().UTC())
	})
}

func (s *Store) write(p PromptPack) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	dir := filepath.Dir(s.runtimePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	tmp, err := os.CreateTemp(dir, ".pack-*.json")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := os.Rename(tmpName, s.runtimePath); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
