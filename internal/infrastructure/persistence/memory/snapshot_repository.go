// Package memory provides in-memory implementations of domain repositories.
package memory

import (
	"context"
	"sync"

	apperrors "github.com/yarwhq/yarw/internal/application/errors"
	"github.com/yarwhq/yarw/internal/domain/entities"
	"github.com/yarwhq/yarw/internal/domain/repositories"
	"github.com/yarwhq/yarw/internal/infrastructure/persistence/codec"
)

// Ensure interface compliance
var _ repositories.ProfileSnapshotRepository = (*SnapshotRepository)(nil)

// SnapshotRepository keeps the encoded snapshot in memory.
// Useful for testing and ephemeral storage. It goes through the same codec as
// the on-disk repository, so a loaded set never aliases a saved one.
type SnapshotRepository struct {
	saveErr error
	loadErr error
	data    []byte
	saves   int
	mu      sync.RWMutex
}

// NewSnapshotRepository creates a new in-memory repository with nothing stored.
func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{}
}

// Load decodes the stored snapshot, or returns an empty set.
func (r *SnapshotRepository) Load(_ context.Context) (*entities.ProfileSet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.loadErr != nil {
		return nil, apperrors.NewStorageError("load", "memory", r.loadErr)
	}
	if r.data == nil {
		return entities.NewProfileSet(), nil
	}
	set, err := codec.Decode(r.data)
	if err != nil {
		return nil, apperrors.NewStorageError("decode", "memory", err)
	}
	return set, nil
}

// Save encodes and stores set, replacing any previous snapshot.
func (r *SnapshotRepository) Save(_ context.Context, set *entities.ProfileSet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.saveErr != nil {
		return apperrors.NewStorageError("save", "memory", r.saveErr)
	}
	data, err := codec.Encode(set)
	if err != nil {
		return apperrors.NewStorageError("encode", "memory", err)
	}
	r.data = data
	r.saves++
	return nil
}

// FailSaves makes every following Save fail with err. Pass nil to recover.
func (r *SnapshotRepository) FailSaves(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveErr = err
}

// FailLoads makes every following Load fail with err. Pass nil to recover.
func (r *SnapshotRepository) FailLoads(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loadErr = err
}

// SetRaw replaces the stored bytes without going through the codec.
func (r *SnapshotRepository) SetRaw(data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append([]byte(nil), data...)
}

// SaveCount returns how many saves succeeded.
func (r *SnapshotRepository) SaveCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.saves
}
