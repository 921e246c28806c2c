// Package repositories defines interfaces for domain persistence.
package repositories

import (
	"context"

	"github.com/yarwhq/yarw/internal/domain/entities"
)

// ProfileSnapshotRepository persists the whole profile collection as one snapshot.
// There are no per-profile operations: every Save replaces the previous snapshot
// atomically, and Load returns an empty set when nothing was saved yet.
type ProfileSnapshotRepository interface {
	// Load reads the latest durable snapshot.
	Load(ctx context.Context) (*entities.ProfileSet, error)

	// Save replaces the stored snapshot and returns once it is durable.
	Save(ctx context.Context, set *entities.ProfileSet) error
}
