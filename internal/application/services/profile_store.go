// Package services contains application use cases.
package services

import (
	"cmp"
	"context"
	"iter"
	"log/slog"
	"maps"
	"slices"

	apperrors "github.com/yarwhq/yarw/internal/application/errors"
	"github.com/yarwhq/yarw/internal/domain/entities"
	"github.com/yarwhq/yarw/internal/domain/repositories"
	"github.com/yarwhq/yarw/internal/domain/values"
)

// ProfileStore owns the in-memory mapping from ProfileID to Profile.
//
// Create, Update, Delete and SetDefaults only touch memory. Nothing is durable
// until Save writes the whole mapping back as one snapshot. Profiles handed in
// or out are copies, so callers never hold a reference into the store.
//
// A ProfileStore is not safe for concurrent mutation.
type ProfileStore struct {
	repo     repositories.ProfileSnapshotRepository
	logger   *slog.Logger
	profiles map[values.ProfileID]entities.Profile
	defaults entities.Defaults
	dirty    bool
}

// LoadProfileStore reads the latest snapshot from repo. When nothing has been
// saved yet the store starts empty. Repository failures are returned as is
// (a *apperrors.StorageError for the bundled repositories).
func LoadProfileStore(
	ctx context.Context,
	repo repositories.ProfileSnapshotRepository,
	logger *slog.Logger,
) (*ProfileStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	set, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug("profile store loaded", "profiles", set.Len())
	if set.Profiles == nil {
		set.Profiles = make(map[values.ProfileID]entities.Profile)
	}

	return &ProfileStore{
		repo:     repo,
		logger:   logger,
		profiles: set.Profiles,
		defaults: set.Defaults,
	}, nil
}

// Create stores a copy of profile under a fresh random ID and returns the ID.
func (s *ProfileStore) Create(profile entities.Profile) values.ProfileID {
	id := values.NewProfileID()
	s.profiles[id] = profile.Clone()
	s.dirty = true
	s.logger.Debug("profile created", "id", id.String(), "name", profile.Name)
	return id
}

// Get returns a copy of the profile stored under id.
func (s *ProfileStore) Get(id values.ProfileID) (entities.Profile, error) {
	p, ok := s.profiles[id]
	if !ok {
		return entities.Profile{}, apperrors.NewProfileNotFoundError(id)
	}
	return p.Clone(), nil
}

// Update replaces the whole profile stored under id. It never creates.
func (s *ProfileStore) Update(id values.ProfileID, profile entities.Profile) error {
	if _, ok := s.profiles[id]; !ok {
		return apperrors.NewProfileNotFoundError(id)
	}
	s.profiles[id] = profile.Clone()
	s.dirty = true
	s.logger.Debug("profile updated", "id", id.String(), "name", profile.Name)
	return nil
}

// Delete removes the profile stored under id.
func (s *ProfileStore) Delete(id values.ProfileID) error {
	if _, ok := s.profiles[id]; !ok {
		return apperrors.NewProfileNotFoundError(id)
	}
	delete(s.profiles, id)
	s.dirty = true
	s.logger.Debug("profile deleted", "id", id.String())
	return nil
}

// List returns every ID. The order is unspecified.
func (s *ProfileStore) List() []values.ProfileID {
	return slices.Collect(maps.Keys(s.profiles))
}

// All yields copies of every profile ordered by name, then by ID.
func (s *ProfileStore) All() iter.Seq2[values.ProfileID, entities.Profile] {
	ids := slices.SortedFunc(maps.Keys(s.profiles), func(a, b values.ProfileID) int {
		return cmp.Or(
			cmp.Compare(s.profiles[a].Name, s.profiles[b].Name),
			cmp.Compare(a.String(), b.String()),
		)
	})
	return func(yield func(values.ProfileID, entities.Profile) bool) {
		for _, id := range ids {
			p, ok := s.profiles[id]
			if !ok {
				continue
			}
			if !yield(id, p.Clone()) {
				return
			}
		}
	}
}

// FindByName returns the IDs of every profile with exactly this name.
func (s *ProfileStore) FindByName(name string) []values.ProfileID {
	var ids []values.ProfileID
	for id, p := range s.All() {
		if p.Name == name {
			ids = append(ids, id)
		}
	}
	return ids
}

// Len returns the number of profiles.
func (s *ProfileStore) Len() int {
	return len(s.profiles)
}

// Defaults returns the launcher wide defaults.
func (s *ProfileStore) Defaults() entities.Defaults {
	return s.defaults
}

// SetDefaults replaces the launcher wide defaults.
func (s *ProfileStore) SetDefaults(d entities.Defaults) {
	s.defaults = d
	s.dirty = true
}

// Dirty reports whether the store changed since it was loaded or last saved.
func (s *ProfileStore) Dirty() bool {
	return s.dirty
}

// Save writes the entire mapping as one snapshot and returns once it is
// durable. On failure the previously saved snapshot stays in effect and the
// in-memory state is kept, so Save may be called again.
func (s *ProfileStore) Save(ctx context.Context) error {
	snapshot := s.snapshot()
	if err := s.repo.Save(ctx, snapshot); err != nil {
		s.logger.Debug("profile store save failed", "error", err)
		return err
	}
	s.dirty = false
	s.logger.Debug("profile store saved", "profiles", snapshot.Len())
	return nil
}

func (s *ProfileStore) snapshot() *entities.ProfileSet {
	set := &entities.ProfileSet{
		Profiles: s.profiles,
		Defaults: s.defaults,
	}
	return set.Clone()
}
