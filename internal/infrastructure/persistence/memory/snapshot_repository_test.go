package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/yarwhq/yarw/internal/application/errors"
	"github.com/yarwhq/yarw/internal/domain/entities"
	"github.com/yarwhq/yarw/internal/domain/values"
)

func TestMemorySnapshotRepository_SaveAndLoad(t *testing.T) {
	repo := NewSnapshotRepository()
	ctx := context.Background()

	empty, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())

	set := entities.NewProfileSet()
	id := values.NewProfileID()
	set.Profiles[id] = entities.NewProfile("Main")
	require.NoError(t, repo.Save(ctx, set))
	assert.Equal(t, 1, repo.SaveCount())

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, set.Equal(loaded))

	// Loaded sets are independent copies.
	p := loaded.Profiles[id]
	p.SetFlag("x", values.BoolFlag(true))
	again, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, again.Profiles[id].Flags)
}

func TestMemorySnapshotRepository_FailSaves(t *testing.T) {
	repo := NewSnapshotRepository()
	ctx := context.Background()

	set := entities.NewProfileSet()
	set.Profiles[values.NewProfileID()] = entities.NewProfile("kept")
	require.NoError(t, repo.Save(ctx, set))

	repo.FailSaves(errors.New("disk full"))
	err := repo.Save(ctx, entities.NewProfileSet())
	assert.True(t, apperrors.IsStorageFailure(err))

	repo.FailSaves(nil)
	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, set.Equal(loaded))
	assert.Equal(t, 1, repo.SaveCount())
}

func TestMemorySnapshotRepository_Malformed(t *testing.T) {
	repo := NewSnapshotRepository()
	repo.SetRaw([]byte{0xff})

	_, err := repo.Load(context.Background())
	assert.True(t, apperrors.IsStorageFailure(err))
	assert.True(t, apperrors.IsCodecFailure(err))
}

func TestMemorySnapshotRepository_FailLoads(t *testing.T) {
	repo := NewSnapshotRepository()
	repo.FailLoads(errors.New("io"))

	_, err := repo.Load(context.Background())
	assert.True(t, apperrors.IsStorageFailure(err))
}
