// Package leveldb persists the profile snapshot in an embedded LevelDB database.
package leveldb

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"

	goleveldb "github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"

	apperrors "github.com/yarwhq/yarw/internal/application/errors"
	"github.com/yarwhq/yarw/internal/domain/entities"
	"github.com/yarwhq/yarw/internal/domain/repositories"
	"github.com/yarwhq/yarw/internal/infrastructure/filesystem"
	"github.com/yarwhq/yarw/internal/infrastructure/persistence/codec"
)

const (
	// DatabaseDir is the database directory under the storage root.
	DatabaseDir = "profiles"
	// RecordKey is the single key holding the encoded snapshot.
	RecordKey = "profiles"
)

// Ensure interface compliance
var _ repositories.ProfileSnapshotRepository = (*SnapshotRepository)(nil)

// SnapshotRepository stores the whole ProfileSet under RecordKey.
//
// The database is opened for the duration of each Load or Save and closed
// again, so no handle (and no LevelDB lock) outlives a call. Concurrent use
// from several processes against the same root is not supported.
type SnapshotRepository struct {
	logger *slog.Logger
	root   string
}

// NewSnapshotRepository creates a repository rooted at root.
// The database itself lives in root/DatabaseDir.
func NewSnapshotRepository(root string, logger *slog.Logger) *SnapshotRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &SnapshotRepository{
		root:   root,
		logger: logger,
	}
}

// Path returns the database directory.
func (r *SnapshotRepository) Path() string {
	return filepath.Join(r.root, DatabaseDir)
}

// Load reads the stored snapshot. A database without the record, including
// one created by this call, yields an empty set.
func (r *SnapshotRepository) Load(ctx context.Context) (set *entities.ProfileSet, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	db, err := r.open()
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			set, err = nil, apperrors.NewStorageError("close", r.Path(), cerr)
		}
	}()

	data, err := db.Get([]byte(RecordKey), nil)
	if errors.Is(err, goleveldb.ErrNotFound) {
		r.logger.Debug("no stored profiles, starting empty", "path", r.Path())
		return entities.NewProfileSet(), nil
	}
	if err != nil {
		return nil, apperrors.NewStorageError("get", r.Path(), err)
	}

	set, err = codec.Decode(data)
	if err != nil {
		return nil, apperrors.NewStorageError("decode", r.Path(), err)
	}
	r.logger.Debug("profiles loaded", "path", r.Path(), "count", set.Len(), "bytes", len(data))
	return set, nil
}

// Save encodes set and writes it under RecordKey with a synced write, so the
// record is on disk before Save returns. LevelDB keeps the previous value
// readable until the new one is committed; a failed Save leaves it in place.
func (r *SnapshotRepository) Save(ctx context.Context, set *entities.ProfileSet) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := codec.Encode(set)
	if err != nil {
		return apperrors.NewStorageError("encode", r.Path(), err)
	}

	db, err := r.open()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = apperrors.NewStorageError("close", r.Path(), cerr)
		}
	}()

	if err := db.Put([]byte(RecordKey), data, &opt.WriteOptions{Sync: true}); err != nil {
		return apperrors.NewStorageError("put", r.Path(), err)
	}
	r.logger.Debug("profiles saved", "path", r.Path(), "count", set.Len(), "bytes", len(data))
	return nil
}

func (r *SnapshotRepository) open() (*goleveldb.DB, error) {
	if err := filesystem.EnsureDirs(r.root); err != nil {
		return nil, apperrors.NewStorageError("mkdir", r.root, err)
	}
	db, err := goleveldb.OpenFile(r.Path(), nil)
	if err != nil {
		return nil, apperrors.NewStorageError("open", r.Path(), err)
	}
	return db, nil
}
