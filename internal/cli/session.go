package cli

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/LeJamon/xrpldir/internal/core/ledger/view"
	"github.com/LeJamon/xrpldir/internal/storage"
	"github.com/LeJamon/xrpldir/internal/storage/database"
)

func (a *app) openDB() (database.DB, error) {
	db, err := storage.Open(a.cfg.Database)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s database", a.cfg.Database.Backend)
	}
	return db, nil
}

// withLedger runs fn in one transaction. The transaction commits when fn
// succeeds and is discarded otherwise.
func (a *app) withLedger(ctx context.Context, fn func(l *view.Ledger) error) error {
	db, err := a.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	l, err := view.NewLedger(ctx, db, a.cfg.Cache.Size)
	if err != nil {
		return err
	}
	if err := fn(l); err != nil {
		if derr := l.Discard(); derr != nil {
			a.logger.Warnf("discard failed: %v", derr)
		}
		return err
	}
	if err := l.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit")
	}

	hits, misses := l.CacheStats()
	a.logger.Debugw("transaction committed", "cache_hits", hits, "cache_misses", misses)
	return nil
}

// withSnapshot runs fn against a consistent read-only view. The view may be
// shared by goroutines.
func (a *app) withSnapshot(ctx context.Context, fn func(v view.ReadView) error) error {
	db, err := a.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	snap, err := db.NewSnapshot(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to open snapshot")
	}
	defer snap.Close()

	return fn(view.NewReadOnly(ctx, snap))
}
