package storage

import (
	"bytes"
	"context"
	"ext-data/contract"
	"ext-data/errors"
	"ext-data/observability"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// BadgerContext is the working set of a unit of work over BadgerDB.
// Repositories stage writes and deletes on it; SaveChanges applies all of them
// in a single badger transaction.
//
// A BadgerContext is not safe for concurrent use. It does not own the database.
type BadgerContext struct {
	id      uuid.UUID
	db      *badger.DB
	log     *slog.Logger
	tracker *changeTracker
	monitor *observability.CommitMonitor
}

var (
	_ contract.Engine     = (*BadgerContext)(nil)
	_ contract.Rewindable = (*BadgerContext)(nil)
)

type Option func(*BadgerContext)

func WithMonitor(monitor *observability.CommitMonitor) Option {
	return func(c *BadgerContext) {
		c.monitor = monitor
	}
}

func NewBadgerContext(db *badger.DB, log *slog.Logger, opts ...Option) *BadgerContext {
	c := &BadgerContext{
		id:      uuid.New(),
		db:      db,
		log:     log,
		tracker: newChangeTracker(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *BadgerContext) ID() uuid.UUID {
	return c.id
}

// Set stages a write. The last staged change of a key wins.
func (c *BadgerContext) Set(key, value []byte) {
	c.tracker.track(key, value, StateModified)
}

// Delete stages a delete.
func (c *BadgerContext) Delete(key []byte) {
	c.tracker.track(key, nil, StateDeleted)
}

// Get reads a key, looking at staged changes before committed data.
// A staged delete reads as badger.ErrKeyNotFound.
func (c *BadgerContext) Get(key []byte) ([]byte, error) {
	if entry, ok := c.tracker.lookup(key); ok {
		if entry.State == StateDeleted {
			return nil, badger.ErrKeyNotFound
		}
		return bytes.Clone(entry.Value), nil
	}

	var value []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// View runs fn in a read-only transaction. Staged changes are not visible.
func (c *BadgerContext) View(fn func(txn *badger.Txn) error) error {
	return c.db.View(fn)
}

func (c *BadgerContext) PendingChanges() int {
	return c.tracker.len()
}

func (c *BadgerContext) HasChanges() bool {
	return c.tracker.len() > 0
}

// Changes returns the staged changes in staging order.
func (c *BadgerContext) Changes() []Entry {
	return c.tracker.snapshot()
}

// AcceptAllChanges drops the change markers without writing anything.
// Used after SaveChangesAsync(ctx, false) once the caller is done with the delta.
func (c *BadgerContext) AcceptAllChanges() {
	c.tracker.clear()
}

// Mark returns a position in the staging history for RewindTo.
func (c *BadgerContext) Mark() int {
	return c.tracker.mark()
}

// RewindTo drops the changes staged since mark and restores the entries they replaced.
// Changes staged before mark are kept. Marks do not survive a commit that accepts
// changes or a RejectChanges.
func (c *BadgerContext) RewindTo(mark int) {
	before := c.tracker.len()
	c.tracker.rewind(mark)
	c.log.Debug("Staged changes rewound", "context", c.id, "mark", mark, "pending", c.tracker.len(), "before", before)
}

// RejectChanges discards every staged change.
func (c *BadgerContext) RejectChanges() {
	discarded := c.tracker.len()
	c.tracker.clear()
	if discarded > 0 {
		c.log.Debug("Staged changes discarded", "context", c.id, "discarded", discarded)
	}
}

// SaveChanges commits every staged change atomically and returns how many records
// were affected. Change markers are cleared on success only.
func (c *BadgerContext) SaveChanges() (int, error) {
	if !c.HasChanges() {
		return 0, nil
	}
	txn, affected, err := c.stage()
	if err != nil {
		c.monitor.RecordFailure(c.id)
		return 0, err
	}
	if err = txn.Commit(); err != nil {
		c.monitor.RecordFailure(c.id)
		return 0, err
	}
	c.tracker.clear()
	c.committed(affected, true)
	return affected, nil
}

// SaveChangesAsync commits through badger's asynchronous commit and waits for its
// callback or for ctx. A context already done prevents any write.
// When ctx ends first the markers are kept and badger may still apply the batch.
func (c *BadgerContext) SaveChangesAsync(ctx context.Context, acceptAllChangesOnSuccess bool) (int, error) {
	if err := ctx.Err(); err != nil {
		c.monitor.RecordCancellation(c.id)
		return 0, fmt.Errorf("%w: %w", errors.ErrCommitCancelled, err)
	}
	if !c.HasChanges() {
		return 0, nil
	}
	txn, affected, err := c.stage()
	if err != nil {
		c.monitor.RecordFailure(c.id)
		return 0, err
	}

	done := make(chan error, 1)
	txn.CommitWith(func(err error) {
		done <- err
	})

	select {
	case <-ctx.Done():
		c.monitor.RecordCancellation(c.id)
		return 0, fmt.Errorf("%w: %w", errors.ErrCommitCancelled, ctx.Err())
	case err = <-done:
		if err != nil {
			c.monitor.RecordFailure(c.id)
			return 0, err
		}
	}

	if acceptAllChangesOnSuccess {
		c.tracker.clear()
	}
	c.committed(affected, acceptAllChangesOnSuccess)
	return affected, nil
}

// stage opens a read-write transaction holding every tracked change.
// On error the transaction is already discarded.
func (c *BadgerContext) stage() (*badger.Txn, int, error) {
	entries := c.tracker.snapshot()
	txn := c.db.NewTransaction(true)
	for _, entry := range entries {
		var err error
		switch entry.State {
		case StateDeleted:
			err = txn.Delete(entry.Key)
		default:
			err = txn.Set(entry.Key, entry.Value)
		}
		if err != nil {
			txn.Discard()
			return nil, 0, err
		}
	}
	return txn, len(entries), nil
}

func (c *BadgerContext) committed(affected int, accepted bool) {
	c.monitor.RecordCommit(c.id, affected)
	c.log.Debug("Changes committed",
		"context", c.id,
		"affected", affected,
		"accepted", accepted,
	)
}
