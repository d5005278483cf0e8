// Package storage implements the unit of work: a Storage owns one storage context,
// hands out repositories bound to it and commits everything they staged at once.
//
// Storage never opens, closes or swaps its context, never retries a commit and
// never rewrites an engine error. It holds no lock: commits on the same context
// must be serialized by the caller.
package storage

import (
	"context"
	"ext-data/contract"
	"ext-data/errors"
	"fmt"
	"reflect"
)

type Storage struct {
	storageContext contract.StorageContext
	engine         contract.Engine
	resolver       contract.RepositoryResolver
}

// NewStorage checks that the context carries the engine commit capability.
// It fails with errors.ErrConfiguration otherwise, and when resolver is nil.
func NewStorage(storageContext contract.StorageContext, resolver contract.RepositoryResolver) (*Storage, error) {
	engine, ok := storageContext.(contract.Engine)
	if !ok {
		return nil, fmt.Errorf("%w: %T does not implement the engine commit capability",
			errors.ErrConfiguration, storageContext)
	}
	if resolver == nil {
		return nil, fmt.Errorf("%w: repository resolver is nil", errors.ErrConfiguration)
	}
	return &Storage{
		storageContext: storageContext,
		engine:         engine,
		resolver:       resolver,
	}, nil
}

// StorageContext returns the context given at construction.
func (s *Storage) StorageContext() contract.StorageContext {
	return s.storageContext
}

// GetRepository resolves the capability T and binds the storage context into it.
// A capability without provider yields the zero value and false.
func GetRepository[T contract.Repository](s *Storage) (T, bool) {
	var zero T
	repository, ok := s.resolver.Resolve(reflect.TypeFor[T]())
	if !ok {
		return zero, false
	}
	typed, ok := repository.(T)
	if !ok {
		return zero, false
	}
	typed.SetStorageContext(s.storageContext)
	return typed, true
}

// Save commits the changes staged by every repository and drops the count.
func (s *Storage) Save() error {
	_, err := s.engine.SaveChanges()
	return err
}

// SaveAndReturn commits the staged changes and returns the number of affected records.
func (s *Storage) SaveAndReturn() (int, error) {
	return s.engine.SaveChanges()
}

// SaveChangesAsync runs the engine's asynchronous commit and waits for it or for ctx.
// Committed changes are accepted: the context stops tracking them.
func (s *Storage) SaveChangesAsync(ctx context.Context) (int, error) {
	return s.engine.SaveChangesAsync(ctx, true)
}

// SaveChangesAsyncWith behaves like SaveChangesAsync. When acceptAllChangesOnSuccess is
// false the context keeps its change markers after a successful commit.
func (s *Storage) SaveChangesAsyncWith(ctx context.Context, acceptAllChangesOnSuccess bool) (int, error) {
	return s.engine.SaveChangesAsync(ctx, acceptAllChangesOnSuccess)
}
