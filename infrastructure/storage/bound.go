package storage

import (
	"ext-data/contract"
	"ext-data/errors"
	"fmt"
)

// Bound holds the storage context a repository was bound to.
// Badger repositories embed it to satisfy contract.Repository.
type Bound struct {
	storageContext contract.StorageContext
}

func (b *Bound) SetStorageContext(storageContext contract.StorageContext) {
	b.storageContext = storageContext
}

func (b *Bound) StorageContext() contract.StorageContext {
	return b.storageContext
}

// badgerContext refuses data operations until a BadgerContext is bound.
func (b *Bound) badgerContext() (*BadgerContext, error) {
	if b.storageContext == nil {
		return nil, errors.ErrStorageContextNotSet
	}
	c, ok := b.storageContext.(*BadgerContext)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", errors.ErrUnsupportedStorageContext, b.storageContext)
	}
	return c, nil
}
