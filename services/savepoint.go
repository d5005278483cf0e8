package services

import (
	"ext-data/contract"
	"ext-data/storage"
)

// savepoint marks the unit of work and returns the function undoing whatever
// the caller stages after it. Changes staged earlier by other repositories stay.
// Contexts that cannot rewind get a no-op.
func savepoint(s *storage.Storage) func() {
	rewindable, ok := s.StorageContext().(contract.Rewindable)
	if !ok {
		return func() {}
	}
	mark := rewindable.Mark()
	return func() {
		rewindable.RewindTo(mark)
	}
}
