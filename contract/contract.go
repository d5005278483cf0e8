//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"github.com/google/uuid"
)

// StorageContext is the opaque working set of a persistence engine.
// Repositories stage their changes against it; it is committed as a whole.
type StorageContext interface {
	ID() uuid.UUID
}

// Engine is the commit capability a StorageContext must carry to be coordinated.
// Both methods return the number of affected records.
type Engine interface {
	StorageContext
	SaveChanges() (int, error)
	SaveChangesAsync(ctx context.Context, acceptAllChangesOnSuccess bool) (int, error)
}

// Rewindable is implemented by contexts able to drop the changes staged after a mark.
// Changes staged before the mark stay untouched.
type Rewindable interface {
	Mark() int
	RewindTo(mark int)
}

// Repository must be bound to exactly one StorageContext before any data operation.
type Repository interface {
	SetStorageContext(storageContext StorageContext)
}

// RepositoryResolver returns at most one repository for a capability type.
// A missing capability is reported with false, never with an error.
type RepositoryResolver interface {
	Resolve(capability reflect.Type) (Repository, bool)
}

// CapabilityName returns the readable name of a capability type.
// Used for logging during registration and resolution.
func CapabilityName(t reflect.Type) string {
	if t == nil {
		return "NilCapability"
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
