package runtime

import (
	"ext-data/contract"
	"ext-data/errors"
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/samber/lo"
)

type factory func() contract.Repository

// Registry maps a repository capability to the factory providing it.
// It is built by the composition root and injected into every Storage.
type Registry struct {
	mu        sync.RWMutex
	factories map[reflect.Type]factory
}

var _ contract.RepositoryResolver = (*Registry)(nil)

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[reflect.Type]factory),
	}
}

// Register binds a factory to the capability T, usually an interface type.
// A capability accepts a single provider: a second registration is rejected
// so that resolution never has to choose between candidates.
func Register[T contract.Repository](r *Registry, provide func() T) error {
	if provide == nil {
		return errors.ErrNilRepositoryFactory
	}
	capability := reflect.TypeFor[T]()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[capability]; exists {
		return fmt.Errorf("%w: %s", errors.ErrRepositoryAlreadyRegistered, contract.CapabilityName(capability))
	}
	r.factories[capability] = func() contract.Repository {
		return provide()
	}
	return nil
}

// Unregister removes the provider of T. It reports whether one was registered.
func Unregister[T contract.Repository](r *Registry) bool {
	capability := reflect.TypeFor[T]()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[capability]; !exists {
		return false
	}
	delete(r.factories, capability)
	return true
}

// Resolve builds a fresh repository for the capability.
// It returns false when nothing is registered or when the factory yields nil,
// including a nil pointer behind the interface.
func (r *Registry) Resolve(capability reflect.Type) (contract.Repository, bool) {
	r.mu.RLock()
	provide, ok := r.factories[capability]
	r.mu.RUnlock()

	if !ok {
		return nil, false
	}
	repository := provide()
	if isNil(repository) {
		return nil, false
	}
	return repository, true
}

func isNil(repository contract.Repository) bool {
	if repository == nil {
		return true
	}
	switch rv := reflect.ValueOf(repository); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// Capabilities lists the registered capability names, sorted.
func (r *Registry) Capabilities() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := lo.Map(lo.Keys(r.factories), func(t reflect.Type, _ int) string {
		return contract.CapabilityName(t)
	})
	slices.Sort(names)
	return names
}
