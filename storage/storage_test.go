package storage

import (
	"context"
	stderrors "errors"
	"ext-data/contract"
	"ext-data/errors"
	"ext-data/mocks"
	"ext-data/repositories"
	"ext-data/runtime"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type IRecordingRepository interface {
	contract.Repository
	Bindings() []contract.StorageContext
}

type recordingRepository struct {
	bindings []contract.StorageContext
}

func (r *recordingRepository) SetStorageContext(storageContext contract.StorageContext) {
	r.bindings = append(r.bindings, storageContext)
}

func (r *recordingRepository) Bindings() []contract.StorageContext {
	return r.bindings
}

// countingEngine records every commit it receives.
type countingEngine struct {
	id       uuid.UUID
	affected int
	err      error
	commits  int
	accepts  []bool
}

func (c *countingEngine) ID() uuid.UUID {
	return c.id
}

func (c *countingEngine) SaveChanges() (int, error) {
	c.commits++
	if c.err != nil {
		return 0, c.err
	}
	return c.affected, nil
}

func (c *countingEngine) SaveChangesAsync(ctx context.Context, acceptAllChangesOnSuccess bool) (int, error) {
	c.commits++
	c.accepts = append(c.accepts, acceptAllChangesOnSuccess)
	if err := ctx.Err(); err != nil {
		return 0, stderrors.Join(errors.ErrCommitCancelled, err)
	}
	if c.err != nil {
		return 0, c.err
	}
	return c.affected, nil
}

// blockingEngine holds every async commit until its context ends, as an engine
// waiting on a slow flush would.
type blockingEngine struct {
	countingEngine
	started chan struct{}
}

func (b *blockingEngine) SaveChangesAsync(ctx context.Context, acceptAllChangesOnSuccess bool) (int, error) {
	b.commits++
	b.accepts = append(b.accepts, acceptAllChangesOnSuccess)
	close(b.started)
	<-ctx.Done()
	return 0, fmt.Errorf("%w: %w", errors.ErrCommitCancelled, ctx.Err())
}

func TestNewStorage_Accepts_Engine_Context(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockEngine(ctrl)

	s, err := NewStorage(engine, runtime.NewRegistry())

	req.NoError(err)
	req.NotNil(s)
	req.Same(engine, s.StorageContext())
}

func TestNewStorage_Rejects_Context_Without_Engine(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)

	// Given a context that only identifies itself
	plain := mocks.NewMockStorageContext(ctrl)

	// When the storage is built on it
	s, err := NewStorage(plain, runtime.NewRegistry())

	// Then construction fails before anything else is reachable
	req.ErrorIs(err, errors.ErrConfiguration)
	req.Nil(s)
}

func TestNewStorage_Rejects_Nil_Context(t *testing.T) {
	req := require.New(t)

	s, err := NewStorage(nil, runtime.NewRegistry())

	req.ErrorIs(err, errors.ErrConfiguration)
	req.Nil(s)
}

func TestNewStorage_Rejects_Nil_Resolver(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)

	s, err := NewStorage(mocks.NewMockEngine(ctrl), nil)

	req.ErrorIs(err, errors.ErrConfiguration)
	req.Nil(s)
}

func TestGetRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockEngine(ctrl)

	t.Run("should return absent when no provider is registered", func(t *testing.T) {
		req := require.New(t)
		s, err := NewStorage(engine, runtime.NewRegistry())
		req.NoError(err)

		repository, ok := GetRepository[IRecordingRepository](s)

		req.False(ok)
		req.Nil(repository)
	})

	t.Run("should bind the storage context exactly once", func(t *testing.T) {
		req := require.New(t)
		resolver := mocks.NewMockRepositoryResolver(ctrl)
		repository := mocks.NewMockRepository(ctrl)
		s, err := NewStorage(engine, resolver)
		req.NoError(err)

		resolver.EXPECT().
			Resolve(reflect.TypeFor[*mocks.MockRepository]()).
			Return(repository, true).
			Times(1)
		repository.EXPECT().
			SetStorageContext(engine).
			Times(1)

		resolved, ok := GetRepository[*mocks.MockRepository](s)

		req.True(ok)
		req.Same(repository, resolved)
	})

	t.Run("should return absent when the provider has the wrong type", func(t *testing.T) {
		req := require.New(t)
		resolver := mocks.NewMockRepositoryResolver(ctrl)
		s, err := NewStorage(engine, resolver)
		req.NoError(err)

		resolver.EXPECT().
			Resolve(reflect.TypeFor[IRecordingRepository]()).
			Return(mocks.NewMockRepository(ctrl), true).
			Times(1)

		repository, ok := GetRepository[IRecordingRepository](s)

		req.False(ok)
		req.Nil(repository)
	})

	t.Run("should bind the same context for every resolution", func(t *testing.T) {
		req := require.New(t)
		registry := runtime.NewRegistry()
		req.NoError(runtime.Register(registry, func() IRecordingRepository {
			return &recordingRepository{}
		}))
		s, err := NewStorage(engine, registry)
		req.NoError(err)

		first, ok := GetRepository[IRecordingRepository](s)
		req.True(ok)
		second, ok := GetRepository[IRecordingRepository](s)
		req.True(ok)

		req.Equal([]contract.StorageContext{engine}, first.Bindings())
		req.Equal([]contract.StorageContext{engine}, second.Bindings())
		req.Same(engine, first.Bindings()[0])
	})
}

func TestGetRepository_Resolves_Each_Capability_To_Its_Provider(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockEngine(ctrl)
	messages := mocks.NewMockIMessageRepository(ctrl)
	tasks := mocks.NewMockIFileTaskRepository(ctrl)

	// Given two capabilities registered side by side
	registry := runtime.NewRegistry()
	req.NoError(runtime.Register(registry, func() repositories.IMessageRepository { return messages }))
	req.NoError(runtime.Register(registry, func() repositories.IFileTaskRepository { return tasks }))
	s, err := NewStorage(engine, registry)
	req.NoError(err)

	// Then each resolution binds the shared context into its own provider only
	messages.EXPECT().SetStorageContext(engine).Times(1)
	tasks.EXPECT().SetStorageContext(engine).Times(1)

	resolvedMessages, ok := GetRepository[repositories.IMessageRepository](s)
	req.True(ok)
	req.Same(messages, resolvedMessages)

	resolvedTasks, ok := GetRepository[repositories.IFileTaskRepository](s)
	req.True(ok)
	req.Same(tasks, resolvedTasks)

	_, ok = GetRepository[repositories.IUserRepository](s)
	req.False(ok)
}

func TestStorage_Commits_Delegate_Once(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockEngine(ctrl)
	s, err := NewStorage(engine, runtime.NewRegistry())
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("Save discards the count", func(t *testing.T) {
		req := require.New(t)
		engine.EXPECT().SaveChanges().Return(3, nil).Times(1)

		req.NoError(s.Save())
	})

	t.Run("SaveAndReturn returns the count", func(t *testing.T) {
		req := require.New(t)
		engine.EXPECT().SaveChanges().Return(2, nil).Times(1)

		affected, err := s.SaveAndReturn()

		req.NoError(err)
		req.Equal(2, affected)
	})

	t.Run("SaveChangesAsync accepts all changes", func(t *testing.T) {
		req := require.New(t)
		engine.EXPECT().SaveChangesAsync(ctx, true).Return(4, nil).Times(1)

		affected, err := s.SaveChangesAsync(ctx)

		req.NoError(err)
		req.Equal(4, affected)
	})

	t.Run("SaveChangesAsyncWith forwards the accept flag", func(t *testing.T) {
		req := require.New(t)
		engine.EXPECT().SaveChangesAsync(ctx, false).Return(1, nil).Times(1)

		affected, err := s.SaveChangesAsyncWith(ctx, false)

		req.NoError(err)
		req.Equal(1, affected)
	})
}

func TestStorage_Propagates_Engine_Errors_Unmodified(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockEngine(ctrl)
	s, err := NewStorage(engine, runtime.NewRegistry())
	require.NoError(t, err)
	persistenceErr := stderrors.New("constraint violation")

	t.Run("Save", func(t *testing.T) {
		req := require.New(t)
		engine.EXPECT().SaveChanges().Return(0, persistenceErr).Times(1)

		req.Equal(persistenceErr, s.Save())
	})

	t.Run("SaveAndReturn", func(t *testing.T) {
		req := require.New(t)
		engine.EXPECT().SaveChanges().Return(0, persistenceErr).Times(1)

		_, err := s.SaveAndReturn()

		req.Equal(persistenceErr, err)
	})

	t.Run("SaveChangesAsync", func(t *testing.T) {
		req := require.New(t)
		engine.EXPECT().SaveChangesAsync(gomock.Any(), true).Return(0, persistenceErr).Times(1)

		_, err := s.SaveChangesAsync(context.Background())

		req.Equal(persistenceErr, err)
	})
}

func TestStorage_Cancelled_Commit_Is_Attempted_Once(t *testing.T) {
	req := require.New(t)
	engine := &countingEngine{id: uuid.New(), affected: 5}
	s, err := NewStorage(engine, runtime.NewRegistry())
	req.NoError(err)

	// Given a cancelled context
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// When an async commit is requested
	affected, err := s.SaveChangesAsync(ctx)

	// Then the cancellation surfaces and the engine saw a single commit
	req.ErrorIs(err, errors.ErrCommitCancelled)
	req.ErrorIs(err, context.Canceled)
	req.Zero(affected)
	req.Equal(1, engine.commits)
}

func TestStorage_Commit_Cancelled_In_Flight(t *testing.T) {
	req := require.New(t)
	engine := &blockingEngine{countingEngine: countingEngine{id: uuid.New()}, started: make(chan struct{})}
	s, err := NewStorage(engine, runtime.NewRegistry())
	req.NoError(err)

	// Given a commit already running on the engine
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-engine.started
		cancel()
	}()

	// When the caller's context is cancelled before the engine finishes
	affected, err := s.SaveChangesAsyncWith(ctx, false)

	// Then the cancellation surfaces and no other commit is attempted
	req.ErrorIs(err, errors.ErrCommitCancelled)
	req.ErrorIs(err, context.Canceled)
	req.Zero(affected)
	req.Equal(1, engine.commits)
	req.Equal([]bool{false}, engine.accepts)
}

func TestStorage_Commit_Deadline_In_Flight(t *testing.T) {
	req := require.New(t)
	engine := &blockingEngine{countingEngine: countingEngine{id: uuid.New()}, started: make(chan struct{})}
	s, err := NewStorage(engine, runtime.NewRegistry())
	req.NoError(err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = s.SaveChangesAsync(ctx)

	req.ErrorIs(err, errors.ErrCommitCancelled)
	req.ErrorIs(err, context.DeadlineExceeded)
	req.Equal(1, engine.commits)
}

func TestStorage_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("SaveAndReturn commits once and returns the engine count", prop.ForAll(
		func(affected int) bool {
			engine := &countingEngine{id: uuid.New(), affected: affected}
			s, err := NewStorage(engine, runtime.NewRegistry())
			if err != nil {
				return false
			}
			got, err := s.SaveAndReturn()
			return err == nil && got == affected && engine.commits == 1
		},
		gen.IntRange(0, 10_000),
	))

	properties.Property("SaveChangesAsyncWith commits once with the caller's flag", prop.ForAll(
		func(affected int, accept bool) bool {
			engine := &countingEngine{id: uuid.New(), affected: affected}
			s, err := NewStorage(engine, runtime.NewRegistry())
			if err != nil {
				return false
			}
			got, err := s.SaveChangesAsyncWith(context.Background(), accept)
			return err == nil && got == affected && engine.commits == 1 &&
				len(engine.accepts) == 1 && engine.accepts[0] == accept
		},
		gen.IntRange(0, 10_000),
		gen.Bool(),
	))

	properties.Property("every resolved repository is bound to the storage context", prop.ForAll(
		func(resolutions int) bool {
			engine := &countingEngine{id: uuid.New()}
			registry := runtime.NewRegistry()
			if err := runtime.Register(registry, func() IRecordingRepository {
				return &recordingRepository{}
			}); err != nil {
				return false
			}
			s, err := NewStorage(engine, registry)
			if err != nil {
				return false
			}
			for range resolutions {
				repository, ok := GetRepository[IRecordingRepository](s)
				if !ok {
					return false
				}
				bindings := repository.Bindings()
				if len(bindings) != 1 || bindings[0] != s.StorageContext() {
					return false
				}
			}
			return engine.commits == 0
		},
		gen.IntRange(1, 20),
	))

	properties.Property("unregistered capabilities resolve to absent", prop.ForAll(
		func(_ string) bool {
			s, err := NewStorage(&countingEngine{id: uuid.New()}, runtime.NewRegistry())
			if err != nil {
				return false
			}
			repository, ok := GetRepository[IRecordingRepository](s)
			return !ok && repository == nil
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
