package services_test

import (
	"context"
	"sync"
	"testing"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/locker"
	"galapagos/internal/core/domain/services"
	"galapagos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLockerStore is an in-memory locker repository whose TryClaim performs
// a mutex-guarded compare-and-swap, mirroring the conditional update the
// real repository issues against the record store.
type fakeLockerStore struct {
	mu        sync.Mutex
	order     []kernel.UUID
	available map[kernel.UUID]bool

	// onGetAllAvailable runs after the snapshot is taken, letting tests
	// interleave a concurrent claim between listing and claiming.
	onGetAllAvailable func()
}

func newFakeLockerStore(t *testing.T, count int) *fakeLockerStore {
	t.Helper()
	store := &fakeLockerStore{available: make(map[kernel.UUID]bool)}
	for range count {
		id := kernel.NewUUID()
		store.order = append(store.order, id)
		store.available[id] = true
	}
	return store
}

func (f *fakeLockerStore) Add(_ context.Context, aggregate *locker.Locker) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.order = append(f.order, aggregate.ID())
	f.available[aggregate.ID()] = aggregate.IsAvailable()
	return nil
}

func (f *fakeLockerStore) Get(_ context.Context, id kernel.UUID) (*locker.Locker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	available, ok := f.available[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("lockerID", id.String())
	}
	return locker.RestoreLocker(id, available)
}

func (f *fakeLockerStore) GetAllAvailable(_ context.Context) ([]*locker.Locker, error) {
	f.mu.Lock()
	var result []*locker.Locker
	for _, id := range f.order {
		if f.available[id] {
			l, err := locker.RestoreLocker(id, true)
			if err != nil {
				f.mu.Unlock()
				return nil, err
			}
			result = append(result, l)
		}
	}
	f.mu.Unlock()

	if f.onGetAllAvailable != nil {
		f.onGetAllAvailable()
	}
	return result, nil
}

func (f *fakeLockerStore) GetAll(_ context.Context) ([]*locker.Locker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*locker.Locker
	for _, id := range f.order {
		l, err := locker.RestoreLocker(id, f.available[id])
		if err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	return result, nil
}

func (f *fakeLockerStore) TryClaim(_ context.Context, id kernel.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.available[id] {
		return false, nil
	}
	f.available[id] = false
	return true, nil
}

func (f *fakeLockerStore) Release(_ context.Context, id kernel.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.available[id] = true
	return nil
}

func (f *fakeLockerStore) availableCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, available := range f.available {
		if available {
			count++
		}
	}
	return count
}

func newAllocator(t *testing.T, store *fakeLockerStore) *services.LockerAllocator {
	t.Helper()
	allocator, err := services.NewLockerAllocator(store)
	require.NoError(t, err)
	return allocator
}

func TestNewLockerAllocator(t *testing.T) {
	t.Run("requires locker repository", func(t *testing.T) {
		allocator, err := services.NewLockerAllocator(nil)
		require.Error(t, err)
		assert.Nil(t, allocator)
	})
}

func TestLockerAllocator_Reserve(t *testing.T) {
	t.Run("reserves requested count of distinct lockers", func(t *testing.T) {
		store := newFakeLockerStore(t, 5)
		allocator := newAllocator(t, store)

		claimed, err := allocator.Reserve(t.Context(), 3)

		require.NoError(t, err)
		require.Len(t, claimed, 3)
		seen := make(map[string]bool)
		for _, id := range claimed {
			assert.False(t, seen[id.String()])
			seen[id.String()] = true
		}
		assert.Equal(t, 2, store.availableCount())
	})

	t.Run("fails when fewer lockers available than requested", func(t *testing.T) {
		store := newFakeLockerStore(t, 2)
		allocator := newAllocator(t, store)

		claimed, err := allocator.Reserve(t.Context(), 3)

		require.Error(t, err)
		var insufficientErr *services.InsufficientLockersError
		require.ErrorAs(t, err, &insufficientErr)
		assert.Equal(t, 3, insufficientErr.Requested)
		assert.Equal(t, 2, insufficientErr.Available)
		assert.Nil(t, claimed)
		assert.Equal(t, 2, store.availableCount())
	})

	t.Run("fails with invalid count", func(t *testing.T) {
		store := newFakeLockerStore(t, 2)
		allocator := newAllocator(t, store)

		_, err := allocator.Reserve(t.Context(), 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "count is invalid")
		assert.Equal(t, 2, store.availableCount())
	})

	t.Run("releases partial claims when candidates are stolen", func(t *testing.T) {
		store := newFakeLockerStore(t, 3)
		allocator := newAllocator(t, store)

		// A concurrent reservation grabs two candidates between the
		// snapshot and the claim loop.
		store.onGetAllAvailable = func() {
			stolen := 0
			for _, id := range store.order {
				if stolen == 2 {
					break
				}
				ok, err := store.TryClaim(t.Context(), id)
				require.NoError(t, err)
				require.True(t, ok)
				stolen++
			}
			store.onGetAllAvailable = nil
		}

		claimed, err := allocator.Reserve(t.Context(), 2)

		require.Error(t, err)
		var insufficientErr *services.InsufficientLockersError
		require.ErrorAs(t, err, &insufficientErr)
		assert.Equal(t, 2, insufficientErr.Requested)
		// the error reports the pool after the partial claim was released,
		// not how many claims this caller had collected
		assert.Equal(t, 1, insufficientErr.Available)
		assert.Nil(t, claimed)
		// the single locker the allocator managed to claim was released
		assert.Equal(t, 1, store.availableCount())
	})
}

func TestLockerAllocator_Reserve_ConcurrentCallers(t *testing.T) {
	// 5 lockers, two concurrent reservations of 3: exactly one succeeds,
	// the other fails with InsufficientLockers, and no locker is ever
	// granted twice.
	for range 25 {
		store := newFakeLockerStore(t, 5)
		allocator := newAllocator(t, store)

		type outcome struct {
			claimed []kernel.UUID
			err     error
		}
		results := make(chan outcome, 2)

		var start sync.WaitGroup
		start.Add(1)
		for range 2 {
			go func() {
				start.Wait()
				claimed, err := allocator.Reserve(context.Background(), 3)
				results <- outcome{claimed: claimed, err: err}
			}()
		}
		start.Done()

		first, second := <-results, <-results
		succeeded, failed := first, second
		if succeeded.err != nil {
			succeeded, failed = second, first
		}

		require.NoError(t, succeeded.err)
		require.Len(t, succeeded.claimed, 3)

		require.Error(t, failed.err)
		var insufficientErr *services.InsufficientLockersError
		require.ErrorAs(t, failed.err, &insufficientErr)
		assert.Equal(t, 3, insufficientErr.Requested)

		assert.Equal(t, 2, store.availableCount())
	}
}

func TestLockerAllocator_Release(t *testing.T) {
	store := newFakeLockerStore(t, 1)
	allocator := newAllocator(t, store)

	claimed, err := allocator.Reserve(t.Context(), 1)
	require.NoError(t, err)
	require.Len(t, claimed, 1)
	assert.Equal(t, 0, store.availableCount())

	require.NoError(t, allocator.Release(t.Context(), claimed[0]))
	assert.Equal(t, 1, store.availableCount())
}
