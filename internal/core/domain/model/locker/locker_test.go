package locker_test

import (
	"testing"

	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/core/domain/model/locker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocker(t *testing.T) {
	t.Run("should create available locker", func(t *testing.T) {
		id := kernel.NewUUID()

		l, err := locker.NewLocker(id)

		require.NoError(t, err)
		require.NoError(t, l.Validate())
		assert.True(t, l.ID().IsEqual(id))
		assert.True(t, l.IsAvailable())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		l, err := locker.NewLocker(invalidID)

		require.Error(t, err)
		assert.Nil(t, l)
	})
}

func TestRestoreLocker(t *testing.T) {
	t.Run("restores reserved locker", func(t *testing.T) {
		l, err := locker.RestoreLocker(kernel.NewUUID(), false)

		require.NoError(t, err)
		assert.False(t, l.IsAvailable())
	})

	t.Run("restores available locker", func(t *testing.T) {
		l, err := locker.RestoreLocker(kernel.NewUUID(), true)

		require.NoError(t, err)
		assert.True(t, l.IsAvailable())
	})
}

func TestLocker_Reserve(t *testing.T) {
	t.Run("available locker can be reserved", func(t *testing.T) {
		l, err := locker.NewLocker(kernel.NewUUID())
		require.NoError(t, err)

		require.NoError(t, l.Reserve())
		assert.False(t, l.IsAvailable())
	})

	t.Run("reserved locker rejects second reservation", func(t *testing.T) {
		l, err := locker.NewLocker(kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, l.Reserve())

		err = l.Reserve()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "already reserved")
		assert.False(t, l.IsAvailable())
	})
}

func TestLocker_Release(t *testing.T) {
	l, err := locker.NewLocker(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, l.Reserve())

	l.Release()
	assert.True(t, l.IsAvailable())

	// releasing again stays available
	l.Release()
	assert.True(t, l.IsAvailable())
}

func TestLocker_Validate(t *testing.T) {
	t.Run("nil locker", func(t *testing.T) {
		var l *locker.Locker
		assert.ErrorIs(t, l.Validate(), locker.ErrLockerIsNotConstructed)
	})

	t.Run("zero value locker", func(t *testing.T) {
		l := &locker.Locker{}
		assert.ErrorIs(t, l.Validate(), locker.ErrLockerIsNotConstructed)
	})
}
