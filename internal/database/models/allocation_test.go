package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocationStatus(t *testing.T) {
	t.Run("validity", func(t *testing.T) {
		assert.True(t, AllocationStatusPending.IsValid())
		assert.True(t, AllocationStatusApproved.IsValid())
		assert.True(t, AllocationStatusRejected.IsValid())
		assert.False(t, AllocationStatus("cancelled").IsValid())
	})

	t.Run("terminal states", func(t *testing.T) {
		assert.False(t, AllocationStatusPending.IsTerminal())
		assert.True(t, AllocationStatusApproved.IsTerminal())
		assert.True(t, AllocationStatusRejected.IsTerminal())
	})

	t.Run("legacy boolean rendering", func(t *testing.T) {
		assert.Nil(t, AllocationStatusPending.RequestStatus())

		approved := AllocationStatusApproved.RequestStatus()
		require.NotNil(t, approved)
		assert.True(t, *approved)

		rejected := AllocationStatusRejected.RequestStatus()
		require.NotNil(t, rejected)
		assert.False(t, *rejected)
	})
}

func TestAllocationType_TransfersOwnership(t *testing.T) {
	assert.True(t, AllocationTypeOwner.TransfersOwnership())
	assert.False(t, AllocationTypeTemporary.TransfersOwnership())
	assert.False(t, AllocationType("owner").TransfersOwnership())
}

func TestAllocation_SetStatus(t *testing.T) {
	a := &Allocation{Status: AllocationStatusPending}
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	a.SetStatus(AllocationStatusRejected, at)

	assert.Equal(t, AllocationStatusRejected, a.Status)
	require.NotNil(t, a.RequestStatus)
	assert.False(t, *a.RequestStatus)
	require.NotNil(t, a.AllocationStatusDate)
	assert.Equal(t, at, *a.AllocationStatusDate)
}

func TestAllocation_BeforeSave(t *testing.T) {
	t.Run("defaults empty status to pending", func(t *testing.T) {
		stale := true
		a := &Allocation{RequestStatus: &stale}

		require.NoError(t, a.BeforeSave(nil))

		assert.Equal(t, AllocationStatusPending, a.Status)
		assert.Nil(t, a.RequestStatus)
	})

	t.Run("overrides a disagreeing request status", func(t *testing.T) {
		stale := false
		a := &Allocation{Status: AllocationStatusApproved, RequestStatus: &stale}

		require.NoError(t, a.BeforeSave(nil))

		require.NotNil(t, a.RequestStatus)
		assert.True(t, *a.RequestStatus)
	})
}

func TestUserRole_IsValid(t *testing.T) {
	assert.True(t, UserRoleAdmin.IsValid())
	assert.True(t, UserRoleEmployee.IsValid())
	assert.False(t, UserRole("root").IsValid())
}
