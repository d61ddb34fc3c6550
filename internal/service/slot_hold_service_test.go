package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSlotHoldService(t *testing.T) (*SlotHoldService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	log := logrus.New()
	return NewSlotHoldService(client, log, 30*time.Second), mr
}

func TestAcquireAndRelease(t *testing.T) {
	svc, _ := newTestSlotHoldService(t)
	ctx := context.Background()

	token, err := svc.Acquire(ctx, "2025-03-10", "09:00")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Second acquire for the same slot must fail while the hold is live.
	_, err = svc.Acquire(ctx, "2025-03-10", "09:00")
	assert.ErrorIs(t, err, ErrSlotHeld)

	// A different slot is unaffected.
	_, err = svc.Acquire(ctx, "2025-03-10", "09:30")
	require.NoError(t, err)

	require.NoError(t, svc.Release(ctx, "2025-03-10", "09:00", token))

	_, err = svc.Acquire(ctx, "2025-03-10", "09:00")
	require.NoError(t, err)
}

func TestReleaseWithWrongTokenKeepsHold(t *testing.T) {
	svc, _ := newTestSlotHoldService(t)
	ctx := context.Background()

	_, err := svc.Acquire(ctx, "2025-03-10", "09:00")
	require.NoError(t, err)

	require.NoError(t, svc.Release(ctx, "2025-03-10", "09:00", "not-the-token"))

	_, err = svc.Acquire(ctx, "2025-03-10", "09:00")
	assert.ErrorIs(t, err, ErrSlotHeld)
}

func TestHoldExpires(t *testing.T) {
	svc, mr := newTestSlotHoldService(t)
	ctx := context.Background()

	_, err := svc.Acquire(ctx, "2025-03-10", "09:00")
	require.NoError(t, err)

	mr.FastForward(31 * time.Second)

	_, err = svc.Acquire(ctx, "2025-03-10", "09:00")
	require.NoError(t, err)
}
