package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrSlotHeld is returned when another booking already holds the slot.
var ErrSlotHeld = errors.New("time slot is currently being booked")

// acquireSlotScript is a package-level Lua script. The Redis Go client
// automatically uses EVALSHA (send SHA hash only) after the first call
// instead of EVAL (send full script text every time).
//
// Logic:
// 1. If the hold key exists -> another client is mid-booking, return 0
// 2. Otherwise set the key to the caller's token with a TTL and return 1
var acquireSlotScript = redis.NewScript(`
	if redis.call('EXISTS', KEYS[1]) == 1 then
		return 0
	end
	redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[2])
	return 1
`)

// releaseSlotScript deletes the hold only if it still belongs to the caller,
// so a late release cannot drop a hold taken by someone else after expiry.
var releaseSlotScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

const slotHoldKeyPrefix = "appointment:hold:"

// SlotHoldService serializes concurrent bookings of the same slot through
// Redis. The advisory booked check in the resolver happens at render time;
// two clients can both see a slot as open and submit. The hold makes the
// critical section between the conflict check and the DB insert exclusive,
// and the unique index on (date, time) remains the final authority.
type SlotHoldService struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewSlotHoldService(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *SlotHoldService {
	return &SlotHoldService{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

// Acquire takes the hold for the slot and returns an opaque token the caller
// must pass to Release. Returns ErrSlotHeld when another booking is in
// flight for the same slot.
func (s *SlotHoldService) Acquire(ctx context.Context, date, timeOfDay string) (string, error) {
	token := uuid.New().String()
	key := slotHoldKey(date, timeOfDay)

	ok, err := acquireSlotScript.Run(ctx, s.redisClient, []string{key}, token, s.ttl.Milliseconds()).Int()
	if err != nil {
		s.log.Warnf("Failed to acquire slot hold %s: %+v", key, err)
		return "", err
	}
	if ok == 0 {
		return "", ErrSlotHeld
	}

	return token, nil
}

// Release drops the hold if the token still owns it. Safe to call after the
// TTL has expired; an expired or reassigned hold is left alone.
func (s *SlotHoldService) Release(ctx context.Context, date, timeOfDay, token string) error {
	key := slotHoldKey(date, timeOfDay)
	if err := releaseSlotScript.Run(ctx, s.redisClient, []string{key}, token).Err(); err != nil {
		s.log.Warnf("Failed to release slot hold %s: %+v", key, err)
		return err
	}
	return nil
}

func slotHoldKey(date, timeOfDay string) string {
	return fmt.Sprintf("%s%s:%s", slotHoldKeyPrefix, date, timeOfDay)
}
