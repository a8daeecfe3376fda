package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"railway-booking/internal/module/inventory/models/entity"
	"railway-booking/internal/pkg/errors"
	"railway-booking/internal/pkg/log"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

type Repositories interface {
	CreateSchedule(ctx context.Context, scheduleID int64, totalSeats int) error
	ArchiveSchedule(ctx context.Context, scheduleID int64) error
	Reserve(ctx context.Context, scheduleID int64, count int) error
	Release(ctx context.Context, scheduleID int64, count int) error
	Availability(ctx context.Context, scheduleID int64) (entity.ScheduleInventory, error)
}

// redisRepositories keeps seat counters in Redis. A redsync mutex per
// schedule makes the check-and-decrement linearizable; counters for
// different schedules never share a lock.
type redisRepositories struct {
	client *redis.Client
	locker *redsync.Redsync
	log    log.Logger
}

func New(client *redis.Client, log log.Logger) Repositories {
	pool := goredis.NewPool(client)
	return &redisRepositories{
		client: client,
		locker: redsync.New(pool),
		log:    log,
	}
}

func seatsKey(scheduleID int64) string {
	return fmt.Sprintf("inventory:seats:%d", scheduleID)
}

func totalKey(scheduleID int64) string {
	return fmt.Sprintf("inventory:total:%d", scheduleID)
}

func (r *redisRepositories) lock(scheduleID int64) *redsync.Mutex {
	return r.locker.NewMutex(
		fmt.Sprintf("inventory:lock:%d", scheduleID),
		redsync.WithExpiry(5*time.Second),
	)
}

// CreateSchedule implements Repositories.
func (r *redisRepositories) CreateSchedule(ctx context.Context, scheduleID int64, totalSeats int) error {
	if totalSeats <= 0 {
		return errors.ValidationError("total seats must be positive")
	}

	mutex := r.lock(scheduleID)
	if err := mutex.LockContext(ctx); err != nil {
		return errors.InternalServerError("error acquire inventory lock")
	}
	defer mutex.UnlockContext(ctx)

	// publishing the same schedule twice must not reset a live counter
	exists, err := r.client.Exists(ctx, totalKey(scheduleID)).Result()
	if err != nil {
		return errors.InternalServerError("error check schedule inventory")
	}
	if exists > 0 {
		return nil
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, totalKey(scheduleID), totalSeats, 0)
	pipe.Set(ctx, seatsKey(scheduleID), totalSeats, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.InternalServerError("error create schedule inventory")
	}
	return nil
}

// ArchiveSchedule implements Repositories.
func (r *redisRepositories) ArchiveSchedule(ctx context.Context, scheduleID int64) error {
	mutex := r.lock(scheduleID)
	if err := mutex.LockContext(ctx); err != nil {
		return errors.InternalServerError("error acquire inventory lock")
	}
	defer mutex.UnlockContext(ctx)

	if err := r.client.Del(ctx, totalKey(scheduleID), seatsKey(scheduleID)).Err(); err != nil {
		return errors.InternalServerError("error archive schedule inventory")
	}
	return nil
}

// Reserve implements Repositories. Fails without side effects when fewer
// than count seats remain.
func (r *redisRepositories) Reserve(ctx context.Context, scheduleID int64, count int) error {
	if count <= 0 {
		return errors.ValidationError("reserve count must be positive")
	}

	mutex := r.lock(scheduleID)
	if err := mutex.LockContext(ctx); err != nil {
		return errors.InternalServerError("error acquire inventory lock")
	}
	defer mutex.UnlockContext(ctx)

	available, err := r.client.Get(ctx, seatsKey(scheduleID)).Int()
	if err == redis.Nil {
		return errors.NotFoundError("schedule inventory not found")
	}
	if err != nil {
		return errors.InternalServerError("error get available seats")
	}

	if available < count {
		return errors.InsufficientSeats(available, count)
	}

	if err := r.client.DecrBy(ctx, seatsKey(scheduleID), int64(count)).Err(); err != nil {
		return errors.InternalServerError("error decrement available seats")
	}
	return nil
}

// Release implements Repositories. Releasing past total seats means a
// caller released something it never reserved; the counter is clamped and
// the condition is surfaced as a conflict for the caller to report.
func (r *redisRepositories) Release(ctx context.Context, scheduleID int64, count int) error {
	if count <= 0 {
		return errors.ValidationError("release count must be positive")
	}

	mutex := r.lock(scheduleID)
	if err := mutex.LockContext(ctx); err != nil {
		return errors.InternalServerError("error acquire inventory lock")
	}
	defer mutex.UnlockContext(ctx)

	available, err := r.client.Get(ctx, seatsKey(scheduleID)).Int()
	if err == redis.Nil {
		return errors.NotFoundError("schedule inventory not found")
	}
	if err != nil {
		return errors.InternalServerError("error get available seats")
	}

	total, err := r.client.Get(ctx, totalKey(scheduleID)).Int()
	if err != nil {
		return errors.InternalServerError("error get total seats")
	}

	if available+count > total {
		if err := r.client.Set(ctx, seatsKey(scheduleID), total, 0).Err(); err != nil {
			return errors.InternalServerError("error clamp available seats")
		}
		return errors.Conflict(fmt.Sprintf("seat release exceeds capacity for schedule %d", scheduleID))
	}

	if err := r.client.IncrBy(ctx, seatsKey(scheduleID), int64(count)).Err(); err != nil {
		return errors.InternalServerError("error increment available seats")
	}
	return nil
}

// Availability implements Repositories. Both counters come back in a
// single MGET so a concurrent reserve or release cannot slip between the
// reads and skew the snapshot.
func (r *redisRepositories) Availability(ctx context.Context, scheduleID int64) (entity.ScheduleInventory, error) {
	values, err := r.client.MGet(ctx, seatsKey(scheduleID), totalKey(scheduleID)).Result()
	if err != nil {
		return entity.ScheduleInventory{}, errors.InternalServerError("error get schedule inventory")
	}
	if values[0] == nil || values[1] == nil {
		return entity.ScheduleInventory{}, errors.NotFoundError("schedule inventory not found")
	}

	available, err := strconv.Atoi(values[0].(string))
	if err != nil {
		return entity.ScheduleInventory{}, errors.InternalServerError("error parse available seats")
	}
	total, err := strconv.Atoi(values[1].(string))
	if err != nil {
		return entity.ScheduleInventory{}, errors.InternalServerError("error parse total seats")
	}

	return entity.ScheduleInventory{
		ScheduleID:     scheduleID,
		TotalSeats:     total,
		AvailableSeats: available,
	}, nil
}
