package repositories

import (
	"context"
	"fmt"
	"sync"

	"railway-booking/internal/module/inventory/models/entity"
	"railway-booking/internal/pkg/errors"
)

// memoryRepositories is the in-process counterpart of the Redis tracker.
// One mutex per schedule keeps cross-schedule operations independent.
type memoryRepositories struct {
	mu        sync.RWMutex
	schedules map[int64]*memorySchedule
}

type memorySchedule struct {
	mu        sync.Mutex
	total     int
	available int
}

func NewMemory() Repositories {
	return &memoryRepositories{
		schedules: make(map[int64]*memorySchedule),
	}
}

func (r *memoryRepositories) CreateSchedule(ctx context.Context, scheduleID int64, totalSeats int) error {
	if totalSeats <= 0 {
		return errors.ValidationError("total seats must be positive")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.schedules[scheduleID]; exists {
		return nil
	}
	r.schedules[scheduleID] = &memorySchedule{total: totalSeats, available: totalSeats}
	return nil
}

func (r *memoryRepositories) ArchiveSchedule(ctx context.Context, scheduleID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.schedules, scheduleID)
	return nil
}

func (r *memoryRepositories) Reserve(ctx context.Context, scheduleID int64, count int) error {
	if count <= 0 {
		return errors.ValidationError("reserve count must be positive")
	}

	r.mu.RLock()
	schedule, ok := r.schedules[scheduleID]
	r.mu.RUnlock()
	if !ok {
		return errors.NotFoundError("schedule inventory not found")
	}

	schedule.mu.Lock()
	defer schedule.mu.Unlock()

	if schedule.available < count {
		return errors.InsufficientSeats(schedule.available, count)
	}
	schedule.available -= count
	return nil
}

func (r *memoryRepositories) Release(ctx context.Context, scheduleID int64, count int) error {
	if count <= 0 {
		return errors.ValidationError("release count must be positive")
	}

	r.mu.RLock()
	schedule, ok := r.schedules[scheduleID]
	r.mu.RUnlock()
	if !ok {
		return errors.NotFoundError("schedule inventory not found")
	}

	schedule.mu.Lock()
	defer schedule.mu.Unlock()

	if schedule.available+count > schedule.total {
		schedule.available = schedule.total
		return errors.Conflict(fmt.Sprintf("seat release exceeds capacity for schedule %d", scheduleID))
	}
	schedule.available += count
	return nil
}

func (r *memoryRepositories) Availability(ctx context.Context, scheduleID int64) (entity.ScheduleInventory, error) {
	r.mu.RLock()
	schedule, ok := r.schedules[scheduleID]
	r.mu.RUnlock()
	if !ok {
		return entity.ScheduleInventory{}, errors.NotFoundError("schedule inventory not found")
	}

	schedule.mu.Lock()
	defer schedule.mu.Unlock()

	return entity.ScheduleInventory{
		ScheduleID:     scheduleID,
		TotalSeats:     schedule.total,
		AvailableSeats: schedule.available,
	}, nil
}
