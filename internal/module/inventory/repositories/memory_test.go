package repositories_test

import (
	"context"
	"sync"
	"testing"

	"railway-booking/internal/module/inventory/repositories"
	"railway-booking/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func TestReserve(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := repositories.NewMemory()
		assert.NoError(t, repo.CreateSchedule(ctx, 1, 10))

		err := repo.Reserve(ctx, 1, 3)
		assert.NoError(t, err)

		inventory, err := repo.Availability(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, 7, inventory.AvailableSeats)
		assert.Equal(t, 10, inventory.TotalSeats)
	})

	t.Run("insufficient seats", func(t *testing.T) {
		repo := repositories.NewMemory()
		assert.NoError(t, repo.CreateSchedule(ctx, 1, 2))

		err := repo.Reserve(ctx, 1, 3)
		assert.True(t, errors.HasCode(err, errors.CodeInsufficientSeats))

		// a failed reservation must not consume anything
		inventory, err := repo.Availability(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, 2, inventory.AvailableSeats)
	})

	t.Run("unknown schedule", func(t *testing.T) {
		repo := repositories.NewMemory()

		err := repo.Reserve(ctx, 99, 1)
		assert.True(t, errors.HasCode(err, errors.CodeNotFound))
	})

	t.Run("non positive count", func(t *testing.T) {
		repo := repositories.NewMemory()
		assert.NoError(t, repo.CreateSchedule(ctx, 1, 5))

		err := repo.Reserve(ctx, 1, 0)
		assert.True(t, errors.HasCode(err, errors.CodeValidationError))
	})
}

func TestReserveConcurrent(t *testing.T) {
	ctx := context.Background()

	t.Run("demand exceeds capacity", func(t *testing.T) {
		const totalSeats = 50
		const workers = 200

		repo := repositories.NewMemory()
		assert.NoError(t, repo.CreateSchedule(ctx, 1, totalSeats))

		var wg sync.WaitGroup
		results := make(chan error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results <- repo.Reserve(ctx, 1, 1)
			}()
		}
		wg.Wait()
		close(results)

		var succeeded, failed int
		for err := range results {
			if err == nil {
				succeeded++
			} else {
				assert.True(t, errors.HasCode(err, errors.CodeInsufficientSeats))
				failed++
			}
		}

		// exactly capacity wins, everyone else gets a clean rejection
		assert.Equal(t, totalSeats, succeeded)
		assert.Equal(t, workers-totalSeats, failed)

		inventory, err := repo.Availability(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, 0, inventory.AvailableSeats)
	})

	t.Run("two racing for the last seats", func(t *testing.T) {
		repo := repositories.NewMemory()
		assert.NoError(t, repo.CreateSchedule(ctx, 1, 2))

		var wg sync.WaitGroup
		results := make(chan error, 2)
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results <- repo.Reserve(ctx, 1, 2)
			}()
		}
		wg.Wait()
		close(results)

		var succeeded int
		for err := range results {
			if err == nil {
				succeeded++
			}
		}
		assert.Equal(t, 1, succeeded)

		inventory, err := repo.Availability(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, 0, inventory.AvailableSeats)
	})
}

func TestRelease(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := repositories.NewMemory()
		assert.NoError(t, repo.CreateSchedule(ctx, 1, 10))
		assert.NoError(t, repo.Reserve(ctx, 1, 4))

		err := repo.Release(ctx, 1, 4)
		assert.NoError(t, err)

		inventory, err := repo.Availability(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, 10, inventory.AvailableSeats)
	})

	t.Run("release beyond capacity clamps", func(t *testing.T) {
		repo := repositories.NewMemory()
		assert.NoError(t, repo.CreateSchedule(ctx, 1, 10))
		assert.NoError(t, repo.Reserve(ctx, 1, 2))

		err := repo.Release(ctx, 1, 5)
		assert.True(t, errors.HasCode(err, errors.CodeConflict))

		inventory, err := repo.Availability(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, 10, inventory.AvailableSeats)
	})
}

// Availability must snapshot both counters together: readers racing a
// stream of reserves and releases never see more available seats than
// the schedule holds, and never a negative count.
func TestAvailabilityConcurrent(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemory()
	assert.NoError(t, repo.CreateSchedule(ctx, 1, 10))

	done := make(chan struct{})
	var writer sync.WaitGroup
	writer.Add(1)
	go func() {
		defer writer.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			if err := repo.Reserve(ctx, 1, 3); err == nil {
				_ = repo.Release(ctx, 1, 3)
			}
		}
	}()

	var readers sync.WaitGroup
	for i := 0; i < 4; i++ {
		readers.Add(1)
		go func() {
			defer readers.Done()
			for j := 0; j < 500; j++ {
				inventory, err := repo.Availability(ctx, 1)
				assert.NoError(t, err)
				assert.LessOrEqual(t, inventory.AvailableSeats, inventory.TotalSeats)
				assert.GreaterOrEqual(t, inventory.AvailableSeats, 0)
			}
		}()
	}

	readers.Wait()
	close(done)
	writer.Wait()
}

func TestCreateSchedule(t *testing.T) {
	ctx := context.Background()

	t.Run("idempotent", func(t *testing.T) {
		repo := repositories.NewMemory()
		assert.NoError(t, repo.CreateSchedule(ctx, 1, 10))
		assert.NoError(t, repo.Reserve(ctx, 1, 3))

		// re-delivery of the same event must not reset the counter
		assert.NoError(t, repo.CreateSchedule(ctx, 1, 10))

		inventory, err := repo.Availability(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, 7, inventory.AvailableSeats)
	})

	t.Run("invalid seats", func(t *testing.T) {
		repo := repositories.NewMemory()
		err := repo.CreateSchedule(ctx, 1, 0)
		assert.True(t, errors.HasCode(err, errors.CodeValidationError))
	})
}

func TestArchiveSchedule(t *testing.T) {
	ctx := context.Background()

	repo := repositories.NewMemory()
	assert.NoError(t, repo.CreateSchedule(ctx, 1, 10))
	assert.NoError(t, repo.ArchiveSchedule(ctx, 1))

	_, err := repo.Availability(ctx, 1)
	assert.True(t, errors.HasCode(err, errors.CodeNotFound))
}
