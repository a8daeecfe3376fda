package handler_test

import (
	"context"
	"testing"

	"railway-booking/internal/module/inventory/handler"
	"railway-booking/internal/module/inventory/repositories"
	"railway-booking/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

var (
	h       *handler.InventoryHandler
	repo    repositories.Repositories
	logMock log.Logger
)

func setup() {
	repo = repositories.NewMemory()
	logZap := log.SetupLogger()
	log.Init(logZap)
	logMock = log.GetLogger()
	h = &handler.InventoryHandler{
		Log:       logMock,
		Validator: validator.New(),
		Repo:      repo,
	}
}

func TestConsumeSchedulePublished(t *testing.T) {
	setup()

	t.Run("success", func(t *testing.T) {
		msg := message.NewMessage(watermill.NewUUID(), []byte(`{"schedule_id": 10, "total_seats": 120}`))

		err := h.ConsumeSchedulePublished(msg)
		assert.NoError(t, err)

		inventory, err := repo.Availability(context.Background(), 10)
		assert.NoError(t, err)
		assert.Equal(t, 120, inventory.AvailableSeats)
	})

	t.Run("malformed payload", func(t *testing.T) {
		msg := message.NewMessage(watermill.NewUUID(), []byte(`{"schedule_id": `))

		err := h.ConsumeSchedulePublished(msg)
		assert.Error(t, err)
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		msg := message.NewMessage(watermill.NewUUID(), []byte(`{"schedule_id": 11}`))

		err := h.ConsumeSchedulePublished(msg)
		assert.Error(t, err)
	})
}

func TestConsumeScheduleRetired(t *testing.T) {
	setup()

	msg := message.NewMessage(watermill.NewUUID(), []byte(`{"schedule_id": 10, "total_seats": 120}`))
	assert.NoError(t, h.ConsumeSchedulePublished(msg))

	retired := message.NewMessage(watermill.NewUUID(), []byte(`{"schedule_id": 10}`))
	assert.NoError(t, h.ConsumeScheduleRetired(retired))

	_, err := repo.Availability(context.Background(), 10)
	assert.Error(t, err)
}
