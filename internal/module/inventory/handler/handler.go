package handler

import (
	"context"
	"fmt"
	"strconv"

	"railway-booking/internal/module/inventory/models/request"
	"railway-booking/internal/module/inventory/repositories"
	"railway-booking/internal/pkg/errors"
	"railway-booking/internal/pkg/helpers"
	"railway-booking/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	Log       log.Logger
	Validator *validator.Validate
	Repo      repositories.Repositories
	Publish   message.Publisher
}

// ConsumeSchedulePublished seeds the seat counter when the catalog
// service announces a new schedule.
func (h *InventoryHandler) ConsumeSchedulePublished(msg *message.Message) error {
	var req request.SchedulePublished
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Error(msg.Context(), fmt.Sprintf("error unmarshal schedule published message: %v", err))
		h.publishPoisoned("schedule_published", err, msg.Payload)
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Error(msg.Context(), fmt.Sprintf("error validate schedule published message: %v", err))
		h.publishPoisoned("schedule_published", err, msg.Payload)
		return err
	}

	ctx := context.Background()
	if err := h.Repo.CreateSchedule(ctx, req.ScheduleID, req.TotalSeats); err != nil {
		h.Log.Error(ctx, fmt.Sprintf("error create schedule inventory: %v", err))
		return err
	}

	return nil
}

// ConsumeScheduleRetired drops the counter for a retired schedule.
func (h *InventoryHandler) ConsumeScheduleRetired(msg *message.Message) error {
	var req request.ScheduleRetired
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Error(msg.Context(), fmt.Sprintf("error unmarshal schedule retired message: %v", err))
		h.publishPoisoned("schedule_retired", err, msg.Payload)
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Error(msg.Context(), fmt.Sprintf("error validate schedule retired message: %v", err))
		h.publishPoisoned("schedule_retired", err, msg.Payload)
		return err
	}

	ctx := context.Background()
	if err := h.Repo.ArchiveSchedule(ctx, req.ScheduleID); err != nil {
		h.Log.Error(ctx, fmt.Sprintf("error archive schedule inventory: %v", err))
		return err
	}

	return nil
}

// publishPoisoned parks an undecodable message for manual inspection so
// redelivery does not loop forever on it.
func (h *InventoryHandler) publishPoisoned(topicTarget string, cause error, payload []byte) {
	if h.Publish == nil {
		return
	}

	reqPoisoned := request.PoisonedQueue{
		TopicTarget: topicTarget,
		ErrorMsg:    cause.Error(),
		Payload:     payload,
	}

	jsonPayload, err := json.Marshal(reqPoisoned)
	if err != nil {
		h.Log.Error(context.Background(), fmt.Sprintf("error marshal poisoned message: %v", err))
		return
	}

	if err := h.Publish.Publish("poisoned_queue", message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		h.Log.Error(context.Background(), fmt.Sprintf("error publish to poison queue: %v", err))
	}
}

func (h *InventoryHandler) ShowAvailability(ctx *fiber.Ctx) error {
	scheduleID, err := strconv.ParseInt(ctx.Query("schedule_id"), 10, 64)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error parse schedule id: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse schedule id"))
	}

	inventory, err := h.Repo.Availability(ctx.UserContext(), scheduleID)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error show availability: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, inventory, "success show availability")
}
