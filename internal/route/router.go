package router

import (
	bookinghandler "railway-booking/internal/module/booking/handler"
	inventoryhandler "railway-booking/internal/module/inventory/handler"
	paymenthandler "railway-booking/internal/module/payment/handler"
	refundhandler "railway-booking/internal/module/refund/handler"
	"railway-booking/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

func Initialize(
	app *fiber.App,
	handlerBooking *bookinghandler.BookingHandler,
	handlerPayment *paymenthandler.PaymentHandler,
	handlerInventory *inventoryhandler.InventoryHandler,
	handlerRefund *refundhandler.RefundHandler,
	m *middleware.Middleware,
) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api")

	v1 := Api.Group("/v1", m.ValidateToken)

	v1.Post("/bookings", handlerBooking.CreateBooking)
	v1.Get("/bookings", handlerBooking.ShowBookings)
	v1.Get("/bookings/:id", handlerBooking.FindBooking)
	v1.Put("/bookings/:id/passengers", handlerBooking.UpdatePassengers)
	v1.Post("/bookings/:id/cancel", handlerBooking.CancelBooking)

	v1.Get("/wallet", handlerPayment.GetWallet)
	v1.Post("/wallet/topup", handlerPayment.TopUpWallet)
	v1.Post("/funding-sources", handlerPayment.AddSource)
	v1.Get("/funding-sources", handlerPayment.ListSources)
	v1.Delete("/funding-sources/:id", handlerPayment.DeactivateSource)
	v1.Get("/funding-sources/:id/transactions", handlerPayment.SourceTransactions)
	v1.Get("/payments", handlerPayment.ListPayments)

	v1.Get("/schedules/availability", handlerInventory.ShowAvailability)

	admin := Api.Group("/admin", m.ValidateToken, m.ValidateAdmin)
	admin.Get("/refund-requests", handlerRefund.PendingRequests)
	admin.Post("/refund-requests/:id/approve", handlerRefund.ApproveRequest)
	admin.Post("/refund-requests/:id/reject", handlerRefund.RejectRequest)

	return app

}
