package main

import (
	"context"
	"log"

	"railway-booking/config"
	bookinghandler "railway-booking/internal/module/booking/handler"
	bookingrepo "railway-booking/internal/module/booking/repositories"
	bookingusecases "railway-booking/internal/module/booking/usecases"
	inventoryhandler "railway-booking/internal/module/inventory/handler"
	inventoryrepo "railway-booking/internal/module/inventory/repositories"
	ledgerrepo "railway-booking/internal/module/ledger/repositories"
	paymenthandler "railway-booking/internal/module/payment/handler"
	paymentrepo "railway-booking/internal/module/payment/repositories"
	paymentusecases "railway-booking/internal/module/payment/usecases"
	refundhandler "railway-booking/internal/module/refund/handler"
	refundrepo "railway-booking/internal/module/refund/repositories"
	refundusecases "railway-booking/internal/module/refund/usecases"
	"railway-booking/internal/pkg/database"
	"railway-booking/internal/pkg/http"
	"railway-booking/internal/pkg/httpclient"
	log_internal "railway-booking/internal/pkg/log"
	"railway-booking/internal/pkg/messagestream"
	"railway-booking/internal/pkg/middleware"
	"railway-booking/internal/pkg/redis"
	"railway-booking/internal/pkg/scheduler"
	router "railway-booking/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters := initService(cfg)

	for _, r := range messageRouters {
		ctx := context.Background()
		go func(r *message.Router) {
			if err := r.Run(ctx); err != nil {
				log.Fatal(err)
			}
		}(r)
	}

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router) {

	// init database
	db := database.GetConnection(&cfg.Database)
	// init redis
	redisClient := redis.SetupClient(&cfg.Redis)
	// init logger
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()
	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)

	ctx := context.Background()
	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Error(ctx, "Failed to create subscriber", err)
	}

	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Error(ctx, "Failed to create publisher", err)
	}

	// init scheduler
	schedulerSvc := scheduler.Scheduler{Log: logger}
	taskClient := schedulerSvc.InitClient(&cfg.Redis)

	validate := validator.New()

	ledgerRepo := ledgerrepo.New(db, logger)
	inventoryRepo := inventoryrepo.New(redisClient, logger)
	paymentRepo := paymentrepo.New(db, logger)
	refundRepo := refundrepo.New(db, logger)
	bookingRepo := bookingrepo.New(db, logger, httpClient, &cfg.UserService, &cfg.CatalogService)

	paymentUsecase := paymentusecases.New(paymentRepo, ledgerRepo, logger)
	bookingUsecase := bookingusecases.New(bookingRepo, inventoryRepo, paymentUsecase, refundRepo, logger, publisher, taskClient, cfg.Refund.Policy)
	refundUsecase := refundusecases.New(refundRepo, paymentUsecase, logger, publisher)

	m := middleware.Middleware{
		Log:  logger,
		Repo: bookingRepo,
	}

	bookingHandler := bookinghandler.BookingHandler{
		Log:       logger,
		Validator: validate,
		Usecase:   bookingUsecase,
	}
	paymentHandler := paymenthandler.PaymentHandler{
		Log:       logger,
		Validator: validate,
		Usecase:   paymentUsecase,
	}
	inventoryHandler := inventoryhandler.InventoryHandler{
		Log:       logger,
		Validator: validate,
		Repo:      inventoryRepo,
		Publish:   publisher,
	}
	refundHandler := refundhandler.RefundHandler{
		Log:       logger,
		Validator: validate,
		Usecase:   refundUsecase,
	}

	var messageRouters []*message.Router

	schedulePublishedRouter, err := messagestream.NewRouter(publisher, "schedule_published_poisoned", "schedule_published_handler", "schedule_published", subscriber, inventoryHandler.ConsumeSchedulePublished)
	if err != nil {
		logger.Error(ctx, "Failed to create schedule_published router", err)
	}
	messageRouters = append(messageRouters, schedulePublishedRouter)

	scheduleRetiredRouter, err := messagestream.NewRouter(publisher, "schedule_retired_poisoned", "schedule_retired_handler", "schedule_retired", subscriber, inventoryHandler.ConsumeScheduleRetired)
	if err != nil {
		logger.Error(ctx, "Failed to create schedule_retired router", err)
	}
	messageRouters = append(messageRouters, scheduleRetiredRouter)

	// deferred task worker and its dashboard
	go schedulerSvc.StartHandler(&cfg.Redis,
		[]string{scheduler.TypeCompleteBooking},
		[]func(ctx context.Context, t *asynq.Task) error{bookingHandler.CompleteBookingTask},
	)
	go schedulerSvc.StartMonitoring(&cfg.Redis)

	serverHttp := http.SetupHttpEngine()

	r := router.Initialize(serverHttp, &bookingHandler, &paymentHandler, &inventoryHandler, &refundHandler, &m)

	return r, messageRouters

}
