package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/bargaoui/rideaux/app/controllers"
	appgraphql "github.com/bargaoui/rideaux/app/graphql"
	"github.com/bargaoui/rideaux/app/jobs"
	"github.com/bargaoui/rideaux/app/models"
	"github.com/bargaoui/rideaux/app/repositories"
	"github.com/bargaoui/rideaux/app/routes"
	"github.com/bargaoui/rideaux/app/services"
	"github.com/bargaoui/rideaux/config"
	"github.com/bargaoui/rideaux/pkg/cache"
	"github.com/bargaoui/rideaux/pkg/database"
	"github.com/bargaoui/rideaux/pkg/event"
	"github.com/bargaoui/rideaux/pkg/logger"
	"github.com/bargaoui/rideaux/pkg/metrics"
	"github.com/bargaoui/rideaux/pkg/middleware"
	"github.com/bargaoui/rideaux/pkg/queue"
	"github.com/bargaoui/rideaux/pkg/reqid"
	"github.com/bargaoui/rideaux/pkg/router"
	"github.com/bargaoui/rideaux/pkg/storage"
	"github.com/bargaoui/rideaux/pkg/ws"
)

const shutdownTimeout = 10 * time.Second

// Start boots the whole storefront: config, Mongo, Redis, storage, queue
// workers, the websocket hub and the HTTP server. It blocks until SIGINT or
// SIGTERM, then drains in-flight requests.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}
	models.SetTaxRate(config.TaxRate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := database.Connect(ctx); err != nil {
		return err
	}
	defer database.Disconnect(context.Background())

	cache.Connect()
	storage.Connect()

	if _, err := logger.EnableMongo(config.MongoURI(), config.MongoDB()); err != nil {
		logger.Warn("mongo log sink unavailable", "error", err)
	}

	bootQueue(ctx)

	r := router.New()
	r.Use(
		metrics.Middleware(),
		reqid.Middleware(),
		middleware.Recovery,
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions(config.ClientURL())),
		middleware.RateLimit(rateLimitMax(), time.Minute),
	)

	deps, err := buildDeps()
	if err != nil {
		return err
	}
	routes.RegisterAPI(r, deps)

	srv := &http.Server{
		Addr:         ":" + config.AppPort(),
		Handler:      r.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func rateLimitMax() int {
	max, err := strconv.Atoi(config.Get("RATE_LIMIT_PER_MINUTE", "300"))
	if err != nil || max < 1 {
		return 300
	}
	return max
}

// buildDeps wires repositories, services and controllers together.
func buildDeps() (routes.Deps, error) {
	db := database.DB()

	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	storeRepo := repositories.NewStoreRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	consultationRepo := repositories.NewConsultationRepository(db)

	var cartStore repositories.CartStore
	if cache.RDB != nil {
		cartStore = repositories.NewRedisCartStore(cache.RDB)
	} else {
		cartStore = repositories.NewMemoryCartStore()
	}

	mailer := services.SMTPMailer{}
	notifier := jobs.QueueNotifier{}

	authService := services.NewAuthService(userRepo, mailer)
	catalogService := services.NewCatalogService(productRepo)
	cartService := services.NewCartService(cartStore, productRepo)
	orderService := services.NewOrderService(orderRepo, userRepo, productRepo, notifier)
	storeService := services.NewStoreService(storeRepo)
	consultationService := services.NewConsultationService(consultationRepo, notifier)

	schema, err := appgraphql.NewSchema(catalogService)
	if err != nil {
		return routes.Deps{}, err
	}

	hub := ws.NewHub()
	go hub.Run()
	wireOrderFeed(hub)

	return routes.Deps{
		Auth:          controllers.NewAuthController(authService),
		Users:         controllers.NewUserController(authService, userRepo),
		Products:      controllers.NewProductController(catalogService),
		Cart:          controllers.NewCartController(cartService),
		Orders:        controllers.NewOrderController(orderService),
		Stores:        controllers.NewStoreController(storeService),
		Consultations: controllers.NewConsultationController(consultationService),
		Emails:        controllers.NewEmailController(mailer),
		Uploads:       controllers.NewUploadController(),
		Schema:        schema,
		OrderFeed:     hub,
	}, nil
}

// bootQueue selects the queue driver, registers job types and starts the
// in-process workers. Failed jobs land in the failed_jobs collection.
func bootQueue(ctx context.Context) {
	if config.Get("QUEUE_DRIVER", "memory") == "redis" && cache.RDB != nil {
		queue.SetDriver(queue.NewRedisDriver(cache.RDB))
	}
	queue.UseMongo(database.DB().Collection("failed_jobs"))
	jobs.RegisterAll()

	workers, err := strconv.Atoi(config.Get("QUEUE_WORKERS", "5"))
	if err != nil || workers < 1 {
		workers = 5
	}
	queue.StartWorkers(ctx, workers)
}

// wireOrderFeed pushes every order.created event to connected admin
// dashboards as JSON.
func wireOrderFeed(hub *ws.Hub) {
	event.Listen(services.EventOrderCreated, func(payload interface{}) {
		order, ok := payload.(models.Order)
		if !ok {
			return
		}
		metrics.OrdersPlaced.WithLabelValues(string(order.PaymentMethod)).Inc()

		msg, err := json.Marshal(map[string]any{
			"event": services.EventOrderCreated,
			"order": order,
		})
		if err != nil {
			logger.Error("order feed marshal failed", "error", err)
			return
		}
		hub.Broadcast <- msg
	})
}
