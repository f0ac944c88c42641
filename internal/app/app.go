package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"storefront-backend/config"
	"storefront-backend/internal/controller"
	"storefront-backend/internal/infrastructure/identity"
	paymentgateway "storefront-backend/internal/infrastructure/payment-gateway"
	"storefront-backend/internal/infrastructure/tracing"
	localmiddleware "storefront-backend/internal/middleware"
	"storefront-backend/internal/repository"
	"storefront-backend/internal/service"

	"github.com/go-co-op/gocron/v2"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/mongo"
)

type App struct {
	DB            *mongo.Database
	Config        *config.Config
	Identity      *identity.FirebaseIdentityProvider
	Gateway       *paymentgateway.MidtransGateway
	KafkaProducer *kafka.Conn
	Server        *echo.Echo
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize tracing")
	}

	defer func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}()

	tracer := traceProvider.Tracer("storefront-backend")

	e := echo.New()

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// span creation and naming
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			// add the context to the request
			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	e.Use(localmiddleware.Logger)

	orderRepo := repository.CreateOrderRepository(app.DB)
	paymentSvc := service.CreatePaymentService(orderRepo, app.Gateway, app.Gateway, app.Identity, app.KafkaProducer)
	controller.CreatePaymentController(e, paymentSvc)

	e.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	s, err := gocron.NewScheduler()
	if err != nil {
		panic(err)
	}

	_, err = s.NewJob(
		gocron.DurationJob(
			60*time.Second,
		),
		gocron.NewTask(
			paymentSvc.ReconcilePendingPayments,
		),
	)
	if err != nil {
		panic(err)
	}

	s.Start()

	app.Server = e
	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)))
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
