package routes

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"

	_ "fightreel_quotes/docs" // generated by swag init
	"fightreel_quotes/internal/adapter/http/handlers"
	"fightreel_quotes/internal/adapter/persistence/repository"
	"fightreel_quotes/internal/config"
	"fightreel_quotes/internal/infrastructure/database"
	"fightreel_quotes/internal/infrastructure/payments"
	"fightreel_quotes/internal/logger"
	"fightreel_quotes/internal/metrics"
	"fightreel_quotes/internal/usecase"
	"fightreel_quotes/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run builds the router from cfg and serves it until the listener fails.
func Run(cfg config.Config) error {
	router, err := NewRouter(context.Background(), cfg)
	if err != nil {
		return err
	}

	addr := ":" + strconv.Itoa(cfg.Port)
	logger.Log.Info("starting http server", zap.String("addr", addr), zap.String("storage", cfg.Storage))
	if err := router.Run(addr); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

// NewRouter wires repositories, use cases and handlers onto a gin engine.
func NewRouter(ctx context.Context, cfg config.Config) (*gin.Engine, error) {
	quoteRepo, paymentRepo, err := newRepositories(ctx, cfg)
	if err != nil {
		return nil, err
	}

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, cfg.Catalog)
	paymentUseCase := usecase.NewQuotePaymentUseCase(paymentRepo, quoteRepo, newPaymentGateway(cfg), usecase.PaymentOptions{
		MockMode:       cfg.PaymentGatewayMock,
		TestPayerEmail: cfg.TestPayerEmail,
	})

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase, cfg.PaymentGatewayMock)

	router := gin.New()
	setMiddlewares(router)

	router.GET("/metrics", metrics.Handler())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler, paymentHandler)
	return router, nil
}

func newRepositories(ctx context.Context, cfg config.Config) (interfaces.IQuoteRepository, interfaces.IQuotePaymentRepository, error) {
	if cfg.Storage == config.StorageMemory {
		logger.Log.Warn("using in-memory storage; quotes are lost on restart")
		return repository.NewMemoryQuoteRepository(), repository.NewMemoryQuotePaymentRepository(), nil
	}

	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	// Local DynamoDB starts empty; a managed table is provisioned out of band.
	if os.Getenv("DYNAMODB_ENDPOINT") != "" {
		if err := database.EnsureTables(ctx, ddb, cfg.QuotesTable, cfg.PaymentsTable); err != nil {
			return nil, nil, err
		}
	}
	return repository.NewQuoteDynamoRepository(ddb, cfg.QuotesTable),
		repository.NewQuotePaymentDynamoRepository(ddb, cfg.PaymentsTable), nil
}

func newPaymentGateway(cfg config.Config) interfaces.IPaymentGateway {
	if cfg.PaymentGatewayMock {
		logger.Log.Info("payment gateway running in mock mode")
		return nil
	}
	gw, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
	if err != nil {
		logger.Log.Warn("Mercado Pago gateway not configured", zap.Error(err))
		return nil
	}
	return gw
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Log.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(metrics.Middleware())
}
