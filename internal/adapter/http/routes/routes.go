package routes

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"strconv"
	"syscall"

	_ "contractor_pipeline/docs" // swag generated
	"contractor_pipeline/internal/adapter/http/handlers"
	"contractor_pipeline/internal/adapter/persistence/memory"
	"contractor_pipeline/internal/adapter/persistence/repository"
	"contractor_pipeline/internal/infrastructure/config"
	"contractor_pipeline/internal/infrastructure/database"
	"contractor_pipeline/internal/infrastructure/events"
	"contractor_pipeline/internal/infrastructure/payments"
	"contractor_pipeline/internal/usecase"
	"contractor_pipeline/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := buildDependencies(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to wire dependencies: %v", err)
	}

	go deps.sweeper.Run(ctx, cfg.OverdueSweepInterval)

	router := newRouter(deps.handlers)
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

type handlerSet struct {
	leads     *handlers.LeadHandler
	companies *handlers.CompanyHandler
	estimates *handlers.EstimateHandler
	jobs      *handlers.JobHandler
	invoices  *handlers.InvoiceHandler
	payments  *handlers.InvoicePaymentHandler
}

type dependencies struct {
	handlers handlerSet
	sweeper  *usecase.OverdueSweeper
}

type persistence struct {
	uow    interfaces.IUnitOfWork
	finder interfaces.IOverdueFinder
	sink   interfaces.IEventSink
}

func buildDependencies(ctx context.Context, cfg config.Config) (dependencies, error) {
	store, err := newPersistence(ctx, cfg)
	if err != nil {
		return dependencies{}, err
	}
	return wire(store, newPaymentGateway(cfg), paymentSettings(cfg)), nil
}

func newPersistence(ctx context.Context, cfg config.Config) (persistence, error) {
	switch cfg.PersistenceDriver {
	case config.DriverMemory:
		log.Printf("[pipeline][wiring] persistence=memory")
		store := memory.New()
		return persistence{uow: store, finder: store, sink: events.LogSink{}}, nil
	case config.DriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return persistence{}, fmt.Errorf("connect dynamodb: %w", err)
		}
		log.Printf("[pipeline][wiring] persistence=dynamodb")
		tables := repository.Tables(cfg.Tables)
		return persistence{
			uow:    repository.NewDynamoUnitOfWork(ddb, tables),
			finder: repository.NewOverdueInvoiceDynamoFinder(ddb, tables.Invoices),
			sink: events.FanOut{
				events.LogSink{},
				repository.NewTransitionEventDynamoRepository(ddb, tables.Events),
			},
		}, nil
	default:
		return persistence{}, fmt.Errorf("unsupported persistence driver %q", cfg.PersistenceDriver)
	}
}

func newPaymentGateway(cfg config.Config) interfaces.IPaymentGateway {
	if cfg.PaymentGatewayMock {
		log.Printf("[pipeline][wiring] payment gateway in mock mode")
		return nil
	}
	gateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
		return nil
	}
	return gateway
}

func paymentSettings(cfg config.Config) usecase.PaymentSettings {
	return usecase.PaymentSettings{
		MockMode:           cfg.PaymentGatewayMock,
		AccessToken:        cfg.MercadoPagoAccessToken,
		SandboxPayerEmail:  cfg.SandboxPayerEmail,
		SandboxPayerUserID: cfg.SandboxPayerUserID,
	}
}

func wire(p persistence, gateway interfaces.IPaymentGateway, settings usecase.PaymentSettings, opts ...usecase.Option) dependencies {
	invoices := usecase.NewInvoiceUseCase(p.uow, p.sink, opts...)
	return dependencies{
		handlers: handlerSet{
			leads:     handlers.NewLeadHandler(usecase.NewLeadUseCase(p.uow, p.sink, opts...)),
			companies: handlers.NewCompanyHandler(usecase.NewCompanyUseCase(p.uow, opts...)),
			estimates: handlers.NewEstimateHandler(usecase.NewEstimateUseCase(p.uow, p.sink, opts...)),
			jobs:      handlers.NewJobHandler(usecase.NewJobUseCase(p.uow, p.sink, opts...)),
			invoices:  handlers.NewInvoiceHandler(invoices),
			payments:  handlers.NewInvoicePaymentHandler(usecase.NewInvoicePaymentUseCase(p.uow, p.sink, gateway, settings, opts...)),
		},
		sweeper: usecase.NewOverdueSweeper(p.finder, invoices, opts...),
	}
}

func newRouter(h handlerSet) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	addPingRoutes(router)

	v1 := router.Group("/v1", handlers.RequireTenant())
	addLeadRoutes(v1, h.leads, h.companies)
	addEstimateRoutes(v1, h.estimates)
	addJobRoutes(v1, h.jobs)
	addInvoiceRoutes(v1, h.invoices, h.payments)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
