package main

import (
	"brokerage-service/internal/app/config"
	"brokerage-service/internal/app/delivery/http/middlewares"
	"brokerage-service/internal/app/delivery/http/routers"
	"brokerage-service/internal/app/drivers/database"
	"brokerage-service/internal/app/drivers/logger"
	"brokerage-service/internal/app/drivers/messaging"
	"brokerage-service/internal/app/services/core/catalog"
	"brokerage-service/internal/app/services/core/content"
	"brokerage-service/internal/app/services/core/leads"
	"brokerage-service/internal/app/services/core/offices"
	"brokerage-service/internal/app/services/shared/clock"
	"brokerage-service/internal/app/services/shared/leadqueue"
	"brokerage-service/internal/app/services/shared/locker"
	"brokerage-service/internal/app/services/shared/redis"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	site, err := config.LoadSiteDefinition(internalConfig.App.SiteDefinitionPath)
	if err != nil {
		log.Fatalf("Error loading site definition: %v", err)
	}

	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
		Site:           site,
	}

	bootstrapTheApp(bootstrap, location)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap, location *time.Location) {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	systemClock := clock.NewSystemClock()

	leadQueueService, err := leadqueue.NewLeadQueueService(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.Relay.LeadQueue,
		bootstrap.InternalConfig.Relay.MaxQueue,
	)
	if err != nil {
		log.Fatalf("Error initializing lead queue: %v", err)
	}

	// Middlewares
	appMiddlewares := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		InternalConfig: bootstrap.InternalConfig,
	}

	// Catalog
	catalogUsecase := catalog.NewCatalogUsecase(bootstrap.Logger, redisRepository, bootstrap.InternalConfig, bootstrap.Site)
	catalogController := catalog.NewCatalogController(bootstrap.Logger, catalogUsecase)

	// Offices
	officeUsecase := offices.NewOfficeUsecase(bootstrap.Logger, bootstrap.Site, systemClock, location)
	officeController := offices.NewOfficeController(bootstrap.Logger, officeUsecase)

	// Content
	contentUsecase := content.NewContentUsecase(bootstrap.Logger, redisRepository, bootstrap.InternalConfig, bootstrap.Site)
	contentController := content.NewContentController(bootstrap.Logger, contentUsecase)

	// Leads
	leadUsecase := leads.NewLeadUsecase(bootstrap.Logger, leadQueueService, systemClock)
	leadController := leads.NewLeadController(bootstrap.Logger, leadUsecase)

	relayWorker := leads.NewRelayWorker(
		bootstrap.Logger,
		bootstrap.InternalConfig,
		lockerService,
		leadQueueService,
		bootstrap.Site.Profile.Name,
	)
	bootstrap.WorkerStop = relayWorker.Start(context.Background())

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		catalogController,
		officeController,
		contentController,
		leadController,
	)
}
