// File: serenibook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"serenibook/config"
	"serenibook/cron"
	"serenibook/database"
	catalogRepo "serenibook/database/repository/catalog"
	professionalRepo "serenibook/database/repository/professional"
	schedulerRepo "serenibook/database/repository/scheduler"
	"serenibook/handlers"
	"serenibook/middleware"
	"serenibook/routes"
	"serenibook/services/notification"
	"serenibook/services/professional"
	"serenibook/services/scheduling"
	"serenibook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	profRepo := professionalRepo.NewMongoProfessionalRepo()
	catRepo := catalogRepo.NewMongoCatalogRepo()
	schedRepo := schedulerRepo.NewMongoSchedulerRepo()

	if err := profRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure professional indexes: %v", err)
	}
	if err := schedRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure scheduler indexes: %v", err)
	}

	// services.
	notificationService := &notification.LogNotificationService{}
	reminderScheduler := cron.NewAsynqReminderScheduler()

	scheduleService := &scheduling.DefaultScheduleService{
		ProfessionalRepo: profRepo,
		CatalogRepo:      catRepo,
		SchedulerRepo:    schedRepo,
		Reminders:        reminderScheduler,
		Cache:            utils.GetCacheClient(),
		CacheTTL:         time.Duration(config.AppConfig.AvailabilityCacheTTLSeconds) * time.Second,
	}
	professionalService := &professional.DefaultProfessionalService{
		Repo:  profRepo,
		Cache: scheduleService,
	}

	// Start the reminder worker.
	cron.InitReminderWorker(notificationService)

	// handlers.
	availabilityHandler := handlers.NewAvailabilityHandler(scheduleService, logger)
	bookingHandler := handlers.NewBookingHandler(scheduleService, logger)
	professionalHandler := handlers.NewProfessionalHandler(professionalService)
	catalogHandler := handlers.NewCatalogHandler(catRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ProfessionalRepo: profRepo,

		// Availability endpoints.
		GetDayAvailability: availabilityHandler.GetDayAvailability,
		CheckConflicts:     availabilityHandler.CheckConflicts,

		// Booking endpoints.
		CreateBooking: bookingHandler.CreateBooking,
		CancelBooking: bookingHandler.CancelBooking,

		// Group-session endpoints.
		CreateGroupSession: bookingHandler.CreateGroupSession,
		RegisterForSession: bookingHandler.RegisterForSession,
		CancelGroupSession: bookingHandler.CancelGroupSession,

		// Professional endpoints.
		RegisterProfessional:     professionalHandler.Register,
		AuthenticateProfessional: professionalHandler.Authenticate,
		GetProfessionalProfile:   professionalHandler.GetProfile,
		SetAvailability:          professionalHandler.SetAvailability,
		UpdateSettings:           professionalHandler.UpdateSettings,
		RevokeProfessionalToken:  professionalHandler.RevokeToken,

		// Catalog endpoints.
		CreateService: catalogHandler.CreateService,
		ListServices:  catalogHandler.ListServices,
		DeleteService: catalogHandler.DeleteService,
		CreateClient:  catalogHandler.CreateClient,
		ListClients:   catalogHandler.ListClients,
		DeleteClient:  catalogHandler.DeleteClient,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
