// File: fixify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fixify/config"
	"fixify/database"
	bookingRepo "fixify/database/repository/booking"
	"fixify/handlers"
	"fixify/middleware"
	"fixify/routes"
	"fixify/scheduling"
	calendarSvc "fixify/services/calendar"

	booking "fixify/services/booking"
	"fixify/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func parseWeekdays(names []string) []time.Weekday {
	byName := map[string]time.Weekday{
		"Sunday":    time.Sunday,
		"Monday":    time.Monday,
		"Tuesday":   time.Tuesday,
		"Wednesday": time.Wednesday,
		"Thursday":  time.Thursday,
		"Friday":    time.Friday,
		"Saturday":  time.Saturday,
	}
	var out []time.Weekday
	for _, name := range names {
		if wd, ok := byName[name]; ok {
			out = append(out, wd)
		}
	}
	return out
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitHoldCache()

	stripe.Key = config.AppConfig.StripeKey

	// Scheduling core.
	bt, err := scheduling.NewBusinessTime(
		config.AppConfig.BusinessTimezone,
		time.Duration(config.AppConfig.SlotDurationMinutes)*time.Minute,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid scheduling configuration: %v", err)
	}
	grid, err := scheduling.NewSlotGrid(bt, config.AppConfig.SlotTimes, parseWeekdays(config.AppConfig.WorkingDays))
	if err != nil {
		logger.Sugar().Fatalf("main: invalid slot grid configuration: %v", err)
	}

	gcal, err := calendarSvc.NewGoogleCalendar(
		context.Background(),
		config.AppConfig.GoogleCredentialsFile,
		config.AppConfig.CalendarID,
		config.AppConfig.BusinessTimezone,
		logger,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize google calendar: %v", err)
	}

	resolver := scheduling.NewResolver(bt, grid, gcal,
		time.Duration(config.AppConfig.AvailabilityTTLMins)*time.Minute, logger)

	// Repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	if err := bookings.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}

	// Services.
	bookingService := &booking.DefaultBookingService{
		Repo:     bookings,
		Resolver: resolver,
		Calendar: gcal,
		Holds: &booking.SlotHold{
			Client: utils.GetHoldCacheClient(),
			TTL:    time.Duration(config.AppConfig.SlotHoldTTLMins) * time.Minute,
		},
		Payments: &booking.StripePaymentHandler{Logger: logger},
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	availabilityHandler := handlers.NewAvailabilityHandler(resolver)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	routes.RegisterRoutes(router, availabilityHandler, bookingHandler)

	utils.StartHealthMonitor(utils.GetHoldCacheClient(), database.MongoClient)

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
