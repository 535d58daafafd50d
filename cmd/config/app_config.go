package config

import (
	"HomeStash-Backend/internal/api/handlers"
	"HomeStash-Backend/internal/api/routes"
	"HomeStash-Backend/internal/middleware"
	"HomeStash-Backend/internal/utils"
	"HomeStash-Backend/internal/utils/mailing"
	"HomeStash-Backend/internal/utils/storage"
	"HomeStash-Backend/pkg/item"
	"HomeStash-Backend/pkg/location"
	"HomeStash-Backend/pkg/stats"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	itemRepository := item.NewItemRepository(db)
	locationRepository := location.NewLocationRepository(db)
	statsRepository := stats.NewStatsRepository(db)

	// Service
	itemService := item.NewItemService(itemRepository, locationRepository, s3)
	locationService := location.NewLocationService(locationRepository)
	statsService := stats.NewStatsService(statsRepository, mailing.SendMail)

	// Handler
	itemHandler := handlers.NewItemHandler(itemService, validator)
	locationHandler := handlers.NewLocationHandler(locationService, validator)
	statsHandler := handlers.NewStatsHandler(statsService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		ItemHandler:     itemHandler,
		LocationHandler: locationHandler,
		StatsHandler:    statsHandler,
		Middleware:      middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
