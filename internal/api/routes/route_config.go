package routes

import (
	"HomeStash-Backend/internal/api/handlers"
	"HomeStash-Backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	ItemHandler     handlers.ItemHandler
	LocationHandler handlers.LocationHandler
	StatsHandler    handlers.StatsHandler
	Middleware      middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Items()
	c.Locations()
	c.Stats()
	c.GuestRoute()
	c.Frontend()
}

func (c *Config) Items() {
	items := c.App.Group("/api/v1/items")

	// Fixed paths are registered before :id so they are not captured by it.
	items.Get("/categories", c.ItemHandler.GetCategories)
	items.Delete("/bulk", c.ItemHandler.BulkDeleteItems)
	items.Put("/bulk", c.ItemHandler.BulkRelocateItems)

	// Basic CRUD operations
	items.Post("", c.ItemHandler.AddItem)
	items.Get("", c.ItemHandler.GetItems)
	items.Get("/:id", c.ItemHandler.GetItemDetails)
	items.Put("/:id", c.ItemHandler.UpdateItem)
	items.Delete("/:id", c.ItemHandler.DeleteItem)
	items.Post("/:id/image", c.ItemHandler.UploadItemImage)
}

func (c *Config) Locations() {
	locations := c.App.Group("/api/v1/locations")

	locations.Get("/rooms", c.LocationHandler.GetRooms)

	locations.Post("", c.LocationHandler.AddLocation)
	locations.Get("", c.LocationHandler.GetLocations)
	locations.Get("/:id", c.LocationHandler.GetLocationDetails)
	locations.Put("/:id", c.LocationHandler.UpdateLocation)
	locations.Delete("/:id", c.LocationHandler.DeleteLocation)
}

func (c *Config) Stats() {
	stats := c.App.Group("/api/v1/stats")

	stats.Get("", c.StatsHandler.GetInventoryStats)
	stats.Post("/expiry-report", c.StatsHandler.SendExpiryReport)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Frontend() {
	c.App.Static("/", "./web")
}
