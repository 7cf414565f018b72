package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sigmalogic/deviceprobe/internal/channel"
	"github.com/sigmalogic/deviceprobe/internal/platform"
	"github.com/sigmalogic/deviceprobe/internal/probe"
)

// Server exposes the request channel over HTTP for desktop hosts
type Server struct {
	app       *fiber.App
	messenger *channel.Messenger
	device    *channel.MethodChannel
}

// NewServer creates a new API server routing requests into messenger.
// The device-info endpoint must already be registered on messenger.
func NewServer(messenger *channel.Messenger) (*Server, error) {
	// Validate platform support
	if err := platform.ValidateSupport(); err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           120 * time.Second,
		ServerHeader:          "deviceprobe",
		AppName:               "deviceprobe v1.0",
		DisableStartupMessage: true,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "*",
		MaxAge:       86400, // 24 hours
	}))

	server := &Server{
		app:       app,
		messenger: messenger,
		device:    channel.NewMethodChannel(messenger, probe.ChannelName, nil),
	}

	server.setupRoutes()
	return server, nil
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.app.Group("/api")

	// Raw request channel
	api.Post("/channels/+", s.postMessage)

	// Device information snapshot
	api.Get("/device", s.getDevice)

	// Health check
	api.Get("/health", s.healthCheck)
}

// App returns the underlying fiber app
func (s *Server) App() *fiber.App {
	return s.app
}

// Start starts the API server
func (s *Server) Start(address string) error {
	return s.app.Listen(address)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// Health check endpoint
func (s *Server) healthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"platform":  platform.Name(),
		"timestamp": time.Now().Unix(),
	})
}
