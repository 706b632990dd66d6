// Package httpapi exposes the mail, meeting, and storage operations
// over HTTP. Routes and request bodies keep the shape existing clients
// already use; errors come back as a normalised status+message pair.
package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v3"
	fiberlogger "github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/archeteam/workspaced/internal/core/ports/driving"
)

// Server wraps the fiber application with all routes registered.
type Server struct {
	app *fiber.App
}

// NewServer builds the HTTP server over the given operation surfaces.
func NewServer(mail driving.MailOps, calendar driving.CalendarOps, storage driving.StorageOps) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "workspaced",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())

	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	NewMailHandler(mail).Register(app)
	NewMeetingHandler(calendar).Register(app)
	NewStorageHandler(storage).Register(app)

	return &Server{app: app}
}

// Listen serves until shutdown or a listener error.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the underlying fiber application, primarily for tests.
func (s *Server) App() *fiber.App {
	return s.app
}
