package api

import (
	"context"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sigmalogic/deviceprobe/internal/probe"
)

// Channel endpoint. The channel name may contain slashes and is matched by
// the greedy "+" parameter; percent-encoded names are decoded.
func (s *Server) postMessage(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("+"))
	if err != nil || name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "invalid channel name"})
	}
	if !s.messenger.HasHandler(name) {
		return c.Status(404).JSON(fiber.Map{"error": "no handler for channel " + name})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Copy the body; fasthttp reuses the buffer after the handler returns
	message := append([]byte(nil), c.Body()...)

	reply := s.messenger.Send(ctx, name, message)
	if len(reply) == 0 {
		return c.SendStatus(204)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(reply)
}

// Device endpoint
func (s *Server) getDevice(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	snapshot, err := probe.Collect(ctx, s.device)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(snapshot)
}
