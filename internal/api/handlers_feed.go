package api

import (
	"bufio"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
)

// GetFeed returns the current full feed snapshot, newest post first.
func (handler *Handler) GetFeed(c *fiber.Ctx) error {
	snapshot, err := handler.feed.Snapshot()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load feed")
	}
	return c.JSON(fiber.Map{"posts": snapshot})
}

// StreamFeed is the live subscription: a server-sent event stream that
// delivers the full re-rendered snapshot after every collection change,
// starting with the current one. The subscription is torn down when the
// client goes away; reconnecting is the EventSource's own retry.
func (handler *Handler) StreamFeed(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	deliveries, unsubscribe := handler.feed.Subscribe(nil)

	c.Context().SetBodyStreamWriter(func(writer *bufio.Writer) {
		defer unsubscribe()

		for snapshot := range deliveries {
			payload, err := json.Marshal(snapshot)
			if err != nil {
				continue
			}
			if _, err := writer.WriteString("data: " + string(payload) + "\n\n"); err != nil {
				return
			}
			if err := writer.Flush(); err != nil {
				return
			}
		}
	})

	return nil
}
