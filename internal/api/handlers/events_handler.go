package handlers

import (
	"FreshTrack-Backend/pkg/realtime"
	"bufio"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

type (
	EventsHandler interface {
		Stream(c *fiber.Ctx) error
	}

	eventsHandler struct {
		hub *realtime.Hub
	}
)

func NewEventsHandler(hub *realtime.Hub) EventsHandler {
	return &eventsHandler{hub: hub}
}

// Stream pushes row-change events to the client over SSE. Clients treat
// any event as a cue to re-fetch the named table; the stream carries no
// row data.
func (h *eventsHandler) Stream(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")

	events, cancel := h.hub.Subscribe(userID)

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer cancel()

		keepAlive := time.NewTicker(30 * time.Second)
		defer keepAlive.Stop()

		for {
			select {
			case event, ok := <-events:
				if !ok {
					return
				}
				payload, err := json.Marshal(event)
				if err != nil {
					continue
				}
				if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			case <-keepAlive.C:
				// A comment line keeps intermediaries from closing the
				// connection; a failed write means the client is gone.
				if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	})

	return nil
}
