package events

import (
	"encoding/json"
	"fmt"
	"net/http"

	"gh-pr-mirror/internal/domain/models"
	"gh-pr-mirror/internal/infrastructure/http/handlers/dto"
	"gh-pr-mirror/internal/infrastructure/logger"
	"gh-pr-mirror/internal/utils"
)

// Subscriber is the subscription side of the event bus.
type Subscriber interface {
	Subscribe() (<-chan models.Event, func())
}

type EventsHandler struct {
	bus Subscriber
	log *logger.Logger
}

func NewEventsHandler(bus Subscriber, log *logger.Logger) *EventsHandler {
	return &EventsHandler{bus: bus, log: log}
}

// Stream writes bus events as server-sent events until the client goes away.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		_ = utils.WriteError(w, http.StatusInternalServerError, utils.HTTPCodeConverter(http.StatusInternalServerError), "streaming unsupported")
		return
	}
	ch, cancel := h.bus.Subscribe()
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case evt, open := <-ch:
			if !open {
				return
			}
			payload, err := json.Marshal(dto.ToEventDTO(evt))
			if err != nil {
				h.log.Error("event encode failed", "err", err, "kind", string(evt.Kind))
				continue
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", evt.Kind, payload); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
