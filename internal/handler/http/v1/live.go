package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

const (
	liveKindSnapshot = "snapshot"
	liveKindEvent    = "event"

	liveWriteTimeout = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// @Summary Stream live updates
// @Description Upgrade to a websocket that sends the current timeline and then every incident event
// @Tags Status
// @Param incidentId path string true "Incident ID"
// @Success 101 "Switching Protocols"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /status/updates/{incidentId}/ws [get]
func (h *Handler) streamLiveUpdates(c *gin.Context) {
	id := c.Param("incidentId")
	log := h.logger.WithField("method", "streamLiveUpdates").WithField("id", id)

	// Подписываемся до чтения ленты, чтобы не потерять события между ними
	sub := h.feed.Subscribe(id)
	defer h.feed.Unsubscribe(sub)
	log.WithField("subscribers", h.feed.Subscribers(id)).Debug("Live client subscribed")

	updates, err := h.incidentService.GetLiveUpdates(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err, "incident not found")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("Failed to upgrade connection")
		return
	}
	defer conn.Close()

	snapshot := liveMessage{
		Kind:          liveKindSnapshot,
		IncidentID:    id,
		CurrentStatus: string(updates.CurrentStatus),
		Updates:       updatesToResponse(updates.Updates),
	}
	if err := writeLiveMessage(conn, snapshot); err != nil {
		log.WithError(err).Warn("Failed to send snapshot")
		return
	}

	// Клиент ничего не присылает, чтение нужно только чтобы заметить закрытие
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case event, ok := <-sub.Events:
			if !ok {
				return
			}
			msg := liveMessage{
				Kind:          liveKindEvent,
				IncidentID:    id,
				CurrentStatus: string(event.Status),
				Event:         &event,
			}
			if err := writeLiveMessage(conn, msg); err != nil {
				log.WithError(err).Debug("Live client gone")
				return
			}
		case <-closed:
			log.Debug("Live client disconnected")
			return
		case <-c.Request.Context().Done():
			return
		}
	}
}

func writeLiveMessage(conn *websocket.Conn, msg liveMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	if err := conn.SetWriteDeadline(time.Now().Add(liveWriteTimeout)); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, payload)
}
