package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	maxMsgSize       = 1 << 12 // 4 KB
	defaultInterval  = 2 * time.Second
	minInterval      = 100 * time.Millisecond
	maxInterval      = 30 * time.Second
	wsBookmarksEvent = "bookmarks"
)

// wsEnvelope is the frame written to stream clients.
type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// Authentication is by bearer header only, so a cross-origin page cannot
// ride on ambient browser credentials.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary      Bookmark stream
// @Description  WebSocket upgrade. Sends the caller's bookmark list immediately and then every interval.
// @Tags         bookmarks
// @Param        interval     query  string  false  "Go duration between snapshots (100ms..30s)"  example(2s)
// @Param        interval_ms  query  int     false  "Interval in milliseconds, used when interval is absent or invalid"
// @Success      101
// @Failure      401  {object}  errorResponse
// @Router       /ws/bookmarks [get]
// @Security     BearerAuth
func (h *Handler) wsBookmarks(c *gin.Context) {
	me := currentUser(c)
	interval := parseInterval(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Infow("ws_upgrade_failed", "request_id", requestIDFrom(c), "err", err)
		return
	}
	defer func() { _ = conn.Close() }()

	// Configure read limits and pong handler to extend read deadline.
	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Reader goroutine to handle control frames and detect disconnects.
	done := make(chan struct{})
	go h.startReader(conn, done)

	ticker := time.NewTicker(interval)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ping.Stop()
	}()

	ctx := c.Request.Context()
	if err := h.sendBookmarks(ctx, conn, me.ID); err != nil {
		h.log.Infow("ws_write_failed_initial", "user_id", me.ID, "err", err)
		return
	}

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.log.Infow("ws_ping_failed", "user_id", me.ID, "err", err)
				return
			}
		case <-ticker.C:
			if err := h.sendBookmarks(ctx, conn, me.ID); err != nil {
				h.log.Infow("ws_write_failed", "user_id", me.ID, "err", err)
				return
			}
		}
	}
}

// parseInterval reads ?interval=2s or ?interval_ms=2000, falling back to the default when out of bounds.
func parseInterval(c *gin.Context) time.Duration {
	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d >= minInterval && d <= maxInterval {
			return d
		}
	}

	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil {
			d := time.Duration(v) * time.Millisecond
			if d >= minInterval && d <= maxInterval {
				return d
			}
		}
	}

	return defaultInterval
}

// startReader drains incoming messages to handle control frames and detect closure.
func (h *Handler) startReader(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.log.Debugw("ws_read_closed", "err", err)
			return
		}
	}
}

// sendBookmarks writes the owner's current list. A lookup failure is reported
// to the client as an error frame before the stream closes.
func (h *Handler) sendBookmarks(ctx context.Context, conn *websocket.Conn, ownerID int) error {
	list, err := h.services.Bookmarks.List(ctx, ownerID)
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err != nil {
		h.log.Errorw("ws_list_bookmarks_failed", "user_id", ownerID, "err", err)
		_ = conn.WriteJSON(wsEnvelope{Type: "error", Error: errInternal})
		return err
	}
	return conn.WriteJSON(wsEnvelope{Type: wsBookmarksEvent, Data: list})
}
