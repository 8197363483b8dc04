package realtime

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxInboundSize = 4096
)

var (
	errInvalidRoom   = errors.New("event id is required")
	errRoomForbidden = errors.New("not a member of this event")
)

// Client is one websocket connection. Rooms are guarded by the hub's mutex.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	userID string
	rooms  map[string]struct{}
}

type inboundFrame struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// ServeWS upgrades the request and serves the connection for userID until it closes.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, userID string) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.L().Debug("websocket upgrade failed", zap.Error(err))
		return
	}

	c := &Client{
		hub:    h,
		conn:   conn,
		send:   make(chan []byte, h.sendBuffer),
		userID: userID,
		rooms:  make(map[string]struct{}),
	}
	if err := h.register(c); err != nil {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))
		_ = conn.Close()
		return
	}
	zap.L().Debug("websocket connected", zap.String("user_id", userID))

	go c.writePump()
	c.readPump()
}

func (h *Hub) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || len(h.origins) == 0 {
		return true
	}
	for _, allowed := range h.origins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	u, err := url.Parse(origin)
	return err == nil && strings.EqualFold(u.Host, r.Host)
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		_ = c.conn.Close()
		zap.L().Debug("websocket disconnected", zap.String("user_id", c.userID))
	}()

	c.conn.SetReadLimit(maxInboundSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				zap.L().Debug("websocket read failed", zap.String("user_id", c.userID), zap.Error(err))
			}
			return
		}
		c.handle(data)
	}
}

func (c *Client) handle(data []byte) {
	var in inboundFrame
	if err := json.Unmarshal(data, &in); err != nil {
		c.hub.sendTo(c, Frame{Type: FrameError, Data: "malformed frame"})
		return
	}

	switch in.Type {
	case FrameJoinEvent:
		var eventID string
		if err := json.Unmarshal(in.Data, &eventID); err != nil {
			c.hub.sendTo(c, Frame{Type: FrameError, Data: errInvalidRoom.Error()})
			return
		}
		eventID = strings.TrimSpace(eventID)
		if err := c.hub.join(c, eventID); err != nil {
			if !errors.Is(err, errInvalidRoom) && !errors.Is(err, errRoomForbidden) {
				zap.L().Warn("join-event failed", zap.String("event_id", eventID), zap.Error(err))
				err = errors.New("could not join event")
			}
			c.hub.sendTo(c, Frame{Type: FrameError, Data: err.Error()})
		}
	default:
		c.hub.sendTo(c, Frame{Type: FrameError, Data: "unknown frame type " + in.Type})
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
