package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Client to server frame types.
const (
	FrameJoinEvent = "join-event"
	FrameError     = "error"
)

const authorizeTimeout = 5 * time.Second

var ErrHubClosed = errors.New("realtime: hub closed")

// Frame is the JSON envelope of every websocket text frame.
type Frame struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// Authorizer decides whether userID may subscribe to eventID's room.
type Authorizer func(ctx context.Context, eventID, userID string) (bool, error)

// Encoder converts a published payload into its wire form.
type Encoder func(topic string, payload any) any

type Option func(*Hub)

// WithAuthorizer gates join-event. Without one every room is open.
func WithAuthorizer(a Authorizer) Option {
	return func(h *Hub) { h.authorize = a }
}

func WithEncoder(e Encoder) Option {
	return func(h *Hub) { h.encode = e }
}

func WithMetrics(m *Metrics) Option {
	return func(h *Hub) { h.metrics = m }
}

// WithAllowedOrigins restricts websocket upgrades by Origin header. "*" allows any.
func WithAllowedOrigins(origins []string) Option {
	return func(h *Hub) { h.origins = origins }
}

// WithSendBuffer sets the per connection queue length.
func WithSendBuffer(n int) Option {
	return func(h *Hub) { h.sendBuffer = n }
}

// Hub keeps the room registry and fans published notifications out to it.
// Delivery is best effort: a connection that cannot keep up is dropped.
type Hub struct {
	mu      sync.RWMutex
	rooms   map[string]map[*Client]struct{}
	clients map[*Client]struct{}
	closed  bool

	authorize  Authorizer
	encode     Encoder
	metrics    *Metrics
	origins    []string
	sendBuffer int
}

func NewHub(opts ...Option) *Hub {
	h := &Hub{
		rooms:      make(map[string]map[*Client]struct{}),
		clients:    make(map[*Client]struct{}),
		sendBuffer: 64,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Publish delivers topic and payload to every connection currently in
// eventID's room. An empty room is a no-op.
func (h *Hub) Publish(eventID, topic string, payload any) {
	if h.encode != nil {
		payload = h.encode(topic, payload)
	}
	h.metrics.published(topic)

	h.mu.RLock()
	room := h.rooms[eventID]
	if len(room) == 0 {
		h.mu.RUnlock()
		return
	}

	msg, err := json.Marshal(Frame{Type: topic, Data: payload})
	if err != nil {
		h.mu.RUnlock()
		zap.L().Error("failed to encode realtime frame", zap.String("event_id", eventID), zap.String("topic", topic), zap.Error(err))
		return
	}

	var slow []*Client
	for c := range room {
		select {
		case c.send <- msg:
			h.metrics.delivered()
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		zap.L().Warn("dropping slow websocket client", zap.String("user_id", c.userID), zap.String("event_id", eventID))
		h.metrics.dropped()
		h.unregister(c)
	}
}

// RoomSize reports how many connections are subscribed to eventID.
func (h *Hub) RoomSize(eventID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[eventID])
}

// Close disconnects every client. Later upgrades are refused.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for c := range h.clients {
		close(c.send)
	}
	h.clients = make(map[*Client]struct{})
	h.rooms = make(map[string]map[*Client]struct{})
	h.metrics.setConnections(0)
	h.metrics.setRooms(0)
}

func (h *Hub) register(c *Client) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return ErrHubClosed
	}
	h.clients[c] = struct{}{}
	h.metrics.setConnections(len(h.clients))
	return nil
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	for eventID := range c.rooms {
		h.leaveLocked(c, eventID)
	}
	close(c.send)
	h.metrics.setConnections(len(h.clients))
	h.metrics.setRooms(len(h.rooms))
}

// join subscribes c to eventID after the authorizer, if any, approves.
func (h *Hub) join(c *Client, eventID string) error {
	if eventID == "" {
		return errInvalidRoom
	}
	if h.authorize != nil {
		ctx, cancel := context.WithTimeout(context.Background(), authorizeTimeout)
		ok, err := h.authorize(ctx, eventID, c.userID)
		cancel()
		if err != nil {
			return err
		}
		if !ok {
			return errRoomForbidden
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return ErrHubClosed
	}
	room, ok := h.rooms[eventID]
	if !ok {
		room = make(map[*Client]struct{})
		h.rooms[eventID] = room
	}
	room[c] = struct{}{}
	c.rooms[eventID] = struct{}{}
	h.metrics.setRooms(len(h.rooms))
	return nil
}

func (h *Hub) leaveLocked(c *Client, eventID string) {
	room := h.rooms[eventID]
	delete(room, c)
	if len(room) == 0 {
		delete(h.rooms, eventID)
	}
	delete(c.rooms, eventID)
}

// sendTo queues a frame for one client, dropping it when the queue is full.
func (h *Hub) sendTo(c *Client, frame Frame) {
	msg, err := json.Marshal(frame)
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	select {
	case c.send <- msg:
	default:
	}
}
