package booking

import (
	"context"
	"encoding/json"
	"expvar"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Feed event types
const (
	EventBookingCreated   = "booking_created"
	EventBookingCancelled = "booking_cancelled"
)

const feedChannel = "bookings:feed"

var (
	feedConnectionsGauge   = expvar.NewInt("booking_feed_connections")
	feedEventsSentTotal    = expvar.NewInt("booking_feed_events_sent_total")
	feedEventsDroppedTotal = expvar.NewInt("booking_feed_events_dropped_total")
)

// FeedEvent is a message on the admin booking feed.
type FeedEvent struct {
	Type    string           `json:"type"`
	Booking *BookingResponse `json:"booking"`
}

// feedConn is one connected admin dashboard.
type feedConn struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans booking events out to connected admin dashboards. With Redis
// configured, events travel through Pub/Sub so every instance delivers
// them; without it the hub broadcasts to local connections only.
type Hub struct {
	mu    sync.RWMutex
	conns map[*feedConn]bool

	redis  *redis.Client
	pubsub *redis.PubSub

	register   chan *feedConn
	unregister chan *feedConn
	broadcast  chan []byte

	ctx    context.Context
	cancel context.CancelFunc
}

// NewHub creates the booking feed hub. redisClient may be nil.
func NewHub(redisClient *redis.Client) *Hub {
	ctx, cancel := context.WithCancel(context.Background())

	h := &Hub{
		conns:      make(map[*feedConn]bool),
		redis:      redisClient,
		register:   make(chan *feedConn),
		unregister: make(chan *feedConn),
		broadcast:  make(chan []byte, 64),
		ctx:        ctx,
		cancel:     cancel,
	}

	if redisClient != nil {
		h.pubsub = redisClient.Subscribe(ctx, feedChannel)
	}

	return h
}

// Run processes registrations and broadcasts until Stop is called.
func (h *Hub) Run() {
	if h.pubsub != nil {
		go h.readPubSub()
	}

	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.conns[c] = true
			h.mu.Unlock()
			feedConnectionsGauge.Add(1)

		case c := <-h.unregister:
			h.mu.Lock()
			if h.conns[c] {
				delete(h.conns, c)
				close(c.send)
			}
			h.mu.Unlock()
			feedConnectionsGauge.Add(-1)

		case data := <-h.broadcast:
			h.deliver(data)

		case <-h.ctx.Done():
			return
		}
	}
}

// Stop shuts the hub down and closes all connections.
func (h *Hub) Stop() {
	if h == nil {
		return
	}
	h.cancel()
	if h.pubsub != nil {
		_ = h.pubsub.Close()
	}
	h.mu.Lock()
	for c := range h.conns {
		close(c.send)
		delete(h.conns, c)
	}
	h.mu.Unlock()
}

// Publish sends a feed event. Nil-safe so the service can run without a
// hub in tests.
func (h *Hub) Publish(eventType string, b *BookingResponse) {
	if h == nil {
		return
	}

	data, err := json.Marshal(FeedEvent{Type: eventType, Booking: b})
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal feed event")
		return
	}

	if h.redis != nil {
		ctx, cancel := context.WithTimeout(h.ctx, 3*time.Second)
		defer cancel()
		if err := h.redis.Publish(ctx, feedChannel, data).Err(); err != nil {
			log.Warn().Err(err).Msg("Failed to publish feed event to Redis, broadcasting locally")
			h.enqueue(data)
		}
		return
	}

	h.enqueue(data)
}

func (h *Hub) enqueue(data []byte) {
	select {
	case h.broadcast <- data:
	default:
		feedEventsDroppedTotal.Add(1)
	}
}

// readPubSub forwards Redis messages into the local broadcast loop.
func (h *Hub) readPubSub() {
	ch := h.pubsub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			h.enqueue([]byte(msg.Payload))
		case <-h.ctx.Done():
			return
		}
	}
}

// deliver writes data to every local connection. Slow consumers get
// dropped events, not a blocked hub.
func (h *Hub) deliver(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.conns {
		select {
		case c.send <- data:
			feedEventsSentTotal.Add(1)
		default:
			feedEventsDroppedTotal.Add(1)
		}
	}
}

// Attach registers a WebSocket connection and starts its pumps.
func (h *Hub) Attach(conn *websocket.Conn) {
	c := &feedConn{
		conn: conn,
		send: make(chan []byte, 32),
	}
	h.register <- c

	go c.writePump()
	go c.readPump(h)
}

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

func (c *feedConn) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump drains the connection to process pongs and detect closure.
func (c *feedConn) readPump(h *Hub) {
	defer func() {
		h.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
