package websocket

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 4 * 1024
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// TODO: Implement proper origin checking
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Hub maintains the set of active progress subscribers and broadcasts
// analysis stage events to them
type Hub struct {
	// Registered clients.
	clients map[*Client]struct{}

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Stage events published by the analysis pipeline.
	events chan ProgressMessage

	mu sync.RWMutex

	logger *zap.Logger
}

// NewHub creates a new WebSocket progress hub
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		events:     make(chan ProgressMessage, 64),
		logger:     logger,
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = struct{}{}
			h.mu.Unlock()
			h.logger.Info("Progress subscriber registered",
				zap.String("analysisID", client.analysisID))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			h.logger.Info("Progress subscriber unregistered",
				zap.String("analysisID", client.analysisID))

		case event := <-h.events:
			h.broadcast(event)
		}
	}
}

// Publish implements usecase.ProgressPublisher. It never blocks the
// analysis pipeline: events are dropped when the hub is saturated.
func (h *Hub) Publish(analysisID string, stage string, detail string) {
	msg := ProgressMessage{
		BaseMessage: BaseMessage{
			Type:      MessageTypeProgress,
			Timestamp: time.Now().Format(time.RFC3339),
		},
		AnalysisID: analysisID,
		Stage:      stage,
		Detail:     detail,
	}

	select {
	case h.events <- msg:
	default:
		h.logger.Warn("Dropping progress event, hub saturated",
			zap.String("analysisID", analysisID),
			zap.String("stage", stage))
	}
}

// broadcast fans an event out to subscribers interested in the analysis
func (h *Hub) broadcast(event ProgressMessage) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("Failed to marshal progress event", zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		if client.analysisID != "" && client.analysisID != event.AnalysisID {
			continue
		}
		select {
		case client.send <- payload:
		default:
			// Slow consumer, skip rather than stall the hub
			h.logger.Warn("Dropping event for slow subscriber",
				zap.String("analysisID", client.analysisID))
		}
	}
}

// Client is a middleman between the websocket connection and the hub.
type Client struct {
	hub *Hub

	// The websocket connection.
	conn *websocket.Conn

	// Buffered channel of outbound messages.
	send chan []byte

	// Analysis this client subscribed to; empty means all analyses
	analysisID string

	logger *zap.Logger
}

// HandleWebSocket upgrades the connection and subscribes the client to
// progress events. An optional analysis_id query parameter narrows the
// subscription to one analysis.
func HandleWebSocket(hub *Hub, c echo.Context, logger *zap.Logger) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Error("WebSocket upgrade failed", zap.Error(err))
		return err
	}

	client := &Client{
		hub:        hub,
		conn:       conn,
		send:       make(chan []byte, 64),
		analysisID: c.QueryParam("analysis_id"),
		logger:     logger,
	}

	client.hub.register <- client

	// Allow collection of memory referenced by the caller by doing all work in
	// new goroutines.
	go client.writePump()
	go client.readPump()

	return nil
}

// readPump keeps the connection alive and detects closes; subscribers do
// not send meaningful messages
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Error("WebSocket error", zap.Error(err))
			}
			break
		}
	}
}

// writePump pumps messages from the hub to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.logger.Error("Failed to write message", zap.Error(err))
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
