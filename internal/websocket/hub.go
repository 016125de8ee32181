package chatws

import (
	"context"
	"encoding/json"

	"github.com/forestgump22/tutorgo-frontend/internal/services"
	websocket "github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

// Hub fans assistant events out to every open tab of the same transcript
// owner, so a message sent from one tab shows up in the others.
type Hub struct {
	clients    map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan *event
	log        *zap.Logger
}

type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	ownerKey string
	send     chan []byte
}

type assistant interface {
	Send(ctx context.Context, ownerKey, text string) (*services.ChatResult, error)
}

// Event is one assistant-stream frame. Type is "result" for a resolved
// exchange, "cleared" when the transcript was wiped, "open" when the
// widget open state changed, "error" for protocol problems.
type Event struct {
	Type   string               `json:"type"`
	Result *services.ChatResult `json:"result,omitempty"`
	Open   *bool                `json:"open,omitempty"`
	Error  string               `json:"error,omitempty"`
}

type event struct {
	ownerKey string
	payload  Event
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *event, 64),
		log:        log,
	}
}

func NewClient(hub *Hub, conn *websocket.Conn, ownerKey string) *Client {
	return &Client{
		hub:      hub,
		conn:     conn,
		ownerKey: ownerKey,
		send:     make(chan []byte, 32),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			set, ok := h.clients[client.ownerKey]
			if !ok {
				set = make(map[*Client]struct{})
				h.clients[client.ownerKey] = set
			}
			set[client] = struct{}{}
		case client := <-h.unregister:
			set, ok := h.clients[client.ownerKey]
			if !ok {
				continue
			}
			if _, exists := set[client]; exists {
				delete(set, client)
				close(client.send)
			}
			if len(set) == 0 {
				delete(h.clients, client.ownerKey)
			}
		case ev := <-h.broadcast:
			h.deliver(ev)
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Broadcast pushes an event to every connection of ownerKey.
func (h *Hub) Broadcast(ownerKey string, payload Event) {
	h.broadcast <- &event{ownerKey: ownerKey, payload: payload}
}

func (h *Hub) deliver(ev *event) {
	encoded, err := json.Marshal(ev.payload)
	if err != nil {
		h.log.Warn("assistant hub encode event", zap.Error(err))
		return
	}

	set, ok := h.clients[ev.ownerKey]
	if !ok {
		return
	}
	for client := range set {
		select {
		case client.send <- encoded:
		default:
			delete(set, client)
			close(client.send)
		}
	}
	if len(set) == 0 {
		delete(h.clients, ev.ownerKey)
	}
}

func (c *Client) ReadPump(service assistant) {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var incoming struct {
			Type string `json:"type"`
			Text string `json:"text"`
		}
		if err := json.Unmarshal(payload, &incoming); err != nil {
			c.writeError("invalid message payload")
			continue
		}
		if incoming.Type != "message" {
			c.writeError("unsupported message type")
			continue
		}

		result, err := service.Send(context.Background(), c.ownerKey, incoming.Text)
		if err != nil {
			c.writeError("failed to send message")
			continue
		}

		c.hub.Broadcast(c.ownerKey, Event{Type: "result", Result: result})
	}
}

func (c *Client) WritePump() {
	defer func() {
		_ = c.conn.Close()
	}()

	for payload := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}

func (c *Client) writeError(message string) {
	payload, err := json.Marshal(Event{Type: "error", Error: message})
	if err != nil {
		return
	}
	select {
	case c.send <- payload:
	default:
		c.hub.Unregister(c)
	}
}
