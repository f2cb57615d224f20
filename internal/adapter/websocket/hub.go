package websocket

import (
	"sync"

	"github.com/gofiber/websocket/v2"
)

// Hub fans change events out to clients subscribed to a single projeto.
// Clients join the room for the projeto they are viewing; events for other
// projetos never reach them.
type Hub struct {
	// rooms maps projetoID to the set of connected clients.
	rooms map[string]map[*Client]bool

	broadcast  chan roomMessage
	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex
}

type roomMessage struct {
	projetoID string
	payload   []byte
}

type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	userID    string
	projetoID string
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		broadcast:  make(chan roomMessage, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			room, ok := h.rooms[client.projetoID]
			if !ok {
				room = make(map[*Client]bool)
				h.rooms[client.projetoID] = room
			}
			room[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if room, ok := h.rooms[client.projetoID]; ok {
				if _, ok := room[client]; ok {
					delete(room, client)
					close(client.send)
					if len(room) == 0 {
						delete(h.rooms, client.projetoID)
					}
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			room := h.rooms[msg.projetoID]
			for client := range room {
				select {
				case client.send <- msg.payload:
				default:
					// Slow client, drop it.
					close(client.send)
					delete(room, client)
				}
			}
			h.mu.RUnlock()
		}
	}
}

// BroadcastToProjeto delivers payload to every client watching projetoID.
func (h *Hub) BroadcastToProjeto(projetoID string, payload []byte) {
	h.broadcast <- roomMessage{projetoID: projetoID, payload: payload}
}

// AddClient registers conn in the room for projetoID and starts its pumps.
func (h *Hub) AddClient(conn *websocket.Conn, userID, projetoID string) {
	client := &Client{
		hub:       h,
		conn:      conn,
		send:      make(chan []byte, 256),
		userID:    userID,
		projetoID: projetoID,
	}
	client.hub.register <- client

	go client.writePump()
	client.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	for {
		// This hub is push-only; the read loop exists to detect close and
		// process control frames.
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for message := range c.send {
		w, err := c.conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		w.Write(message)

		// Coalesce queued events into the same frame.
		n := len(c.send)
		for i := 0; i < n; i++ {
			w.Write(<-c.send)
		}

		if err := w.Close(); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
