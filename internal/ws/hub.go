package ws

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

type envelope struct {
	// userID nil means every connected client.
	userID  *uuid.UUID
	payload []byte
}

type Hub struct {
	clients    map[*Client]bool
	broadcast  chan envelope
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	logger     *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan envelope, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS connected | user=%s total_clients=%d", client.userID, total)
			}

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS disconnected | user=%s total_clients=%d", client.userID, total)
			}

		case msg := <-h.broadcast:
			h.mutex.RLock()
			targets := make([]*Client, 0, len(h.clients))
			for c := range h.clients {
				if msg.userID == nil || c.userID == *msg.userID {
					targets = append(targets, c)
				}
			}
			h.mutex.RUnlock()

			for _, client := range targets {
				select {
				case client.send <- msg.payload:
				default:
					h.unregister <- client
				}
			}

			if h.logger != nil {
				h.logger.Printf("WS broadcast | targets=%d", len(targets))
			}
		}
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

// SendToUser delivers a message to every socket the user currently holds.
func (h *Hub) SendToUser(userID uuid.UUID, message []byte) {
	h.enqueue(envelope{userID: &userID, payload: message})
}

// Broadcast delivers a message to every connected client.
func (h *Hub) Broadcast(message []byte) {
	h.enqueue(envelope{payload: message})
}

func (h *Hub) enqueue(msg envelope) {
	if h == nil {
		return
	}
	select {
	case h.broadcast <- msg:
	default:
		if h.logger != nil {
			h.logger.Printf("WS broadcast dropped | reason=buffer_full")
		}
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
