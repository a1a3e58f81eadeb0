package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

// Notification is pushed to a single connected user when something happens to
// one of their appointments.
type Notification struct {
	UserID        uuid.UUID `json:"-"`
	Event         string    `json:"event"`
	AppointmentID uuid.UUID `json:"appointment_id"`
	Status        string    `json:"status,omitempty"`
	Message       string    `json:"message,omitempty"`
}

const (
	EventAppointmentCreated = "appointment_created"
	EventStatusChanged      = "appointment_status_changed"
)

type Hub struct {
	clients map[uuid.UUID]*websocket.Conn
	mu      sync.RWMutex

	Register   chan *Client
	Unregister chan *Client
	Notify     chan Notification
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]*websocket.Conn),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Notify:     make(chan Notification, 64),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client.UserID] = client.Conn
			h.mu.Unlock()
			log.Printf("Client registered: %s", client.UserID)
		case client := <-h.Unregister:
			h.mu.Lock()
			if conn, ok := h.clients[client.UserID]; ok && conn == client.Conn {
				delete(h.clients, client.UserID)
			}
			h.mu.Unlock()
			log.Printf("Client unregistered: %s", client.UserID)
		case notification := <-h.Notify:
			h.deliver(notification)
		}
	}
}

func (h *Hub) deliver(notification Notification) {
	h.mu.RLock()
	conn, ok := h.clients[notification.UserID]
	h.mu.RUnlock()
	if !ok {
		return
	}

	if err := conn.WriteJSON(notification); err != nil {
		log.Printf("Error sending notification to client %s: %v", notification.UserID, err)
		conn.Close()
		h.mu.Lock()
		if current, ok := h.clients[notification.UserID]; ok && current == conn {
			delete(h.clients, notification.UserID)
		}
		h.mu.Unlock()
	}
}

// Push queues a notification without blocking the request handler.
func (h *Hub) Push(notification Notification) {
	select {
	case h.Notify <- notification:
	default:
		log.Printf("Notification channel full, dropping event %s for %s", notification.Event, notification.UserID)
	}
}
