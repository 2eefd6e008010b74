package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/VersaceXcodes/salama-lama-food-truck-sub001/services"
)

// QueueHub fans order events out to every connected staff client so queue
// views reconcile without waiting for a poll. One shared feed, no rooms.
type QueueHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan services.OrderEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewQueueHub() *QueueHub {
	return &QueueHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan services.OrderEvent, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// Publish implements services.OrderEventPublisher. Non-blocking: if the hub
// is backed up the event is dropped, clients reconcile on their next fetch.
func (h *QueueHub) Publish(evt services.OrderEvent) {
	select {
	case h.broadcast <- evt:
	default:
		log.Printf("ws queue feed full, dropped %s for order %d", evt.Type, evt.OrderID)
	}
}

func (h *QueueHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case evt := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(evt); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/queue (staff roles enforced by the auth middleware)
func (h *QueueHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	h.register <- conn
	go h.drain(conn)
}

// drain keeps the read side alive for pings and surfaces disconnects; the
// feed is one-way, anything the client sends is discarded.
func (h *QueueHub) drain(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
