package gateway

import "sync"

// Hub tracks connected WebSocket clients and broadcasts messages to all of
// them. Grounded on the register/unregister/broadcast channel pattern used
// for streaming trade/order-book updates to browser clients.
type Hub struct {
	mu      sync.Mutex
	clients map[*Client]struct{}

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
}

// Client is one connected WebSocket subscriber. Send is buffered so a slow
// reader cannot stall the hub's broadcast loop.
type Client struct {
	Send chan []byte
}

func newClient() *Client {
	return &Client{Send: make(chan []byte, 64)}
}

// NewHub constructs a Hub. Call Run in its own goroutine to start it.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
	}
}

// Run processes register/unregister/broadcast events until stop is closed.
func (h *Hub) Run(stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = struct{}{}
			h.mu.Unlock()
		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.Send)
			}
			h.mu.Unlock()
		case msg := <-h.broadcast:
			h.mu.Lock()
			for c := range h.clients {
				select {
				case c.Send <- msg:
				default:
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast enqueues msg for delivery to every connected client.
func (h *Hub) Broadcast(msg []byte) {
	select {
	case h.broadcast <- msg:
	default:
	}
}

// ClientCount returns the number of currently connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
