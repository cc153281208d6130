package websocket

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"employee-task-manager/pkg/logger"
)

// Client merepresentasikan satu koneksi WebSocket.
type Client struct {
	Conn *websocket.Conn
	Mu   sync.Mutex
}

// Event adalah payload change feed yang dikirim ke semua client setelah
// mutasi berhasil, misalnya {"event": "task.created", "data": {...}}.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Hub menyebarkan event perubahan data ke semua client yang terhubung.
type Hub struct {
	Clients    map[*Client]bool
	Broadcast  chan []byte
	Register   chan *Client
	Unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Broadcast:  make(chan []byte, 64),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Notify mengirim satu event ke semua client. Jika buffer broadcast penuh,
// event dibuang; change feed ini bersifat best-effort, bukan antrian andal.
func (h *Hub) Notify(event string, data any) {
	payload, err := json.Marshal(Event{Event: event, Data: data})
	if err != nil {
		logger.ErrorLogger.Error("Error encoding feed event", zap.Error(err))
		return
	}
	select {
	case h.Broadcast <- payload:
	default:
		logger.ErrorLogger.Error("Feed buffer full, event dropped", zap.String("event", event))
	}
}

// Run menjalankan loop Hub untuk register, unregister, dan broadcast.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.Clients[client] = true
		case client := <-h.Unregister:
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				client.Conn.Close()
			}
		case message := <-h.Broadcast:
			for client := range h.Clients {
				client.Mu.Lock()
				err := client.Conn.WriteMessage(websocket.TextMessage, message)
				client.Mu.Unlock()
				if err != nil {
					// Jangan kirim ke h.Unregister dari sini: loop ini juga
					// yang membaca channel tersebut
					delete(h.Clients, client)
					client.Conn.Close()
				}
			}
		}
	}
}
