package api

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"quartermaster/internal/models"
)

// WebSocket upgrader configuration
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// ProgressEvent is one per-vendor submission result pushed to clients
// while a distribution batch is running.
type ProgressEvent struct {
	BatchID string                  `json:"batchId"`
	Result  models.SubmissionResult `json:"result"`
}

// ProgressHub fans submission results out to every connected websocket
// client, preserving submission order.
type ProgressHub struct {
	mu      sync.Mutex
	clients map[*progressClient]bool
}

// NewProgressHub creates an empty hub.
func NewProgressHub() *ProgressHub {
	return &ProgressHub{clients: make(map[*progressClient]bool)}
}

type progressClient struct {
	conn *websocket.Conn
	send chan []byte
	hub  *ProgressHub
}

// Publish implements distribution.Publisher.
func (h *ProgressHub) Publish(batchID string, result models.SubmissionResult) {
	data, err := json.Marshal(ProgressEvent{BatchID: batchID, Result: result})
	if err != nil {
		log.Printf("progress: failed to encode event: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			log.Println("progress: client buffer full, dropping message")
		}
	}
}

// handleWebSocket upgrades the connection and starts the client pumps.
func (h *ProgressHub) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("progress: failed to upgrade connection: %v", err)
		return
	}

	client := &progressClient{
		conn: conn,
		send: make(chan []byte, 256),
		hub:  h,
	}

	h.mu.Lock()
	h.clients[client] = true
	h.mu.Unlock()

	go client.writePump()
	go client.readPump()
}

func (h *ProgressHub) remove(client *progressClient) {
	h.mu.Lock()
	delete(h.clients, client)
	h.mu.Unlock()
}

// readPump drains the connection; progress is a one-way feed, so inbound
// frames are discarded but keep pong handling alive.
func (c *progressClient) readPump() {
	defer func() {
		c.hub.remove(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(4 * 1024)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("progress: websocket error: %v", err)
			}
			break
		}
	}
}

// writePump pumps events from the hub to the WebSocket connection
func (c *progressClient) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
