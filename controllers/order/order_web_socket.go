// order_websocket.go
package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/OsorioJc-696/Ecommerce-Jc/models"
)

// wsWriteTimeout bounds each client write so one stalled admin connection
// cannot hold wsMu and back up the checkout path.
const wsWriteTimeout = 5 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	wsMu      sync.Mutex
	wsClients = make(map[*websocket.Conn]bool)
)

type orderEvent struct {
	Type  string       `json:"type"` // order_placed, status_changed
	Order models.Order `json:"order"`
}

// GET /admin/orders/ws — live feed of placed orders and status changes
func OrderWebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	wsMu.Lock()
	wsClients[conn] = true
	wsMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			wsMu.Lock()
			delete(wsClients, conn)
			wsMu.Unlock()
			break
		}
	}
}

// broadcastOrderEvent fans the event out to connected admins. Delivery is
// best-effort and runs off the caller's goroutine: order placement must never
// wait on a slow websocket.
func broadcastOrderEvent(eventType string, order models.Order) {
	data, err := json.Marshal(orderEvent{Type: eventType, Order: order})
	if err != nil {
		return
	}

	go func() {
		wsMu.Lock()
		defer wsMu.Unlock()
		for client := range wsClients {
			client.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
				client.Close()
				delete(wsClients, client)
			}
		}
	}()
}
