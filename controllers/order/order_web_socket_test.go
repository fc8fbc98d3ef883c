package orderControllers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/OsorioJc-696/Ecommerce-Jc/models"
)

func waitForClientCount(t *testing.T, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		wsMu.Lock()
		n := len(wsClients)
		wsMu.Unlock()
		if n == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d websocket clients", want)
}

func TestBroadcastDeliversOrderEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws", OrderWebSocketHandler)
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	waitForClientCount(t, 1)

	broadcastOrderEvent("order_placed", models.Order{ID: "ORD-1-FEED01", Total: 42})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var ev orderEvent
	if err := json.Unmarshal(msg, &ev); err != nil {
		t.Fatalf("unmarshal event: %v", err)
	}
	if ev.Type != "order_placed" || ev.Order.ID != "ORD-1-FEED01" {
		t.Errorf("unexpected event: %+v", ev)
	}
}

// A connected admin that never reads must not slow down order placement:
// delivery happens off the caller's goroutine.
func TestBroadcastDoesNotBlockCaller(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws", OrderWebSocketHandler)
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	waitForClientCount(t, 1)

	start := time.Now()
	for i := 0; i < 50; i++ {
		broadcastOrderEvent("status_changed", models.Order{ID: "ORD-1-STALL1"})
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("broadcast held the caller for %v", elapsed)
	}
}
