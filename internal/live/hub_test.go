package live

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

func dialTestClient(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// waitForClients blocks until the hub has registered n clients; the dial
// handshake can complete before the server handler reaches registration.
func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		hub.mu.Lock()
		got := len(hub.clients)
		hub.mu.Unlock()
		if got >= n {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("client never registered")
}

func TestBroadcastConcurrent(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	defer hub.Close()
	conn := dialTestClient(t, hub)
	waitForClients(t, hub, 1)

	const goroutines = 8
	const perGoroutine = 8

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				hub.Broadcast(map[string]int{"sender": n, "seq": j})
			}
		}(i)
	}
	wg.Wait()

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	for i := 0; i < goroutines*perGoroutine; i++ {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read message %d: %v", i, err)
		}
		var got map[string]int
		if err := json.Unmarshal(msg, &got); err != nil {
			t.Fatalf("message %d is not valid JSON: %v", i, err)
		}
	}
}

func TestCloseDisconnectsClients(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	conn := dialTestClient(t, hub)
	waitForClients(t, hub, 1)

	hub.Close()

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
