// internal/server/handlers/websocket.go

package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/nats-io/nats.go"
)

// WebSocketConfig contains configuration for WebSocket connections.
type WebSocketConfig struct {
	// Time allowed to write a message to the peer
	WriteWait time.Duration

	// Time allowed to read the next pong message from the peer
	PongWait time.Duration

	// Send pings to peer with this period
	PingPeriod time.Duration

	// Maximum message size allowed from peer
	MaxMessageSize int64
}

// DefaultWebSocketConfig returns the default WebSocket configuration.
func DefaultWebSocketConfig() WebSocketConfig {
	return WebSocketConfig{
		WriteWait:      10 * time.Second,
		PongWait:       60 * time.Second,
		PingPeriod:     (60 * time.Second * 9) / 10,
		MaxMessageSize: 64 * 1024,
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The dashboard is same-origin in production; tighten when fronted.
		return true
	},
}

// DashboardWebSocketHandler streams ingest events to connected dashboard
// clients. Each connection gets its own NATS subscription on the events
// subject; dropped clients are unsubscribed on the way out.
func DashboardWebSocketHandler(natsConn *nats.Conn, subject string) http.HandlerFunc {
	cfg := DefaultWebSocketConfig()

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("ws: upgrade failed: %v", err)
			return
		}

		msgs := make(chan *nats.Msg, 64)
		sub, err := natsConn.ChanSubscribe(subject, msgs)
		if err != nil {
			log.Printf("ws: subscribe %s failed: %v", subject, err)
			conn.Close()
			return
		}

		done := make(chan struct{})

		// Reader: drains control frames and detects the client going away.
		go func() {
			defer close(done)
			conn.SetReadLimit(cfg.MaxMessageSize)
			conn.SetReadDeadline(time.Now().Add(cfg.PongWait))
			conn.SetPongHandler(func(string) error {
				return conn.SetReadDeadline(time.Now().Add(cfg.PongWait))
			})
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		go func() {
			defer func() {
				sub.Unsubscribe()
				conn.Close()
			}()

			ticker := time.NewTicker(cfg.PingPeriod)
			defer ticker.Stop()

			for {
				select {
				case <-done:
					return
				case msg := <-msgs:
					conn.SetWriteDeadline(time.Now().Add(cfg.WriteWait))
					if err := conn.WriteMessage(websocket.TextMessage, msg.Data); err != nil {
						return
					}
				case <-ticker.C:
					conn.SetWriteDeadline(time.Now().Add(cfg.WriteWait))
					if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
						return
					}
				}
			}
		}()
	}
}
