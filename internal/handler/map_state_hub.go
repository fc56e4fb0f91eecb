package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"MeshiGacha-App/internal/domain/model"
)

const wsWriteDeadline = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// 同一ページに埋め込まれる地図クライアント向けのためオリジン確認はしない
	CheckOrigin: func(r *http.Request) bool { return true },
}

// MapStateHub 地図クライアントへのWebSocket配信を管理する
type MapStateHub struct {
	clients    map[*websocket.Conn]struct{}
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	broadcast  chan *model.MapState
}

// NewMapStateHub MapStateHubの新しいインスタンスを作成
func NewMapStateHub() *MapStateHub {
	return &MapStateHub{
		clients:    make(map[*websocket.Conn]struct{}),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan *model.MapState, 8),
	}
}

// Run 配信ループを開始する
func (h *MapStateHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.clients[conn] = struct{}{}
		case conn := <-h.unregister:
			if _, ok := h.clients[conn]; ok {
				_ = conn.Close()
				delete(h.clients, conn)
			}
		case state := <-h.broadcast:
			for conn := range h.clients {
				_ = conn.SetWriteDeadline(time.Now().Add(wsWriteDeadline))
				if err := conn.WriteJSON(state); err != nil {
					_ = conn.Close()
					delete(h.clients, conn)
				}
			}
		}
	}
}

// BroadcastMapState 地図状態のスナップショットを全購読者へ配信する
// service.MapStateBroadcasterの実装
func (h *MapStateHub) BroadcastMapState(state *model.MapState) {
	h.broadcast <- state
}

// Serve WebSocket接続を受け付け、現在のスナップショットを初回送信する
func (h *MapStateHub) Serve(w http.ResponseWriter, r *http.Request, initial *model.MapState) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("⚠️  WebSocketアップグレード失敗: %v", err)
		return
	}

	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteDeadline))
	if err := conn.WriteJSON(initial); err != nil {
		_ = conn.Close()
		return
	}

	h.register <- conn

	// クライアントからのメッセージは受け取らない。切断検知のための読み捨てループ
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.unregister <- conn
				return
			}
		}
	}()
}
