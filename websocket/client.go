package websocket

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second    // время на запись одного сообщения
	pongWait       = 60 * time.Second    // максимальное время ожидания PONG
	pingPeriod     = (pongWait * 9) / 10 // как часто слать PING
	maxMessageSize = 4096                // максимальный размер входящего сообщения
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Виджет встраивается на сторонние страницы, происхождение не проверяем
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Client представляет одно WebSocket-соединение виджета.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte // исходящие сообщения

	// ID соединения для логов
	ID uuid.UUID
}

// ServeWs апгрейдит HTTP-запрос до WebSocket и запускает насосы клиента.
func ServeWs(hub *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Ошибка апгрейда WebSocket: %v", err)
		return
	}

	client := &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 16),
		ID:   uuid.New(),
	}
	hub.register <- client

	go client.writePump()
	go client.readPump()
}

// readPump читает сообщения клиента и отвечает на каждое через резолвер.
// Сообщения независимы: никакой истории между ними не накапливается.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket: неожиданное закрытие (%s): %v", c.ID, err)
			}
			break
		}

		var req struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(raw, &req); err != nil {
			data, _ := NewErrorMessage("Некорректный формат сообщения, ожидается {\"message\": \"...\"}")
			c.trySend(data)
			continue
		}

		reply := c.hub.resolver.Resolve(context.Background(), req.Message)
		data, err := NewReplyMessage(reply)
		if err != nil {
			log.Printf("WebSocket: ошибка сборки ответа (%s): %v", c.ID, err)
			continue
		}
		c.trySend(data)
	}
}

// trySend кладёт сообщение в исходящий буфер клиента без блокировки.
// Если насос записи умер и буфер забит, сообщение отбрасывается —
// иначе readPump навсегда повиснет на отправке в никуда.
func (c *Client) trySend(data []byte) {
	select {
	case c.send <- data:
	default:
		log.Printf("WebSocket: буфер клиента %s переполнен, сообщение отброшено", c.ID)
	}
}

// writePump пишет из канала send в WebSocket и держит соединение живым ping/pong'ом.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// канал закрыт Hub'ом
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
