// Package websocket — чат-виджет поверх WebSocket. Каждое входящее
// сообщение обрабатывается независимо, истории диалога нет.
package websocket

import (
	"context"
	"log"
)

// Resolver выбирает ответ на одно сообщение (реализуется пакетом resolver).
type Resolver interface {
	Resolve(ctx context.Context, rawMessage string) string
}

// Hub управляет подключёнными клиентами виджета.
type Hub struct {
	// Зарегистрированные клиенты
	clients map[*Client]bool

	// Регистрация клиента
	register chan *Client

	// Отмена регистрации клиента
	unregister chan *Client

	resolver Resolver
}

// NewHub создаёт новый Hub с резолвером ответов.
func NewHub(resolver Resolver) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		resolver:   resolver,
	}
}

// Run запускает цикл учёта клиентов. Вызывается одной горутиной из main.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			log.Printf("Клиент подключился. Всего клиентов: %d", len(h.clients))
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				log.Printf("Клиент отключился. Всего клиентов: %d", len(h.clients))
			}
		}
	}
}
