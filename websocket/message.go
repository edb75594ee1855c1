package websocket

import (
	"encoding/json"
	"time"

	"ivanychserver/models"
)

// WebSocketMessage представляет сообщение для WebSocket
type WebSocketMessage struct {
	Type      string          `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// NewMessage создает новое сообщение с указанным типом и данными
func NewMessage(messageType string, payload interface{}) ([]byte, error) {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	message := WebSocketMessage{
		Type:      messageType,
		Timestamp: time.Now(),
		Payload:   payloadJSON,
	}

	return json.Marshal(message)
}

// NewReplyMessage создает сообщение с ответом на вопрос клиента
func NewReplyMessage(reply string) ([]byte, error) {
	return NewMessage("reply", models.ChatReply{Reply: reply})
}

// NewErrorMessage создает сообщение об ошибке
func NewErrorMessage(errorText string) ([]byte, error) {
	payload := struct {
		Error string `json:"error"`
	}{
		Error: errorText,
	}

	return NewMessage("error", payload)
}
