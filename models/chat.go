// Package models — структуры запроса и ответа чата.
package models

// ChatRequest — входящее сообщение клиента. Единственное поле:
// состояния диалога и истории у сервиса нет.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatReply — единственный текстовый ответ сервиса. Деградация апстрима
// сообщается текстом, отдельного машинного кода ошибки в штатном пути нет.
type ChatReply struct {
	Reply string `json:"reply"`
}
