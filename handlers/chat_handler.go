// Package handlers — HTTP-обработчики сервиса.
package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ivanychserver/models"
	"ivanychserver/resolver"
)

// chatResolver - глобальная переменная для доступа к резолверу из всех обработчиков
var chatResolver *resolver.Resolver

// SetResolver устанавливает резолвер для обработчиков
func SetResolver(r *resolver.Resolver) {
	chatResolver = r
	log.Println("Резолвер установлен в обработчиках")
}

// Chat обрабатывает POST /api/chat: одно сообщение — один ответ.
// Пустое или отсутствующее сообщение — это не ошибка, резолвер вернёт
// фиксированный ответ. Единственная ветка с кодом 500 — непредвиденный
// сбой внутри цепочки, и даже тогда в ответе есть текст с диагностикой.
func Chat(c *gin.Context) {
	var req models.ChatRequest
	// Тело без поля message равносильно пустому сообщению
	_ = c.ShouldBindJSON(&req)

	reply, err := safeResolve(c.Request.Context(), req.Message)
	if err != nil {
		log.Printf("Ошибка при обработке сообщения: %v", err)
		c.JSON(http.StatusInternalServerError, models.ChatReply{
			Reply: "Произошла внутренняя ошибка: " + err.Error() + ". Напишите нам — разберёмся.",
		})
		return
	}

	c.JSON(http.StatusOK, models.ChatReply{Reply: reply})
}

// safeResolve выполняет цепочку и перехватывает панику:
// один сбойный запрос не должен ронять процесс или остаться без ответа.
func safeResolve(ctx context.Context, message string) (reply string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("внутренний сбой: %v", r)
		}
	}()
	return chatResolver.Resolve(ctx, message), nil
}
