// Package resolver — цепочка выбора ответа на одно сообщение.
package resolver

import (
	"context"
	"strings"

	"ivanychserver/catalog"
	"ivanychserver/rules"
)

const (
	// emptyReply — ответ на пустое сообщение.
	emptyReply = "Пожалуйста, введите ваш вопрос или артикул."
	// unknownCodeReply — форма артикула распознана, но записи в каталоге нет.
	// Такой запрос осознанный, молча уводить его в свободный поиск нельзя.
	unknownCodeReply = "Артикул распознан, но в каталоге его сейчас нет. Проверьте номер или напишите нам — уточним вручную."
)

// Completer — внешняя чат-модель. Реализация обязана сама деградировать
// до дежурного текста, ветки ошибки у резолвера нет.
type Completer interface {
	Complete(ctx context.Context, userMessage string) string
}

// Resolver выбирает ровно один ответ на входящее сообщение.
// Порядок фиксированный, от дешёвого к дорогому: правила (регулярки) ->
// каталог (память) -> внешняя модель (сеть).
type Resolver struct {
	store *catalog.Store
	llm   Completer
}

// New создаёт резолвер поверх хранилища каталога и чат-модели.
func New(store *catalog.Store, llm Completer) *Resolver {
	return &Resolver{store: store, llm: llm}
}

// Resolve выполняет цепочку принятия решения и всегда возвращает ответ.
func (r *Resolver) Resolve(ctx context.Context, rawMessage string) string {
	msg := strings.TrimSpace(rawMessage)
	if msg == "" {
		return emptyReply
	}

	if reply, ok := rules.Match(msg); ok {
		return reply
	}

	cat := r.store.Current()

	// Подстрока в форме артикула — самый точный запрос:
	// ищем именно её, и при промахе к модели не уходим.
	if code := catalog.ExtractArticle(msg); code != "" {
		if rec, ok := cat.FindByArticle(code); ok {
			return catalog.Render(rec)
		}
		return unknownCodeReply
	}

	// Формы артикула нет — пробуем всё сообщение как название или описание.
	if rec, ok := cat.FindByArticle(msg); ok {
		return catalog.Render(rec)
	}

	return r.llm.Complete(ctx, msg)
}
