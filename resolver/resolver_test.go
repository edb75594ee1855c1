package resolver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"ivanychserver/catalog"
)

// fakeCompleter фиксирует, звали ли модель, и отдаёт заготовленный текст.
type fakeCompleter struct {
	called bool
	reply  string
}

func (f *fakeCompleter) Complete(_ context.Context, _ string) string {
	f.called = true
	return f.reply
}

func newTestResolver(catalogJSON string, llmReply string) (*Resolver, *fakeCompleter) {
	store := catalog.NewStore(catalog.Load([]byte(catalogJSON)))
	llm := &fakeCompleter{reply: llmReply}
	return New(store, llm), llm
}

const testCatalog = `[
	{"code":"100-003","name":"Трубка 6х1,5","price":120},
	{"code":"250-010","name":"Насос плунжерный","описание":"ручной насос для консистентной смазки"}
]`

func TestResolveEmptyMessage(t *testing.T) {
	r, llm := newTestResolver(testCatalog, "ответ модели")
	for _, msg := range []string{"", "   ", "\n\t"} {
		assert.Equal(t, emptyReply, r.Resolve(context.Background(), msg))
	}
	assert.False(t, llm.called)
}

func TestResolveRuleBeforeCatalogAndLLM(t *testing.T) {
	r, llm := newTestResolver(testCatalog, "ответ модели")

	reply := r.Resolve(context.Background(), "когда доставка?")
	assert.Contains(t, reply, "Доставляем по всей России")
	assert.False(t, llm.called, "правило не должно доходить до модели")
}

func TestResolveArticleCodeHit(t *testing.T) {
	r, llm := newTestResolver(testCatalog, "ответ модели")

	reply := r.Resolve(context.Background(), "100-003")
	assert.Equal(t, "Наименование: Трубка 6х1,5\nАртикул: 100-003\nЦена: 120", reply)
	assert.False(t, llm.called)
}

func TestResolveArticleCodeInsideSentence(t *testing.T) {
	r, _ := newTestResolver(testCatalog, "ответ модели")

	reply := r.Resolve(context.Background(), "сколько стоит 100-003 с фитингом?")
	assert.Contains(t, reply, "Артикул: 100-003")
}

func TestResolveShapeMatchWithoutRecord(t *testing.T) {
	r, llm := newTestResolver(testCatalog, "ответ модели")

	// форма артикула верная, записи нет: терминальный ответ, не модель
	reply := r.Resolve(context.Background(), "108-999")
	assert.Equal(t, unknownCodeReply, reply)
	assert.False(t, llm.called)
}

func TestResolveFreeTextCatalogHit(t *testing.T) {
	r, llm := newTestResolver(testCatalog, "ответ модели")

	reply := r.Resolve(context.Background(), "насос плунжерный")
	assert.Contains(t, reply, "Артикул: 250-010")
	assert.False(t, llm.called)
}

func TestResolveFallsBackToLLM(t *testing.T) {
	r, llm := newTestResolver(testCatalog, "Подойдёт масло И-40А.")

	reply := r.Resolve(context.Background(), "чем смазывать направляющие?")
	assert.Equal(t, "Подойдёт масло И-40А.", reply)
	assert.True(t, llm.called)
}

func TestResolveEmptyCatalogGoesToLLM(t *testing.T) {
	r, llm := newTestResolver(`[]`, "дежурный ответ")

	reply := r.Resolve(context.Background(), "трубка медная")
	assert.Equal(t, "дежурный ответ", reply)
	assert.True(t, llm.called)
}
