package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchByTopic(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		fragment string // ожидаемый фрагмент ответа
	}{
		{"доставка", "когда доставка?", "Доставляем по всей России"},
		{"доставка регистр", "Когда ДОСТАВКА в Казань?", "Доставляем по всей России"},
		{"наличие", "есть ли в наличии насос?", "держим на складе"},
		{"минимальная партия", "какая минимальная партия?", "Минимальной партии нет"},
		{"скидка", "дадите скидку?", "Скидки обсуждаем"},
		{"производство", "какая страна производства?", "собственном производстве"},
		{"кто ты", "ты бот?", "Я Иваныч"},
		{"покупка", "как заказать у вас?", "оформить заказ"},
		{"приветствие", "Здравствуйте!", "Назовите артикул"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, ok := Match(tt.message)
			require.True(t, ok)
			assert.Contains(t, reply, tt.fragment)
		})
	}
}

func TestMatchNoRule(t *testing.T) {
	for _, msg := range []string{"посоветуйте смазку для станка", "100-123", ""} {
		_, ok := Match(msg)
		assert.False(t, ok, "сообщение %q не должно попадать в правила", msg)
	}
}

func TestNoMatchInsideLongerWords(t *testing.T) {
	// шаблоны не заглядывают внутрь слов: «отстойник» — товар,
	// «реакция» и «редакция» — не «акция»
	messages := []string{
		"нужен отстойник для масла",
		"какая реакция масла на мороз?",
		"редакция каталога устарела?",
	}
	for _, msg := range messages {
		_, ok := Match(msg)
		assert.False(t, ok, "сообщение %q не должно попадать в правила", msg)
	}
}

func TestInsultMatchesWholeWordsAndForms(t *testing.T) {
	for _, msg := range []string{"вы дураки", "полный отстой, а не магазин", "идиотский сервис"} {
		reply, ok := Match(msg)
		require.True(t, ok, "сообщение %q", msg)
		assert.Contains(t, reply, "уважительно")
	}
}

func TestInsultOutranksTopics(t *testing.T) {
	// грубость перевешивает тематический вопрос про доставку
	reply, ok := Match("вы идиоты, где моя доставка?")
	require.True(t, ok)
	assert.Contains(t, reply, "уважительно")
	assert.NotContains(t, reply, "Доставляем")
}

func TestRuleOrderIsStable(t *testing.T) {
	// первое правило — контроль тона, последнее — приветствие
	require.NotEmpty(t, ruleSet)
	assert.Equal(t, "insult", ruleSet[0].Name)
	assert.Equal(t, "greeting", ruleSet[len(ruleSet)-1].Name)
}

func TestRepliesAreCompanyVoice(t *testing.T) {
	// готовые ответы не отправляют клиента на сторону
	for _, r := range ruleSet {
		lower := strings.ToLower(r.Reply)
		assert.NotContains(t, lower, "поставщик", "правило %s", r.Name)
		assert.NotContains(t, lower, "маркетплейс", "правило %s", r.Name)
	}
}
