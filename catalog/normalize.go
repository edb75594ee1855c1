// Package catalog — каталог товаров: нормализация строк,
// поиск по артикулу и свободному тексту, рендеринг карточки.
package catalog

import (
	"fmt"
	"strings"
)

// dashReplacer сводит типографские тире и дефисы к обычному "-".
var dashReplacer = strings.NewReplacer(
	"–", "-", // en dash
	"—", "-", // em dash
	"‑", "-", // неразрывный дефис
	"−", "-", // знак минуса
)

// Normalize приводит произвольное значение к канонической строке для сравнения:
// обрезает края, заменяет варианты тире на "-", убирает все пробелы внутри
// (не схлопывает, а именно убирает — "100 - 123" и "100-123" совпадают)
// и переводит в нижний регистр. Никогда не возвращает ошибку; для nil — пустая строка.
// Все сравнения в сервисе идут через эту функцию.
func Normalize(v any) string {
	var s string
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		s = t
	default:
		s = fmt.Sprintf("%v", t)
	}
	s = dashReplacer.Replace(s)
	s = strings.Join(strings.Fields(s), "")
	return strings.ToLower(s)
}
