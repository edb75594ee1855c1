package catalog

import (
	"encoding/json"
	"fmt"
	"strings"
)

// renderFields — какие поля и в каком порядке попадают в карточку товара.
// Для каждого берётся первый непустой синоним.
var renderFields = []struct {
	label string
	keys  []string
}{
	{"Наименование", []string{"name", "наименование", "title"}},
	{"Артикул", []string{"code", "article", "артикул", "sku"}},
	{"Цена", []string{"price", "цена"}},
}

// Render собирает текстовую карточку найденной записи: по строке на каждое
// из присутствующих полей (наименование, артикул, цена). Если ни одного из
// трёх полей нет, возвращает сырой JSON записи, чтобы совпадение никогда
// не превратилось в пустой ответ.
func Render(rec Record) string {
	var lines []string
	for _, f := range renderFields {
		for _, key := range f.keys {
			v, ok := rec.field(key)
			if !ok {
				continue
			}
			s := strings.TrimSpace(fmt.Sprintf("%v", v))
			if s == "" || v == nil {
				continue
			}
			lines = append(lines, f.label+": "+s)
			break
		}
	}
	if len(lines) == 0 {
		raw, err := json.Marshal(rec)
		if err != nil {
			return fmt.Sprintf("%v", map[string]any(rec))
		}
		return string(raw)
	}
	return strings.Join(lines, "\n")
}
