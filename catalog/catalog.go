package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
)

// Record — одна позиция каталога. Схема у источников разная,
// поэтому запись — открытая карта "поле -> значение".
type Record map[string]any

// Catalog — неизменяемый снимок каталога. Строится один раз при загрузке
// (или при явной перезагрузке) и дальше только читается.
type Catalog struct {
	records []Record
}

// articleKeys — синонимы поля с артикулом, проверяются по порядку.
// Список держим данными, а не условиями, чтобы тестировать отдельно.
var articleKeys = []string{"code", "article", "sku", "art", "артикул", "код"}

// articleShapeRe — форма артикула: известный префикс, дефис, ровно три цифры.
var articleShapeRe = regexp.MustCompile(`\b(?:100|104|106|108|250)-\d{3}\b`)

// ExtractArticle выделяет из сообщения первую подстроку в форме артикула.
// Пустая строка — формы артикула в сообщении нет.
func ExtractArticle(message string) string {
	return articleShapeRe.FindString(dashReplacer.Replace(message))
}

// Load разбирает JSON-источник каталога. Корень может быть массивом записей,
// картой с массивами записей в значениях или одиночной картой. Ошибка разбора
// не фатальна: сервис остаётся работать с пустым каталогом.
func Load(data []byte) *Catalog {
	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		log.Printf("Каталог: ошибка разбора источника: %v — работаем с пустым каталогом", err)
		return &Catalog{}
	}
	return &Catalog{records: collect(root)}
}

// LoadFile читает каталог из файла. Отсутствующий или нечитаемый файл
// тоже даёт пустой каталог, а не падение сервиса.
func LoadFile(path string) *Catalog {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Каталог: не удалось прочитать %s: %v — работаем с пустым каталогом", path, err)
		return &Catalog{}
	}
	c := Load(data)
	log.Printf("Каталог: загружено записей: %d (файл %s)", c.Count(), path)
	return c
}

// collect сводит корень источника к плоскому списку записей.
// Порядок записей = порядок в источнике.
func collect(root any) []Record {
	switch v := root.(type) {
	case []any:
		var recs []Record
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				recs = append(recs, Record(m))
			}
		}
		return recs
	case map[string]any:
		var recs []Record
		for _, item := range v {
			switch t := item.(type) {
			case []any:
				for _, sub := range t {
					if m, ok := sub.(map[string]any); ok {
						recs = append(recs, Record(m))
					}
				}
			case map[string]any:
				recs = append(recs, Record(t))
			}
		}
		if len(recs) == 0 {
			// Ничего спискового внутри — считаем всю карту одной записью,
			// чтобы загрузка не дала молча пустой каталог.
			recs = append(recs, Record(v))
		}
		return recs
	default:
		return nil
	}
}

// Count возвращает число записей в каталоге.
func (c *Catalog) Count() int {
	return len(c.records)
}

// FindByArticle ищет запись по запросу в два прохода:
// сначала точное совпадение нормализованного запроса с полем-артикулом
// (артикул — самый точный сигнал и всегда выигрывает), затем поиск
// подстроки по всему развернутому тексту записи. Первое совпадение побеждает.
func (c *Catalog) FindByArticle(query string) (Record, bool) {
	q := Normalize(query)
	if q == "" {
		return nil, false
	}

	// Проход 1: точное совпадение по полю-артикулу.
	for _, rec := range c.records {
		for _, key := range articleKeys {
			if v, ok := rec.field(key); ok && Normalize(v) == q {
				return rec, true
			}
		}
	}

	// Проход 2: запрос как подстрока полного текста записи.
	for _, rec := range c.records {
		if strings.Contains(Normalize(flatten(rec)), q) {
			return rec, true
		}
	}

	return nil, false
}

// field находит значение поля по имени без учёта регистра.
func (r Record) field(name string) (any, bool) {
	for k, v := range r {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return nil, false
}

// flatten рекурсивно собирает все листовые значения записи в одну строку.
func flatten(v any) string {
	var sb strings.Builder
	appendLeaves(&sb, v)
	return sb.String()
}

func appendLeaves(sb *strings.Builder, v any) {
	switch t := v.(type) {
	case map[string]any:
		for _, sub := range t {
			appendLeaves(sb, sub)
		}
	case []any:
		for _, sub := range t {
			appendLeaves(sb, sub)
		}
	case nil:
		// пропускаем
	default:
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(sb, "%v", t)
	}
}
