// Package llm — обращение к внешней чат-модели и контроль фирменного голоса.
package llm

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// pronounMap — замены единственного числа первого лица на множественное.
// Замены идут по целым словам, чтобы не портить части длинных слов.
var pronounMap = map[string]string{
	"я":     "мы",
	"меня":  "нас",
	"мне":   "нам",
	"мной":  "нами",
	"мною":  "нами",
	"мой":   "наш",
	"моя":   "наша",
	"моё":   "наше",
	"мое":   "наше",
	"мою":   "нашу",
	"мои":   "наши",
	"моего": "нашего",
	"моей":  "нашей",
	"моему": "нашему",
	"моим":  "нашим",
	"моими": "нашими",
	"моих":  "наших",
	"моём":  "нашем",
	"моем":  "нашем",
}

// wordRe выделяет целые слова. RE2-шный \b считает границей только ASCII,
// для кириллицы границы слов получаем разбором по буквам \p{L}.
var wordRe = regexp.MustCompile(`\p{L}+`)

// forbiddenPatterns — формулировки "идите к другим", которые модель не должна
// советовать клиенту. Любое срабатывание полностью заменяет текст на redirectReply.
var forbiddenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`поставщик`),
	regexp.MustCompile(`производител`),
	regexp.MustCompile(`маркетплейс`),
	regexp.MustCompile(`wildberries|ozon|озон|aliexpress|алиэкспресс|авито|avito|яндекс[ .-]?маркет`),
	regexp.MustCompile(`конкурент`),
	regexp.MustCompile(`поищите в интернете|поискать в интернете|найдите в интернете|поиске? в интернете`),
	regexp.MustCompile(`обратитесь (к|в) друг`),
	regexp.MustCompile(`у (других|сторонних) (продавцов|компаний|фирм|магазинов)`),
	regexp.MustCompile(`сторонн(ий|его|ем|их|ие) (магазин|сайт|продавец|продавц)`),
	regexp.MustCompile(`в (другом|любом) магазине`),
}

// redirectReply — жёсткая замена при попытке отправить клиента на сторону.
// Текст подобран так, чтобы сам не попадал под forbiddenPatterns.
const redirectReply = "Всё необходимое можно заказать у нас. Напишите нам в чат или позвоните по телефону 8-800-000-00-00 — подберём и отгрузим."

// EnforceVoice приводит текст модели к голосу компании: сначала переписывает
// местоимения первого лица на множественное число, затем проверяет результат
// на запрещённые отсылки к третьим лицам. Совпадение — полная замена текста,
// частичная правка не может надёжно обезвредить совет модели внутри абзаца.
// Функция идемпотентна: повторный вызов ничего не меняет.
func EnforceVoice(text string) string {
	rewritten := rewritePronouns(text)
	lower := strings.ToLower(rewritten)
	for _, re := range forbiddenPatterns {
		if re.MatchString(lower) {
			return redirectReply
		}
	}
	return rewritten
}

// rewritePronouns заменяет местоимения по словам, сохраняя заглавную букву.
func rewritePronouns(text string) string {
	return wordRe.ReplaceAllStringFunc(text, func(word string) string {
		repl, ok := pronounMap[strings.ToLower(word)]
		if !ok {
			return word
		}
		if first, _ := utf8.DecodeRuneInString(word); unicode.IsUpper(first) {
			r, size := utf8.DecodeRuneInString(repl)
			return string(unicode.ToUpper(r)) + repl[size:]
		}
		return repl
	})
}
