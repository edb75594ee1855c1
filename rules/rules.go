// Package rules — быстрые готовые ответы по шаблонам.
// Правила проверяются по порядку, побеждает первое сработавшее;
// порядок списка и есть приоритет.
package rules

import (
	"regexp"
	"strings"
)

// Rule — пара "шаблон по тексту сообщения" -> готовый ответ.
// Шаблоны проверяются по сырому сообщению в нижнем регистре:
// естественному языку нужны границы слов, которые нормализация стирает.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Reply   string
}

// ruleSet — полный список правил в порядке приоритета.
// Проверка на грубость всегда первая: это контроль тона, а не FAQ.
var ruleSet = []Rule{
	{
		Name:    "insult",
		// Границы слов через [^\p{L}]: RE2-шный \b для кириллицы не работает,
		// а голая подстрока ловит «отстой» внутри «отстойника» — это товар.
		Pattern: regexp.MustCompile(`(^|[^\p{L}])(дурак\p{L}*|дебил\p{L}*|идиот\p{L}*|туп(ой|ая|ые|ица|ицы)|придур(ок|ки)|коз(ел|ёл|лы)|урод\p{L}*|чмо|отстой|хамло)([^\p{L}]|$)`),
		Reply:   "Давайте общаться уважительно. Мы всегда готовы помочь по делу: подскажем артикул, наличие и сроки доставки.",
	},
	{
		Name:    "delivery",
		Pattern: regexp.MustCompile(`доставк|доставл|отправк|отправл|отгруз|отгруж|транспортн|когда приед|сколько (идет|идёт) посылка`),
		Reply:   "Доставляем по всей России транспортными компаниями. Отгружаем в течение 1-2 рабочих дней после оплаты счёта.",
	},
	{
		Name:    "availability",
		Pattern: regexp.MustCompile(`наличи|на складе|есть ли|остат(ок|ки)`),
		Reply:   "Основные позиции держим на складе. Назовите артикул — проверим наличие и сроки поставки.",
	},
	{
		Name:    "min_quantity",
		Pattern: regexp.MustCompile(`минимальн\p{L}* (парти|заказ|количеств)|минималк|мелким оптом|от скольки штук`),
		Reply:   "Минимальной партии нет — отгружаем от одной штуки. Для оптовых заказов подготовим отдельное предложение.",
	},
	{
		Name:    "discount",
		Pattern: regexp.MustCompile(`скидк|скидо|подешевле|дешевле|(^|[^\p{L}])акци(я|и|ю|ей|ях)|промокод`),
		Reply:   "Скидки обсуждаем индивидуально при заказе от 10 000 рублей. Напишите, что вас интересует — посчитаем.",
	},
	{
		Name:    "origin",
		Pattern: regexp.MustCompile(`страна производ|где производ|произведен(о|а)? в|сделано в|чьё производство|чье производство|откуда оборудование`),
		Reply:   "Оборудование выпускается на нашем собственном производстве в России, комплектующие проходят входной контроль.",
	},
	{
		Name:    "identity",
		Pattern: regexp.MustCompile(`кто ты|ты кто|вы кто|как тебя зовут|ты (бот|робот)|вы (бот|робот)|живой человек|с кем я (говорю|общаюсь)`),
		Reply:   "Я Иваныч, консультант по смазочному оборудованию. Подскажу по артикулу, цене, наличию и доставке.",
	},
	{
		Name:    "purchase",
		Pattern: regexp.MustCompile(`как (купить|заказать|оплатить)|хочу (купить|заказать)|оформить заказ|выставите счет|выставите счёт|счет на оплату|счёт на оплату`),
		Reply:   "Чтобы оформить заказ, пришлите нам артикулы и количество — подготовим счёт в течение рабочего часа.",
	},
	{
		Name:    "greeting",
		Pattern: regexp.MustCompile(`^\s*(привет|здравствуй|добрый день|добрый вечер|доброе утро)`),
		Reply:   "Здравствуйте! Назовите артикул или опишите, что ищете — поможем подобрать.",
	},
}

// Match прогоняет сообщение по списку правил и возвращает ответ первого
// сработавшего. false — ни одно правило не подошло.
func Match(message string) (string, bool) {
	lower := strings.ToLower(message)
	for _, r := range ruleSet {
		if r.Pattern.MatchString(lower) {
			return r.Reply, true
		}
	}
	return "", false
}
