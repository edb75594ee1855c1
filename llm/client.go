package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

// systemPrompt задаёт персону и границы темы. Модель отвечает только про
// смазочное оборудование и никогда не отправляет клиента в другие компании.
const systemPrompt = "Ты — Иваныч, консультант интернет-магазина смазочного оборудования. " +
	"Отвечай кратко, по-деловому и только на вопросы о смазочном оборудовании, " +
	"его подборе, заказе и доставке. Говори о компании от первого лица множественного числа. " +
	"Никогда не советуй обращаться в другие компании, магазины или маркетплейсы " +
	"и не предлагай искать товар где-то ещё: всё необходимое клиент покупает у нас."

// fewShot — пара коротких примеров нужного тона ответа.
var fewShot = []openai.ChatCompletionMessage{
	{Role: openai.ChatMessageRoleUser, Content: "Посоветуйте, чем смазывать направляющие станка."},
	{Role: openai.ChatMessageRoleAssistant, Content: "Для направляющих подойдёт масло И-40А или аналог. Назовите модель станка — подберём точнее."},
	{Role: openai.ChatMessageRoleUser, Content: "У вас дорого."},
	{Role: openai.ChatMessageRoleAssistant, Content: "Посчитаем спецификацию под ваш объём — при заказе от 10 000 рублей предложим лучшие условия."},
}

// degradedReply — дежурный ответ, когда модель недоступна.
// Отдаётся всегда одинаковым, чтобы сбой апстрима не выглядел как ошибка сервиса.
const degradedReply = "Иваныч сейчас на складе и не может ответить развёрнуто. " +
	"Напишите нам в чат или позвоните по телефону 8-800-000-00-00 — обязательно поможем."

// errNoCredentials — ключ API не задан, клиент работает в деградированном режиме.
var errNoCredentials = errors.New("ключ OPENAI_API_KEY не задан")

// Client оборачивает chat-completion API фирменным системным промптом.
type Client struct {
	api     *openai.Client
	model   string
	timeout time.Duration
	limiter *rate.Limiter
}

// NewClient настраивает клиента из переменных окружения:
// OPENAI_API_KEY, LLM_BASE_URL (совместимый эндпоинт), LLM_MODEL, LLM_API_TIMEOUT.
// Отсутствие ключа не мешает запуску — клиент просто отвечает дежурным текстом.
func NewClient() *Client {
	c := &Client{
		model:   "gpt-4o-mini",
		timeout: 30 * time.Second,
		limiter: rate.NewLimiter(rate.Limit(3), 5),
	}

	if m := os.Getenv("LLM_MODEL"); m != "" {
		c.model = m
	}
	if t := os.Getenv("LLM_API_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			c.timeout = d
		}
	}

	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		log.Println("ЛЛМ: OPENAI_API_KEY не задан, работаем без модели")
		return c
	}

	cfg := openai.DefaultConfig(key)
	if base := os.Getenv("LLM_BASE_URL"); base != "" {
		cfg.BaseURL = base
	}
	c.api = openai.NewClientWithConfig(cfg)
	return c
}

// Complete возвращает ответ модели на сообщение клиента, уже пропущенный
// через контроль голоса. Любой сбой апстрима (нет ключа, таймаут, ошибка
// вызова, пустой ответ) сводится к одному дежурному тексту в одной точке —
// у чат-эндпоинта нет ветки ошибки для этого компонента.
func (c *Client) Complete(ctx context.Context, userMessage string) string {
	text, err := c.generate(ctx, userMessage)
	if err != nil {
		log.Printf("ЛЛМ: деградация до дежурного ответа: %v", err)
		return degradedReply
	}
	return EnforceVoice(text)
}

// generate выполняет один запрос к модели без повторов:
// один медленный апстрим не должен копить задержку.
func (c *Client) generate(ctx context.Context, userMessage string) (string, error) {
	if c.api == nil {
		return "", errNoCredentials
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("ожидание лимитера: %w", err)
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(fewShot)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	messages = append(messages, fewShot...)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userMessage,
	})

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: 0.2,
		MaxTokens:   400,
	})
	if err != nil {
		return "", fmt.Errorf("запрос к модели: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("модель вернула пустой список вариантов")
	}
	return resp.Choices[0].Message.Content, nil
}
