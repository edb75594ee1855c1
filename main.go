package main

import (
	"log"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"ivanychserver/catalog"
	"ivanychserver/handlers"
	"ivanychserver/llm"
	"ivanychserver/middleware"
	"ivanychserver/resolver"
	"ivanychserver/websocket"
)

func main() {
	// Загружаем каталог один раз при старте; пустой или битый источник
	// не мешает запуску — сервис отвечает и с пустым каталогом
	catalogPath := env("CATALOG_PATH", "catalog.json")
	store := catalog.NewStore(catalog.LoadFile(catalogPath))

	// Чат-модель: без OPENAI_API_KEY работает в деградированном режиме
	chatResolver := resolver.New(store, llm.NewClient())

	handlers.SetResolver(chatResolver)
	handlers.SetCatalog(store, catalogPath)

	// Инициализация роутера Gin
	r := gin.Default()

	// Добавляем middleware для логирования
	r.Use(middleware.Logger())

	// Настройка CORS для взаимодействия с виджетом на сайте
	r.Use(cors.New(cors.Config{
		AllowOrigins: strings.Split(env("CORS_ORIGINS", "http://localhost:3000"), ","),
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	// Инициализация WebSocket хаба для чат-виджета
	hub := websocket.NewHub(chatResolver)
	go hub.Run()

	// API эндпоинты
	api := r.Group("/api")
	{
		api.POST("/chat", handlers.Chat)
		api.GET("/health", handlers.Health)
		api.POST("/reload", handlers.ReloadCatalog)
	}

	// Строка живости
	r.GET("/", handlers.Index)

	// WebSocket эндпоинт
	r.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(hub, c.Writer, c.Request)
	})

	// Запуск сервера
	addr := ":" + env("PORT", "8080")
	log.Printf("Сервер запущен на порту %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}

// env возвращает значение переменной окружения или значение по умолчанию.
func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
