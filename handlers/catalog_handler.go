package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ivanychserver/catalog"
)

var (
	catalogStore *catalog.Store
	catalogPath  string
)

// SetCatalog устанавливает хранилище каталога и путь к его источнику
func SetCatalog(store *catalog.Store, path string) {
	catalogStore = store
	catalogPath = path
	log.Println("Каталог установлен в обработчиках")
}

// Index обрабатывает GET / — строка живости сервиса.
func Index(c *gin.Context) {
	c.String(http.StatusOK, "Иваныч 2 работает!")
}

// Health обрабатывает GET /api/health: статус и число записей каталога.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"records": catalogStore.Current().Count(),
	})
}

// ReloadCatalog обрабатывает POST /api/reload: перечитывает источник
// и атомарно подменяет снимок каталога. Читатели смену не замечают.
func ReloadCatalog(c *gin.Context) {
	fresh := catalog.LoadFile(catalogPath)
	catalogStore.Swap(fresh)

	log.Printf("Каталог перезагружен, записей: %d", fresh.Count())
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"records": fresh.Count(),
	})
}
