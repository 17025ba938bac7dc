package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/annel0/blocksandbox/internal/logging"
	"github.com/annel0/blocksandbox/internal/middleware"
	"github.com/annel0/blocksandbox/internal/world"
	"github.com/annel0/blocksandbox/internal/world/block"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// RestServer отладочный REST API поверх мира: заменяет игровой клиент
// при ручной проверке добычи и установки блоков.
type RestServer struct {
	router  *gin.Engine
	world   *world.World
	port    string
	metrics *ServerMetrics
	log     *logging.Logger
	http    *http.Server
}

// Config содержит конфигурацию для REST сервера
type Config struct {
	Port  string       // адрес для запуска сервера, например ":8088"
	World *world.World // обслуживаемый мир
	Debug bool         // gin в debug режиме
}

// NewRestServer создает новый REST API сервер
func NewRestServer(config Config) *RestServer {
	if config.Port == "" {
		config.Port = ":8088"
	}

	if config.Debug {
		gin.SetMode(gin.DebugMode)
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()        // без стандартного logger/recovery
	router.Use(gin.Recovery()) // добавим только recovery

	// === Observability middleware ===
	router.Use(otelgin.Middleware("sandbox_api"))

	loggerMw := middleware.NewRequestLogger(logging.GetAPILogger())
	router.Use(loggerMw.Handler())

	promMw := middleware.NewPrometheusMiddleware("sandbox_api")
	router.Use(promMw.Handler())
	promMw.RegisterMetricsEndpoint(router)

	server := &RestServer{
		router:  router,
		world:   config.World,
		port:    config.Port,
		metrics: NewServerMetrics(),
		log:     logging.GetAPILogger(),
	}
	server.http = &http.Server{
		Addr:              config.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Настраиваем маршруты
	server.setupRoutes()

	return server
}

// Handler возвращает http.Handler сервера (для тестов и встраивания)
func (rs *RestServer) Handler() http.Handler {
	return rs.router
}

// setupRoutes настраивает маршруты REST API
func (rs *RestServer) setupRoutes() {
	api := rs.router.Group("/api")
	{
		api.GET("/world", rs.handleWorldInfo)
		api.GET("/stats", rs.handleStats)

		tiles := api.Group("/tiles/:x/:y")
		tiles.Use(rs.tileCoords())
		{
			tiles.GET("", rs.handleGetTile)
			tiles.POST("/mine", rs.handleMine)
			tiles.POST("/place", rs.handlePlace)
		}

		api.GET("/columns/:x/surface", rs.handleSurface)
	}

	// Health check
	rs.router.GET("/health", rs.handleHealth)
}

// GenericResponse представляет общий ответ API
type GenericResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// TileResponse описывает одну ячейку мира
type TileResponse struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Block uint8  `json:"block"`
	Name  string `json:"name"`
	Solid bool   `json:"solid"`
}

// MineResponse ответ на успешную добычу
type MineResponse struct {
	Drop uint8  `json:"drop"`
	Name string `json:"name"` // "air" - блок ничего не роняет
}

// PlaceRequest запрос на установку блока по имени
type PlaceRequest struct {
	Block string `json:"block" binding:"required"`
}

// tileCoords разбирает :x и :y и кладёт их в контекст
func (rs *RestServer) tileCoords() gin.HandlerFunc {
	return func(c *gin.Context) {
		x, errX := strconv.Atoi(c.Param("x"))
		y, errY := strconv.Atoi(c.Param("y"))
		if errX != nil || errY != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, GenericResponse{
				Success: false,
				Message: "Координаты должны быть целыми числами",
			})
			return
		}
		c.Set("x", x)
		c.Set("y", y)
		c.Next()
	}
}

// handleWorldInfo возвращает параметры мира
func (rs *RestServer) handleWorldInfo(c *gin.Context) {
	cfg := rs.world.Config()
	c.JSON(http.StatusOK, gin.H{
		"id":        rs.world.ID(),
		"width":     rs.world.Width(),
		"height":    rs.world.Height(),
		"sea_level": cfg.SeaLevel,
		"seed":      cfg.Seed,
		"dirty":     rs.world.Dirty(),
	})
}

// handleStats возвращает статистику процесса
func (rs *RestServer) handleStats(c *gin.Context) {
	stats := map[string]interface{}{
		"uptime":      rs.metrics.GetUptime(),
		"server_time": time.Now().Unix(),
		"memory":      rs.metrics.GetDetailedMemoryStats(),
	}

	if cpu, err := rs.metrics.GetCPUUsage(); err == nil {
		stats["cpu_percent"] = fmt.Sprintf("%.2f", cpu)
	} else {
		rs.log.Warn("Не удалось получить CPU процесса: %v", err)
	}
	if rss, err := rs.metrics.GetRSS(); err == nil {
		stats["rss_mb"] = fmt.Sprintf("%.2f", rss)
	}

	c.JSON(http.StatusOK, GenericResponse{
		Success: true,
		Message: "Статистика получена",
		Data:    stats,
	})
}

// handleGetTile возвращает блок в ячейке
func (rs *RestServer) handleGetTile(c *gin.Context) {
	x, y := c.GetInt("x"), c.GetInt("y")
	id := rs.world.Get(x, y)
	c.JSON(http.StatusOK, TileResponse{
		X:     x,
		Y:     y,
		Block: uint8(id),
		Name:  id.Name(),
		Solid: block.IsSolid(id),
	})
}

// handleMine добывает блок
func (rs *RestServer) handleMine(c *gin.Context) {
	x, y := c.GetInt("x"), c.GetInt("y")
	drop, ok := rs.world.Mine(x, y)
	if !ok {
		c.JSON(http.StatusConflict, GenericResponse{
			Success: false,
			Message: fmt.Sprintf("В (%d,%d) нечего добывать", x, y),
		})
		return
	}
	c.JSON(http.StatusOK, MineResponse{Drop: uint8(drop), Name: drop.Name()})
}

// handlePlace ставит блок в пустую ячейку
func (rs *RestServer) handlePlace(c *gin.Context) {
	var req PlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, GenericResponse{
			Success: false,
			Message: "Неверный формат запроса",
		})
		return
	}
	id, ok := block.ByName(req.Block)
	if !ok {
		c.JSON(http.StatusBadRequest, GenericResponse{
			Success: false,
			Message: fmt.Sprintf("Неизвестный блок %q", req.Block),
		})
		return
	}
	if !block.IsPlaceable(id) {
		c.JSON(http.StatusBadRequest, GenericResponse{
			Success: false,
			Message: fmt.Sprintf("Блок %q нельзя поставить", req.Block),
		})
		return
	}

	x, y := c.GetInt("x"), c.GetInt("y")
	if !rs.world.Place(x, y, id) {
		c.JSON(http.StatusConflict, GenericResponse{
			Success: false,
			Message: fmt.Sprintf("Ячейка (%d,%d) занята", x, y),
		})
		return
	}
	c.JSON(http.StatusOK, GenericResponse{
		Success: true,
		Message: "Блок установлен",
		Data: TileResponse{
			X:     x,
			Y:     y,
			Block: uint8(id),
			Name:  id.Name(),
			Solid: block.IsSolid(id),
		},
	})
}

// handleSurface возвращает верхнюю твёрдую строку колонки
func (rs *RestServer) handleSurface(c *gin.Context) {
	x, err := strconv.Atoi(c.Param("x"))
	if err != nil {
		c.JSON(http.StatusBadRequest, GenericResponse{
			Success: false,
			Message: "Координата должна быть целым числом",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"x": x, "surface": rs.world.Surface(x)})
}

// handleHealth проверка состояния сервера
func (rs *RestServer) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().Unix(),
	})
}

// Start запускает REST сервер и блокируется до Stop
func (rs *RestServer) Start() error {
	rs.log.Info("🌐 REST API слушает %s", rs.port)
	if err := rs.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop останавливает REST сервер, дожидаясь активных запросов
func (rs *RestServer) Stop(ctx context.Context) error {
	return rs.http.Shutdown(ctx)
}
