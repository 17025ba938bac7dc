package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/annel0/blocksandbox/internal/api"
	"github.com/annel0/blocksandbox/internal/config"
	"github.com/annel0/blocksandbox/internal/eventbus"
	"github.com/annel0/blocksandbox/internal/logging"
	"github.com/annel0/blocksandbox/internal/observability"
	"github.com/annel0/blocksandbox/internal/world"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	configPath := flag.String("config", "", "путь к YAML конфигурации (по умолчанию $GAME_CONFIG)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}

	logOpts, err := cfg.Log.LoggingOptions()
	if err != nil {
		log.Fatalf("❌ Ошибка конфигурации логирования: %v", err)
	}
	logging.Configure(logOpts)
	if err := logging.InitDefaultLogger("server"); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()
	defer logging.GetLoggerManager().CloseAll()

	logging.Info("🎮 Запуск песочницы: мир %dx%d, сид %d", cfg.World.Width, cfg.World.Height, cfg.World.Seed)

	// === ТРАССИРОВКА ===
	if cfg.Server.Tracing.Enabled {
		shutdown, err := observability.InitTelemetry(context.Background(), observability.Options{
			ServiceName: "blocksandbox",
			Endpoint:    cfg.Server.Tracing.Endpoint,
			Insecure:    cfg.Server.Tracing.Insecure,
		})
		if err != nil {
			logging.Error("❌ Ошибка инициализации OpenTelemetry: %v", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logging.Error("Ошибка остановки OpenTelemetry: %v", err)
				}
			}()
		}
	}

	// === ГЕНЕРАЦИЯ МИРА ===
	start := time.Now()
	w, err := world.NewWorld(cfg.World, nil)
	if err != nil {
		logging.Error("❌ Ошибка генерации мира: %v", err)
		os.Exit(1)
	}
	logging.Info("🌍 Мир %s сгенерирован за %s", w.ID(), time.Since(start))

	// === ШИНА СОБЫТИЙ ===
	bus := eventbus.New(1024)
	defer bus.Close()
	if err := eventbus.RegisterMetrics(prometheus.DefaultRegisterer, bus); err != nil {
		logging.Warn("Метрики шины событий не зарегистрированы: %v", err)
	}
	eventbus.StartLoggingListener(bus, logging.GetWorldLogger())
	w.SetListener(bus)

	// === REST API ===
	restPort := cfg.Server.GetRESTPort()
	server := api.NewRestServer(api.Config{
		Port:  ":" + strconv.Itoa(restPort),
		World: w,
		Debug: cfg.Server.Debug,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logging.Info("✅ Песочница готова")
	logging.Info("   🌐 REST API: http://localhost:%d/api/world", restPort)
	logging.Info("   ❤️  Health check: http://localhost:%d/health", restPort)
	logging.Info("   📈 Метрики: http://localhost:%d/metrics", restPort)

	// Канал для получения сигналов ОС
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info("📡 Получен сигнал %v, завершение работы...", sig)
	case err := <-errCh:
		if err != nil {
			logging.Error("❌ REST API остановился с ошибкой: %v", err)
		}
	}

	// === GRACEFUL SHUTDOWN ===
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Stop(ctx); err != nil {
		logging.Error("❌ Ошибка остановки REST API: %v", err)
	}

	logging.Info("👋 Сервер успешно остановлен")
}
