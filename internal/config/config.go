package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/annel0/blocksandbox/internal/logging"
	"github.com/annel0/blocksandbox/internal/world"
	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации приложения.
type Config struct {
	World  world.GenConfig `yaml:"world"`
	Server ServerConfig    `yaml:"server"`
	Log    LogConfig       `yaml:"log"`
}

type ServerConfig struct {
	RESTPort int           `yaml:"rest_port"`
	Debug    bool          `yaml:"debug"` // gin в debug режиме
	Tracing  TracingConfig `yaml:"tracing"`
}

// TracingConfig настройки экспорта трасс OTLP/HTTP
type TracingConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"` // host:port, "" - localhost:4318
	Insecure bool   `yaml:"insecure"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Dir    string `yaml:"dir"`
	ToFile bool   `yaml:"to_file"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		World: world.DefaultGenConfig(),
		Log: LogConfig{
			Level: "info",
			Dir:   "logs",
		},
	}
}

// GetRESTPort возвращает REST API порт с поддержкой fallback значений
func (s *ServerConfig) GetRESTPort() int {
	return getPortWithEnvFallback(s.RESTPort, "GAME_REST_PORT", 8088)
}

// getPortWithEnvFallback возвращает порт с приоритетом: config -> env -> default
func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	// Если порт задан в конфиге и больше 0, используем его
	if configPort > 0 {
		return configPort
	}

	// Пробуем прочитать из environment variable
	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	// Используем дефолтное значение
	return defaultPort
}

// LoggingOptions переводит секцию log в опции пакета logging.
// Уровень из GAME_LOG_LEVEL перекрывает конфиг.
func (l LogConfig) LoggingOptions() (logging.Options, error) {
	levelStr := l.Level
	if env := os.Getenv("GAME_LOG_LEVEL"); env != "" {
		levelStr = env
	}
	level, err := logging.ParseLevel(levelStr)
	if err != nil {
		return logging.Options{}, err
	}

	opts := logging.DefaultOptions()
	opts.ConsoleLevel = level
	opts.ToFile = l.ToFile
	if l.Dir != "" {
		opts.Dir = l.Dir
	}
	if level < opts.FileLevel {
		opts.FileLevel = level
	}
	return opts, nil
}

// Load читает YAML файл конфигурации поверх значений по умолчанию.
// Если path == "", пытается прочитать из ENV GAME_CONFIG, иначе остаются дефолты.
// Сид мира можно перекрыть через WORLD_SEED.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("GAME_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("чтение конфигурации %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("разбор конфигурации %s: %w", path, err)
		}
	}

	if seed := os.Getenv("WORLD_SEED"); seed != "" {
		v, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("WORLD_SEED=%q: %w", seed, err)
		}
		cfg.World.Seed = v
	}

	if err := cfg.World.Validate(); err != nil {
		return nil, fmt.Errorf("секция world: %w", err)
	}

	return cfg, nil
}
