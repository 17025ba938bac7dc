package logging

import (
	"errors"
	"fmt"
	"sync"
)

// Компоненты песочницы. При включённом файловом выводе у каждого свой файл.
const (
	ComponentWorld = "world"
	ComponentAPI   = "api"
)

// LoggerManager раздаёт по одному логгеру на компонент
type LoggerManager struct {
	mu      sync.Mutex
	loggers map[string]*Logger
}

var globalManager = &LoggerManager{loggers: make(map[string]*Logger)}

// GetLoggerManager возвращает глобальный менеджер логгеров
func GetLoggerManager() *LoggerManager {
	return globalManager
}

// Logger возвращает логгер компонента, создавая его при первом обращении.
// Если файл логов не открылся, компонент пишет только в консоль.
func (lm *LoggerManager) Logger(component string) *Logger {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	if l, ok := lm.loggers[component]; ok {
		return l
	}

	l, err := NewLogger(component)
	if err != nil {
		Warn("⚠️ Логгер %s остаётся без файла: %v", component, err)
		opts := currentOptions()
		opts.ToFile = false
		l = newConsoleLogger(component, opts)
	}
	lm.loggers[component] = l
	return l
}

// CloseAll закрывает файлы всех компонентов. Следующий вызов Logger
// создаст логгер заново с текущими опциями.
func (lm *LoggerManager) CloseAll() error {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	var errs []error
	for component, l := range lm.loggers {
		if err := l.Close(); err != nil {
			errs = append(errs, fmt.Errorf("логгер %s: %w", component, err))
		}
	}
	lm.loggers = make(map[string]*Logger)
	return errors.Join(errs...)
}

// GetWorldLogger - логгер генерации и изменений мира
func GetWorldLogger() *Logger {
	return globalManager.Logger(ComponentWorld)
}

// GetAPILogger - логгер отладочного REST API
func GetAPILogger() *Logger {
	return globalManager.Logger(ComponentAPI)
}
