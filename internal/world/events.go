package world

import (
	"github.com/annel0/blocksandbox/internal/vec"
	"github.com/annel0/blocksandbox/internal/world/block"
)

// EventType определяет тип события
type EventType uint8

const (
	EventTypeBlockSet   EventType = iota // Прямая запись блока
	EventTypeBlockMine                   // Блок добыт игроком
	EventTypeBlockPlace                  // Блок установлен игроком
)

// String возвращает имя типа события (используется в метриках)
func (t EventType) String() string {
	switch t {
	case EventTypeBlockSet:
		return "set"
	case EventTypeBlockMine:
		return "mine"
	case EventTypeBlockPlace:
		return "place"
	default:
		return "unknown"
	}
}

// Event представляет собой интерфейс для всех событий
type Event interface {
	GetType() EventType
}

// BlockEvent описывает успешное изменение одной ячейки
type BlockEvent struct {
	EventType EventType
	Position  vec.Vec2      // Координаты ячейки
	Old       block.BlockID // Блок до изменения
	New       block.BlockID // Блок после изменения
	Drop      block.BlockID // Для добычи: что получил игрок (Air - ничего)
}

// GetType возвращает тип события
func (e BlockEvent) GetType() EventType {
	return e.EventType
}

// ChangeListener получает события изменения блоков (рендер, сеть).
// Вызывается вне блокировки мира, поэтому может читать мир.
type ChangeListener interface {
	OnBlockChange(event BlockEvent)
}

// ChangeListenerFunc адаптер обычной функции к ChangeListener
type ChangeListenerFunc func(event BlockEvent)

// OnBlockChange вызывает f(event)
func (f ChangeListenerFunc) OnBlockChange(event BlockEvent) {
	f(event)
}
