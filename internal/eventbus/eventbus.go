package eventbus

import (
	"slices"
	"sync"

	"github.com/annel0/blocksandbox/internal/world"
)

// Filter позволяет подписаться только на нужные события.
type Filter struct {
	Types []world.EventType // Если пусто - все типы.
}

func (f Filter) match(ev world.BlockEvent) bool {
	return len(f.Types) == 0 || slices.Contains(f.Types, ev.GetType())
}

// Subscription возвращается при подписке; позволяет отписаться.
type Subscription interface {
	Unsubscribe()
}

// Handler потребляет события.
type Handler func(ev world.BlockEvent)

// Stats агрегированные метрики шины.
type Stats struct {
	Published uint64
	Consumed  uint64
	Dropped   uint64
	InFlight  int
}

// Bus раздаёт события изменения блоков нескольким подписчикам.
// Реализует world.ChangeListener: мир вызывает его синхронно, поэтому
// публикация никогда не блокирует, а при заполненном буфере событие
// отбрасывается. Подписчики получают события в порядке публикации
// из одной горутины доставки.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[int]subscriber
	nextID      int
	closed      bool

	statsMu sync.Mutex // отдельно от mu: Publish обновляет счётчики под RLock
	stats   Stats

	buffer chan world.BlockEvent
	done   chan struct{}
}

type subscriber struct {
	filter  Filter
	handler Handler
}

// New создаёт шину с указанным буфером и запускает доставку.
func New(capacity int) *Bus {
	b := &Bus{
		subscribers: make(map[int]subscriber),
		buffer:      make(chan world.BlockEvent, capacity),
		done:        make(chan struct{}),
	}
	go b.dispatchLoop()
	return b
}

// OnBlockChange публикует событие мира
func (b *Bus) OnBlockChange(ev world.BlockEvent) {
	b.Publish(ev)
}

// Publish ставит событие в очередь. Возвращает false, если событие отброшено.
func (b *Bus) Publish(ev world.BlockEvent) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return false
	}
	select {
	case b.buffer <- ev:
		b.count(func(s *Stats) { s.Published++ })
		return true
	default:
		// Буфер заполнен - дропаем, мир не должен ждать подписчиков
		b.count(func(s *Stats) { s.Dropped++ })
		return false
	}
}

func (b *Bus) count(fn func(s *Stats)) {
	b.statsMu.Lock()
	fn(&b.stats)
	b.statsMu.Unlock()
}

// Subscribe регистрирует обработчик событий, прошедших фильтр.
func (b *Bus) Subscribe(f Filter, h Handler) Subscription {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subscribers[id] = subscriber{filter: f, handler: h}
	b.mu.Unlock()

	return &sub{bus: b, id: id}
}

// Stats возвращает снимок статистики шины.
func (b *Bus) Stats() Stats {
	b.statsMu.Lock()
	s := b.stats
	b.statsMu.Unlock()
	s.InFlight = len(b.buffer)
	return s
}

// Close прекращает приём событий и дожидается доставки уже поставленных.
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		<-b.done
		return
	}
	b.closed = true
	close(b.buffer)
	b.mu.Unlock()
	<-b.done
}

// dispatchLoop рассылает события подписчикам.
func (b *Bus) dispatchLoop() {
	defer close(b.done)

	for ev := range b.buffer {
		b.mu.RLock()
		subs := make([]subscriber, 0, len(b.subscribers))
		for _, s := range b.subscribers {
			subs = append(subs, s)
		}
		b.mu.RUnlock()

		for _, s := range subs {
			if !s.filter.match(ev) {
				continue
			}
			s.handler(ev)
			b.count(func(st *Stats) { st.Consumed++ })
		}
	}
}

type sub struct {
	bus *Bus
	id  int
}

func (s *sub) Unsubscribe() {
	s.bus.mu.Lock()
	delete(s.bus.subscribers, s.id)
	s.bus.mu.Unlock()
}
