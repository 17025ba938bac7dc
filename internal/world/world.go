package world

import (
	"fmt"
	"sync"
	"time"

	"github.com/annel0/blocksandbox/internal/logging"
	"github.com/annel0/blocksandbox/internal/vec"
	"github.com/annel0/blocksandbox/internal/world/block"
	"github.com/google/uuid"
)

// World владеет сеткой блоков. После генерации сетка меняется только через
// Set, Mine и Place. Все операции сериализуются одним мьютексом:
// Mine и Place читают и пишут одну ячейку и не должны перемежаться.
type World struct {
	id       string
	cfg      GenConfig
	grid     *Grid
	mu       sync.RWMutex
	listener ChangeListener
	log      *logging.Logger
}

// NewWorld проверяет конфигурацию и генерирует мир.
// Если src == nil, используется math/rand с сидом из конфигурации.
func NewWorld(cfg GenConfig, src Source) (*World, error) {
	w, _, err := GenerateWorld(cfg, src)
	return w, err
}

// GenerateWorld как NewWorld, но дополнительно возвращает промежуточные
// поля высот и пещер. Мир их не сохраняет.
func GenerateWorld(cfg GenConfig, src Source) (*World, Terrain, error) {
	if err := cfg.Validate(); err != nil {
		return nil, Terrain{}, fmt.Errorf("некорректная конфигурация мира: %w", err)
	}
	if src == nil {
		src = NewRandSource(cfg.Seed)
	}

	w := &World{
		id:   uuid.NewString(),
		cfg:  cfg,
		grid: NewGrid(cfg.Width, cfg.Height),
		log:  logging.GetWorldLogger(),
	}

	start := time.Now()
	terrain := NewWorldGenerator(cfg, src).Generate(w.grid)
	elapsed := time.Since(start)

	worldsGenerated.Inc()
	generationSeconds.Observe(elapsed.Seconds())

	w.log.Debug("Мир %s сгенерирован за %s: %dx%d, море=%d, камень=%d, пещеры(воздух)=%d, алмазы=%d, деревья(стволы)=%d",
		w.id, elapsed, cfg.Width, cfg.Height, cfg.SeaLevel,
		w.grid.Count(block.Stone), w.grid.Count(block.Air),
		w.grid.Count(block.Diamond), w.grid.Count(block.Wood))

	return w, terrain, nil
}

// ID возвращает уникальный идентификатор экземпляра мира
func (w *World) ID() string { return w.id }

// Config возвращает конфигурацию, с которой мир был создан
func (w *World) Config() GenConfig { return w.cfg }

// Width возвращает ширину мира в тайлах
func (w *World) Width() int { return w.grid.Width() }

// Height возвращает высоту мира в тайлах
func (w *World) Height() int { return w.grid.Height() }

// SetListener задаёт получателя событий изменения блоков (nil - отключить)
func (w *World) SetListener(l ChangeListener) {
	w.mu.Lock()
	w.listener = l
	w.mu.Unlock()
}

// Get возвращает блок в ячейке; за границами мира - бедрок
func (w *World) Get(x, y int) block.BlockID {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.grid.Get(x, y)
}

// Set безусловно перезаписывает ячейку. За границами мира и на нижнем
// ряду (бедрок) ничего не делает.
func (w *World) Set(x, y int, id block.BlockID) {
	w.mu.Lock()
	if !w.grid.InBounds(x, y) || y == w.grid.Height()-1 {
		w.mu.Unlock()
		return
	}
	old := w.grid.Get(x, y)
	w.grid.Set(x, y, id)
	l := w.listener
	w.mu.Unlock()

	observeTileOp(EventTypeBlockSet, true)
	w.notify(l, BlockEvent{EventType: EventTypeBlockSet, Position: vec.Vec2{X: x, Y: y}, Old: old, New: id})
}

// Mine добывает блок. ok == false, если добывать нечего: воздух, бедрок
// (в том числе за границами мира) или неизвестный код. При ok == true ячейка
// становится воздухом, а drop - то, что получает игрок (block.Air для
// блоков без дропа, например листвы).
func (w *World) Mine(x, y int) (drop block.BlockID, ok bool) {
	w.mu.Lock()
	id := w.grid.Get(x, y)
	if id == block.Air || id == block.Bedrock || !block.Valid(id) {
		w.mu.Unlock()
		observeTileOp(EventTypeBlockMine, false)
		return block.Air, false
	}

	drop, _ = block.DropOf(id)
	w.grid.Set(x, y, block.Air)
	l := w.listener
	w.mu.Unlock()

	observeTileOp(EventTypeBlockMine, true)
	w.log.Trace("Добыт %s в (%d,%d), дроп %s", id, x, y, drop)
	w.notify(l, BlockEvent{EventType: EventTypeBlockMine, Position: vec.Vec2{X: x, Y: y}, Old: id, New: block.Air, Drop: drop})
	return drop, true
}

// Place ставит блок, только если ячейка сейчас воздух.
// Воздух, бедрок, предметы, неизвестные коды и ячейки за границами мира отклоняются.
func (w *World) Place(x, y int, id block.BlockID) bool {
	if !block.IsPlaceable(id) {
		observeTileOp(EventTypeBlockPlace, false)
		return false
	}

	w.mu.Lock()
	if w.grid.Get(x, y) != block.Air {
		w.mu.Unlock()
		observeTileOp(EventTypeBlockPlace, false)
		return false
	}
	w.grid.Set(x, y, id)
	l := w.listener
	w.mu.Unlock()

	observeTileOp(EventTypeBlockPlace, true)
	w.log.Trace("Установлен %s в (%d,%d)", id, x, y)
	w.notify(l, BlockEvent{EventType: EventTypeBlockPlace, Position: vec.Vec2{X: x, Y: y}, Old: block.Air, New: id})
	return true
}

// IsSolid возвращает true, если блок в ячейке участвует в коллизиях
func (w *World) IsSolid(x, y int) bool {
	return block.IsSolid(w.Get(x, y))
}

// Surface возвращает первую твёрдую строку колонки сверху вниз,
// или нижнюю строку, если твёрдых нет
func (w *World) Surface(x int) int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for y := 0; y < w.grid.Height(); y++ {
		if block.IsSolid(w.grid.Get(x, y)) {
			return y
		}
	}
	return w.grid.Height() - 1
}

// Dirty сообщает, менялся ли мир с последнего ClearDirty
func (w *World) Dirty() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.grid.Dirty()
}

// ClearDirty сбрасывает флаг изменений. Вызывает рендер после отрисовки.
func (w *World) ClearDirty() {
	w.mu.Lock()
	w.grid.ClearDirty()
	w.mu.Unlock()
}

// Row возвращает копию строки y для рендера
func (w *World) Row(y int) []block.BlockID {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.grid.Row(y)
}

func (w *World) notify(l ChangeListener, ev BlockEvent) {
	if l != nil {
		l.OnBlockChange(ev)
	}
}
