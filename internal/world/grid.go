package world

import (
	"github.com/annel0/blocksandbox/internal/vec"
	"github.com/annel0/blocksandbox/internal/world/block"
)

// Grid - плотная сетка блоков фиксированного размера.
// Ячейка (x, y) хранится по индексу y*width + x, строка 0 - верх мира.
// Чтение за границами возвращает бедрок, запись за границами игнорируется.
type Grid struct {
	width  int
	height int
	tiles  []block.BlockID
	dirty  bool
}

// NewGrid создаёт сетку, заполненную воздухом
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		width:  width,
		height: height,
		tiles:  make([]block.BlockID, width*height),
	}
}

// Width возвращает ширину сетки в тайлах
func (g *Grid) Width() int { return g.width }

// Height возвращает высоту сетки в тайлах
func (g *Grid) Height() int { return g.height }

// InBounds проверяет, лежит ли ячейка внутри сетки
func (g *Grid) InBounds(x, y int) bool {
	return vec.Vec2{X: x, Y: y}.In(g.width, g.height)
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Get возвращает код блока в ячейке
func (g *Grid) Get(x, y int) block.BlockID {
	if !g.InBounds(x, y) {
		return block.Bedrock
	}
	return g.tiles[g.index(x, y)]
}

// Set перезаписывает ячейку и помечает сетку как изменённую
func (g *Grid) Set(x, y int, id block.BlockID) {
	if !g.InBounds(x, y) {
		return
	}
	g.tiles[g.index(x, y)] = id
	g.dirty = true
}

// Dirty сообщает рендеру, что сетка менялась с последней очистки флага
func (g *Grid) Dirty() bool { return g.dirty }

// ClearDirty сбрасывает флаг. Вызывает только рендер.
func (g *Grid) ClearDirty() { g.dirty = false }

// Count возвращает количество ячеек с указанным блоком
func (g *Grid) Count(id block.BlockID) int {
	n := 0
	for _, t := range g.tiles {
		if t == id {
			n++
		}
	}
	return n
}

// Row возвращает копию строки y (для рендера и отладки)
func (g *Grid) Row(y int) []block.BlockID {
	if y < 0 || y >= g.height {
		return nil
	}
	row := make([]block.BlockID, g.width)
	copy(row, g.tiles[g.index(0, y):g.index(0, y)+g.width])
	return row
}
