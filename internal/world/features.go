package world

import (
	"github.com/annel0/blocksandbox/internal/vec"
	"github.com/annel0/blocksandbox/internal/world/block"
)

// stamper выполняет проходы после основной генерации: пляжи, деревья, гравий
type stamper struct {
	cfg  GenConfig
	src  Source
	grid *Grid
}

// canopy - смещения кроны относительно верхушки ствола (ромб без ствола)
var canopy = func() []vec.Vec2 {
	var out []vec.Vec2
	for dy := -2; dy <= 1; dy++ {
		for dx := -2; dx <= 2; dx++ {
			p := vec.Vec2{X: dx, Y: dy}
			limit := 2
			if dy < 0 {
				limit++
			}
			if p.Manhattan(vec.Vec2{}) > limit || (dx == 0 && dy >= 0) {
				continue
			}
			out = append(out, p)
		}
	}
	return out
}()

// stamp пишет блок, но никогда не трогает нижнюю строку
func (s *stamper) stamp(x, y int, id block.BlockID) {
	if y >= s.cfg.Height-1 {
		return
	}
	s.grid.Set(x, y, id)
}

// beaches засыпает песком колонки, поверхность которых у уровня моря
func (s *stamper) beaches(heights HeightField) {
	for x, surface := range heights {
		if surface < s.cfg.SeaLevel-s.cfg.BeachBand || surface > s.cfg.SeaLevel+s.cfg.BeachBand {
			continue
		}
		for y := surface; y <= surface+s.cfg.BeachDepth; y++ {
			s.stamp(x, y, block.Sand)
		}
	}
}

// trees сажает деревья слева направо. Порядок важен: крона пишется
// только в воздух, поэтому ранние деревья не дают поздним врасти в себя.
func (s *stamper) trees(heights HeightField) {
	margin := s.cfg.TreeEdgeMargin
	for x, surface := range heights {
		if surface >= s.cfg.SeaLevel-s.cfg.TreeClearance {
			continue
		}
		if x <= margin || x >= s.cfg.Width-margin {
			continue
		}
		if !chance(s.src, s.cfg.TreeChance) {
			continue
		}
		s.tree(x, surface)
	}
}

// tree ставит ствол над поверхностью и ромбовидную крону вокруг его верхушки
func (s *stamper) tree(x, surface int) {
	trunk := s.cfg.TreeMinTrunk + intn(s.src, s.cfg.TreeTrunkSpread)
	for i := 1; i <= trunk; i++ {
		s.stamp(x, surface-i, block.Wood)
	}

	top := vec.Vec2{X: x, Y: surface - trunk}
	for _, off := range canopy {
		p := top.Add(off)
		if s.grid.Get(p.X, p.Y) == block.Air {
			s.stamp(p.X, p.Y, block.Leaves)
		}
	}
}

// gravel разбрасывает пятна гравия. Проверяется только якорь: соседи
// перезаписываются независимо от материала, включая руду и воздух пещер.
func (s *stamper) gravel(heights HeightField) {
	margin := s.cfg.GravelEdgeMargin
	span := s.cfg.Width - 2*margin
	if span <= 0 {
		return
	}

	patch := vec.Square(1)
	for i := 0; i < s.cfg.GravelPatches; i++ {
		gx := margin + intn(s.src, span)
		gy := heights[gx] + s.cfg.GravelMinDepth + intn(s.src, s.cfg.GravelDepthSpread)
		if s.grid.Get(gx, gy) != block.Stone {
			continue
		}

		anchor := vec.Vec2{X: gx, Y: gy}
		for _, off := range patch {
			if chance(s.src, s.cfg.GravelChance) {
				p := anchor.Add(off)
				s.stamp(p.X, p.Y, block.Gravel)
			}
		}
	}
}
