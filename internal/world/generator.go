package world

import (
	"runtime"
	"sync"

	"github.com/annel0/blocksandbox/internal/util"
	"github.com/annel0/blocksandbox/internal/world/block"
)

// Terrain - промежуточные поля генерации. Мир их не хранит:
// они возвращаются только для отладки и тестов.
type Terrain struct {
	Heights HeightField
	Caves   CavityField
}

// WorldGenerator генерирует ландшафт мира
type WorldGenerator struct {
	cfg   GenConfig
	src   Source
	noise *util.Noise
}

// NewWorldGenerator создаёт генератор. Все случайные броски берутся из src,
// шум Перлина (если включён) строится от cfg.Seed.
func NewWorldGenerator(cfg GenConfig, src Source) *WorldGenerator {
	var noise *util.Noise
	if cfg.SurfaceNoiseAmplitude > 0 {
		noise = util.NewNoise(cfg.Seed)
	}
	return &WorldGenerator{
		cfg:   cfg,
		src:   src,
		noise: noise,
	}
}

// Generate заполняет сетку: один проход слоёв, затем локальные проходы
// пляжей, деревьев и гравия. Сетка должна иметь размер из конфигурации.
func (wg *WorldGenerator) Generate(g *Grid) Terrain {
	t := Terrain{
		Heights: generateHeightField(wg.cfg, wg.noise),
		Caves:   generateCavityField(wg.cfg),
	}

	wg.compose(g, t)

	st := stamper{cfg: wg.cfg, src: wg.src, grid: g}
	st.beaches(t.Heights)
	st.trees(t.Heights)
	st.gravel(t.Heights)

	return t
}

// compose проходит по колонкам и записывает каждую ячейку ровно один раз
func (wg *WorldGenerator) compose(g *Grid, t Terrain) {
	for x := 0; x < wg.cfg.Width; x++ {
		surface := t.Heights[x]
		for y := 0; y < wg.cfg.Height; y++ {
			g.Set(x, y, wg.blockAt(x, y, surface, t.Caves))
		}
	}
}

// blockAt определяет материал ячейки по высоте колонки и полю пещер
func (wg *WorldGenerator) blockAt(x, y, surface int, caves CavityField) block.BlockID {
	cfg := wg.cfg

	switch {
	case y >= cfg.Height-1:
		// Дно мира всегда бедрок
		return block.Bedrock
	case y < surface:
		return block.Air
	case y == surface:
		return block.Grass
	}

	// У дна пещеры не открываются и руды не разыгрываются
	nearFloor := y >= cfg.Height-cfg.CaveFloorMargin

	if !nearFloor && caves.At(x, y) {
		return block.Air
	}
	if y <= surface+cfg.DirtDepth {
		return block.Dirt
	}
	if nearFloor {
		return block.Stone
	}
	return pickOre(cfg.Ores, y-surface, wg.src.Float64())
}

// pickOre апгрейдит камень до руды. Правила идут от редких глубоких к частым,
// один бросок r на ячейку, побеждает первое подходящее правило.
func pickOre(rules []OreRule, depth int, r float64) block.BlockID {
	for _, rule := range rules {
		if depth > rule.MinDepth && r < rule.Chance {
			return rule.Block
		}
	}
	return block.Stone
}

// parallelRows вызывает fn для каждой строки [0, rows) на всех ядрах
func parallelRows(rows int, fn func(y int)) {
	workers := runtime.GOMAXPROCS(0)
	if workers > rows {
		workers = rows
	}
	if workers <= 1 {
		for y := 0; y < rows; y++ {
			fn(y)
		}
		return
	}

	var wg sync.WaitGroup
	next := make(chan int)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range next {
				fn(y)
			}
		}()
	}
	for y := 0; y < rows; y++ {
		next <- y
	}
	close(next)
	wg.Wait()
}
