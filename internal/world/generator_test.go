package world

import (
	"testing"

	"github.com/annel0/blocksandbox/internal/world/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constSource всегда возвращает одно и то же значение
type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

// seqSource возвращает значения по очереди, затем fallback
type seqSource struct {
	vals     []float64
	fallback float64
	calls    int
}

func (s *seqSource) Float64() float64 {
	s.calls++
	if len(s.vals) == 0 {
		return s.fallback
	}
	v := s.vals[0]
	s.vals = s.vals[1:]
	return v
}

func smallConfig() GenConfig {
	cfg := DefaultGenConfig()
	cfg.Width = 20
	cfg.Height = 30
	cfg.SeaLevel = 15
	return cfg
}

func TestHeightFieldKnownValues(t *testing.T) {
	cfg := smallConfig()
	heights := generateHeightField(cfg, nil)

	want := HeightField{16, 16, 16, 17, 17, 17, 16, 15, 14, 13, 12, 11, 10, 10, 10, 10, 10, 10, 10, 10}
	assert.Equal(t, want, heights)
}

func TestHeightFieldClamp(t *testing.T) {
	tests := []struct {
		name  string
		tweak func(c *GenConfig)
	}{
		{"default", func(c *GenConfig) {}},
		{"high sea", func(c *GenConfig) { c.SeaLevel = 0; c.SurfaceOffset = 0 }},
		{"deep sea", func(c *GenConfig) { c.SeaLevel = c.Height - 1; c.SurfaceOffset = -20 }},
		{"huge waves", func(c *GenConfig) {
			c.SurfaceWaves = []Wave{{Amplitude: 500, Frequency: 0.3, Phase: 0}}
		}},
		{"perlin", func(c *GenConfig) { c.SurfaceNoiseAmplitude = 40; c.SurfaceNoiseScale = 0.3 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGenConfig()
			tt.tweak(&cfg)
			wg := NewWorldGenerator(cfg, constSource(0.5))

			heights := generateHeightField(cfg, wg.noise)
			require.Len(t, heights, cfg.Width)
			for x, h := range heights {
				assert.GreaterOrEqual(t, h, 5, "колонка %d", x)
				assert.LessOrEqual(t, h, cfg.Height-10, "колонка %d", x)
			}
		})
	}
}

func TestPerlinRoughnessChangesSurface(t *testing.T) {
	cfg := DefaultGenConfig()
	plain := generateHeightField(cfg, nil)

	cfg.SurfaceNoiseAmplitude = 4
	cfg.SurfaceNoiseScale = 0.37
	wg := NewWorldGenerator(cfg, constSource(0.5))
	require.NotNil(t, wg.noise, "шум должен создаваться при ненулевой амплитуде")
	rough := generateHeightField(cfg, wg.noise)

	assert.NotEqual(t, plain, rough)
	assert.Equal(t, rough, generateHeightField(cfg, wg.noise), "шум детерминирован")

	cfg.SurfaceNoiseAmplitude = 0
	assert.Nil(t, NewWorldGenerator(cfg, constSource(0.5)).noise)
}

func TestCavityField(t *testing.T) {
	cfg := smallConfig()
	caves := generateCavityField(cfg)

	// Контрольные точки, посчитанные по формуле заранее
	assert.True(t, caves.At(10, 28))
	assert.True(t, caves.At(14, 12))
	assert.False(t, caves.At(19, 20))

	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			assert.Equal(t, isCavity(x, y, cfg.CaveThreshold), caves.At(x, y))
		}
	}

	// За пределами поля пещер нет
	assert.False(t, caves.At(-1, 0))
	assert.False(t, caves.At(0, cfg.Height))
	assert.False(t, caves.At(cfg.Width, 0))
}

func TestOrePriority(t *testing.T) {
	rules := DefaultGenConfig().Ores

	// Глубокая ячейка и бросок 0.005 проходят все пороги - побеждает алмаз
	assert.Equal(t, block.Diamond, pickOre(rules, 25, 0.005))

	tests := []struct {
		depth int
		r     float64
		want  block.BlockID
	}{
		{25, 0.010, block.Gold},
		{25, 0.020, block.Iron},
		{25, 0.035, block.Coal},
		{25, 0.040, block.Stone},
		{20, 0.005, block.Gold}, // для алмаза нужна глубина строго больше 20
		{12, 0.005, block.Iron},
		{6, 0.005, block.Coal},
		{4, 0.039, block.Coal},
		{4, 1.0, block.Stone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, pickOre(rules, tt.depth, tt.r), "глубина %d, бросок %v", tt.depth, tt.r)
	}
}

func TestScenarioNoRandomFeatures(t *testing.T) {
	cfg := smallConfig()
	w, terrain, err := GenerateWorld(cfg, constSource(1.0))
	require.NoError(t, err)

	for _, id := range []block.BlockID{block.Coal, block.Iron, block.Gold, block.Diamond, block.Wood, block.Leaves, block.Gravel} {
		assert.Zero(t, w.grid.Count(id), "%s не должен появляться", id)
	}
	assert.Equal(t, cfg.Width, w.grid.Count(block.Bedrock), "бедрок только в нижней строке")

	for x := 0; x < cfg.Width; x++ {
		h := terrain.Heights[x]
		beach := h >= cfg.SeaLevel-2 && h <= cfg.SeaLevel+2

		for y := 0; y < cfg.Height; y++ {
			var want block.BlockID
			switch {
			case y == cfg.Height-1:
				want = block.Bedrock
			case y < h:
				want = block.Air
			case beach && y <= h+4:
				want = block.Sand
			case y == h:
				want = block.Grass
			case y < cfg.Height-3 && isCavity(x, y, cfg.CaveThreshold):
				want = block.Air
			case y <= h+3:
				want = block.Dirt
			default:
				want = block.Stone
			}
			assert.Equal(t, want, w.Get(x, y), "ячейка (%d,%d), поверхность %d", x, y, h)
		}
	}

	// Колонка без пещер и пляжа: чистые слои
	for y := 0; y < 30; y++ {
		var want block.BlockID
		switch {
		case y < 10:
			want = block.Air
		case y == 10:
			want = block.Grass
		case y <= 13:
			want = block.Dirt
		case y < 29:
			want = block.Stone
		default:
			want = block.Bedrock
		}
		assert.Equal(t, want, w.Get(19, y), "колонка 19, строка %d", y)
	}

	// У дна пещера подавлена
	assert.Equal(t, block.Stone, w.Get(10, 28))
	// В слое земли пещера открывается
	assert.Equal(t, block.Air, w.Get(14, 12))
}

func TestGenerationDeterministic(t *testing.T) {
	cfg := DefaultGenConfig()
	a, err := NewWorld(cfg, NewRandSource(99))
	require.NoError(t, err)
	b, err := NewWorld(cfg, NewRandSource(99))
	require.NoError(t, err)

	assert.Equal(t, a.grid.tiles, b.grid.tiles, "один сид - один мир")
	assert.NotEqual(t, a.ID(), b.ID(), "идентификаторы экземпляров уникальны")
}

func TestGeneratedWorldInvariants(t *testing.T) {
	for _, seed := range []int64{1, 7, 12345} {
		cfg := DefaultGenConfig()
		cfg.Seed = seed
		w, terrain, err := GenerateWorld(cfg, nil)
		require.NoError(t, err)

		for x := 0; x < cfg.Width; x++ {
			assert.Equal(t, block.Bedrock, w.Get(x, cfg.Height-1), "сид %d: дно колонки %d", seed, x)
			for y := 0; y < cfg.Height-1; y++ {
				assert.NotEqual(t, block.Bedrock, w.Get(x, y), "сид %d: бедрок выше дна (%d,%d)", seed, x, y)
			}
			// Около дна пещер нет
			for y := cfg.Height - cfg.CaveFloorMargin; y < cfg.Height-1; y++ {
				if y > terrain.Heights[x] {
					assert.NotEqual(t, block.Air, w.Get(x, y), "сид %d: пещера у дна (%d,%d)", seed, x, y)
				}
			}
		}

		// Стандартный мир с реальным источником содержит руды и деревья
		assert.Positive(t, w.grid.Count(block.Coal), "сид %d", seed)
		assert.Positive(t, w.grid.Count(block.Wood), "сид %d", seed)
		assert.True(t, w.Dirty(), "после генерации мир должен быть помечен")
	}
}

func TestOresRespectDepth(t *testing.T) {
	cfg := DefaultGenConfig()
	w, terrain, err := GenerateWorld(cfg, NewRandSource(3))
	require.NoError(t, err)

	minDepth := map[block.BlockID]int{block.Diamond: 20, block.Gold: 12, block.Iron: 6, block.Coal: 0}
	for x := 0; x < cfg.Width; x++ {
		for y := 0; y < cfg.Height; y++ {
			id := w.Get(x, y)
			d, isOre := minDepth[id]
			if !isOre {
				continue
			}
			assert.Greater(t, y-terrain.Heights[x], d, "%s в (%d,%d) слишком мелко", id, x, y)
			assert.Less(t, y, cfg.Height-cfg.CaveFloorMargin, "%s у дна в (%d,%d)", id, x, y)
		}
	}
}

func TestIntnClamp(t *testing.T) {
	assert.Equal(t, 2, intn(constSource(1.0), 3))
	assert.Equal(t, 0, intn(constSource(0), 3))
	assert.Equal(t, 1, intn(constSource(0.5), 3))
	assert.Equal(t, 0, intn(constSource(0.9), 0))
	assert.Equal(t, 0, intn(constSource(-1), 3))
}

func TestParallelRows(t *testing.T) {
	seen := make([]int, 100)
	parallelRows(100, func(y int) { seen[y]++ })
	for y, n := range seen {
		assert.Equal(t, 1, n, "строка %d", y)
	}
	parallelRows(0, func(y int) { t.Fatalf("не должно вызываться") })
}
