package world

import (
	"errors"
	"fmt"

	"github.com/annel0/blocksandbox/internal/world/block"
)

// Wave - одна синусоидальная составляющая линии поверхности
type Wave struct {
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
	Phase     float64 `yaml:"phase"`
}

// OreRule - правило апгрейда камня до руды. Правила проверяются по порядку,
// срабатывает первое, у которого выполнены глубина и вероятность.
type OreRule struct {
	Block    block.BlockID `yaml:"block"`
	MinDepth int           `yaml:"min_depth"` // строка должна быть строго глубже поверхности + MinDepth
	Chance   float64       `yaml:"chance"`
}

// GenConfig содержит все константы генерации мира
type GenConfig struct {
	Seed int64 `yaml:"seed"`

	// Размер сетки и уровень моря (строки считаются сверху вниз)
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	SeaLevel int `yaml:"sea_level"`

	// Линия поверхности
	SurfaceOffset         int     `yaml:"surface_offset"` // базовая высота = SeaLevel - SurfaceOffset
	HeightMarginTop       int     `yaml:"height_margin_top"`
	HeightMarginBottom    int     `yaml:"height_margin_bottom"`
	SurfaceWaves          []Wave  `yaml:"surface_waves"`
	SurfaceNoiseAmplitude float64 `yaml:"surface_noise_amplitude"` // 0 - шум Перлина выключен
	SurfaceNoiseScale     float64 `yaml:"surface_noise_scale"`

	// Пещеры и слои
	CaveThreshold   float64   `yaml:"cave_threshold"`
	CaveFloorMargin int       `yaml:"cave_floor_margin"` // у дна мира пещеры и руды не появляются
	DirtDepth       int       `yaml:"dirt_depth"`
	Ores            []OreRule `yaml:"ores"`

	// Пляжи
	BeachBand  int `yaml:"beach_band"`
	BeachDepth int `yaml:"beach_depth"`

	// Деревья
	TreeChance      float64 `yaml:"tree_chance"`
	TreeEdgeMargin  int     `yaml:"tree_edge_margin"`
	TreeMinTrunk    int     `yaml:"tree_min_trunk"`
	TreeTrunkSpread int     `yaml:"tree_trunk_spread"`
	TreeClearance   int     `yaml:"tree_clearance"` // деревья растут, только если поверхность выше SeaLevel - TreeClearance

	// Гравий
	GravelPatches     int     `yaml:"gravel_patches"`
	GravelChance      float64 `yaml:"gravel_chance"`
	GravelEdgeMargin  int     `yaml:"gravel_edge_margin"`
	GravelMinDepth    int     `yaml:"gravel_min_depth"`
	GravelDepthSpread int     `yaml:"gravel_depth_spread"`
}

// DefaultGenConfig возвращает конфигурацию стандартного мира 200x80
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Seed:     1,
		Width:    200,
		Height:   80,
		SeaLevel: 45,

		SurfaceOffset:      6,
		HeightMarginTop:    5,
		HeightMarginBottom: 10,
		SurfaceWaves: []Wave{
			{Amplitude: 5, Frequency: 0.04, Phase: 1.3},
			{Amplitude: 3, Frequency: 0.09, Phase: 2.7},
			{Amplitude: 2, Frequency: 0.22, Phase: 0.9},
			{Amplitude: 1, Frequency: 0.5, Phase: 5.1},
		},
		SurfaceNoiseAmplitude: 0,
		SurfaceNoiseScale:     0.05,

		CaveThreshold:   0.18,
		CaveFloorMargin: 3,
		DirtDepth:       3,
		Ores: []OreRule{
			{Block: block.Diamond, MinDepth: 20, Chance: 0.006},
			{Block: block.Gold, MinDepth: 12, Chance: 0.015},
			{Block: block.Iron, MinDepth: 6, Chance: 0.03},
			{Block: block.Coal, MinDepth: 0, Chance: 0.04},
		},

		BeachBand:  2,
		BeachDepth: 4,

		TreeChance:      0.05,
		TreeEdgeMargin:  3,
		TreeMinTrunk:    4,
		TreeTrunkSpread: 3,
		TreeClearance:   2,

		GravelPatches:     40,
		GravelChance:      0.6,
		GravelEdgeMargin:  3,
		GravelMinDepth:    2,
		GravelDepthSpread: 6,
	}
}

// Validate проверяет, что при данной конфигурации инварианты мира выполнимы
func (c GenConfig) Validate() error {
	var errs []error

	if c.Width <= 0 {
		errs = append(errs, fmt.Errorf("width должна быть положительной, получено %d", c.Width))
	}
	if c.HeightMarginTop < 0 || c.HeightMarginBottom < 1 {
		errs = append(errs, fmt.Errorf("некорректные отступы высоты: top=%d bottom=%d", c.HeightMarginTop, c.HeightMarginBottom))
	}
	if c.Height-c.HeightMarginBottom < c.HeightMarginTop {
		errs = append(errs, fmt.Errorf("height=%d слишком мала для отступов %d/%d", c.Height, c.HeightMarginTop, c.HeightMarginBottom))
	}
	if c.SeaLevel < 0 || c.SeaLevel >= c.Height {
		errs = append(errs, fmt.Errorf("sea_level=%d вне сетки высотой %d", c.SeaLevel, c.Height))
	}
	if c.CaveFloorMargin < 1 {
		errs = append(errs, fmt.Errorf("cave_floor_margin должен быть не меньше 1, получено %d", c.CaveFloorMargin))
	}
	if c.DirtDepth < 0 || c.BeachBand < 0 || c.BeachDepth < 0 {
		errs = append(errs, errors.New("dirt_depth, beach_band и beach_depth не могут быть отрицательными"))
	}
	if c.TreeEdgeMargin < 0 || c.GravelEdgeMargin < 0 || c.GravelMinDepth < 0 {
		errs = append(errs, errors.New("отступы деревьев и гравия не могут быть отрицательными"))
	}
	if c.TreeMinTrunk < 1 || c.TreeTrunkSpread < 1 || c.GravelDepthSpread < 1 {
		errs = append(errs, errors.New("tree_min_trunk, tree_trunk_spread и gravel_depth_spread должны быть положительными"))
	}
	if c.GravelPatches < 0 {
		errs = append(errs, fmt.Errorf("gravel_patches не может быть отрицательным, получено %d", c.GravelPatches))
	}

	for name, p := range map[string]float64{
		"tree_chance":   c.TreeChance,
		"gravel_chance": c.GravelChance,
	} {
		if p < 0 || p > 1 {
			errs = append(errs, fmt.Errorf("%s=%v вне [0,1]", name, p))
		}
	}
	for i, ore := range c.Ores {
		if !block.Valid(ore.Block) || ore.Block == block.Air || ore.Block == block.Bedrock {
			errs = append(errs, fmt.Errorf("ores[%d]: недопустимый блок %s", i, ore.Block))
		}
		if ore.Chance < 0 || ore.Chance > 1 {
			errs = append(errs, fmt.Errorf("ores[%d]: chance=%v вне [0,1]", i, ore.Chance))
		}
		if ore.MinDepth < 0 {
			errs = append(errs, fmt.Errorf("ores[%d]: min_depth не может быть отрицательным", i))
		}
	}

	return errors.Join(errs...)
}
