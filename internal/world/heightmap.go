package world

import (
	"math"

	"github.com/annel0/blocksandbox/internal/util"
)

// HeightField содержит строку поверхности для каждой колонки
type HeightField []int

// generateHeightField строит линию поверхности из суммы синусоид.
// Шум Перлина добавляется, только если SurfaceNoiseAmplitude > 0.
func generateHeightField(cfg GenConfig, noise *util.Noise) HeightField {
	h := make(HeightField, cfg.Width)
	for x := range h {
		h[x] = surfaceAt(cfg, noise, x)
	}
	return h
}

// surfaceAt вычисляет высоту одной колонки
func surfaceAt(cfg GenConfig, noise *util.Noise, x int) int {
	v := float64(cfg.SeaLevel - cfg.SurfaceOffset)
	for _, w := range cfg.SurfaceWaves {
		v += math.Sin(float64(x)*w.Frequency+w.Phase) * w.Amplitude
	}
	if noise != nil && cfg.SurfaceNoiseAmplitude > 0 {
		v += noise.Noise1D(float64(x)*cfg.SurfaceNoiseScale) * cfg.SurfaceNoiseAmplitude
	}

	// Округление половин вверх, как у Math.round
	h := int(math.Floor(v + 0.5))
	return clampInt(h, cfg.HeightMarginTop, cfg.Height-cfg.HeightMarginBottom)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
