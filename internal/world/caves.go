package world

import "math"

// CavityField - булево поле пещер, индексируется как сетка: y*width + x
type CavityField struct {
	width int
	cells []bool
}

// At возвращает true, если ячейка должна стать пещерой
func (c CavityField) At(x, y int) bool {
	if x < 0 || x >= c.width || y < 0 {
		return false
	}
	i := y*c.width + x
	if i >= len(c.cells) {
		return false
	}
	return c.cells[i]
}

// generateCavityField считает поле пещер для всей сетки.
// Каждая ячейка независима, поэтому строки считаются параллельно.
func generateCavityField(cfg GenConfig) CavityField {
	field := CavityField{
		width: cfg.Width,
		cells: make([]bool, cfg.Width*cfg.Height),
	}

	parallelRows(cfg.Height, func(y int) {
		for x := 0; x < cfg.Width; x++ {
			field.cells[y*cfg.Width+x] = isCavity(x, y, cfg.CaveThreshold)
		}
	})

	return field
}

// isCavity - произведение двух периодических полей больше порога
func isCavity(x, y int, threshold float64) bool {
	fx, fy := float64(x), float64(y)
	v1 := math.Sin(fx*0.3+fy*0.2) * math.Cos(fx*0.1-fy*0.35)
	v2 := math.Sin(fx*0.15-fy*0.1+3) * math.Cos(fx*0.25+fy*0.18+1)
	return v1*v2 > threshold
}
