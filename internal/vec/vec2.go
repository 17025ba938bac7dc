package vec

// Vec2 представляет 2D координаты тайла: X - колонка, Y - строка (0 - верх мира)
type Vec2 struct {
	X, Y int
}

// Add складывает два вектора
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Manhattan возвращает манхэттенское расстояние до другой точки
func (v Vec2) Manhattan(other Vec2) int {
	return abs(v.X-other.X) + abs(v.Y-other.Y)
}

// In проверяет, лежит ли точка внутри прямоугольника [0,w)×[0,h)
func (v Vec2) In(w, h int) bool {
	return v.X >= 0 && v.X < w && v.Y >= 0 && v.Y < h
}

// Square возвращает все смещения квадрата со стороной 2r+1 вокруг нуля,
// включая сам центр. Порядок: по колонкам, внутри колонки сверху вниз.
func Square(r int) []Vec2 {
	out := make([]Vec2, 0, (2*r+1)*(2*r+1))
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			out = append(out, Vec2{X: dx, Y: dy})
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
