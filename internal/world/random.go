package world

import "math/rand"

// Source - источник случайных чисел для генерации.
// Float64 должен возвращать значения из [0, 1); значения >= 1 допустимы
// в тестах и трактуются как "никогда не проходит порог".
type Source interface {
	Float64() float64
}

// NewRandSource создаёт детерминированный источник для указанного сида
func NewRandSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// chance возвращает true с вероятностью p
func chance(src Source, p float64) bool {
	return src.Float64() < p
}

// intn возвращает целое из [0, n). Результат зажимается в n-1,
// чтобы источник, возвращающий 1.0, не выводил за диапазон.
func intn(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	v := int(src.Float64() * float64(n))
	if v >= n {
		return n - 1
	}
	if v < 0 {
		return 0
	}
	return v
}
