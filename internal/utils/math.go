// internal/utils/math.go
package utils

// Clamp ограничивает v диапазоном [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// StepDown уменьшает v на step, но не ниже floor.
// Если v уже не выше floor, возвращает v без изменений.
func StepDown(v, step, floor int) int {
	if v <= floor {
		return v
	}
	v -= step
	if v < floor {
		return floor
	}
	return v
}
