package component

// Enemy — враг, идущий по своей линии справа налево.
type Enemy struct {
	Speed    float64 // скорость, выбранная при появлении
	Movement float64 // текущее смещение за тик: Speed или 0 в ближнем бою
	Reward   int     // ресурсы за уничтожение
}
