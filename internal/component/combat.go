package component

// Health — запас прочности защитника или врага.
type Health struct {
	Value float64
}

// Alive сообщает, осталась ли у сущности прочность.
func (h Health) Alive() bool { return h.Value > 0 }

// Defender — компонент защитника, стоящего в клетке сетки.
type Defender struct {
	Cost     int
	Engaging bool // в его линии есть враг
	Cooldown int  // тиков до следующего выстрела, пока Engaging
}
