// internal/component/player.go
package component

// Pointer хранит последнее положение указателя игрока.
// Present=false, когда указатель покинул поверхность.
type Pointer struct {
	X, Y    float64
	Present bool
}
