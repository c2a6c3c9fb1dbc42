// internal/component/projectile.go
package component

// Projectile представляет летящий снаряд. Двигается только вправо.
type Projectile struct {
	Power float64
	Speed float64
}
