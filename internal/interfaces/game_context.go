// internal/interfaces/game_context.go
package interfaces

// GameContext — то, что системам нужно от оркестратора матча.
type GameContext interface {
	EnemyCount() int
	StopFiring()
}
