// internal/event/types.go
package event

const (
	DefenderPlaced    EventType = "DefenderPlaced"    // Защитник поставлен
	PlacementRejected EventType = "PlacementRejected" // Клик не привёл к постановке
	DefenderDestroyed EventType = "DefenderDestroyed"
	ProjectileFired   EventType = "ProjectileFired"
	EnemySpawned      EventType = "EnemySpawned"
	EnemyKilled       EventType = "EnemyKilled" // Враг уничтожен снарядом
	ResourceSpawned   EventType = "ResourceSpawned"
	ResourceCollected EventType = "ResourceCollected"
	WinLatched        EventType = "WinLatched" // Набран счёт победы, ждём зачистки
	GameOver          EventType = "GameOver"
	LevelCompleted    EventType = "LevelCompleted"
)

// AllTypes перечисляет все типы событий в порядке объявления.
var AllTypes = []EventType{
	DefenderPlaced,
	PlacementRejected,
	DefenderDestroyed,
	ProjectileFired,
	EnemySpawned,
	EnemyKilled,
	ResourceSpawned,
	ResourceCollected,
	WinLatched,
	GameOver,
	LevelCompleted,
}

// RejectReason объясняет, почему постановка не удалась.
type RejectReason string

const (
	RejectOffGrid           RejectReason = "off_grid"
	RejectOccupied          RejectReason = "occupied"
	RejectInsufficientFunds RejectReason = "insufficient_funds"
	RejectNotRunning        RejectReason = "not_running"
)

// Placement — данные DefenderPlaced и PlacementRejected.
type Placement struct {
	X, Y      float64
	Cost      int
	Resources int // остаток после операции
	Reason    RejectReason
}

// Kill — данные EnemyKilled.
type Kill struct {
	X, Y   float64
	Reward int
	Score  int
}

// Spawn — данные EnemySpawned, ResourceSpawned, ProjectileFired.
type Spawn struct {
	X, Y   float64
	Lane   int
	Amount int     // для ресурса
	Speed  float64 // для врага
}

// Collected — данные ResourceCollected.
type Collected struct {
	Amount    int
	Resources int
}

// Outcome — данные WinLatched, GameOver и LevelCompleted.
type Outcome struct {
	Score     int
	Resources int
}
