package component

// Phase — фаза матча.
type Phase int

const (
	Running Phase = iota
	GameOver
	LevelCompleted
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case GameOver:
		return "game_over"
	case LevelCompleted:
		return "level_completed"
	}
	return "unknown"
}

// Terminal сообщает, что матч окончен.
func (p Phase) Terminal() bool { return p != Running }

// Match — глобальное состояние матча.
type Match struct {
	Resources     int
	Score         int
	Frame         int
	EnemyInterval int
	Phase         Phase
	// WinLatched взводится, когда Score достиг порога; новых врагов больше нет.
	WinLatched bool
	// Breached — враг дошёл до левого края на этом тике.
	Breached bool
}
