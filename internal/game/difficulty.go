package game

// Difficulty describes one selectable tier.
type Difficulty struct {
	Name         string
	StartRate    int // ticks per second at score 0
	MaxRate      int
	ScorePerStep int // combined score needed per +1 tick rate
	Ruins        int
	Trees        int

	// Enemies are disabled when MaxEnemies is 0.
	EnemySpawnInterval int
	MaxEnemies         int
}

var Difficulties = [...]Difficulty{
	{Name: "Easy", StartRate: 5, MaxRate: 20, ScorePerStep: 8, Ruins: 4, Trees: 8},
	{Name: "Normal", StartRate: 8, MaxRate: 26, ScorePerStep: 5, Ruins: 6, Trees: 12},
	{Name: "Hard", StartRate: 12, MaxRate: 32, ScorePerStep: 3, Ruins: 9, Trees: 16,
		EnemySpawnInterval: 60, MaxEnemies: 3},
	{Name: "Insane", StartRate: 16, MaxRate: 48, ScorePerStep: 2, Ruins: 13, Trees: 20,
		EnemySpawnInterval: 35, MaxEnemies: 6},
}

const (
	DiffEasy = iota
	DiffNormal
	DiffHard
	DiffInsane
)

// DifficultyFor clamps tier into range.
func DifficultyFor(tier int) Difficulty {
	return Difficulties[clamp(tier, 0, len(Difficulties)-1)]
}

// TickRate returns ticks per second for a combined score.
func (d Difficulty) TickRate(combined int) int {
	if combined < 0 {
		combined = 0
	}
	return min(d.StartRate+combined/d.ScorePerStep, d.MaxRate)
}

func (d Difficulty) HasEnemies() bool { return d.MaxEnemies > 0 }
