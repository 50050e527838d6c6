package game

// Playfield dimensions (in cells).
const (
	GridW = 50
	GridH = 30
)

// Players.
const (
	MaxPlayers     = 2
	StartLength    = 3
	InvincibleTime = 50 // ticks granted by invincible food
)

// Highscores.
const (
	MaxHighscores = 5
	MaxNameLen    = 12
	DefaultName   = "???"
)

// Food lifetimes (ticks). Normal food never expires.
const (
	BonusFoodLifetime      = 80
	InvincibleFoodLifetime = 60
	MegaFoodLifetime       = 120
)

// Special food rolls and cooldowns.
const (
	BonusFoodChance      = 0.03
	InvincibleFoodChance = 0.04 // cumulative with BonusFoodChance
	BonusFoodCooldown    = 30
	InvincibleCooldown   = 60
)

// Mega food is scheduled in seconds of simulated time.
const (
	MegaFoodInterval = 30.0
	MegaFoodMax      = 20
)

// Coins and bills.
const (
	CoinLifetime     = 120
	CoinChance       = 0.15
	CoinCooldownHit  = 8
	CoinCooldownMiss = 3
	BillLifetime     = 180
	BillChance       = 0.003
	BillValue        = 10
)

// Shop.
const (
	AmmoPrice   = 1 // coins per AmmoAmount
	AmmoAmount  = 5
	PowerPrice  = 5
	PowerAmount = 7
)

// Weapons.
const (
	BulletSpeed       = 2 // sub-steps per tick
	AutoShootInterval = 4
	VacuumInterval    = 12
	VacuumRange       = 10
)

// Enemies.
const (
	EnemyMoveInterval = 3
)

// Level generation.
const (
	RuinAttemptsPer = 20
	TreeAttemptsPer = 30
	TreeSpacing     = 2 // trees closer than this (Chebyshev) are rejected
	SafeCorner      = 8
	SafeCentre      = 4
)
