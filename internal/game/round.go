package game

import "fmt"

// Player is one participant of a round.
type Player struct {
	Index  int
	Snake  *Snake
	Score  int
	Wallet *Wallet

	VacuumActive bool

	firePressed bool
	fireHeld    bool
	autoCD      int
	vacuumCD    int
}

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeGameOver
	OutcomeDraw
	OutcomeP1Wins
	OutcomeP2Wins
)

// RoundConfig selects the layout and participants of a round.
type RoundConfig struct {
	ID      string
	Grid    Grid
	Tier    int
	Players int
}

// Round owns every entity of one round. It is replaced wholesale when a
// new round starts.
type Round struct {
	ID         string
	Grid       Grid
	Tier       int
	Difficulty Difficulty
	Players    []*Player
	Foods      []Food
	Coins      []Coin
	Bills      []Bill
	Bullets    []Bullet
	Enemies    []Enemy
	Ruins      CellSet
	Trees      []Cell
	Tick       int
	TickRate   int
	Over       bool
	Outcome    Outcome

	spawner     spawner
	enemyCD     int
	rng         *Rand
	pending     []Event
	walletDirty bool
}

// Spawn is a start cell and heading.
type Spawn struct {
	Cell Cell
	Dir  Direction
}

// SpawnPoints returns the spawn of each player.
func SpawnPoints(g Grid, players int) []Spawn {
	if players <= 1 {
		return []Spawn{{g.Centre(), Right}}
	}
	return []Spawn{
		{Cell{3, 3}, Right},
		{Cell{g.W - 4, g.H - 4}, Left},
	}
}

// NewRound generates the level, places the snakes and the first normal
// food. Wallet pointers are shared with the caller.
func NewRound(cfg RoundConfig, wallets *Wallets, rng *Rand) *Round {
	if cfg.Grid.W == 0 {
		cfg.Grid = DefaultGrid
	}
	cfg.Players = clamp(cfg.Players, 1, MaxPlayers)
	d := DifficultyFor(cfg.Tier)
	lvl := GenerateLevel(cfg.Grid, d, rng)
	r := &Round{
		ID:         cfg.ID,
		Grid:       cfg.Grid,
		Tier:       clamp(cfg.Tier, 0, len(Difficulties)-1),
		Difficulty: d,
		Ruins:      lvl.Ruins,
		Trees:      lvl.Trees,
		TickRate:   d.StartRate,
		rng:        rng,
	}
	for i, sp := range SpawnPoints(cfg.Grid, cfg.Players) {
		w := &wallets[i]
		r.Players = append(r.Players, &Player{
			Index:  i,
			Snake:  NewSnake(sp.Cell, sp.Dir, w.Snake, i),
			Wallet: w,
		})
	}
	r.spawnFood(FoodNormal)
	return r
}

func (r *Round) emit(e Event) { r.pending = append(r.pending, e) }

// drainEvents returns and clears the events produced since the last call.
func (r *Round) drainEvents() []Event {
	ev := r.pending
	r.pending = nil
	return ev
}

func (r *Round) kill(p *Player) {
	if !p.Snake.Alive {
		return
	}
	p.Snake.Alive = false
	r.emit(Event{Type: EventSnakeDied, Pos: p.Snake.Head(), Player: p.Index})
}

// CombinedScore sums every player's score.
func (r *Round) CombinedScore() int {
	total := 0
	for _, p := range r.Players {
		total += p.Score
	}
	return total
}

// Step advances the round one tick: movement, collisions, pickups and
// spawners, guns and bullets, enemies, speed, then the end check.
func (r *Round) Step() {
	if r.Over {
		return
	}
	r.Tick++

	for _, p := range r.Players {
		p.Snake.Move()
	}
	r.resolveCollisions()

	r.pickupFood()
	r.spawner.update(r)
	r.pickupMoney()

	r.updateGuns()
	r.advanceBullets()

	if r.Difficulty.HasEnemies() {
		r.updateEnemies()
	}

	r.TickRate = r.Difficulty.TickRate(r.CombinedScore())
	r.checkEnd()
}

func (r *Round) headAt(c Cell) *Player {
	for _, p := range r.Players {
		if p.Snake.Alive && p.Snake.Head() == c {
			return p
		}
	}
	return nil
}

func (r *Round) pickupFood() {
	for i := range r.Foods {
		f := &r.Foods[i]
		p := r.headAt(f.Pos)
		if p == nil {
			f.Age++
			continue
		}
		p.Score += f.Kind.Points()
		p.Snake.Grow(1)
		if f.Kind == FoodInvincible {
			p.Snake.Invincible = InvincibleTime
		}
		f.Age = -1
		r.emit(Event{Type: EventFoodEaten, Pos: f.Pos, Player: p.Index, Data: int(f.Kind)})
	}
	r.Foods = compact(r.Foods, func(f *Food) bool { return f.Age >= 0 && !f.Expired() })
}

func (r *Round) pickupMoney() {
	for i := range r.Coins {
		c := &r.Coins[i]
		if p := r.headAt(c.Pos); p != nil {
			p.Wallet.Coins++
			r.walletDirty = true
			c.Age = -1
			r.emit(Event{Type: EventCoinPicked, Pos: c.Pos, Player: p.Index, Data: 1})
			continue
		}
		c.Age++
	}
	r.Coins = compact(r.Coins, func(c *Coin) bool { return c.Age >= 0 && !c.Expired() })

	for i := range r.Bills {
		b := &r.Bills[i]
		if p := r.headAt(b.Pos); p != nil {
			p.Wallet.Coins += BillValue
			r.walletDirty = true
			b.Age = -1
			r.emit(Event{Type: EventCoinPicked, Pos: b.Pos, Player: p.Index, Data: BillValue})
			continue
		}
		b.Age++
	}
	r.Bills = compact(r.Bills, func(b *Bill) bool { return b.Age >= 0 && !b.Expired() })
}

// occupied returns every cell a new item may not land on.
func (r *Round) occupied() CellSet {
	occ := make(CellSet, len(r.Ruins)+64)
	for _, p := range r.Players {
		for _, c := range p.Snake.Body {
			occ.Add(c)
		}
	}
	for c := range r.Ruins {
		occ.Add(c)
	}
	for i := range r.Foods {
		occ.Add(r.Foods[i].Pos)
	}
	for i := range r.Coins {
		occ.Add(r.Coins[i].Pos)
	}
	for i := range r.Bills {
		occ.Add(r.Bills[i].Pos)
	}
	return occ
}

// pickFree chooses uniformly among cells not in occ, scanning columns then
// rows so a seeded stream always picks the same cell.
func (r *Round) pickFree(occ CellSet) (Cell, bool) {
	free := make([]Cell, 0, max(r.Grid.W*r.Grid.H-len(occ), 0))
	for x := 0; x < r.Grid.W; x++ {
		for y := 0; y < r.Grid.H; y++ {
			if c := (Cell{x, y}); !occ.Has(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return Cell{}, false
	}
	return free[r.rng.Intn(len(free))], true
}

func (r *Round) checkEnd() {
	p1 := r.Players[0].Snake.Alive
	if len(r.Players) == 1 {
		if !p1 {
			r.finish(OutcomeGameOver)
		}
		return
	}
	p2 := r.Players[1].Snake.Alive
	switch {
	case !p1 && !p2:
		r.finish(OutcomeDraw)
	case !p1:
		r.finish(OutcomeP2Wins)
	case !p2:
		r.finish(OutcomeP1Wins)
	}
}

func (r *Round) finish(o Outcome) {
	r.Over = true
	r.Outcome = o
	r.emit(Event{Type: EventRoundOver, Player: -1, Data: int(o)})
}

// Message is the round-over banner.
func (r *Round) Message() string {
	switch r.Outcome {
	case OutcomeGameOver:
		return fmt.Sprintf("Game Over! Score: %d", r.Players[0].Score)
	case OutcomeDraw:
		return "Both died! Draw!"
	case OutcomeP1Wins:
		return "Player 1 wins the round!"
	case OutcomeP2Wins:
		return "Player 2 wins the round!"
	}
	return ""
}
