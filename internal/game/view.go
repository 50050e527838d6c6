package game

// View is a read-only snapshot of the session for hosts and spectators.
// It shares no memory with the simulation.
type View struct {
	RoundID    string       `json:"round_id,omitempty" msgpack:"round_id"`
	State      string       `json:"state" msgpack:"state"`
	Tick       int          `json:"tick" msgpack:"tick"`
	TickRate   int          `json:"tick_rate" msgpack:"tick_rate"`
	Width      int          `json:"width" msgpack:"width"`
	Height     int          `json:"height" msgpack:"height"`
	NumPlayers int          `json:"num_players" msgpack:"num_players"`
	Difficulty string       `json:"difficulty" msgpack:"difficulty"`
	Tier       int          `json:"tier" msgpack:"tier"`
	Players    []PlayerView `json:"players" msgpack:"players"`
	Foods      []FoodView   `json:"foods,omitempty" msgpack:"foods"`
	Coins      []Cell       `json:"coins,omitempty" msgpack:"coins"`
	Bills      []Cell       `json:"bills,omitempty" msgpack:"bills"`
	Bullets    []BulletView `json:"bullets,omitempty" msgpack:"bullets"`
	Enemies    []EnemyView  `json:"enemies,omitempty" msgpack:"enemies"`
	Ruins      []Cell       `json:"ruins,omitempty" msgpack:"ruins"`
	Trees      []Cell       `json:"trees,omitempty" msgpack:"trees"`
	MenuRow    int          `json:"menu_row" msgpack:"menu_row"`
	Message    string       `json:"message,omitempty" msgpack:"message"`
	NameInput  string       `json:"name_input,omitempty" msgpack:"name_input"`
	NamePlayer int          `json:"name_player" msgpack:"name_player"`
	LastRank   int          `json:"last_rank" msgpack:"last_rank"`
	Highscores []ScoreEntry `json:"highscores,omitempty" msgpack:"highscores"`
}

type PlayerView struct {
	Index        int       `json:"index" msgpack:"index"`
	Score        int       `json:"score" msgpack:"score"`
	Alive        bool      `json:"alive" msgpack:"alive"`
	Invincible   int       `json:"invincible" msgpack:"invincible"`
	Dir          string    `json:"dir" msgpack:"dir"`
	Body         []Cell    `json:"body,omitempty" msgpack:"body"`
	Coins        int       `json:"coins" msgpack:"coins"`
	Ammo         int       `json:"ammo" msgpack:"ammo"`
	Power        int       `json:"power" msgpack:"power"`
	Gun          string    `json:"gun" msgpack:"gun"`
	SnakeKind    string    `json:"snake_kind" msgpack:"snake_kind"`
	VacuumActive bool      `json:"vacuum_active" msgpack:"vacuum_active"`
	Kind         SnakeKind `json:"-" msgpack:"-"`
	Main         RGB       `json:"-" msgpack:"-"`
	Dark         RGB       `json:"-" msgpack:"-"`
	Belly        RGB       `json:"-" msgpack:"-"`
}

type FoodView struct {
	Kind string   `json:"kind" msgpack:"kind"`
	Pos  Cell     `json:"pos" msgpack:"pos"`
	Age  int      `json:"age" msgpack:"age"`
	Type FoodKind `json:"-" msgpack:"-"`
}

type BulletView struct {
	Pos   Cell `json:"pos" msgpack:"pos"`
	Owner int  `json:"owner" msgpack:"owner"`
}

type EnemyView struct {
	Pos    Cell   `json:"pos" msgpack:"pos"`
	Facing string `json:"facing" msgpack:"facing"`
}

// View builds a snapshot. In the menu the players list shows wallets only.
func (s *GameSession) View() View {
	v := View{
		State:      s.State.String(),
		TickRate:   s.TickRate(),
		Width:      s.Grid.W,
		Height:     s.Grid.H,
		NumPlayers: s.Players,
		Difficulty: DifficultyFor(s.Tier).Name,
		Tier:       s.Tier,
		MenuRow:    int(s.MenuRow),
		Message:    s.Message,
		NameInput:  string(s.NameInput),
		NamePlayer: s.NamePlayer,
		LastRank:   s.LastRank,
		Highscores: append([]ScoreEntry(nil), s.Highscores.List(s.Players, s.Tier)...),
	}
	r := s.Round
	if r == nil {
		for i := 0; i < s.Players; i++ {
			v.Players = append(v.Players, walletView(i, &s.Wallets[i]))
		}
		return v
	}

	v.RoundID = r.ID
	v.Tick = r.Tick
	for _, p := range r.Players {
		pv := walletView(p.Index, p.Wallet)
		pv.Score = p.Score
		pv.Alive = p.Snake.Alive
		pv.Invincible = p.Snake.Invincible
		pv.Dir = p.Snake.Dir.String()
		pv.Body = append([]Cell(nil), p.Snake.Body...)
		pv.VacuumActive = p.VacuumActive
		pv.Main, pv.Dark, pv.Belly = p.Snake.Colors.Main, p.Snake.Colors.Dark, p.Snake.Colors.Belly
		v.Players = append(v.Players, pv)
	}
	for _, f := range r.Foods {
		v.Foods = append(v.Foods, FoodView{Kind: f.Kind.String(), Pos: f.Pos, Age: f.Age, Type: f.Kind})
	}
	for _, c := range r.Coins {
		v.Coins = append(v.Coins, c.Pos)
	}
	for _, b := range r.Bills {
		v.Bills = append(v.Bills, b.Pos)
	}
	for _, b := range r.Bullets {
		v.Bullets = append(v.Bullets, BulletView{Pos: b.Pos, Owner: b.Owner})
	}
	for _, e := range r.Enemies {
		v.Enemies = append(v.Enemies, EnemyView{Pos: e.Pos, Facing: e.Facing.String()})
	}
	v.Ruins = r.Ruins.Sorted()
	v.Trees = append([]Cell(nil), r.Trees...)
	return v
}

func walletView(i int, w *Wallet) PlayerView {
	c := w.Snake.Colors(i)
	return PlayerView{
		Index:     i,
		Coins:     w.Coins,
		Ammo:      w.Ammo,
		Power:     w.Power,
		Gun:       w.Gun.String(),
		SnakeKind: w.Snake.String(),
		Kind:      w.Snake,
		Main:      c.Main,
		Dark:      c.Dark,
		Belly:     c.Belly,
	}
}
