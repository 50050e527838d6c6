package game

import (
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type GameState int

const (
	StateMenu      GameState = iota
	StatePlaying             // round in progress
	StateEnterName           // collecting a highscore name
	StateRoundOver           // banner, restart or back to menu
)

func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "MENU"
	case StatePlaying:
		return "PLAYING"
	case StateEnterName:
		return "ENTER_NAME"
	case StateRoundOver:
		return "ROUND_OVER"
	}
	return "UNKNOWN"
}

// IdleTickRate drives the scheduler outside of play.
const IdleTickRate = 30

type pendingScore struct {
	player int
	score  int
}

// SessionConfig seeds a GameSession.
type SessionConfig struct {
	Seed    uint64 // 0 picks a seed from the clock
	Players int
	Tier    int
	Grid    Grid
	Logger  *zerolog.Logger
}

// GameSession owns menu settings, wallets, highscores and the current
// round. All methods run on the simulation goroutine.
type GameSession struct {
	State      GameState
	Players    int
	Tier       int
	Grid       Grid
	Wallets    Wallets
	Highscores Highscores
	Round      *Round
	Events     *EventBus

	MenuRow    MenuRow
	Message    string
	NameInput  []rune
	NamePlayer int
	LastRank   int // rank of the most recent highscore insert, -1 if none
	Seed       uint64

	pending []pendingScore
	store   Store
	rng     *Rand
	log     zerolog.Logger
	quit    bool
}

func NewGameSession(cfg SessionConfig, store Store) *GameSession {
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if cfg.Grid.W == 0 {
		cfg.Grid = DefaultGrid
	}
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	s := &GameSession{
		State:    StateMenu,
		Players:  clamp(cfg.Players, 1, MaxPlayers),
		Tier:     clamp(cfg.Tier, 0, len(Difficulties)-1),
		Grid:     cfg.Grid,
		Events:   NewEventBus(),
		LastRank: -1,
		Seed:     cfg.Seed,
		store:    store,
		rng:      NewRand(cfg.Seed),
		log:      log.With().Str("component", "session").Logger(),
	}
	s.Wallets = store.LoadWallets()
	for i := range s.Wallets {
		s.Wallets[i].Normalize()
	}
	s.Highscores = store.LoadHighscores()
	if s.Highscores == nil {
		s.Highscores = make(Highscores)
	}
	return s
}

// Quit reports whether a cancel was issued from the menu.
func (s *GameSession) Quit() bool { return s.quit }

// TickRate is the current simulation rate in ticks per second.
func (s *GameSession) TickRate() int {
	if s.State == StatePlaying && s.Round != nil {
		return s.Round.TickRate
	}
	return IdleTickRate
}

// Start begins a fresh round from the menu or the round-over screen.
func (s *GameSession) Start() bool {
	if s.State != StateMenu && s.State != StateRoundOver {
		return false
	}
	id := uuid.NewString()
	s.Round = NewRound(RoundConfig{ID: id, Grid: s.Grid, Tier: s.Tier, Players: s.Players}, &s.Wallets, s.rng)
	s.State = StatePlaying
	s.Message = ""
	s.LastRank = -1
	s.pending = nil
	s.log.Info().
		Str("round", id).
		Int("players", s.Players).
		Str("difficulty", s.Round.Difficulty.Name).
		Int("ruins", len(s.Round.Ruins)).
		Int("trees", len(s.Round.Trees)).
		Msg("round started")
	s.flush()
	return true
}

// Tick advances the simulation by one step when a round is in progress.
func (s *GameSession) Tick() {
	if s.State != StatePlaying || s.Round == nil {
		return
	}
	s.Round.Step()
	s.flush()
	if s.Round.Over {
		s.endRound()
	}
}

func (s *GameSession) flush() {
	if s.Round == nil {
		return
	}
	for _, e := range s.Round.drainEvents() {
		s.Events.Emit(e)
	}
	if s.Round.walletDirty {
		s.Round.walletDirty = false
		s.saveWallets()
	}
}

func (s *GameSession) saveWallets() {
	if err := s.store.SaveWallets(s.Wallets); err != nil {
		s.log.Warn().Err(err).Msg("save wallets")
	}
}

func (s *GameSession) endRound() {
	r := s.Round
	s.saveWallets()
	s.Message = r.Message()
	ev := s.log.Info().Str("round", r.ID).Int("ticks", r.Tick)
	for _, p := range r.Players {
		ev = ev.Int(playerKey(p.Index), p.Score)
	}
	ev.Msg(s.Message)

	s.pending = s.pending[:0]
	for _, p := range r.Players {
		if s.Highscores.Qualifies(s.Players, s.Tier, p.Score) {
			s.pending = append(s.pending, pendingScore{player: p.Index, score: p.Score})
		}
	}
	s.nextName()
}

func playerKey(i int) string {
	if i == 0 {
		return "p1"
	}
	return "p2"
}

func (s *GameSession) nextName() {
	if len(s.pending) == 0 {
		s.State = StateRoundOver
		return
	}
	s.NamePlayer = s.pending[0].player
	s.NameInput = s.NameInput[:0]
	s.State = StateEnterName
}

// TypeRune appends a printable rune to the name being entered.
func (s *GameSession) TypeRune(r rune) {
	if s.State != StateEnterName || !unicode.IsPrint(r) || len(s.NameInput) >= MaxNameLen {
		return
	}
	s.NameInput = append(s.NameInput, r)
}

func (s *GameSession) Backspace() {
	if s.State != StateEnterName || len(s.NameInput) == 0 {
		return
	}
	s.NameInput = s.NameInput[:len(s.NameInput)-1]
}

// SubmitName records the pending score under the typed name and moves to
// the next pending score, if any.
func (s *GameSession) SubmitName() {
	if s.State != StateEnterName || len(s.pending) == 0 {
		return
	}
	ps := s.pending[0]
	s.pending = s.pending[1:]
	name := CleanName(string(s.NameInput))
	s.LastRank = s.Highscores.Insert(s.Players, s.Tier, name, ps.score)
	if err := s.store.SaveHighscores(s.Highscores); err != nil {
		s.log.Warn().Err(err).Msg("save highscores")
	}
	s.log.Info().Str("name", name).Int("score", ps.score).Int("rank", s.LastRank).Msg("highscore")
	s.nextName()
}

// Cancel backs out to the menu, discarding the round. In the menu it
// requests quit and returns true.
func (s *GameSession) Cancel() bool {
	switch s.State {
	case StatePlaying, StateEnterName, StateRoundOver:
		s.toMenu()
		return false
	}
	s.quit = true
	return true
}

// Abandon returns from the round-over screen to the menu.
func (s *GameSession) Abandon() bool {
	if s.State != StateRoundOver {
		return false
	}
	s.toMenu()
	return true
}

func (s *GameSession) toMenu() {
	s.State = StateMenu
	s.Round = nil
	s.pending = nil
	s.NameInput = s.NameInput[:0]
}

func (s *GameSession) player(i int) *Player {
	if s.State != StatePlaying || s.Round == nil || i < 0 || i >= len(s.Round.Players) {
		return nil
	}
	return s.Round.Players[i]
}

// Steer buffers a direction for player i.
func (s *GameSession) Steer(i int, d Direction) {
	if p := s.player(i); p != nil {
		p.Snake.SetDirection(d)
	}
}

// PressFire queues a single shot for guns that fire on press.
func (s *GameSession) PressFire(i int) {
	if p := s.player(i); p != nil {
		p.firePressed = true
	}
}

// HoldFire sets the held state used by the auto-cannon and the vacuum.
func (s *GameSession) HoldFire(i int, held bool) {
	if p := s.player(i); p != nil {
		p.fireHeld = held
	}
}

// SetPlayers picks 1 or 2 players in the menu.
func (s *GameSession) SetPlayers(n int) bool {
	if s.State != StateMenu {
		return false
	}
	s.Players = clamp(n, 1, MaxPlayers)
	s.menuSelect()
	return true
}

// SetTier picks the difficulty in the menu.
func (s *GameSession) SetTier(t int) bool {
	if s.State != StateMenu {
		return false
	}
	s.Tier = clamp(t, 0, len(Difficulties)-1)
	s.menuSelect()
	return true
}

// CycleSnake steps player i's cosmetic kind and persists it.
func (s *GameSession) CycleSnake(i, delta int) bool {
	if s.State != StateMenu || i < 0 || i >= MaxPlayers {
		return false
	}
	s.Wallets[i].Snake = s.Wallets[i].Snake.Cycle(delta)
	s.saveWallets()
	s.menuSelect()
	return true
}

func (s *GameSession) BuyAmmo(i int) bool {
	return s.purchase(i, func(w *Wallet) bool { return w.BuyAmmo() })
}

func (s *GameSession) BuyPower(i int) bool {
	return s.purchase(i, func(w *Wallet) bool { return w.BuyPower() })
}

func (s *GameSession) BuyGun(i int, g GunKind) bool {
	return s.purchase(i, func(w *Wallet) bool { return w.BuyGun(g) })
}

func (s *GameSession) purchase(i int, buy func(*Wallet) bool) bool {
	if s.State != StateMenu || i < 0 || i >= MaxPlayers {
		return false
	}
	w := &s.Wallets[i]
	before := w.Coins
	if !buy(w) {
		return false
	}
	s.saveWallets()
	s.Events.Emit(Event{Type: EventPurchase, Player: i, Data: before - w.Coins})
	return true
}

func (s *GameSession) menuSelect() {
	s.Events.Emit(Event{Type: EventMenuSelect, Player: -1})
}
