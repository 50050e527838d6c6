package game

import "testing"

// newTestRound builds a round on the default grid with no ruins, trees or
// food so tests can place everything themselves.
func newTestRound(t *testing.T, players int) (*Round, *Wallets) {
	t.Helper()
	w := new(Wallets)
	r := NewRound(RoundConfig{ID: "test", Tier: DiffNormal, Players: players}, w, NewRand(7))
	r.Ruins = make(CellSet)
	r.Trees = nil
	r.Foods = nil
	r.drainEvents()
	return r, w
}

func countEvents(events []Event, t EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// memStore is an in-memory Store that counts saves.
type memStore struct {
	wallets     Wallets
	highscores  Highscores
	walletSaves int
	scoreSaves  int
}

func (m *memStore) LoadWallets() Wallets { return m.wallets }

func (m *memStore) SaveWallets(w Wallets) error {
	m.wallets = w
	m.walletSaves++
	return nil
}

func (m *memStore) LoadHighscores() Highscores { return m.highscores }

func (m *memStore) SaveHighscores(h Highscores) error {
	m.highscores = h
	m.scoreSaves++
	return nil
}
