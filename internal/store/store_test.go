package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sanity-io/litter"

	"snakeruins/internal/game"
)

func newStore(t *testing.T) *JSONStore {
	t.Helper()
	s, err := New(t.TempDir(), zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestMissingFilesGiveDefaults(t *testing.T) {
	s := newStore(t)
	if w := s.LoadWallets(); w != (game.Wallets{}) {
		t.Errorf("wallets: %s", litter.Sdump(w))
	}
	if h := s.LoadHighscores(); h == nil || len(h) != 0 {
		t.Errorf("highscores: %s", litter.Sdump(h))
	}
}

func TestWalletRoundTrip(t *testing.T) {
	s := newStore(t)
	want := game.Wallets{
		{Coins: 12, Ammo: 5, Power: 7, Gun: game.GunVacuum, Snake: game.SnakeDragon},
		{Coins: 3, Gun: game.GunNone, Snake: game.SnakeGold},
	}
	if err := s.SaveWallets(want); err != nil {
		t.Fatal(err)
	}
	if got := s.LoadWallets(); got != want {
		t.Fatalf("got %s\nwant %s", litter.Sdump(got), litter.Sdump(want))
	}

	raw, err := os.ReadFile(filepath.Join(s.Dir(), WalletFile))
	if err != nil {
		t.Fatal(err)
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatal(err)
	}
	if fields["p1_gun"] != "vacuum" || fields["p2_gun"] != nil || fields["p2_snake_type"] != game.SnakeGold.ID() {
		t.Errorf("file layout: %s", raw)
	}
}

func TestCorruptFileFallsBack(t *testing.T) {
	s := newStore(t)
	for _, name := range []string{WalletFile, HighscoreFile} {
		if err := os.WriteFile(filepath.Join(s.Dir(), name), []byte("{not json"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if w := s.LoadWallets(); w != (game.Wallets{}) {
		t.Errorf("wallets: %s", litter.Sdump(w))
	}
	if h := s.LoadHighscores(); len(h) != 0 {
		t.Errorf("highscores: %s", litter.Sdump(h))
	}
}

func TestUnknownIdentifiers(t *testing.T) {
	s := newStore(t)
	raw := `{"p1_coins": -4, "p1_ammo": 2, "p1_gun": "laser", "p1_snake_type": "unicorn",
		"p2_coins": 8, "p2_gun": "quad", "p2_snake_type": "ninja"}`
	if err := os.WriteFile(filepath.Join(s.Dir(), WalletFile), []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	w := s.LoadWallets()
	want := game.Wallets{
		{Coins: 0, Ammo: 2, Gun: game.GunNone, Snake: game.SnakeNormal},
		{Coins: 8, Gun: game.GunQuad, Snake: game.SnakeNinja},
	}
	if w != want {
		t.Errorf("got %s", litter.Sdump(w))
	}
}

func TestHighscoresRoundTripAndRepair(t *testing.T) {
	s := newStore(t)
	h := game.Highscores{}
	h.Insert(2, 3, "ann", 40)
	h.Insert(2, 3, "bob", 90)
	if err := s.SaveHighscores(h); err != nil {
		t.Fatal(err)
	}
	got := s.LoadHighscores()
	if litter.Sdump(got) != litter.Sdump(h) {
		t.Fatalf("round trip: %s", litter.Sdump(got))
	}

	// Hand-edited files are re-sorted and truncated.
	raw := `{"1p_0": [{"name":"a","score":1},{"name":"b","score":9},{"name":"c","score":5},
		{"name":"d","score":2},{"name":"e","score":3},{"name":"f","score":8}]}`
	if err := os.WriteFile(filepath.Join(s.Dir(), HighscoreFile), []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	list := s.LoadHighscores().List(1, 0)
	want := []game.ScoreEntry{{Name: "b", Score: 9}, {Name: "f", Score: 8}, {Name: "c", Score: 5}, {Name: "e", Score: 3}, {Name: "d", Score: 2}}
	if litter.Sdump(list) != litter.Sdump(want) {
		t.Errorf("repaired: %s", litter.Sdump(list))
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	s := newStore(t)
	if err := s.SaveWallets(game.Wallets{}); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveHighscores(game.Highscores{}); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(s.Dir())
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("dir contents: %v", names)
	}
}
