// Package store keeps wallets and highscores in JSON files.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"

	"snakeruins/internal/game"
)

const (
	WalletFile    = "savedata.json"
	HighscoreFile = "highscores.json"
)

// JSONStore implements game.Store on a data directory.
type JSONStore struct {
	dir string
	log zerolog.Logger
}

var _ game.Store = (*JSONStore)(nil)

func New(dir string, log zerolog.Logger) (*JSONStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &JSONStore{
		dir: dir,
		log: log.With().Str("component", "store").Logger(),
	}, nil
}

func (s *JSONStore) Dir() string { return s.dir }

func (s *JSONStore) path(name string) string { return filepath.Join(s.dir, name) }

// walletRecord is the on-disk wallet layout.
type walletRecord struct {
	P1Coins     int     `json:"p1_coins"`
	P2Coins     int     `json:"p2_coins"`
	P1Ammo      int     `json:"p1_ammo"`
	P2Ammo      int     `json:"p2_ammo"`
	P1Power     int     `json:"p1_power"`
	P2Power     int     `json:"p2_power"`
	P1Gun       *string `json:"p1_gun"`
	P2Gun       *string `json:"p2_gun"`
	P1SnakeType string  `json:"p1_snake_type"`
	P2SnakeType string  `json:"p2_snake_type"`
}

func gunID(g game.GunKind) *string {
	if g == game.GunNone {
		return nil
	}
	id := g.ID()
	return &id
}

func parseGun(id *string) game.GunKind {
	if id == nil {
		return game.GunNone
	}
	g, _ := game.ParseGunKind(*id)
	return g
}

func parseSnake(id string) game.SnakeKind {
	k, _ := game.ParseSnakeKind(id)
	return k
}

func toRecord(w game.Wallets) walletRecord {
	return walletRecord{
		P1Coins:     w[0].Coins,
		P2Coins:     w[1].Coins,
		P1Ammo:      w[0].Ammo,
		P2Ammo:      w[1].Ammo,
		P1Power:     w[0].Power,
		P2Power:     w[1].Power,
		P1Gun:       gunID(w[0].Gun),
		P2Gun:       gunID(w[1].Gun),
		P1SnakeType: w[0].Snake.ID(),
		P2SnakeType: w[1].Snake.ID(),
	}
}

func fromRecord(rec walletRecord) game.Wallets {
	w := game.Wallets{
		{Coins: rec.P1Coins, Ammo: rec.P1Ammo, Power: rec.P1Power, Gun: parseGun(rec.P1Gun), Snake: parseSnake(rec.P1SnakeType)},
		{Coins: rec.P2Coins, Ammo: rec.P2Ammo, Power: rec.P2Power, Gun: parseGun(rec.P2Gun), Snake: parseSnake(rec.P2SnakeType)},
	}
	for i := range w {
		w[i].Normalize()
	}
	return w
}

// LoadWallets returns empty wallets when the file is missing or unreadable.
func (s *JSONStore) LoadWallets() game.Wallets {
	var rec walletRecord
	if !s.readJSON(WalletFile, &rec) {
		return game.Wallets{}
	}
	return fromRecord(rec)
}

func (s *JSONStore) SaveWallets(w game.Wallets) error {
	return s.writeJSON(WalletFile, toRecord(w))
}

// LoadHighscores returns an empty table when the file is missing or
// unreadable.
func (s *JSONStore) LoadHighscores() game.Highscores {
	h := make(game.Highscores)
	if !s.readJSON(HighscoreFile, &h) {
		return make(game.Highscores)
	}
	for key, list := range h {
		sort.SliceStable(list, func(i, j int) bool { return list[i].Score > list[j].Score })
		if len(list) > game.MaxHighscores {
			list = list[:game.MaxHighscores]
		}
		h[key] = list
	}
	return h
}

func (s *JSONStore) SaveHighscores(h game.Highscores) error {
	return s.writeJSON(HighscoreFile, h)
}

func (s *JSONStore) readJSON(name string, v any) bool {
	p := s.path(name)
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Debug().Str("path", p).Msg("no saved data, using defaults")
		return false
	}
	if err != nil {
		s.log.Warn().Err(err).Str("path", p).Msg("read failed, using defaults")
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.log.Warn().Err(err).Str("path", p).Msg("corrupt file, using defaults")
		return false
	}
	return true
}

// writeJSON writes to a temp file and renames it over the target.
func (s *JSONStore) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), s.path(name)); err != nil {
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}
