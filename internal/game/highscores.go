package game

import (
	"fmt"
	"strings"
	"unicode"
)

type ScoreEntry struct {
	Name  string `json:"name" msgpack:"name"`
	Score int    `json:"score" msgpack:"score"`
}

// Highscores maps a "{players}p_{tier}" key to a list sorted by score,
// highest first.
type Highscores map[string][]ScoreEntry

func HighscoreKey(players, tier int) string {
	return fmt.Sprintf("%dp_%d", players, tier)
}

func (h Highscores) List(players, tier int) []ScoreEntry {
	return h[HighscoreKey(players, tier)]
}

// Qualifies reports whether score would enter the table.
func (h Highscores) Qualifies(players, tier, score int) bool {
	if score <= 0 {
		return false
	}
	list := h.List(players, tier)
	return len(list) < MaxHighscores || score > list[len(list)-1].Score
}

// Insert adds an entry after any equal scores and truncates the list. It
// returns the new entry's rank (0 = best), or -1 if it did not survive.
func (h Highscores) Insert(players, tier int, name string, score int) int {
	key := HighscoreKey(players, tier)
	list := h[key]
	pos := len(list)
	for i, e := range list {
		if e.Score < score {
			pos = i
			break
		}
	}
	if pos >= MaxHighscores {
		return -1
	}
	list = append(list, ScoreEntry{})
	copy(list[pos+1:], list[pos:])
	list[pos] = ScoreEntry{Name: CleanName(name), Score: score}
	if len(list) > MaxHighscores {
		list = list[:MaxHighscores]
	}
	h[key] = list
	return pos
}

// CleanName trims, drops control runes, bounds the length and substitutes
// DefaultName for an empty result.
func CleanName(name string) string {
	var b strings.Builder
	n := 0
	for _, r := range strings.TrimSpace(name) {
		if !unicode.IsPrint(r) {
			continue
		}
		if n == MaxNameLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	out := strings.TrimSpace(b.String())
	if out == "" {
		return DefaultName
	}
	return out
}
