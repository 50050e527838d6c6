package game

import "fmt"

// MenuRow is a line of the main menu. Left and right act on the selected
// row: on the shop rows left buys for player 1 and right for player 2 (or
// player 1 again in a one-player game).
type MenuRow int

const (
	RowPlayers MenuRow = iota
	RowDifficulty
	RowSnake
	RowAmmo
	RowPower
	RowGunBasic
	RowGunAuto
	RowGunQuad
	RowGunVacuum
	menuRowCount
)

// MenuRows is the number of selectable menu rows.
const MenuRows = int(menuRowCount)

func (r MenuRow) gun() GunKind {
	switch r {
	case RowGunBasic:
		return GunBasic
	case RowGunAuto:
		return GunAuto
	case RowGunQuad:
		return GunQuad
	case RowGunVacuum:
		return GunVacuum
	}
	return GunNone
}

// MenuMove shifts the cursor by delta rows, stopping at either end.
func (s *GameSession) MenuMove(delta int) {
	if s.State != StateMenu {
		return
	}
	row := MenuRow(clamp(int(s.MenuRow)+delta, 0, MenuRows-1))
	if row != s.MenuRow {
		s.MenuRow = row
		s.menuSelect()
	}
}

// MenuAdjust applies left (dir < 0) or right (dir > 0) to the selected row.
func (s *GameSession) MenuAdjust(dir int) bool {
	if s.State != StateMenu || dir == 0 {
		return false
	}
	who := 0
	if dir > 0 && s.Players == 2 {
		who = 1
	}
	step := sign(dir)
	switch s.MenuRow {
	case RowPlayers:
		return s.SetPlayers(s.Players + step)
	case RowDifficulty:
		return s.SetTier(s.Tier + step)
	case RowSnake:
		return s.CycleSnake(who, step)
	case RowAmmo:
		return s.BuyAmmo(who)
	case RowPower:
		return s.BuyPower(who)
	}
	return s.BuyGun(who, s.MenuRow.gun())
}

// MenuLines renders the menu rows as plain text for hosts without layout.
func (s *GameSession) MenuLines() []string {
	w1, w2 := &s.Wallets[0], &s.Wallets[1]
	lines := make([]string, 0, MenuRows)
	for r := MenuRow(0); r < menuRowCount; r++ {
		var line string
		switch r {
		case RowPlayers:
			line = fmt.Sprintf("Players: %d", s.Players)
		case RowDifficulty:
			line = "Difficulty: " + DifficultyFor(s.Tier).Name
		case RowSnake:
			line = "Snake: P1 " + w1.Snake.String()
			if s.Players == 2 {
				line += "  P2 " + w2.Snake.String()
			}
		case RowAmmo:
			line = fmt.Sprintf("Buy %d ammo (%d coins)", AmmoAmount, AmmoPrice)
		case RowPower:
			line = fmt.Sprintf("Buy %d power (%d coins)", PowerAmount, PowerPrice)
		default:
			g := r.gun()
			line = fmt.Sprintf("Buy %s (%d coins)", g, g.Price())
		}
		lines = append(lines, line)
	}
	return lines
}

// WalletLine summarises player i's wallet for menu and HUD display.
func (s *GameSession) WalletLine(i int) string {
	w := &s.Wallets[i]
	return fmt.Sprintf("P%d  coins %d  ammo %d  power %d  gun %s", i+1, w.Coins, w.Ammo, w.Power, w.Gun)
}
