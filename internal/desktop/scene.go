package desktop

import (
	"fmt"

	"snakeruins/internal/game"
)

// cosmeticSeed fixes the grass pattern across rounds. It never feeds the
// gameplay stream.
const cosmeticSeed = 0x5EED_C0FFEE

// hudRows is the height of the status strip above the grid, in cells.
const hudRows = 2

var (
	white  = game.RGB{R: 255, G: 255, B: 255}
	green  = game.RGB{R: 100, G: 255, B: 100}
	yellow = game.RGB{R: 255, G: 255, B: 100}
	grey   = game.RGB{R: 160, G: 160, B: 160}
	red    = game.RGB{R: 255, G: 80, B: 80}
)

func drawGrass(r *Renderer, w, h int) {
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			hv := game.Hash2D(cosmeticSeed, x, y)
			c := game.Palette.Grass
			if hv&7 == 0 {
				c = game.Palette.GrassAlt
			}
			c = c.Add(int(hv>>8&7)-3, int(hv>>16&7)-3, 0)
			r.Cell(float32(x), float32(y), 1, c, 1, shapeSquare)
		}
	}
}

func drawWorld(r *Renderer, v *game.View) {
	drawGrass(r, v.Width, v.Height)

	for _, c := range v.Ruins {
		r.Cell(float32(c.X), float32(c.Y), 1, game.Palette.RuinEdge, 1, shapeSquare)
		r.Cell(float32(c.X), float32(c.Y), 0.8, game.Palette.Ruin, 1, shapeSquare)
	}
	for _, c := range v.Trees {
		r.Cell(float32(c.X), float32(c.Y), 0.45, game.Palette.TreeTrunk, 1, shapeSquare)
		r.Cell(float32(c.X), float32(c.Y)-0.1, 0.95, game.Palette.Tree, 0.9, shapeCircle)
	}

	for _, f := range v.Foods {
		col := game.FoodColor(f.Type)
		x, y := float32(f.Pos.X), float32(f.Pos.Y)
		switch f.Type {
		case game.FoodMega:
			r.Cell(x, y, 1, col, 1, shapeDiamond)
		case game.FoodInvincible:
			r.Cell(x, y, 0.9, col, 1, shapeRing)
			r.Cell(x, y, 0.4, game.Palette.InvincibleFlash, 1, shapeCircle)
		default:
			r.Cell(x, y, 0.8, col, 1, shapeCircle)
		}
	}
	for _, c := range v.Coins {
		r.Cell(float32(c.X), float32(c.Y), 0.65, game.Palette.Coin, 1, shapeCircle)
	}
	for _, c := range v.Bills {
		r.Cell(float32(c.X), float32(c.Y), 0.85, game.Palette.Bill, 1, shapeRounded)
	}

	for _, e := range v.Enemies {
		x, y := float32(e.Pos.X), float32(e.Pos.Y)
		r.Cell(x, y, 0.9, game.Palette.Dog, 1, shapeRounded)
		dx, dy := facingDelta(e.Facing)
		r.Cell(x+dx*0.25, y+dy*0.25, 0.4, game.Palette.DogDark, 1, shapeCircle)
	}

	for _, p := range v.Players {
		drawSnake(r, &p, v.Tick)
	}
	for _, b := range v.Bullets {
		r.Cell(float32(b.Pos.X), float32(b.Pos.Y), 0.4, game.Palette.Bullet, 1, shapeCircle)
	}
}

func facingDelta(s string) (float32, float32) {
	switch s {
	case "up":
		return 0, -1
	case "down":
		return 0, 1
	case "left":
		return -1, 0
	}
	return 1, 0
}

func drawSnake(r *Renderer, p *game.PlayerView, tick int) {
	if len(p.Body) == 0 {
		return
	}
	alpha := float32(1)
	if !p.Alive {
		alpha = 0.45
	}
	flash := p.Invincible > 0 && tick%4 < 2

	for i := len(p.Body) - 1; i >= 1; i-- {
		c := p.Body[i]
		body := p.Main
		if i%2 == 1 {
			body = p.Dark
		}
		if flash {
			body = game.Palette.InvincibleFlash
		}
		r.Cell(float32(c.X), float32(c.Y), 0.92, body, alpha, shapeRounded)
		r.Cell(float32(c.X), float32(c.Y), 0.4, p.Belly, alpha, shapeCircle)
	}

	head := p.Body[0]
	x, y := float32(head.X), float32(head.Y)
	shape := shapeCircle
	if p.Kind.SquareHead() {
		shape = shapeSquare
	}
	col := p.Main
	if flash {
		col = game.Palette.InvincibleFlash
	}
	r.Cell(x, y, 1, col, alpha, shape)
	dx, dy := facingDelta(p.Dir)
	r.Cell(x+dx*0.2-dy*0.18, y+dy*0.2-dx*0.18, 0.2, white, alpha, shapeCircle)
	r.Cell(x+dx*0.2+dy*0.18, y+dy*0.2+dx*0.18, 0.2, white, alpha, shapeCircle)

	if p.VacuumActive {
		span := float32(2*game.VacuumRange + 1)
		r.Cell(x, y, span, p.Belly, 0.25, shapeRing)
	}
}

func hudLine(p game.PlayerView) string {
	s := fmt.Sprintf("P%d %d  $%d  ammo %d", p.Index+1, p.Score, p.Coins, p.Ammo)
	if p.Gun == game.GunVacuum.String() {
		s += fmt.Sprintf("  power %d", p.Power)
	}
	return s + "  " + p.Gun
}

// drawHUD writes the status strip and any state overlay.
func drawHUD(r *Renderer, s *game.GameSession, v *game.View, cellPx int) {
	const scale = 1.2
	pad := cellPx / 2
	x := pad
	for _, p := range v.Players {
		col := p.Main
		if !p.Alive && v.State != game.StateMenu.String() {
			col = grey
		}
		line := hudLine(p)
		r.DrawString(line, x, pad, scale, col)
		x += TextWidth(line, scale) + 3*pad
	}
	right := fmt.Sprintf("%s  %d tps", v.Difficulty, v.TickRate)
	r.DrawString(right, r.fbW-TextWidth(right, scale)-pad, pad, scale, white)

	top := hudRows * cellPx
	switch s.State {
	case game.StateMenu:
		drawMenu(r, s, v, top+cellPx)
	case game.StateEnterName:
		r.DrawCentred(v.Message, top+6*cellPx, 2, yellow)
		prompt := fmt.Sprintf("Player %d, new highscore! Name: %s_", v.NamePlayer+1, v.NameInput)
		r.DrawCentred(prompt, top+9*cellPx, 1.5, white)
		r.DrawCentred("ENTER confirm  ESC menu", top+11*cellPx, 1.2, grey)
	case game.StateRoundOver:
		r.DrawCentred(v.Message, top+6*cellPx, 2, yellow)
		drawScores(r, v, top+9*cellPx, cellPx)
		r.DrawCentred("SPACE restart  M menu", top+18*cellPx, 1.2, grey)
	}
}

func drawMenu(r *Renderer, s *game.GameSession, v *game.View, y int) {
	r.DrawCentred("SNAKE RUINS", y, 3.5, green)
	y += 4 * glyphH
	for i, line := range s.MenuLines() {
		col := grey
		if game.MenuRow(i) == s.MenuRow {
			col = white
			line = "> " + line + " <"
		}
		r.DrawCentred(line, y, 1.4, col)
		y += 2 * glyphH
	}
	y += glyphH
	for i := 0; i < s.Players; i++ {
		r.DrawCentred(s.WalletLine(i), y, 1.2, yellow)
		y += 2 * glyphH
	}
	y += glyphH
	r.DrawCentred("W/S select  left buys for P1, right for P2  SPACE start  ESC quit", y, 1, grey)
	y += 3 * glyphH
	drawScores(r, v, y, 2*glyphH)
}

func drawScores(r *Renderer, v *game.View, y, step int) {
	title := fmt.Sprintf("Highscores %dP %s", v.NumPlayers, v.Difficulty)
	r.DrawCentred(title, y, 1.3, white)
	y += step
	if len(v.Highscores) == 0 {
		r.DrawCentred("none yet", y, 1.2, grey)
		return
	}
	for i, e := range v.Highscores {
		col := grey
		if i == v.LastRank {
			col = red
		}
		r.DrawCentred(fmt.Sprintf("%d. %-12s %6d", i+1, e.Name, e.Score), y, 1.2, col)
		y += step
	}
}
