package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"snakeruins/internal/game"
)

const cosmeticSeed = 0x5EED_C0FFEE

// Grid rows start below a two-line status bar and a border.
const gridTop = 3

func color(c game.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func style(fg, bg game.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(color(fg)).Background(color(bg))
}

var (
	textStyle  = tcell.StyleDefault
	hintStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	titleStyle = tcell.StyleDefault.Foreground(tcell.ColorLightGreen).Bold(true)
	warnStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	markStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

func drawText(s tcell.Screen, x, y int, st tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, st)
		x++
	}
}

func drawCentred(s tcell.Screen, y int, st tcell.Style, text string) {
	w, _ := s.Size()
	drawText(s, (w-len([]rune(text)))/2, y, st, text)
}

// canvas maps grid cells to screen columns, two columns per cell when the
// terminal is wide enough.
type canvas struct {
	s      tcell.Screen
	x0, y0 int
	cw     int
	bg     func(x, y int) game.RGB
}

func newCanvas(s tcell.Screen, g game.Grid) canvas {
	w, _ := s.Size()
	cw := 1
	if w >= 2*g.W+2 {
		cw = 2
	}
	x0 := max((w-cw*g.W)/2, 1)
	return canvas{
		s:  s,
		x0: x0,
		y0: gridTop,
		cw: cw,
		bg: grassAt,
	}
}

func grassAt(x, y int) game.RGB {
	hv := game.Hash2D(cosmeticSeed, x, y)
	c := game.Palette.Grass
	if hv&7 == 0 {
		c = game.Palette.GrassAlt
	}
	return c
}

// put draws r in cell c; wide canvases pad with a space or repeat fill runes.
func (cv canvas) put(c game.Cell, r rune, fg game.RGB, bg *game.RGB) {
	b := cv.bg(c.X, c.Y)
	if bg != nil {
		b = *bg
	}
	st := style(fg, b)
	x := cv.x0 + c.X*cv.cw
	y := cv.y0 + c.Y
	cv.s.SetContent(x, y, r, nil, st)
	if cv.cw == 2 {
		second := ' '
		if r == '█' || r == '▓' || r == '░' {
			second = r
		}
		cv.s.SetContent(x+1, y, second, nil, st)
	}
}

func (cv canvas) border(g game.Grid) {
	st := hintStyle
	x1, y1 := cv.x0-1, cv.y0-1
	x2, y2 := cv.x0+g.W*cv.cw, cv.y0+g.H
	for x := x1 + 1; x < x2; x++ {
		cv.s.SetContent(x, y1, tcell.RuneHLine, nil, st)
		cv.s.SetContent(x, y2, tcell.RuneHLine, nil, st)
	}
	for y := y1 + 1; y < y2; y++ {
		cv.s.SetContent(x1, y, tcell.RuneVLine, nil, st)
		cv.s.SetContent(x2, y, tcell.RuneVLine, nil, st)
	}
	cv.s.SetContent(x1, y1, tcell.RuneULCorner, nil, st)
	cv.s.SetContent(x2, y1, tcell.RuneURCorner, nil, st)
	cv.s.SetContent(x1, y2, tcell.RuneLLCorner, nil, st)
	cv.s.SetContent(x2, y2, tcell.RuneLRCorner, nil, st)
}

func draw(s tcell.Screen, sess *game.GameSession, v *game.View) {
	drawStatus(s, v)
	if sess.State == game.StateMenu {
		drawMenu(s, sess, v)
		return
	}

	g := sess.Grid
	cv := newCanvas(s, g)
	cv.border(g)
	for x := 0; x < g.W; x++ {
		for y := 0; y < g.H; y++ {
			cv.put(game.Cell{X: x, Y: y}, ' ', game.Palette.Grass, nil)
		}
	}
	drawWorld(cv, v)

	_, h := s.Size()
	below := gridTop + g.H + 1
	switch sess.State {
	case game.StateEnterName:
		drawCentred(s, below, warnStyle, v.Message)
		drawCentred(s, min(below+1, h-1), textStyle,
			fmt.Sprintf("Player %d, new highscore! Name: %s_  (Enter to confirm)", v.NamePlayer+1, v.NameInput))
	case game.StateRoundOver:
		drawCentred(s, below, warnStyle, v.Message)
		drawCentred(s, min(below+1, h-1), hintStyle, "SPACE restart  M menu  ESC menu")
	}
}

func drawWorld(cv canvas, v *game.View) {
	for _, c := range v.Ruins {
		bg := game.Palette.RuinEdge
		cv.put(c, '▓', game.Palette.Ruin, &bg)
	}
	for _, c := range v.Trees {
		cv.put(c, '♣', game.Palette.Tree, nil)
	}
	for _, f := range v.Foods {
		r := '●'
		switch f.Type {
		case game.FoodMega:
			r = '◆'
		case game.FoodInvincible:
			r = '✦'
		case game.FoodBonus:
			r = '★'
		}
		cv.put(f.Pos, r, game.FoodColor(f.Type), nil)
	}
	for _, c := range v.Coins {
		cv.put(c, '$', game.Palette.Coin, nil)
	}
	for _, c := range v.Bills {
		bg := game.Palette.Bill
		cv.put(c, '$', game.RGB{R: 20, G: 60, B: 20}, &bg)
	}
	for _, e := range v.Enemies {
		cv.put(e.Pos, 'd', game.Palette.Dog, nil)
	}
	for _, p := range v.Players {
		drawSnake(cv, &p, v.Tick)
	}
	for _, b := range v.Bullets {
		cv.put(b.Pos, '•', game.Palette.Bullet, nil)
	}
}

func drawSnake(cv canvas, p *game.PlayerView, tick int) {
	if len(p.Body) == 0 {
		return
	}
	main, dark := p.Main, p.Dark
	if p.Invincible > 0 && tick%4 < 2 {
		main, dark = game.Palette.InvincibleFlash, game.Palette.InvincibleFlash
	}
	if !p.Alive {
		main, dark = main.Mul(110), dark.Mul(110)
	}
	for i := len(p.Body) - 1; i >= 1; i-- {
		c := p.Body[i]
		col := main
		if i%2 == 1 {
			col = dark
		}
		cv.put(c, '█', col, nil)
	}
	head := '@'
	if p.Kind.SquareHead() {
		head = '■'
	}
	bg := main
	cv.put(p.Body[0], head, game.RGB{}, &bg)
}

func drawStatus(s tcell.Screen, v *game.View) {
	x := 1
	for _, p := range v.Players {
		line := fmt.Sprintf("P%d %d  $%d  ammo %d  %s", p.Index+1, p.Score, p.Coins, p.Ammo, p.Gun)
		if p.Gun == game.GunVacuum.String() {
			line += fmt.Sprintf(" (power %d)", p.Power)
		}
		st := tcell.StyleDefault.Foreground(color(p.Main))
		if !p.Alive && v.State == game.StatePlaying.String() {
			st = hintStyle
		}
		drawText(s, x, 0, st, line)
		x += len([]rune(line)) + 4
	}
	right := fmt.Sprintf("%s  %d tps", v.Difficulty, v.TickRate)
	w, _ := s.Size()
	drawText(s, w-len(right)-1, 0, textStyle, right)
}

func drawMenu(s tcell.Screen, sess *game.GameSession, v *game.View) {
	y := 2
	drawCentred(s, y, titleStyle, "S N A K E   R U I N S")
	y += 2
	for i, line := range sess.MenuLines() {
		st := hintStyle
		if game.MenuRow(i) == sess.MenuRow {
			st = textStyle.Bold(true)
			line = "> " + line + " <"
		}
		drawCentred(s, y, st, line)
		y++
	}
	y++
	for i := 0; i < sess.Players; i++ {
		drawCentred(s, y, warnStyle, sess.WalletLine(i))
		y++
	}
	y++
	drawCentred(s, y, hintStyle, "up/down select  left acts for P1, right for P2  SPACE start  ESC quit")
	y += 2
	drawCentred(s, y, textStyle, fmt.Sprintf("Highscores %dP %s", v.NumPlayers, v.Difficulty))
	y++
	if len(v.Highscores) == 0 {
		drawCentred(s, y, hintStyle, "none yet")
		return
	}
	for i, e := range v.Highscores {
		st := hintStyle
		if i == v.LastRank {
			st = markStyle
		}
		drawCentred(s, y, st, fmt.Sprintf("%d. %-12s %6d", i+1, e.Name, e.Score))
		y++
	}
}
