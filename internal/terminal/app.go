// Package terminal is the text-mode host built on tcell.
package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"snakeruins/internal/game"
)

// fireHold is how long a fire key counts as held after its last press.
// Terminals deliver key repeats, not releases.
const fireHold = 150 * time.Millisecond

// App implements engine.Host on a tcell screen.
type App struct {
	screen   tcell.Screen
	events   chan tcell.Event
	session  *game.GameSession
	log      zerolog.Logger
	heldTill [game.MaxPlayers]time.Time
	closed   bool

	lastState game.GameState

	now func() time.Time
}

// New takes ownership of screen; pass nil to open the real terminal.
func New(session *game.GameSession, screen tcell.Screen, log zerolog.Logger) (*App, error) {
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("open terminal: %w", err)
		}
		screen = s
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	screen.DisableMouse()
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	a := &App{
		screen:  screen,
		events:  make(chan tcell.Event, 64),
		session: session,
		log:     log.With().Str("component", "terminal").Logger(),
		now:     time.Now,
	}
	go a.readEvents()
	return a, nil
}

func (a *App) readEvents() {
	defer close(a.events)
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		a.events <- ev
	}
}

// Poll drains pending terminal events into the session.
func (a *App) Poll() bool {
	// Keys queued while playing are not part of a name.
	stale := a.session.State == game.StateEnterName && a.lastState != game.StateEnterName
	a.lastState = a.session.State
drain:
	for {
		select {
		case ev, ok := <-a.events:
			if !ok {
				return false
			}
			if k, isKey := ev.(*tcell.EventKey); stale && isKey && k.Key() == tcell.KeyRune {
				continue
			}
			a.handle(ev)
			if a.closed {
				return false
			}
		default:
			break drain
		}
	}
	if a.session.State == game.StatePlaying {
		now := a.now()
		for i := 0; i < a.session.Players; i++ {
			a.session.HoldFire(i, now.Before(a.heldTill[i]))
		}
	}
	return !a.session.Quit()
}

func (a *App) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		a.log.Debug().Int("cols", w).Int("rows", h).Msg("resize")
		a.screen.Sync()
	case *tcell.EventKey:
		a.key(ev)
	}
}

func (a *App) key(ev *tcell.EventKey) {
	s := a.session
	switch ev.Key() {
	case tcell.KeyCtrlC:
		a.closed = true
		return
	case tcell.KeyEscape:
		if s.Cancel() {
			a.closed = true
		}
		return
	}

	switch s.State {
	case game.StateMenu:
		a.menuKey(ev)
	case game.StatePlaying:
		a.playKey(ev)
	case game.StateEnterName:
		switch ev.Key() {
		case tcell.KeyEnter:
			s.SubmitName()
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			s.Backspace()
		case tcell.KeyRune:
			s.TypeRune(ev.Rune())
		}
	case game.StateRoundOver:
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case ' ':
				s.Start()
			case 'm', 'M':
				s.Abandon()
			}
		}
	}
}

func (a *App) menuKey(ev *tcell.EventKey) {
	s := a.session
	switch ev.Key() {
	case tcell.KeyUp:
		s.MenuMove(-1)
	case tcell.KeyDown:
		s.MenuMove(1)
	case tcell.KeyLeft:
		s.MenuAdjust(-1)
	case tcell.KeyRight:
		s.MenuAdjust(1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			s.Start()
		case 'w', 'W':
			s.MenuMove(-1)
		case 's', 'S':
			s.MenuMove(1)
		case 'a', 'A':
			s.MenuAdjust(-1)
		case 'd', 'D':
			s.MenuAdjust(1)
		}
	}
}

// Player 1 steers with WASD and fires with E. Player 2 uses the arrows and
// Enter. In one-player games both sets drive player 1.
func (a *App) playKey(ev *tcell.EventKey) {
	p2 := 1
	if a.session.Players == 1 {
		p2 = 0
	}
	switch ev.Key() {
	case tcell.KeyUp:
		a.session.Steer(p2, game.Up)
	case tcell.KeyDown:
		a.session.Steer(p2, game.Down)
	case tcell.KeyLeft:
		a.session.Steer(p2, game.Left)
	case tcell.KeyRight:
		a.session.Steer(p2, game.Right)
	case tcell.KeyEnter:
		a.fire(p2)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			a.session.Steer(0, game.Up)
		case 's', 'S':
			a.session.Steer(0, game.Down)
		case 'a', 'A':
			a.session.Steer(0, game.Left)
		case 'd', 'D':
			a.session.Steer(0, game.Right)
		case 'e', 'E':
			a.fire(0)
		}
	}
}

func (a *App) fire(i int) {
	a.session.PressFire(i)
	a.heldTill[i] = a.now().Add(fireHold)
}

func (a *App) Render() {
	a.screen.Clear()
	v := a.session.View()
	draw(a.screen, a.session, &v)
	a.screen.Show()
}

func (a *App) Close() {
	a.screen.Fini()
}
