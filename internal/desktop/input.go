package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"snakeruins/internal/game"
)

type playerKeys struct {
	up, down, left, right, fire glfw.Key
}

var bindings = [game.MaxPlayers]playerKeys{
	{glfw.KeyW, glfw.KeyS, glfw.KeyA, glfw.KeyD, glfw.KeyE},
	{glfw.KeyUp, glfw.KeyDown, glfw.KeyLeft, glfw.KeyRight, glfw.KeyRightShift},
}

var watched = []glfw.Key{
	glfw.KeyW, glfw.KeyS, glfw.KeyA, glfw.KeyD, glfw.KeyE,
	glfw.KeyUp, glfw.KeyDown, glfw.KeyLeft, glfw.KeyRight, glfw.KeyRightShift,
	glfw.KeySpace, glfw.KeyEscape, glfw.KeyEnter, glfw.KeyKPEnter,
	glfw.KeyBackspace, glfw.KeyM,
}

type Input struct {
	prevKeys map[glfw.Key]bool
	pressed  map[glfw.Key]bool
	runes    []rune

	lastState game.GameState
}

func NewInput(window *glfw.Window) *Input {
	in := &Input{
		prevKeys: make(map[glfw.Key]bool),
		pressed:  make(map[glfw.Key]bool),
	}
	window.SetCharCallback(func(_ *glfw.Window, r rune) {
		in.runes = append(in.runes, r)
	})
	return in
}

// scan records which watched keys went down since the last scan.
func (in *Input) scan(window *glfw.Window) {
	for _, key := range watched {
		down := window.GetKey(key) == glfw.Press
		in.pressed[key] = down && !in.prevKeys[key]
		in.prevKeys[key] = down
	}
}

func (in *Input) JustPressed(key glfw.Key) bool { return in.pressed[key] }

// takeRunes returns the characters typed since the last frame. Characters
// typed before name entry began belong to the game, not the name.
func (in *Input) takeRunes(state game.GameState) []rune {
	rs := in.runes
	in.runes = nil
	fresh := state == game.StateEnterName && in.lastState != game.StateEnterName
	in.lastState = state
	if fresh {
		return nil
	}
	return rs
}

// apply feeds one frame of input into the session.
func (in *Input) apply(window *glfw.Window, s *game.GameSession) {
	in.scan(window)
	runes := in.takeRunes(s.State)

	if in.JustPressed(glfw.KeyEscape) {
		if s.Cancel() {
			window.SetShouldClose(true)
		}
		return
	}

	switch s.State {
	case game.StateMenu:
		switch {
		case in.JustPressed(glfw.KeySpace):
			s.Start()
		case in.JustPressed(glfw.KeyW), in.JustPressed(glfw.KeyUp):
			s.MenuMove(-1)
		case in.JustPressed(glfw.KeyS), in.JustPressed(glfw.KeyDown):
			s.MenuMove(1)
		case in.JustPressed(glfw.KeyA), in.JustPressed(glfw.KeyLeft):
			s.MenuAdjust(-1)
		case in.JustPressed(glfw.KeyD), in.JustPressed(glfw.KeyRight):
			s.MenuAdjust(1)
		}

	case game.StatePlaying:
		for i, b := range bindings {
			who := i
			if s.Players == 1 {
				who = 0
			}
			switch {
			case in.JustPressed(b.up):
				s.Steer(who, game.Up)
			case in.JustPressed(b.down):
				s.Steer(who, game.Down)
			case in.JustPressed(b.left):
				s.Steer(who, game.Left)
			case in.JustPressed(b.right):
				s.Steer(who, game.Right)
			}
			if in.JustPressed(b.fire) {
				s.PressFire(who)
			}
		}
		for i := 0; i < s.Players; i++ {
			held := window.GetKey(bindings[i].fire) == glfw.Press
			if s.Players == 1 {
				held = held || window.GetKey(bindings[1].fire) == glfw.Press
			}
			s.HoldFire(i, held)
		}

	case game.StateEnterName:
		for _, r := range runes {
			s.TypeRune(r)
		}
		switch {
		case in.JustPressed(glfw.KeyEnter), in.JustPressed(glfw.KeyKPEnter):
			s.SubmitName()
		case in.JustPressed(glfw.KeyBackspace):
			s.Backspace()
		}

	case game.StateRoundOver:
		switch {
		case in.JustPressed(glfw.KeySpace):
			s.Start()
		case in.JustPressed(glfw.KeyM):
			s.Abandon()
		}
	}
}
