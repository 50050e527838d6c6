// Package desktop is the windowed host: a glfw window, an OpenGL cell
// renderer and oto sound effects.
package desktop

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"

	"snakeruins/internal/game"
)

const windowTitle = "Snake Ruins"

type Options struct {
	CellSize int
	Mute     bool
	Logger   zerolog.Logger
}

// App implements engine.Host. New, Poll, Render and Close must all run on
// the thread that called runtime.LockOSThread.
type App struct {
	window  *glfw.Window
	rend    *Renderer
	input   *Input
	audio   *Audio
	fx      *particles
	session *game.GameSession
	log     zerolog.Logger

	lastFrame time.Time
}

func New(session *game.GameSession, opts Options) (*App, error) {
	log := opts.Logger.With().Str("component", "desktop").Logger()
	cell := max(opts.CellSize, 4)
	w := session.Grid.W * cell
	h := (session.Grid.H + hudRows) * cell

	window, err := initWindow(w, h, windowTitle)
	if err != nil {
		return nil, err
	}
	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	bg := game.Palette.Grass.Mul(90)
	gl.ClearColor(float32(bg.R)/255, float32(bg.G)/255, float32(bg.B)/255, 1)

	rend, err := NewRenderer()
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("renderer: %w", err)
	}

	a := &App{
		window:  window,
		rend:    rend,
		input:   NewInput(window),
		fx:      newParticles(maxParticles, cosmeticSeed),
		session: session,
		log:     log,
	}
	a.fx.attach(session.Events)
	if !opts.Mute {
		audio, err := NewAudio(log)
		if err != nil {
			log.Warn().Err(err).Msg("audio init failed, continuing without sound")
		} else {
			a.audio = audio
			audio.Attach(session.Events)
		}
	}
	log.Info().Int("width", w).Int("height", h).Bool("sound", a.audio != nil).Msg("window open")
	return a, nil
}

// Poll pumps window events and applies input. It returns false once the
// window should close.
func (a *App) Poll() bool {
	glfw.PollEvents()
	if a.window.ShouldClose() {
		return false
	}
	a.input.apply(a.window, a.session)
	return !a.window.ShouldClose() && !a.session.Quit()
}

func (a *App) Render() {
	fbW, fbH := a.window.GetFramebufferSize()
	if fbW <= 0 || fbH <= 0 {
		return
	}
	g := a.session.Grid
	cellPx := float32(fbW) / float32(g.W)
	top := float32(hudRows) * cellPx

	now := time.Now()
	if !a.lastFrame.IsZero() {
		a.fx.update(min(now.Sub(a.lastFrame).Seconds(), 0.1))
	}
	a.lastFrame = now

	v := a.session.View()
	a.rend.BeginFrame(fbW, fbH, 0, top, cellPx)
	if a.session.State != game.StateMenu {
		drawWorld(a.rend, &v)
		a.fx.draw(a.rend)
		a.rend.FlushCells()
	}
	drawHUD(a.rend, a.session, &v, int(cellPx))
	a.rend.FlushText()
	a.window.SwapBuffers()
}

func (a *App) Close() {
	a.rend.Destroy()
	a.window.Destroy()
	glfw.Terminate()
}
