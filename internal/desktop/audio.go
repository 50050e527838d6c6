package desktop

import (
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"
	"github.com/rs/zerolog"

	"snakeruins/internal/game"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)

	maxVoices = 6
)

type SoundKind int

const (
	SoundEat SoundKind = iota
	SoundBonus
	SoundCoin
	SoundGunshot
	SoundVacuum
	SoundCrumble
	SoundBark
	SoundYelp
	SoundHurt
	SoundGameOver
	SoundMenuSelect
	SoundPurchase
	soundKindCount
)

// Audio plays procedurally generated effects for session events.
type Audio struct {
	ctx    *oto.Context
	ready  chan struct{}
	bank   [soundKindCount][]byte
	voices int32
	volume float64
	log    zerolog.Logger
}

func NewAudio(log zerolog.Logger) (*Audio, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	a := &Audio{ctx: ctx, ready: ready, volume: 0.8, log: log}
	for k := SoundKind(0); k < soundKindCount; k++ {
		a.bank[k] = generateSound(k)
	}
	return a, nil
}

// Attach maps session events to sounds.
func (a *Audio) Attach(bus *game.EventBus) {
	bus.Subscribe(game.EventFoodEaten, func(e game.Event) {
		if game.FoodKind(e.Data) == game.FoodNormal {
			a.Play(SoundEat)
		} else {
			a.Play(SoundBonus)
		}
	})
	bus.Subscribe(game.EventCoinPicked, func(game.Event) { a.Play(SoundCoin) })
	bus.Subscribe(game.EventShot, func(game.Event) { a.Play(SoundGunshot) })
	bus.Subscribe(game.EventVacuum, func(game.Event) { a.Play(SoundVacuum) })
	bus.Subscribe(game.EventRuinDestroyed, func(game.Event) { a.Play(SoundCrumble) })
	bus.Subscribe(game.EventEnemySpawned, func(game.Event) { a.Play(SoundBark) })
	bus.Subscribe(game.EventEnemyKilled, func(game.Event) { a.Play(SoundYelp) })
	bus.Subscribe(game.EventSnakeDied, func(game.Event) { a.Play(SoundHurt) })
	bus.Subscribe(game.EventRoundOver, func(game.Event) { a.Play(SoundGameOver) })
	bus.Subscribe(game.EventMenuSelect, func(game.Event) { a.Play(SoundMenuSelect) })
	bus.Subscribe(game.EventPurchase, func(game.Event) { a.Play(SoundPurchase) })
}

// Play starts kind on its own player. It drops the sound when the context
// is not ready yet or too many voices are active.
func (a *Audio) Play(kind SoundKind) {
	if a == nil || kind < 0 || kind >= soundKindCount {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	if atomic.AddInt32(&a.voices, 1) > maxVoices {
		atomic.AddInt32(&a.voices, -1)
		return
	}
	go func() {
		defer atomic.AddInt32(&a.voices, -1)
		player := a.ctx.NewPlayer(&soundReader{data: a.bank[kind]})
		player.SetVolume(a.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			a.log.Debug().Err(err).Msg("close player")
		}
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels of frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for ch := 0; ch < ChannelCount; ch++ {
		o := i*8 + ch*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

func softSat(x float64) float64 {
	switch {
	case x > 1:
		return 1 - 0.5/x
	case x < -1:
		return -1 + 0.5/(-x)
	}
	return x - x*x*x/3
}

// adsr returns an envelope at normalized progress [0,1].
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1 - (progress-attack)/decay*(1-sustain)
	case progress < 1-release:
		return sustain
	default:
		return sustain * (1 - (progress-(1-release))/release)
	}
}

func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// noise advances an LCG seed and returns a sample in [-1,1].
func noise(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func samples(seconds float64) int { return int(seconds * SampleRate) }

// render fills a buffer of the given length from a per-sample voice.
func render(seconds float64, voice func(t, p float64) float64) []byte {
	n := samples(seconds)
	buf := make([]byte, n*8)
	for i := 0; i < n; i++ {
		putStereoF32(buf, i, softSat(voice(float64(i)/SampleRate, float64(i)/float64(n))))
	}
	return buf
}

// arpeggio rings each note over the next, stepping every step seconds.
func arpeggio(notes []float64, step, tail, ratio, gain float64) []byte {
	total := samples(float64(len(notes))*step + tail)
	mix := make([]float64, total)
	for ni, freq := range notes {
		start := samples(float64(ni) * step)
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			env := adsr(float64(j)/float64(dur), 0.004, 0.55, 0.05, 0.35)
			mix[start+j] += fm(t, freq, ratio, 5*env)*env*gain + math.Sin(2*math.Pi*freq*2*t)*env*gain/4
		}
	}
	buf := make([]byte, total*8)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundEat:
		return render(0.09, func(t, p float64) float64 {
			env := adsr(p, 0.01, 0.5, 0, 0.1)
			return fm(t, 380+520*p, 2, 1.8*env) * env * 0.5
		})
	case SoundBonus:
		return arpeggio([]float64{523.25, 659.25, 783.99, 1046.5}, 0.075, 0.18, 2.756, 0.36)
	case SoundCoin:
		return arpeggio([]float64{987.77, 1318.51}, 0.06, 0.12, 3.5, 0.3)
	case SoundPurchase:
		return arpeggio([]float64{659.25, 783.99, 1318.51}, 0.05, 0.15, 2, 0.3)
	case SoundGunshot:
		seed := uint64(77777)
		return render(0.11, func(t, p float64) float64 {
			crack := 0.0
			if p < 0.014 {
				crack = noise(&seed) * (1 - p/0.014) * 0.88
			}
			thump := math.Sin(2*math.Pi*200*math.Pow(0.04, p*4)*t) * math.Exp(-p*22) * 0.62
			body := noise(&seed) * math.Pow(1-p, 5) * 0.28
			return (crack + thump + body) * 0.82
		})
	case SoundVacuum:
		seed := uint64(4242)
		lp := 0.0
		return render(0.18, func(t, p float64) float64 {
			lp = lp*0.9 + noise(&seed)*0.1
			return lp * math.Sin(math.Pi*p) * 1.6
		})
	case SoundCrumble:
		seed := uint64(1234)
		lp := 0.0
		return render(0.22, func(t, p float64) float64 {
			raw := noise(&seed)
			lp = lp*0.7 + raw*0.3
			return (lp*0.7 + math.Sin(2*math.Pi*70*t)*0.3) * math.Pow(1-p, 2) * 0.7
		})
	case SoundBark:
		return render(0.14, func(t, p float64) float64 {
			env := adsr(p, 0.02, 0.4, 0.2, 0.3)
			return fm(t, 420-180*p, 1.5, 4*env) * env * 0.45
		})
	case SoundYelp:
		return render(0.12, func(t, p float64) float64 {
			env := adsr(p, 0.01, 0.5, 0.1, 0.3)
			return fm(t, 900-500*p, 1, 2*env) * env * 0.4
		})
	case SoundHurt:
		return render(0.16, func(t, p float64) float64 {
			env := adsr(p, 0.015, 0.55, 0.1, 0.25)
			freq := 320 - 220*p
			return fm(t, freq, 1.5, 2.8*(1-p))*env*0.52 + math.Sin(2*math.Pi*freq*2*t)*env*0.1
		})
	case SoundGameOver:
		return genGameOver()
	case SoundMenuSelect:
		return render(0.065, func(t, p float64) float64 {
			env := adsr(p, 0.004, 0.55, 0, 0.1)
			return fm(t, 1400-700*p, 1, 0.6) * env * 0.38
		})
	}
	return nil
}

// genGameOver: slow descending minor chord, staggered.
func genGameOver() []byte {
	n := samples(0.75)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00},
		{261.63, 0.14},
		{220.00, 0.28},
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := samples(note.onset)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025)
			mix[i] += fm(t, freq, 2, 2*env)*env*0.32 + math.Sin(2*math.Pi*freq*0.5*t)*env*0.1
		}
	}
	buf := make([]byte, n*8)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
