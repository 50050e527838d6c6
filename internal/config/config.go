// Package config resolves runtime settings from defaults, an optional .env
// file, SNAKE_* environment variables and command-line flags, in that order.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	HostDesktop  = "desktop"
	HostTerminal = "terminal"
)

type Config struct {
	Host         string
	Players      int
	Difficulty   int
	Seed         uint64
	DataDir      string
	SpectateAddr string // empty disables the spectator feed
	LogLevel     string
	EnvFile      string
	CellSize     int // desktop pixels per cell
	Mute         bool
}

func Default() Config {
	return Config{
		Host:       HostDesktop,
		Players:    1,
		Difficulty: 1,
		DataDir:    defaultDataDir(),
		LogLevel:   "info",
		EnvFile:    ".env",
		CellSize:   20,
	}
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "snakeruins")
	}
	return "."
}

// Load builds a Config from args (without the program name). The .env file
// named by -env (or the default) is optional.
func Load(args []string) (Config, error) {
	cfg := Default()

	envFile := cfg.EnvFile
	for i, a := range args {
		switch {
		case a == "-env" || a == "--env":
			if i+1 < len(args) {
				envFile = args[i+1]
			}
		case strings.HasPrefix(a, "-env=") || strings.HasPrefix(a, "--env="):
			envFile = a[strings.Index(a, "=")+1:]
		}
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load %s: %w", envFile, err)
	}
	cfg.EnvFile = envFile

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	fset := flag.NewFlagSet("snake", flag.ContinueOnError)
	fset.StringVar(&cfg.Host, "host", cfg.Host, "frontend: desktop or terminal")
	fset.IntVar(&cfg.Players, "players", cfg.Players, "number of players (1-2)")
	fset.IntVar(&cfg.Difficulty, "difficulty", cfg.Difficulty, "difficulty tier (0=easy .. 3=insane)")
	fset.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "gameplay seed, 0 picks one from the clock")
	fset.StringVar(&cfg.DataDir, "data", cfg.DataDir, "directory for savedata.json and highscores.json")
	fset.StringVar(&cfg.SpectateAddr, "spectate", cfg.SpectateAddr, "listen address for the spectator feed, e.g. :8080")
	fset.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "trace, debug, info, warn or error")
	fset.StringVar(&cfg.EnvFile, "env", cfg.EnvFile, "optional .env file")
	fset.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "desktop cell size in pixels")
	fset.BoolVar(&cfg.Mute, "mute", cfg.Mute, "disable sound effects")
	if err := fset.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	var merr *multierror.Error
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) {
		v, ok := lookup(key)
		if !ok || v == "" {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", key, err))
			return
		}
		*dst = n
	}

	str("SNAKE_HOST", &c.Host)
	num("SNAKE_PLAYERS", &c.Players)
	num("SNAKE_DIFFICULTY", &c.Difficulty)
	str("SNAKE_DATA_DIR", &c.DataDir)
	str("SNAKE_SPECTATE_ADDR", &c.SpectateAddr)
	str("SNAKE_LOG_LEVEL", &c.LogLevel)
	num("SNAKE_CELL_SIZE", &c.CellSize)
	if v, ok := lookup("SNAKE_SEED"); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("SNAKE_SEED: %w", err))
		} else {
			c.Seed = seed
		}
	}
	if v, ok := lookup("SNAKE_MUTE"); ok && v != "" {
		mute, err := strconv.ParseBool(v)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("SNAKE_MUTE: %w", err))
		} else {
			c.Mute = mute
		}
	}
	return merr.ErrorOrNil()
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var merr *multierror.Error
	if c.Host != HostDesktop && c.Host != HostTerminal {
		merr = multierror.Append(merr, fmt.Errorf("host %q: want %s or %s", c.Host, HostDesktop, HostTerminal))
	}
	if c.Players < 1 || c.Players > 2 {
		merr = multierror.Append(merr, fmt.Errorf("players %d: want 1 or 2", c.Players))
	}
	if c.Difficulty < 0 || c.Difficulty > 3 {
		merr = multierror.Append(merr, fmt.Errorf("difficulty %d: want 0..3", c.Difficulty))
	}
	if c.DataDir == "" {
		merr = multierror.Append(merr, errors.New("data dir is empty"))
	}
	if c.CellSize < 4 || c.CellSize > 64 {
		merr = multierror.Append(merr, fmt.Errorf("cell size %d: want 4..64", c.CellSize))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		merr = multierror.Append(merr, fmt.Errorf("log level: %w", err))
	}
	return merr.ErrorOrNil()
}

// Level returns the parsed log level, defaulting to info.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
