// Package config loads blockterm settings from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/qnkhuat/blockterm/pkg/mino"
	"github.com/qnkhuat/blockterm/pkg/random"
)

const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

var ErrInvalidConfig = errors.New("invalid config")

// Client configures a single game session.
type Client struct {
	Seed       int64         `env:"BLOCKTERM_SEED"`
	Tick       time.Duration `env:"BLOCKTERM_TICK"       envDefault:"800ms"`
	Randomizer string        `env:"BLOCKTERM_RANDOMIZER" envDefault:"uniform"`
	Theme      string        `env:"BLOCKTERM_THEME"      envDefault:"basic"`
	Log        string        `env:"BLOCKTERM_LOG"`
}

// Server configures the ssh front door.
type Server struct {
	Addr        string        `env:"BLOCKTERM_SSH_ADDR"     envDefault:":2222"`
	Binary      string        `env:"BLOCKTERM_BINARY"       envDefault:"blockterm"`
	HostKey     string        `env:"BLOCKTERM_HOST_KEY"`
	IdleTimeout time.Duration `env:"BLOCKTERM_IDLE_TIMEOUT" envDefault:"5m"`
	Log         string        `env:"BLOCKTERM_LOG"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func LoadClient() (Client, error) {
	var c Client
	if err := ParseEnv(&c); err != nil {
		return Client{}, err
	}

	return c, c.Validate()
}

func LoadServer() (Server, error) {
	var s Server
	if err := ParseEnv(&s); err != nil {
		return Server{}, err
	}

	if s.Addr == "" {
		return Server{}, fmt.Errorf("%w: empty ssh address", ErrInvalidConfig)
	}

	return s, nil
}

func (c Client) Validate() error {
	if c.Tick <= 0 {
		return fmt.Errorf("%w: tick must be positive, got %s", ErrInvalidConfig, c.Tick)
	}

	switch c.Randomizer {
	case RandomizerUniform, RandomizerBag:
	default:
		return fmt.Errorf("%w: unknown randomizer %q", ErrInvalidConfig, c.Randomizer)
	}

	return nil
}

// Generator builds the configured piece generator. A zero Seed is replaced
// by a random one; the seed in use is returned so a game can be replayed.
func (c Client) Generator() (mino.Generator, int64, error) {
	seed, err := random.SeedOr(c.Seed)
	if err != nil {
		return nil, 0, err
	}

	switch c.Randomizer {
	case RandomizerBag:
		return mino.NewBag(seed), seed, nil
	case RandomizerUniform, "":
		return mino.NewRandom(seed), seed, nil
	default:
		return nil, 0, fmt.Errorf("%w: unknown randomizer %q", ErrInvalidConfig, c.Randomizer)
	}
}
