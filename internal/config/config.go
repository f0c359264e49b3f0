package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultPlayerColors is the palette handed out by roster position.
var DefaultPlayerColors = []string{"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A"}

// Rules are the per-game constants every room is created with.
type Rules struct {
	TrackLength  int `env:"TRACK_LENGTH" envDefault:"100" json:"trackLength"`
	AscendLinks  int `env:"ASCEND_LINKS" envDefault:"10" json:"ascendLinks"`
	DescendLinks int `env:"DESCEND_LINKS" envDefault:"12" json:"descendLinks"`
	CardSpawns   int `env:"CARD_SPAWNS" envDefault:"15" json:"cardSpawns"`
	MaxPlayers   int `env:"MAX_PLAYERS" envDefault:"4" json:"maxPlayers"`
	MinPlayers   int `env:"MIN_PLAYERS" envDefault:"2" json:"minPlayers"`
	MinJump      int `env:"MIN_JUMP" envDefault:"5" json:"minJump"`
	MaxJump      int `env:"MAX_JUMP" envDefault:"50" json:"maxJump"`
	AttemptCap   int `env:"ATTEMPT_CAP" envDefault:"1000" json:"attemptCap"`
	RerollCap    int `env:"REROLL_CAP" envDefault:"1000" json:"rerollCap"`
}

type Config struct {
	HTTPAddr      string `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty     bool   `env:"LOG_PRETTY" envDefault:"false"`
	Seed          int64  `env:"GAME_SEED" envDefault:"0"`
	MaxNameLength int    `env:"MAX_NAME_LENGTH" envDefault:"20"`
	Rules         Rules  `envPrefix:"GAME_"`
}

// DefaultRules returns the rules used when nothing is configured.
func DefaultRules() Rules {
	return Rules{
		TrackLength:  100,
		AscendLinks:  10,
		DescendLinks: 12,
		CardSpawns:   15,
		MaxPlayers:   4,
		MinPlayers:   2,
		MinJump:      5,
		MaxJump:      50,
		AttemptCap:   1000,
		RerollCap:    1000,
	}
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse builds a Config from the process environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.MaxNameLength <= 0 {
		return fmt.Errorf("MAX_NAME_LENGTH must be positive, got %d", c.MaxNameLength)
	}
	return c.Rules.Validate()
}

func (r Rules) Validate() error {
	switch {
	case r.TrackLength < 10:
		return fmt.Errorf("GAME_TRACK_LENGTH must be at least 10, got %d", r.TrackLength)
	case r.MaxPlayers < 1 || r.MaxPlayers > len(DefaultPlayerColors):
		return fmt.Errorf("GAME_MAX_PLAYERS must be between 1 and %d, got %d", len(DefaultPlayerColors), r.MaxPlayers)
	case r.MinPlayers < 1 || r.MinPlayers > r.MaxPlayers:
		return fmt.Errorf("GAME_MIN_PLAYERS must be between 1 and GAME_MAX_PLAYERS, got %d", r.MinPlayers)
	case r.AscendLinks < 0 || r.DescendLinks < 0 || r.CardSpawns < 0:
		return errors.New("link and card spawn counts must not be negative")
	case r.MinJump < 2 || r.MaxJump < r.MinJump:
		return fmt.Errorf("jump range [%d, %d] is invalid", r.MinJump, r.MaxJump)
	case r.AttemptCap < 0 || r.RerollCap < 0:
		return errors.New("attempt caps must not be negative")
	}
	return nil
}
