package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// BotStyle selects how computer players decide.
type BotStyle string

const (
	BotStrategic BotStyle = "strategic"
	BotRandom    BotStyle = "random"
)

// GameConfig holds the settings for running Skull matches.
type GameConfig struct {
	// Names are handed out to seats in order.
	Names []string `json:"names"`
	// MaxSteps bounds the WhatNext calls of a single match.
	MaxSteps int `json:"max_steps"`
	// MaxRejections is how many refused responses in a row a player gets
	// before the match is abandoned.
	MaxRejections int      `json:"max_rejections"`
	Bots          BotStyle `json:"bots"`
}

// Default returns the built-in settings used when no file is given.
func Default() *GameConfig {
	return &GameConfig{
		Names:         []string{"Ada", "Basil", "Cleo", "Dmitri", "Esme", "Farid"},
		MaxSteps:      10000,
		MaxRejections: 3,
		Bots:          BotStrategic,
	}
}

// Load reads, parses, and validates the configuration from a file. Fields
// missing from the file keep their defaults.
func Load(path string) (*GameConfig, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *GameConfig) Validate() error {
	if c.MaxSteps < 1 {
		return fmt.Errorf("max_steps must be positive, got %d", c.MaxSteps)
	}
	if c.MaxRejections < 1 {
		return fmt.Errorf("max_rejections must be positive, got %d", c.MaxRejections)
	}
	switch c.Bots {
	case BotStrategic, BotRandom:
	default:
		return fmt.Errorf("unknown bot style %q", c.Bots)
	}
	seen := make(map[string]struct{}, len(c.Names))
	for _, name := range c.Names {
		if _, dup := seen[name]; dup {
			return fmt.Errorf("duplicate player name %q", name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// DeepCopy creates a new GameConfig with all slices copied to prevent shared state.
func (c *GameConfig) DeepCopy() *GameConfig {
	newCfg := *c
	newCfg.Names = make([]string, len(c.Names))
	copy(newCfg.Names, c.Names)
	return &newCfg
}

// NamesFor returns names for n seats, numbering any seats the configured
// names don't cover.
func (c *GameConfig) NamesFor(n int) []string {
	names := make([]string, n)
	for i := range names {
		if i < len(c.Names) {
			names[i] = c.Names[i]
		} else {
			names[i] = fmt.Sprintf("Player %d", i+1)
		}
	}
	return names
}
