package envconfig

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/AdrianoSaraivaa/sgp/internal/model"
)

type lineEnv struct {
	LayoutPath        string        `env:"LAYOUT_PATH"`
	DebounceCooldown  time.Duration `env:"DEBOUNCE_COOLDOWN" envDefault:"10m"`
	RejectPolicy      string        `env:"LINE_REJECT_POLICY" envDefault:"advance"`
	SerialDir         string        `env:"SERIAL_DIR" envDefault:"data"`
	ReorderRecipients []string      `env:"ROP_RECIPIENTS" envSeparator:","`
	BoardDoneWindow   time.Duration `env:"BOARD_DONE_WINDOW" envDefault:"12h"`
}

type line struct {
	raw lineEnv
}

func NewLineConfig() (*line, error) {
	var raw lineEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	switch model.RejectPolicy(raw.RejectPolicy) {
	case model.RejectAdvance, model.RejectHold:
	default:
		return nil, fmt.Errorf("LINE_REJECT_POLICY must be advance or hold, got %q", raw.RejectPolicy)
	}

	return &line{raw: raw}, nil
}

// LayoutPath may be empty, which selects the built-in layout.
func (cfg *line) LayoutPath() string               { return cfg.raw.LayoutPath }
func (cfg *line) DebounceCooldown() time.Duration  { return cfg.raw.DebounceCooldown }
func (cfg *line) RejectPolicy() model.RejectPolicy { return model.RejectPolicy(cfg.raw.RejectPolicy) }
func (cfg *line) SerialDir() string                { return cfg.raw.SerialDir }
func (cfg *line) ReorderRecipients() []string      { return cfg.raw.ReorderRecipients }
func (cfg *line) BoardDoneWindow() time.Duration   { return cfg.raw.BoardDoneWindow }
