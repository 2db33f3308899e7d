// Package config loads mathsheet configuration from
// $MATHSHEET_HOME/config.toml with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/tutu-network/mathsheet/internal/domain"
)

// Config holds all mathsheet configuration.
type Config struct {
	Task      TaskConfig      `toml:"task"`
	Layout    LayoutConfig    `toml:"layout"`
	Worksheet WorksheetConfig `toml:"worksheet"`
	Server    ServerConfig    `toml:"server"`
	History   HistoryConfig   `toml:"history"`
	Logging   LoggingConfig   `toml:"logging"`
}

// TaskConfig controls operand generation.
type TaskConfig struct {
	DigitsMin int      `toml:"digits_min" env:"MATHSHEET_DIGITS_MIN"`
	DigitsMax int      `toml:"digits_max" env:"MATHSHEET_DIGITS_MAX"`
	Types     []string `toml:"types" env:"MATHSHEET_TASK_TYPES"`
}

// LayoutConfig controls the grid of a single task and its placement on the
// page. Sizes are in points.
type LayoutConfig struct {
	RowsAbove     int     `toml:"rows_above"`
	RowsBelow     int     `toml:"rows_below"`
	ColsBefore    int     `toml:"cols_before"`
	ColsAfter     int     `toml:"cols_after"`
	TasksPerRow   int     `toml:"tasks_per_row" env:"MATHSHEET_TASKS_PER_ROW"`
	CellSize      float64 `toml:"cell_size"`
	TaskSpacing   float64 `toml:"task_spacing"`
	FontSize      float64 `toml:"font_size"`
	CarryFontSize float64 `toml:"carry_font_size"`
}

// WorksheetConfig controls the content of one sheet.
type WorksheetConfig struct {
	Title          string   `toml:"title" env:"MATHSHEET_TITLE"`
	SolutionSuffix string   `toml:"solution_suffix"`
	Days           []string `toml:"days"`
	TasksPerDay    int      `toml:"tasks_per_day" env:"MATHSHEET_TASKS_PER_DAY"`
}

// ServerConfig controls the HTTP API server.
type ServerConfig struct {
	Host    string `toml:"host" env:"MATHSHEET_HOST"`
	Port    int    `toml:"port" env:"MATHSHEET_PORT"`
	Metrics bool   `toml:"metrics" env:"MATHSHEET_METRICS"`
}

// HistoryConfig controls the generation history database.
type HistoryConfig struct {
	Enabled bool   `toml:"enabled" env:"MATHSHEET_HISTORY"`
	Dir     string `toml:"dir" env:"MATHSHEET_HISTORY_DIR"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Verbose bool `toml:"verbose" env:"MATHSHEET_VERBOSE"`
}

// DefaultConfig returns the classic weekly sheet: six 4–6 digit tasks per day,
// three per row.
func DefaultConfig() Config {
	return Config{
		Task: TaskConfig{
			DigitsMin: 4,
			DigitsMax: 6,
			Types:     []string{"addsub"},
		},
		Layout: LayoutConfig{
			RowsAbove:     1,
			RowsBelow:     1,
			ColsBefore:    1,
			ColsAfter:     1,
			TasksPerRow:   3,
			CellSize:      12,
			TaskSpacing:   16,
			FontSize:      10,
			CarryFontSize: 8,
		},
		Worksheet: WorksheetConfig{
			Title:          "Schriftliche Addition und Subtraktion",
			SolutionSuffix: "Lösung",
			Days:           []string{"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag", "Sonntag"},
			TasksPerDay:    6,
		},
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8765,
		},
		History: HistoryConfig{
			Enabled: true,
			Dir:     Home(),
		},
	}
}

// Load reads config from $MATHSHEET_HOME/config.toml, falling back to
// defaults, then applies environment overrides and validates the result.
func Load() (Config, error) {
	return LoadFile(Path())
}

// LoadFile is Load with an explicit file path. A missing file is not an
// error.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("stat config: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	if cfg.History.Dir == "" {
		cfg.History.Dir = Home()
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate fails fast on settings that would produce an invalid random range
// or an impossible layout.
func (c Config) Validate() error {
	t := c.Task
	if t.DigitsMin < 1 || t.DigitsMax < t.DigitsMin || t.DigitsMax > 9 {
		return fmt.Errorf("config: digits_min=%d digits_max=%d: %w", t.DigitsMin, t.DigitsMax, domain.ErrInvalidDigitRange)
	}
	l := c.Layout
	if l.RowsAbove < 0 || l.RowsBelow < 0 || l.ColsBefore < 0 || l.ColsAfter < 0 ||
		l.TasksPerRow < 1 || l.CellSize <= 0 || l.TaskSpacing < 0 {
		return fmt.Errorf("config: layout %+v: %w", l, domain.ErrInvalidLayout)
	}
	if c.Worksheet.TasksPerDay < 1 {
		return fmt.Errorf("config: tasks_per_day=%d: %w", c.Worksheet.TasksPerDay, domain.ErrInvalidLayout)
	}
	if len(t.Types) == 0 {
		return fmt.Errorf("config: %w", domain.ErrNoTaskTypes)
	}
	return nil
}

// Save writes cfg to path, creating its directory.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

// Home returns the mathsheet data directory.
func Home() string {
	if dir := os.Getenv("MATHSHEET_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".mathsheet")
}

// Path returns the default config file location.
func Path() string {
	return filepath.Join(Home(), "config.toml")
}
