package experiments

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/edomerli/Gomoku/searcher"
)

// Config holds the self-play experiment settings.
type Config struct {
	BoardSize int    `yaml:"board_size"`
	WinLength int    `yaml:"win_length"`
	Budget    int    `yaml:"budget"`
	Games     int    `yaml:"games"`
	Seed      uint64 `yaml:"seed"`
	OutputDir string `yaml:"output_dir"`
}

func DefaultConfig() Config {
	return Config{
		BoardSize: 11,
		WinLength: 5,
		Budget:    searcher.DefaultBudget,
		Games:     10,
		Seed:      1,
		OutputDir: "results",
	}
}

// LoadConfig reads a YAML config, filling omitted fields with defaults. A
// missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if cfg.BoardSize < 1 || cfg.WinLength < 1 || cfg.WinLength > cfg.BoardSize {
		return cfg, fmt.Errorf("invalid board size %d / win length %d", cfg.BoardSize, cfg.WinLength)
	}
	if cfg.Budget < 1 {
		return cfg, fmt.Errorf("invalid budget %d", cfg.Budget)
	}
	if cfg.Games < 1 {
		return cfg, fmt.Errorf("invalid game count %d", cfg.Games)
	}
	return cfg, nil
}
