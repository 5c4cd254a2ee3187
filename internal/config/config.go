// Package config handles roompath configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Room    RoomConfig    `yaml:"room"`
	Search  SearchConfig  `yaml:"search"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// RoomConfig points at the room template to search in.
type RoomConfig struct {
	File string `yaml:"file"`
}

// SearchConfig holds pathfinding settings.
type SearchConfig struct {
	StepBudget      int  `yaml:"step_budget"`      // 0 = unbounded
	WeightedPenalty bool `yaml:"weighted_penalty"` // penalties add terrain cost
}

// OutputConfig holds result formatting settings.
type OutputConfig struct {
	Format string `yaml:"format"` // "text" or "yaml"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Search: SearchConfig{
			StepBudget:      0,
			WeightedPenalty: false,
		},
		Output: OutputConfig{
			Format: "text",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
