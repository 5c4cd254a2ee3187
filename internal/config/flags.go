package config

import "flag"

// Flags holds command-line overrides. Zero values leave the config untouched.
type Flags struct {
	ConfigPath string
	RoomFile   string
	Debug      bool
	Format     string
	StepBudget int
	Weighted   bool
	LogFile    string
}

// Register binds the flags to fs.
func (f *Flags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", "", "Path to config file")
	fs.StringVar(&f.RoomFile, "room", "", "Path to room template (YAML)")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.Format, "format", "", "Output format: text or yaml")
	fs.IntVar(&f.StepBudget, "budget", 0, "Max node expansions (0 = config value)")
	fs.BoolVar(&f.Weighted, "weighted", false, "Treat penalties as additive terrain cost")
	fs.StringVar(&f.LogFile, "log-file", "", "Write logs to this file as well")
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f.RoomFile != "" {
		cfg.Room.File = f.RoomFile
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Format != "" {
		cfg.Output.Format = f.Format
	}
	if f.StepBudget > 0 {
		cfg.Search.StepBudget = f.StepBudget
	}
	if f.Weighted {
		cfg.Search.WeightedPenalty = true
	}
	if f.LogFile != "" {
		cfg.Logging.LogFile = f.LogFile
	}
}
