package harryconfig

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config mirrors the compute subcommand's flag surface (SPEC_FULL.md §6),
// loadable from a file so a run can be reproduced without retyping every
// flag. Zero values mean "not set by the file"; cmd/harry only copies a
// field in when the corresponding flag was not explicitly passed. Verbose
// is loaded but cmd/harry does not apply it: only the --verbose flag sets
// the log level.
type Config struct {
	Measure   string `mapstructure:"measure"`
	Delim     string `mapstructure:"delim"`
	XRange    string `mapstructure:"xrange"`
	YRange    string `mapstructure:"yrange"`
	Split     string `mapstructure:"split"`
	Format    string `mapstructure:"format"`
	Input     string `mapstructure:"input"`
	Output    string `mapstructure:"output"`
	InputKind string `mapstructure:"input_kind"`
	Workers   int    `mapstructure:"workers"`
	Verbose   bool   `mapstructure:"verbose"`
}

// Load reads path (YAML/TOML/JSON, detected by extension) into a Config.
// An empty path is a no-op returning the zero Config, so an unset
// --config flag never triggers a file read.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("harryconfig: read %q: %w", path, err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("harryconfig: unmarshal %q: %w", path, err)
	}

	return cfg, nil
}
