// Package harryconfig loads CLI defaults from an optional config file via
// viper (YAML/TOML/JSON auto-detected by extension), merged under
// whatever flags cmd/harry actually parsed — flags always win on conflict,
// matching viper's documented precedence: cmd/harry copies a file value
// into a flag's destination only when pflag.Flag.Changed reports that the
// flag was not passed. The option-struct shape follows the teacher's
// builder.builderConfig/BuilderOption pattern, adapted from constructing
// graphs to describing the CLI surface.
package harryconfig
