package config

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Binder owns a group of settings
type Binder interface {
	// Bind declares the flags of the binder on cmd
	Bind(v *viper.Viper, cmd *cobra.Command) error

	// Configure reads the values of the binder once
	// the flags have been parsed
	Configure(v *viper.Viper) error
}

// ConfigFile is the binder for the --config flag. When set, the file
// is read by viper and its keys act as defaults for every other flag.
type ConfigFile struct {
	Path string
}

// Bind implementation of Binder for ConfigFile
func (f *ConfigFile) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String("config", "", "path to a yaml, json or toml configuration file")
	return nil
}

// Configure implementation of Binder for ConfigFile
func (f *ConfigFile) Configure(v *viper.Viper) error {
	f.Path = v.GetString("config")
	if f.Path == "" {
		return nil
	}

	v.SetConfigFile(f.Path)
	if err := v.ReadInConfig(); err != nil {
		return ErrReadConfig{Path: f.Path, Cause: err}
	}

	return nil
}

// ErrAlreadyParsed is returned when a Parser is used twice
var ErrAlreadyParsed = errors.New("flags already parsed")

// ErrParseFlags is returned when the command line cannot be parsed
type ErrParseFlags struct {
	Cause error
}

func (e ErrParseFlags) Error() string {
	return fmt.Sprintf("failed to parse flags: %s", e.Cause.Error())
}

func (e ErrParseFlags) Unwrap() error {
	return e.Cause
}

// ErrReadConfig is returned when the configuration file
// cannot be read
type ErrReadConfig struct {
	Path  string
	Cause error
}

func (e ErrReadConfig) Error() string {
	return fmt.Sprintf("failed to read configuration file %s: %s", e.Path, e.Cause.Error())
}

func (e ErrReadConfig) Unwrap() error {
	return e.Cause
}
