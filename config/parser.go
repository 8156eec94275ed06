package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config describes an application whose settings are read
// from flags, environment variables and a configuration file
type Config interface {
	Use() string
	EnvPrefix() string
	Binders() []Binder
}

// Parser fills the binders of a Config from the command line
type Parser struct {
	Config Config

	file *ConfigFile

	cmd *cobra.Command
	v   *viper.Viper
}

// Parse parses the arguments the process was started with
func (p *Parser) Parse() error {
	return p.ParseArgs(os.Args[1:])
}

// ParseArgs parses args and configures every binder. Values are
// resolved in order of precedence: flags, environment variables,
// configuration file and defaults.
func (p *Parser) ParseArgs(args []string) error {
	if p.cmd.PersistentFlags().Parsed() {
		return ErrAlreadyParsed
	}

	if err := p.cmd.PersistentFlags().Parse(args); err != nil {
		return ErrParseFlags{err}
	}

	// keep file first so that any parameters read from the file are used
	// as defaults for the other flags
	var binders []Binder
	binders = append(binders, p.file)
	binders = append(binders, p.Config.Binders()...)

	for _, c := range binders {
		if err := c.Configure(p.v); err != nil {
			return err
		}
	}

	return nil
}

// Usage prints the usage of the application
func (p *Parser) Usage() error {
	return p.cmd.Usage()
}

// Generate creates the Parser for the application app
func Generate(app string, config Config) (*Parser, error) {
	v := viper.New()
	// all environment variables start with prefix `prefix` and are set
	// by replacing `.` and `-` to _.
	v.SetEnvPrefix(config.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{Use: app}
	file := ConfigFile{}
	var binders []Binder
	binders = append(binders, &file)
	binders = append(binders, config.Binders()...)

	for _, c := range binders {
		if err := c.Bind(v, cmd); err != nil {
			return nil, errors.Wrap(err, "failed to bind flags")
		}
	}

	if err := v.BindPFlags(cmd.PersistentFlags()); err != nil {
		return nil, errors.Wrap(err, "failed to bind flags")
	}

	return &Parser{file: &file, Config: config, cmd: cmd, v: v}, nil
}
