package demo

import (
	"fmt"

	"github.com/eaugeas/bst/container/interval"
	errs "github.com/eaugeas/bst/errors"
	"github.com/eaugeas/bst/source"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ClassicValues are inserted, in order, when no other
// values are configured
var ClassicValues = []int{8, 3, 10, 1, 6, 4, 7, 14, 16}

// ClassicRemovals are removed from the classic tree when no
// other removals are configured
var ClassicRemovals = []int{3, 8}

// Config holds the settings of the demo. It implements
// config.Binder
type Config struct {
	// Seed of the random values generator
	Seed int64

	// Count of random values to insert. Ignored if Values is set
	Count int

	// Min and Max bound the random values
	Min int
	Max int

	// Values inserted in order
	Values []int

	// Remove lists the values removed after all insertions
	Remove []int

	// Trials is the number of independent random trees built
	// concurrently. When zero a single scenario is run
	Trials int

	// Concurrency bounds the number of trials run at once
	Concurrency int

	// Check verifies the tree after every operation
	Check bool

	// Summary prints a table with every operation
	Summary bool

	// Intervals are merged into a set of disjoint intervals
	// instead of running a scenario
	Intervals []interval.Int

	// LogLevel is the logrus level name
	LogLevel string
}

// Bind implementation of config.Binder for Config
func (c *Config) Bind(v *viper.Viper, cmd *cobra.Command) error {
	flags := cmd.PersistentFlags()
	flags.Int64("seed", 1, "seed of the random values generator")
	flags.Int("count", 0, "number of random values to insert when no values are given")
	flags.Int("min", -10, "lowest random value")
	flags.Int("max", 10, "highest random value")
	flags.IntSlice("values", nil, "values to insert in order")
	flags.IntSlice("remove", nil, "values to remove after inserting")
	flags.Int("trials", 0, "number of independent random trees to build")
	flags.Int("concurrency", 0, "maximum number of trials run at once")
	flags.Bool("check", false, "verify the tree after every operation")
	flags.Bool("summary", false, "print a table with every operation")
	flags.StringSlice("intervals", nil, "intervals to merge, written as min:max")
	flags.String("log-level", "info", "log level")
	return nil
}

// Configure implementation of config.Binder for Config
func (c *Config) Configure(v *viper.Viper) error {
	c.Seed = v.GetInt64("seed")
	c.Count = v.GetInt("count")
	c.Min = v.GetInt("min")
	c.Max = v.GetInt("max")
	c.Values = v.GetIntSlice("values")
	c.Remove = v.GetIntSlice("remove")
	c.Trials = v.GetInt("trials")
	c.Concurrency = v.GetInt("concurrency")
	c.Check = v.GetBool("check")
	c.Summary = v.GetBool("summary")
	c.LogLevel = v.GetString("log-level")

	c.Intervals = nil
	for _, s := range v.GetStringSlice("intervals") {
		i, err := ParseInterval(s)
		if err != nil {
			return invalidConfig("%s", err.Error())
		}
		c.Intervals = append(c.Intervals, i)
	}

	return c.Validate()
}

// Validate returns an error with code ErrorCodeInvalidConfig if
// the settings cannot be used
func (c *Config) Validate() error {
	if err := source.CheckRange(c.Min, c.Max); err != nil {
		return invalidConfig("%s", err.Error())
	}

	switch {
	case c.Count < 0:
		return invalidConfig("count cannot be negative")
	case c.Trials < 0:
		return invalidConfig("trials cannot be negative")
	case c.Concurrency < 0:
		return invalidConfig("concurrency cannot be negative")
	case c.Trials > 0 && c.Count == 0:
		return invalidConfig("trials require a count of random values")
	}

	return nil
}

// Scenario returns the values to insert and the values to remove.
// Explicit values take precedence over random ones, and the classic
// scenario is used when neither is configured.
func (c *Config) Scenario() (source.Source[int], []int, error) {
	switch {
	case len(c.Values) > 0:
		return source.NewSliceSource(c.Values...), c.Remove, nil
	case c.Count > 0:
		src, err := source.NewRandomSource(c.randomOpts(c.Seed))
		if err != nil {
			return nil, nil, errs.New(errs.ErrorCodeInvalidSource, err)
		}
		return src, c.Remove, nil
	case len(c.Remove) > 0:
		return source.NewSliceSource(ClassicValues...), c.Remove, nil
	default:
		return source.NewSliceSource(ClassicValues...), ClassicRemovals, nil
	}
}

// TrialOpts returns the options used to run the configured trials
func (c *Config) TrialOpts() TrialOpts {
	return TrialOpts{
		Seed:        c.Seed,
		Trials:      c.Trials,
		Count:       c.Count,
		Min:         c.Min,
		Max:         c.Max,
		Remove:      c.Remove,
		Concurrency: c.Concurrency,
	}
}

func (c *Config) randomOpts(seed int64) source.RandomOpts {
	return source.RandomOpts{Seed: seed, Count: c.Count, Min: c.Min, Max: c.Max}
}

func invalidConfig(format string, args ...interface{}) error {
	return &errs.Error{
		ErrorCode:   errs.ErrorCodeInvalidConfig,
		Description: fmt.Sprintf(format, args...),
	}
}
