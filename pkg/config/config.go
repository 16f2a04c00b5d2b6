// Package config loads the optional bbpterms configuration file.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/containers/bbpterms/pkg/bbp"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultLogLevel is the log level used when neither a flag nor the
	// configuration file sets one.
	DefaultLogLevel = "warn"
	// DefaultBlockSize is the number of quadruples summed per block by
	// `bbpterms sum --block`.
	DefaultBlockSize = 16
	// DefaultExtraTerms is how many term indexes past the position are
	// computed when extracting a digit.
	DefaultExtraTerms = 16
)

// Config holds the bbpterms configuration.
type Config struct {
	Engine EngineConfig `toml:"engine"`
}

// EngineConfig holds the defaults of the computation commands.
type EngineConfig struct {
	// LogLevel is one of debug, info, warn, error, fatal or panic.
	LogLevel string `toml:"log_level,omitempty"`
	// Threshold is the largest tolerated difference between two terms when
	// verifying a sequence.
	Threshold float64 `toml:"threshold,omitempty"`
	// BlockSize is the default reduction block, in quadruples.
	BlockSize int `toml:"block_size,omitempty"`
	// ExtraTerms is added to the position to get the default term count
	// of a digit extraction.
	ExtraTerms int `toml:"extra_terms,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			LogLevel:   DefaultLogLevel,
			Threshold:  bbp.DefaultThreshold,
			BlockSize:  DefaultBlockSize,
			ExtraTerms: DefaultExtraTerms,
		},
	}
}

// New returns the built-in configuration overlaid with the file at path.
// An empty path yields the built-in configuration.
func New(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	logrus.Debugf("Reading configuration file %q", path)
	meta, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding configuration file %q", path)
	}
	for _, key := range meta.Undecoded() {
		logrus.Debugf("Failed to decode the keys %q from %q", key.String(), path)
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "validating configuration file %q", path)
	}
	return c, nil
}

// Validate checks the configured values.
func (c *Config) Validate() error {
	if c.Engine.Threshold <= 0 {
		return errors.Errorf("threshold must be positive, got %v", c.Engine.Threshold)
	}
	if c.Engine.BlockSize <= 0 {
		return errors.Wrapf(bbp.ErrInvalidBlockSize, "block_size %d", c.Engine.BlockSize)
	}
	if c.Engine.ExtraTerms < 0 {
		return errors.Errorf("extra_terms must not be negative, got %d", c.Engine.ExtraTerms)
	}
	return nil
}
