package rs63

/*------------------------------------------------------------------
 *
 * Purpose:	Optional YAML configuration for the rs63dec and rs63test
 *		utilities.  Anything given on the command line wins.
 *
 *		debug: 2
 *		erasures: [0, 5]
 *		timestamp_format: "%H:%M:%S"
 *		metrics_addr: ":9100"
 *		selftest:
 *		  trials: 2000
 *		  workers: 4
 *		  seed: 1
 *		  overload_every: 10
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Debug           int            `yaml:"debug"`
	Erasures        []int          `yaml:"erasures"`
	TimestampFormat string         `yaml:"timestamp_format"`
	MetricsAddr     string         `yaml:"metrics_addr"`
	SelfTest        SelfTestConfig `yaml:"selftest"`
}

type SelfTestConfig struct {
	Trials        int    `yaml:"trials"`
	Workers       int    `yaml:"workers"`
	Seed          uint64 `yaml:"seed"`
	OverloadEvery int    `yaml:"overload_every"` // 0 for never
}

const DEFAULT_TRIALS = 1000
const DEFAULT_WORKERS = 4
const DEFAULT_SEED = 1
const DEFAULT_OVERLOAD_EVERY = 10

func DefaultConfig() *Config {
	return &Config{
		SelfTest: SelfTestConfig{
			Trials:        DEFAULT_TRIALS,
			Workers:       DEFAULT_WORKERS,
			Seed:          DEFAULT_SEED,
			OverloadEvery: DEFAULT_OVERLOAD_EVERY,
		},
	}
}

// LoadConfig reads a YAML file on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	var data, err = os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var c, parseErr = ParseConfig(data)
	if parseErr != nil {
		return nil, fmt.Errorf("config %s: %w", path, parseErr)
	}

	return c, nil
}

func ParseConfig(data []byte) (*Config, error) {
	var c = DefaultConfig()

	var unmarshallErr = yaml.Unmarshal(data, c)
	if unmarshallErr != nil {
		return nil, unmarshallErr
	}

	if validateErr := c.Validate(); validateErr != nil {
		return nil, validateErr
	}

	return c, nil
}

// Validate catches what can be caught before any blocks are seen.  Erasure
// positions are only checked against the largest possible block here; each
// line is checked properly by Decode.
func (c *Config) Validate() error {
	if len(c.Erasures) > NROOTS {
		return fmt.Errorf("%w: %d erasures, at most %d", ErrInputRange, len(c.Erasures), NROOTS)
	}

	for _, e := range c.Erasures {
		if e < 0 || e >= NN {
			return fmt.Errorf("%w: erasure position %d", ErrInputRange, e)
		}
	}

	if c.SelfTest.Trials < 0 {
		return fmt.Errorf("selftest trials must not be negative, got %d", c.SelfTest.Trials)
	}

	if c.SelfTest.Workers < 1 {
		return fmt.Errorf("selftest workers must be at least 1, got %d", c.SelfTest.Workers)
	}

	if c.SelfTest.OverloadEvery < 0 {
		return fmt.Errorf("selftest overload_every must not be negative, got %d", c.SelfTest.OverloadEvery)
	}

	return nil
}
