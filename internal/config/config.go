package config

import (
	"errors"
	"fmt"
	"hash/maphash"
	"io/fs"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vancomm/minesweeper/internal/journal"
	"github.com/vancomm/minesweeper/internal/session"
)

type Config struct {
	Development    bool             `yaml:"development"`
	Addr           string           `yaml:"addr"`
	BasePath       string           `yaml:"base_path"`
	AllowedOrigins []string         `yaml:"allowed_origins"`
	Seed           uint64           `yaml:"seed"`
	Journal        journal.Config   `yaml:"journal"`
	Presets        []session.Preset `yaml:"presets"`

	sources atomic.Uint64 // sources handed out by Rand
}

func Default() *Config {
	return &Config{
		Addr:    ":8080",
		Presets: session.DefaultPresets(),
	}
}

// LoadDotEnv loads a .env file from the working directory if there is one.
func LoadDotEnv() error {
	err := godotenv.Load()
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Load builds the configuration from defaults, the YAML file at path (if path
// is not empty) and finally the environment.
func Load(path string) (*Config, error) {
	c := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("unable to parse config %s: %w", path, err)
		}
	}
	if err := c.loadEnv(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) loadEnv() error {
	if development, ok := os.LookupEnv("DEVELOPMENT"); ok {
		c.Development = development != "0"
	}
	if port, ok := os.LookupEnv("APP_PORT"); ok {
		c.Addr = port
	}
	if basePath, ok := os.LookupEnv("APP_BASE_PATH"); ok {
		c.BasePath = basePath
	}
	if origins, ok := os.LookupEnv("APP_ALLOWED_ORIGINS"); ok {
		c.AllowedOrigins = nil
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				c.AllowedOrigins = append(c.AllowedOrigins, origin)
			}
		}
	}
	if seedStr, ok := os.LookupEnv("MINES_SEED"); ok {
		seed, err := strconv.ParseUint(seedStr, 10, 64)
		if err != nil {
			return fmt.Errorf("unable to parse MINES_SEED: %w", err)
		}
		c.Seed = seed
	}
	if file, ok := os.LookupEnv("MINES_JOURNAL_FILE"); ok {
		c.Journal.File = file
	}
	return nil
}

func (c *Config) Validate() error {
	if len(c.Presets) == 0 {
		return fmt.Errorf("no board presets configured")
	}
	for _, p := range c.Presets {
		if p.Name == "" {
			return fmt.Errorf("preset without a name")
		}
		if err := p.Params().Validate(); err != nil {
			return fmt.Errorf("preset %s: %w", p.Name, err)
		}
	}
	return nil
}

// Rand returns a new source to deal boards from. With a seed configured the
// n-th source is the same on every run, and no two sources share a stream.
func (c *Config) Rand() *rand.Rand {
	if c.Seed != 0 {
		n := c.sources.Add(1) - 1
		return rand.New(rand.NewPCG(c.Seed, c.Seed+n))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}
