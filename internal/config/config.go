package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	EnvOutput   = "TAGWIRE_OUTPUT"
	EnvInput    = "TAGWIRE_INPUT"
	EnvLogLevel = "TAGWIRE_LOG_LEVEL"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config drives the tagwire command. Flags override file values, file
// values override the environment defaults.
type Config struct {
	Output       string `toml:"output"`    // text | json | yaml
	Input        string `toml:"input"`     // hex | raw
	LogLevel     string `toml:"log_level"` // trace | debug | info | warn | error | disabled
	Framed       bool   `toml:"framed"`
	MaxFrameSize int    `toml:"max_frame_size"`
}

func Default() Config {
	return Config{
		Output:       "text",
		Input:        "hex",
		LogLevel:     "warn",
		MaxFrameSize: 1 << 20,
	}
}

// Load reads the TOML file at path on top of the defaults and the
// environment. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	applyEnv(&cfg)
	if path != "" {
		if err := loadToml(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	cfg.Normalize()
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadToml(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvOutput)); v != "" {
		cfg.Output = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvInput)); v != "" {
		cfg.Input = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = v
	}
}

// Normalize lower-cases enumerated fields and fills zero values.
func (c *Config) Normalize() {
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	c.Input = strings.ToLower(strings.TrimSpace(c.Input))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.Output == "" {
		c.Output = "text"
	}
	if c.Input == "" {
		c.Input = "hex"
	}
	if c.MaxFrameSize == 0 {
		c.MaxFrameSize = Default().MaxFrameSize
	}
}

func Validate(c Config) error {
	switch c.Output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("%w: output %q (want text, json or yaml)", ErrInvalidConfig, c.Output)
	}
	switch c.Input {
	case "hex", "raw":
	default:
		return fmt.Errorf("%w: input %q (want hex or raw)", ErrInvalidConfig, c.Input)
	}
	if c.MaxFrameSize < 0 {
		return fmt.Errorf("%w: max_frame_size must be positive", ErrInvalidConfig)
	}
	return nil
}
