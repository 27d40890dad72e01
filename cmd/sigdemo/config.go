package main

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config drives the demo. Sources are layered in order: built-in defaults,
// the config file, SIGDEMO_* environment variables, then flags.
type Config struct {
	Run struct {
		Ticks    int           `koanf:"ticks"`
		Interval time.Duration `koanf:"interval"`
	} `koanf:"run"`
	Sample struct {
		Amplitude float64 `koanf:"amplitude"`
		Jitter    float64 `koanf:"jitter"`
		Seed      int64   `koanf:"seed"`
	} `koanf:"sample"`
	Limits struct {
		Enabled bool    `koanf:"enabled"`
		Low     float64 `koanf:"low"`
		High    float64 `koanf:"high"`
	} `koanf:"limits"`
}

// tomlView lays the config out for TOML rendering, with durations in their string form.
func (c *Config) tomlView() map[string]any {
	return map[string]any{
		"run": map[string]any{
			"ticks":    c.Run.Ticks,
			"interval": c.Run.Interval.String(),
		},
		"sample": map[string]any{
			"amplitude": c.Sample.Amplitude,
			"jitter":    c.Sample.Jitter,
			"seed":      c.Sample.Seed,
		},
		"limits": map[string]any{
			"enabled": c.Limits.Enabled,
			"low":     c.Limits.Low,
			"high":    c.Limits.High,
		},
	}
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, fmt.Errorf("not implemented")
}

func defaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "sigdemo", "config.toml")
}

// loadConfig layers the configuration sources onto the built-in defaults.
// An explicitly given path must exist; the default path is only loaded when present.
func loadConfig(path string) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{defaultConfig}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("failed to read config from %s: %w", path, err)
	}

	err := k.Load(env.Provider("SIGDEMO_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "SIGDEMO_")), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment overrides: %w", err)
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if cfg.Limits.Enabled && cfg.Limits.Low > cfg.Limits.High {
		return nil, fmt.Errorf("limits.low %g is greater than limits.high %g", cfg.Limits.Low, cfg.Limits.High)
	}
	return &cfg, nil
}
