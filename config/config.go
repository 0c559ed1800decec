// Package config loads optional settings for mobiletouch from an INI or TOML
// file. Every value has a default, so running without a file is the norm.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/ini.v1"
)

const (
	DefaultSampleRate    = 1000
	DefaultListenAddress = "localhost:12000"
)

type Config struct {
	Device  DeviceConfig  `ini:"device" toml:"device"`
	Gesture GestureConfig `ini:"gesture" toml:"gesture"`
	Server  ServerConfig  `ini:"server" toml:"server"`
	Log     LogConfig     `ini:"log" toml:"log"`
}

type DeviceConfig struct {
	// Path skips scanning and uses this node directly.
	Path            string `ini:"path" toml:"path"`
	PathPattern     string `ini:"path_pattern" toml:"path_pattern"`
	Candidates      int    `ini:"candidates" toml:"candidates"`
	RequirePressure bool   `ini:"require_pressure" toml:"require_pressure"`
}

type GestureConfig struct {
	// SampleRate caps move batches per second.
	SampleRate int `ini:"sample_rate" toml:"sample_rate"`
}

type ServerConfig struct {
	Listen         string `ini:"listen" toml:"listen"`
	CORS           bool   `ini:"cors" toml:"cors"`
	ProbeCacheSize int    `ini:"probe_cache_size" toml:"probe_cache_size"`
	WatchDevices   bool   `ini:"watch_devices" toml:"watch_devices"`
}

type LogConfig struct {
	Level string `ini:"level" toml:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		Device: DeviceConfig{
			PathPattern: "/dev/input/event%d",
			Candidates:  128,
		},
		Gesture: GestureConfig{
			SampleRate: DefaultSampleRate,
		},
		Server: ServerConfig{
			Listen:         DefaultListenAddress,
			ProbeCacheSize: 8,
			WatchDevices:   true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads path on top of the defaults. Files ending in .toml are parsed as
// TOML; anything else is treated as INI.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err = toml.DecodeFile(path, cfg)
	default:
		err = loadINI(path, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

func loadINI(path string, cfg *Config) error {
	file, err := ini.Load(path)
	if err != nil {
		return err
	}
	return file.MapTo(cfg)
}

func (c *Config) Validate() error {
	if c.Gesture.SampleRate <= 0 {
		return fmt.Errorf("gesture.sample_rate must be positive, got %d", c.Gesture.SampleRate)
	}
	if c.Device.Candidates < 0 {
		return fmt.Errorf("device.candidates must not be negative, got %d", c.Device.Candidates)
	}
	if c.Device.Path == "" && !strings.Contains(c.Device.PathPattern, "%d") {
		return fmt.Errorf("device.path_pattern must contain %%d, got %q", c.Device.PathPattern)
	}
	return nil
}
