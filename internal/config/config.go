// Package config loads hostsnap settings from a YAML file with
// environment overrides. Precedence is defaults, then file, then
// HOSTSNAP_* environment variables; command-line flags are applied on
// top by the caller.
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/nhdewitt/hostsnap/internal/netrate"
)

type Config struct {
	// IntervalSeconds is the refresh period. Zero means take one
	// snapshot and exit.
	IntervalSeconds float64 `yaml:"interval_seconds"`
	// NoClear suppresses screen clearing between refreshes.
	NoClear bool `yaml:"no_clear"`
	// DiskPath is the volume whose usage is reported.
	DiskPath string `yaml:"disk_path"`
	// CPUWindowSeconds and NetWindowSeconds size the two sampling
	// windows inside one snapshot.
	CPUWindowSeconds float64 `yaml:"cpu_window_seconds"`
	NetWindowSeconds float64 `yaml:"net_window_seconds"`
	// NoContainers disables the Docker probe.
	NoContainers bool `yaml:"no_containers"`
	// Uplink overrides the built-in interface exclusion table.
	Uplink UplinkConfig `yaml:"uplink"`
}

type UplinkConfig struct {
	Loopback        []string `yaml:"loopback"`
	VirtualPrefixes []string `yaml:"virtual_prefixes"`
}

func defaultConfig() *Config {
	return &Config{
		IntervalSeconds:  0,
		DiskPath:         defaultDiskPath(),
		CPUWindowSeconds: 1.0,
		NetWindowSeconds: 1.0,
	}
}

func defaultDiskPath() string {
	if runtime.GOOS == "windows" {
		return `C:\`
	}
	return "/"
}

// DefaultPath returns the config file location: $HOSTSNAP_CONFIG when
// set, otherwise ~/.config/hostsnap/config.yaml.
func DefaultPath() string {
	if p := os.Getenv("HOSTSNAP_CONFIG"); p != "" {
		return p
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "hostsnap", "config.yaml")
}

// Load reads the file at path over the defaults and applies environment
// overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.IntervalSeconds < 0 {
		cfg.IntervalSeconds = 0
	}
	if cfg.DiskPath == "" {
		cfg.DiskPath = defaultDiskPath()
	}
	if cfg.CPUWindowSeconds <= 0 {
		cfg.CPUWindowSeconds = 1.0
	}
	if cfg.NetWindowSeconds <= 0 {
		cfg.NetWindowSeconds = 1.0
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("HOSTSNAP_DISK"); v != "" {
		cfg.DiskPath = v
	}
	if v := os.Getenv("HOSTSNAP_INTERVAL"); v != "" {
		secs, err := strconv.ParseFloat(v, 64)
		if err != nil || secs < 0 {
			log.Printf("ignoring HOSTSNAP_INTERVAL=%q: not a non-negative number", v)
		} else {
			cfg.IntervalSeconds = secs
		}
	}
}

// Exclusions merges the uplink overrides with the built-in table. An
// explicit empty list in the file clears that part of the table; an
// absent key keeps the defaults.
func (c *Config) Exclusions() netrate.Exclusions {
	excl := netrate.DefaultExclusions()
	if c.Uplink.Loopback != nil {
		excl.Loopback = c.Uplink.Loopback
	}
	if c.Uplink.VirtualPrefixes != nil {
		excl.VirtualPrefixes = c.Uplink.VirtualPrefixes
	}
	return excl
}
