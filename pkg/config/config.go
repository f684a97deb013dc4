// Package config persists benchmark settings in a YAML file in the user's
// home directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mmangkad/dns-benchmark/pkg/dnsbench"
)

const (
	configDir  = ".dns-benchmark"
	configFile = "config.yaml"
)

// Config holds every persistable benchmark setting. Zero values mean "not
// set" and fall back to the defaults on load.
type Config struct {
	// Domain to resolve on every request.
	Domain string `yaml:"domain"`

	// Workers bounds how many servers are probed concurrently.
	Workers int `yaml:"workers"`

	// Requests per server.
	Requests int `yaml:"requests"`

	// Timeout of a single request, in seconds.
	Timeout int `yaml:"timeout"`

	// Protocol is the DNS transport, udp or tcp.
	Protocol string `yaml:"protocol"`

	// NameServerIP selects the IP version of the probed servers, v4 or v6.
	NameServerIP string `yaml:"name-server-ip"`

	// LookupIP selects the record type of the lookups, v4 (A) or v6 (AAAA).
	LookupIP string `yaml:"lookup-ip"`

	// Format of the rendered result, table, json, xml or csv.
	Format string `yaml:"format"`

	// CustomServers is a path to a file with additional servers to probe.
	CustomServers string `yaml:"custom-servers,omitempty"`

	SkipSystem             bool `yaml:"skip-system"`
	SkipGateway            bool `yaml:"skip-gateway"`
	DisableAdaptiveTimeout bool `yaml:"disable-adaptive-timeout"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Domain:       dnsbench.DefaultDomain,
		Workers:      dnsbench.DefaultWorkers,
		Requests:     dnsbench.DefaultRequests,
		Timeout:      int(dnsbench.DefaultTimeout.Seconds()),
		Protocol:     string(dnsbench.UDPTransport),
		NameServerIP: "v4",
		LookupIP:     "v4",
		Format:       "table",
	}
}

// Path returns the location of the configuration file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, configDir, configFile), nil
}

// Exists reports whether a configuration file is present.
func Exists() (bool, error) {
	path, err := Path()
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	return err == nil, err
}

// Load reads the configuration file. An error is returned when the file does
// not exist.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Config{}, err
	}
	return LoadFrom(path)
}

// LoadFrom reads a configuration file from the given path.
func LoadFrom(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config '%s': %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config '%s': %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault reads the configuration file, falling back to the defaults
// when it is missing or unreadable.
func LoadOrDefault() Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Save writes the configuration to its default path, creating the directory
// if needed.
func (c Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the configuration to the given path, creating parent
// directories if needed.
func (c Config) SaveTo(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory '%s': %w", dir, err)
		}
	}

	content, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write config '%s': %w", path, err)
	}
	return nil
}

// Delete removes the configuration file. Deleting a missing file is not an
// error.
func Delete() error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete config '%s': %w", path, err)
	}
	return nil
}
