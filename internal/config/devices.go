package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DevicesConfig holds all named device profiles and tracks which one is
// active.
type DevicesConfig struct {
	Active  string            `toml:"active"`
	Devices map[string]Device `toml:"devices"`
}

// Device is a named serial-port profile.
type Device struct {
	Port string `toml:"port"`
	Baud int    `toml:"baud,omitempty"`
}

func deviceConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".local", "state", "rollcall")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(dir, "devices.toml"), nil
}

// LoadDevices reads the device-profile file, returning an empty config if
// it does not exist yet.
func LoadDevices() (DevicesConfig, error) {
	path, err := deviceConfigPath()
	if err != nil {
		return DevicesConfig{}, err
	}
	return loadDevicesFrom(path)
}

func loadDevicesFrom(path string) (DevicesConfig, error) {
	var cfg DevicesConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return DevicesConfig{Devices: map[string]Device{}}, nil
		}
		return DevicesConfig{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if cfg.Devices == nil {
		cfg.Devices = map[string]Device{}
	}
	return cfg, nil
}

// SaveDevices writes the device-profile file.
func SaveDevices(cfg DevicesConfig) error {
	path, err := deviceConfigPath()
	if err != nil {
		return err
	}
	return saveDevicesTo(path, cfg)
}

func saveDevicesTo(path string, cfg DevicesConfig) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}

// ActiveDevice resolves the active profile, if any.
func (c DevicesConfig) ActiveDevice() (Device, bool) {
	if c.Active == "" {
		return Device{}, false
	}
	d, ok := c.Devices[c.Active]
	return d, ok
}
