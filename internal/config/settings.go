package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Settings are the runtime options of the CLI and the feed server. Flags
// override them.
type Settings struct {
	Zone     string `koanf:"zone"`
	Zones    string `koanf:"zones"`
	Layout   string `koanf:"layout"`
	Lang     string `koanf:"lang"`
	Port     string `koanf:"port"`
	LogLevel string `koanf:"log_level"`
}

// DefaultSettings returns the compiled defaults.
func DefaultSettings() *Settings {
	return &Settings{
		Zone:     DefaultZone,
		Layout:   DefaultLayout,
		Lang:     DefaultLanguage,
		Port:     DefaultPort,
		LogLevel: DefaultLogLevel,
	}
}

// LoadSettings applies DTCLOCK_* environment variables over the defaults
// and validates the result.
func LoadSettings() (*Settings, error) {
	k := koanf.New(".")
	s := DefaultSettings()

	err := k.Load(env.Provider(EnvPrefix, ".", func(key string) string {
		return strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrSettings, err)
	}
	if err := k.Unmarshal("", s); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrSettings, err)
	}
	if err := ValidatePort(s.Port); err != nil {
		return nil, err
	}
	return s, nil
}

// ValidatePort checks that port is a TCP port number.
func ValidatePort(port string) error {
	if port == "" {
		return errors.New(ErrPortRequired)
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrPortNumber, err)
	}
	if n < MinPort || n > MaxPort {
		return errors.New(ErrPortRange)
	}
	return nil
}

// Level returns the slog level named by LogLevel, or Info when it is not
// a level name.
func (s *Settings) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}
