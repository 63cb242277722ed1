package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

// config is the configuration of the simulator.
type config struct {
	// LogLevel is one of the logrus level names.
	LogLevel string `toml:"log_level"`
	// LogFile receives the log output. Logs go to stderr when empty; the
	// run command discards them instead since stderr shares the terminal
	// with the emulated screen.
	LogFile string `toml:"log_file"`

	// Colors enables ANSI colors when rendering the text buffer.
	Colors bool `toml:"colors"`
	// RefreshMillis is the screen refresh interval.
	RefreshMillis int `toml:"refresh_ms"`
	// IdleSleepMillis is how long the kernel loop sleeps after a poll that
	// found no scancode.
	IdleSleepMillis int `toml:"idle_sleep_ms"`
	// KeyDelayMillis is the delay between queueing the scancodes of two
	// consecutive keystrokes.
	KeyDelayMillis int `toml:"key_delay_ms"`

	// BootMagic and BootInfo are handed to the kernel as the boot loader
	// arguments.
	BootMagic uint32 `toml:"boot_magic"`
	BootInfo  uint32 `toml:"boot_info"`
}

func defaultConfig() *config {
	return &config{
		LogLevel:        "info",
		Colors:          true,
		RefreshMillis:   33,
		IdleSleepMillis: 1,
		BootMagic:       0x2BADB002,
		BootInfo:        0x00010000,
	}
}

// loadConfig loads the simulator config from path on top of the defaults. An
// empty path returns the defaults.
func loadConfig(path string) (*config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}

	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, fmt.Errorf("decoding config %q: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return nil, fmt.Errorf("config %q: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}

	return c, nil
}

func (c *config) validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	switch {
	case c.RefreshMillis <= 0:
		return fmt.Errorf("refresh_ms must be positive, got %d", c.RefreshMillis)
	case c.IdleSleepMillis < 0:
		return fmt.Errorf("idle_sleep_ms must not be negative, got %d", c.IdleSleepMillis)
	case c.KeyDelayMillis < 0:
		return fmt.Errorf("key_delay_ms must not be negative, got %d", c.KeyDelayMillis)
	}

	return nil
}

func (c *config) refreshInterval() time.Duration {
	return time.Duration(c.RefreshMillis) * time.Millisecond
}

func (c *config) idleSleep() time.Duration {
	return time.Duration(c.IdleSleepMillis) * time.Millisecond
}

func (c *config) keyDelay() time.Duration {
	return time.Duration(c.KeyDelayMillis) * time.Millisecond
}

// newLogger returns a logger configured according to c. If fallback is nil
// and no log file is configured, the logger discards its output. The returned
// closer must be invoked once the logger is no longer needed.
func newLogger(c *config, fallback io.Writer) (*logrus.Logger, io.Closer, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	log := logrus.New()
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
	})

	switch {
	case c.LogFile != "":
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		log.SetOutput(f)
		return log, f, nil
	case fallback != nil:
		log.SetOutput(fallback)
	default:
		log.SetOutput(io.Discard)
	}

	return log, nopCloser{}, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
