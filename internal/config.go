package internal

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the settings of a runtime. The zero Config is not valid; start
// from DefaultConfig.
type Config struct {
	Heap    HeapConfig    `toml:"heap"`
	Console ConsoleConfig `toml:"console"`
	Log     LogConfig     `toml:"log"`
}

// HeapConfig configures allocation.
type HeapConfig struct {
	// Limit is the total size of the arrays and records a program may
	// allocate, in bytes of WordSize-byte words. This is the size compiled
	// code sees, not the memory the Go runtime uses for the blocks, which
	// is larger. Zero means unlimited.
	Limit int64 `toml:"limit"`
}

// ConsoleConfig configures standard input and output.
type ConsoleConfig struct {
	// Buffer is the size of the input and output buffers.
	Buffer int `toml:"buffer"`
	// Flush is the name of a FlushMode: "auto", "line", or "never".
	Flush string `toml:"flush"`
}

// LogConfig configures the runtime's logger.
type LogConfig struct {
	// Verbosity is the commonlog verbosity. Zero logs only errors and
	// above; each increment admits one more level.
	Verbosity int `toml:"verbosity"`
	// Path is a file to log to. Empty means standard error.
	Path string `toml:"path"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Console: ConsoleConfig{Buffer: 4096, Flush: FlushAuto.String()},
	}
}

// LoadConfig reads a TOML configuration file. Settings absent from the file
// keep their default values. Unknown settings are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse error in %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// ParseConfig parses TOML configuration text, as LoadConfig does for files.
func ParseConfig(text string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse error: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return fmt.Errorf("unknown settings: %s", strings.Join(names, ", "))
}

// Validate checks that the configuration's values are usable.
func (c Config) Validate() error {
	if c.Heap.Limit < 0 {
		return fmt.Errorf("heap limit must not be negative, have %d", c.Heap.Limit)
	}
	if c.Console.Buffer < 0 {
		return fmt.Errorf("console buffer size must not be negative, have %d", c.Console.Buffer)
	}
	if _, err := ParseFlushMode(c.Console.Flush); err != nil {
		return err
	}
	return nil
}

// FlushMode returns the configured console flush mode, or FlushAuto if the
// setting is invalid.
func (c Config) FlushMode() FlushMode {
	m, _ := ParseFlushMode(c.Console.Flush)
	return m
}
