package configs

import (
	"io"
	"log/slog"
	"strings"
)

// Logger configures the slog logger both binaries write to stdout.
type Logger struct {
	// Level is one of debug, info, warn or error. Offsets such as "warn+2"
	// are accepted; anything unparsable means info.
	Level string `env:"LEVEL" envDefault:"info"`
	// Format is "text" or "json". Any other value means text.
	Format string `env:"FORMAT" envDefault:"text"`
}

// SlogLevel parses Level. "warning" and "err" are accepted as aliases.
func (c Logger) SlogLevel() slog.Level {
	name := strings.ToLower(strings.TrimSpace(c.Level))
	switch name {
	case "warning":
		name = "warn"
	case "err":
		name = "error"
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// SlogFormat returns "json" or "text".
func (c Logger) SlogFormat() string {
	if strings.EqualFold(strings.TrimSpace(c.Format), "json") {
		return "json"
	}
	return "text"
}

// New builds a logger writing to w with the configured level and format.
func (c Logger) New(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if c.SlogFormat() == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
