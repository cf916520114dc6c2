package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured logs for batch and cluster runs.
	FormatJSON Format = "json"
	// FormatText outputs human-readable logs for interactive use.
	FormatText Format = "text"
)

// Option configures logger creation.
type Option func(*config)

func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithFormat sets output format. Panics for unknown formats so a misconfigured
// run fails at startup rather than mid-simulation.
func WithFormat(f Format) Option {
	return func(c *config) {
		switch f {
		case FormatJSON, FormatText:
			c.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

// WithOutput sets a custom output destination, ignoring nil writers.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds static attributes to every log record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		if len(attrs) > 0 {
			c.attrs = append(c.attrs, attrs...)
		}
	}
}

// WithInteractive configures defaults for interactive runs: text format and
// debug level on stdout, tagged with the tool name.
func WithInteractive(tool string) Option {
	return func(c *config) {
		if tool == "" {
			return
		}
		c.level = slog.LevelDebug
		c.format = FormatText
		c.attrs = append(c.attrs, slog.String("tool", tool))
	}
}

// WithBatch configures defaults for unattended runs: JSON format and info
// level, tagged with the tool name.
func WithBatch(tool string) Option {
	return func(c *config) {
		if tool == "" {
			return
		}
		c.level = slog.LevelInfo
		c.format = FormatJSON
		c.attrs = append(c.attrs, slog.String("tool", tool))
	}
}

func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

type config struct {
	level  slog.Level
	format Format
	output io.Writer
	attrs  []slog.Attr
}

func defaultConfig() *config {
	return &config{
		level:  slog.LevelInfo,
		format: FormatText,
		output: os.Stderr,
	}
}

// New creates a configured slog.Logger. The result is suitable both as the
// process default and as the checkval diagnostic sink.
func New(opts ...Option) *slog.Logger {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}

	var handler slog.Handler
	if cfg.format == FormatJSON {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	}

	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}

	return slog.New(handler)
}
