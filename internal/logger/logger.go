package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

var (
	mu   sync.RWMutex
	base = zerolog.New(os.Stdout).With().Timestamp().Logger()
)

type options struct {
	output  io.Writer
	format  string
	service string
}

// Option tweaks Init.
type Option func(*options)

// WithOutput redirects log output (tests use io.Discard or a buffer).
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.output = w }
}

// WithFormat selects "json" (default) or "console".
func WithFormat(format string) Option {
	return func(o *options) { o.format = format }
}

// WithService stamps every record with a service field.
func WithService(name string) Option {
	return func(o *options) { o.service = name }
}

// Init builds the process logger at the given level.
func Init(level string, opts ...Option) {
	o := options{output: os.Stdout, format: FormatJSON}
	for _, opt := range opts {
		opt(&o)
	}

	out := o.output
	if strings.EqualFold(o.format, FormatConsole) {
		out = zerolog.ConsoleWriter{Out: o.output, TimeFormat: "15:04:05"}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	ctx := zerolog.New(out).With().Timestamp()
	if o.service != "" {
		ctx = ctx.Str("service", o.service)
	}
	l := ctx.Logger()

	mu.Lock()
	base = l
	zerolog.DefaultContextLogger = &base
	mu.Unlock()

	SetLevel(level)
}

// ParseLevel maps a flag value to a zerolog level, defaulting to info.
func ParseLevel(value string) zerolog.Level {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return zerolog.InfoLevel
	}
	if v == "warning" {
		v = "warn"
	}
	lvl, err := zerolog.ParseLevel(v)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// SetLevel changes the global level; safe to call while serving.
func SetLevel(level string) {
	zerolog.SetGlobalLevel(ParseLevel(level))
}

func GetLevel() string {
	return zerolog.GlobalLevel().String()
}

// L returns the process logger.
func L() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := base
	return &l
}

// FromContext returns the request-scoped logger, or the process logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return L()
	}
	if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
		return l
	}
	return L()
}

// WithFields attaches fields to the logger carried by ctx.
func WithFields(ctx context.Context, fields map[string]any) context.Context {
	l := FromContext(ctx).With().Fields(fields).Logger()
	return l.WithContext(ctx)
}

func Debugf(format string, args ...any) { L().Debug().Msgf(format, args...) }
func Infof(format string, args ...any)  { L().Info().Msgf(format, args...) }
func Warnf(format string, args ...any)  { L().Warn().Msgf(format, args...) }
func Errorf(format string, args ...any) { L().Error().Msgf(format, args...) }
