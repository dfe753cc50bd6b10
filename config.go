package satisfy

import (
	"fmt"
	"io"

	"github.com/kr/pretty"
)

// Logger isolates the solver's debug output behind a small interface so the
// core never writes to stdout/stderr directly. The zero value of Config
// uses a no-op logger.
type Logger interface {
	Debugf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}

// NopLogger discards all debug output. It is the default logger used by
// DefaultConfig.
var NopLogger Logger = nopLogger{}

// PrettyLogger renders debug output with github.com/kr/pretty. Callers opt
// in per-solve by setting Config.Logger rather than through a global flag.
type PrettyLogger struct {
	W io.Writer
}

// NewPrettyLogger returns a Logger that writes formatted debug lines to w.
func NewPrettyLogger(w io.Writer) *PrettyLogger {
	return &PrettyLogger{W: w}
}

func (p *PrettyLogger) Debugf(format string, args ...interface{}) {
	expanded := make([]interface{}, len(args))
	for i, a := range args {
		expanded[i] = pretty.Formatter(a)
	}
	fmt.Fprintf(p.W, format+"\n", expanded...)
}

// Deadline is a cooperative cancellation token. The solver polls Expired at
// two points only: immediately after conflict analysis and immediately
// after a restart. No other suspension points exist in the CDCL loop.
type Deadline interface {
	Expired() bool
}

// Config collects every parameter the solver entry points recognize.
type Config struct {
	UseTseitin       bool
	UseSubsumption   bool
	UseRestart       bool
	RestartThreshold int     // conflicts between restarts; must be >= 1
	VSIDSDecay       float64 // in (0, 1)
	VSIDSBump        float64 // > 0
	Deadline         Deadline
	Logger           Logger
}

// DefaultConfig returns a Config with Tseitin, subsumption, and restarts
// all enabled, and conservative VSIDS/restart tunables.
func DefaultConfig() Config {
	return Config{
		UseTseitin:       true,
		UseSubsumption:   true,
		UseRestart:       true,
		RestartThreshold: 5,
		VSIDSDecay:       0.95,
		VSIDSBump:        1.0,
		Deadline:         nil,
		Logger:           NopLogger,
	}
}

func (c Config) logger() Logger {
	if c.Logger == nil {
		return NopLogger
	}
	return c.Logger
}

func (c Config) expired() bool {
	return c.Deadline != nil && c.Deadline.Expired()
}

func (c *Config) validate() error {
	if c.RestartThreshold < 1 {
		return fmt.Errorf("satisfy: RestartThreshold must be >= 1, got %d", c.RestartThreshold)
	}
	if c.VSIDSDecay <= 0 || c.VSIDSDecay >= 1 {
		return fmt.Errorf("satisfy: VSIDSDecay must be in (0,1), got %v", c.VSIDSDecay)
	}
	if c.VSIDSBump <= 0 {
		return fmt.Errorf("satisfy: VSIDSBump must be > 0, got %v", c.VSIDSBump)
	}
	return nil
}
