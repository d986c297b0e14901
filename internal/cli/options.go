// SPDX-License-Identifier: MIT

// Package cli implements the dynmat command tree: an interactive and
// scripting harness over the vector and matrix packages.
package cli

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/dynmat/vector"
)

// ---------- Defaults ----------

const (
	// EnvLogLevel provides the default for --log-level.
	EnvLogLevel = "DYNMAT_LOG_LEVEL"

	defaultLogLevel = "warning"
	defaultType     = typeFloat64

	typeInt64   = "int64"
	typeFloat64 = "float64"
)

// Options holds the global flags and the process streams shared by every
// subcommand.
type Options struct {
	LogLevel string
	Type     string
	Verb     string
	Input    string

	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	log *logrus.Logger
}

// NewOptions returns Options bound to the given streams with defaults
// applied. The log level default is taken from $DYNMAT_LOG_LEVEL when set.
func NewOptions(in io.Reader, out, errOut io.Writer) *Options {
	level := defaultLogLevel
	if env := os.Getenv(EnvLogLevel); env != "" {
		level = env
	}

	return &Options{
		LogLevel: level,
		Type:     defaultType,
		Verb:     vector.DefaultVerb,
		In:       in,
		Out:      out,
		ErrOut:   errOut,
	}
}

// Complete validates the flags and builds the logger.
func (o *Options) Complete() error {
	level, err := logrus.ParseLevel(o.LogLevel)
	if err != nil {
		return errors.Wrapf(err, "invalid --log-level %q", o.LogLevel)
	}
	switch o.Type {
	case typeInt64, typeFloat64:
	default:
		return errors.Errorf("invalid --type %q (want %s or %s)", o.Type, typeInt64, typeFloat64)
	}
	if err := validVerb(o.Verb); err != nil {
		return err
	}

	o.log = logrus.New()
	o.log.SetOutput(o.ErrOut)
	o.log.SetLevel(level)
	o.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return nil
}

// validVerb turns the WithVerb panic into a flag error.
func validVerb(verb string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("invalid --verb %q: %v", verb, r)
		}
	}()
	_ = vector.WithVerb(verb)

	return nil
}

// Logger returns the configured logger (a discarding one before Complete).
func (o *Options) Logger() *logrus.Logger {
	if o.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		return l
	}

	return o.log
}

// openInput returns the operand stream: --input file when set, otherwise In.
// The returned close func is always non-nil.
func (o *Options) openInput() (vector.ScanReader, func() error, error) {
	if o.Input == "" || o.Input == "-" {
		return vector.NewScanReader(o.In), func() error { return nil }, nil
	}
	f, err := os.Open(o.Input)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open --input")
	}

	return vector.NewScanReader(f), f.Close, nil
}

// writeOptions maps the global flags onto vector writer options.
func (o *Options) writeOptions() []vector.WriteOption {
	return []vector.WriteOption{vector.WithVerb(o.Verb)}
}
