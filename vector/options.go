// SPDX-License-Identifier: MIT

// Package vector: functional configuration for the textual writer.
//
// Design goals:
//   - Deterministic output: defaults reproduce the canonical format
//     (default fmt representation, single space between elements).
//   - Safe by construction: WithX panics only on nonsensical values
//     (programmer error), never on data.
package vector

import "strings"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultVerb is the fmt verb used for every element.
	DefaultVerb = "%v"

	// DefaultSeparator separates consecutive elements on one line.
	DefaultSeparator = " "
)

// ---------- Internal panic messages ----------

const (
	panicVerbInvalid      = "vector: WithVerb: verb must start with '%' and contain exactly one verb"
	panicSeparatorInvalid = "vector: WithSeparator: separator must be non-empty and contain no newline"
)

// WriteOption mutates writer options. Safe to apply repeatedly.
type WriteOption func(*WriteOptions)

// WriteOptions holds the resolved writer configuration.
// Fields are unexported; build it with NewWriteOptions.
type WriteOptions struct {
	verb string
	sep  string
}

// WithVerb sets the fmt verb used per element, e.g. "%g" or "%.3f".
// Panics if verb is not a single fmt directive.
func WithVerb(verb string) WriteOption {
	if !strings.HasPrefix(verb, "%") || strings.Count(verb, "%") != 1 || len(verb) < 2 {
		panic(panicVerbInvalid)
	}

	return func(o *WriteOptions) { o.verb = verb }
}

// WithSeparator sets the element separator. A newline would break the
// one-row-per-line matrix format, so it is rejected.
func WithSeparator(sep string) WriteOption {
	if sep == "" || strings.ContainsAny(sep, "\r\n") {
		panic(panicSeparatorInvalid)
	}

	return func(o *WriteOptions) { o.sep = sep }
}

// NewWriteOptions resolves opts over the defaults. Nil options are skipped.
func NewWriteOptions(opts ...WriteOption) WriteOptions {
	o := WriteOptions{verb: DefaultVerb, sep: DefaultSeparator}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Verb returns the resolved element verb.
func (o WriteOptions) Verb() string { return o.verb }

// Separator returns the resolved element separator.
func (o WriteOptions) Separator() string { return o.sep }
