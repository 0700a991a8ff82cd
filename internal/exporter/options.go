// Package exporter turns a ledger into a CSV report and reads such reports back.
package exporter

import (
	"fmt"
	"unicode/utf8"
)

// Options controls the CSV dialect.
type Options struct {
	// Delimiter separates columns. Defaults to ','.
	Delimiter rune
	// QuoteAll wraps every text column in quotes. When false only notes are
	// always quoted; other columns are quoted when their content requires it.
	QuoteAll bool
}

// DefaultOptions returns comma-separated output with every text column quoted.
func DefaultOptions() Options {
	return Options{Delimiter: ',', QuoteAll: true}
}

// Validate reports whether the delimiter can be used unambiguously.
func (o Options) Validate() error {
	switch {
	case o.Delimiter == 0:
		return fmt.Errorf("csv delimiter must be set")
	case o.Delimiter == '"' || o.Delimiter == '\r' || o.Delimiter == '\n':
		return fmt.Errorf("csv delimiter %q is not allowed", o.Delimiter)
	case !utf8.ValidRune(o.Delimiter) || o.Delimiter == utf8.RuneError:
		return fmt.Errorf("csv delimiter is not a valid character")
	}
	return nil
}

func (o Options) withDefaults() Options {
	if o.Delimiter == 0 {
		o.Delimiter = ','
	}
	return o
}
