// Package logutil adapts sqldef's slog bootstrap (util/logutil.go) and its
// Logger interface (database/logger.go) into the status printer lrattrim
// writes its wire-protocol comment lines through, plus a separate internal
// diagnostic logger for development builds.
//
// The wire protocol (lines prefixed 'c ', 'c WARNING ', and the terminal
// 's VERIFIED') is distinct from internal diagnostics: the former is part
// of the tool's observable output and is gated only by verbosity, the
// latter is gated by the LRATTRIM_LOG_LEVEL environment variable and the
// '--log' flag (see InitSlog); there is no build tag.
package logutil

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/k0kubun/pp/v3"
	"golang.org/x/term"
)

// Verbosity selects which status lines Printer emits, matching the
// original's three-level 'verbosity' global.
type Verbosity int

const (
	// Quiet suppresses every status and warning line.
	Quiet Verbosity = -1
	// Normal prints msg and wrn lines but not vrb lines.
	Normal Verbosity = 0
	// Verbose additionally prints vrb lines.
	Verbose Verbosity = 1
)

// Printer writes the 'c '-prefixed status protocol to an output stream.
type Printer struct {
	out     io.Writer
	level   Verbosity
	colorOK bool
}

// NewPrinter returns a Printer writing to out at the given verbosity level.
// Warnings are colorized only when out is a terminal, the way sqldef's CLI
// output checks golang.org/x/term before decorating anything.
func NewPrinter(out io.Writer, level Verbosity) *Printer {
	colorOK := false
	if f, ok := out.(*os.File); ok {
		colorOK = term.IsTerminal(int(f.Fd()))
	}
	return &Printer{out: out, level: level, colorOK: colorOK}
}

// Msg prints a status line when verbosity is at least Normal.
func (p *Printer) Msg(format string, args ...any) {
	if p.level < Normal {
		return
	}
	fmt.Fprintf(p.out, "c %s\n", fmt.Sprintf(format, args...))
}

// Vrb prints a status line only at Verbose verbosity.
func (p *Printer) Vrb(format string, args ...any) {
	if p.level < Verbose {
		return
	}
	fmt.Fprintf(p.out, "c %s\n", fmt.Sprintf(format, args...))
}

// Wrn prints a warning line when verbosity is at least Normal, colorized
// yellow when writing to a terminal.
func (p *Printer) Wrn(format string, args ...any) {
	if p.level < Normal {
		return
	}
	text := fmt.Sprintf(format, args...)
	if p.colorOK {
		fmt.Fprintf(p.out, "c \x1b[33mWARNING %s\x1b[0m\n", text)
	} else {
		fmt.Fprintf(p.out, "c WARNING %s\n", text)
	}
}

// Verified prints the terminal 's VERIFIED' line unconditionally, as the
// original does regardless of verbosity.
func (p *Printer) Verified() {
	fmt.Fprintln(p.out, "s VERIFIED")
}

// Dump pretty-prints v as a 'c '-prefixed structured record, the way
// database/mysql/parser.go reaches for pp.Println instead of a hand-rolled
// '%+v' dump. Only meant for the internal diagnostics '--log' unlocks, so it
// is gated at Verbose the same as Vrb.
func (p *Printer) Dump(label string, v any) {
	if p.level < Verbose {
		return
	}
	fmt.Fprintf(p.out, "c %s: %s\n", label, pp.Sprint(v))
}

// Banner prints the two-line startup banner when not Quiet.
func (p *Printer) Banner(version string) {
	if p.level < Normal {
		return
	}
	fmt.Fprintf(p.out, "c LRAT-TRIM Version %s trims LRAT proofs\n", version)
	fmt.Fprintln(p.out, "c Go reimplementation after the original by Armin Biere, University of Freiburg")
}

// InitSlog configures the default internal diagnostic logger from the
// LRATTRIM_LOG_LEVEL environment variable, mirroring sqldef's LOG_LEVEL
// bootstrap. This logger is for development tracing of the tool itself
// (allocation sizes, phase timings) and never touches the wire protocol
// Printer owns. forceDebug raises the level to debug regardless of the
// environment, the way '--log' forces the original's '#ifdef LOGGING'
// diagnostics on for a single run without needing an env var.
func InitSlog(forceDebug bool) {
	level := slog.LevelWarn
	if raw, ok := os.LookupEnv("LRATTRIM_LOG_LEVEL"); ok {
		switch raw {
		case "debug":
			level = slog.LevelDebug
		case "info":
			level = slog.LevelInfo
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
	}
	if forceDebug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
