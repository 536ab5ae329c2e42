// Package report collects the run-wide counters lrattrim accumulates while
// parsing, trimming, and checking a proof, and renders them either as the
// human-readable summary lines printed at exit or as the optional
// '--stats-file' document.
//
// It is grounded on lrat-trim.c's single global 'struct statistics', which
// is threaded implicitly through every phase via static functions; here the
// same counters live on a Stats value that callers pass explicitly, the way
// sqldef's database.GeneratorConfig is built once and passed down instead of
// read from globals.
package report

import (
	"runtime"
	"syscall"
	"time"
)

// Counts mirrors one of the original's nested { added; deleted; } counter
// pairs.
type Counts struct {
	Added   uint64 `yaml:"added"`
	Deleted uint64 `yaml:"deleted"`
}

// Section mirrors the original's per-phase { cnf; proof; } grouping.
type Section struct {
	CNF   Counts `yaml:"cnf"`
	Proof Counts `yaml:"proof"`
}

// Checked mirrors the original's statistics.clauses.checked.
type Checked struct {
	Total uint64 `yaml:"total"`
	Empty uint64 `yaml:"empty"`
}

// Stats is the full counter set for one run.
type Stats struct {
	Original Section `yaml:"original"`
	Trimmed  Section `yaml:"trimmed"`

	Clauses struct {
		Checked  Checked `yaml:"checked"`
		Resolved uint64  `yaml:"resolved"`
	} `yaml:"clauses"`

	Literals struct {
		Assigned uint64 `yaml:"assigned"`
	} `yaml:"literals"`

	StartedAt time.Time     `yaml:"-"`
	Duration  time.Duration `yaml:"duration"`
	PeakRSS   uint64        `yaml:"peak_rss_bytes"`
}

// New returns a Stats with its clock started.
func New() *Stats {
	return &Stats{StartedAt: time.Now()}
}

// Finish stamps the elapsed duration and peak resident set size, the way
// the original samples process_time() and getrusage() just before exit.
func (s *Stats) Finish() {
	s.Duration = time.Since(s.StartedAt)
	s.PeakRSS = peakRSS()
}

func peakRSS() uint64 {
	var ru syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	if runtime.GOOS == "darwin" {
		return uint64(ru.Maxrss)
	}
	return uint64(ru.Maxrss) << 10
}

// Average returns a/b, or 0 if b is zero, matching the original's average.
func Average(a, b uint64) float64 {
	if b == 0 {
		return 0
	}
	return float64(a) / float64(b)
}

// Percent returns 100*a/b, or 0 if b is zero, matching the original's
// percent.
func Percent(a, b uint64) float64 {
	return Average(100*a, b)
}

// MegaBytes converts a byte count to the fractional megabyte figure used in
// memory-usage log lines.
func MegaBytes(bytes uint64) float64 {
	return float64(bytes) / float64(1<<20)
}
