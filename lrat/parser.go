// Package lrat parses and emits LRAT proof files: addition lines that
// install a clause's literals and antecedents, and deletion lines that
// retire clauses no longer needed.
//
// The parser is grounded on lrat-trim.c's parse_proof. Two structural
// rules come straight from there: line identifiers are non-decreasing
// across the whole file, and the very first addition line, when no CNF
// was supplied, implicitly promotes every lower identifier to Present
// (the proof is then its own original formula). Antecedent and literal
// retention follows the accepted reading of spec.md's resolution of the
// original's forward/trim interaction: antecedents are kept whenever
// trimming is enabled even in forward mode, and literals are freed on
// deletion exactly when no later stage needs them (no trimming, so
// neither a backward check nor the emitter will read them).
package lrat

import (
	"github.com/lrat-tools/lrattrim/check"
	"github.com/lrat-tools/lrattrim/clause"
	"github.com/lrat-tools/lrattrim/container"
	"github.com/lrat-tools/lrattrim/ioline"
	"github.com/lrat-tools/lrattrim/report"
)

// ParseOptions selects which side effects Parse performs per line, set by
// the CLI from its resolved checking/forward/trimming configuration.
type ParseOptions struct {
	Track    bool
	Checking bool
	Forward  bool
	Trimming bool
}

// ParseResult summarizes a completed parse.
type ParseResult struct {
	Added   int64
	Deleted int64
}

// Parse reads an LRAT proof from r, applying it to store. checker must be
// non-nil when opts.Checking && opts.Forward. It returns *ioline.ParseError
// for grammar violations and *check.Error when forward checking rejects a
// clause.
func Parse(r *ioline.Reader, store *clause.Store, stats *report.Stats, checker *check.State, opts ParseOptions) (ParseResult, error) {
	var lastID int32
	var result ParseResult
	var pendingLiterals container.Stack[int32]
	var pendingAntecedents container.Stack[int32]

	ch, err := r.ReadFirstChar()
	if err != nil {
		return result, err
	}
	first := true
	for ch != ioline.EOF {
		if !ioline.IsDigit(ch) {
			if first && (ch == 'c' || ch == 'p') {
				return result, r.Errorf("unexpected '%c' as first character: did you use a CNF instead of a proof file?", ch)
			}
			return result, r.Errorf("expected digit as first character of line")
		}
		first = false
		line := r.Lines() + 1

		id, ch2, err := r.ScanUnsignedNoLeadingZero(ch, "unexpected digit '%c' after '0'")
		if err != nil {
			return result, err
		}
		ch = ch2
		if ch != ' ' {
			return result, r.Errorf("expected space after identifier '%d'", id)
		}
		if id < lastID {
			return result, r.Errorf("identifier '%d' smaller than last '%d'", id, lastID)
		}
		store.Grow(id)

		if ch, err = r.ReadChar(); err != nil {
			return result, err
		}
		if ch == 'd' {
			if ch, err = r.ReadChar(); err != nil {
				return result, err
			}
			if ch != ' ' {
				return result, r.Errorf("expected space after '%d d' in deletion %d", id, id)
			}
			if err := parseDeletionTargets(r, store, stats, opts, id, line, &pendingAntecedents); err != nil {
				return result, err
			}
			result.Deleted++
		} else {
			if id == lastID {
				return result, r.Errorf("line identifier '%d' of addition line does not increase", id)
			}
			if err := promoteOriginalsIfFirstAddition(r, store, stats, id); err != nil {
				return result, err
			}
			literals, antecedents, nextCh, err := parseAdditionBody(r, ch, id, store, &pendingLiterals, &pendingAntecedents)
			if err != nil {
				return result, err
			}
			ch = nextCh

			store.SetLiterals(id, literals)
			if len(literals) == 0 && store.EmptyClause == 0 {
				store.EmptyClause = id
			}
			if opts.Track {
				store.RecordAddition(id, line)
			}
			stats.Original.Proof.Added++

			if opts.Trimming {
				store.SetAntecedents(id, antecedents)
			}
			if opts.Checking && opts.Forward {
				if err := checker.Clause(id, literals, antecedents, stats); err != nil {
					return result, err
				}
			}
			store.SetStatus(id, clause.Present)
			result.Added++
		}

		lastID = id
		if ch, err = r.ReadChar(); err != nil {
			return result, err
		}
	}

	if store.EmptyClause == 0 {
		return result, nil
	}
	return result, nil
}

// promoteOriginalsIfFirstAddition implements the original's one-time
// "no CNF was given, so everything below this first addition is original"
// promotion, run exactly once, the first time an addition line is parsed.
func promoteOriginalsIfFirstAddition(r *ioline.Reader, store *clause.Store, stats *report.Stats, id int32) error {
	if store.FirstProofAddition != 0 {
		return nil
	}
	if store.LastOriginal != 0 {
		if store.LastOriginal == id {
			return r.Errorf("first added clause %d in proof has same identifier as last original clause", id)
		}
		if store.LastOriginal > id {
			return r.Errorf("first added clause %d in proof has smaller identifier as last original clause %d", id, store.LastOriginal)
		}
	}
	store.FirstProofAddition = id
	if store.LastOriginal == 0 {
		for p := int32(1); p < id; p++ {
			if store.Status(p) == clause.Absent {
				store.SetStatus(p, clause.Present)
			}
		}
		stats.Original.CNF.Added = uint64(id - 1)
	}
	return nil
}

func parseAdditionBody(r *ioline.Reader, ch int, id int32, store *clause.Store, pendingLiterals, pendingAntecedents *container.Stack[int32]) ([]int32, []int32, int, error) {
	pendingLiterals.Clear()
	last := id
	first := true
	for last != 0 {
		if !first {
			var err error
			if ch, err = r.ReadChar(); err != nil {
				return nil, nil, 0, err
			}
		}
		first = false
		lit, nextCh, err := scanSignedField(r, ch, "variable index", id)
		if err != nil {
			return nil, nil, 0, err
		}
		ch = nextCh
		if ch != ' ' {
			if lit != 0 {
				return nil, nil, 0, r.Errorf("expected space after literal '%d' in clause %d", lit, id)
			}
			return nil, nil, 0, r.Errorf("expected space after literals and '0' in clause %d", id)
		}
		if lit != 0 {
			pendingLiterals.Push(lit)
		}
		last = lit
	}
	literals := pendingLiterals.Clone()
	pendingLiterals.Clear()

	pendingAntecedents.Clear()
	last = 1
	for last != 0 {
		var err error
		if ch, err = r.ReadChar(); err != nil {
			return nil, nil, 0, err
		}
		other, nextCh, err := scanSignedField(r, ch, "antecedent", id)
		if err != nil {
			return nil, nil, 0, err
		}
		ch = nextCh
		if other != 0 {
			if ch != ' ' {
				return nil, nil, 0, r.Errorf("expected space after antecedent '%d' in clause %d", other, id)
			}
			if abs32(other) >= id {
				return nil, nil, 0, r.Errorf("antecedent '%d' in clause %d exceeds clause", other, id)
			}
			switch store.Status(abs32(other)) {
			case clause.Absent:
				return nil, nil, 0, r.Errorf("antecedent '%d' in clause %d is neither an original clause nor has been added", other, id)
			case clause.Deleted:
				return nil, nil, 0, r.Errorf("antecedent %d in clause %d was already deleted", other, id)
			}
		} else if ch != '\n' {
			return nil, nil, 0, r.Errorf("expected new-line after '0' at end of clause %d", id)
		}
		pendingAntecedents.Push(other)
		last = other
	}
	pendingAntecedents.Pop() // discard the trailing zero terminator
	antecedents := pendingAntecedents.Clone()
	pendingAntecedents.Clear()

	return literals, antecedents, ch, nil
}

func scanSignedField(r *ioline.Reader, ch int, what string, id int32) (int32, int, error) {
	sign := int32(1)
	if ch == '-' {
		var err error
		if ch, err = r.ReadChar(); err != nil {
			return 0, 0, err
		}
		if !ioline.IsDigit(ch) {
			return 0, 0, r.Errorf("expected digit after '%d -' in clause %d", id, id)
		}
		if ch == '0' {
			return 0, 0, r.Errorf("expected non-zero digit after '%d -'", id)
		}
		sign = -1
	} else if !ioline.IsDigit(ch) {
		return 0, 0, r.Errorf("expected %s or '0' in clause %d", what, id)
	}
	n, next, err := r.ScanUnsignedNoLeadingZero(ch, "unexpected second digit '%c' after '0'")
	if err != nil {
		return 0, 0, err
	}
	return sign * n, next, nil
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func parseDeletionTargets(r *ioline.Reader, store *clause.Store, stats *report.Stats, opts ParseOptions, id int32, line int, pendingAntecedents *container.Stack[int32]) error {
	pendingAntecedents.Clear()
	last := int32(1)
	for last != 0 {
		ch, err := r.ReadChar()
		if err != nil {
			return err
		}
		if !ioline.IsDigit(ch) {
			return r.Errorf("expected digit after '%d ' in deletion %d", id, id)
		}
		other, nextCh, err := r.ScanUnsignedNoLeadingZero(ch, "unexpected digit '%c' after '0' in deletion")
		if err != nil {
			return err
		}
		if other != 0 {
			if nextCh != ' ' {
				return r.Errorf("expected space after '%d' in deletion %d", other, id)
			}
			if id != 0 && other > id {
				return r.Errorf("deleted clause '%d' larger than deletion identifier '%d'", other, id)
			}
			if store.FirstProofAddition == 0 {
				store.Grow(other)
			}
			status := store.Status(other)
			if status == clause.Absent && store.FirstProofAddition != 0 {
				return r.Errorf("deleted clause '%d' in deletion %d is neither an original clause nor has been added", other, id)
			}
			if opts.Track {
				if status == clause.Deleted {
					prior, _ := store.DeletionInfo(other)
					return r.Errorf("clause %d requested to be deleted in deletion %d was already deleted in deletion %d at line %d", other, id, prior.By, prior.Line)
				}
				store.RecordDeletion(other, line, id)
			} else if status == clause.Deleted {
				return r.Errorf("clause %d requested to be deleted in deletion %d was already deleted before (run with '--track' for more information)", other, id)
			}
			store.SetStatus(other, clause.Deleted)

			if store.IsOriginal(id) {
				stats.Original.CNF.Deleted++
			} else {
				stats.Original.Proof.Deleted++
			}

			if !opts.Trimming {
				store.FreeLiterals(other)
			}
		} else if nextCh != '\n' {
			return r.Errorf("expected new-line after '0' at end of deletion %d", id)
		}
		pendingAntecedents.Push(other)
		last = other
	}
	return nil
}
