// Package check implements reverse unit propagation (RUP) checking of a
// single added clause against its antecedents, the way lrat-trim.c's
// check_clause does: negate and assign the clause's own literals, then
// propagate each antecedent clause, expecting every one of them to become
// unit (extending the assignment) until one is conflicting, which proves
// the clause follows from the formula.
package check

import (
	"fmt"
	"strings"

	"github.com/lrat-tools/lrattrim/clause"
	"github.com/lrat-tools/lrattrim/container"
	"github.com/lrat-tools/lrattrim/report"
)

// State holds the variable assignment trail shared by every clause checked
// during a run; it is reset to empty between clauses via backtrack, the
// same static 'trail'/'variables.values' globals the original reuses.
type State struct {
	store  *clause.Store
	values container.DenseMap[int8]
	trail  container.Stack[int32]

	// Track, ProofPath and addition lookups mirror what crr() prints when
	// a clause fails to check: the offending literals, and - with
	// tracking on - the line in the proof it was added at.
	Track     bool
	ProofPath string
}

// NewState returns a State ready to check clauses from store.
func NewState(store *clause.Store, track bool, proofPath string) *State {
	return &State{store: store, Track: track, ProofPath: proofPath}
}

func idx(lit int32) int32 {
	if lit < 0 {
		return -lit
	}
	return lit
}

func (s *State) assignedLiteral(lit int32) int8 {
	v := s.values.Get(int(idx(lit)))
	if lit < 0 {
		return -v
	}
	return v
}

func (s *State) assignLiteral(lit int32, stats *report.Stats) {
	value := int8(1)
	if lit < 0 {
		value = -1
	}
	s.values.Set(int(idx(lit)), value)
	s.trail.Push(lit)
	stats.Literals.Assigned++
}

func (s *State) backtrack() {
	for _, lit := range s.trail.Slice() {
		s.values.Set(int(idx(lit)), 0)
	}
	s.trail.Clear()
}

// Error reports why checking a clause failed, formatted like the
// original's crr(): the message, the clause id, and its literals, plus the
// proof line the clause was added at when tracking was enabled.
type Error struct {
	ID           int32
	Message      string
	Literals     []int32
	Track        bool
	AdditionLine int
	ProofPath    string
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "lrattrim: %s while checking clause '%d'", e.Message, e.ID)
	if e.Track {
		fmt.Fprintf(&b, " at line '%d' in '%s'", e.AdditionLine, e.ProofPath)
	}
	b.WriteString(": ")
	fields := container.TransformSlice(e.Literals, func(lit int32) string { return fmt.Sprintf("%d ", lit) })
	for _, field := range fields {
		b.WriteString(field)
	}
	b.WriteString("0")
	return b.String()
}

func (s *State) fail(id int32, format string, args ...any) error {
	line := 0
	if s.Track {
		if info, ok := s.store.AdditionInfo(id); ok {
			line = info.Line
		}
	}
	return &Error{
		ID:           id,
		Message:      fmt.Sprintf(format, args...),
		Literals:     s.store.Literals(id),
		Track:        s.Track,
		AdditionLine: line,
		ProofPath:    s.ProofPath,
	}
}

// Clause verifies that literals follows from antecedents by reverse unit
// propagation, recording statistics in stats. A non-nil error means the
// proof line for id does not actually certify, which is fatal.
func (s *State) Clause(id int32, literals, antecedents []int32, stats *report.Stats) error {
	stats.Clauses.Resolved++
	stats.Clauses.Checked.Total++
	if len(literals) == 0 {
		stats.Clauses.Checked.Empty++
	}

	for _, lit := range literals {
		value := s.assignedLiteral(lit)
		if value < 0 {
			continue // duplicated literal
		}
		if value > 0 {
			s.backtrack() // tautological clause
			return nil
		}
		s.assignLiteral(-lit, stats)
	}

	for _, aid := range antecedents {
		if aid < 0 {
			s.backtrack()
			return s.fail(id, "checking negative RAT antecedent '%d' not supported", aid)
		}
		als := s.store.Literals(aid)
		stats.Clauses.Resolved++
		var unit int32
		for _, lit := range als {
			value := s.assignedLiteral(lit)
			if value < 0 {
				continue
			}
			if unit != 0 {
				s.backtrack()
				return s.fail(id, "antecedent '%d' does not produce unit", aid)
			}
			unit = lit
			if value == 0 {
				s.assignLiteral(lit, stats)
			}
		}
		if unit == 0 {
			s.backtrack() // conflicting antecedent: checking succeeded
			return nil
		}
	}

	s.backtrack()
	return s.fail(id, "propagating antecedents does not yield conflict")
}
