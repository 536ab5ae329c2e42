// Package clause implements the central clause-indexed data model shared
// by the DIMACS parser, the LRAT parser, the trimmer, the checker, and the
// emitter: one Store per run, keyed throughout by clause identifier (CID).
//
// It is grounded on lrat-trim.c's global 'clauses' struct of parallel
// ints_map/char_map/int_map fields (status, literals, antecedents, used,
// heads, links, map) plus the addition_map/deletion_map tracking metadata
// under --track. Each clause uniquely owns its literal and antecedent
// sequences; because CIDs already serve as indices there is no pointer
// back-reference anywhere, so the antecedent graph is a DAG over plain
// integers rather than a graph of owning pointers.
package clause

import "github.com/lrat-tools/lrattrim/container"

// Status is the lifecycle state of a clause identifier.
type Status int8

const (
	// Absent means the identifier has never been assigned a clause.
	Absent Status = 0
	// Present means the clause was added (or parsed from a CNF) and has
	// not since been deleted.
	Present Status = 1
	// Deleted means the clause was added (or parsed) and has since been
	// deleted by an LRAT deletion line.
	Deleted Status = -1
)

// DeletionInfo records where and by what a clause was deleted; only
// populated when the store was created with track enabled.
type DeletionInfo struct {
	Line int   // 1-based line number of the deleting line
	By   int32 // CID of the deleting line
}

// AdditionInfo records where a clause was added; only populated when the
// store was created with track enabled.
type AdditionInfo struct {
	Line int // 1-based line number of the addition
}

// Store is the per-run clause database. All lookups are by CID; growth is
// automatic and keeps previously unused cells zero-valued.
type Store struct {
	Track bool

	status      container.DenseMap[Status]
	literals    container.DenseMap[[]int32]
	antecedents container.DenseMap[[]int32]
	deleted     container.DenseMap[DeletionInfo]
	added       container.DenseMap[AdditionInfo]
	used        container.DenseMap[int32]
	renumbered  container.DenseMap[int32]
	heads       container.DenseMap[int32]
	links       container.DenseMap[int32]

	// LastOriginal is the highest CID occupied by the original CNF (0 if
	// no CNF was given; the implicit promotion of identifiers below the
	// first addition does not set it).
	LastOriginal int32
	// FirstProofAddition is the CID of the first LRAT addition line (0
	// until the first addition has been parsed).
	FirstProofAddition int32
	// EmptyClause is the CID of the first clause seen with zero literals
	// (0 if none has been seen).
	EmptyClause int32
}

// NewStore creates an empty clause store. track enables recording
// addition_info/deletion_info for more informative error messages.
func NewStore(track bool) *Store {
	return &Store{Track: track}
}

// Grow ensures the status, literals, antecedents and used maps can address
// id without reallocating on the next access (the other maps grow on
// demand); parsers call this as soon as an identifier is seen, the
// same way the original calls ADJUST on first sight of an id.
func (s *Store) Grow(id int32) {
	n := int(id)
	s.status.Ensure(n)
	s.literals.Ensure(n)
	s.antecedents.Ensure(n)
	s.used.Ensure(n)
}

// Status returns the lifecycle state of id.
func (s *Store) Status(id int32) Status { return s.status.Get(int(id)) }

// SetStatus assigns the lifecycle state of id.
func (s *Store) SetStatus(id int32, st Status) { s.status.Set(int(id), st) }

// Literals returns the literal sequence owned by id, or nil if absent or
// freed.
func (s *Store) Literals(id int32) []int32 { return s.literals.Get(int(id)) }

// SetLiterals installs lits as the literal sequence owned by id.
func (s *Store) SetLiterals(id int32, lits []int32) { s.literals.Set(int(id), lits) }

// FreeLiterals releases id's literal sequence, eligible once the clause is
// deleted in a mode where literals are no longer needed (the LRAT parser
// decides this when it handles a deletion line).
func (s *Store) FreeLiterals(id int32) { s.literals.Set(int(id), nil) }

// Antecedents returns the antecedent sequence owned by id (present only
// for added, not original, clauses).
func (s *Store) Antecedents(id int32) []int32 { return s.antecedents.Get(int(id)) }

// SetAntecedents installs ante as the antecedent sequence owned by id.
func (s *Store) SetAntecedents(id int32, ante []int32) { s.antecedents.Set(int(id), ante) }

// FreeAntecedents releases id's antecedent sequence. Per the accepted
// reading of the original's dead/commented-out branches (spec.md §9),
// antecedents are never freed while trimming is enabled, regardless of
// forward mode; callers must gate this themselves.
func (s *Store) FreeAntecedents(id int32) { s.antecedents.Set(int(id), nil) }

// DeletionInfo returns the recorded deletion metadata for id and whether
// any was recorded (only meaningful when Track is set).
func (s *Store) DeletionInfo(id int32) (DeletionInfo, bool) {
	d := s.deleted.Get(int(id))
	return d, d.Line != 0
}

// RecordDeletion stores deletion metadata for id.
func (s *Store) RecordDeletion(id int32, line int, by int32) {
	s.deleted.Set(int(id), DeletionInfo{Line: line, By: by})
}

// AdditionInfo returns the recorded addition metadata for id and whether
// any was recorded (only meaningful when Track is set).
func (s *Store) AdditionInfo(id int32) (AdditionInfo, bool) {
	a := s.added.Get(int(id))
	return a, a.Line != 0
}

// RecordAddition stores addition metadata for id.
func (s *Store) RecordAddition(id int32, line int) {
	s.added.Set(int(id), AdditionInfo{Line: line})
}

// Used returns the CID of the largest later clause known to use id, or 0
// if id is not (yet) known to be needed. Set by the trimmer.
func (s *Store) Used(id int32) int32 { return s.used.Get(int(id)) }

// SetUsed records that id is used by usedWhere.
func (s *Store) SetUsed(id int32, usedWhere int32) { s.used.Set(int(id), usedWhere) }

// Renumbered returns the dense output identifier assigned to id by the
// emitter, or 0 if none has been assigned.
func (s *Store) Renumbered(id int32) int32 { return s.renumbered.Get(int(id)) }

// SetRenumbered assigns id's dense output identifier.
func (s *Store) SetRenumbered(id int32, mapped int32) { s.renumbered.Set(int(id), mapped) }

// Head returns the first clause in the singly-linked list of clauses whose
// last use is id, or 0 if none.
func (s *Store) Head(id int32) int32 { return s.heads.Get(int(id)) }

// SetHead sets the head of id's last-use list.
func (s *Store) SetHead(id int32, head int32) { s.heads.Set(int(id), head) }

// Link returns the next clause after id in whatever last-use list id was
// linked into, or 0 if id is the tail.
func (s *Store) Link(id int32) int32 { return s.links.Get(int(id)) }

// SetLink sets the successor of id in a last-use list.
func (s *Store) SetLink(id int32, next int32) { s.links.Set(int(id), next) }

// EnsureOutputMaps grows the renumbering, heads, and links maps up to id;
// the emitter calls this once it knows the empty clause's identifier.
func (s *Store) EnsureOutputMaps(id int32) {
	n := int(id)
	s.renumbered.Ensure(n)
	s.heads.Ensure(n)
	s.links.Ensure(n)
}

// IsOriginal reports whether id names a clause that existed before the
// first proof addition: the empty identifier 0, or any id when no
// addition has happened yet, or any id below the first addition.
func (s *Store) IsOriginal(id int32) bool {
	return id == 0 || s.FirstProofAddition == 0 || id < s.FirstProofAddition
}
