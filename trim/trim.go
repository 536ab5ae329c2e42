// Package trim implements backward reachability trimming of a parsed LRAT
// proof: starting from the empty clause, it walks the antecedent DAG and
// marks every transitively reachable clause as used, the way lrat-trim.c's
// mark_used/trim_proof does with an explicit worklist in place of
// recursion.
//
// Tie-breaking when a clause is reachable from more than one place is
// deliberately non-minimal: the largest user identifier wins (mark_used
// only updates clauses.used when the new user's identifier is larger than
// the one already recorded), so once the walk is done each needed clause
// records its last use among the needed clauses, matching the original
// exactly; this package does not attempt to find a smaller reachable set.
package trim

import (
	"github.com/lrat-tools/lrattrim/clause"
	"github.com/lrat-tools/lrattrim/container"
	"github.com/lrat-tools/lrattrim/report"
)

// markUsed records that id is needed to derive usedWhere. It returns true
// if id was already known to be used (by any clause), so the caller can
// avoid pushing it onto the worklist twice.
func markUsed(store *clause.Store, stats *report.Stats, id, usedWhere int32) bool {
	before := store.Used(id)
	if before >= usedWhere {
		return true
	}
	store.SetUsed(id, usedWhere)
	if before != 0 {
		return true
	}
	if store.IsOriginal(id) {
		stats.Trimmed.CNF.Added++
	} else {
		stats.Trimmed.Proof.Added++
	}
	return false
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// Trim walks the antecedent graph backward from store.EmptyClause, marking
// every clause needed to derive it as used. It is a no-op if no empty
// clause was ever added to the proof.
func Trim(store *clause.Store, stats *report.Stats) {
	if store.EmptyClause == 0 {
		return
	}

	store.Grow(store.EmptyClause)
	var work container.Stack[int32]

	markUsed(store, stats, store.EmptyClause, store.EmptyClause)
	if !store.IsOriginal(store.EmptyClause) {
		work.Push(store.EmptyClause)
	}

	for !work.Empty() {
		id := work.Pop()
		for _, ante := range store.Antecedents(id) {
			other := abs32(ante)
			if !markUsed(store, stats, other, id) && !store.IsOriginal(other) {
				work.Push(other)
			}
		}
	}
}
