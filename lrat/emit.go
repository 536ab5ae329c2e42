// Emitter: the two-pass renumbering writer grounded on write_non_empty_proof
// and map_id. Pass one covers identifiers below the first proof addition
// (the original CNF range): unused ones are collected into a single mass
// deletion line so a reader never has to renumber the untouched CNF
// clauses. Pass two walks every used clause from the first proof addition
// through the empty clause, assigning it the next dense output identifier,
// writing its (renumbered) literals and antecedents, and then - using the
// heads/links singly-linked lists built along the way - any clauses whose
// last use was this one, as a trailing deletion line.
package lrat

import (
	"github.com/lrat-tools/lrattrim/clause"
	"github.com/lrat-tools/lrattrim/ioline"
	"github.com/lrat-tools/lrattrim/report"
)

// EmitResult summarizes what Emit wrote.
type EmitResult struct {
	Wrote bool
}

// Emit writes the trimmed proof to w. If store.EmptyClause is zero (no
// empty clause was ever derived), it writes nothing, matching the
// original's write_empty_proof no-op.
func Emit(w *ioline.Writer, store *clause.Store, stats *report.Stats) (EmitResult, error) {
	if store.EmptyClause == 0 {
		return EmitResult{Wrote: false}, nil
	}
	if err := emitNonEmptyProof(w, store, stats); err != nil {
		return EmitResult{}, err
	}
	return EmitResult{Wrote: true}, nil
}

func mapID(store *clause.Store, id int32) int32 {
	abs := id
	neg := false
	if abs < 0 {
		abs = -abs
		neg = true
	}
	var res int32
	if abs < store.FirstProofAddition {
		res = id
	} else {
		res = store.Renumbered(abs)
	}
	if neg {
		res = -res
	}
	return res
}

func emitNonEmptyProof(w *ioline.Writer, store *clause.Store, stats *report.Stats) error {
	store.EnsureOutputMaps(store.EmptyClause)

	// Pass 1: chain every original CNF clause by the clause it is last
	// used in, and collect the ones never used into a mass deletion.
	for id := int32(1); id != store.FirstProofAddition; id++ {
		where := store.Used(id)
		if where != 0 {
			store.SetLink(id, store.Head(where))
			store.SetHead(where, id)
			continue
		}
		if stats.Trimmed.CNF.Deleted == 0 {
			if err := w.WriteInt(store.FirstProofAddition - 1); err != nil {
				return err
			}
			if err := w.WriteString(" d"); err != nil {
				return err
			}
		}
		if err := w.WriteSpace(); err != nil {
			return err
		}
		if err := w.WriteInt(id); err != nil {
			return err
		}
		stats.Trimmed.CNF.Deleted++
		stats.Trimmed.CNF.Added++
	}
	if stats.Trimmed.CNF.Deleted != 0 {
		if err := w.WriteString(" 0\n"); err != nil {
			return err
		}
	}

	// Pass 2: walk every clause from the first proof addition through the
	// empty clause, renumbering and writing the used ones.
	mapped := store.FirstProofAddition
	for id := store.FirstProofAddition; ; id++ {
		where := store.Used(id)
		if where != 0 {
			if id != store.EmptyClause {
				store.SetLink(id, store.Head(where))
				store.SetHead(where, id)
				store.SetRenumbered(id, mapped)
			}
			if err := w.WriteInt(mapped); err != nil {
				return err
			}
			for _, lit := range store.Literals(id) {
				if err := w.WriteSpace(); err != nil {
					return err
				}
				if err := w.WriteInt(lit); err != nil {
					return err
				}
			}
			if err := w.WriteString(" 0"); err != nil {
				return err
			}
			for _, ante := range store.Antecedents(id) {
				if err := w.WriteSpace(); err != nil {
					return err
				}
				if err := w.WriteInt(mapID(store, ante)); err != nil {
					return err
				}
			}
			if err := w.WriteString(" 0\n"); err != nil {
				return err
			}

			if head := store.Head(id); head != 0 {
				if err := w.WriteInt(mapped); err != nil {
					return err
				}
				if err := w.WriteString(" d"); err != nil {
					return err
				}
				for link := head; link != 0; link = store.Link(link) {
					if store.IsOriginal(link) {
						stats.Trimmed.CNF.Deleted++
					} else {
						stats.Trimmed.Proof.Deleted++
					}
					if err := w.WriteSpace(); err != nil {
						return err
					}
					if err := w.WriteInt(mapID(store, link)); err != nil {
						return err
					}
				}
				if err := w.WriteString(" 0\n"); err != nil {
					return err
				}
			}
			mapped++
		}
		if id == store.EmptyClause {
			break
		}
	}
	return nil
}
