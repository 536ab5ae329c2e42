package trim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lrat-tools/lrattrim/clause"
	"github.com/lrat-tools/lrattrim/report"
)

func TestTrimMarksOnlyReachableClauses(t *testing.T) {
	store := clause.NewStore(false)
	store.LastOriginal = 2
	store.SetStatus(1, clause.Present)
	store.SetStatus(2, clause.Present)
	// Clause 3 is an unused original clause.
	store.SetStatus(3, clause.Present)
	store.LastOriginal = 3
	store.FirstProofAddition = 4

	store.SetAntecedents(4, []int32{1, 2})
	store.SetAntecedents(5, []int32{4})
	store.EmptyClause = 5

	stats := report.New()
	Trim(store, stats)

	assert.Equal(t, int32(5), store.Used(5))
	assert.Equal(t, int32(5), store.Used(4))
	assert.Equal(t, int32(4), store.Used(1))
	assert.Equal(t, int32(4), store.Used(2))
	assert.Equal(t, int32(0), store.Used(3))
	assert.Equal(t, uint64(2), stats.Trimmed.CNF.Added)
	assert.Equal(t, uint64(2), stats.Trimmed.Proof.Added)
}

func TestTrimNoEmptyClauseIsNoop(t *testing.T) {
	store := clause.NewStore(false)
	stats := report.New()
	Trim(store, stats)
	assert.Equal(t, int32(0), store.Used(1))
}

func TestTrimNonMinimalTieBreakKeepsFirstUser(t *testing.T) {
	store := clause.NewStore(false)
	store.FirstProofAddition = 2
	store.SetAntecedents(3, []int32{1})
	store.SetAntecedents(4, []int32{1, 3})
	store.EmptyClause = 4

	stats := report.New()
	Trim(store, stats)

	assert.Equal(t, int32(4), store.Used(3))
	// Clause 1 is first discovered as used-by-4 (via the direct antecedent
	// list); when the worklist reaches 3, markUsed does not overwrite it
	// because 3 is smaller than 4, so it keeps 4 rather than 3 - the
	// original's non-minimal tie-break.
	assert.Equal(t, int32(4), store.Used(1))
}
