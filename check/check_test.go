package check

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lrat-tools/lrattrim/clause"
	"github.com/lrat-tools/lrattrim/report"
)

func TestClauseAcceptsValidRUPStep(t *testing.T) {
	store := clause.NewStore(false)
	store.SetLiterals(1, []int32{1})
	store.SetLiterals(2, []int32{-1, 2})
	store.SetLiterals(3, []int32{-2})

	s := NewState(store, false, "<mem>")
	stats := report.New()
	err := s.Clause(4, []int32{}, []int32{1, 2, 3}, stats)
	assert.NoError(t, err)
	assert.Equal(t, uint64(1), stats.Clauses.Checked.Empty)
}

func TestClauseRejectsNonUnitAntecedent(t *testing.T) {
	store := clause.NewStore(false)
	store.SetLiterals(1, []int32{1, 2, 3})

	s := NewState(store, false, "<mem>")
	stats := report.New()
	err := s.Clause(2, []int32{-1}, []int32{1}, stats)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not produce unit")
}

func TestClauseRejectsNoConflict(t *testing.T) {
	store := clause.NewStore(false)
	store.SetLiterals(1, []int32{2})

	s := NewState(store, false, "<mem>")
	stats := report.New()
	err := s.Clause(2, []int32{1}, []int32{1}, stats)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not yield conflict")
}

func TestClauseSkipsTautologyAndDuplicates(t *testing.T) {
	store := clause.NewStore(false)
	s := NewState(store, false, "<mem>")
	stats := report.New()
	err := s.Clause(1, []int32{1, 1, -1}, nil, stats)
	assert.NoError(t, err)
}
