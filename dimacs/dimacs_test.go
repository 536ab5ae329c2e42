package dimacs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lrat-tools/lrattrim/clause"
	"github.com/lrat-tools/lrattrim/ioline"
	"github.com/lrat-tools/lrattrim/report"
)

func parse(t *testing.T, src string) (*clause.Store, Result, error) {
	t.Helper()
	r := ioline.NewReader("<mem>", strings.NewReader(src), nil)
	store := clause.NewStore(false)
	stats := report.New()
	res, err := Parse(r, store, stats)
	return store, res, err
}

func TestParseSimpleFormula(t *testing.T) {
	src := "c a comment\np cnf 3 2\n1 -2 0\n2 3 0\n"
	store, res, err := parse(t, src)
	assert.NoError(t, err)
	assert.Equal(t, int32(3), res.Header.Variables)
	assert.Equal(t, int32(2), res.Header.Clauses)
	assert.Equal(t, int32(2), res.ClausesAdded)
	assert.Equal(t, []int32{1, -2}, store.Literals(1))
	assert.Equal(t, []int32{2, 3}, store.Literals(2))
	assert.Equal(t, clause.Present, store.Status(1))
	assert.Equal(t, clause.Present, store.Status(2))
}

func TestParseTrailingCommentAfterClause(t *testing.T) {
	src := "p cnf 2 1\n1 2 0 c trailing remark\n"
	_, res, err := parse(t, src)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), res.ClausesAdded)
}

func TestParseRejectsLiteralExceedingVariables(t *testing.T) {
	_, _, err := parse(t, "p cnf 2 1\n3 0\n")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum variable")
}

func TestParseRejectsMissingClause(t *testing.T) {
	_, _, err := parse(t, "p cnf 2 2\n1 0\n")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "clause missing")
}

func TestParseRejectsLeadingZeroDigit(t *testing.T) {
	_, _, err := parse(t, "p cnf 20 1\n01 0\n")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected digit")
}
