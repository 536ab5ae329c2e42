package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// captureStdout redirects os.Stdout for the duration of fn and returns
// everything written to it, the way a reader would pipe the binary's
// output in a shell-driven integration test.
func captureStdout(t *testing.T, fn func() int) (string, int) {
	t.Helper()
	r, w, err := os.Pipe()
	assert.NoError(t, err)
	saved := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = saved }()

	code := fn()
	w.Close()
	out, err := io.ReadAll(r)
	assert.NoError(t, err)
	return string(out), code
}

func TestRunTrivialUnsatVerifies(t *testing.T) {
	dir := t.TempDir()
	cnfPath := filepath.Join(dir, "formula.cnf")
	proofPath := filepath.Join(dir, "proof.lrat")
	outPath := filepath.Join(dir, "trimmed.lrat")

	assert.NoError(t, os.WriteFile(cnfPath, []byte("p cnf 1 2\n1 0\n-1 0\n"), 0o644))
	assert.NoError(t, os.WriteFile(proofPath, []byte("3 0 1 2 0\n"), 0o644))

	out, code := captureStdout(t, func() int {
		return run([]string{"-q", cnfPath, proofPath, outPath})
	})

	assert.Equal(t, 20, code)
	assert.Contains(t, out, "s VERIFIED")

	// Both original clauses are used as antecedents of the single added
	// empty clause, so no mass CNF deletion happens in the first emitter
	// pass; the clause itself is emitted, then the two original clauses it
	// consumed are deleted as trailing cleanup attached to its mapped id.
	trimmed, err := os.ReadFile(outPath)
	assert.NoError(t, err)
	assert.Equal(t, "3 0 1 2 0\n3 d 2 1 0\n", string(trimmed))
}

func TestRunWithoutCNFTrimsWithoutChecking(t *testing.T) {
	dir := t.TempDir()
	proofPath := filepath.Join(dir, "proof.lrat")
	outPath := filepath.Join(dir, "trimmed.lrat")

	// Clause 4 is derived but never used as anyone's antecedent, so it is
	// silently dropped by trimming; clauses 3 and 5 chain into the empty
	// clause 6 and survive, renumbered to 3 and 4.
	assert.NoError(t, os.WriteFile(proofPath, []byte(
		"3 1 0 1 2 0\n"+
			"4 3 0 1 3 0\n"+ // unused lemma, never referenced below
			"5 2 0 1 2 0\n"+
			"6 0 5 3 0\n",
	), 0o644))

	out, code := captureStdout(t, func() int {
		return run([]string{"-q", proofPath, outPath})
	})

	assert.Equal(t, 0, code)
	assert.NotContains(t, out, "s VERIFIED")

	trimmed, err := os.ReadFile(outPath)
	assert.NoError(t, err)
	content := string(trimmed)
	assert.Equal(t, "3 1 0 1 2 0\n4 2 0 1 2 0\n4 d 2 1 0\n5 0 4 3 0\n5 d 4 3 0\n", content)
	assert.NotContains(t, content, "1 3 0") // clause 4's literal body never appears
}

func TestRunRefusesCNFLookingOverwriteWithoutForce(t *testing.T) {
	dir := t.TempDir()
	proofPath := filepath.Join(dir, "input.lrat")
	assert.NoError(t, os.WriteFile(proofPath, []byte("1 0 0\n"), 0o644))

	_, code := captureStdout(t, func() int {
		return run([]string{"-q", proofPath, filepath.Join(dir, "looks.cnf")})
	})
	assert.Equal(t, 1, code)
}

func TestRunZeroByteProofWarnsAndWritesNothing(t *testing.T) {
	dir := t.TempDir()
	proofPath := filepath.Join(dir, "empty.lrat")
	assert.NoError(t, os.WriteFile(proofPath, []byte{}, 0o644))

	out, code := captureStdout(t, func() int {
		return run([]string{proofPath})
	})
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "no empty clause found")
}
