package ioline

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterCountsLinesAndBytes(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter("<mem>", &buf, nil)
	assert.NoError(t, w.WriteInt(-123))
	assert.NoError(t, w.WriteSpace())
	assert.NoError(t, w.WriteInt(0))
	assert.NoError(t, w.WriteNewline())
	assert.NoError(t, w.Close())
	assert.Equal(t, "-123 0\n", buf.String())
	assert.Equal(t, 1, w.Lines())
	assert.Equal(t, 7, w.Bytes())
}
