package container

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransformSlice(t *testing.T) {
	in := []int32{1, -2, 3}
	out := TransformSlice(in, func(v int32) string { return strconv.Itoa(int(v)) })
	assert.Equal(t, []string{"1", "-2", "3"}, out)
}
