package container

import "testing"

import "github.com/stretchr/testify/assert"

func TestStackPushPopClear(t *testing.T) {
	var s Stack[int]
	assert.True(t, s.Empty())
	s.Push(1)
	s.Push(2)
	s.Push(3)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 3, s.Pop())
	assert.Equal(t, []int{1, 2}, s.Slice())
	s.Clear()
	assert.True(t, s.Empty())
}

func TestStackClone(t *testing.T) {
	var s Stack[int32]
	s.Push(10)
	s.Push(20)
	clone := s.Clone()
	s.Push(30)
	assert.Equal(t, []int32{10, 20}, clone)
}

func TestDenseMapGrowsAndZeroInits(t *testing.T) {
	var m DenseMap[int]
	assert.Equal(t, 0, m.Get(5))
	m.Set(5, 42)
	assert.Equal(t, 42, m.Get(5))
	// Cells between the old and new size must be zero-initialized.
	assert.Equal(t, 0, m.Get(3))
	assert.True(t, m.Len() >= 6)
}

func TestDenseMapEnsure(t *testing.T) {
	var m DenseMap[string]
	m.Ensure(10)
	assert.True(t, m.Len() > 10)
	assert.Equal(t, "", m.Get(10))
}
