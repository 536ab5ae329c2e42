package clause

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusDefaultsToAbsent(t *testing.T) {
	s := NewStore(false)
	assert.Equal(t, Absent, s.Status(7))
	s.SetStatus(7, Present)
	assert.Equal(t, Present, s.Status(7))
}

func TestLiteralsAndAntecedentsRoundTrip(t *testing.T) {
	s := NewStore(false)
	s.SetLiterals(1, []int32{1, -2, 3})
	s.SetAntecedents(1, []int32{2, 3})
	assert.Equal(t, []int32{1, -2, 3}, s.Literals(1))
	assert.Equal(t, []int32{2, 3}, s.Antecedents(1))
	s.FreeLiterals(1)
	assert.Nil(t, s.Literals(1))
	s.FreeAntecedents(1)
	assert.Nil(t, s.Antecedents(1))
}

func TestTrackingRecordsAdditionAndDeletion(t *testing.T) {
	s := NewStore(true)
	_, ok := s.AdditionInfo(5)
	assert.False(t, ok)
	s.RecordAddition(5, 10)
	info, ok := s.AdditionInfo(5)
	assert.True(t, ok)
	assert.Equal(t, 10, info.Line)

	_, ok = s.DeletionInfo(5)
	assert.False(t, ok)
	s.RecordDeletion(5, 12, 9)
	del, ok := s.DeletionInfo(5)
	assert.True(t, ok)
	assert.Equal(t, 12, del.Line)
	assert.Equal(t, int32(9), del.By)
}

func TestUsedAndRenumberedAndLinkedList(t *testing.T) {
	s := NewStore(false)
	assert.Equal(t, int32(0), s.Used(3))
	s.SetUsed(3, 9)
	assert.Equal(t, int32(9), s.Used(3))

	s.EnsureOutputMaps(10)
	s.SetRenumbered(3, 1)
	assert.Equal(t, int32(1), s.Renumbered(3))

	s.SetHead(9, 3)
	s.SetLink(3, 0)
	assert.Equal(t, int32(3), s.Head(9))
	assert.Equal(t, int32(0), s.Link(3))
}

func TestIsOriginal(t *testing.T) {
	s := NewStore(false)
	assert.True(t, s.IsOriginal(0))
	assert.True(t, s.IsOriginal(100))
	s.FirstProofAddition = 50
	assert.True(t, s.IsOriginal(49))
	assert.False(t, s.IsOriginal(50))
	assert.False(t, s.IsOriginal(51))
}
