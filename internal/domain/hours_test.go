package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHourSet_EncodeSortedZeroPadded(t *testing.T) {
	s := NewHourSet(9, 2, 16)

	assert.Equal(t, "02-09-16", s.Encode())
	assert.Equal(t, []int{2, 9, 16}, s.Sorted())
}

func TestHourSet_EncodeEmpty(t *testing.T) {
	assert.Equal(t, "", NewHourSet().Encode())
}

func TestParseHourSet_RoundTrip(t *testing.T) {
	s := ParseHourSet("02-09-16")

	require.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(2))
	assert.True(t, s.Contains(9))
	assert.True(t, s.Contains(16))
	assert.Equal(t, "02-09-16", s.Encode())
}

func TestParseHourSet_DiscardsGarbageTokens(t *testing.T) {
	s := ParseHourSet("02-xx-99-16")

	assert.Equal(t, []int{2, 16}, s.Sorted())
}

func TestParseHourSet_EmptyString(t *testing.T) {
	assert.True(t, ParseHourSet("").IsEmpty())
}

func TestNewHourSet_IgnoresOutOfRange(t *testing.T) {
	s := NewHourSet(-1, 0, 23, 24)

	assert.Equal(t, []int{0, 23}, s.Sorted())
}

func TestHourSet_ContainsAll(t *testing.T) {
	open := NewHourSet(16, 17, 18, 19)

	assert.True(t, open.ContainsAll(NewHourSet(17, 18)))
	assert.False(t, open.ContainsAll(NewHourSet(17, 20)))
	assert.True(t, open.ContainsAll(NewHourSet()), "empty set is a subset of anything")
}

func TestHourSet_Intersects(t *testing.T) {
	taken := NewHourSet(16, 17)

	assert.True(t, taken.Intersects(NewHourSet(17, 18)))
	assert.False(t, taken.Intersects(NewHourSet(18, 19)))
	assert.False(t, taken.Intersects(NewHourSet()))
}

func TestHourSet_SubtractIsIdempotent(t *testing.T) {
	open := NewHourSet(16, 17, 18)

	once := open.Subtract(NewHourSet(17))
	twice := once.Subtract(NewHourSet(17))

	assert.Equal(t, []int{16, 18}, once.Sorted())
	assert.True(t, once.Equal(twice))
}

func TestHourSet_Union(t *testing.T) {
	merged := NewHourSet(16).Union(NewHourSet(17, 18))

	assert.Equal(t, []int{16, 17, 18}, merged.Sorted())
}

func TestHourSet_MinMax(t *testing.T) {
	s := NewHourSet(9, 2, 16)

	assert.Equal(t, 2, s.Min())
	assert.Equal(t, 16, s.Max())
}
