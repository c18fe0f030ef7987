package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlabAppendGetDelete(t *testing.T) {
	var s slab[int]

	a := s.append(10)
	b := s.append(20)
	c := s.append(30)
	assert.Equal(t, []int{0, 1, 2}, []int{a, b, c})
	assert.Equal(t, 3, s.len())

	s.delete(b)
	assert.False(t, s.has(b))
	assert.Nil(t, s.get(b))
	assert.Equal(t, 2, s.len())
	assert.Equal(t, 1, s.free())

	// freed slot is reused
	d := s.append(40)
	assert.Equal(t, b, d)
	assert.Equal(t, 40, *s.get(d))

	s.delete(-1)
	s.delete(99)
	assert.Nil(t, s.get(99))
	assert.Equal(t, 3, s.len())
}

func TestSlabPointersSurviveGrowth(t *testing.T) {
	var s slab[int]
	first := s.append(1)
	ptr := s.get(first)

	for i := 0; i < slabBlockSize*4; i++ {
		s.append(i)
	}

	*ptr = 99
	assert.Equal(t, 99, *s.get(first))
}

func TestSlabCompact(t *testing.T) {
	var s slab[string]
	for _, v := range []string{"a", "b", "c", "d", "e"} {
		s.append(v)
	}
	s.delete(0)
	s.delete(2)

	indexMap := s.compact()
	assert.Equal(t, map[int]int{1: 0, 3: 1, 4: 2}, indexMap)
	assert.Equal(t, 3, s.len())
	assert.Equal(t, 0, s.free())

	var got []string
	for _, v := range s.all() {
		got = append(got, *v)
	}
	assert.Equal(t, []string{"b", "d", "e"}, got)
}

func TestSlabCompactEmpty(t *testing.T) {
	var s slab[int]
	s.append(1)
	s.delete(0)

	assert.Empty(t, s.compact())
	assert.Equal(t, 0, s.len())

	require.Equal(t, 0, s.append(5))
	assert.Equal(t, 5, *s.get(0))
}

func TestSlabIterStopsEarly(t *testing.T) {
	var s slab[int]
	for i := 0; i < 10; i++ {
		s.append(i)
	}

	count := 0
	for range s.all() {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}
