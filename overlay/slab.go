package overlay

import "iter"

const slabBlockSize = 64

// slab stores values of one type in fixed size blocks.
// Indices stay stable across deletes; freed slots are reused by later appends.
// Blocks are heap allocated individually so pointers returned by get remain
// valid while the slot is occupied, until compact.
type slab[T any] struct {
	blocks    []*[slabBlockSize]T
	filled    []*[slabBlockSize]bool
	freeSlots []int
	nextIndex int
}

func (s *slab[T]) append(item T) int {
	if len(s.freeSlots) > 0 {
		index := s.freeSlots[len(s.freeSlots)-1]
		s.freeSlots = s.freeSlots[:len(s.freeSlots)-1]

		s.blocks[index/slabBlockSize][index%slabBlockSize] = item
		s.filled[index/slabBlockSize][index%slabBlockSize] = true
		return index
	}

	index := s.nextIndex
	s.nextIndex++

	blockIdx := index / slabBlockSize
	if blockIdx >= len(s.blocks) {
		s.blocks = append(s.blocks, new([slabBlockSize]T))
		s.filled = append(s.filled, new([slabBlockSize]bool))
	}

	s.blocks[blockIdx][index%slabBlockSize] = item
	s.filled[blockIdx][index%slabBlockSize] = true
	return index
}

func (s *slab[T]) get(index int) *T {
	if !s.has(index) {
		return nil
	}
	return &s.blocks[index/slabBlockSize][index%slabBlockSize]
}

func (s *slab[T]) has(index int) bool {
	if index < 0 || index >= s.nextIndex {
		return false
	}
	return s.filled[index/slabBlockSize][index%slabBlockSize]
}

// delete empties a slot and zeroes its value
func (s *slab[T]) delete(index int) {
	if !s.has(index) {
		return
	}

	var zero T
	s.filled[index/slabBlockSize][index%slabBlockSize] = false
	s.blocks[index/slabBlockSize][index%slabBlockSize] = zero
	s.freeSlots = append(s.freeSlots, index)
}

func (s *slab[T]) len() int {
	return s.nextIndex - len(s.freeSlots)
}

func (s *slab[T]) free() int {
	return len(s.freeSlots)
}

// compact moves every occupied slot to the front and returns old index -> new index
func (s *slab[T]) compact() map[int]int {
	indexMap := make(map[int]int, s.len())
	total := s.len()

	numBlocks := (total + slabBlockSize - 1) / slabBlockSize
	blocks := make([]*[slabBlockSize]T, numBlocks)
	filled := make([]*[slabBlockSize]bool, numBlocks)
	for i := range blocks {
		blocks[i] = new([slabBlockSize]T)
		filled[i] = new([slabBlockSize]bool)
	}

	writePos := 0
	for readIdx := 0; readIdx < s.nextIndex; readIdx++ {
		if !s.filled[readIdx/slabBlockSize][readIdx%slabBlockSize] {
			continue
		}
		indexMap[readIdx] = writePos
		blocks[writePos/slabBlockSize][writePos%slabBlockSize] = s.blocks[readIdx/slabBlockSize][readIdx%slabBlockSize]
		filled[writePos/slabBlockSize][writePos%slabBlockSize] = true
		writePos++
	}

	s.blocks = blocks
	s.filled = filled
	s.freeSlots = nil
	s.nextIndex = writePos
	return indexMap
}

// all iterates occupied slots in index order
func (s *slab[T]) all() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < s.nextIndex; i++ {
			if !s.filled[i/slabBlockSize][i%slabBlockSize] {
				continue
			}
			if !yield(i, &s.blocks[i/slabBlockSize][i%slabBlockSize]) {
				return
			}
		}
	}
}
