package session

import "fmt"

// ChunkRange partitions [0, n) into c.Count contiguous groups whose sizes
// differ by at most one, earlier groups taking the extra element, and returns
// the half-open range of the c.Index-th group (1-based). When c.Count exceeds
// n some groups are empty; an empty range is valid and means "no cards in
// this chunk". The chunk is re-validated because values may originate from
// untrusted CLI input.
func ChunkRange(n int, c Chunk) (lo, hi int, err error) {
	if _, err := NewChunk(c.Index, c.Count); err != nil {
		return 0, 0, err
	}
	if n < 0 {
		return 0, 0, fmt.Errorf("deck length must not be negative, got %d", n)
	}
	size := n / c.Count
	extra := n % c.Count
	// The first `extra` groups hold size+1 elements.
	idx := c.Index - 1
	if idx < extra {
		lo = idx * (size + 1)
		hi = lo + size + 1
	} else {
		lo = extra*(size+1) + (idx-extra)*size
		hi = lo + size
	}
	return lo, hi, nil
}
