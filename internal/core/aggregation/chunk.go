package aggregation

const (
	// MaxWriteOps is the hard limit of operations in one atomic write.
	MaxWriteOps = 500

	// DefaultChunkSize leaves headroom under MaxWriteOps.
	DefaultChunkSize = 450
)

// ChunkIncrements splits increments into consecutive slices of at most size
// elements. size is clamped to [1, MaxWriteOps].
func ChunkIncrements(incs []Increment, size int) [][]Increment {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if size > MaxWriteOps {
		size = MaxWriteOps
	}

	chunks := make([][]Increment, 0, (len(incs)+size-1)/size)
	for start := 0; start < len(incs); start += size {
		end := start + size
		if end > len(incs) {
			end = len(incs)
		}
		chunks = append(chunks, incs[start:end])
	}
	return chunks
}
