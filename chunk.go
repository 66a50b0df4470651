package wavsplit

// Chunk is one span of a blob, from a detected header up to the next header or
// the end of the blob.
type Chunk struct {
	// Index is the chunk position in detection order.
	Index int
	// Offset is the position of the chunk's RIFF header within the blob.
	Offset int
	// Data aliases the blob; use Clone to detach it.
	Data []byte
}

// End returns the exclusive end offset of the chunk.
func (c Chunk) End() int {
	return c.Offset + len(c.Data)
}

// Len returns the chunk size in bytes.
func (c Chunk) Len() int {
	return len(c.Data)
}

func (c Chunk) Clone() Chunk {
	out := c
	out.Data = append([]byte(nil), c.Data...)

	return out
}

// SplitIntoChunks cuts blob at the given ascending offsets. The length of the
// blob acts as the final boundary, so the chunks are contiguous and cover
// [offsets[0], len(blob)). Bytes ahead of the first offset belong to no chunk.
func SplitIntoChunks(blob []byte, offsets []int) []Chunk {
	if len(offsets) == 0 {
		return nil
	}

	bounds := make([]int, 0, len(offsets)+1)
	bounds = append(bounds, offsets...)
	bounds = append(bounds, len(blob))

	chunks := make([]Chunk, 0, len(offsets))
	for n := range len(bounds) - 1 {
		chunks = append(chunks, Chunk{
			Index:  n,
			Offset: bounds[n],
			Data:   blob[bounds[n]:bounds[n+1]:bounds[n+1]],
		})
	}

	return chunks
}
