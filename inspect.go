package wavsplit

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

var errNoFmtChunk = errors.New("no fmt chunk before end of chunk")

// ChunkInfo is the header-level view of a detected chunk. Nothing past the
// fmt chunk is decoded.
type ChunkInfo struct {
	Chunk
	// DeclaredSize is the RIFF size field, which excludes the 8 byte ID/size
	// prefix.
	DeclaredSize uint32
	Format       *audio.Format
	BitDepth     int
	Duration     time.Duration
	// Err is set when the chunk does not carry a readable WAV header.
	Err error
}

// Truncated reports whether the header claims more bytes than the chunk
// holds, which is what a false-positive boundary after it looks like.
func (i ChunkInfo) Truncated() bool {
	return int64(i.DeclaredSize)+8 > int64(i.Len())
}

// Valid reports whether the header could be read.
func (i ChunkInfo) Valid() bool {
	return i.Err == nil
}

// InspectChunk probes the header of c. Failures are stored in the returned
// ChunkInfo rather than returned.
func InspectChunk(c Chunk) ChunkInfo {
	info := ChunkInfo{Chunk: c}

	size, err := DeclaredSize(c.Data)
	if err != nil {
		info.Err = err
		return info
	}

	info.DeclaredSize = size

	dec := wav.NewDecoder(bytes.NewReader(c.Data))
	dec.ReadInfo()

	if err := dec.Err(); err != nil {
		info.Err = fmt.Errorf("failed to read WAV header: %w", err)
		return info
	}

	if dec.NumChans == 0 {
		info.Err = errNoFmtChunk
		return info
	}

	info.Format = dec.Format()
	info.BitDepth = int(dec.BitDepth)

	// The data chunk header gives the PCM length; samples stay unread.
	if err := dec.FwdToPCM(); err != nil {
		info.Err = fmt.Errorf("failed to locate PCM data: %w", err)
		return info
	}

	if dec.AvgBytesPerSec > 0 {
		info.Duration = time.Duration(float64(dec.PCMSize) / float64(dec.AvgBytesPerSec) * float64(time.Second))
	}

	return info
}

// Inspect locates and probes every chunk of blob.
func Inspect(blob []byte, opts ...Option) ([]ChunkInfo, error) {
	offsets, err := LocateSignatures(blob, opts...)
	if err != nil {
		return nil, err
	}

	chunks := SplitIntoChunks(blob, offsets)

	infos := make([]ChunkInfo, 0, len(chunks))
	for _, c := range chunks {
		infos = append(infos, InspectChunk(c))
	}

	return infos, nil
}
