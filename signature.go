package wavsplit

import (
	"bytes"
	"errors"
	"fmt"
	"iter"

	"github.com/go-audio/riff"
)

// headerLen covers the RIFF ID, the size field and the WAVE form type.
const headerLen = 12

var errNotWaveForm = errors.New("RIFF form is not WAVE")

// Signatures yields, in ascending order, every offset at which a RIFF/WAVE
// header starts. The scan is overlapping: after a match it resumes one byte
// further, so headers embedded in payload data are reported too unless
// WithStrict is set.
func Signatures(blob []byte, opts ...Option) iter.Seq[int] {
	o := newOptions(opts)

	return func(yield func(int) bool) {
		// end of the last accepted chunk's declared extent, strict mode only
		var covered int

		for pos := 0; pos < len(blob); pos++ {
			i := bytes.Index(blob[pos:], riff.RiffID[:])
			if i < 0 {
				return
			}

			pos += i
			if !isWaveHeader(blob, pos) {
				continue
			}

			if o.strict {
				if pos < covered {
					o.logger.Debug("skipping header inside chunk", "offset", pos, "chunk_end", covered)
					continue
				}

				size, err := DeclaredSize(blob[pos:])
				if err != nil {
					o.logger.Debug("rejecting header", "offset", pos, "error", err)
					continue
				}

				end := int64(pos) + 8 + int64(size)
				if end > int64(len(blob)) {
					o.logger.Debug("rejecting header, declared size exceeds blob",
						"offset", pos, "declared_size", size, "blob_size", len(blob))

					continue
				}

				covered = int(end)
			}

			o.logger.Debug("found WAV header", "offset", pos)

			if !yield(pos) {
				return
			}
		}
	}
}

// LocateSignatures collects Signatures. It fails with ErrNoSignaturesFound
// when the blob holds no header at all.
func LocateSignatures(blob []byte, opts ...Option) ([]int, error) {
	var offsets []int
	for off := range Signatures(blob, opts...) {
		offsets = append(offsets, off)
	}

	if len(offsets) == 0 {
		return nil, ErrNoSignaturesFound
	}

	return offsets, nil
}

// DeclaredSize returns the size field of the RIFF/WAVE header at the start of
// b. The value is whatever the header claims; it is not checked against len(b).
func DeclaredSize(b []byte) (uint32, error) {
	parser := riff.New(bytes.NewReader(b))

	err := parser.ParseHeaders()
	if err != nil {
		return 0, fmt.Errorf("failed to parse RIFF header: %w", err)
	}

	if parser.Format != riff.WavFormatID {
		return 0, errNotWaveForm
	}

	return parser.Size, nil
}

func isWaveHeader(blob []byte, pos int) bool {
	if len(blob)-pos < headerLen {
		return false
	}

	return bytes.Equal(blob[pos:pos+4], riff.RiffID[:]) &&
		bytes.Equal(blob[pos+8:pos+headerLen], riff.WavFormatID[:])
}
