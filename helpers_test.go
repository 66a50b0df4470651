package wavsplit

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

type testChunk struct {
	id   string
	size uint32
}

var (
	errFileTooSmall         = errors.New("file too small")
	errInvalidRiffWaveHdr   = errors.New("invalid riff/wave header")
	errChunkExceedsFileSize = errors.New("chunk exceeds file size")
)

// makeWav encodes a mono 16-bit PCM file. Sample values stay within +/-1000,
// so the payload never contains a RIFF/WAVE lookalike.
func makeWav(t *testing.T, sampleRate, numSamples, seed int) []byte {
	t.Helper()

	path := filepath.Join(t.TempDir(), fmt.Sprintf("fixture_%d.wav", seed))

	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture: %v", err)
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: 16,
		Data:           make([]int, numSamples),
	}
	for i := range buf.Data {
		buf.Data[i] = (i*37+seed*101)%2001 - 1000
	}

	enc := wav.NewEncoder(file, sampleRate, 16, 1, 1)
	if err := enc.Write(buf); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}

	if err := enc.Close(); err != nil {
		t.Fatalf("close encoder: %v", err)
	}

	if err := file.Close(); err != nil {
		t.Fatalf("close fixture: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	return data
}

// riffWave builds a header with an accurate size field around body.
func riffWave(body []byte) []byte {
	out := make([]byte, 0, headerLen+len(body))
	out = append(out, "RIFF"...)
	out = binary.LittleEndian.AppendUint32(out, uint32(4+len(body)))
	out = append(out, "WAVE"...)

	return append(out, body...)
}

// parseWavChunks walks the sub-chunks of a single WAV file and fails when
// one of them runs past the end of data.
func parseWavChunks(data []byte) ([]testChunk, error) {
	if len(data) < headerLen {
		return nil, errFileTooSmall
	}

	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, errInvalidRiffWaveHdr
	}

	var chunks []testChunk

	offset := headerLen
	for offset+8 <= len(data) {
		id := string(data[offset : offset+4])
		size := binary.LittleEndian.Uint32(data[offset+4 : offset+8])
		offset += 8

		end := offset + int(size)
		if end > len(data) {
			return nil, fmt.Errorf("%w: %q", errChunkExceedsFileSize, id)
		}

		chunks = append(chunks, testChunk{id: id, size: size})

		offset = end
		if size%2 == 1 {
			offset++
		}
	}

	return chunks, nil
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()

	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}

	return data
}
