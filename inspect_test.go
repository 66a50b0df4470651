package wavsplit

import (
	"errors"
	"testing"
)

func TestInspectChunkRealFile(t *testing.T) {
	data := makeWav(t, 16000, 1600, 5)
	c := SplitIntoChunks(data, []int{0})[0]

	info := InspectChunk(c)
	if !info.Valid() {
		t.Fatalf("expected valid chunk, got %v", info.Err)
	}

	if info.Format == nil {
		t.Fatal("missing format")
	}

	if info.Format.SampleRate != 16000 {
		t.Fatalf("sample rate=%d, want 16000", info.Format.SampleRate)
	}

	if info.Format.NumChannels != 1 {
		t.Fatalf("channels=%d, want 1", info.Format.NumChannels)
	}

	if info.BitDepth != 16 {
		t.Fatalf("bit depth=%d, want 16", info.BitDepth)
	}

	if info.Duration <= 0 {
		t.Fatalf("duration=%s, want > 0", info.Duration)
	}

	if int(info.DeclaredSize) != len(data)-8 {
		t.Fatalf("declared size=%d, want %d", info.DeclaredSize, len(data)-8)
	}

	if info.Truncated() {
		t.Fatal("complete file reported as truncated")
	}
}

func TestInspectChunkTruncated(t *testing.T) {
	data := makeWav(t, 8000, 400, 6)
	c := Chunk{Data: data[:len(data)-100]}

	info := InspectChunk(c)
	if !info.Valid() {
		t.Fatalf("header should still be readable: %v", info.Err)
	}

	if !info.Truncated() {
		t.Fatal("expected truncated chunk")
	}
}

func TestInspectChunkFakeHeader(t *testing.T) {
	c := SplitIntoChunks(scenarioBlob(), []int{0, 19})[0]

	info := InspectChunk(c)
	if info.Valid() {
		t.Fatal("expected a lookalike header to be reported invalid")
	}

	if info.Format != nil {
		t.Fatalf("unexpected format %+v", info.Format)
	}
}

func TestInspect(t *testing.T) {
	a := makeWav(t, 8000, 80, 7)
	b := makeWav(t, 11025, 90, 8)
	blob := append(append([]byte(nil), a...), b...)

	infos, err := Inspect(blob)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(infos) != 2 {
		t.Fatalf("chunks=%d, want 2", len(infos))
	}

	if infos[1].Offset != len(a) || infos[1].Format.SampleRate != 11025 {
		t.Fatalf("second chunk=%+v", infos[1])
	}

	_, err = Inspect([]byte("nothing"))
	if !errors.Is(err, ErrNoSignaturesFound) {
		t.Fatalf("err=%v, want ErrNoSignaturesFound", err)
	}
}
