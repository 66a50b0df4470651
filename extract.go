package wavsplit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MismatchKind tells which side of a pairing had leftovers.
type MismatchKind int

const (
	// ExtraChunks means some chunks had no name and were not written.
	ExtraChunks MismatchKind = iota + 1
	// ExtraNames means some names had no chunk and were not used.
	ExtraNames
)

// Mismatch reports differing chunk and name counts. It is informational: the
// overlapping part is still written.
type Mismatch struct {
	Chunks int
	Names  int
}

// CheckCounts returns nil when both counts agree.
func CheckCounts(chunks, names int) *Mismatch {
	if chunks == names {
		return nil
	}

	return &Mismatch{Chunks: chunks, Names: names}
}

func (m Mismatch) Kind() MismatchKind {
	if m.Chunks > m.Names {
		return ExtraChunks
	}

	return ExtraNames
}

func (m Mismatch) String() string {
	if m.Kind() == ExtraChunks {
		return fmt.Sprintf("more WAV chunks (%d) than names (%d)", m.Chunks, m.Names)
	}

	return fmt.Sprintf("more names (%d) than WAV chunks (%d)", m.Names, m.Chunks)
}

// Written describes one file produced by AssignAndWrite.
type Written struct {
	Path string
	Size int
}

// Result is the outcome of a pairing run.
type Result struct {
	Written  []Written
	Mismatch *Mismatch
}

// Count returns the number of files written.
func (r Result) Count() int {
	return len(r.Written)
}

// AssignAndWrite writes chunk n to outputDir/names[n] for every n both lists
// cover. The directory is created when missing. Files already written stay in
// place when a later write fails, and a repeated name overwrites the earlier
// file.
func AssignAndWrite(chunks []Chunk, names []string, outputDir string, opts ...Option) (Result, error) {
	o := newOptions(opts)
	res := Result{Mismatch: CheckCounts(len(chunks), len(names))}
	count := min(len(chunks), len(names))

	for _, name := range names[:count] {
		if err := checkName(name); err != nil {
			return res, err
		}
	}

	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return res, fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	for n := range count {
		outPath := filepath.Join(outputDir, names[n])

		err := os.WriteFile(outPath, chunks[n].Data, 0o644)
		if err != nil {
			return res, fmt.Errorf("couldn't write chunk %d to %s: %w", n, outPath, err)
		}

		o.logger.Debug("wrote chunk", "index", n, "offset", chunks[n].Offset, "path", outPath, "size", chunks[n].Len())
		res.Written = append(res.Written, Written{Path: outPath, Size: chunks[n].Len()})
	}

	if res.Mismatch != nil {
		o.logger.Warn("chunk and name counts differ", "chunks", res.Mismatch.Chunks, "names", res.Mismatch.Names)
	}

	return res, nil
}

// Extract reads the blob and the name list and writes the paired chunks into
// outputDir. The blob is searched before the name list is opened, so a blob
// without headers is reported even when the list is missing.
func Extract(blobPath, namesPath, outputDir string, opts ...Option) (Result, error) {
	o := newOptions(opts)

	blob, err := ReadBlob(blobPath)
	if err != nil {
		return Result{}, err
	}

	offsets, err := LocateSignatures(blob, opts...)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", blobPath, err)
	}

	o.logger.Info("located WAV headers", "blob", blobPath, "size", len(blob), "headers", len(offsets))

	names, err := ReadNameList(namesPath)
	if err != nil {
		return Result{}, err
	}

	return AssignAndWrite(SplitIntoChunks(blob, offsets), names, outputDir, opts...)
}

// ReadBlob loads the whole blob at path into memory.
func ReadBlob(path string) ([]byte, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, inputErr("input file", path, err)
	}

	return blob, nil
}

func checkName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fmt.Errorf("%w: %q", ErrUnsafeName, name)
	}

	return nil
}
