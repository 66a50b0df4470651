package wavsplit

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultOwner is used in listings when no owner is configured.
	DefaultOwner = "user"

	listingMode  = "-rw-r--r--"
	listingLinks = 1
	listingTime  = "Jan 02 15:04"
)

// ListWavFiles returns the entries of dir whose name ends in ".wav", in any
// case, sorted by name. Sub-directories are skipped.
func ListWavFiles(dir string) ([]fs.DirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, inputErr("source directory", dir, err)
	}

	// os.ReadDir already sorts by file name.
	var out []fs.DirEntry
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".wav") {
			continue
		}

		out = append(out, e)
	}

	return out, nil
}

// Concatenate joins the WAV files of dir in ListWavFiles order, with nothing
// between them.
func Concatenate(dir string) ([]byte, error) {
	entries, err := ListWavFiles(dir)
	if err != nil {
		return nil, err
	}

	var blob []byte
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, inputErr("WAV file", path, err)
		}

		blob = append(blob, data...)
	}

	return blob, nil
}

// FormatListingLine renders one ls-style line. The mode and link count are
// fixed; an empty owner falls back to DefaultOwner.
func FormatListingLine(owner string, size int64, modTime time.Time, name string) string {
	if owner == "" {
		owner = DefaultOwner
	}

	return fmt.Sprintf("%s %d %s %8d %s %s",
		listingMode, listingLinks, owner, size, modTime.Format(listingTime), name)
}

// DescribeDirectory lists the WAV files of dir, one FormatListingLine each, in
// the order Concatenate packs them.
func DescribeDirectory(dir, owner string) ([]string, error) {
	entries, err := ListWavFiles(dir)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			return nil, inputErr("WAV file", filepath.Join(dir, e.Name()), err)
		}

		lines = append(lines, FormatListingLine(owner, info.Size(), info.ModTime(), e.Name()))
	}

	return lines, nil
}

// Describe writes the listing of dir to namesPath and returns the number of
// lines written.
func Describe(dir, namesPath, owner string) (int, error) {
	lines, err := DescribeDirectory(dir, owner)
	if err != nil {
		return 0, err
	}

	if err := WriteNameList(namesPath, lines); err != nil {
		return 0, err
	}

	return len(lines), nil
}

// Repack concatenates dir into blobPath, then regenerates namesPath from the
// same directory. It returns the number of files packed.
func Repack(blobPath, dir, namesPath, owner string, opts ...Option) (int, error) {
	o := newOptions(opts)

	blob, err := Concatenate(dir)
	if err != nil {
		return 0, err
	}

	if err := os.WriteFile(blobPath, blob, 0o644); err != nil {
		return 0, fmt.Errorf("failed to write blob %s: %w", blobPath, err)
	}

	o.logger.Info("wrote blob", "path", blobPath, "size", len(blob), "source", dir)

	n, err := Describe(dir, namesPath, owner)
	if err != nil {
		return 0, err
	}

	o.logger.Info("wrote name list", "path", namesPath, "entries", n)

	return n, nil
}
