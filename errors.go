package wavsplit

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrInputNotFound indicates that a blob, name list or source directory
	// does not exist.
	ErrInputNotFound = errors.New("input not found")
	// ErrNoSignaturesFound indicates a blob without any RIFF/WAVE header.
	ErrNoSignaturesFound = errors.New("no WAV headers found")
	// ErrUnsafeName is returned for list entries that are not bare file names.
	ErrUnsafeName = errors.New("unsafe output name")
)

// inputErr maps a missing file onto ErrInputNotFound and keeps the cause.
func inputErr(kind, path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s %s", ErrInputNotFound, kind, path)
	}

	return fmt.Errorf("failed to read %s %s: %w", kind, path, err)
}
