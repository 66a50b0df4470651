package wavsplit

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// nameRe matches the first run of name characters directly followed by a
// lower-case ".wav" extension.
var nameRe = regexp.MustCompile(`[A-Za-z0-9_\-]+\.wav`)

// ParseNames extracts one name per line. Lines without a match are skipped
// and do not take a position; duplicates are kept.
func ParseNames(lines []string) []string {
	var names []string

	for _, line := range lines {
		if m := nameRe.FindString(line); m != "" {
			names = append(names, m)
		}
	}

	return names
}

// ParseNameList reads a name list. Invalid UTF-8 sequences are dropped.
func ParseNameList(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read name list: %w", err)
	}

	text := strings.ToValidUTF8(string(data), "")

	return ParseNames(strings.Split(text, "\n")), nil
}

// ReadNameList loads and parses the name list at path.
func ReadNameList(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, inputErr("name list", path, err)
	}
	defer file.Close()

	return ParseNameList(file)
}

// WriteNameList writes lines to path, each terminated by a newline.
func WriteNameList(path string, lines []string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}

	defer func() {
		cerr := file.Close()
		if cerr != nil && err == nil {
			err = fmt.Errorf("failed to close name list %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(file)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write name list %s: %w", path, err)
		}
	}

	return w.Flush()
}
