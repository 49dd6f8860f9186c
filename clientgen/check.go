package clientgen

import (
	"bufio"
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/developerxd/webapiclientgen/errors"
)

// CheckResult holds the result of an up-to-date check
type CheckResult struct {
	UpToDate bool
	// Differences lists files, relative to the generated directory, whose
	// committed copy differs or is missing.
	Differences []string
}

// CompareDirectories compares freshly generated files in generatedDir with
// the committed files in existingDir. Files present only in existingDir are
// ignored. Line endings and trailing blank lines do not count as differences.
func CompareDirectories(generatedDir, existingDir string) (*CheckResult, error) {
	if _, err := os.Stat(generatedDir); err != nil {
		return nil, errors.Wrapf(err, "generated directory %s", generatedDir)
	}

	var diffs []string
	err := filepath.WalkDir(generatedDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(generatedDir, path)
		if err != nil {
			return err
		}

		existing := filepath.Join(existingDir, rel)
		if _, err := os.Stat(existing); os.IsNotExist(err) {
			diffs = append(diffs, rel+" (missing)")
			return nil
		}
		different, err := filesAreDifferent(path, existing)
		if err != nil {
			return err
		}
		if different {
			diffs = append(diffs, rel)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to compare directories")
	}

	sort.Strings(diffs)
	return &CheckResult{UpToDate: len(diffs) == 0, Differences: diffs}, nil
}

// filesAreDifferent compares two files after normalizing line endings.
func filesAreDifferent(generated, existing string) (bool, error) {
	want, err := os.ReadFile(generated)
	if err != nil {
		return false, errors.Wrapf(err, "failed to read %s", generated)
	}
	got, err := os.ReadFile(existing)
	if err != nil {
		return false, errors.Wrapf(err, "failed to read %s", existing)
	}
	return normalizeLines(want) != normalizeLines(got), nil
}

// normalizeLines drops CR characters and trailing blank lines.
// Returns empty string if scanner encounters an error.
func normalizeLines(content []byte) string {
	var result strings.Builder
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		result.WriteString(strings.TrimRight(scanner.Text(), "\r"))
		result.WriteString("\n")
	}
	if err := scanner.Err(); err != nil {
		return ""
	}
	return strings.TrimRight(result.String(), "\n")
}
