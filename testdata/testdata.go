// Package testdata provides embedded X12 test interchanges for testing
// the gox12 library against the sample catalog shipped in package
// catalog (one 850 Purchase Order, one 997 Functional Acknowledgment).
package testdata

import (
	"embed"
	"fmt"
	"path"
)

//go:embed *.x12 malformed/*.x12
var FS embed.FS

// Interchange file names.
const (
	FilePO850          = "po850.x12"
	FileFA997          = "fa997.x12"
	FileMissingBEG     = "malformed/missing_beg.x12"
	FileTruncatedISA   = "malformed/truncated_isa.x12"
	FileInvalidNumeric = "malformed/invalid_numeric.x12"
	FileRepeatOverflow = "malformed/repeat_overflow.x12"
)

// LoadPO850 loads the sample 850 Purchase Order interchange.
func LoadPO850() ([]byte, error) {
	return FS.ReadFile(FilePO850)
}

// LoadFA997 loads the sample 997 Functional Acknowledgment interchange.
func LoadFA997() ([]byte, error) {
	return FS.ReadFile(FileFA997)
}

// LoadMissingBEG loads an 850 interchange with its mandatory BEG
// segment dropped.
func LoadMissingBEG() ([]byte, error) {
	return FS.ReadFile(FileMissingBEG)
}

// LoadTruncatedISA loads an interchange whose ISA header is shorter
// than the fixed 106-byte envelope.
func LoadTruncatedISA() ([]byte, error) {
	return FS.ReadFile(FileTruncatedISA)
}

// LoadInvalidNumeric loads an 850 interchange whose PO1 unit price
// element carries non-numeric characters.
func LoadInvalidNumeric() ([]byte, error) {
	return FS.ReadFile(FileInvalidNumeric)
}

// LoadRepeatOverflow loads an 850 interchange whose CTT segment (bounded
// to one occurrence) repeats twice.
func LoadRepeatOverflow() ([]byte, error) {
	return FS.ReadFile(FileRepeatOverflow)
}

// LoadFile loads any test file by name from the embedded filesystem.
func LoadFile(name string) ([]byte, error) {
	data, err := FS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("loading test file %s: %w", name, err)
	}
	return data, nil
}

// MustLoad loads a test file and panics on error. Useful for test setup
// where failure should halt the test.
func MustLoad(name string) []byte {
	data, err := LoadFile(name)
	if err != nil {
		panic(err)
	}
	return data
}

// ListFiles returns a list of all embedded test file names.
func ListFiles() ([]string, error) {
	var files []string

	entries, err := FS.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("reading root directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			subEntries, err := FS.ReadDir(entry.Name())
			if err != nil {
				return nil, fmt.Errorf("reading directory %s: %w", entry.Name(), err)
			}
			for _, subEntry := range subEntries {
				if !subEntry.IsDir() {
					files = append(files, path.Join(entry.Name(), subEntry.Name()))
				}
			}
		} else {
			files = append(files, entry.Name())
		}
	}

	return files, nil
}

// ListMalformedFiles returns a list of malformed test file names.
func ListMalformedFiles() ([]string, error) {
	entries, err := FS.ReadDir("malformed")
	if err != nil {
		return nil, fmt.Errorf("reading malformed directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() {
			files = append(files, path.Join("malformed", entry.Name()))
		}
	}

	return files, nil
}

// ListValidFiles returns a list of valid (non-malformed) test file names.
func ListValidFiles() ([]string, error) {
	entries, err := FS.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("reading root directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() {
			files = append(files, entry.Name())
		}
	}

	return files, nil
}
