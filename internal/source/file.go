package source

import (
	"crypto/sha256"
	"fmt"
	"os"
	"strings"

	"fortio.org/safecast"
)

// Load reads a file from disk, normalizes BOM, CRLF and NFC, and builds its
// line index.
func Load(path string) (*File, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(path, content, 0)
}

// Virtual builds a File from memory (stdin, tests) with the FileVirtual flag.
func Virtual(name string, content []byte) (*File, error) {
	return New(name, content, FileVirtual)
}

// New normalizes content and returns the resulting File.
func New(path string, content []byte, flags FileFlags) (*File, error) {
	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)
	content, recomposed := normalizeNFC(content)

	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	if recomposed {
		flags |= FileNormalizedNFC
	}

	lineIdx, err := buildLineIndex(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &File{
		Path:    normalizePath(path),
		Content: content,
		LineIdx: lineIdx,
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	}, nil
}

// Text returns the normalized content as a string.
func (f *File) Text() string { return string(f.Content) }

// LineCount returns the number of blocks the file splits into. An empty file
// and a file ending in '\n' both have a final empty block.
func (f *File) LineCount() int { return len(f.LineIdx) + 1 }

// GetLine returns line lineNum (1-based) without its terminator. Out of range
// lines are empty.
func (f *File) GetLine(lineNum int) string {
	if lineNum < 1 || lineNum > f.LineCount() {
		return ""
	}
	start := uint32(0)
	if lineNum > 1 {
		start = f.LineIdx[lineNum-2] + 1
	}
	end, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}
	if lineNum <= len(f.LineIdx) {
		end = f.LineIdx[lineNum-1]
	}
	return string(f.Content[start:end])
}

// Lines splits the content into blocks on '\n'.
func (f *File) Lines() []string {
	return strings.Split(string(f.Content), "\n")
}
