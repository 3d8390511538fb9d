package history

import (
	"bytes"
	"io"
	"strings"
)

const chunkSize = 4096

// ReverseScanner yields the non-blank lines of a file from last to first,
// reading it backwards in fixed-size chunks so only the tail is loaded.
type ReverseScanner struct {
	r      io.ReaderAt
	offset int64
	chunk  int64
	// carry is the partial line at the start of the last chunk read
	carry   []byte
	pending []string
	line    string
	err     error
}

// NewReverseScanner scans the first size bytes of r.
func NewReverseScanner(r io.ReaderAt, size int64) *ReverseScanner {
	return &ReverseScanner{r: r, offset: size, chunk: chunkSize}
}

// Scan advances to the previous line.
func (s *ReverseScanner) Scan() bool {
	for {
		line, ok := s.next()
		if !ok {
			return false
		}
		line = strings.TrimRight(line, "\r")
		if line != "" {
			s.line = line
			return true
		}
	}
}

// Text returns the line found by the last Scan.
func (s *ReverseScanner) Text() string {
	return s.line
}

// Err returns the first read error.
func (s *ReverseScanner) Err() error {
	return s.err
}

func (s *ReverseScanner) next() (string, bool) {
	for len(s.pending) == 0 {
		if s.err != nil {
			return "", false
		}
		if s.offset == 0 {
			if s.carry == nil {
				return "", false
			}
			line := string(s.carry)
			s.carry = nil
			return line, true
		}

		n := s.chunk
		if n > s.offset {
			n = s.offset
		}
		s.offset -= n

		buf := make([]byte, n)
		if _, err := s.r.ReadAt(buf, s.offset); err != nil && err != io.EOF {
			s.err = err
			return "", false
		}

		parts := bytes.Split(append(buf, s.carry...), []byte{'\n'})
		s.carry = parts[0]
		for _, p := range parts[1:] {
			s.pending = append(s.pending, string(p))
		}
	}

	last := len(s.pending) - 1
	line := s.pending[last]
	s.pending = s.pending[:last]
	return line, true
}
