// Package terminal plays the game over a plain text stream: it reads answers
// line by line and renders session events with lipgloss styles.
package terminal

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	// MaxLineLength is the longest answer kept; the rest of the line is dropped
	MaxLineLength = 4096

	// truncationMark ends a cut line so it never reads as a number
	truncationMark = "..."
)

// Reader reads one answer per line
type Reader struct {
	reader *bufio.Reader
}

// NewReader creates a Reader over in
func NewReader(in io.Reader) *Reader {
	return &Reader{reader: bufio.NewReader(in)}
}

// ReadLine returns the next line without its line ending. Lines longer than
// MaxLineLength come back cut short and marked with "...". io.EOF is returned
// once the stream is exhausted.
func (r *Reader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var line []byte
	read := 0
	truncated := false

	for {
		chunk, err := r.reader.ReadSlice('\n')
		read += len(chunk)

		ended := err == nil
		if ended {
			chunk = bytes.TrimSuffix(chunk[:len(chunk)-1], []byte("\r"))
		}

		keep := min(len(chunk), MaxLineLength-len(line))
		line = append(line, chunk[:keep]...)
		if keep < len(chunk) {
			truncated = true
		}

		if ended {
			break
		}

		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}

		if errors.Is(err, io.EOF) {
			if read == 0 {
				return "", io.EOF
			}
			break
		}

		return "", fmt.Errorf("failed to read line: %w", err)
	}

	text := strings.TrimSuffix(string(line), "\r")
	if truncated {
		text += truncationMark
	}

	return text, nil
}

