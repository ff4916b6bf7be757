package ptnet

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Flusher writes a net to w in one textual format.
type Flusher interface {
	Flush(w io.Writer, n *Net) error
}

// Format names one of the supported export formats.
type Format string

const (
	DOT  Format = "dot"
	LoLA Format = "lola"
	PNML Format = "pnml"
)

var Formats = []Format{DOT, LoLA, PNML}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// Extension is the file extension used when the export is written to disk.
func (f Format) Extension() string {
	switch f {
	case DOT:
		return "dot"
	case LoLA:
		return "lola"
	case PNML:
		return "pnml"
	default:
		return "txt"
	}
}

// WriteError wraps err so it matches ErrIO.
func WriteError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrIO, err)
}

var errInvalidUTF8 = errors.New("output is not valid UTF-8")

// FlushString runs f into memory and returns the output as a string.
func FlushString(f Flusher, n *Net) (string, error) {
	var buf bytes.Buffer
	if err := f.Flush(&buf, n); err != nil {
		return "", err
	}
	if !utf8.Valid(buf.Bytes()) {
		return "", WriteError(errInvalidUTF8)
	}
	return buf.String(), nil
}
