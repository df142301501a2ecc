// Package message renders raw relay chunks as printable text.
package message

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Builder - implements io.Writer interface to build printable text from byte chunks.
// A multi-byte sequence split between chunks is held back until its tail arrives,
// invalid bytes and control characters are dropped, runs of EOL become a single space.
type Builder struct {
	pending []byte
	prev    rune
	str     strings.Builder
}

func (b *Builder) Write(p []byte) (int, error) {
	data := append(b.pending, p...)
	cut := len(data) - incompleteTail(data)
	b.pending = append([]byte(nil), data[cut:]...)
	data = data[:cut]

	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		data = data[size:]
		switch {
		case r == utf8.RuneError && size == 1:
			// drop
			continue
		case r == '\n' || r == '\r':
			if b.prev != '\n' {
				b.str.WriteByte(' ')
			}
			r = '\n'
		case unicode.IsSpace(r):
			b.str.WriteByte(' ')
		case unicode.IsControl(r):
			// drop
		default:
			b.str.WriteRune(r)
		}
		b.prev = r
	}
	return len(p), nil
}

// Len - returns length (in bytes) of ready string.
func (b *Builder) Len() int {
	return b.str.Len()
}

// Pending - number of bytes held back as an incomplete sequence.
func (b *Builder) Pending() int {
	return len(b.pending)
}

// Flush - returns built string and resets internal builder, pending bytes are kept.
func (b *Builder) Flush() string {
	defer b.str.Reset()
	return b.str.String()
}

// incompleteTail - size of a truncated multi-byte sequence at the end of p.
func incompleteTail(p []byte) int {
	for i := len(p) - 1; i >= 0 && i >= len(p)-utf8.UTFMax; i-- {
		if !utf8.RuneStart(p[i]) {
			continue
		}
		if utf8.FullRune(p[i:]) {
			return 0
		}
		return len(p) - i
	}
	return 0
}
