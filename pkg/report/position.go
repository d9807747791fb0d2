package report

import (
	"bytes"
	"unicode/utf16"
	"unicode/utf8"
)

// utf16Positions maps byte positions in a source file to the UTF-16 code
// unit positions ESLint consumers expect for columns and fix ranges.
type utf16Positions struct {
	source     []byte
	lineStarts []int
}

func newUTF16Positions(source []byte) *utf16Positions {
	starts := []int{0}
	for i := 0; i < len(source); {
		n := bytes.IndexByte(source[i:], '\n')
		if n < 0 {
			break
		}
		i += n + 1
		starts = append(starts, i)
	}
	return &utf16Positions{source: source, lineStarts: starts}
}

// column converts a 0-based byte column on a 1-based line.
// Positions outside the source are returned unchanged.
func (p *utf16Positions) column(line, byteCol int) int {
	if line < 1 || line > len(p.lineStarts) || byteCol < 0 {
		return byteCol
	}
	start := p.lineStarts[line-1]
	end := start + byteCol
	if end > len(p.source) {
		return byteCol
	}
	return utf16Len(p.source[start:end])
}

// offset converts a byte offset from the start of the source.
func (p *utf16Positions) offset(byteOff int) int {
	if byteOff < 0 || byteOff > len(p.source) {
		return byteOff
	}
	return utf16Len(p.source[:byteOff])
}

func utf16Len(b []byte) int {
	n := 0
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
		b = b[size:]
	}
	return n
}
