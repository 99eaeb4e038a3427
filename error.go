package bib

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrorKind distinguishes input that ended too early from input that is
// malformed.  It is informational only; both are reported as *ParseError.
type ErrorKind int

const (
	// Syntax means an unexpected character was found where the grammar
	// expected something else.
	Syntax ErrorKind = iota
	// Incomplete means the input ended inside an unterminated construct.
	Incomplete
)

func (k ErrorKind) String() string {
	switch k {
	case Syntax:
		return "syntax error"
	case Incomplete:
		return "incomplete input"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Sentinels for use with errors.Is.
var (
	ErrSyntax     = errors.New("syntax error")
	ErrIncomplete = errors.New("incomplete input")
)

// ParseError records BibTeX parsing errors.  It includes the position of the
// failure and, for syntax errors, a small excerpt of the text that follows.
type ParseError struct {
	Kind   ErrorKind
	Offset int // byte offset into the input
	Line   int // 1-based
	Column int // 1-based, in bytes
	msg    string
}

func (pe *ParseError) Error() string { return pe.msg }

// Is reports whether target is the sentinel matching the error's kind.
func (pe *ParseError) Is(target error) bool {
	switch pe.Kind {
	case Syntax:
		return target == ErrSyntax
	case Incomplete:
		return target == ErrIncomplete
	}
	return false
}

const excerptLen = 20

// incompleteError reports that src ended while `expecting` was still needed.
func incompleteError(src string, expecting string) error {
	line, col := position(src, len(src))
	return &ParseError{
		Kind:   Incomplete,
		Offset: len(src),
		Line:   line,
		Column: col,
		msg:    fmt.Sprintf("incomplete input: %s (line %d, column %d)", expecting, line, col),
	}
}

// syntaxError reports the unexpected character at offset.  The character
// and the excerpt after it are cut on UTF-8 boundaries.
func syntaxError(src string, offset int, expecting string) error {
	line, col := position(src, offset)
	r, size := utf8.DecodeRuneInString(src[offset:])
	after := src[offset+size:]
	if len(after) > excerptLen {
		n := excerptLen
		for n > 0 && !utf8.RuneStart(after[n]) {
			n--
		}
		after = after[:n]
	}
	return &ParseError{
		Kind:   Syntax,
		Offset: offset,
		Line:   line,
		Column: col,
		msg: fmt.Sprintf("syntax error: %s on char '%c', followed by '%s...' (line %d, column %d)",
			expecting, r, after, line, col),
	}
}

func position(src string, offset int) (line, col int) {
	before := src[:offset]
	line = strings.Count(before, "\n") + 1
	col = offset - strings.LastIndexByte(before, '\n')
	return line, col
}
