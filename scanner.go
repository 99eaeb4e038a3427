package bib

import "fmt"

// scanner walks an input string one byte at a time.  Tokens are returned as
// substrings of src.
type scanner struct {
	src string
	pos int
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }

// isIdentByte reports whether ch may appear in an identifier: entry types,
// citation keys, tag names and variable names.
func isIdentByte(ch byte) bool {
	if ch <= ' ' || ch == 0x7f {
		return false
	}
	switch ch {
	case '@', '{', '}', '(', ')', '=', ',', '"', '#', '%', '\'':
		return false
	}
	return true
}

func closerFor(open byte) byte {
	if open == '(' {
		return ')'
	}
	return '}'
}

func (s *scanner) eof() bool { return s.pos >= len(s.src) }

// skipWS skips white space and `%` line comments.
func (s *scanner) skipWS() {
	for s.pos < len(s.src) {
		switch ch := s.src[s.pos]; {
		case isSpace(ch):
			s.pos++
		case ch == '%':
			for s.pos < len(s.src) && s.src[s.pos] != '\n' {
				s.pos++
			}
		default:
			return
		}
	}
}

// peekAfterWS skips white space and returns the next byte without consuming
// it.  Running out of input is an Incomplete error naming what was expected.
func (s *scanner) peekAfterWS(expecting string) (byte, error) {
	s.skipWS()
	if s.eof() {
		return 0, incompleteError(s.src, expecting)
	}
	return s.src[s.pos], nil
}

// readCharAfterWS consumes b after optional white space.
func (s *scanner) readCharAfterWS(b byte) error {
	s.skipWS()
	if s.eof() {
		return incompleteError(s.src, fmt.Sprintf("expecting '%c'", b))
	}
	if s.src[s.pos] != b {
		return s.syntaxError(fmt.Sprintf("expecting '%c'", b))
	}
	s.pos++
	return nil
}

// syntaxError reports the byte under the cursor as unexpected.
func (s *scanner) syntaxError(expecting string) error {
	return syntaxError(s.src, s.pos, expecting)
}

// scanIdent reads an identifier after optional white space.  what names the
// identifier for error messages.
func (s *scanner) scanIdent(what string) (string, error) {
	s.skipWS()
	if s.eof() {
		return "", incompleteError(s.src, "expecting "+what)
	}
	start := s.pos
	for s.pos < len(s.src) && isIdentByte(s.src[s.pos]) {
		s.pos++
	}
	if s.pos == start {
		return "", s.syntaxError("expecting " + what)
	}
	return s.src[start:s.pos], nil
}

// scanBraced reads a brace-delimited group with the cursor on its opening
// brace.  It returns the content between the outermost braces; nested braces
// must balance and are kept.
func (s *scanner) scanBraced() (string, error) {
	s.pos++
	start := s.pos
	depth := 1
	for ; s.pos < len(s.src); s.pos++ {
		switch s.src[s.pos] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				content := s.src[start:s.pos]
				s.pos++
				return content, nil
			}
		}
	}
	return "", incompleteError(s.src, fmt.Sprintf("expecting '}' to close %d open brace(s)", depth))
}

// scanQuoted reads a quote-delimited group with the cursor on its opening
// quote.  The group ends at the first quote not escaped by a backslash.
// Braces inside are literal and need not balance.
func (s *scanner) scanQuoted() (string, error) {
	s.pos++
	start := s.pos
	for ; s.pos < len(s.src); s.pos++ {
		switch s.src[s.pos] {
		case '\\':
			s.pos++
		case '"':
			content := s.src[start:s.pos]
			s.pos++
			return content, nil
		}
	}
	return "", incompleteError(s.src, "expecting '\"' to close quoted value")
}

// scanParened reads a parenthesis-delimited group with the cursor on its
// opening parenthesis.  Parentheses and braces inside must balance.  With
// quotes set, a quoted run outside braces is skipped whole, so parentheses
// inside it do not count.
func (s *scanner) scanParened(quotes bool) (string, error) {
	s.pos++
	start := s.pos
	parens, braces := 1, 0
	for ; s.pos < len(s.src); s.pos++ {
		switch s.src[s.pos] {
		case '"':
			if !quotes || braces > 0 {
				continue
			}
			if _, err := s.scanQuoted(); err != nil {
				return "", err
			}
			// scanQuoted leaves the cursor after the closing quote.
			s.pos--
		case '{':
			braces++
		case '}':
			if braces == 0 {
				return "", s.syntaxError("expecting ')'")
			}
			braces--
		case '(':
			if braces == 0 {
				parens++
			}
		case ')':
			if braces > 0 {
				continue
			}
			parens--
			if parens == 0 {
				content := s.src[start:s.pos]
				s.pos++
				return content, nil
			}
		}
	}
	return "", incompleteError(s.src, "expecting ')' to close group")
}

// scanGroup reads the raw content of a group opened by the byte under the
// cursor, which must be '{' or '('.  quotes is passed on to scanParened.
func (s *scanner) scanGroup(quotes bool) (string, error) {
	if s.src[s.pos] == '(' {
		return s.scanParened(quotes)
	}
	return s.scanBraced()
}
