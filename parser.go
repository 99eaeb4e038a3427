// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bib

import (
	"fmt"
	"strings"
)

// parser is a recursive-descent parser over a single input.  Each `@` entry
// is parsed independently; the first failure aborts the whole parse.
type parser struct {
	s scanner
}

func newParser(src string) *parser {
	return &parser{s: scanner{src: src}}
}

func (p *parser) parse() ([]Entry, error) {
	var entries []Entry
	for {
		// Everything before the next '@' is free text.
		i := strings.IndexByte(p.s.src[p.s.pos:], '@')
		if i < 0 {
			return entries, nil
		}
		p.s.pos += i + 1

		entry, err := p.parseEntry()
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
}

func (p *parser) parseEntry() (Entry, error) {
	keyword, err := p.s.scanIdent("entry type after '@'")
	if err != nil {
		return nil, err
	}

	open, err := p.s.peekAfterWS("expecting '{' or '('")
	if err != nil {
		return nil, err
	}
	if open != '{' && open != '(' {
		return nil, p.s.syntaxError("expecting '{' or '('")
	}

	switch {
	case strings.EqualFold(keyword, "comment"):
		text, err := p.s.scanGroup(false)
		if err != nil {
			return nil, err
		}
		return Comment{Text: text}, nil
	case strings.EqualFold(keyword, "preamble"):
		raw, err := p.s.scanGroup(true)
		if err != nil {
			return nil, err
		}
		return Preamble{Text: preambleText(raw), Raw: raw}, nil
	case strings.EqualFold(keyword, "string"):
		p.s.pos++
		return p.parseVariable(closerFor(open))
	default:
		p.s.pos++
		return p.parseBibliography(keyword, closerFor(open))
	}
}

func (p *parser) parseVariable(closer byte) (Entry, error) {
	name, err := p.s.scanIdent("variable name")
	if err != nil {
		return nil, err
	}
	err = p.s.readCharAfterWS('=')
	if err != nil {
		return nil, err
	}
	value, _, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	err = p.s.readCharAfterWS(closer)
	if err != nil {
		return nil, err
	}
	return Variable{Name: name, Value: value}, nil
}

func (p *parser) parseBibliography(entryType string, closer byte) (Entry, error) {
	key, err := p.s.scanIdent("citation key")
	if err != nil {
		return nil, err
	}

	var tags []Tag
	sepOrEnd := fmt.Sprintf("expecting ',' or '%c'", closer)
	tagOrEnd := fmt.Sprintf("expecting tag or '%c'", closer)
	for {
		ch, err := p.s.peekAfterWS(sepOrEnd)
		if err != nil {
			return nil, err
		}
		switch ch {
		case closer:
			p.s.pos++
			return NewBibliographyEntry(entryType, key, tags), nil
		case ',':
			p.s.pos++
			// A single trailing comma before the closer is allowed.
			next, err := p.s.peekAfterWS(tagOrEnd)
			if err != nil {
				return nil, err
			}
			if next == closer {
				p.s.pos++
				return NewBibliographyEntry(entryType, key, tags), nil
			}
			tag, err := p.parseTag()
			if err != nil {
				return nil, err
			}
			tags = append(tags, tag)
		default:
			return nil, p.s.syntaxError(sepOrEnd)
		}
	}
}

func (p *parser) parseTag() (Tag, error) {
	key, err := p.s.scanIdent("tag name")
	if err != nil {
		return Tag{}, err
	}
	err = p.s.readCharAfterWS('=')
	if err != nil {
		return Tag{}, err
	}
	value, kind, err := p.parseValue()
	if err != nil {
		return Tag{}, err
	}
	return Tag{Key: key, Value: value, Kind: kind}, nil
}

// parseValue reads a braced, quoted, numeric or bare-name value.
func (p *parser) parseValue() (string, ValueKind, error) {
	ch, err := p.s.peekAfterWS("expecting value")
	if err != nil {
		return "", 0, err
	}

	switch {
	case ch == '{':
		v, err := p.s.scanBraced()
		return v, Braced, err
	case ch == '"':
		v, err := p.s.scanQuoted()
		return v, Quoted, err
	case isIdentByte(ch):
		v, err := p.s.scanIdent("value")
		if err != nil {
			return "", 0, err
		}
		if allDigits(v) {
			return v, Number, nil
		}
		return v, Reference, nil
	default:
		return "", 0, p.s.syntaxError("expecting value")
	}
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return len(s) > 0
}

// preambleText concatenates the quoted and braced fragments of a preamble
// joined with '#'.  Content of any other shape is returned unchanged.
func preambleText(raw string) string {
	s := scanner{src: raw}
	var parts []string
	for {
		s.skipWS()
		if s.eof() {
			return raw
		}

		var part string
		var err error
		switch s.src[s.pos] {
		case '{':
			part, err = s.scanBraced()
		case '"':
			part, err = s.scanQuoted()
		default:
			return raw
		}
		if err != nil {
			return raw
		}
		parts = append(parts, part)

		s.skipWS()
		if s.eof() {
			break
		}
		if s.src[s.pos] != '#' {
			return raw
		}
		s.pos++
	}

	if len(parts) == 1 {
		return parts[0]
	}
	return strings.Join(parts, "")
}
