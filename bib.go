// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bib

import "unsafe"

// Bibtex is a parsed BibTeX database: its entries in file order.  A Bibtex
// is never modified after it is built.
type Bibtex struct {
	entries []Entry
}

// New returns a document holding a copy of entries in the given order.
// Entries should be the package's own Preamble, Comment, Variable and
// BibliographyEntry values; other types fail to encode as BSON.
func New(entries []Entry) *Bibtex {
	if len(entries) == 0 {
		return &Bibtex{}
	}
	return &Bibtex{entries: append([]Entry(nil), entries...)}
}

// Parse parses a complete BibTeX database.  Text outside of `@` constructs
// is ignored.  On failure, the error is a *ParseError and no document is
// returned.
//
// All strings in the result are substrings of input, so no text is copied.
// The one exception is a preamble made of several `#`-joined fragments,
// whose Text is concatenated.
func Parse(input string) (*Bibtex, error) {
	p := newParser(input)
	entries, err := p.parse()
	if err != nil {
		return nil, err
	}
	return &Bibtex{entries: entries}, nil
}

// ParseBytes works like Parse but reads input without copying it.  The
// strings of the returned document alias input, so the caller must not
// modify input while the document, or any string taken from it, is in use.
func ParseBytes(input []byte) (*Bibtex, error) {
	return Parse(bytesToString(input))
}

// Entries returns the entries in file order.
func (b *Bibtex) Entries() []Entry {
	if len(b.entries) == 0 {
		return nil
	}
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Len returns the number of entries.
func (b *Bibtex) Len() int {
	return len(b.entries)
}

// Bibliographies returns the bibliography entries in file order.
func (b *Bibtex) Bibliographies() []BibliographyEntry {
	var out []BibliographyEntry
	for _, e := range b.entries {
		if be, ok := e.(BibliographyEntry); ok {
			out = append(out, be)
		}
	}
	return out
}

// Variables returns the @string definitions in file order.
func (b *Bibtex) Variables() []Variable {
	var out []Variable
	for _, e := range b.entries {
		if v, ok := e.(Variable); ok {
			out = append(out, v)
		}
	}
	return out
}

func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
