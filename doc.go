// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package bib parses BibTeX databases into an ordered list of entries
// without copying the input text.
//
// A database is a sequence of `@` constructs separated by free text, which
// is ignored:
//
//	@comment{...}                    Comment
//	@preamble{...}                   Preamble
//	@string{name = value}            Variable
//	@article{key, tag = value, ...}  BibliographyEntry
//
// The keywords comment, preamble and string are matched without regard to
// case; any other keyword is kept verbatim as the entry type.  Entries may be
// delimited by braces or parentheses.  Tag values may be braced (nesting to
// any depth), quoted, a bare number, or the bare name of a string variable.
// Variable references are reported as written and are not resolved.
//
// Parsing is all-or-nothing: the first error stops the parse and is returned
// as a *ParseError, whose Kind tells whether the input ended too early
// (Incomplete) or held something unexpected (Syntax).
//
// Zero copy
//
// Every string in a parsed document is a substring of the input.  With Parse
// this is always safe, because Go strings are immutable.  ParseBytes avoids
// converting a []byte to a string, so the caller must leave the slice
// untouched while the document is in use.
//
// BSON
//
// Documents and bibliography entries implement bson.Marshaler from the
// MongoDB Go driver, so they can be stored without an intermediate
// representation.
//
// Concurrency
//
// Parse keeps no state between calls.  Any number of parses may run at
// once, including over the same input.
package bib
