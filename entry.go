package bib

import (
	"fmt"
	"strings"
)

// EntryKind identifies which of the four entry forms an Entry holds.
type EntryKind int

// Entry kinds.
const (
	KindPreamble EntryKind = iota
	KindComment
	KindVariable
	KindBibliography
)

func (k EntryKind) String() string {
	switch k {
	case KindPreamble:
		return "preamble"
	case KindComment:
		return "comment"
	case KindVariable:
		return "string"
	case KindBibliography:
		return "entry"
	default:
		return fmt.Sprintf("EntryKind(%d)", int(k))
	}
}

// Entry is one `@`-introduced construct of a BibTeX database.  The set of
// implementations is closed: Preamble, Comment, Variable and
// BibliographyEntry.  Use a type switch to get at the contents.
type Entry interface {
	Kind() EntryKind
	isEntry()
}

// Preamble is the content of an @preamble entry.
//
// Raw is the text between the outer delimiters, verbatim.  When that text is
// a `#`-joined sequence of quoted or braced fragments, Text holds the
// fragments concatenated with their delimiters removed; otherwise Text is
// the same as Raw.
type Preamble struct {
	Text string
	Raw  string
}

// Comment is the opaque content of an @comment entry.
type Comment struct {
	Text string
}

// Variable is an @string definition.  Value is stored as written; references
// to other variables inside it are not resolved.
type Variable struct {
	Name  string
	Value string
}

// BibliographyEntry is a citation record such as @article or @book.
type BibliographyEntry struct {
	// EntryType is the keyword after `@`, with its case preserved.
	EntryType string
	// CitationKey identifies the record for cross-referencing.
	CitationKey string

	tags []Tag
}

// ValueKind records how a tag value was written.
type ValueKind int

// Value kinds.
const (
	Braced    ValueKind = iota // {...}
	Quoted                     // "..."
	Number                     // 2020
	Reference                  // name of an @string variable
)

func (k ValueKind) String() string {
	switch k {
	case Braced:
		return "braced"
	case Quoted:
		return "quoted"
	case Number:
		return "number"
	case Reference:
		return "reference"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// Tag is a single `key = value` pair of a bibliography entry.  Value has its
// outer delimiters removed; nested braces are kept verbatim.
type Tag struct {
	Key   string
	Value string
	Kind  ValueKind
}

// NewBibliographyEntry returns an entry with the given tags, in order.
func NewBibliographyEntry(entryType, citationKey string, tags []Tag) BibliographyEntry {
	return BibliographyEntry{
		EntryType:   entryType,
		CitationKey: citationKey,
		tags:        tags,
	}
}

// Tags returns the tags in source order.  Duplicate keys are kept.
func (e BibliographyEntry) Tags() []Tag {
	if len(e.tags) == 0 {
		return nil
	}
	out := make([]Tag, len(e.tags))
	copy(out, e.tags)
	return out
}

// Lookup returns the value of the first tag whose key matches key, ignoring
// case.
func (e BibliographyEntry) Lookup(key string) (string, bool) {
	for _, t := range e.tags {
		if strings.EqualFold(t.Key, key) {
			return t.Value, true
		}
	}
	return "", false
}

func (Preamble) Kind() EntryKind          { return KindPreamble }
func (Comment) Kind() EntryKind           { return KindComment }
func (Variable) Kind() EntryKind          { return KindVariable }
func (BibliographyEntry) Kind() EntryKind { return KindBibliography }

func (Preamble) isEntry()          {}
func (Comment) isEntry()           {}
func (Variable) isEntry()          {}
func (BibliographyEntry) isEntry() {}
