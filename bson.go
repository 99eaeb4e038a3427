package bib

import (
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// BSON layout of a document:
//
//	{ entries: [ {kind: "comment",  text},
//	             {kind: "preamble", text, raw},
//	             {kind: "string",   name, value},
//	             {kind: "entry",    type, key, tags: [{key, value, kind}, ...]} ] }
//
// Tags are written as an array so that order and duplicate keys survive.

// small array keys are precomputed
var arrayKey = [...]string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}

func indexKey(i int) string {
	if i < len(arrayKey) {
		return arrayKey[i]
	}
	return strconv.Itoa(i)
}

// MarshalBSON implements bson.Marshaler, so a *Bibtex can be passed directly
// to the MongoDB driver.
func (b *Bibtex) MarshalBSON() ([]byte, error) {
	return b.AppendBSON(make([]byte, 0, 256))
}

// AppendBSON appends the BSON form of the document to dst and returns the
// extended buffer, just like with `append`.
func (b *Bibtex) AppendBSON(dst []byte) ([]byte, error) {
	idx, dst := bsoncore.AppendDocumentStart(dst)
	arrIdx, dst := bsoncore.AppendArrayElementStart(dst, "entries")
	var err error
	for i, e := range b.entries {
		dst, err = appendEntryElement(dst, indexKey(i), e)
		if err != nil {
			return nil, err
		}
	}
	dst, err = bsoncore.AppendArrayEnd(dst, arrIdx)
	if err != nil {
		return nil, err
	}
	return bsoncore.AppendDocumentEnd(dst, idx)
}

// MarshalBSON implements bson.Marshaler for a single bibliography entry.
func (e BibliographyEntry) MarshalBSON() ([]byte, error) {
	idx, dst := bsoncore.AppendDocumentStart(make([]byte, 0, 128))
	dst, err := appendBibliographyFields(dst, e)
	if err != nil {
		return nil, err
	}
	return bsoncore.AppendDocumentEnd(dst, idx)
}

func appendEntryElement(dst []byte, key string, e Entry) ([]byte, error) {
	idx, dst := bsoncore.AppendDocumentElementStart(dst, key)
	var err error
	switch e := e.(type) {
	case Comment:
		dst = bsoncore.AppendStringElement(dst, "kind", KindComment.String())
		dst = bsoncore.AppendStringElement(dst, "text", e.Text)
	case Preamble:
		dst = bsoncore.AppendStringElement(dst, "kind", KindPreamble.String())
		dst = bsoncore.AppendStringElement(dst, "text", e.Text)
		dst = bsoncore.AppendStringElement(dst, "raw", e.Raw)
	case Variable:
		dst = bsoncore.AppendStringElement(dst, "kind", KindVariable.String())
		dst = bsoncore.AppendStringElement(dst, "name", e.Name)
		dst = bsoncore.AppendStringElement(dst, "value", e.Value)
	case BibliographyEntry:
		dst, err = appendBibliographyFields(dst, e)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("bib: cannot encode entry of type %T", e)
	}
	return bsoncore.AppendDocumentEnd(dst, idx)
}

func appendBibliographyFields(dst []byte, e BibliographyEntry) ([]byte, error) {
	dst = bsoncore.AppendStringElement(dst, "kind", KindBibliography.String())
	dst = bsoncore.AppendStringElement(dst, "type", e.EntryType)
	dst = bsoncore.AppendStringElement(dst, "key", e.CitationKey)

	arrIdx, dst := bsoncore.AppendArrayElementStart(dst, "tags")
	var err error
	for i, t := range e.tags {
		var tagIdx int32
		tagIdx, dst = bsoncore.AppendDocumentElementStart(dst, indexKey(i))
		dst = bsoncore.AppendStringElement(dst, "key", t.Key)
		dst = bsoncore.AppendStringElement(dst, "value", t.Value)
		dst = bsoncore.AppendStringElement(dst, "kind", t.Kind.String())
		dst, err = bsoncore.AppendDocumentEnd(dst, tagIdx)
		if err != nil {
			return nil, err
		}
	}
	return bsoncore.AppendArrayEnd(dst, arrIdx)
}
