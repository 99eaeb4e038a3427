package bib

import (
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"
)

type parseTestCase struct {
	label  string
	input  string
	want   []Entry
	errStr string
	kind   ErrorKind
}

func testWithParse(t *testing.T, cases []parseTestCase) {
	t.Helper()

	for _, c := range cases {
		c := c
		t.Run(c.label, func(t *testing.T) {
			t.Parallel()

			doc, err := Parse(c.input)
			if c.errStr != "" {
				if err == nil {
					t.Fatalf("expected error with '%s', but got nil", c.errStr)
				}
				if !strings.Contains(err.Error(), c.errStr) {
					t.Errorf("expected error with '%s', but got %v", c.errStr, err)
				}
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Fatalf("error wasn't a ParseError: %v", err)
				}
				if pe.Kind != c.kind {
					t.Errorf("expected %v, but got %v", c.kind, pe.Kind)
				}
				if doc != nil {
					t.Errorf("expected no document on error, but got %d entries", doc.Len())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := doc.Entries()
			if len(got) != len(c.want) {
				t.Fatalf("expected %d entries, but got %d: %#v", len(c.want), len(got), got)
			}
			for i := range got {
				if !reflect.DeepEqual(got[i], c.want[i]) {
					t.Errorf("entry %d doesn't match:\nGot:    %#v\nExpect: %#v", i, got[i], c.want[i])
				}
			}
		})
	}
}

func getTestFiles(t *testing.T, dir, prefix, suffix string) []string {
	t.Helper()
	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	keep := make([]string, 0)
	for _, file := range files {
		name := file.Name()
		if prefix != "" && !strings.HasPrefix(name, prefix) {
			continue
		}
		if suffix != "" && !strings.HasSuffix(name, suffix) {
			continue
		}
		keep = append(keep, name)
	}

	return keep
}

func entry(typ, key string, tags ...Tag) BibliographyEntry {
	return NewBibliographyEntry(typ, key, tags)
}

func braced(k, v string) Tag    { return Tag{Key: k, Value: v, Kind: Braced} }
func quoted(k, v string) Tag    { return Tag{Key: k, Value: v, Kind: Quoted} }
func number(k, v string) Tag    { return Tag{Key: k, Value: v, Kind: Number} }
func reference(k, v string) Tag { return Tag{Key: k, Value: v, Kind: Reference} }
