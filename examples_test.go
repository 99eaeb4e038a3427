package bib_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/xdg-go/bib"
)

func ExampleParse() {
	input := `
@string{goossens = "Goossens, Michel"}

Text outside of entries is ignored.

@article{key1, title = {A {B} C}, year = 2020, author = goossens}
`
	doc, err := bib.Parse(input)
	if err != nil {
		log.Fatal(err)
	}

	for _, e := range doc.Entries() {
		switch e := e.(type) {
		case bib.Variable:
			fmt.Printf("string %s = %q\n", e.Name, e.Value)
		case bib.BibliographyEntry:
			fmt.Printf("%s %s\n", e.EntryType, e.CitationKey)
			for _, t := range e.Tags() {
				fmt.Printf("  %s = %q (%s)\n", t.Key, t.Value, t.Kind)
			}
		}
	}
	// Output:
	// string goossens = "Goossens, Michel"
	// article key1
	//   title = "A {B} C" (braced)
	//   year = "2020" (number)
	//   author = "goossens" (reference)
}

func ExampleParseError() {
	_, err := bib.Parse(`@misc{k, title = {unterminated`)

	var pe *bib.ParseError
	if errors.As(err, &pe) {
		fmt.Println(pe.Kind, errors.Is(err, bib.ErrIncomplete))
	}
	// Output:
	// incomplete input true
}
