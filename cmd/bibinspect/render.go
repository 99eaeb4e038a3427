package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/xdg-go/bib"
	"go.mongodb.org/mongo-driver/bson"
	"gopkg.in/yaml.v3"
)

func render(w io.Writer, name string, doc *bib.Bibtex, format string) error {
	switch format {
	case FormatYAML:
		return renderYAML(w, name, doc)
	case FormatBSON:
		return renderBSON(w, doc)
	default:
		return renderSummary(w, name, doc)
	}
}

func renderSummary(w io.Writer, name string, doc *bib.Bibtex) error {
	byKind := make(map[bib.EntryKind]int)
	byType := make(map[string]int)
	for _, e := range doc.Entries() {
		byKind[e.Kind()]++
		if be, ok := e.(bib.BibliographyEntry); ok {
			byType[be.EntryType]++
		}
	}

	if _, err := fmt.Fprintf(w, "%s: %d entries\n", name, doc.Len()); err != nil {
		return err
	}
	for _, k := range []bib.EntryKind{bib.KindComment, bib.KindPreamble, bib.KindVariable, bib.KindBibliography} {
		if _, err := fmt.Fprintf(w, "  %-10s %d\n", k, byKind[k]); err != nil {
			return err
		}
	}

	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		if _, err := fmt.Fprintf(w, "    %-16s %d\n", t, byType[t]); err != nil {
			return err
		}
	}
	return nil
}

type yamlTag struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
	Kind  string `yaml:"kind"`
}

type yamlEntry struct {
	Kind  string    `yaml:"kind"`
	Text  string    `yaml:"text,omitempty"`
	Raw   string    `yaml:"raw,omitempty"`
	Name  string    `yaml:"name,omitempty"`
	Value string    `yaml:"value,omitempty"`
	Type  string    `yaml:"type,omitempty"`
	Key   string    `yaml:"key,omitempty"`
	Tags  []yamlTag `yaml:"tags,omitempty"`
}

type yamlFile struct {
	File    string      `yaml:"file"`
	Entries []yamlEntry `yaml:"entries"`
}

func toYAML(name string, doc *bib.Bibtex) yamlFile {
	out := yamlFile{File: name, Entries: make([]yamlEntry, 0, doc.Len())}
	for _, e := range doc.Entries() {
		ye := yamlEntry{Kind: e.Kind().String()}
		switch e := e.(type) {
		case bib.Comment:
			ye.Text = e.Text
		case bib.Preamble:
			ye.Text = e.Text
			ye.Raw = e.Raw
		case bib.Variable:
			ye.Name = e.Name
			ye.Value = e.Value
		case bib.BibliographyEntry:
			ye.Type = e.EntryType
			ye.Key = e.CitationKey
			for _, t := range e.Tags() {
				ye.Tags = append(ye.Tags, yamlTag{Key: t.Key, Value: t.Value, Kind: t.Kind.String()})
			}
		}
		out.Entries = append(out.Entries, ye)
	}
	return out
}

func renderYAML(w io.Writer, name string, doc *bib.Bibtex) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toYAML(name, doc)); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

func renderBSON(w io.Writer, doc *bib.Bibtex) error {
	out, err := doc.MarshalBSON()
	if err != nil {
		return fmt.Errorf("encoding bson: %w", err)
	}
	_, err = fmt.Fprintln(w, bson.Raw(out).String())
	return err
}
