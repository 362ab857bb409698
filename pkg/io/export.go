package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/filectx/pkg/errors"
	"github.com/matzehuels/filectx/pkg/files"
)

// Entry kinds written to JSON.
const (
	KindTree        = "tree"
	KindCollection  = "collection"
	KindMinimalTree = "minimal-tree"
	KindMinimalSet  = "minimal-set"
	KindMinimal     = "minimal"
)

// Result is the JSON document written by [WriteJSON].
type Result struct {
	Shape        string   `json:"shape"`
	Entries      []Entry  `json:"entries,omitempty"`
	Dependencies []string `json:"dependencies,omitempty"`
}

// Entry describes one resolved file tree or collection.
type Entry struct {
	Kind  string   `json:"kind"`
	Name  string   `json:"name"`
	Files []string `json:"files,omitempty"`
}

// Describe lists the files of a resolved entry. Minimal collections that are
// neither trees nor sets are described by name only.
func Describe(v any) (Entry, error) {
	var (
		e   Entry
		err error
	)
	switch c := v.(type) {
	case files.FileTree:
		e = Entry{Kind: KindTree, Name: c.DisplayName()}
		e.Files, err = c.Files()
	case files.FileCollection:
		e = Entry{Kind: KindCollection, Name: c.DisplayName()}
		e.Files, err = c.Files()
	case files.MinimalFileTree:
		e = Entry{Kind: KindMinimalTree, Name: c.DisplayName()}
		err = c.VisitTree(func(fv files.FileVisit) error {
			e.Files = append(e.Files, fv.Path)
			return nil
		}, nil)
	case files.MinimalFileSet:
		e = Entry{Kind: KindMinimalSet, Name: c.DisplayName()}
		e.Files, err = c.FileSet()
	case files.MinimalFileCollection:
		e = Entry{Kind: KindMinimal, Name: c.DisplayName()}
	default:
		return Entry{}, errors.New(errors.ErrCodeInvalidInput, "cannot describe %T", v)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("list files of %s: %w", e.Name, err)
	}
	return e, nil
}

// Entries describes every item of a resolved list.
func Entries[T any](items []T) ([]Entry, error) {
	out := make([]Entry, 0, len(items))
	for _, it := range items {
		e, err := Describe(it)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// WriteJSON encodes r as indented JSON and writes it to w.
func WriteJSON(r Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes r to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(r Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(r, f)
}
