package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/ershov-z/stageflow/pkg/errors"
	"github.com/ershov-z/stageflow/pkg/program"
)

// programDoc is the top-level shape of an imported program file.
type programDoc struct {
	Items []program.Item `json:"items"`
}

var validKinds = map[program.Kind]bool{
	program.KindPerformance: true,
	program.KindFiller:      true,
	program.KindSponsor:     true,
	program.KindPrelude:     true,
}

// ReadProgram decodes a program item list from r and validates it.
//
// Validation failures return structured errors: ErrCodeInvalidFormat for
// malformed JSON, ErrCodeInvalidItem for duplicate or non-positive IDs,
// unknown kinds, or nameless actors. Items with an empty kind default to
// performance, matching the external parser's convention.
//
// The returned slice is independent of r; ReadProgram does not close r.
func ReadProgram(r io.Reader) ([]program.Item, error) {
	var doc programDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode program")
	}
	if len(doc.Items) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "program has no items")
	}

	seen := make(map[int]bool, len(doc.Items))
	for i := range doc.Items {
		it := &doc.Items[i]
		if it.Kind == "" {
			it.Kind = program.KindPerformance
		}
		if !validKinds[it.Kind] {
			return nil, errors.New(errors.ErrCodeInvalidItem, "item %d: unknown kind %q", it.ID, it.Kind)
		}
		if it.ID <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidItem, "item at position %d: id must be positive, got %d", i, it.ID)
		}
		if seen[it.ID] {
			return nil, errors.New(errors.ErrCodeInvalidItem, "duplicate item id %d", it.ID)
		}
		seen[it.ID] = true
		for _, a := range it.Actors {
			if a.Name == "" {
				return nil, errors.New(errors.ErrCodeInvalidItem, "item %d: actor with empty name", it.ID)
			}
		}
	}
	return doc.Items, nil
}

// ImportProgram reads and validates the program file at path.
func ImportProgram(path string) ([]program.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return ReadProgram(f)
}
