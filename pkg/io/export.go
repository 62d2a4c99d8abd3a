package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/ershov-z/stageflow/pkg/program"
)

// ArrangementSet is the export envelope for one scheduling run.
type ArrangementSet struct {
	// RunID identifies the generation run across logs and exports.
	RunID string `json:"run_id"`

	GeneratedAt time.Time `json:"generated_at"`

	// SourceItems is the size of the input program, fillers included.
	SourceItems int `json:"source_items"`

	Arrangements []program.Arrangement `json:"arrangements"`
}

// NewArrangementSet stamps the arrangements with a fresh run ID and the
// current time.
func NewArrangementSet(sourceItems int, arrangements []program.Arrangement) ArrangementSet {
	return ArrangementSet{
		RunID:        uuid.NewString(),
		GeneratedAt:  time.Now().UTC(),
		SourceItems:  sourceItems,
		Arrangements: arrangements,
	}
}

// WriteJSON encodes the arrangement set as indented JSON and writes it
// to w. The output can be consumed directly by external exporters.
func WriteJSON(set ArrangementSet, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes the arrangement set to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(set ArrangementSet, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(set, f)
}
