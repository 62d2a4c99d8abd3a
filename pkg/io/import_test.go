package io

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ershov-z/stageflow/pkg/errors"
	"github.com/ershov-z/stageflow/pkg/program"
)

func TestReadProgram(t *testing.T) {
	doc := `{
		"items": [
			{"id": 1, "name": "Opening", "kind": "prelude"},
			{"id": 2, "name": "Duet", "actors": [{"name": "Volkov"}, {"name": "Orlova", "tags": ["later"]}], "kv": true},
			{"id": 3, "name": "Solo", "kind": "performance", "fixed": true}
		]
	}`

	items, err := ReadProgram(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items", len(items))
	}
	if items[0].Kind != program.KindPrelude {
		t.Errorf("kind = %s", items[0].Kind)
	}
	// Missing kind defaults to performance.
	if items[1].Kind != program.KindPerformance || !items[1].Special {
		t.Errorf("item 2 = %+v", items[1])
	}
	a, ok := items[1].Actor("orlova")
	if !ok || !a.HasTag(program.TagLater) {
		t.Errorf("actor lookup = %+v/%v", a, ok)
	}
	if !items[2].Fixed {
		t.Error("fixed flag lost")
	}
}

func TestReadProgram_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code errors.Code
	}{
		{"malformed json", `{"items": [`, errors.ErrCodeInvalidFormat},
		{"empty program", `{"items": []}`, errors.ErrCodeInvalidInput},
		{"unknown kind", `{"items": [{"id": 1, "kind": "intermission"}]}`, errors.ErrCodeInvalidItem},
		{"non-positive id", `{"items": [{"id": 0}]}`, errors.ErrCodeInvalidItem},
		{"duplicate id", `{"items": [{"id": 1}, {"id": 1}]}`, errors.ErrCodeInvalidItem},
		{"nameless actor", `{"items": [{"id": 1, "actors": [{"name": ""}]}]}`, errors.ErrCodeInvalidItem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadProgram(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %s, want %s", got, tt.code)
			}
		})
	}
}

func TestImportProgram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "program.json")
	doc := `{"items": [{"id": 1, "name": "Solo"}]}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	items, err := ImportProgram(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].Name != "Solo" {
		t.Errorf("items = %+v", items)
	}
}

func TestImportProgram_Missing(t *testing.T) {
	_, err := ImportProgram(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}
