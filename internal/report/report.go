// Package report derives a machine-readable summary from a parsed diff.
//
// The summary is what scripted consumers of the CLI see, so the marshalled
// payload is validated against its own JSON Schema before it is ever
// emitted.
package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/asynkron/unidiff/pkg/unidiff"
)

// File change statuses reported for each patched file.
const (
	StatusAdded    = "added"
	StatusRemoved  = "removed"
	StatusModified = "modified"
)

// FileSummary describes one patched file.
type FileSummary struct {
	Path    string `json:"path"`
	Status  string `json:"status"`
	Added   int    `json:"added"`
	Removed int    `json:"removed"`
	Hunks   int    `json:"hunks"`
}

// Summary describes a whole parsed diff.
type Summary struct {
	Files        []FileSummary `json:"files"`
	FilesChanged int           `json:"filesChanged"`
	TotalAdded   int           `json:"totalAdded"`
	TotalRemoved int           `json:"totalRemoved"`
}

var (
	summarySchemaLoader     gojsonschema.JSONLoader
	summarySchemaLoaderOnce sync.Once
)

// Build derives the summary for a parsed patch set.
func Build(patch *unidiff.PatchSet) Summary {
	summary := Summary{Files: make([]FileSummary, 0, patch.Len())}
	for _, file := range patch.Files() {
		entry := FileSummary{
			Path:    file.Path(),
			Status:  status(file),
			Added:   file.Added(),
			Removed: file.Removed(),
			Hunks:   file.Len(),
		}
		summary.Files = append(summary.Files, entry)
		summary.TotalAdded += entry.Added
		summary.TotalRemoved += entry.Removed
	}
	summary.FilesChanged = len(summary.Files)
	return summary
}

// Marshal serializes the summary as indented JSON, validating the payload
// against SummarySchema before returning it.
func Marshal(summary Summary) ([]byte, error) {
	payload, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("report: marshal summary: %w", err)
	}
	if err := Validate(payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// Validate checks a raw JSON payload against the summary schema.
func Validate(payload []byte) error {
	loader := loadSummarySchema()
	result, err := gojsonschema.Validate(loader, gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return fmt.Errorf("report: schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}
	issues := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		issues = append(issues, desc.String())
	}
	return fmt.Errorf("report: summary failed schema validation: %s", strings.Join(issues, "; "))
}

func loadSummarySchema() gojsonschema.JSONLoader {
	summarySchemaLoaderOnce.Do(func() {
		summarySchemaLoader = gojsonschema.NewGoLoader(SummarySchema())
	})
	return summarySchemaLoader
}

func status(file *unidiff.PatchedFile) string {
	switch {
	case file.IsAddedFile():
		return StatusAdded
	case file.IsRemovedFile():
		return StatusRemoved
	}
	return StatusModified
}
