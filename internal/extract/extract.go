// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract carves the submission region out of a notebook: it
// locates the sentinel marker cells, slices the delimited cell range, and
// clears stale execution state before the result is written back out.
package extract

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pdiddy/nbsubmit/internal/notebook"
	"github.com/pdiddy/nbsubmit/pkg/types"
)

// Options controls slicing and normalization.
type Options struct {
	// IncludeMarkers selects the closed range [Start, End] instead of the
	// open range (Start, End).
	IncludeMarkers bool

	// ClearOutputs empties the outputs of every code cell in the result.
	ClearOutputs bool

	// ClearExecutionCounts nulls the execution count of every code cell
	// in the result.
	ClearExecutionCounts bool
}

// Slice returns the cells selected by r under opts. The result is a deep
// copy: mutating it, including the normalization applied here, never
// touches the source sequence. An empty result (adjacent markers with
// IncludeMarkers off) is valid.
func Slice(cells []notebook.Cell, r Range, opts Options) []notebook.Cell {
	var selected []notebook.Cell
	if opts.IncludeMarkers {
		selected = cells[r.Start : r.End+1]
	} else {
		selected = cells[r.Start+1 : r.End]
	}

	out := notebook.CloneCells(selected)
	Normalize(out, opts)
	return out
}

// Normalize clears execution artifacts from code cells in place. Non-code
// cells pass through untouched. Applying it twice is the same as once.
func Normalize(cells []notebook.Cell, opts Options) {
	for i := range cells {
		if cells[i].Type != notebook.CellCode {
			continue
		}
		if opts.ClearOutputs {
			cells[i].Outputs = []json.RawMessage{}
		}
		if opts.ClearExecutionCounts {
			cells[i].ExecutionCount = nil
		}
	}
}

// Run executes one extraction: load, locate, slice, write. The output
// document carries the source document's metadata and format version, and
// is written only after the full result is assembled in memory; a failure
// at any stage leaves no output file behind. A one-line summary goes to w.
func Run(cfg types.ExtractConfig, w io.Writer) error {
	doc, err := notebook.Load(cfg.InputPath)
	if err != nil {
		return err
	}

	r, err := Locate(doc.Cells, cfg.StartMarker, cfg.EndMarker)
	if err != nil {
		return err
	}

	cells := Slice(doc.Cells, r, Options{
		IncludeMarkers:       cfg.IncludeMarkers,
		ClearOutputs:         !cfg.KeepOutputs,
		ClearExecutionCounts: !cfg.KeepExecCounts,
	})

	out := &notebook.Document{
		Cells:         cells,
		Metadata:      doc.Metadata,
		NBFormat:      doc.NBFormat,
		NBFormatMinor: doc.NBFormatMinor,
	}
	if err := notebook.Write(out, cfg.OutputPath); err != nil {
		return err
	}

	fmt.Fprintf(w, "Wrote %s with %d cells (extracted from cells %d..%d in %s).\n",
		cfg.OutputPath, len(cells), r.Start, r.End, cfg.InputPath)
	return nil
}
