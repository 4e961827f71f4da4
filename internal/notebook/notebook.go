// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package notebook models the Jupyter notebook container (.ipynb): an
// ordered cell sequence plus document metadata and format version. The
// package owns loading, serialization, and deep copying; it never
// interprets cell code content.
package notebook

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CellType tags a cell as code, markdown, or raw. The container format
// permits other document-defined kinds; anything that is not CellCode is
// treated as a plain text cell.
type CellType string

const (
	CellCode     CellType = "code"
	CellMarkdown CellType = "markdown"
	CellRaw      CellType = "raw"
)

// Cell is one unit of a notebook document. Source is canonicalized to a
// single string at load time; the on-disk format may store it as either a
// string or a list of fragments. Outputs and ExecutionCount are only
// meaningful on code cells and stay nil on every other kind.
type Cell struct {
	Type           CellType
	Source         string
	Metadata       map[string]any
	Outputs        []json.RawMessage
	ExecutionCount *int
}

// Document is an in-memory notebook: cells in reading order, free-form
// document metadata (opaque here, carries kernelspec/language info), and
// the nbformat version pair.
type Document struct {
	Cells         []Cell
	Metadata      map[string]any
	NBFormat      int
	NBFormatMinor int
}

// Lines returns the cell source split on newlines.
func (c *Cell) Lines() []string {
	return strings.Split(c.Source, "\n")
}

// HasLine reports whether any source line, after stripping leading and
// trailing whitespace, equals want exactly. This is the marker predicate:
// a whole-line match flags the whole cell.
func (c *Cell) HasLine(want string) bool {
	for _, line := range c.Lines() {
		if strings.TrimSpace(line) == want {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the cell sharing no mutable state with the
// receiver.
func (c Cell) Clone() Cell {
	out := Cell{
		Type:   c.Type,
		Source: c.Source,
	}
	if c.Metadata != nil {
		out.Metadata = copyValue(c.Metadata).(map[string]any)
	}
	if c.Outputs != nil {
		out.Outputs = make([]json.RawMessage, len(c.Outputs))
		for i, o := range c.Outputs {
			out.Outputs[i] = append(json.RawMessage(nil), o...)
		}
	}
	if c.ExecutionCount != nil {
		n := *c.ExecutionCount
		out.ExecutionCount = &n
	}
	return out
}

// CloneCells deep-copies a cell slice.
func CloneCells(cells []Cell) []Cell {
	out := make([]Cell, len(cells))
	for i, c := range cells {
		out[i] = c.Clone()
	}
	return out
}

// copyValue deep-copies the JSON-shaped values found in metadata maps.
func copyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = copyValue(e)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, e := range t {
			s[i] = copyValue(e)
		}
		return s
	default:
		// Scalars (string, float64, bool, nil, json.Number) are immutable.
		return t
	}
}

// cellJSON is the decode shadow for Cell. Source is kept raw so both
// storage variants (string, fragment list) can be canonicalized.
type cellJSON struct {
	CellType       string            `json:"cell_type"`
	Source         json.RawMessage   `json:"source"`
	Metadata       map[string]any    `json:"metadata"`
	Outputs        []json.RawMessage `json:"outputs"`
	ExecutionCount *int              `json:"execution_count"`
}

// UnmarshalJSON decodes a cell, normalizing the source field to a single
// string regardless of the storage variant.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var raw cellJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.CellType == "" {
		return fmt.Errorf("cell missing cell_type")
	}

	src, err := sourceText(raw.Source)
	if err != nil {
		return fmt.Errorf("cell source: %w", err)
	}

	c.Type = CellType(raw.CellType)
	c.Source = src
	c.Metadata = raw.Metadata
	if c.Type == CellCode {
		c.Outputs = raw.Outputs
		c.ExecutionCount = raw.ExecutionCount
	} else {
		c.Outputs = nil
		c.ExecutionCount = nil
	}
	return nil
}

// codeCellJSON and textCellJSON are the encode shadows. Code cells always
// carry outputs and execution_count (null when cleared); other cells never
// carry either key.
type codeCellJSON struct {
	CellType       CellType          `json:"cell_type"`
	ExecutionCount *int              `json:"execution_count"`
	Metadata       map[string]any    `json:"metadata"`
	Outputs        []json.RawMessage `json:"outputs"`
	Source         []string          `json:"source"`
}

type textCellJSON struct {
	CellType CellType       `json:"cell_type"`
	Metadata map[string]any `json:"metadata"`
	Source   []string       `json:"source"`
}

// MarshalJSON encodes a cell with source as a list of newline-terminated
// fragments, the form the reference notebook tooling emits.
func (c Cell) MarshalJSON() ([]byte, error) {
	meta := c.Metadata
	if meta == nil {
		meta = map[string]any{}
	}

	if c.Type == CellCode {
		outputs := c.Outputs
		if outputs == nil {
			outputs = []json.RawMessage{}
		}
		return json.Marshal(codeCellJSON{
			CellType:       c.Type,
			ExecutionCount: c.ExecutionCount,
			Metadata:       meta,
			Outputs:        outputs,
			Source:         splitFragments(c.Source),
		})
	}
	return json.Marshal(textCellJSON{
		CellType: c.Type,
		Metadata: meta,
		Source:   splitFragments(c.Source),
	})
}

// sourceText joins a raw source field into one string. The container
// schema allows a plain string or an ordered list of fragments that
// concatenate to the full text.
func sourceText(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}

	var fragments []string
	if err := json.Unmarshal(raw, &fragments); err == nil {
		return strings.Join(fragments, ""), nil
	}

	var null any
	if err := json.Unmarshal(raw, &null); err == nil && null == nil {
		return "", nil
	}

	return "", fmt.Errorf("expected string or list of strings, got %s", truncate(string(raw), 40))
}

// splitFragments splits text into newline-terminated fragments. Each
// fragment keeps its trailing newline; a final fragment without one is
// preserved as-is. The round trip through sourceText is lossless.
func splitFragments(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.SplitAfter(s, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
