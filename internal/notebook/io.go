// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notebook

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// MalformedDocumentError reports an input file that parses as JSON but
// does not satisfy the notebook container schema.
type MalformedDocumentError struct {
	Path   string
	Reason string
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("malformed notebook %s: %s", e.Path, e.Reason)
}

// documentJSON is the decode shadow for Document. Pointer fields
// distinguish a missing key from a present-but-empty one.
type documentJSON struct {
	Cells         *[]Cell        `json:"cells"`
	Metadata      map[string]any `json:"metadata"`
	NBFormat      *int           `json:"nbformat"`
	NBFormatMinor int            `json:"nbformat_minor"`
}

// Load reads the notebook at path into a Document. Cell source text is
// canonicalized to single strings during decoding, so callers never see
// the string-versus-fragment-list storage variant.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading notebook %s: %w", path, err)
	}

	var raw documentJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &MalformedDocumentError{Path: path, Reason: err.Error()}
	}
	if raw.Cells == nil {
		return nil, &MalformedDocumentError{Path: path, Reason: "missing cells"}
	}
	if raw.NBFormat == nil {
		return nil, &MalformedDocumentError{Path: path, Reason: "missing nbformat"}
	}

	meta := raw.Metadata
	if meta == nil {
		meta = map[string]any{}
	}

	return &Document{
		Cells:         *raw.Cells,
		Metadata:      meta,
		NBFormat:      *raw.NBFormat,
		NBFormatMinor: raw.NBFormatMinor,
	}, nil
}

// encodeJSON is the encode shadow; cells marshal through Cell.MarshalJSON.
type encodeJSON struct {
	Cells         []Cell         `json:"cells"`
	Metadata      map[string]any `json:"metadata"`
	NBFormat      int            `json:"nbformat"`
	NBFormatMinor int            `json:"nbformat_minor"`
}

// Write serializes doc to path, creating the parent directory if needed.
// The file is written in one operation after the full document has been
// marshaled, so a failure never leaves partial output behind.
func Write(doc *Document, path string) error {
	meta := doc.Metadata
	if meta == nil {
		meta = map[string]any{}
	}
	cells := doc.Cells
	if cells == nil {
		cells = []Cell{}
	}

	data, err := json.MarshalIndent(encodeJSON{
		Cells:         cells,
		Metadata:      meta,
		NBFormat:      doc.NBFormat,
		NBFormatMinor: doc.NBFormatMinor,
	}, "", " ")
	if err != nil {
		return fmt.Errorf("marshaling notebook: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing notebook %s: %w", path, err)
	}
	return nil
}
