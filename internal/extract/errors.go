// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "fmt"

// Marker identifies which sentinel an error refers to.
type Marker string

const (
	StartMarker Marker = "start"
	EndMarker   Marker = "end"
)

// MarkerNotFoundError reports a sentinel that no cell contains. For the
// end marker the search only covers cells after the start cell.
type MarkerNotFoundError struct {
	Which    Marker
	Sentinel string
}

func (e *MarkerNotFoundError) Error() string {
	if e.Which == EndMarker {
		return fmt.Sprintf("end marker %q not found after the start marker; add a cell containing a line exactly: %s",
			e.Sentinel, e.Sentinel)
	}
	return fmt.Sprintf("start marker %q not found; add a cell containing a line exactly: %s",
		e.Sentinel, e.Sentinel)
}

// DuplicateMarkerError reports a sentinel contained by more than one cell
// anywhere in the document. Uniqueness is document-wide: occurrences
// outside the resolved extraction range still count.
type DuplicateMarkerError struct {
	Which    Marker
	Sentinel string
	Count    int
}

func (e *DuplicateMarkerError) Error() string {
	return fmt.Sprintf("expected exactly 1 cell with %s marker %q, found %d; remove duplicates or make the marker unique",
		e.Which, e.Sentinel, e.Count)
}

// MarkerOrderError reports a resolved end index at or before the start
// index. The scan order makes this structurally impossible; it is checked
// anyway as an invariant.
type MarkerOrderError struct {
	Start int
	End   int
}

func (e *MarkerOrderError) Error() string {
	return fmt.Sprintf("end marker cell %d does not follow start marker cell %d", e.End, e.Start)
}
