// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "github.com/pdiddy/nbsubmit/internal/notebook"

// Range identifies the start- and end-marker cells in a cell sequence.
// End is always strictly greater than Start.
type Range struct {
	Start int
	End   int
}

// Width returns the number of cells strictly between the markers.
func (r Range) Width() int {
	return r.End - r.Start - 1
}

// Locate finds the extraction range: the first cell containing the start
// sentinel, then the first cell after it containing the end sentinel.
//
// Two independent checks must both pass. The positional scan resolves the
// range; a separate whole-document count enforces that each sentinel
// occurs in exactly one cell. The counts cover every cell, including ones
// before the resolved start or after the resolved end, so a stray
// duplicate outside the range still fails the run.
func Locate(cells []notebook.Cell, start, end string) (Range, error) {
	startIdx, endIdx := -1, -1
	for i := range cells {
		if startIdx < 0 {
			if cells[i].HasLine(start) {
				startIdx = i
			}
		} else if cells[i].HasLine(end) {
			endIdx = i
			break
		}
	}

	if startIdx < 0 {
		return Range{}, &MarkerNotFoundError{Which: StartMarker, Sentinel: start}
	}
	if endIdx < 0 {
		return Range{}, &MarkerNotFoundError{Which: EndMarker, Sentinel: end}
	}
	if endIdx <= startIdx {
		return Range{}, &MarkerOrderError{Start: startIdx, End: endIdx}
	}

	if n := countCellsWithLine(cells, start); n != 1 {
		return Range{}, &DuplicateMarkerError{Which: StartMarker, Sentinel: start, Count: n}
	}
	if n := countCellsWithLine(cells, end); n != 1 {
		return Range{}, &DuplicateMarkerError{Which: EndMarker, Sentinel: end, Count: n}
	}

	return Range{Start: startIdx, End: endIdx}, nil
}

// countCellsWithLine counts cells in the whole sequence containing the
// sentinel as a stripped line.
func countCellsWithLine(cells []notebook.Cell, want string) int {
	n := 0
	for i := range cells {
		if cells[i].HasLine(want) {
			n++
		}
	}
	return n
}
