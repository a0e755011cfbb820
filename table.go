package htree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// TableHeader selects which table cells are rendered as header cells.
type TableHeader uint8

const (
	NoHeader     TableHeader = iota
	HeaderRow                // first row is <th>
	HeaderColumn             // first column is <th>
	HeaderBoth
)

func (h TableHeader) isHeaderCell(row, col int) bool {
	switch h {
	case HeaderRow:
		return row == 0
	case HeaderColumn:
		return col == 0
	case HeaderBoth:
		return row == 0 || col == 0
	}
	return false
}

// NewTable creates a <table> element from a grid of cell content. Scalar
// and text cells are wrapped in <td>, or in <th> on header positions;
// element cells are wrapped in <th> on header positions and appended as
// given everywhere else, so callers can supply pre-built cells. Extra
// content (attributes, a caption, …) is ingested into the table element
// after the rows.
func NewTable(rows [][]any, header TableHeader, extra ...any) *Element {
	t := New("table")
	for i, row := range rows {
		tr := Tr()
		for j, cell := range row {
			switch x := cell.(type) {
			case *Element:
				claimPending(x)
				if header.isHeaderCell(i, j) {
					tr.Add(Th(x))
				} else {
					tr.Add(x)
				}
			default:
				if header.isHeaderCell(i, j) {
					tr.Add(Th(cell))
				} else {
					tr.Add(Td(cell))
				}
			}
		}
		t.Add(tr)
	}
	return t.Add(extra...)
}
