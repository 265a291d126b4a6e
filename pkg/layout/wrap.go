// Package layout holds the pure geometry engines behind the velt
// components: wrap-flow packing, the calendar month grid, the color
// wheel's polar mapping, and the tab/segment strip. Every function here
// is deterministic in its inputs and mutates nothing.
package layout

import "github.com/go-velt/velt/pkg/graphics"

// WrapPlacement is one item's resolved position in a wrap flow.
type WrapPlacement struct {
	// Index is the item's position in the input order.
	Index int
	// Row is the row the item was packed into.
	Row int
	// Bounds is the item rectangle relative to the container origin.
	Bounds graphics.Rect
}

// WrapResult is the outcome of packing a wrap flow.
type WrapResult struct {
	// Placements lists every item in input order.
	Placements []WrapPlacement
	// RowCounts is the number of items packed into each row.
	RowCounts []int
	// Size is the total extent used by the flow.
	Size graphics.Size
}

// Wrap packs items left-to-right, starting a new row whenever the next
// item would exceed the available width. Row height is the tallest item
// in that row. The first item of a row is always placed even when wider
// than the available width, so packing always terminates.
func Wrap(items []graphics.Size, availableWidth, spacing float64) WrapResult {
	result := WrapResult{}
	if len(items) == 0 {
		return result
	}
	if availableWidth < 0 {
		availableWidth = 0
	}

	result.Placements = make([]WrapPlacement, 0, len(items))

	var x, y, rowHeight float64
	row := 0
	inRow := 0

	for i, item := range items {
		needed := item.Width
		if inRow > 0 {
			needed += spacing
		}
		if inRow > 0 && x+needed > availableWidth {
			// Close the row.
			result.RowCounts = append(result.RowCounts, inRow)
			y += rowHeight + spacing
			x, rowHeight = 0, 0
			row++
			inRow = 0
		}
		if inRow > 0 {
			x += spacing
		}
		result.Placements = append(result.Placements, WrapPlacement{
			Index:  i,
			Row:    row,
			Bounds: graphics.RectFromLTWH(x, y, item.Width, item.Height),
		})
		x += item.Width
		if item.Height > rowHeight {
			rowHeight = item.Height
		}
		if x > result.Size.Width {
			result.Size.Width = x
		}
		inRow++
	}
	result.RowCounts = append(result.RowCounts, inRow)
	result.Size.Height = y + rowHeight
	return result
}

// Columns packs items into a fixed number of equal-width columns.
// Column counts below one are clamped to one. Cell height is the fixed
// rowHeight; items flow left-to-right, top-to-bottom.
func Columns(itemCount, columnCount int, availableWidth, rowHeight, spacing float64) WrapResult {
	result := WrapResult{}
	if itemCount <= 0 {
		return result
	}
	if columnCount < 1 {
		columnCount = 1
	}

	cellWidth := (availableWidth - spacing*float64(columnCount-1)) / float64(columnCount)
	if cellWidth < 0 {
		cellWidth = 0
	}

	result.Placements = make([]WrapPlacement, 0, itemCount)
	rows := (itemCount + columnCount - 1) / columnCount
	for i := 0; i < itemCount; i++ {
		row := i / columnCount
		col := i % columnCount
		result.Placements = append(result.Placements, WrapPlacement{
			Index: i,
			Row:   row,
			Bounds: graphics.RectFromLTWH(
				float64(col)*(cellWidth+spacing),
				float64(row)*(rowHeight+spacing),
				cellWidth,
				rowHeight,
			),
		})
	}
	for row := 0; row < rows; row++ {
		count := columnCount
		if row == rows-1 {
			count = itemCount - row*columnCount
		}
		result.RowCounts = append(result.RowCounts, count)
	}
	result.Size = graphics.Size{
		Width:  availableWidth,
		Height: float64(rows)*rowHeight + float64(rows-1)*spacing,
	}
	return result
}
