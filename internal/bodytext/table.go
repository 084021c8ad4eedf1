package bodytext

import (
	"github.com/hwp-go/hwpdoc/pkg/model"
	"github.com/hwp-go/hwpdoc/internal/format"
)

// ParseTable decodes a TABLE record: a 26-byte header (properties, grid
// dimensions, spacing, margins) followed by rows*cols fixed-layout cells.
// Cell decoding stops early — without erroring — the moment the remaining
// bytes fall below one cell's minimum size or a cell fails to parse,
// preserving whatever cells were already decoded. This matches the
// original parser's early-break behavior for truncated table records.
func ParseTable(data []byte) (model.Table, error) {
	c := format.NewCursor(data)

	propsRaw, err := c.U32LE()
	if err != nil {
		return model.Table{}, err
	}
	_ = propsRaw
	rows, err := c.U16LE()
	if err != nil {
		return model.Table{}, err
	}
	cols, err := c.U16LE()
	if err != nil {
		return model.Table{}, err
	}
	cellSpacing, err := c.U16LE()
	if err != nil {
		return model.Table{}, err
	}
	marginLeft, err := c.I32LE()
	if err != nil {
		return model.Table{}, err
	}
	marginRight, err := c.I32LE()
	if err != nil {
		return model.Table{}, err
	}
	marginTop, err := c.I32LE()
	if err != nil {
		return model.Table{}, err
	}
	marginBottom, err := c.I32LE()
	if err != nil {
		return model.Table{}, err
	}

	t := model.Table{
		Rows:         int(rows),
		Cols:         int(cols),
		CellSpacing:  cellSpacing,
		MarginLeft:   marginLeft,
		MarginRight:  marginRight,
		MarginTop:    marginTop,
		MarginBottom: marginBottom,
	}

	total := int(rows) * int(cols)
	for i := 0; i < total; i++ {
		if c.Len() < format.TableCellMinSize {
			break
		}
		row, col := i/int(cols), i%int(cols)
		cell, err := parseTableCell(c, row, col)
		if err != nil {
			break
		}
		t.Cells = append(t.Cells, cell)
	}

	return t, nil
}

func parseTableCell(c *format.Cursor, row, col int) (model.Cell, error) {
	listHeaderID, err := c.U32LE()
	if err != nil {
		return model.Cell{}, err
	}
	colSpan, err := c.U16LE()
	if err != nil {
		return model.Cell{}, err
	}
	rowSpan, err := c.U16LE()
	if err != nil {
		return model.Cell{}, err
	}
	width, err := c.U32LE()
	if err != nil {
		return model.Cell{}, err
	}
	height, err := c.U32LE()
	if err != nil {
		return model.Cell{}, err
	}
	if _, err := c.U16LE(); err != nil { // left margin
		return model.Cell{}, err
	}
	if _, err := c.U16LE(); err != nil { // right margin
		return model.Cell{}, err
	}
	if _, err := c.U16LE(); err != nil { // top margin
		return model.Cell{}, err
	}
	if _, err := c.U16LE(); err != nil { // bottom margin
		return model.Cell{}, err
	}
	borderFillID, err := c.U16LE()
	if err != nil {
		return model.Cell{}, err
	}
	textWidth, err := c.U32LE()
	if err != nil {
		return model.Cell{}, err
	}

	cell := model.Cell{
		Row:          row,
		Col:          col,
		ColSpan:      int(colSpan),
		RowSpan:      int(rowSpan),
		ListHeaderID: listHeaderID,
		Width:        width,
		Height:       height,
		BorderFillID: borderFillID,
		TextWidth:    textWidth,
	}

	if c.Optional(2) {
		if name, err := c.UTF16LEString(); err == nil {
			cell.FieldName = name
		}
	}

	return cell, nil
}
