package docinfo

import (
	"github.com/hwp-go/hwpdoc/pkg/model"
	"github.com/hwp-go/hwpdoc/internal/format"
)

// parseParaShape decodes a PARA_SHAPE record. Three trailing attribute
// words (attr2, attr3, line-spacing-type) follow the 42 bytes of fixed
// fields and are read independently, each gated on 4 more bytes
// remaining. Records shorter than ParaShapeMinSize (54 bytes, which
// already covers all three words) are rejected with ErrTruncated, so a
// record that decodes always carries them.
func parseParaShape(data []byte) (model.ParaShape, error) {
	if len(data) < format.ParaShapeMinSize {
		return model.ParaShape{}, format.ErrTruncated
	}
	c := format.NewCursor(data)

	attrBits, err := c.U32LE()
	if err != nil {
		return model.ParaShape{}, err
	}
	ps := model.ParaShape{Attr: model.ParaShapeAttr{Alignment: model.Alignment((attrBits >> 2) & 0x7)}}

	if ps.MarginLeft, err = c.I32LE(); err != nil {
		return model.ParaShape{}, err
	}
	if ps.MarginRight, err = c.I32LE(); err != nil {
		return model.ParaShape{}, err
	}
	if ps.Indent, err = c.I32LE(); err != nil {
		return model.ParaShape{}, err
	}
	if ps.MarginTop, err = c.I32LE(); err != nil {
		return model.ParaShape{}, err
	}
	if ps.MarginBottom, err = c.I32LE(); err != nil {
		return model.ParaShape{}, err
	}
	if ps.LineSpacing, err = c.I32LE(); err != nil {
		return model.ParaShape{}, err
	}
	if ps.TabDefID, err = c.U16LE(); err != nil {
		return model.ParaShape{}, err
	}
	if ps.ParaHeadID, err = c.U16LE(); err != nil {
		return model.ParaShape{}, err
	}
	if ps.BorderFillID, err = c.U16LE(); err != nil {
		return model.ParaShape{}, err
	}
	if ps.BorderSpaceLeft, err = c.I16LE(); err != nil {
		return model.ParaShape{}, err
	}
	if ps.BorderSpaceRight, err = c.I16LE(); err != nil {
		return model.ParaShape{}, err
	}
	if ps.BorderSpaceTop, err = c.I16LE(); err != nil {
		return model.ParaShape{}, err
	}
	if ps.BorderSpaceBottom, err = c.I16LE(); err != nil {
		return model.ParaShape{}, err
	}

	if c.Optional(4) {
		if v, err := c.U32LE(); err == nil {
			ps.Attr.HasAttr2 = true
			ps.Attr.Attr2 = v
		}
	}
	if c.Optional(4) {
		if v, err := c.U32LE(); err == nil {
			ps.Attr.HasAttr3 = true
			ps.Attr.Attr3 = v
		}
	}
	if c.Optional(4) {
		if v, err := c.U32LE(); err == nil {
			ps.Attr.HasLineSpacing = true
			ps.Attr.LineSpacingType = model.LineSpacingType(v)
		}
	}

	return ps, nil
}
