package docinfo

import (
	"github.com/hwp-go/hwpdoc/pkg/model"
	"github.com/hwp-go/hwpdoc/internal/format"
)

// parseCharShape decodes a CHAR_SHAPE record. The trailing BorderFill id
// was added in a later minor version of the format, so it is read only
// when two more bytes remain; documents written before that revision fall
// back to BorderFillID 0.
func parseCharShape(data []byte) (model.CharShape, error) {
	if len(data) < format.CharShapeMinSize {
		return model.CharShape{}, format.ErrTruncated
	}
	c := format.NewCursor(data)

	var cs model.CharShape
	for i := range cs.FontIDs {
		v, err := c.U16LE()
		if err != nil {
			return model.CharShape{}, err
		}
		cs.FontIDs[i] = v
	}
	for i := range cs.FontScales {
		v, err := c.U8()
		if err != nil {
			return model.CharShape{}, err
		}
		cs.FontScales[i] = v
	}
	for i := range cs.CharSpacing {
		v, err := c.I8()
		if err != nil {
			return model.CharShape{}, err
		}
		cs.CharSpacing[i] = v
	}
	for i := range cs.RelativeSizes {
		v, err := c.U8()
		if err != nil {
			return model.CharShape{}, err
		}
		cs.RelativeSizes[i] = v
	}
	for i := range cs.CharOffsets {
		v, err := c.I8()
		if err != nil {
			return model.CharShape{}, err
		}
		cs.CharOffsets[i] = v
	}

	baseSize, err := c.I32LE()
	if err != nil {
		return model.CharShape{}, err
	}
	cs.BaseSize = baseSize

	attrBits, err := c.U32LE()
	if err != nil {
		return model.CharShape{}, err
	}
	cs.Attr = parseCharShapeAttr(attrBits)

	if cs.ShadowGapX, err = c.I8(); err != nil {
		return model.CharShape{}, err
	}
	if cs.ShadowGapY, err = c.I8(); err != nil {
		return model.CharShape{}, err
	}
	if cs.TextColor, err = c.ColorRef(); err != nil {
		return model.CharShape{}, err
	}
	if cs.UnderlineColor, err = c.ColorRef(); err != nil {
		return model.CharShape{}, err
	}
	if cs.ShadeColor, err = c.ColorRef(); err != nil {
		return model.CharShape{}, err
	}
	if cs.ShadowColor, err = c.ColorRef(); err != nil {
		return model.CharShape{}, err
	}

	if c.Optional(2) {
		if id, err := c.U16LE(); err == nil {
			cs.BorderFillID = id
		}
	}

	return cs, nil
}

func parseCharShapeAttr(bits uint32) model.CharShapeAttr {
	return model.CharShapeAttr{
		Bold:              bits&(1<<0) != 0,
		Italic:            bits&(1<<1) != 0,
		UnderlineType:     uint8((bits >> 2) & 0x3),
		StrikethroughType: uint8((bits >> 18) & 0x3),
		Superscript:       (bits>>10)&0x3 == 1,
		Subscript:         (bits>>10)&0x3 == 2,
		RawBits:           bits,
	}
}
