package bodytext

import (
	"encoding/binary"
	"fmt"
	"unicode/utf16"

	"github.com/hwp-go/hwpdoc/pkg/model"
	"github.com/hwp-go/hwpdoc/internal/format"
)

// decodeParaHeader reads the fields this module actually consumes from a
// PARA_HEADER record (char count, control mask, and instance id are part
// of the wire format but carry no information the structured tree needs,
// so they are skipped rather than stored). Short or malformed input
// degrades to the zero ParaShapeID rather than erroring: a missing
// paragraph shape reference still yields a body paragraph with default
// styling.
func decodeParaHeader(data []byte) model.Paragraph {
	c := format.NewCursor(data)
	// char count (u32) + control mask (u32)
	_, _ = c.Skip(8)
	shapeID, err := c.U16LE()
	if err != nil {
		return model.Paragraph{}
	}
	return model.Paragraph{ParaShapeID: shapeID}
}

// decodeParaText decodes a PARA_TEXT record's raw UTF-16LE payload into a
// string, filtering out control characters other than tab/LF/CR and
// reporting ill-formed surrogate pairs as an error rather than masking
// them with a replacement character.
func decodeParaText(data []byte) (string, error) {
	if len(data)%2 != 0 {
		return "", fmt.Errorf("bodytext: para text: odd byte length %d", len(data))
	}
	units := make([]uint16, 0, len(data)/2)
	for i := 0; i+1 < len(data); i += 2 {
		u := binary.LittleEndian.Uint16(data[i:])
		if u >= 0x20 || u == 0x09 || u == 0x0A || u == 0x0D {
			units = append(units, u)
		}
	}
	return decodeUTF16Strict(units)
}

// decodeUTF16Strict mirrors format.Cursor's strict surrogate handling for
// an already-extracted unit slice (paragraph text is filtered before
// decoding, so it cannot reuse Cursor.UTF16LEStringStrict directly).
func decodeUTF16Strict(units []uint16) (string, error) {
	for i, u := range units {
		if u >= 0xD800 && u <= 0xDBFF {
			if i+1 >= len(units) || units[i+1] < 0xDC00 || units[i+1] > 0xDFFF {
				return "", fmt.Errorf("bodytext: para text: %w at unit %d", format.ErrIllFormedSurrogate, i)
			}
		} else if u >= 0xDC00 && u <= 0xDFFF {
			if i == 0 || units[i-1] < 0xD800 || units[i-1] > 0xDBFF {
				return "", fmt.Errorf("bodytext: para text: %w at unit %d", format.ErrIllFormedSurrogate, i)
			}
		}
	}
	return string(utf16.Decode(units)), nil
}

// decodeParaCharShapes decodes a PARA_CHAR_SHAPE record: a repeating
// (start_pos u32, shape_id u16) pair, one per applied character shape
// boundary within the owning paragraph's text.
func decodeParaCharShapes(data []byte) []model.CharShapeRef {
	const pairSize = 6
	n := len(data) / pairSize
	refs := make([]model.CharShapeRef, 0, n)
	for i := 0; i < n; i++ {
		off := i * pairSize
		start := binary.LittleEndian.Uint32(data[off:])
		shapeID := binary.LittleEndian.Uint16(data[off+4:])
		refs = append(refs, model.CharShapeRef{Offset: start, ShapeID: shapeID})
	}
	return refs
}
