package docinfo

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwp-go/hwpdoc/internal/format"
)

func charShapeBytes(baseSize int32, attrBits uint32) []byte {
	buf := make([]byte, format.CharShapeMinSize)
	binary.LittleEndian.PutUint32(buf[7*2+7+7+7+7:], uint32(baseSize))
	binary.LittleEndian.PutUint32(buf[7*2+7+7+7+7+4:], attrBits)
	return buf
}

func TestParseCharShape_DecodesAttrBits(t *testing.T) {
	const boldBit = 1 << 0
	const italicBit = 1 << 1
	data := charShapeBytes(1000, boldBit|italicBit)

	cs, err := parseCharShape(data)
	require.NoError(t, err)
	assert.EqualValues(t, 1000, cs.BaseSize)
	assert.True(t, cs.Attr.Bold)
	assert.True(t, cs.Attr.Italic)
}

func TestParseCharShape_TooShortErrors(t *testing.T) {
	_, err := parseCharShape(make([]byte, 10))
	require.Error(t, err)
}

func TestParseCharShape_ReadsOptionalTrailingBorderFillID(t *testing.T) {
	data := charShapeBytes(1000, 0)
	data = append(data, 0x07, 0x00) // trailing BorderFillID, little-endian

	cs, err := parseCharShape(data)
	require.NoError(t, err)
	assert.EqualValues(t, 7, cs.BorderFillID)
}

func TestParseCharShape_OmittedTrailingBorderFillIDStaysZero(t *testing.T) {
	cs, err := parseCharShape(charShapeBytes(1000, 0))
	require.NoError(t, err)
	assert.EqualValues(t, 0, cs.BorderFillID)
}

func paraShapeBytes(alignmentBits uint32) []byte {
	buf := make([]byte, format.ParaShapeMinSize)
	binary.LittleEndian.PutUint32(buf[0:], alignmentBits<<2)
	return buf
}

func TestParseParaShape_DecodesAlignment(t *testing.T) {
	data := paraShapeBytes(3) // AlignCenter
	ps, err := parseParaShape(data)
	require.NoError(t, err)
	assert.EqualValues(t, 3, ps.Attr.Alignment)
}

func TestParseBorderFill_DegradesGracefullyWithoutFillSubRecord(t *testing.T) {
	buf := make([]byte, 2+5*6) // properties + 5 border lines, no fill sub-record
	bf, err := parseBorderFill(buf)
	require.NoError(t, err)
	assert.EqualValues(t, 0xFFFFFF, bf.Fill.BackgroundColor)
}

func TestParseBinData_LinkTypeReadsPaths(t *testing.T) {
	abs := "C:/image.png"
	rel := "image.png"

	encode := func(s string) []byte {
		units := []uint16{}
		for _, r := range s {
			units = append(units, uint16(r))
		}
		lenBuf := make([]byte, 2)
		binary.LittleEndian.PutUint16(lenBuf, uint16(len(units)))
		out := lenBuf
		for _, u := range units {
			b := make([]byte, 2)
			binary.LittleEndian.PutUint16(b, u)
			out = append(out, b...)
		}
		return out
	}

	var data []byte
	propsBuf := make([]byte, 2) // BinDataLink == 0
	data = append(data, propsBuf...)
	data = append(data, encode(abs)...)
	data = append(data, encode(rel)...)

	bd, err := parseBinData(data, 3)
	require.NoError(t, err)
	assert.EqualValues(t, 3, bd.ID)
	assert.Equal(t, abs, bd.AbsPath)
	assert.Equal(t, rel, bd.RelPath)
}
