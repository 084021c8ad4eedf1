package docinfo

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwp-go/hwpdoc/pkg/model"
)

func packRecord(tag model.RecordTag, data []byte) []byte {
	dword := (uint32(tag) << 0) | (uint32(len(data)) << 20)
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, dword)
	return append(buf, data...)
}

func faceNameRecord(name string) []byte {
	units := []uint16{}
	for _, r := range name {
		units = append(units, uint16(r))
	}
	buf := []byte{0x00} // properties: no substitute/panose/default
	lenBuf := make([]byte, 2)
	binary.LittleEndian.PutUint16(lenBuf, uint16(len(units)))
	buf = append(buf, lenBuf...)
	for _, u := range units {
		unitBuf := make([]byte, 2)
		binary.LittleEndian.PutUint16(unitBuf, u)
		buf = append(buf, unitBuf...)
	}
	return buf
}

func TestParse_DecodesFaceNameAndAssignsSequentialBinDataIDs(t *testing.T) {
	var data []byte
	data = append(data, packRecord(model.TagFaceName, faceNameRecord("Batang"))...)
	data = append(data, packRecord(model.TagBinData, []byte{0x01, 0x00})...) // BinDataEmbedding: no path strings
	data = append(data, packRecord(model.TagBinData, []byte{0x01, 0x00})...)

	info, err := Parse(data, false, model.SectionLimits{MaxDecompressedBytes: 1 << 20, MaxRecords: 1000})
	require.NoError(t, err)
	require.Len(t, info.FaceNames, 1)
	assert.Equal(t, "Batang", info.FaceNames[0].Name)

	require.Len(t, info.BinData, 2)
	assert.EqualValues(t, 0, info.BinData[0].ID)
	assert.EqualValues(t, 1, info.BinData[1].ID)
}

func TestParse_DecodesParaShapeAndBorderFillRecords(t *testing.T) {
	paraShapeData := make([]byte, 54) // format.ParaShapeMinSize
	borderFillData := make([]byte, 2+5*6)

	var data []byte
	data = append(data, packRecord(model.TagParaShape, paraShapeData)...)
	data = append(data, packRecord(model.TagBorderFill, borderFillData)...)

	info, err := Parse(data, false, model.SectionLimits{MaxDecompressedBytes: 1 << 20, MaxRecords: 1000})
	require.NoError(t, err)
	require.Len(t, info.ParaShapes, 1)
	require.Len(t, info.BorderFills, 1)
	assert.EqualValues(t, 0xFFFFFF, info.BorderFills[0].Fill.BackgroundColor)
}

func TestParse_SkipsUndecodableRecordsWithoutAborting(t *testing.T) {
	var data []byte
	data = append(data, packRecord(model.TagCharShape, []byte{0x01})...) // too short to decode
	data = append(data, packRecord(model.TagFaceName, faceNameRecord("Dotum"))...)

	info, err := Parse(data, false, model.SectionLimits{MaxDecompressedBytes: 1 << 20, MaxRecords: 1000})
	require.NoError(t, err)
	assert.Empty(t, info.CharShapes)
	require.Len(t, info.FaceNames, 1)
	assert.Equal(t, "Dotum", info.FaceNames[0].Name)
}
