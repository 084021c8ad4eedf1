package format

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/hwp-go/hwpdoc/pkg/model"
)

func packHeader(tag, level uint16, size uint32) []byte {
	dword := (uint32(tag) << RecordTagShift) | (uint32(level) << RecordLevelShift) | (size << RecordSizeShift)
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, dword)
	return buf
}

func TestParseRecordHeader_NormalSize(t *testing.T) {
	buf := packHeader(0x03, 1, 12)
	h, err := ParseRecordHeader(buf)
	require.NoError(t, err)
	assert.Equal(t, model.RecordTag(0x03), h.Tag)
	assert.EqualValues(t, 1, h.Level)
	assert.EqualValues(t, 12, h.Size)
	assert.Equal(t, 4, h.HeaderBytes)
}

func TestParseRecordHeader_ExtendedSize(t *testing.T) {
	buf := packHeader(0x03, 0, RecordExtendedSizeMarker)
	extra := make([]byte, 4)
	binary.LittleEndian.PutUint32(extra, 70000)
	buf = append(buf, extra...)

	h, err := ParseRecordHeader(buf)
	require.NoError(t, err)
	assert.EqualValues(t, 70000, h.Size)
	assert.Equal(t, 8, h.HeaderBytes)
}

func TestRecordIterator_WalksMultipleRecords(t *testing.T) {
	var data []byte
	data = append(data, packHeader(0x01, 0, 2)...)
	data = append(data, []byte{0xAA, 0xBB}...)
	data = append(data, packHeader(0x02, 0, 3)...)
	data = append(data, []byte{0x01, 0x02, 0x03}...)

	it := NewRecordIterator(data)
	var records []model.Record
	for it.Next() {
		records = append(records, it.Record())
	}
	require.NoError(t, it.Err())
	require.Len(t, records, 2)
	assert.Equal(t, model.RecordTag(0x01), records[0].Header.Tag)
	assert.Equal(t, []byte{0xAA, 0xBB}, records[0].Data)
	assert.Equal(t, model.RecordTag(0x02), records[1].Header.Tag)
}

func TestRecordIterator_MalformedSizeStopsIteration(t *testing.T) {
	data := packHeader(0x01, 0, 100) // declares far more data than present

	it := NewRecordIterator(data)
	assert.False(t, it.Next())
	require.Error(t, it.Err())
	assert.True(t, errors.Is(it.Err(), ErrMalformedRecord))
}
