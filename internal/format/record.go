package format

import (
	"encoding/binary"
	"fmt"

	"github.com/hwp-go/hwpdoc/pkg/model"
)

// ParseRecordHeader decodes one record header from the front of b: a
// 32-bit little-endian word packing tag (10 bits), level (10 bits), and
// size (12 bits). When the size field equals RecordExtendedSizeMarker, the
// true size is read from the following 4 bytes and HeaderBytes is 8
// instead of 4.
func ParseRecordHeader(b []byte) (model.RecordHeader, error) {
	if len(b) < 4 {
		return model.RecordHeader{}, fmt.Errorf("record header: %w", ErrTruncated)
	}
	dword := binary.LittleEndian.Uint32(b)
	tag := uint16(dword>>RecordTagShift) & RecordTagMask
	level := uint16(dword>>RecordLevelShift) & RecordLevelMask
	size := (dword >> RecordSizeShift) & RecordSizeMask

	if size != RecordExtendedSizeMarker {
		return model.RecordHeader{
			Tag:         model.RecordTag(tag),
			Level:       level,
			Size:        size,
			HeaderBytes: 4,
		}, nil
	}

	if len(b) < 8 {
		return model.RecordHeader{}, fmt.Errorf("record header: extended size: %w", ErrTruncated)
	}
	realSize := binary.LittleEndian.Uint32(b[4:8])
	return model.RecordHeader{
		Tag:         model.RecordTag(tag),
		Level:       level,
		Size:        realSize,
		HeaderBytes: 8,
	}, nil
}

// RecordIterator walks consecutive records in a decompressed DocInfo or
// BodyText section buffer. It stops (Next returns false, Err returns nil)
// once the offset reaches the end of data; a record whose declared size
// does not fit the remaining bytes yields ErrMalformedRecord from Err and
// stops iteration.
type RecordIterator struct {
	data []byte
	off  int
	cur  model.Record
	err  error
}

// NewRecordIterator begins iteration over data from offset 0.
func NewRecordIterator(data []byte) *RecordIterator {
	return &RecordIterator{data: data}
}

// Next advances to the next record, returning false when iteration is over
// (either end of input or a decode error; check Err to distinguish).
func (it *RecordIterator) Next() bool {
	if it.err != nil {
		return false
	}
	if it.off >= len(it.data) {
		return false
	}
	header, err := ParseRecordHeader(it.data[it.off:])
	if err != nil {
		it.err = err
		return false
	}
	start := it.off + header.HeaderBytes
	end := start + int(header.Size)
	if end > len(it.data) {
		it.err = fmt.Errorf("record at offset %d: %w: declared size %d exceeds remaining %d bytes",
			it.off, ErrMalformedRecord, header.Size, len(it.data)-start)
		return false
	}
	it.cur = model.Record{Header: header, Data: it.data[start:end]}
	it.off = end
	return true
}

// Record returns the record produced by the most recent successful Next.
func (it *RecordIterator) Record() model.Record { return it.cur }

// Err returns the error that stopped iteration, or nil on clean exhaustion.
func (it *RecordIterator) Err() error { return it.err }
