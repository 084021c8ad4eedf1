// Package bodytext decodes BodyText section streams: zlib inflation under
// resource caps, record iteration, and the paragraph/table record
// decoders.
package bodytext

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/hwp-go/hwpdoc/pkg/model"
	"github.com/hwp-go/hwpdoc/internal/format"
)

const decompressChunk = 8192

// Decompress inflates a compressed section stream, aborting the moment the
// inflated size would exceed limits.MaxDecompressedBytes. The check runs
// before each chunk is appended, so the cap is never exceeded even
// transiently.
func Decompress(raw []byte, limits model.SectionLimits) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("bodytext: zlib: %w", err)
	}
	defer zr.Close()

	out := make([]byte, 0, decompressChunk)
	buf := make([]byte, decompressChunk)
	var total int64
	for {
		n, err := zr.Read(buf)
		if n > 0 {
			total += int64(n)
			if total > limits.MaxDecompressedBytes {
				return nil, fmt.Errorf("bodytext: %w: decompressed section exceeds %d bytes", model.ErrSizeLimitExceeded, limits.MaxDecompressedBytes)
			}
			out = append(out, buf[:n]...)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, fmt.Errorf("bodytext: zlib: %w", err)
		}
	}
}

// ParseRecords decodes raw (already decompressed, if applicable) section
// bytes into a flat Record slice, aborting once appending another record
// would exceed limits.MaxRecords.
func ParseRecords(data []byte, limits model.SectionLimits) ([]model.Record, error) {
	if int64(len(data)) > limits.MaxDecompressedBytes {
		return nil, fmt.Errorf("bodytext: %w: section is %d bytes, cap is %d", model.ErrSizeLimitExceeded, len(data), limits.MaxDecompressedBytes)
	}

	it := format.NewRecordIterator(data)
	var records []model.Record
	for it.Next() {
		if len(records)+1 > limits.MaxRecords {
			return nil, fmt.Errorf("bodytext: %w: section has more than %d records", model.ErrSizeLimitExceeded, limits.MaxRecords)
		}
		records = append(records, it.Record())
	}
	if err := it.Err(); err != nil {
		return nil, fmt.Errorf("bodytext: %w", err)
	}
	return records, nil
}

// ParseSection decompresses (if compressed) and fully decodes one
// BodyText/SectionN stream into paragraphs and inline controls.
func ParseSection(raw []byte, compressed bool, limits model.SectionLimits) (model.Section, error) {
	data := raw
	if compressed {
		var err error
		data, err = Decompress(raw, limits)
		if err != nil {
			return model.Section{}, err
		}
	}
	records, err := ParseRecords(data, limits)
	if err != nil {
		return model.Section{}, err
	}
	return buildSection(records), nil
}

// buildSection walks the flat record list, grouping PARA_HEADER/PARA_TEXT/
// PARA_CHAR_SHAPE runs into paragraphs and decoding any TABLE control it
// finds nested beneath a CTRL_HEADER. Unknown or undecodable records are
// skipped without aborting the walk, matching the DocInfo walker's
// tolerance.
func buildSection(records []model.Record) model.Section {
	var sec model.Section
	var cur *model.Paragraph

	for i := 0; i < len(records); i++ {
		rec := records[i]
		switch rec.Header.Tag {
		case model.TagParaHeader:
			if cur != nil {
				sec.Paragraphs = append(sec.Paragraphs, *cur)
			}
			p := decodeParaHeader(rec.Data)
			cur = &p
		case model.TagParaText:
			if cur == nil {
				p := model.Paragraph{}
				cur = &p
			}
			text, err := decodeParaText(rec.Data)
			if err == nil {
				cur.Text = text
			}
		case model.TagParaCharShape:
			if cur != nil {
				cur.CharShapes = append(cur.CharShapes, decodeParaCharShapes(rec.Data)...)
			}
		case model.TagTable:
			t, err := ParseTable(rec.Data)
			if err == nil {
				sec.Controls = append(sec.Controls, model.ControlTable{Table: t})
			}
		}
	}
	if cur != nil {
		sec.Paragraphs = append(sec.Paragraphs, *cur)
	}
	return sec
}
