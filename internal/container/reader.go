// Package container opens the compound-binary-container (OLE/CFB) that
// holds an HWP v5 document and exposes its named streams by path, the way
// hwp-core's ole.rs wraps the Rust `cfb` crate.
package container

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/richardlehane/mscfb"

	"github.com/hwp-go/hwpdoc/pkg/model"
	"github.com/hwp-go/hwpdoc/internal/format"
)

// Reader gives named-stream access to an open HWP compound container. All
// streams are read eagerly at construction time and cached; HWP documents
// are bounded in size (they are word-processor documents, not archives),
// so holding every stream in memory at once matches the synchronous,
// single-pass parsing model the rest of this module assumes.
type Reader struct {
	streams map[string][]byte
}

// streamPath joins an mscfb entry's storage path and leaf name the way HWP
// stream names are conventionally written ("BodyText/Section0").
func streamPath(path []string, name string) string {
	if len(path) == 0 {
		return name
	}
	return strings.Join(path, "/") + "/" + name
}

// zipMagic is the local-file-header signature every ZIP-based container
// (including HWPX) starts with. HWP v5 is a compound-binary-container, so
// a ZIP magic at offset 0 means the caller handed us the wrong sibling
// format entirely — reject it before mscfb ever sees it, rather than
// surfacing an opaque container-parse failure.
var zipMagic = []byte{0x50, 0x4B, 0x03, 0x04}

// Open reads every stream out of the compound container backing r.
func Open(r io.ReaderAt) (*Reader, error) {
	if isZIPMagic(r) {
		return nil, model.ErrUnsupportedFormat
	}

	cr, err := mscfb.New(r)
	if err != nil {
		return nil, fmt.Errorf("container: %w: %v", errContainer, err)
	}

	streams := make(map[string][]byte)
	for entry, err := cr.Next(); err == nil; entry, err = cr.Next() {
		if entry == nil {
			continue
		}
		data := make([]byte, entry.Size)
		if _, err := io.ReadFull(entry, data); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("container: reading stream %q: %w", streamPath(entry.Path, entry.Name), err)
		}
		streams[streamPath(entry.Path, entry.Name)] = data
	}

	return &Reader{streams: streams}, nil
}

var errContainer = errors.New("malformed compound container")

// isZIPMagic reports whether r begins with the ZIP local-file-header
// signature. A short read (fewer than 4 bytes available) is not a ZIP
// file by definition and is left for mscfb to reject on its own terms.
func isZIPMagic(r io.ReaderAt) bool {
	buf := make([]byte, len(zipMagic))
	n, err := r.ReadAt(buf, 0)
	if err != nil && !errors.Is(err, io.EOF) {
		return false
	}
	return n == len(zipMagic) && bytes.Equal(buf, zipMagic)
}

// HasStream reports whether path exists in the container.
func (r *Reader) HasStream(path string) bool {
	_, ok := r.streams[path]
	return ok
}

// Read returns the raw bytes of the named stream.
func (r *Reader) Read(path string) ([]byte, error) {
	data, ok := r.streams[path]
	if !ok {
		return nil, fmt.Errorf("container: stream %q: %w", path, model.ErrNotFound)
	}
	return data, nil
}

// ReadFileHeader reads and parses the mandatory /FileHeader stream.
func (r *Reader) ReadFileHeader() (model.FileHeader, error) {
	data, err := r.Read("FileHeader")
	if err != nil {
		return model.FileHeader{}, err
	}
	return format.ParseFileHeader(data)
}

// ReadDocInfo returns the raw (still compressed, per Properties.Compressed)
// /DocInfo stream bytes.
func (r *Reader) ReadDocInfo() ([]byte, error) {
	return r.Read("DocInfo")
}

// ReadSection returns the raw bytes of BodyText/SectionN. Once no such
// stream exists, it returns model.ErrNotFound, which callers use as the
// normal section-loop terminator.
func (r *Reader) ReadSection(index int) ([]byte, error) {
	return r.Read("BodyText/Section" + strconv.Itoa(index))
}

// summaryStreamName is the OLE property-set stream name HWP uses, prefixed
// with the conventional 0x05 marker byte for MS-OLEPS summary streams.
const summaryStreamName = "\x05HwpSummaryInformation"

// ReadSummary returns the raw \x05HwpSummaryInformation stream bytes, or
// (nil, false) if the document carries no summary stream at all.
func (r *Reader) ReadSummary() ([]byte, bool) {
	data, ok := r.streams[summaryStreamName]
	return data, ok
}
