// Package hwpdoc is the public entry point for parsing HWP v5 documents.
// The data model itself lives in pkg/model (re-exported in aliases.go, the
// way pkg/hive re-exports pkg/types in the hivekit layout this module
// grew out of); this package wires together the container, docinfo,
// bodytext, summary, and structured sub-packages behind Open/OpenReader.
package hwpdoc

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hwp-go/hwpdoc/internal/bodytext"
	"github.com/hwp-go/hwpdoc/internal/container"
	"github.com/hwp-go/hwpdoc/internal/docinfo"
	"github.com/hwp-go/hwpdoc/internal/format"
	"github.com/hwp-go/hwpdoc/internal/hlog"
	"github.com/hwp-go/hwpdoc/internal/structured"
	"github.com/hwp-go/hwpdoc/internal/summary"
	"github.com/hwp-go/hwpdoc/pkg/model"
)

// Document is the result of a successful Open: the low-level parse plus the
// deterministic structured tree built from it.
type Document struct {
	Parsed     ParsedDocument
	Structured StructuredDocument
}

// Open reads path as an HWP v5 document: it opens the compound container,
// validates and decodes the FileHeader, decodes DocInfo and every
// BodyText/SectionN stream it finds, decodes the summary stream if
// present, and builds the structured tree from the result.
//
// Open rejects encrypted, distribution-locked, and sub-5.0 documents before
// touching DocInfo or BodyText at all (FileHeader.Validate), and stops the
// section walk cleanly the first time BodyText/SectionN does not exist
// rather than erroring.
func Open(path string, opts OpenOptions) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newErr(ErrKindIO, "opening file", err)
	}
	defer f.Close()

	return OpenReader(f, opts)
}

// OpenReader is Open without the filesystem: callers that already hold the
// document bytes (fetched over a network, embedded as a test fixture) can
// parse directly from an io.ReaderAt.
func OpenReader(r io.ReaderAt, opts OpenOptions) (*Document, error) {
	opts = opts.WithDefaults()

	cr, err := container.Open(r)
	if err != nil {
		if errors.Is(err, model.ErrUnsupportedFormat) {
			return nil, err
		}
		return nil, newErr(ErrKindContainer, "opening compound container", err)
	}

	header, err := cr.ReadFileHeader()
	if err != nil {
		if errors.Is(err, format.ErrSignatureMismatch) {
			return nil, newErr(ErrKindInvalidSignature, "parsing file header", err)
		}
		return nil, newErr(ErrKindParse, "parsing file header", err)
	}
	if err := header.Validate(); err != nil {
		return nil, err
	}

	rawDocInfo, err := cr.ReadDocInfo()
	if err != nil {
		return nil, newErr(ErrKindContainer, "reading DocInfo stream", err)
	}
	info, err := docinfo.Parse(rawDocInfo, header.Properties.Compressed, opts.Limits)
	if err != nil {
		return nil, newErr(ErrKindParse, "parsing DocInfo", err)
	}

	var sections []model.Section
	for i := 0; ; i++ {
		raw, err := cr.ReadSection(i)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				break
			}
			return nil, newErr(ErrKindContainer, fmt.Sprintf("reading BodyText/Section%d", i), err)
		}
		sec, err := bodytext.ParseSection(raw, header.Properties.Compressed, opts.Limits)
		if err != nil {
			if opts.Tolerant {
				hlog.Warn("skipping undecodable section", "index", i, "err", err)
				continue
			}
			return nil, newErr(ErrKindParse, fmt.Sprintf("parsing BodyText/Section%d", i), err)
		}
		sections = append(sections, sec)
	}

	var summaryInfo model.SummaryInfo
	if raw, ok := cr.ReadSummary(); ok {
		summaryInfo = summary.Parse(raw)
	}

	parsed := ParsedDocument{
		Header:   header,
		Info:     info,
		Summary:  summaryInfo,
		Sections: sections,
	}

	tree := structured.Build(&parsed)

	return &Document{Parsed: parsed, Structured: *tree}, nil
}
