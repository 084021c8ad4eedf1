package hwpdoc

import "github.com/hwp-go/hwpdoc/pkg/model"

// The data model lives in pkg/model; everything below re-exports it under
// the hwpdoc import path so callers never need to import pkg/model
// directly, mirroring pkg/hive/types.go's alias block over pkg/types.

// Header and document properties.
type (
	FileHeader         = model.FileHeader
	DocumentProperties = model.DocumentProperties
	Version            = model.Version
)

const FileHeaderSize = model.FileHeaderSize

// Record framing.
type (
	RecordTag    = model.RecordTag
	RecordHeader = model.RecordHeader
	Record       = model.Record
)

const (
	TagDocumentProperties = model.TagDocumentProperties
	TagFaceName           = model.TagFaceName
	TagCharShape          = model.TagCharShape
	TagParaShape          = model.TagParaShape
	TagBorderFill         = model.TagBorderFill
	TagBinData            = model.TagBinData
	TagParaHeader         = model.TagParaHeader
	TagParaText           = model.TagParaText
	TagParaCharShape      = model.TagParaCharShape
	TagTable              = model.TagTable
)

// DocInfo tables.
type (
	FaceName      = model.FaceName
	CharShapeAttr = model.CharShapeAttr
	CharShape     = model.CharShape
	ParaShapeAttr = model.ParaShapeAttr
	ParaShape     = model.ParaShape
	BorderLine    = model.BorderLine
	FillInfo      = model.FillInfo
	BorderFill    = model.BorderFill
	BinDataType   = model.BinDataType
	BinData       = model.BinData
	DocInfo       = model.DocInfo
)

type Alignment = model.Alignment

const (
	AlignJustify    = model.AlignJustify
	AlignLeft       = model.AlignLeft
	AlignRight      = model.AlignRight
	AlignCenter     = model.AlignCenter
	AlignDistribute = model.AlignDistribute
)

type LineSpacingType = model.LineSpacingType

const (
	LineSpacingPercent   = model.LineSpacingPercent
	LineSpacingFixed     = model.LineSpacingFixed
	LineSpacingSpaceOnly = model.LineSpacingSpaceOnly
	LineSpacingAtLeast   = model.LineSpacingAtLeast
)

const (
	BinDataLink      = model.BinDataLink
	BinDataEmbedding = model.BinDataEmbedding
	BinDataStorage   = model.BinDataStorage
)

// BodyText.
type (
	CharShapeRef   = model.CharShapeRef
	Paragraph      = model.Paragraph
	Cell           = model.Cell
	Table          = model.Table
	Control        = model.Control
	ControlTable   = model.ControlTable
	ControlPicture = model.ControlPicture
	ControlUnknown = model.ControlUnknown
	Section        = model.Section
)

// Summary and full parse result.
type (
	SummaryInfo    = model.SummaryInfo
	ParsedDocument = model.ParsedDocument
)

// Structured tree.
type (
	StructuredDocument   = model.StructuredDocument
	StructuredMetadata   = model.StructuredMetadata
	StructuredSection    = model.StructuredSection
	ContentBlockKind     = model.ContentBlockKind
	ContentBlock         = model.ContentBlock
	ParagraphKind        = model.ParagraphKind
	StructuredParagraph  = model.StructuredParagraph
	TextAlignment        = model.TextAlignment
	TextRun              = model.TextRun
	InlineStyle          = model.InlineStyle
	CellCoordinate       = model.CellCoordinate
	StructuredTable      = model.StructuredTable
	StructuredTableCell  = model.StructuredTableCell
	CellBlock            = model.CellBlock
	TableMergeRegion     = model.TableMergeRegion
	TableGridSlot        = model.TableGridSlot
	StructuredImage      = model.StructuredImage
	StructuredChart      = model.StructuredChart
	StructuredEquation   = model.StructuredEquation
	StructuredFootnote   = model.StructuredFootnote
)

const (
	BlockParagraph = model.BlockParagraph
	BlockTable     = model.BlockTable
	BlockChart     = model.BlockChart
	BlockImage     = model.BlockImage
	BlockEquation  = model.BlockEquation
	BlockPageBreak = model.BlockPageBreak
	BlockFootnote  = model.BlockFootnote
	BlockHeader    = model.BlockHeader
	BlockFooter    = model.BlockFooter
)

const (
	ParaBody         = model.ParaBody
	ParaHeading      = model.ParaHeading
	ParaBulletList   = model.ParaBulletList
	ParaNumberedList = model.ParaNumberedList
)

const (
	TextAlignLeft       = model.TextAlignLeft
	TextAlignRight      = model.TextAlignRight
	TextAlignCenter     = model.TextAlignCenter
	TextAlignJustify    = model.TextAlignJustify
	TextAlignDistribute = model.TextAlignDistribute
)

// Errors and options.
type (
	ErrKind = model.ErrKind
	Error   = model.Error
)

const (
	ErrKindIO                 = model.ErrKindIO
	ErrKindContainer          = model.ErrKindContainer
	ErrKindInvalidSignature   = model.ErrKindInvalidSignature
	ErrKindUnsupportedVersion = model.ErrKindUnsupportedVersion
	ErrKindEncrypted          = model.ErrKindEncrypted
	ErrKindDistributionOnly   = model.ErrKindDistributionOnly
	ErrKindParse              = model.ErrKindParse
	ErrKindNotFound           = model.ErrKindNotFound
	ErrKindSizeLimitExceeded  = model.ErrKindSizeLimitExceeded
	ErrKindUnsupportedFormat  = model.ErrKindUnsupportedFormat
)

var (
	ErrNotHWP             = model.ErrNotHWP
	ErrUnsupportedVersion = model.ErrUnsupportedVersion
	ErrEncrypted          = model.ErrEncrypted
	ErrDistributionOnly   = model.ErrDistributionOnly
	ErrNotFound           = model.ErrNotFound
	ErrSizeLimitExceeded  = model.ErrSizeLimitExceeded
	ErrUnsupportedFormat  = model.ErrUnsupportedFormat
)

// newErr is a thin indirection so doc.go can construct *Error values
// without importing pkg/model under a different name throughout.
func newErr(kind ErrKind, msg string, err error) *Error {
	return &model.Error{Kind: kind, Msg: msg, Err: err}
}

type (
	SectionLimits = model.SectionLimits
	OpenOptions   = model.OpenOptions
)

const (
	DefaultMaxDecompressedBytes = model.DefaultMaxDecompressedBytes
	DefaultMaxRecords           = model.DefaultMaxRecords
)

// DefaultOpenOptions returns the zero-value options with defaults applied.
func DefaultOpenOptions() OpenOptions { return model.DefaultOpenOptions() }
