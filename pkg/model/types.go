package model

import "fmt"

// FileHeaderSize is the fixed on-disk size of the FileHeader stream.
const FileHeaderSize = 256

// DocumentProperties is the 32-bit property bitfield carried in FileHeader.
type DocumentProperties struct {
	Compressed         bool
	Encrypted          bool
	DistributionOnly   bool
	HasScript          bool
	DRMProtected       bool
	XMLTemplateStorage bool
	HasHistory         bool
	HasSignature       bool
	CertEncrypted      bool
	CCLDocument        bool
	MobileOptimized    bool
	TrackChanges       bool
	KOGLDocument       bool

	// RawBits is the unparsed 32-bit property value.
	RawBits uint32
}

// Version is a 4-component HWP version (major.minor.build.revision), each
// stored as one byte on disk, least significant first (revision, build,
// minor, major).
type Version struct {
	Major, Minor, Build, Revision uint8
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Build, v.Revision)
}

// FileHeader is the parsed /FileHeader stream.
type FileHeader struct {
	Version    Version
	Properties DocumentProperties
}

// Validate enforces the open-time rejection rules: encrypted and
// distribution-only documents, and documents below version 5, are rejected
// before any stream is walked.
func (h FileHeader) Validate() error {
	if h.Properties.Encrypted {
		return ErrEncrypted
	}
	if h.Properties.DistributionOnly {
		return ErrDistributionOnly
	}
	if h.Version.Major < 5 {
		return ErrUnsupportedVersion
	}
	return nil
}

// RecordHeader is the 32-bit (or 32+32-bit extended) record framing header.
type RecordHeader struct {
	Tag   RecordTag
	Level uint16
	Size  uint32
	// HeaderBytes is 4 for a normal header, 8 when the extended-size escape
	// was used (size field == extendedSizeMarker).
	HeaderBytes int
}

// Record is one decoded (tag, level, payload) triple from a DocInfo or
// BodyText section stream.
type Record struct {
	Header RecordHeader
	Data   []byte
}

// FaceName is a decoded DocInfo FACE_NAME record.
type FaceName struct {
	Name          string
	HasSubstitute bool
	SubstituteType uint8
	SubstituteName string
	HasPanose     bool
	Panose        [10]byte
	HasDefault    bool
	DefaultName   string
}

// CharShapeAttr is the bit-packed CHAR_SHAPE attribute word.
type CharShapeAttr struct {
	Bold            bool
	Italic          bool
	UnderlineType   uint8
	StrikethroughType uint8
	Superscript     bool
	Subscript       bool
	RawBits         uint32
}

// CharShape is a decoded DocInfo CHAR_SHAPE record.
type CharShape struct {
	FontIDs        [7]uint16
	FontScales     [7]uint8
	CharSpacing    [7]int8
	RelativeSizes  [7]uint8
	CharOffsets    [7]int8
	BaseSize       int32
	Attr           CharShapeAttr
	ShadowGapX     int8
	ShadowGapY     int8
	TextColor      uint32
	UnderlineColor uint32
	ShadeColor     uint32
	ShadowColor    uint32
	BorderFillID   uint16
}

// Alignment enumerates ParaShape paragraph alignment values.
type Alignment uint8

const (
	AlignJustify Alignment = iota
	AlignLeft
	AlignRight
	AlignCenter
	AlignDistribute
)

// LineSpacingType enumerates ParaShape line-spacing interpretation.
type LineSpacingType uint8

const (
	LineSpacingPercent LineSpacingType = iota
	LineSpacingFixed
	LineSpacingSpaceOnly
	LineSpacingAtLeast
)

// ParaShapeAttr captures the attr_bits-derived alignment plus the three
// optional trailing attribute words, when present.
type ParaShapeAttr struct {
	Alignment       Alignment
	HasAttr2        bool
	Attr2           uint32
	HasAttr3        bool
	Attr3           uint32
	HasLineSpacing  bool
	LineSpacingType LineSpacingType
}

// ParaShape is a decoded DocInfo PARA_SHAPE record.
type ParaShape struct {
	Attr                                          ParaShapeAttr
	MarginLeft, MarginRight                       int32
	Indent                                        int32
	MarginTop, MarginBottom                       int32
	LineSpacing                                   int32
	TabDefID, ParaHeadID, BorderFillID            uint16
	BorderSpaceLeft, BorderSpaceRight              int16
	BorderSpaceTop, BorderSpaceBottom              int16
}

// HasIndent reports a positive first-line indent.
func (p ParaShape) HasIndent() bool { return p.Indent > 0 }

// HasOutdent reports a negative first-line indent (hanging indent).
func (p ParaShape) HasOutdent() bool { return p.Indent < 0 }

// BorderLine is one of BorderFill's five border lines.
type BorderLine struct {
	LineType  uint8
	Thickness uint8
	Color     uint32
}

// FillInfo is BorderFill's optional fill sub-record.
type FillInfo struct {
	FillType        uint32
	BackgroundColor uint32
	PatternColor    uint32
	PatternType     uint32

	HasImage   bool
	Brightness int8
	Contrast   int8
	Effect     uint8
	ImageBinID uint16

	HasGradient  bool
	GradientType uint8
	StartColor   uint32
	EndColor     uint32
	Angle        uint16
	CenterX      uint16
	CenterY      uint16
	Blur         uint16
}

// BorderFill is a decoded DocInfo BORDER_FILL record.
type BorderFill struct {
	Properties uint16
	Left, Right, Top, Bottom, Diagonal BorderLine
	Fill FillInfo
}

// BinDataType enumerates BinData storage kinds.
type BinDataType uint8

const (
	BinDataLink BinDataType = iota
	BinDataEmbedding
	BinDataStorage
)

func (t BinDataType) IsLink() bool { return t == BinDataLink }

// BinData is a decoded DocInfo BIN_DATA record. ID is the sequential
// counter assigned during the DocInfo walk, not any value read from the
// stream itself (the original format stores a bin-data id inline for some
// storage kinds, but it is discarded in favor of assignment order).
type BinData struct {
	ID         uint16
	Type       BinDataType
	AbsPath    string
	RelPath    string
	Extension  string
}

// DocInfo aggregates every decoded DocInfo record, indexed by the order
// records of that kind were encountered (which is also how BodyText
// records reference them, by integer id).
type DocInfo struct {
	BinData     []BinData
	FaceNames   []FaceName
	CharShapes  []CharShape
	ParaShapes  []ParaShape
	BorderFills []BorderFill
}

func (d *DocInfo) GetFaceName(id int) (FaceName, bool) {
	return indexOrZero(d.FaceNames, id)
}

func (d *DocInfo) GetCharShape(id int) (CharShape, bool) {
	return indexOrZero(d.CharShapes, id)
}

func (d *DocInfo) GetParaShape(id int) (ParaShape, bool) {
	return indexOrZero(d.ParaShapes, id)
}

func (d *DocInfo) GetBorderFill(id int) (BorderFill, bool) {
	return indexOrZero(d.BorderFills, id)
}

func (d *DocInfo) GetBinData(id int) (BinData, bool) {
	return indexOrZero(d.BinData, id)
}

func indexOrZero[T any](s []T, id int) (T, bool) {
	var zero T
	if id < 0 || id >= len(s) {
		return zero, false
	}
	return s[id], true
}

// CharShapeRef anchors a CharShape by the character offset (in runes) into
// the owning Paragraph.Text where that shape begins applying.
type CharShapeRef struct {
	Offset  uint32
	ShapeID uint16
}

// Paragraph is a decoded BodyText paragraph (PARA_HEADER + PARA_TEXT +
// associated PARA_CHAR_SHAPE references).
type Paragraph struct {
	Text        string
	ParaShapeID uint16
	CharShapes  []CharShapeRef
}

// Cell is one decoded table cell.
type Cell struct {
	Row, Col             int
	ColSpan, RowSpan      int
	ListHeaderID         uint32
	Width, Height        uint32
	BorderFillID         uint16
	TextWidth            uint32
	FieldName            string
	Text                 string
}

// Table is a decoded BodyText TABLE control.
type Table struct {
	Rows, Cols                         int
	CellSpacing                        uint16
	MarginLeft, MarginRight            int32
	MarginTop, MarginBottom            int32
	Cells                              []Cell
}

func (t Table) GetCell(row, col int) (Cell, bool) {
	for _, c := range t.Cells {
		if c.Row == row && c.Col == col {
			return c, true
		}
	}
	return Cell{}, false
}

// Control is a BodyText inline control anchored at a point in a paragraph.
// Chart controls are intentionally never decoded further than Unknown: the
// chart object decoder is out of scope.
type Control interface{ isControl() }

type ControlTable struct{ Table Table }

func (ControlTable) isControl() {}

type ControlPicture struct {
	BinDataID     uint16
	Width, Height int32
}

func (ControlPicture) isControl() {}

type ControlUnknown struct{ CtrlID uint32 }

func (ControlUnknown) isControl() {}

// Section is one decoded BodyText/SectionN stream.
type Section struct {
	Paragraphs []Paragraph
	Controls   []Control
}

// SummaryInfo is the decoded OLE property-set summary stream. Every field
// is optional: absent or unparseable properties are left zero-valued
// rather than erroring the whole document open.
type SummaryInfo struct {
	Title          string
	Subject        string
	Author         string
	Keywords       string
	Comments       string
	LastSavedBy    string
	RevisionNumber string
	CreatedAt      string // ISO-8601, or "" if absent
	ModifiedAt     string
	PrintedAt      string
}

// ParsedDocument is the full, low-level parse result: every stream decoded
// but not yet reorganized into the StructuredDocument tree.
type ParsedDocument struct {
	Header  FileHeader
	Info    DocInfo
	Summary SummaryInfo
	Sections []Section
}
