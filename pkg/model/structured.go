package model

// StructuredDocument is the deterministic, JSON-serializable document tree
// produced by Build. Field order and zero-value omission (via `omitempty`)
// are chosen so that two parses of the same input always marshal to byte-
// identical JSON.
type StructuredDocument struct {
	Metadata StructuredMetadata  `json:"metadata"`
	Sections []StructuredSection `json:"sections"`
}

// StructuredMetadata carries document-level summary/header metadata plus
// statistics computed once the tree is fully built.
type StructuredMetadata struct {
	Title       string `json:"title,omitempty"`
	Author      string `json:"author,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	HWPVersion  string `json:"hwp_version,omitempty"`
	IsEncrypted bool   `json:"is_encrypted,omitempty"`
	IsDistributionOnly bool `json:"is_distribution_only,omitempty"`
	CharCount   int    `json:"char_count"`
}

// StructuredSection is one BodyText section rendered as a flat content
// block list.
type StructuredSection struct {
	Index   int            `json:"index"`
	Content []ContentBlock `json:"content"`
}

// ContentBlockKind discriminates the ContentBlock sum type for JSON output.
type ContentBlockKind string

const (
	BlockParagraph ContentBlockKind = "paragraph"
	BlockTable     ContentBlockKind = "table"
	BlockChart     ContentBlockKind = "chart"
	BlockImage     ContentBlockKind = "image"
	BlockEquation  ContentBlockKind = "equation"
	BlockPageBreak ContentBlockKind = "page_break"
	BlockFootnote  ContentBlockKind = "footnote"
	BlockHeader    ContentBlockKind = "header"
	BlockFooter    ContentBlockKind = "footer"
)

// ContentBlock is a tagged union over the block kinds a StructuredSection
// can contain. Exactly one of the pointer fields is non-nil, matching
// ContentBlock.Kind.
type ContentBlock struct {
	Kind ContentBlockKind `json:"kind"`

	Paragraph *StructuredParagraph `json:"paragraph,omitempty"`
	Table     *StructuredTable     `json:"table,omitempty"`
	Chart     *StructuredChart     `json:"chart,omitempty"`
	Image     *StructuredImage     `json:"image,omitempty"`
	Equation  *StructuredEquation  `json:"equation,omitempty"`
	Footnote  *StructuredFootnote  `json:"footnote,omitempty"`
}

// ParagraphKind classifies a paragraph by the heading/list heuristics.
type ParagraphKind string

const (
	ParaBody         ParagraphKind = "body"
	ParaHeading      ParagraphKind = "heading"
	ParaBulletList   ParagraphKind = "bullet_list"
	ParaNumberedList ParagraphKind = "numbered_list"
)

// StructuredParagraph is one paragraph split into style-homogeneous runs.
type StructuredParagraph struct {
	Kind         ParagraphKind  `json:"kind"`
	HeadingLevel int            `json:"heading_level,omitempty"`
	Bullet       string         `json:"bullet,omitempty"`
	Number       string         `json:"number,omitempty"`
	Runs         []TextRun      `json:"runs"`
	Alignment    TextAlignment  `json:"alignment,omitempty"`
	IndentLevel  uint8          `json:"indent_level,omitempty"`
	SpaceBeforePt float32       `json:"space_before_pt,omitempty"`
	SpaceAfterPt  float32       `json:"space_after_pt,omitempty"`
}

// PlainText concatenates every run's text.
func (p StructuredParagraph) PlainText() string {
	s := ""
	for _, r := range p.Runs {
		s += r.Text
	}
	return s
}

// TextAlignment mirrors Alignment for the structured-tree JSON surface.
type TextAlignment string

const (
	TextAlignLeft       TextAlignment = "left"
	TextAlignRight      TextAlignment = "right"
	TextAlignCenter     TextAlignment = "center"
	TextAlignJustify    TextAlignment = "justify"
	TextAlignDistribute TextAlignment = "distribute"
)

// TextRun is a contiguous run of text sharing one InlineStyle.
type TextRun struct {
	Text  string       `json:"text"`
	Style *InlineStyle `json:"style,omitempty"`
}

// InlineStyle is the subset of CharShape attributes exposed on the
// structured tree. Fields are omitted (nil/zero) rather than emitted at
// their default so the JSON tree stays minimal and diffable.
type InlineStyle struct {
	Bold            bool    `json:"bold,omitempty"`
	Italic          bool    `json:"italic,omitempty"`
	Underline       bool    `json:"underline,omitempty"`
	Strikethrough   bool    `json:"strikethrough,omitempty"`
	Superscript     bool    `json:"superscript,omitempty"`
	Subscript       bool    `json:"subscript,omitempty"`
	FontSizePt      float32 `json:"font_size_pt,omitempty"`
	Color           string  `json:"color,omitempty"`
	BackgroundColor string  `json:"background_color,omitempty"`
}

// CellCoordinate is a zero-based (row, col) grid position.
type CellCoordinate struct {
	Row, Col int
}

// StructuredTable is a table rendered as a row-major cell grid plus a
// reconstructed merge-region list and full grid (including cells hidden
// behind a span).
type StructuredTable struct {
	RowCount     int                          `json:"row_count"`
	ColCount     int                          `json:"col_count"`
	HeaderRows   int                          `json:"header_rows,omitempty"`
	Rows         [][]StructuredTableCell       `json:"rows"`
	MergedCells  []TableMergeRegion            `json:"merged_cells,omitempty"`
	Grid         [][]TableGridSlot             `json:"grid,omitempty"`
}

// StructuredTableCell is one cell, possibly spanning multiple grid slots.
type StructuredTableCell struct {
	Position      CellCoordinate `json:"position"`
	Blocks        []CellBlock    `json:"blocks"`
	ColSpan       int            `json:"col_span,omitempty"`
	RowSpan       int            `json:"row_span,omitempty"`
	IsHeader      bool           `json:"is_header,omitempty"`
	HiddenBySpan  bool           `json:"hidden_by_span,omitempty"`
}

// PlainText concatenates the text of every RawText/Paragraph block.
func (c StructuredTableCell) PlainText() string {
	s := ""
	for _, b := range c.Blocks {
		switch {
		case b.RawText != "":
			s += b.RawText
		case b.Paragraph != nil:
			s += b.Paragraph.PlainText()
		}
	}
	return s
}

// CellBlock is the content inside a table cell: either a nested structured
// paragraph, a nested table, or (when no richer decode is available) raw
// text.
type CellBlock struct {
	RawText   string                `json:"raw_text,omitempty"`
	Paragraph *StructuredParagraph  `json:"paragraph,omitempty"`
	Table     *StructuredTable      `json:"table,omitempty"`
}

// TableMergeRegion names the anchor cell and span of one merged region.
type TableMergeRegion struct {
	Anchor  CellCoordinate `json:"anchor"`
	ColSpan int            `json:"col_span"`
	RowSpan int            `json:"row_span"`
}

// TableGridSlot maps every (row, col) in the table to the cell that
// occupies it, which may be a different position than the slot itself when
// the slot falls inside a merged region.
type TableGridSlot struct {
	Position CellCoordinate `json:"position"`
	Anchor   CellCoordinate `json:"anchor"`
	IsAnchor bool           `json:"is_anchor"`
}

// StructuredImage is an inline picture control. Binary payload is never
// embedded in the tree (BinDataID is the only link back to the DocInfo
// BinData table); extracting raw image bytes is out of scope.
type StructuredImage struct {
	BinDataID *uint16 `json:"bin_data_id,omitempty"`
	WidthPt   float32 `json:"width_pt,omitempty"`
	HeightPt  float32 `json:"height_pt,omitempty"`
}

// StructuredChart is always an opaque placeholder: the chart object
// decoder is explicitly out of scope, so chart controls surface only as a
// typed block with no parsed chart data.
type StructuredChart struct {
	BinDataID *uint16 `json:"bin_data_id,omitempty"`
}

// StructuredEquation represents an inline equation control by its script
// Text only; it carries no LaTeX or MathML form. Build never emits
// equation blocks.
type StructuredEquation struct {
	Text string `json:"text"`
}

// StructuredFootnote is a footnote anchor plus its rendered body.
type StructuredFootnote struct {
	Marker  string                 `json:"marker"`
	Content []StructuredParagraph  `json:"content"`
}
