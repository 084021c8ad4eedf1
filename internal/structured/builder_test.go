package structured

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwp-go/hwpdoc/pkg/model"
)

func TestBuild_ProducesOneSectionPerParsedSection(t *testing.T) {
	doc := &model.ParsedDocument{
		Header: model.FileHeader{Version: model.Version{Major: 5}},
		Sections: []model.Section{
			{Paragraphs: []model.Paragraph{{Text: "first"}}},
			{Paragraphs: []model.Paragraph{{Text: "second"}}},
		},
	}

	out := Build(doc)
	require.Len(t, out.Sections, 2)
	assert.Equal(t, 0, out.Sections[0].Index)
	assert.Equal(t, 1, out.Sections[1].Index)
}

func TestBuild_SkipsEmptyParagraphsAndEmptySections(t *testing.T) {
	doc := &model.ParsedDocument{
		Sections: []model.Section{
			{Paragraphs: []model.Paragraph{{Text: "   "}}}, // whitespace only: skipped, section ends up empty
			{Paragraphs: []model.Paragraph{{Text: "real content"}}},
		},
	}

	out := Build(doc)
	require.Len(t, out.Sections, 1, "the whitespace-only section must be dropped")
	assert.Equal(t, 0, out.Sections[0].Index, "the surviving section is reindexed from 0")
	require.Len(t, out.Sections[0].Content, 1)
	assert.Equal(t, "real content", out.Sections[0].Content[0].Paragraph.PlainText())
}

func TestBuild_EmitsFallbackSectionWhenEveryParagraphIsEmpty(t *testing.T) {
	doc := &model.ParsedDocument{
		Sections: []model.Section{
			{Paragraphs: []model.Paragraph{{Text: "  "}}},
		},
	}

	out := Build(doc)
	require.Len(t, out.Sections, 1)
	require.Len(t, out.Sections[0].Content, 1)
	assert.Equal(t, fallbackBodyText, out.Sections[0].Content[0].Paragraph.PlainText())
}

func TestBuild_ComputesCharCountAcrossAllParagraphs(t *testing.T) {
	doc := &model.ParsedDocument{
		Sections: []model.Section{
			{Paragraphs: []model.Paragraph{{Text: "abc"}, {Text: "de"}}},
		},
	}

	out := Build(doc)
	assert.Equal(t, 5, out.Metadata.CharCount)
}

func TestSplitRuns_NoRefsReturnsSingleUnstyledRun(t *testing.T) {
	runs := splitRuns("hello", nil, nil)
	require.Len(t, runs, 1)
	assert.Equal(t, "hello", runs[0].Text)
	assert.Nil(t, runs[0].Style)
}

func TestSplitRuns_SplitsAtShapeBoundariesInOffsetOrder(t *testing.T) {
	shapes := []model.CharShape{
		{Attr: model.CharShapeAttr{Bold: true}},
		{Attr: model.CharShapeAttr{Italic: true}},
	}
	// refs given out of order on purpose: offset 3 (shape 1) before offset 0 (shape 0)
	refs := []model.CharShapeRef{
		{Offset: 3, ShapeID: 1},
		{Offset: 0, ShapeID: 0},
	}

	runs := splitRuns("boldital", refs, shapes)
	require.Len(t, runs, 2)
	assert.Equal(t, "bol", runs[0].Text)
	require.NotNil(t, runs[0].Style)
	assert.True(t, runs[0].Style.Bold)
	assert.Equal(t, "dital", runs[1].Text)
	require.NotNil(t, runs[1].Style)
	assert.True(t, runs[1].Style.Italic)
}

func TestSplitRuns_LeadingUnstyledPrefixKeptWhenFirstRefNotAtZero(t *testing.T) {
	shapes := []model.CharShape{{Attr: model.CharShapeAttr{Bold: true}}}
	refs := []model.CharShapeRef{{Offset: 2, ShapeID: 0}}

	runs := splitRuns("hiBOLD", refs, shapes)
	require.Len(t, runs, 2)
	assert.Equal(t, "hi", runs[0].Text)
	assert.Nil(t, runs[0].Style)
	assert.Equal(t, "BOLD", runs[1].Text)
}

func TestDetectParagraphType_NumberedList(t *testing.T) {
	sp := &model.StructuredParagraph{Runs: []model.TextRun{{Text: "1. first item"}}}
	detectParagraphType(sp)
	assert.Equal(t, model.ParaNumberedList, sp.Kind)
	assert.Equal(t, "1.", sp.Number)
}

func TestDetectParagraphType_BulletList(t *testing.T) {
	sp := &model.StructuredParagraph{Runs: []model.TextRun{{Text: "• an item"}}}
	detectParagraphType(sp)
	assert.Equal(t, model.ParaBulletList, sp.Kind)
	assert.Equal(t, "•", sp.Bullet)
}

func TestDetectParagraphType_HeadingByFontSize(t *testing.T) {
	sp := &model.StructuredParagraph{
		Runs: []model.TextRun{{Text: "Title", Style: &model.InlineStyle{FontSizePt: 20}}},
	}
	detectParagraphType(sp)
	assert.Equal(t, model.ParaHeading, sp.Kind)
	assert.EqualValues(t, 1, sp.HeadingLevel)
}

func TestDetectParagraphType_BoldCenterFallsBackToLevel2Heading(t *testing.T) {
	sp := &model.StructuredParagraph{
		Alignment: model.TextAlignCenter,
		Runs:      []model.TextRun{{Text: "Section", Style: &model.InlineStyle{Bold: true, FontSizePt: 10}}},
	}
	detectParagraphType(sp)
	assert.Equal(t, model.ParaHeading, sp.Kind)
	assert.EqualValues(t, 2, sp.HeadingLevel)
}

func TestDetectParagraphType_PlainBodyWhenNoHeuristicMatches(t *testing.T) {
	sp := &model.StructuredParagraph{Runs: []model.TextRun{{Text: "just a sentence."}}}
	detectParagraphType(sp)
	assert.Equal(t, model.ParaBody, sp.Kind)
}

func TestConvertTable_ReconstructsMergeRegionsAndGrid(t *testing.T) {
	table := model.Table{
		Rows: 2, Cols: 2,
		Cells: []model.Cell{
			{Row: 0, Col: 0, ColSpan: 2, RowSpan: 1, Text: "header"},
			{Row: 1, Col: 0, ColSpan: 1, RowSpan: 1, Text: "a"},
			{Row: 1, Col: 1, ColSpan: 1, RowSpan: 1, Text: "b"},
		},
	}

	st := convertTable(table)
	assert.Equal(t, 2, st.RowCount)
	assert.Equal(t, 2, st.ColCount)
	require.Len(t, st.MergedCells, 1)
	assert.Equal(t, model.CellCoordinate{Row: 0, Col: 0}, st.MergedCells[0].Anchor)
	assert.Equal(t, 2, st.MergedCells[0].ColSpan)

	require.Len(t, st.Grid, 2)
	assert.Equal(t, model.CellCoordinate{Row: 0, Col: 0}, st.Grid[0][1].Anchor)
	assert.False(t, st.Grid[0][1].IsAnchor)
	assert.True(t, st.Grid[0][0].IsAnchor)
}

func TestConvertTable_EmptyCellTextLeavesBlocksEmpty(t *testing.T) {
	table := model.Table{
		Rows: 1, Cols: 1,
		Cells: []model.Cell{{Row: 0, Col: 0, ColSpan: 1, RowSpan: 1}},
	}
	st := convertTable(table)
	require.Len(t, st.Rows[0], 1)
	assert.Empty(t, st.Rows[0][0].Blocks)
}

func TestColorrefToHex_ConvertsBGROrderToRGBHex(t *testing.T) {
	// COLORREF is 0x00BBGGRR; red=0xAA, green=0xBB, blue=0xCC
	colorref := uint32(0xCCBBAA)
	assert.Equal(t, "#AABBCC", colorrefToHex(colorref))
}

func TestHwpunitToPt_DividesByHundred(t *testing.T) {
	assert.InDelta(t, 12.5, hwpunitToPt(1250), 0.0001)
}

func TestConvertControl_TableProducesTableBlock(t *testing.T) {
	block, ok := convertControl(model.ControlTable{Table: model.Table{Rows: 1, Cols: 1}})
	require.True(t, ok)
	assert.Equal(t, model.BlockTable, block.Kind)
	require.NotNil(t, block.Table)
}

func TestConvertControl_PictureProducesImageBlockWithBinDataID(t *testing.T) {
	block, ok := convertControl(model.ControlPicture{BinDataID: 4, Width: 100, Height: 200})
	require.True(t, ok)
	assert.Equal(t, model.BlockImage, block.Kind)
	require.NotNil(t, block.Image)
	require.NotNil(t, block.Image.BinDataID)
	assert.EqualValues(t, 4, *block.Image.BinDataID)
}

func TestConvertControl_UnknownControlIsDropped(t *testing.T) {
	_, ok := convertControl(model.ControlUnknown{CtrlID: 99})
	assert.False(t, ok)
}
