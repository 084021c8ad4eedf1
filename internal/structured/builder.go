// Package structured turns a parsed model.ParsedDocument into the
// deterministic StructuredDocument tree, following the same conversion
// rules as hwp-core's converter/structured.rs: runs split at CharShape
// boundaries, paragraph-type detection by leading glyph/font size, and
// table grid/merge-region reconstruction.
package structured

import (
	"sort"
	"strconv"
	"strings"

	"github.com/hwp-go/hwpdoc/pkg/model"
)

// fallbackBodyText is emitted as the sole paragraph of a synthesized
// section when no section produced any content block, so downstream
// consumers always receive at least one paragraph.
const fallbackBodyText = "본문을 추출하지 못했습니다."

// Build converts a fully parsed document into its structured tree. Empty
// sections (no content blocks after paragraph/control conversion) are
// dropped to keep the output stable and compact; if every section ends up
// empty, a single fallback section carrying fallbackBodyText is appended.
func Build(doc *model.ParsedDocument) *model.StructuredDocument {
	out := &model.StructuredDocument{
		Metadata: convertMetadata(doc),
	}
	for _, sec := range doc.Sections {
		converted := convertSection(sec, len(out.Sections), doc.Info)
		if len(converted.Content) == 0 {
			continue
		}
		out.Sections = append(out.Sections, converted)
	}

	if len(out.Sections) == 0 {
		fallback := model.StructuredSection{Index: 0}
		sp := model.StructuredParagraph{Kind: model.ParaBody, Runs: []model.TextRun{{Text: fallbackBodyText}}}
		fallback.Content = append(fallback.Content, model.ContentBlock{Kind: model.BlockParagraph, Paragraph: &sp})
		out.Sections = append(out.Sections, fallback)
	}

	computeStatistics(out)
	return out
}

func convertMetadata(doc *model.ParsedDocument) model.StructuredMetadata {
	return model.StructuredMetadata{
		Title:              doc.Summary.Title,
		Author:             doc.Summary.Author,
		CreatedAt:          doc.Summary.CreatedAt,
		HWPVersion:         doc.Header.Version.String(),
		IsEncrypted:        doc.Header.Properties.Encrypted,
		IsDistributionOnly: doc.Header.Properties.DistributionOnly,
	}
}

func convertSection(sec model.Section, index int, info model.DocInfo) model.StructuredSection {
	out := model.StructuredSection{Index: index}
	for _, p := range sec.Paragraphs {
		if strings.TrimSpace(p.Text) == "" {
			continue
		}
		out.Content = append(out.Content, convertParagraph(p, info))
	}
	for _, ctrl := range sec.Controls {
		if block, ok := convertControl(ctrl); ok {
			out.Content = append(out.Content, block)
		}
	}
	return out
}

func convertParagraph(p model.Paragraph, info model.DocInfo) model.ContentBlock {
	sp := model.StructuredParagraph{}

	if len(p.CharShapes) == 0 {
		sp.Runs = []model.TextRun{{Text: p.Text}}
	} else {
		sp.Runs = splitRuns(p.Text, p.CharShapes, info.CharShapes)
	}

	if ps, ok := info.GetParaShape(int(p.ParaShapeID)); ok {
		sp.Alignment = convertAlignment(ps.Attr.Alignment)
		if ps.Indent > 0 {
			sp.IndentLevel = uint8(ps.Indent / 400)
		}
		if ps.MarginTop > 0 {
			sp.SpaceBeforePt = hwpunitToPt(ps.MarginTop)
		}
		if ps.MarginBottom > 0 {
			sp.SpaceAfterPt = hwpunitToPt(ps.MarginBottom)
		}
	}

	detectParagraphType(&sp)

	return model.ContentBlock{Kind: model.BlockParagraph, Paragraph: &sp}
}

// splitRuns partitions text (by rune position) at each CharShapeRef
// boundary, sorted by offset, producing one TextRun per segment. Any text
// before the first boundary becomes an unstyled leading run.
func splitRuns(text string, refs []model.CharShapeRef, shapes []model.CharShape) []model.TextRun {
	if len(refs) == 0 {
		return []model.TextRun{{Text: text}}
	}

	sorted := append([]model.CharShapeRef(nil), refs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Offset < sorted[j].Offset })

	chars := []rune(text)
	var runs []model.TextRun

	for i, ref := range sorted {
		start := int(ref.Offset)
		if start >= len(chars) {
			break
		}
		end := len(chars)
		if i+1 < len(sorted) {
			end = int(sorted[i+1].Offset)
			if end > len(chars) {
				end = len(chars)
			}
		}
		runText := string(chars[start:end])
		if runText == "" {
			continue
		}
		var style *model.InlineStyle
		if cs, ok := indexOrZero(shapes, int(ref.ShapeID)); ok {
			s := convertCharShape(cs)
			style = &s
		}
		runs = append(runs, model.TextRun{Text: runText, Style: style})
	}

	if sorted[0].Offset > 0 {
		prefix := string(chars[:sorted[0].Offset])
		if prefix != "" {
			runs = append([]model.TextRun{{Text: prefix}}, runs...)
		}
	}

	if len(runs) == 0 {
		return []model.TextRun{{Text: text}}
	}
	return runs
}

func indexOrZero(s []model.CharShape, id int) (model.CharShape, bool) {
	if id < 0 || id >= len(s) {
		return model.CharShape{}, false
	}
	return s[id], true
}

func convertCharShape(cs model.CharShape) model.InlineStyle {
	style := model.InlineStyle{
		Bold:          cs.Attr.Bold,
		Italic:        cs.Attr.Italic,
		Underline:     cs.Attr.UnderlineType > 0,
		Strikethrough: cs.Attr.StrikethroughType > 0,
		Superscript:   cs.Attr.Superscript,
		Subscript:     cs.Attr.Subscript,
	}
	if cs.BaseSize > 0 {
		style.FontSizePt = float32(cs.BaseSize) / 100.0
	}
	if cs.TextColor != 0 {
		style.Color = colorrefToHex(cs.TextColor)
	}
	if cs.ShadeColor != 0 && cs.ShadeColor != 0xFFFFFF {
		style.BackgroundColor = colorrefToHex(cs.ShadeColor)
	}
	return style
}

func convertAlignment(a model.Alignment) model.TextAlignment {
	switch a {
	case model.AlignLeft:
		return model.TextAlignLeft
	case model.AlignRight:
		return model.TextAlignRight
	case model.AlignCenter:
		return model.TextAlignCenter
	case model.AlignDistribute:
		return model.TextAlignDistribute
	default:
		return model.TextAlignJustify
	}
}

var bulletGlyphs = map[rune]bool{
	'•': true, '·': true, '-': true, '–': true, '—': true,
	'○': true, '●': true, '■': true, '□': true, '▪': true, '▫': true,
}

// detectParagraphType applies the same text/font heuristics as the
// original converter's detect_paragraph_type: numbered list, then bullet
// list, then font-size/bold+center heading fallback, else plain body text.
func detectParagraphType(sp *model.StructuredParagraph) {
	full := sp.PlainText()
	trimmed := strings.TrimSpace(full)

	if num, rest, ok := leadingDigits(trimmed); ok && len(rest) > 0 && (rest[0] == '.' || rest[0] == ')') {
		sp.Kind = model.ParaNumberedList
		sp.Number = num + "."
		return
	}

	if r := firstRune(trimmed); r != 0 && bulletGlyphs[r] {
		sp.Kind = model.ParaBulletList
		sp.Bullet = string(r)
		return
	}

	if len(sp.Runs) > 0 && sp.Runs[0].Style != nil {
		style := sp.Runs[0].Style
		switch {
		case style.FontSizePt >= 18:
			sp.Kind, sp.HeadingLevel = model.ParaHeading, 1
			return
		case style.FontSizePt >= 16:
			sp.Kind, sp.HeadingLevel = model.ParaHeading, 2
			return
		case style.FontSizePt >= 14:
			sp.Kind, sp.HeadingLevel = model.ParaHeading, 3
			return
		}
		if style.Bold && sp.Alignment == model.TextAlignCenter {
			sp.Kind, sp.HeadingLevel = model.ParaHeading, 2
			return
		}
	}

	sp.Kind = model.ParaBody
}

func leadingDigits(s string) (digits, rest string, ok bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return "", s, false
	}
	return s[:i], s[i:], true
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func convertControl(ctrl model.Control) (model.ContentBlock, bool) {
	switch c := ctrl.(type) {
	case model.ControlTable:
		t := convertTable(c.Table)
		return model.ContentBlock{Kind: model.BlockTable, Table: &t}, true
	case model.ControlPicture:
		id := c.BinDataID
		img := model.StructuredImage{
			BinDataID: &id,
			WidthPt:   hwpunitToPt(c.Width),
			HeightPt:  hwpunitToPt(c.Height),
		}
		return model.ContentBlock{Kind: model.BlockImage, Image: &img}, true
	default:
		return model.ContentBlock{}, false
	}
}

// convertTable reorganizes a flat Table.Cells list into a row-major grid,
// marking the first row as a header row, then rebuilds the merge-region
// and full grid slot maps from each cell's declared span.
func convertTable(t model.Table) model.StructuredTable {
	st := model.StructuredTable{RowCount: t.Rows, ColCount: t.Cols}
	if t.Rows > 0 {
		st.HeaderRows = 1
	}

	rows := make([][]model.StructuredTableCell, t.Rows)
	for _, cell := range t.Cells {
		if cell.Row < 0 || cell.Row >= t.Rows {
			continue
		}
		sc := model.StructuredTableCell{
			Position: model.CellCoordinate{Row: cell.Row, Col: cell.Col},
			ColSpan:  cell.ColSpan,
			RowSpan:  cell.RowSpan,
			IsHeader: cell.Row < st.HeaderRows,
		}
		if cell.Text != "" {
			sc.Blocks = []model.CellBlock{{RawText: cell.Text}}
		}
		rows[cell.Row] = append(rows[cell.Row], sc)
	}
	st.Rows = rows

	rebuildGrid(&st)
	return st
}

func rebuildGrid(st *model.StructuredTable) {
	if st.RowCount == 0 || st.ColCount == 0 {
		return
	}

	grid := make([][]model.TableGridSlot, st.RowCount)
	for r := 0; r < st.RowCount; r++ {
		grid[r] = make([]model.TableGridSlot, st.ColCount)
		for c := 0; c < st.ColCount; c++ {
			pos := model.CellCoordinate{Row: r, Col: c}
			grid[r][c] = model.TableGridSlot{Position: pos, Anchor: pos, IsAnchor: true}
		}
	}

	var merges []model.TableMergeRegion
	for _, row := range st.Rows {
		for _, cell := range row {
			anchor := cell.Position
			colSpan, rowSpan := max1(cell.ColSpan), max1(cell.RowSpan)
			if colSpan > 1 || rowSpan > 1 {
				merges = append(merges, model.TableMergeRegion{Anchor: anchor, ColSpan: colSpan, RowSpan: rowSpan})
			}
			endRow, endCol := min(anchor.Row+rowSpan, st.RowCount), min(anchor.Col+colSpan, st.ColCount)
			for r := anchor.Row; r < endRow; r++ {
				for c := anchor.Col; c < endCol; c++ {
					grid[r][c] = model.TableGridSlot{
						Position: model.CellCoordinate{Row: r, Col: c},
						Anchor:   anchor,
						IsAnchor: r == anchor.Row && c == anchor.Col,
					}
				}
			}
		}
	}

	st.Grid = grid
	st.MergedCells = merges
}

func max1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func colorrefToHex(colorref uint32) string {
	r := colorref & 0xFF
	g := (colorref >> 8) & 0xFF
	b := (colorref >> 16) & 0xFF
	return "#" + hex2(r) + hex2(g) + hex2(b)
}

func hex2(v uint32) string {
	s := strconv.FormatUint(uint64(v), 16)
	if len(s) < 2 {
		s = "0" + s
	}
	return strings.ToUpper(s)
}

// hwpunitToPt converts an HWPUNIT length (1/100 pt, as stored in the
// fields this module reads) to points.
func hwpunitToPt(v int32) float32 { return float32(v) / 100.0 }

func computeStatistics(doc *model.StructuredDocument) {
	count := 0
	for _, sec := range doc.Sections {
		for _, block := range sec.Content {
			if block.Paragraph != nil {
				count += len([]rune(block.Paragraph.PlainText()))
			}
		}
	}
	doc.Metadata.CharCount = count
}
