package model

import "testing"

// TestRecordTag_MatchesWireValues pins each tag constant to the on-disk
// value HWP v5 actually uses, so a future edit can't silently drift from
// the HWPTAG_BEGIN (0x10) base the format defines.
func TestRecordTag_MatchesWireValues(t *testing.T) {
	cases := []struct {
		name string
		tag  RecordTag
		want uint16
	}{
		{"DocumentProperties", TagDocumentProperties, 0x10},
		{"IDMappings", TagIDMappings, 0x11},
		{"BinData", TagBinData, 0x12},
		{"FaceName", TagFaceName, 0x13},
		{"BorderFill", TagBorderFill, 0x14},
		{"CharShape", TagCharShape, 0x15},
		{"TabDef", TagTabDef, 0x16},
		{"ParaShape", TagParaShape, 0x19},
		{"Style", TagStyle, 0x1A},
		{"ParaHeader", TagParaHeader, 0x42},
		{"ParaText", TagParaText, 0x43},
		{"ParaCharShape", TagParaCharShape, 0x44},
		{"ParaLineSeg", TagParaLineSeg, 0x45},
		{"ParaRangeTag", TagParaRangeTag, 0x46},
		{"CtrlHeader", TagCtrlHeader, 0x47},
		{"ListHeader", TagListHeader, 0x48},
		{"PageDef", TagPageDef, 0x49},
		{"ShapeComponent", TagShapeComponent, 0x4C},
		{"Table", TagTable, 0x4D},
	}

	for _, c := range cases {
		if uint16(c.tag) != c.want {
			t.Errorf("%s = 0x%02X, want 0x%02X", c.name, uint16(c.tag), c.want)
		}
	}
}
