package model

// RecordTag enumerates the record tag IDs this module recognizes. Unknown
// tag values are preserved verbatim on Record.Tag; the record walk never
// stops because a tag is unrecognized.
type RecordTag uint16

// DocInfo tags start at HWPTAG_BEGIN (0x10); BodyText/shape tags occupy
// the 0x40-0x60 range above it.
const (
	TagDocumentProperties RecordTag = 0x10
	TagIDMappings         RecordTag = 0x11
	TagBinData            RecordTag = 0x12
	TagFaceName           RecordTag = 0x13
	TagBorderFill         RecordTag = 0x14
	TagCharShape          RecordTag = 0x15
	TagTabDef             RecordTag = 0x16
	TagParaShape          RecordTag = 0x19
	TagStyle              RecordTag = 0x1A
	TagParaHeader         RecordTag = 0x42
	TagParaText           RecordTag = 0x43
	TagParaCharShape      RecordTag = 0x44
	TagParaLineSeg        RecordTag = 0x45
	TagParaRangeTag       RecordTag = 0x46
	TagCtrlHeader         RecordTag = 0x47
	TagListHeader         RecordTag = 0x48
	TagPageDef            RecordTag = 0x49
	TagTable              RecordTag = 0x4D
	TagShapeComponent     RecordTag = 0x4C
)

// extendedSizeMarker is the RecordHeader.size-field sentinel indicating the
// true size is stored in the four bytes immediately following the header.
const extendedSizeMarker = 0xFFF
