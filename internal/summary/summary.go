// Package summary decodes the \x05HwpSummaryInformation OLE property-set
// stream. The FILETIME-to-ISO-8601 conversion is deliberately hand-rolled
// (Gregorian day-to-YMD, including the full leap-year rule) rather than
// built on any date/time library — see DESIGN.md for why this one
// component departs from the rest of the module's "prefer the ecosystem"
// stance.
package summary

import (
	"encoding/binary"
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/hwp-go/hwpdoc/pkg/model"
)

const (
	propCodepage       = 0x01
	propTitle          = 0x02
	propSubject        = 0x03
	propAuthor         = 0x04
	propKeywords       = 0x05
	propComments       = 0x06
	propTemplate       = 0x07
	propLastSavedBy    = 0x08
	propRevisionNumber = 0x09
	propEditTime       = 0x0A
	propLastPrinted    = 0x0B
	propCreateDate     = 0x0C
	propModifyDate     = 0x0D
	propPageCount      = 0x0E
	propWordCount      = 0x0F
	propCharCount      = 0x10
	propThumbnail      = 0x11
	propAppName        = 0x12
	propDocSecurity    = 0x13

	vtLPWSTR   = 0x1F
	vtFILETIME = 0x40

	entriesStart = 0x30
)

// Parse decodes the summary property set. Any structural problem —
// truncated header, an out-of-range property count, an offset that never
// resolves to a valid type marker — yields the zero SummaryInfo rather
// than an error: summary metadata is cosmetic, and a missing or malformed
// summary stream must never fail opening the document.
func Parse(data []byte) model.SummaryInfo {
	if len(data) < entriesStart+4 {
		return model.SummaryInfo{}
	}
	count := binary.LittleEndian.Uint32(data[0x2C:])
	if count == 0 || entriesStart+int(count)*8 > len(data) {
		return model.SummaryInfo{}
	}

	var info model.SummaryInfo
	for i := uint32(0); i < count; i++ {
		entryOff := entriesStart + int(i)*8
		propID := binary.LittleEndian.Uint32(data[entryOff:])
		valueOff := binary.LittleEndian.Uint32(data[entryOff+4:])

		abs, ok := resolveOffset(data, int(valueOff))
		if !ok {
			continue
		}

		switch propID {
		case propTitle:
			info.Title = parseString(data, abs)
		case propSubject:
			info.Subject = parseString(data, abs)
		case propAuthor:
			info.Author = parseString(data, abs)
		case propKeywords:
			info.Keywords = parseString(data, abs)
		case propComments:
			info.Comments = parseString(data, abs)
		case propLastSavedBy:
			info.LastSavedBy = parseString(data, abs)
		case propRevisionNumber:
			info.RevisionNumber = parseString(data, abs)
		case propCreateDate:
			info.CreatedAt = parseFiletime(data, abs)
		case propModifyDate:
			info.ModifiedAt = parseFiletime(data, abs)
		case propLastPrinted:
			info.PrintedAt = parseFiletime(data, abs)
		}
	}
	return info
}

// resolveOffset implements spec.md's Open-Question resolution: a raw
// value_offset can be either relative to entriesStart or already absolute.
// It tries both interpretations (skipping one when it is out of range or
// identical to the other) and accepts whichever one's byte matches a known
// VT_* marker, preferring the larger candidate when both would work.
func resolveOffset(data []byte, valueOff int) (int, bool) {
	candidates := []int{}
	relative := entriesStart + valueOff
	if relative >= 0 && relative < len(data) {
		candidates = append(candidates, relative)
	}
	if valueOff >= 0 && valueOff < len(data) && valueOff != relative {
		candidates = append(candidates, valueOff)
	}

	best := -1
	for _, c := range candidates {
		if c+4 > len(data) {
			continue
		}
		marker := binary.LittleEndian.Uint32(data[c:])
		if marker == vtLPWSTR || marker == vtFILETIME {
			if c > best {
				best = c
			}
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// parseString reads a VT_LPWSTR value at abs: a u32 type marker (already
// validated by resolveOffset), a u32 code-unit count (including the null
// terminator the count declares, though decoding actually stops at the
// first embedded NUL rather than trusting that declared terminator), then
// that many UTF-16LE code units.
func parseString(data []byte, abs int) string {
	if abs+8 > len(data) {
		return ""
	}
	size := binary.LittleEndian.Uint32(data[abs+4:])
	start := abs + 8
	end := start + int(size)*2
	if end < start || end > len(data) {
		return ""
	}
	units := make([]uint16, 0, size)
	for i := start; i+1 < end; i += 2 {
		u := binary.LittleEndian.Uint16(data[i:])
		if u == 0 {
			break
		}
		units = append(units, u)
	}
	s := string(utf16.Decode(units))
	return strings.TrimSpace(s)
}

func parseFiletime(data []byte, abs int) string {
	if abs+12 > len(data) {
		return ""
	}
	lo := uint64(binary.LittleEndian.Uint32(data[abs+4:]))
	hi := uint64(binary.LittleEndian.Uint32(data[abs+8:]))
	ft := lo | (hi << 32)
	if ft == 0 {
		return ""
	}
	t, ok := filetimeToISO8601(ft)
	if !ok {
		return ""
	}
	return t
}

// filetimeEpochDiff is the number of 100ns ticks between the Windows
// FILETIME epoch (1601-01-01) and the Unix epoch (1970-01-01).
const filetimeEpochDiff = 116_444_736_000_000_000

// filetimeToISO8601 converts a Windows FILETIME value to an ISO-8601 UTC
// timestamp without using any date/time library: it derives Unix seconds,
// then hand-computes the calendar date with daysToYMD/isLeapYear.
func filetimeToISO8601(filetime uint64) (string, bool) {
	if filetime < filetimeEpochDiff {
		return "", false
	}
	unixSeconds := (filetime - filetimeEpochDiff) / 10_000_000
	days := int64(unixSeconds / 86400)
	secOfDay := unixSeconds % 86400
	hour := secOfDay / 3600
	minute := (secOfDay % 3600) / 60
	second := secOfDay % 60

	year, month, day := daysToYMD(days)
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02dZ", year, month, day, hour, minute, second), true
}

// daysToYMD converts a day count since 1970-01-01 into a (year, month,
// day) calendar date, month and day both 1-based.
func daysToYMD(days int64) (year, month, day int) {
	year = 1970
	for {
		yearDays := int64(365)
		if isLeapYear(year) {
			yearDays = 366
		}
		if days < yearDays {
			break
		}
		days -= yearDays
		year++
	}

	daysInMonth := [12]int64{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	if isLeapYear(year) {
		daysInMonth[1] = 29
	}

	month = 1
	for _, dim := range daysInMonth {
		if days < dim {
			break
		}
		days -= dim
		month++
	}

	return year, month, int(days) + 1
}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}
