// Package docinfo decodes the /DocInfo stream's records into the document-
// wide tables (face names, char shapes, para shapes, border fills, bin
// data) that BodyText records reference by integer id.
package docinfo

import (
	"github.com/hwp-go/hwpdoc/pkg/model"
	"github.com/hwp-go/hwpdoc/internal/bodytext"
	"github.com/hwp-go/hwpdoc/internal/hlog"
)

// Parse decompresses (if needed) and decodes the DocInfo stream. Unknown
// or undecodable records are skipped silently: a record that fails to
// decode, or whose tag this module does not recognize, never stops the
// walk.
func Parse(raw []byte, compressed bool, limits model.SectionLimits) (model.DocInfo, error) {
	data := raw
	if compressed {
		var err error
		data, err = bodytext.Decompress(raw, limits)
		if err != nil {
			return model.DocInfo{}, err
		}
	}
	records, err := bodytext.ParseRecords(data, limits)
	if err != nil {
		return model.DocInfo{}, err
	}

	var info model.DocInfo
	var binDataID uint16
	for _, rec := range records {
		switch rec.Header.Tag {
		case model.TagFaceName:
			if fn, err := parseFaceName(rec.Data); err == nil {
				info.FaceNames = append(info.FaceNames, fn)
			} else {
				hlog.Debug("docinfo: skipping undecodable face name record", "err", err)
			}
		case model.TagCharShape:
			if cs, err := parseCharShape(rec.Data); err == nil {
				info.CharShapes = append(info.CharShapes, cs)
			} else {
				hlog.Debug("docinfo: skipping undecodable char shape record", "err", err)
			}
		case model.TagParaShape:
			if ps, err := parseParaShape(rec.Data); err == nil {
				info.ParaShapes = append(info.ParaShapes, ps)
			} else {
				hlog.Debug("docinfo: skipping undecodable para shape record", "err", err)
			}
		case model.TagBorderFill:
			if bf, err := parseBorderFill(rec.Data); err == nil {
				info.BorderFills = append(info.BorderFills, bf)
			} else {
				hlog.Debug("docinfo: skipping undecodable border fill record", "err", err)
			}
		case model.TagBinData:
			id := binDataID
			binDataID++
			if bd, err := parseBinData(rec.Data, id); err == nil {
				info.BinData = append(info.BinData, bd)
			} else {
				hlog.Debug("docinfo: skipping undecodable bin data record", "id", id, "err", err)
			}
		}
	}
	return info, nil
}
