package docinfo

import (
	"github.com/hwp-go/hwpdoc/pkg/model"
	"github.com/hwp-go/hwpdoc/internal/format"
)

// parseBinData decodes a BIN_DATA record. id is the sequential BIN_DATA
// counter from the DocInfo walk (assignment order), not any value stored
// in the record itself: the in-stream bin-data id field, when present, is
// read only to advance the cursor and is otherwise discarded.
func parseBinData(data []byte, id uint16) (model.BinData, error) {
	if len(data) < format.BinDataMinSize {
		return model.BinData{}, format.ErrTruncated
	}
	c := format.NewCursor(data)
	props, err := c.U16LE()
	if err != nil {
		return model.BinData{}, err
	}

	bd := model.BinData{ID: id, Type: model.BinDataType(props & 0x03)}

	if bd.Type.IsLink() {
		absPath, err := c.UTF16LEString()
		if err != nil {
			return model.BinData{}, err
		}
		relPath, err := c.UTF16LEString()
		if err != nil {
			return model.BinData{}, err
		}
		bd.AbsPath, bd.RelPath = absPath, relPath
	}

	if c.Optional(2) {
		_, _ = c.U16LE() // in-stream bin-data id, discarded in favor of assignment order
	}

	if c.Optional(2) {
		if ext, err := c.UTF16LEString(); err == nil {
			bd.Extension = ext
		}
	}

	return bd, nil
}
