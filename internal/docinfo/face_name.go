package docinfo

import (
	"github.com/hwp-go/hwpdoc/pkg/model"
	"github.com/hwp-go/hwpdoc/internal/format"
)

// parseFaceName decodes a FACE_NAME record: a properties byte, the
// required face name, then three independently bit-gated optional
// sub-fields (substitute font, PANOSE-1 bytes, default font), each only
// read when both its bit is set in properties and enough trailing bytes
// remain.
func parseFaceName(data []byte) (model.FaceName, error) {
	c := format.NewCursor(data)
	props, err := c.U8()
	if err != nil {
		return model.FaceName{}, err
	}
	name, err := c.UTF16LEString()
	if err != nil {
		return model.FaceName{}, err
	}
	fn := model.FaceName{Name: name}

	const (
		hasSubstitute = 0x01
		hasPanose     = 0x80
		hasDefault    = 0x04
	)

	if props&hasSubstitute != 0 && c.Len() > 0 {
		t, err := c.U8()
		if err == nil {
			fn.HasSubstitute = true
			fn.SubstituteType = t
			if c.Optional(2) {
				if n, err := c.UTF16LEString(); err == nil {
					fn.SubstituteName = n
				}
			}
		}
	}

	if props&hasPanose != 0 && c.Optional(10) {
		if b, err := c.Bytes(10); err == nil {
			fn.HasPanose = true
			copy(fn.Panose[:], b)
		}
	}

	if props&hasDefault != 0 && c.Optional(2) {
		if n, err := c.UTF16LEString(); err == nil {
			fn.HasDefault = true
			fn.DefaultName = n
		}
	}

	return fn, nil
}
