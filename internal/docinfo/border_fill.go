package docinfo

import (
	"github.com/hwp-go/hwpdoc/pkg/model"
	"github.com/hwp-go/hwpdoc/internal/format"
)

// parseBorderFill decodes a BORDER_FILL record: a properties word, five
// fixed 6-byte border lines, then a fill sub-record that degrades to a
// documented default (opaque white background, no pattern) instead of
// erroring when fewer than 16 bytes remain — BorderFill records from
// minimal documents commonly omit the fill entirely.
func parseBorderFill(data []byte) (model.BorderFill, error) {
	c := format.NewCursor(data)
	props, err := c.U16LE()
	if err != nil {
		return model.BorderFill{}, err
	}
	bf := model.BorderFill{Properties: props}

	lines := [...]*model.BorderLine{&bf.Left, &bf.Right, &bf.Top, &bf.Bottom, &bf.Diagonal}
	for _, l := range lines {
		lineType, err := c.U8()
		if err != nil {
			return model.BorderFill{}, err
		}
		thickness, err := c.U8()
		if err != nil {
			return model.BorderFill{}, err
		}
		color, err := c.ColorRef()
		if err != nil {
			return model.BorderFill{}, err
		}
		*l = model.BorderLine{LineType: lineType, Thickness: thickness, Color: color}
	}

	bf.Fill = parseFillInfo(c)
	return bf, nil
}

func parseFillInfo(c *format.Cursor) model.FillInfo {
	if c.Len() < 16 {
		return model.FillInfo{BackgroundColor: 0xFFFFFF}
	}

	fillType, err1 := c.U32LE()
	bg, err2 := c.U32LE()
	pattern, err3 := c.U32LE()
	patternType, err4 := c.U32LE()
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return model.FillInfo{BackgroundColor: 0xFFFFFF}
	}

	fi := model.FillInfo{FillType: fillType, BackgroundColor: bg, PatternColor: pattern, PatternType: patternType}

	const (
		fillImage    = 0x04
		fillGradient = 0x02
	)

	if fillType&fillImage != 0 && c.Optional(5) {
		brightness, e1 := c.I8()
		contrast, e2 := c.I8()
		effect, e3 := c.U8()
		binID, e4 := c.U16LE()
		if e1 == nil && e2 == nil && e3 == nil && e4 == nil {
			fi.HasImage = true
			fi.Brightness, fi.Contrast, fi.Effect, fi.ImageBinID = brightness, contrast, effect, binID
		}
	}

	if fillType&fillGradient != 0 && c.Optional(17) {
		gradType, e1 := c.U8()
		start, e2 := c.ColorRef()
		end, e3 := c.ColorRef()
		angle, e4 := c.U16LE()
		cx, e5 := c.U16LE()
		cy, e6 := c.U16LE()
		blur, e7 := c.U16LE()
		if e1 == nil && e2 == nil && e3 == nil && e4 == nil && e5 == nil && e6 == nil && e7 == nil {
			fi.HasGradient = true
			fi.GradientType, fi.StartColor, fi.EndColor = gradType, start, end
			fi.Angle, fi.CenterX, fi.CenterY, fi.Blur = angle, cx, cy, blur
		}
	}

	return fi
}
