package format

import (
	"encoding/binary"
	"fmt"
	"unicode/utf16"
)

// Cursor is a bounds-checked, forward-only reader over a byte slice. Every
// read method advances the cursor only on success; on failure the cursor
// position is left unchanged and ErrTruncated (wrapped with how many bytes
// were missing) is returned. Cursor never panics.
type Cursor struct {
	b   []byte
	off int
}

// NewCursor wraps b for sequential, bounds-checked reads.
func NewCursor(b []byte) *Cursor { return &Cursor{b: b} }

// Remaining returns the unread tail of the buffer without consuming it.
func (c *Cursor) Remaining() []byte { return c.b[c.off:] }

// Len reports how many unread bytes remain.
func (c *Cursor) Len() int { return len(c.b) - c.off }

// Offset reports the current read position.
func (c *Cursor) Offset() int { return c.off }

func (c *Cursor) need(n int) error {
	if c.Len() < n {
		return fmt.Errorf("%w: need %d bytes, have %d", ErrTruncated, n, c.Len())
	}
	return nil
}

// Skip advances the cursor by n bytes without interpreting them.
func (c *Cursor) Skip(n int) error {
	if err := c.need(n); err != nil {
		return err
	}
	c.off += n
	return nil
}

// Bytes reads and returns the next n bytes as a sub-slice (aliasing the
// original buffer; callers must copy if they retain it past the buffer's
// lifetime).
func (c *Cursor) Bytes(n int) ([]byte, error) {
	if err := c.need(n); err != nil {
		return nil, err
	}
	out := c.b[c.off : c.off+n]
	c.off += n
	return out, nil
}

// U8 reads one byte.
func (c *Cursor) U8() (uint8, error) {
	if err := c.need(1); err != nil {
		return 0, err
	}
	v := c.b[c.off]
	c.off++
	return v, nil
}

// I8 reads one signed byte.
func (c *Cursor) I8() (int8, error) {
	v, err := c.U8()
	return int8(v), err
}

// U16LE reads a little-endian uint16.
func (c *Cursor) U16LE() (uint16, error) {
	if err := c.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(c.b[c.off:])
	c.off += 2
	return v, nil
}

// I16LE reads a little-endian int16.
func (c *Cursor) I16LE() (int16, error) {
	v, err := c.U16LE()
	return int16(v), err
}

// U32LE reads a little-endian uint32.
func (c *Cursor) U32LE() (uint32, error) {
	if err := c.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(c.b[c.off:])
	c.off += 4
	return v, nil
}

// I32LE reads a little-endian int32.
func (c *Cursor) I32LE() (int32, error) {
	v, err := c.U32LE()
	return int32(v), err
}

// U64LE reads a little-endian uint64.
func (c *Cursor) U64LE() (uint64, error) {
	if err := c.need(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(c.b[c.off:])
	c.off += 8
	return v, nil
}

// ColorRef reads a COLORREF (0x00BBGGRR), stored as a plain little-endian
// uint32.
func (c *Cursor) ColorRef() (uint32, error) { return c.U32LE() }

// HWPUnit reads a 32-bit HWPUNIT (1/7200 inch) length.
func (c *Cursor) HWPUnit() (int32, error) { return c.I32LE() }

// HWPUnit16 reads a 16-bit HWPUNIT length.
func (c *Cursor) HWPUnit16() (int16, error) { return c.I16LE() }

// Bool reads a one-byte boolean (non-zero is true).
func (c *Cursor) Bool() (bool, error) {
	v, err := c.U8()
	return v != 0, err
}

// UTF16LEString reads a u16 length prefix (code-unit count) followed by
// that many UTF-16LE code units, decoding leniently: unpaired surrogates
// become the Unicode replacement character. Use this for DocInfo strings
// (face names, bin-data paths) where the spec favors best-effort decode
// over hard failure.
func (c *Cursor) UTF16LEString() (string, error) {
	start := c.off
	n, err := c.U16LE()
	if err != nil {
		return "", err
	}
	s, err := c.utf16Fixed(int(n), true)
	if err != nil {
		c.off = start
		return "", err
	}
	return s, nil
}

// UTF16LEFixed reads exactly charCount UTF-16LE code units (no length
// prefix), decoding leniently.
func (c *Cursor) UTF16LEFixed(charCount int) (string, error) {
	return c.utf16Fixed(charCount, true)
}

// UTF16LEStringStrict behaves like UTF16LEString but returns
// ErrIllFormedSurrogate instead of substituting the replacement character
// when a surrogate pair is invalid. Used for paragraph text, where the
// spec requires decode errors to be reported rather than masked.
func (c *Cursor) UTF16LEStringStrict() (string, error) {
	start := c.off
	n, err := c.U16LE()
	if err != nil {
		return "", err
	}
	s, err := c.utf16Fixed(int(n), false)
	if err != nil {
		c.off = start
		return "", err
	}
	return s, nil
}

func (c *Cursor) utf16Fixed(charCount int, lenient bool) (string, error) {
	raw, err := c.Bytes(charCount * 2)
	if err != nil {
		return "", err
	}
	units := make([]uint16, charCount)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(raw[i*2:])
	}
	if lenient {
		return string(utf16.Decode(units)), nil
	}
	return decodeUTF16Strict(units)
}

// decodeUTF16Strict decodes units, returning ErrIllFormedSurrogate if any
// high surrogate is unpaired, followed by a non-surrogate, or followed by
// a low-surrogate mismatch, rather than silently substituting U+FFFD.
func decodeUTF16Strict(units []uint16) (string, error) {
	runes := make([]rune, 0, len(units))
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u < 0xD800 || u > 0xDFFF:
			runes = append(runes, rune(u))
		case u <= 0xDBFF: // high surrogate
			if i+1 >= len(units) {
				return "", fmt.Errorf("%w: unpaired high surrogate at unit %d", ErrIllFormedSurrogate, i)
			}
			lo := units[i+1]
			if lo < 0xDC00 || lo > 0xDFFF {
				return "", fmt.Errorf("%w: high surrogate not followed by low surrogate at unit %d", ErrIllFormedSurrogate, i)
			}
			r := 0x10000 + (rune(u-0xD800)<<10 | rune(lo-0xDC00))
			runes = append(runes, r)
			i++
		default: // unpaired low surrogate
			return "", fmt.Errorf("%w: unpaired low surrogate at unit %d", ErrIllFormedSurrogate, i)
		}
	}
	return string(runes), nil
}

// Optional reports whether at least minBytes remain without consuming
// anything, mirroring the original parser's gate-then-read idiom used
// throughout DocInfo record decoding (conditional sub-fields are only read
// when enough trailing bytes remain).
func (c *Cursor) Optional(minBytes int) bool {
	return c.Len() >= minBytes
}
