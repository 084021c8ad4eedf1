package format

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/hwp-go/hwpdoc/pkg/model"
)

// ParseFileHeader validates and decodes the 256-byte /FileHeader stream.
// The four version bytes are stored most-significant-byte-last on disk
// (byte 0 = revision ... byte 3 = major), matching the historical HWP 5.x
// layout.
func ParseFileHeader(b []byte) (model.FileHeader, error) {
	if len(b) < FileHeaderSize {
		return model.FileHeader{}, fmt.Errorf("file header: %w: have %d bytes, need %d", ErrTruncated, len(b), FileHeaderSize)
	}
	sig := b[:FileHeaderSignatureSize]
	if !bytes.Equal(sig, FileHeaderSignature) {
		return model.FileHeader{}, fmt.Errorf("file header: %w", ErrSignatureMismatch)
	}

	vb := b[FileHeaderVersionOffset : FileHeaderVersionOffset+4]
	version := model.Version{
		Revision: vb[0],
		Build:    vb[1],
		Minor:    vb[2],
		Major:    vb[3],
	}

	propsRaw := binary.LittleEndian.Uint32(b[FileHeaderPropsOffset : FileHeaderPropsOffset+4])
	props := parseDocumentProperties(propsRaw)

	return model.FileHeader{Version: version, Properties: props}, nil
}

func parseDocumentProperties(raw uint32) model.DocumentProperties {
	has := func(bit uint32) bool { return raw&bit != 0 }
	p := model.DocumentProperties{
		Compressed:         has(PropCompressed),
		Encrypted:          has(PropEncrypted),
		DistributionOnly:   has(PropDistributionOnly),
		HasScript:          has(PropHasScript),
		DRMProtected:       has(PropDRMProtected),
		XMLTemplateStorage: has(PropXMLTemplate),
		HasHistory:         has(PropHasHistory),
		HasSignature:       has(PropHasSignature),
		CertEncrypted:      has(PropCertEncrypted),
		CCLDocument:        has(PropCCLDocument),
		MobileOptimized:    has(PropMobileOptimized),
		TrackChanges:       has(PropTrackChanges),
		KOGLDocument:       has(PropKOGLDocument),
		RawBits:            raw,
	}
	return p
}
