package container

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwp-go/hwpdoc/internal/format"
	"github.com/hwp-go/hwpdoc/pkg/model"
)

// minimalFileHeader builds a 256-byte FileHeader stream with the mandatory
// signature and the given version bytes; all property bits are left unset.
func minimalFileHeader(major, minor, build, revision byte) []byte {
	buf := make([]byte, format.FileHeaderSize)
	copy(buf, format.FileHeaderSignature)
	vb := buf[format.FileHeaderVersionOffset : format.FileHeaderVersionOffset+4]
	vb[0], vb[1], vb[2], vb[3] = revision, build, minor, major
	return buf
}

func TestStreamPath_JoinsStoragePathAndLeafName(t *testing.T) {
	assert.Equal(t, "BodyText/Section0", streamPath([]string{"BodyText"}, "Section0"))
	assert.Equal(t, "FileHeader", streamPath(nil, "FileHeader"))
}

func TestReader_ReadReturnsErrNotFoundForMissingStream(t *testing.T) {
	r := &Reader{streams: map[string][]byte{}}
	_, err := r.Read("DocInfo")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestReader_HasStreamAndRead(t *testing.T) {
	r := &Reader{streams: map[string][]byte{"DocInfo": {0x01, 0x02}}}
	assert.True(t, r.HasStream("DocInfo"))
	assert.False(t, r.HasStream("BodyText/Section0"))

	data, err := r.Read("DocInfo")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, data)
}

func TestReader_ReadSectionBuildsConventionalStreamName(t *testing.T) {
	r := &Reader{streams: map[string][]byte{"BodyText/Section0": {0xAA}, "BodyText/Section1": {0xBB}}}

	data, err := r.ReadSection(1)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xBB}, data)

	_, err = r.ReadSection(2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrNotFound), "callers rely on ErrNotFound to terminate the section loop")
}

func TestReader_ReadSummaryReportsAbsence(t *testing.T) {
	r := &Reader{streams: map[string][]byte{}}
	_, ok := r.ReadSummary()
	assert.False(t, ok)

	r2 := &Reader{streams: map[string][]byte{summaryStreamName: {0x01}}}
	data, ok := r2.ReadSummary()
	assert.True(t, ok)
	assert.Equal(t, []byte{0x01}, data)
}

func TestOpen_RejectsZIPMagicAsUnsupportedFormat(t *testing.T) {
	data := append([]byte{0x50, 0x4B, 0x03, 0x04}, make([]byte, 60)...) // HWPX-style ZIP local-file-header
	_, err := Open(bytes.NewReader(data))
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrUnsupportedFormat))
}

func TestIsZIPMagic_FalseForShortOrNonZIPInput(t *testing.T) {
	assert.False(t, isZIPMagic(bytes.NewReader([]byte{0x50, 0x4B})))
	assert.False(t, isZIPMagic(bytes.NewReader([]byte("HWP Document File"))))
}

func TestReader_ReadFileHeaderParsesUnderlyingStream(t *testing.T) {
	header := minimalFileHeader(5, 0, 0, 0)
	r := &Reader{streams: map[string][]byte{"FileHeader": header}}

	fh, err := r.ReadFileHeader()
	require.NoError(t, err)
	assert.EqualValues(t, 5, fh.Version.Major)
}
