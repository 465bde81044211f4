package processor

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildOrientationTIFF(orientation uint16) []byte {
	var tiff bytes.Buffer
	tiff.Write([]byte{0x49, 0x49, 0x2a, 0x00})
	_ = binary.Write(&tiff, binary.LittleEndian, uint32(8))
	_ = binary.Write(&tiff, binary.LittleEndian, uint16(1))
	_ = binary.Write(&tiff, binary.LittleEndian, uint16(0x0112))
	_ = binary.Write(&tiff, binary.LittleEndian, uint16(3))
	_ = binary.Write(&tiff, binary.LittleEndian, uint32(1))
	_ = binary.Write(&tiff, binary.LittleEndian, orientation)
	_ = binary.Write(&tiff, binary.LittleEndian, uint16(0))
	_ = binary.Write(&tiff, binary.LittleEndian, uint32(0))
	return tiff.Bytes()
}

func buildJPEGWithOrientation(orientation uint16) []byte {
	exif := append([]byte("Exif\x00\x00"), buildOrientationTIFF(orientation)...)

	var buf bytes.Buffer
	buf.Write([]byte{0xff, 0xd8})
	buf.Write([]byte{0xff, 0xe1})
	_ = binary.Write(&buf, binary.BigEndian, uint16(len(exif)+2))
	buf.Write(exif)
	buf.Write([]byte{0xff, 0xd9})
	return buf.Bytes()
}

func TestReadOrientation(t *testing.T) {
	got, err := readOrientation(bytes.NewReader(buildJPEGWithOrientation(6)))
	require.NoError(t, err)
	assert.Equal(t, 6, got)
}

func TestReadOrientationWithoutExif(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 4, 4))))

	got, err := readOrientation(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestOrient(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 2))

	assert.Equal(t, image.Pt(4, 2), orient(img, 1).Bounds().Size())
	assert.Equal(t, image.Pt(4, 2), orient(img, 3).Bounds().Size())
	for _, o := range []int{5, 6, 7, 8} {
		assert.Equal(t, image.Pt(2, 4), orient(img, o).Bounds().Size(), "orientation %d", o)
	}
}
