package imgutil

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Kind identifies a supported document or image type.
type Kind int

const (
	KindUnknown Kind = iota
	KindPDF
	KindJPEG
	KindPNG
	KindTIFF
)

func (k Kind) String() string {
	switch k {
	case KindPDF:
		return "pdf"
	case KindJPEG:
		return "jpeg"
	case KindPNG:
		return "png"
	case KindTIFF:
		return "tiff"
	default:
		return "unknown"
	}
}

// IsRaster reports whether k is a single-image format.
func (k Kind) IsRaster() bool {
	return k == KindJPEG || k == KindPNG || k == KindTIFF
}

var (
	pdfSig    = []byte("%PDF-")
	pngSig    = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}
	jpegSig   = []byte{0xff, 0xd8, 0xff}
	tiffSigLE = []byte{0x49, 0x49, 0x2a, 0x00}
	tiffSigBE = []byte{0x4d, 0x4d, 0x00, 0x2a}
)

// pdfSearchWindow is how far into a file the PDF header may start.
const pdfSearchWindow = 1024

// RasterExtensions are the file suffixes accepted when image scans are enabled.
var RasterExtensions = []string{".jpg", ".jpeg", ".png", ".tif", ".tiff"}

// DetectHeader inspects the leading bytes of a file for known signatures.
// Image signatures must start at byte 0; a PDF header may follow up to
// pdfSearchWindow bytes of leading junk.
func DetectHeader(header []byte) (Kind, error) {
	if len(header) < 8 {
		return KindUnknown, errors.New("header too short")
	}

	if hasPrefix(header, pdfSig) {
		return KindPDF, nil
	}
	if hasPrefix(header, jpegSig) {
		return KindJPEG, nil
	}
	if hasPrefix(header, pngSig) {
		return KindPNG, nil
	}
	if hasPrefix(header, tiffSigLE) || hasPrefix(header, tiffSigBE) {
		return KindTIFF, nil
	}
	if len(header) > pdfSearchWindow {
		header = header[:pdfSearchWindow]
	}
	if bytes.Contains(header, pdfSig) {
		return KindPDF, nil
	}

	return KindUnknown, nil
}

// SniffFile reads the start of a file to determine its type.
func SniffFile(path string) (Kind, error) {
	f, err := os.Open(path)
	if err != nil {
		return KindUnknown, err
	}
	defer f.Close()

	return SniffReader(f)
}

// SniffReader reads up to pdfSearchWindow bytes from r and determines its type.
func SniffReader(r io.Reader) (Kind, error) {
	header := make([]byte, pdfSearchWindow)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return KindUnknown, err
	}

	return DetectHeader(header[:n])
}

// HasExtension reports whether name ends in one of exts, ignoring case.
func HasExtension(name string, exts []string) bool {
	ext := filepath.Ext(name)
	for _, e := range exts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

func hasPrefix(buf, prefix []byte) bool {
	if len(buf) < len(prefix) {
		return false
	}
	for i := range prefix {
		if buf[i] != prefix[i] {
			return false
		}
	}
	return true
}
