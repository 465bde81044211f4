package processor

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	fitz "github.com/gen2brain/go-fitz"
	"rsc.io/pdf"

	"twinpage/pkg/imgutil"
)

var (
	ErrNoPages     = errors.New("document has no pages")
	ErrUnsupported = errors.New("unsupported file type")
)

// Renderer rasterises one page of a file.
type Renderer interface {
	Render(ctx context.Context, path string, page int, dpi float64) (image.Image, error)
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(ctx context.Context, path string, page int, dpi float64) (image.Image, error)

func (f RenderFunc) Render(ctx context.Context, path string, page int, dpi float64) (image.Image, error) {
	return f(ctx, path, page, dpi)
}

// PDFRenderer renders PDF pages with MuPDF.
type PDFRenderer struct{}

func (PDFRenderer) Render(ctx context.Context, path string, page int, dpi float64) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := fitz.New(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	if doc.NumPage() == 0 {
		return nil, ErrNoPages
	}
	if page < 0 || page >= doc.NumPage() {
		return nil, fmt.Errorf("page %d out of range (%d pages)", page, doc.NumPage())
	}
	img, err := doc.ImageDPI(page, dpi)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// ImageRenderer treats a raster scan as a single-page document, upright
// according to its EXIF orientation.
type ImageRenderer struct{}

func (ImageRenderer) Render(ctx context.Context, path string, page int, _ float64) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if page != 0 {
		return nil, fmt.Errorf("page %d out of range (1 page)", page)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, err := imaging.Decode(file)
	if err != nil {
		return nil, err
	}

	// A damaged EXIF block does not make the pixels unusable.
	orientation, err := readOrientation(file)
	if err != nil {
		orientation = 1
	}
	return orient(img, orientation), nil
}

// SniffingRenderer routes each file to PDF or Image by its magic bytes.
type SniffingRenderer struct {
	PDF   Renderer
	Image Renderer
}

func NewRenderer() SniffingRenderer {
	return SniffingRenderer{PDF: PDFRenderer{}, Image: ImageRenderer{}}
}

func (r SniffingRenderer) Render(ctx context.Context, path string, page int, dpi float64) (image.Image, error) {
	kind, err := imgutil.SniffFile(path)
	if err != nil {
		return nil, err
	}

	switch {
	case kind == imgutil.KindPDF && r.PDF != nil:
		return r.PDF.Render(ctx, path, page, dpi)
	case kind.IsRaster() && r.Image != nil:
		return r.Image.Render(ctx, path, page, dpi)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, kind)
	}
}

// PageCount reports how many pages a file has. Raster images count as one.
func PageCount(path string) (int, error) {
	kind, err := imgutil.SniffFile(path)
	if err != nil {
		return 0, err
	}
	if kind.IsRaster() {
		return 1, nil
	}
	if kind != imgutil.KindPDF {
		return 0, fmt.Errorf("%w: %s", ErrUnsupported, kind)
	}

	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return 0, err
	}

	r, err := pdf.NewReader(file, info.Size())
	if err != nil {
		return 0, err
	}
	return r.NumPage(), nil
}
