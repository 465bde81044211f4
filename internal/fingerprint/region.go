package fingerprint

import (
	"image"

	"github.com/disintegration/imaging"
)

type Region string

const (
	Top    Region = "top"
	Middle Region = "middle"
	Bottom Region = "bottom"
)

// Regions lists the bands in page order.
var Regions = []Region{Top, Middle, Bottom}

// RegionSet maps each band of a page to its hash.
type RegionSet map[Region]Hash

// Bands returns the heights of the top, middle and bottom bands of a page of
// height h. The bottom band absorbs the remainder.
func Bands(h int) (top, middle, bottom int) {
	third := h / 3
	return third, third, h - 2*third
}

// RegionHashes splits img into three horizontal bands and hashes each one.
func RegionHashes(img image.Image) RegionSet {
	b := img.Bounds()
	top, middle, _ := Bands(b.Dy())

	y0 := b.Min.Y
	y1 := y0 + top
	y2 := y1 + middle

	return RegionSet{
		Top:    Average(imaging.Crop(img, image.Rect(b.Min.X, y0, b.Max.X, y1))),
		Middle: Average(imaging.Crop(img, image.Rect(b.Min.X, y1, b.Max.X, y2))),
		Bottom: Average(imaging.Crop(img, image.Rect(b.Min.X, y2, b.Max.X, b.Max.Y))),
	}
}

// CompareRegions returns the per-band distance between a and b. A band missing
// from either set reports -1.
func CompareRegions(a, b RegionSet) map[Region]int {
	out := make(map[Region]int, len(Regions))
	for _, r := range Regions {
		ha, okA := a[r]
		hb, okB := b[r]
		if !okA || !okB {
			out[r] = -1
			continue
		}
		out[r] = Distance(ha, hb)
	}
	return out
}

// Identical reports whether every band of a and b hashes the same.
func Identical(a, b RegionSet) bool {
	for _, d := range CompareRegions(a, b) {
		if d != 0 {
			return false
		}
	}
	return true
}
