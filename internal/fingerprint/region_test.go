package fingerprint

import (
	"image"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
)

func TestBandsCoverPage(t *testing.T) {
	for h := 0; h < 200; h++ {
		top, middle, bottom := Bands(h)
		assert.Equal(t, h, top+middle+bottom, "height %d", h)
		assert.Equal(t, top, middle)
		assert.GreaterOrEqual(t, bottom, top)
		assert.Equal(t, h-2*(h/3), bottom)
	}
}

func TestRegionHashesMatchBands(t *testing.T) {
	img := fill(48, 100, func(x, y int) uint8 { return uint8((x*7 + y*13) % 256) })
	set := RegionHashes(img)

	assert.Len(t, set, 3)
	assert.Equal(t, Average(imaging.Crop(img, image.Rect(0, 0, 48, 33))), set[Top])
	assert.Equal(t, Average(imaging.Crop(img, image.Rect(0, 33, 48, 66))), set[Middle])
	assert.Equal(t, Average(imaging.Crop(img, image.Rect(0, 66, 48, 100))), set[Bottom])
}

func TestRegionHashesShortPage(t *testing.T) {
	img := fill(10, 2, func(x, _ int) uint8 { return uint8(x * 20) })
	set := RegionHashes(img)

	assert.Len(t, set, 3)
	assert.Equal(t, Hash(0), set[Top])
	assert.Equal(t, Hash(0), set[Middle])
	assert.Equal(t, Average(img), set[Bottom])
}

func TestCompareRegions(t *testing.T) {
	a := RegionSet{Top: 5, Middle: 9, Bottom: 2}
	b := RegionSet{Top: 5, Middle: 9, Bottom: 2}

	assert.Equal(t, map[Region]int{Top: 0, Middle: 0, Bottom: 0}, CompareRegions(a, b))
	assert.True(t, Identical(a, b))

	for _, r := range Regions {
		c := RegionSet{Top: 5, Middle: 9, Bottom: 2}
		c[r] ^= 0x10
		assert.Greater(t, CompareRegions(a, c)[r], 0)
		assert.False(t, Identical(a, c), "region %s", r)
	}
}

func TestCompareRegionsMissingBand(t *testing.T) {
	a := RegionSet{Top: 5, Middle: 9, Bottom: 2}
	b := RegionSet{Top: 5, Middle: 9}

	d := CompareRegions(a, b)
	assert.Equal(t, -1, d[Bottom])
	assert.Equal(t, -1, CompareRegions(b, a)[Bottom])
	assert.False(t, Identical(a, b))
	assert.False(t, Identical(b, a))
}
