// Package fingerprint computes 64-bit average hashes of rendered pages.
package fingerprint

import (
	"fmt"
	"image"
	"image/color"
	"math/bits"

	"github.com/disintegration/imaging"
)

// Size is the edge length of the grayscale grid a page is reduced to.
const Size = 8

// Hash is an average hash: bit i is set when pixel i (row-major) of the
// 8x8 grayscale reduction is strictly brighter than the grid's mean.
type Hash uint64

func (h Hash) String() string {
	return fmt.Sprintf("%016x", uint64(h))
}

// Average fingerprints img. Uniform and empty images hash to 0.
func Average(img image.Image) Hash {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return 0
	}

	small := imaging.Resize(img, Size, Size, imaging.Linear)

	var samples [Size * Size]int
	sum := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			g := color.GrayModel.Convert(small.NRGBAAt(x, y)).(color.Gray)
			samples[y*Size+x] = int(g.Y)
			sum += int(g.Y)
		}
	}
	mean := sum / len(samples)

	var h Hash
	for i, s := range samples {
		if s > mean {
			h |= 1 << uint(i)
		}
	}
	return h
}

// Distance returns the Hamming distance between a and b.
func Distance(a, b Hash) int {
	return bits.OnesCount64(uint64(a ^ b))
}
