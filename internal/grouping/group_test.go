package grouping

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twinpage/internal/fingerprint"
)

func hashIndex(pairs ...any) *Index[fingerprint.Hash] {
	ix := NewIndex[fingerprint.Hash]()
	for i := 0; i < len(pairs); i += 2 {
		ix.Put(pairs[i].(string), fingerprint.Hash(pairs[i+1].(uint64)))
	}
	return ix
}

func TestIndexKeepsInsertionOrder(t *testing.T) {
	ix := hashIndex("c.pdf", uint64(3), "a.pdf", uint64(1), "b.pdf", uint64(2))
	ix.Put("a.pdf", 9)

	assert.Equal(t, []string{"c.pdf", "a.pdf", "b.pdf"}, ix.Names())
	v, ok := ix.Get("a.pdf")
	require.True(t, ok)
	assert.Equal(t, fingerprint.Hash(9), v)
	_, ok = ix.Get("missing.pdf")
	assert.False(t, ok)
}

func TestByDistanceThreshold(t *testing.T) {
	ix := hashIndex(
		"a.pdf", uint64(0x00FF00FF00FF00FF),
		"b.pdf", uint64(0x00FF00FF00FF00FE),
	)

	gs := ByDistance(ix, 8)
	require.Equal(t, 1, gs.Len())
	g, ok := gs.BySeed("a.pdf")
	require.True(t, ok)
	assert.Equal(t, Group{"a.pdf", "b.pdf"}, g)

	assert.Equal(t, 0, ByDistance(ix, 0).Len())
}

func TestByDistanceComparesAgainstSeedOnly(t *testing.T) {
	ix := hashIndex(
		"a.pdf", uint64(0x00),
		"b.pdf", uint64(0x1F),
		"c.pdf", uint64(0x3F),
	)

	gs := ByDistance(ix, 5)
	assert.Equal(t, []Group{{"a.pdf", "b.pdf"}}, gs.List())
}

func TestByDistanceSeedOrder(t *testing.T) {
	ix := hashIndex(
		"a.pdf", uint64(0xFF00),
		"b.pdf", uint64(0x0000),
		"c.pdf", uint64(0xFF01),
		"d.pdf", uint64(0x0001),
		"e.pdf", uint64(0xF0F0F0F0),
	)

	gs := ByDistance(ix, 2)
	assert.Equal(t, []string{"a.pdf", "b.pdf"}, gs.Seeds())
	assert.Equal(t, []Group{{"a.pdf", "c.pdf"}, {"b.pdf", "d.pdf"}}, gs.List())
	_, ok := gs.BySeed("e.pdf")
	assert.False(t, ok)
}

func TestByDistanceNegativeThresholdMatchesNothing(t *testing.T) {
	ix := hashIndex("a.pdf", uint64(1), "b.pdf", uint64(1))
	assert.Equal(t, 0, ByDistance(ix, -1).Len())
}

func TestByDistanceGroupsAreDisjoint(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ix := NewIndex[fingerprint.Hash]()
	for i := 0; i < 200; i++ {
		ix.Put(string(rune('A'+i%26))+string(rune('a'+i/26)), fingerprint.Hash(rng.Uint64()&0xFFFF))
	}

	for _, threshold := range []int{0, 2, 4, 8} {
		seen := make(map[string]bool)
		for _, g := range ByDistance(ix, threshold).List() {
			assert.Greater(t, len(g), 1)
			for _, name := range g {
				assert.False(t, seen[name], "%s in two groups at threshold %d", name, threshold)
				seen[name] = true
			}
		}
	}
}

func TestByDistanceNotMonotoneAcrossThresholds(t *testing.T) {
	// b and c pair up at threshold 1, but at 5 a claims b first and c is
	// too far from a to follow.
	ix := hashIndex(
		"a.pdf", uint64(0x00),
		"b.pdf", uint64(0x1F),
		"c.pdf", uint64(0x3F),
	)

	assert.Equal(t, []Group{{"b.pdf", "c.pdf"}}, ByDistance(ix, 1).List())
	assert.Equal(t, []Group{{"a.pdf", "b.pdf"}}, ByDistance(ix, 5).List())
}

func TestByDistanceMonotoneOnSeparatedClusters(t *testing.T) {
	ix := hashIndex(
		"a1.pdf", uint64(0x0000000000000000),
		"b1.pdf", uint64(0xFFFFFFFF00000000),
		"a2.pdf", uint64(0x0000000000000001),
		"b2.pdf", uint64(0xFFFFFFFF00000003),
		"a3.pdf", uint64(0x0000000000000007),
	)

	low := ByDistance(ix, 1).List()
	high := ByDistance(ix, 3).List()
	assert.Equal(t, []Group{{"a1.pdf", "a2.pdf"}}, low)
	assert.Equal(t, []Group{{"a1.pdf", "a2.pdf", "a3.pdf"}, {"b1.pdf", "b2.pdf"}}, high)
	for _, g := range low {
		assert.Subset(t, Find(high, g.Seed()), g)
	}
}

func regionIndex(pairs ...any) *Index[fingerprint.RegionSet] {
	ix := NewIndex[fingerprint.RegionSet]()
	for i := 0; i < len(pairs); i += 2 {
		ix.Put(pairs[i].(string), pairs[i+1].(fingerprint.RegionSet))
	}
	return ix
}

func TestByRegionExactMatch(t *testing.T) {
	base := fingerprint.RegionSet{fingerprint.Top: 5, fingerprint.Middle: 9, fingerprint.Bottom: 2}
	same := fingerprint.RegionSet{fingerprint.Top: 5, fingerprint.Middle: 9, fingerprint.Bottom: 2}
	ix := regionIndex("a.pdf", base, "b.pdf", same)

	assert.Equal(t, []Group{{"a.pdf", "b.pdf"}}, ByRegion(ix))

	for _, r := range fingerprint.Regions {
		other := fingerprint.RegionSet{fingerprint.Top: 5, fingerprint.Middle: 9, fingerprint.Bottom: 2}
		other[r] = 3
		ix := regionIndex("a.pdf", base, "b.pdf", other)
		assert.Equal(t, []Group{{"a.pdf"}, {"b.pdf"}}, ByRegion(ix), "region %s", r)
	}
}

func TestByRegionMissingBandNeverMerges(t *testing.T) {
	ix := regionIndex(
		"a.pdf", fingerprint.RegionSet{fingerprint.Top: 1, fingerprint.Middle: 1},
		"b.pdf", fingerprint.RegionSet{fingerprint.Top: 1, fingerprint.Middle: 1},
	)
	assert.Equal(t, []Group{{"a.pdf"}, {"b.pdf"}}, ByRegion(ix))
}

func TestByRegionCoversEveryFile(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	ix := NewIndex[fingerprint.RegionSet]()
	for i := 0; i < 120; i++ {
		ix.Put(string(rune('A'+i%26))+string(rune('a'+i/26)), fingerprint.RegionSet{
			fingerprint.Top:    fingerprint.Hash(rng.Intn(3)),
			fingerprint.Middle: fingerprint.Hash(rng.Intn(2)),
			fingerprint.Bottom: fingerprint.Hash(rng.Intn(2)),
		})
	}

	count := make(map[string]int)
	for _, g := range ByRegion(ix) {
		require.NotEmpty(t, g)
		for _, name := range g {
			count[name]++
		}
	}
	assert.Len(t, count, ix.Len())
	for name, n := range count {
		assert.Equal(t, 1, n, name)
	}
}

func TestByRegionEmptyIndex(t *testing.T) {
	assert.Empty(t, ByRegion(NewIndex[fingerprint.RegionSet]()))
	assert.Equal(t, 0, ByDistance(NewIndex[fingerprint.Hash](), 8).Len())
}
