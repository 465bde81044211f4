package grouping

import "twinpage/internal/fingerprint"

// Group is an ordered list of file names. The first name is the seed every
// other member was matched against.
type Group []string

func (g Group) Seed() string {
	if len(g) == 0 {
		return ""
	}
	return g[0]
}

func (g Group) Contains(name string) bool {
	for _, n := range g {
		if n == name {
			return true
		}
	}
	return false
}

// Groups is the result of a whole-page grouping run: groups in seed order,
// addressable by seed.
type Groups struct {
	list   []Group
	bySeed map[string]int
}

func newGroups() *Groups {
	return &Groups{bySeed: make(map[string]int)}
}

func (gs *Groups) add(g Group) {
	gs.bySeed[g.Seed()] = len(gs.list)
	gs.list = append(gs.list, g)
}

func (gs *Groups) List() []Group { return gs.list }

func (gs *Groups) Len() int { return len(gs.list) }

// BySeed returns the group seeded by name.
func (gs *Groups) BySeed(name string) (Group, bool) {
	i, ok := gs.bySeed[name]
	if !ok {
		return nil, false
	}
	return gs.list[i], true
}

// Seeds returns the seed of every group in order.
func (gs *Groups) Seeds() []string {
	seeds := make([]string, len(gs.list))
	for i, g := range gs.list {
		seeds[i] = g.Seed()
	}
	return seeds
}

// greedy runs a single left-to-right pass: each unconsumed file seeds a group
// and absorbs every later unconsumed file that matches the seed. Membership is
// not transitive; a file is only ever compared against seeds.
func greedy[T any](ix *Index[T], match func(a, b T) bool) []Group {
	entries := ix.Entries()
	consumed := make([]bool, len(entries))

	var out []Group
	for i, a := range entries {
		if consumed[i] {
			continue
		}
		consumed[i] = true
		group := Group{a.Name}
		for j := i + 1; j < len(entries); j++ {
			if consumed[j] {
				continue
			}
			if match(a.Value, entries[j].Value) {
				group = append(group, entries[j].Name)
				consumed[j] = true
			}
		}
		out = append(out, group)
	}
	return out
}

// ByDistance groups whole-page hashes whose distance to the group's seed is
// at most threshold. Files without a match are left out of the result.
func ByDistance(ix *Index[fingerprint.Hash], threshold int) *Groups {
	gs := newGroups()
	for _, g := range greedy(ix, func(a, b fingerprint.Hash) bool {
		return fingerprint.Distance(a, b) <= threshold
	}) {
		if len(g) > 1 {
			gs.add(g)
		}
	}
	return gs
}

// ByRegion groups files whose top, middle and bottom hashes are all identical
// to the seed's. Every file in ix appears in exactly one group, singletons
// included.
func ByRegion(ix *Index[fingerprint.RegionSet]) []Group {
	return greedy(ix, fingerprint.Identical)
}
