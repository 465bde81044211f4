package grouping

import "twinpage/internal/fingerprint"

// ByDistanceTransitive groups hashes into the connected components of the
// "distance <= threshold" graph. Unlike ByDistance, a chain a~b~c lands in one
// group even when a and c are far apart. Seeds are the earliest member in
// index order and members keep index order. Singletons are dropped.
func ByDistanceTransitive(ix *Index[fingerprint.Hash], threshold int) *Groups {
	entries := ix.Entries()
	uf := newUnionFind(len(entries))
	for i := range entries {
		for j := i + 1; j < len(entries); j++ {
			if fingerprint.Distance(entries[i].Value, entries[j].Value) <= threshold {
				uf.union(i, j)
			}
		}
	}

	members := make(map[int]Group)
	var roots []int
	for i, e := range entries {
		r := uf.find(i)
		if _, ok := members[r]; !ok {
			roots = append(roots, r)
		}
		members[r] = append(members[r], e.Name)
	}

	gs := newGroups()
	for _, r := range roots {
		if g := members[r]; len(g) > 1 {
			gs.add(g)
		}
	}
	return gs
}

type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(a, b int) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	switch {
	case uf.rank[ra] < uf.rank[rb]:
		uf.parent[ra] = rb
	case uf.rank[ra] > uf.rank[rb]:
		uf.parent[rb] = ra
	default:
		uf.parent[rb] = ra
		uf.rank[ra]++
	}
}
