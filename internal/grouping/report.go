package grouping

// Originals returns every group seed followed by every indexed file that is
// in no group. Names appear once, in first-seen order.
func Originals[T any](ix *Index[T], gs *Groups) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}

	for _, seed := range gs.Seeds() {
		add(seed)
	}

	claimed := make(map[string]bool)
	for _, g := range gs.List() {
		for _, name := range g {
			claimed[name] = true
		}
	}
	for _, e := range ix.Entries() {
		if !claimed[e.Name] {
			add(e.Name)
		}
	}
	return out
}

// Duplicates returns the indexed files that are not originals, in index order.
func Duplicates[T any](ix *Index[T], gs *Groups) []string {
	originals := make(map[string]bool)
	for _, name := range Originals(ix, gs) {
		originals[name] = true
	}

	var out []string
	for _, e := range ix.Entries() {
		if !originals[e.Name] {
			out = append(out, e.Name)
		}
	}
	return out
}

// Find returns the group containing name, or nil.
func Find(groups []Group, name string) Group {
	for _, g := range groups {
		if g.Contains(name) {
			return g
		}
	}
	return nil
}

// Representatives returns the first member of each group, skipping names
// already returned.
func Representatives(groups []Group) []string {
	seen := make(map[string]bool)
	var out []string
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		name := g[0]
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
