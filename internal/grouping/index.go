// Package grouping partitions fingerprinted files into duplicate groups.
package grouping

// Entry is one fingerprinted file.
type Entry[T any] struct {
	Name  string
	Value T
}

// Index is an ordered set of fingerprinted files keyed by name. Iteration
// order is insertion order and drives every grouping decision.
type Index[T any] struct {
	entries []Entry[T]
	pos     map[string]int
}

func NewIndex[T any]() *Index[T] {
	return &Index[T]{pos: make(map[string]int)}
}

// Put adds name, or replaces its value in place if already present.
func (ix *Index[T]) Put(name string, value T) {
	if i, ok := ix.pos[name]; ok {
		ix.entries[i].Value = value
		return
	}
	ix.pos[name] = len(ix.entries)
	ix.entries = append(ix.entries, Entry[T]{Name: name, Value: value})
}

func (ix *Index[T]) Get(name string) (T, bool) {
	i, ok := ix.pos[name]
	if !ok {
		var zero T
		return zero, false
	}
	return ix.entries[i].Value, true
}

func (ix *Index[T]) Len() int { return len(ix.entries) }

// Entries returns the files in index order. The slice must not be modified.
func (ix *Index[T]) Entries() []Entry[T] { return ix.entries }

func (ix *Index[T]) Names() []string {
	names := make([]string, len(ix.entries))
	for i, e := range ix.entries {
		names[i] = e.Name
	}
	return names
}
