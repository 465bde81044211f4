package processor

import (
	"context"

	"twinpage/internal/grouping"
)

// Status distinguishes the outcomes FindDuplicatesForFile folds together.
type Status int

const (
	NotFound Status = iota
	Unique
	Duplicated
)

func (s Status) String() string {
	switch s {
	case Unique:
		return "unique"
	case Duplicated:
		return "duplicated"
	default:
		return "not found"
	}
}

type Lookup struct {
	Name   string
	Status Status
	Group  grouping.Group
}

// FindDuplicatesForFile fingerprints root and returns the whole-page group
// containing name. It returns an empty slice both when name has no duplicates
// and when name is not in root; use LookupFile to tell them apart.
func FindDuplicatesForFile(ctx context.Context, root, name string, threshold int, opts Options) ([]string, error) {
	lookup, err := LookupFile(ctx, root, name, threshold, false, opts)
	if err != nil {
		return []string{}, err
	}
	if lookup.Status != Duplicated {
		return []string{}, nil
	}
	return append([]string{}, lookup.Group...), nil
}

// LookupFile fingerprints root and reports where name stands. With transitive
// set, groups are connected components instead of seed-anchored groups.
func LookupFile(ctx context.Context, root, name string, threshold int, transitive bool, opts Options) (Lookup, error) {
	scan, _, err := Run(ctx, root, opts, nil)
	if err != nil {
		return Lookup{Name: name}, err
	}
	return lookupIn(scan, name, threshold, transitive), nil
}

func lookupIn(scan *Scan, name string, threshold int, transitive bool) Lookup {
	lookup := Lookup{Name: name}
	if _, ok := scan.Hashes.Get(name); !ok {
		return lookup
	}

	groups := GroupHashes(scan, threshold, transitive)
	if g := grouping.Find(groups.List(), name); g != nil {
		lookup.Status = Duplicated
		lookup.Group = g
		return lookup
	}
	lookup.Status = Unique
	return lookup
}

// GroupHashes runs whole-page grouping over a scan.
func GroupHashes(scan *Scan, threshold int, transitive bool) *grouping.Groups {
	if transitive {
		return grouping.ByDistanceTransitive(scan.Hashes, threshold)
	}
	return grouping.ByDistance(scan.Hashes, threshold)
}
