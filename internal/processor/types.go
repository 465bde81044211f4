package processor

import (
	"path/filepath"

	"github.com/sirupsen/logrus"

	"twinpage/internal/fingerprint"
	"twinpage/internal/grouping"
	"twinpage/pkg/imgutil"
)

// FirstPage is the page every document is compared by.
const FirstPage = 0

type Options struct {
	Workers    int
	DPI        float64
	Extensions []string
	Images     bool
	Renderer   Renderer
	Log        *logrus.Logger
}

type Job struct {
	Index int
	Path  string
	Name  string
}

type Result struct {
	Index   int
	Name    string
	Kind    imgutil.Kind
	Hash    fingerprint.Hash
	Regions fingerprint.RegionSet
	Err     error
}

// Failure records a file that could not be fingerprinted.
type Failure struct {
	Name string
	Err  error
}

// Scan is the fingerprint index of one folder.
type Scan struct {
	Root     string
	Hashes   *grouping.Index[fingerprint.Hash]
	Regions  *grouping.Index[fingerprint.RegionSet]
	Kinds    map[string]imgutil.Kind
	Failures []Failure
}

type Summary struct {
	Total         int
	Fingerprinted int
	Errors        int
	Groups        int
	Copied        int
}

type ProgressUpdate struct {
	TotalDelta     int
	ProcessedDelta int
	ErrorDelta     int
}

// Path returns the location of name inside the scanned folder.
func (s *Scan) Path(name string) string {
	return filepath.Join(s.Root, name)
}
