// Package storage holds the in-memory database of near-Earth objects and
// their close approaches.
//
// A NEODatabase links the two collections once at construction time and is
// read-only afterwards: it supports lookup by primary designation or name
// and lazy filtered iteration over close approaches. There is no persistence
// layer; both collections live for the life of the process.
package storage

import (
	"iter"
	"strings"
	"unicode"

	"github.com/rnjane/neowatch/logger"
	"github.com/rnjane/neowatch/neo/query"
	"github.com/rnjane/neowatch/neo/types"
)

// NEODatabase is an interconnected data set of NEOs and close approaches.
type NEODatabase struct {
	neos       []*types.NearEarthObject
	approaches []*types.CloseApproach

	// byDesignation maps each designation to its NEO's position. When the
	// input carries duplicate designations the last entry wins; each
	// collision is logged at WARN during construction.
	byDesignation map[string]int
}

// NewNEODatabase links a collection of NEOs with a collection of close
// approaches. Each approach whose designation matches a loaded NEO gets its
// back-reference set and is appended to that NEO's approach list, preserving
// input order. Approaches with no matching NEO stay unlinked; that is a
// normal outcome, not an error. Construction is O(N + M).
func NewNEODatabase(neos []*types.NearEarthObject, approaches []*types.CloseApproach) *NEODatabase {
	db := &NEODatabase{
		neos:          neos,
		approaches:    approaches,
		byDesignation: make(map[string]int, len(neos)),
	}

	for i, neo := range neos {
		if prev, ok := db.byDesignation[neo.Designation]; ok {
			logger.Warnw("duplicate NEO designation, later entry wins",
				"designation", neo.Designation,
				"first_index", prev,
				"index", i)
		}
		db.byDesignation[neo.Designation] = i
	}

	linked := 0
	for _, approach := range approaches {
		i, ok := db.byDesignation[approach.Designation]
		if !ok {
			continue
		}
		neo := db.neos[i]
		approach.NEO = neo
		neo.Approaches = append(neo.Approaches, approach)
		linked++
	}

	logger.Debugw("database linked",
		"neos", len(neos),
		"approaches", len(approaches),
		"linked", linked)

	return db
}

// NEOByDesignation finds an NEO by its primary designation. Matching is
// exact against the uppercased input; designations are recorded uppercase.
func (db *NEODatabase) NEOByDesignation(designation string) (*types.NearEarthObject, bool) {
	want := strings.ToUpper(designation)
	for _, neo := range db.neos {
		if neo.Designation == want {
			return neo, true
		}
	}
	return nil, false
}

// NEOByName finds an NEO by its IAU name. Matching is exact against the
// input with its first letter capitalized and the rest unchanged, the
// convention names are recorded in.
func (db *NEODatabase) NEOByName(name string) (*types.NearEarthObject, bool) {
	want := capitalize(name)
	for _, neo := range db.neos {
		if neo.Name != "" && neo.Name == want {
			return neo, true
		}
	}
	return nil, false
}

// NEOCount returns the number of loaded NEOs.
func (db *NEODatabase) NEOCount() int {
	return len(db.neos)
}

// ApproachCount returns the number of loaded close approaches.
func (db *NEODatabase) ApproachCount() int {
	return len(db.approaches)
}

// Query returns a lazy stream of the close approaches that satisfy every
// filter, in stored order. An empty filter slice yields everything. Each
// call returns a fresh sequence that re-scans from the start, and iteration
// never mutates any entity.
func (db *NEODatabase) Query(filters []query.Filter) iter.Seq[*types.CloseApproach] {
	return func(yield func(*types.CloseApproach) bool) {
		for _, approach := range db.approaches {
			if !matchesAll(approach, filters) {
				continue
			}
			if !yield(approach) {
				return
			}
		}
	}
}

// matchesAll is the conjunction over all filters; short-circuits on the
// first miss.
func matchesAll(a *types.CloseApproach, filters []query.Filter) bool {
	for _, f := range filters {
		if !f.Matches(a) {
			return false
		}
	}
	return true
}

// capitalize uppercases the first letter and leaves the rest unchanged
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
