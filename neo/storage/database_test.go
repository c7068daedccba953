package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rnjane/neowatch/neo/query"
	"github.com/rnjane/neowatch/neo/types"
)

func buildApproach(t *testing.T, designation, timestamp string, distance, velocity float64) *types.CloseApproach {
	t.Helper()
	ca, err := types.NewCloseApproach(designation, timestamp, distance, velocity)
	require.NoError(t, err)
	return ca
}

func testDatabase(t *testing.T) *NEODatabase {
	t.Helper()
	neos := []*types.NearEarthObject{
		types.NewNearEarthObject("433", "Eros", 16.84, false),
		types.NewNearEarthObject("99942", "Apophis", 0.34, true),
		types.NewNearEarthObject("2020 AB", "", 0, false),
	}
	approaches := []*types.CloseApproach{
		buildApproach(t, "433", "1900-Jan-01 00:00", 0.32, 5.5),
		buildApproach(t, "99942", "2029-Apr-13 21:46", 0.00025, 7.42),
		buildApproach(t, "433", "1931-Jan-30 04:07", 0.17, 5.9),
		buildApproach(t, "UNKNOWN", "2000-Jun-15 18:30", 0.1, 1.0), // orphan
	}
	return NewNEODatabase(neos, approaches)
}

func collect(db *NEODatabase, filters []query.Filter) []*types.CloseApproach {
	var out []*types.CloseApproach
	for ca := range db.Query(filters) {
		out = append(out, ca)
	}
	return out
}

func TestLinkage(t *testing.T) {
	db := testDatabase(t)

	eros, ok := db.NEOByDesignation("433")
	require.True(t, ok)
	require.Len(t, eros.Approaches, 2)
	for _, ca := range eros.Approaches {
		assert.Same(t, eros, ca.NEO, "back-reference points at the owning NEO")
	}
	// Input order is preserved within an NEO's approach list
	assert.Equal(t, "1900-01-01 00:00", eros.Approaches[0].TimeStr())
	assert.Equal(t, "1931-01-30 04:07", eros.Approaches[1].TimeStr())
}

func TestLinkageOrphan(t *testing.T) {
	db := testDatabase(t)

	var orphan *types.CloseApproach
	for ca := range db.Query(nil) {
		if ca.Designation == "UNKNOWN" {
			orphan = ca
		}
	}
	require.NotNil(t, orphan)
	assert.Nil(t, orphan.NEO, "unmatched approaches stay unlinked")
}

func TestLinkageDuplicateDesignationLastWins(t *testing.T) {
	first := types.NewNearEarthObject("433", "Eros", 16.84, false)
	second := types.NewNearEarthObject("433", "Impostor", 1.0, true)
	approach := buildApproach(t, "433", "1900-Jan-01 00:00", 0.32, 5.5)

	NewNEODatabase([]*types.NearEarthObject{first, second}, []*types.CloseApproach{approach})

	assert.Same(t, second, approach.NEO, "the later duplicate wins the designation index")
	assert.Empty(t, first.Approaches)
	assert.Len(t, second.Approaches, 1)
}

func TestNEOByDesignation(t *testing.T) {
	db := testDatabase(t)

	neo, ok := db.NEOByDesignation("433")
	require.True(t, ok)
	assert.Equal(t, "Eros", neo.Name)

	// Lookup is case-normalized to uppercase
	neo, ok = db.NEOByDesignation("2020 ab")
	require.True(t, ok)
	assert.Equal(t, "2020 AB", neo.Designation)

	_, ok = db.NEOByDesignation("1 Ceres")
	assert.False(t, ok, "a miss is a normal outcome, not an error")
}

func TestNEOByName(t *testing.T) {
	db := testDatabase(t)

	neo, ok := db.NEOByName("eros")
	require.True(t, ok)
	assert.Equal(t, "433", neo.Designation)

	neo, ok = db.NEOByName("Apophis")
	require.True(t, ok)
	assert.Equal(t, "99942", neo.Designation)

	_, ok = db.NEOByName("Ceres")
	assert.False(t, ok)

	// The unnamed NEO must never match an empty lookup
	_, ok = db.NEOByName("")
	assert.False(t, ok)
}

func TestCounts(t *testing.T) {
	db := testDatabase(t)
	assert.Equal(t, 3, db.NEOCount())
	assert.Equal(t, 4, db.ApproachCount())
}

func TestQueryNoFilters(t *testing.T) {
	db := testDatabase(t)

	got := collect(db, nil)
	require.Len(t, got, 4, "no filters yields every approach exactly once")

	// Original input order is the natural iteration order
	assert.Equal(t, "433", got[0].Designation)
	assert.Equal(t, "99942", got[1].Designation)
	assert.Equal(t, "433", got[2].Designation)
	assert.Equal(t, "UNKNOWN", got[3].Designation)
}

func TestQueryIsRestartable(t *testing.T) {
	db := testDatabase(t)

	seq := db.Query(nil)
	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}
	assert.Equal(t, first, second, "each range over the sequence re-scans from the start")
}

func TestQueryConjunction(t *testing.T) {
	db := testDatabase(t)

	hazardous := []query.Filter{query.HazardousFilter{Op: query.Equal, Value: true}}
	got := collect(db, hazardous)
	require.Len(t, got, 1)
	assert.Equal(t, "99942", got[0].Designation)

	// Adding a filter can only shrink (or keep) the result set
	both := append(hazardous, query.VelocityFilter{Op: query.AtLeast, Value: 10})
	assert.Empty(t, collect(db, both))

	narrower := append(hazardous, query.VelocityFilter{Op: query.AtLeast, Value: 7})
	assert.Len(t, collect(db, narrower), 1)
}

func TestQueryOrphanNeverMatchesNEOFilters(t *testing.T) {
	db := testDatabase(t)

	// All four approaches have distance <= 0.5, but the orphan is excluded
	// by any NEO-attribute filter.
	filters := []query.Filter{
		query.DistanceFilter{Op: query.AtMost, Value: 0.5},
		query.HazardousFilter{Op: query.Equal, Value: false},
	}
	got := collect(db, filters)
	for _, ca := range got {
		assert.NotEqual(t, "UNKNOWN", ca.Designation)
	}
	assert.Len(t, got, 2)
}

// TestEndToEnd exercises the whole load-link-query flow on the canonical
// single-NEO data set.
func TestEndToEnd(t *testing.T) {
	neos := []*types.NearEarthObject{
		types.NewNearEarthObject("433", "Eros", 16.84, false),
	}
	approaches := []*types.CloseApproach{
		buildApproach(t, "433", "1900-Jan-01 00:00", 0.32, 5.5),
	}
	db := NewNEODatabase(neos, approaches)

	eros, ok := db.NEOByDesignation("433")
	require.True(t, ok)
	require.Len(t, eros.Approaches, 1)

	within := collect(db, []query.Filter{query.DistanceFilter{Op: query.AtMost, Value: 0.5}})
	require.Len(t, within, 1)
	assert.Same(t, eros.Approaches[0], within[0])

	none := collect(db, []query.Filter{query.DistanceFilter{Op: query.AtMost, Value: 0.1}})
	assert.Empty(t, none)
}
