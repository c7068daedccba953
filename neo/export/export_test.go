package export

import (
	"encoding/csv"
	"encoding/json"
	"iter"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rnjane/neowatch/neo/types"
)

func resultSeq(t *testing.T) iter.Seq[*types.CloseApproach] {
	t.Helper()

	eros := types.NewNearEarthObject("433", "Eros", 16.84, false)
	linked, err := types.NewCloseApproach("433", "1900-Jan-01 00:00", 0.32, 5.5)
	require.NoError(t, err)
	linked.NEO = eros

	orphan, err := types.NewCloseApproach("UNKNOWN", "2000-Jun-15 18:30", 0, 1.0)
	require.NoError(t, err)

	results := []*types.CloseApproach{linked, orphan}
	return func(yield func(*types.CloseApproach) bool) {
		for _, ca := range results {
			if !yield(ca) {
				return
			}
		}
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, WriteCSV(resultSeq(t), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus two result rows")

	assert.Equal(t, []string{
		"datetime_utc", "distance_au", "velocity_km_s",
		"designation", "name", "diameter_km", "potentially_hazardous",
	}, rows[0])

	assert.Equal(t, []string{
		"1900-01-01 00:00", "0.32", "5.5", "433", "Eros", "16.84", "false",
	}, rows[1])

	// Orphan row: empty NEO fields, unknown numerics stay NaN
	assert.Equal(t, "2000-06-15 18:30", rows[2][0])
	assert.Equal(t, "NaN", rows[2][1])
	assert.Equal(t, "", rows[2][3])
	assert.Equal(t, "NaN", rows[2][5])
	assert.Equal(t, "false", rows[2][6])
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, WriteJSON(resultSeq(t), path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(raw, &rows))
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, "1900-01-01 00:00", first["datetime_utc"])
	assert.Equal(t, 0.32, first["distance_au"])
	assert.Equal(t, 5.5, first["velocity_km_s"])

	neo, ok := first["neo"].(map[string]any)
	require.True(t, ok, "NEO fields are nested under a neo key")
	assert.Equal(t, "433", neo["designation"])
	assert.Equal(t, "Eros", neo["name"])
	assert.Equal(t, 16.84, neo["diameter_km"])
	assert.Equal(t, false, neo["potentially_hazardous"])

	// Orphan: unknown values become null and the NEO view is empty
	second := rows[1]
	assert.Nil(t, second["distance_au"])
	orphanNEO := second["neo"].(map[string]any)
	assert.Equal(t, "", orphanNEO["designation"])
	assert.Nil(t, orphanNEO["diameter_km"])
}

func TestWriteJSONEmptyResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	empty := func(yield func(*types.CloseApproach) bool) {}
	require.NoError(t, WriteJSON(empty, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(raw, &rows))
	assert.Empty(t, rows, "empty results produce an empty array, not null")
}

func TestWriteCSVBadPath(t *testing.T) {
	err := WriteCSV(resultSeq(t), filepath.Join(t.TempDir(), "missing", "out.csv"))
	require.Error(t, err)
}
