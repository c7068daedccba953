// Package display renders query results for the terminal and for machine
// consumption.
package display

import (
	"iter"
	"math"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/rnjane/neowatch/neo/types"
)

// ApproachTable renders a stream of close approaches as a terminal table.
// Returns the number of rows rendered.
func ApproachTable(results iter.Seq[*types.CloseApproach]) (int, error) {
	data := pterm.TableData{
		{"Datetime (UTC)", "Distance (au)", "Velocity (km/s)", "NEO", "Diameter (km)", "Hazardous"},
	}

	rows := 0
	for ca := range results {
		name := ca.Designation
		diameter := "unknown"
		hazardous := "-"
		if ca.NEO != nil {
			name = ca.NEO.Fullname()
			if !math.IsNaN(ca.NEO.Diameter) {
				diameter = strconv.FormatFloat(ca.NEO.Diameter, 'f', 3, 64)
			}
			hazardous = "no"
			if ca.NEO.Hazardous {
				hazardous = "yes"
			}
		}

		data = append(data, []string{
			ca.TimeStr(),
			floatCell(ca.Distance),
			floatCell(ca.Velocity),
			name,
			diameter,
			hazardous,
		})
		rows++
	}

	if rows == 0 {
		pterm.Info.Println("No close approaches match the query")
		return 0, nil
	}

	err := pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return rows, err
}

func floatCell(v float64) string {
	if math.IsNaN(v) {
		return "unknown"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
