package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rnjane/neowatch/display"
	"github.com/rnjane/neowatch/errors"
	"github.com/rnjane/neowatch/neo/types"
)

var (
	inspectPdes       string
	inspectName       string
	inspectApproaches bool
)

// InspectCmd represents the inspect command
var InspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Look up a single NEO by designation or name",
	Long: `inspect - Look up a single near-Earth object

Fetch one NEO by its primary designation (exact, case-insensitive) or by its
IAU name, and show its properties.

Examples:
  neowatch inspect --pdes 433
  neowatch inspect --name Eros
  neowatch inspect --pdes 433 --approaches  # also list its close approaches`,

	RunE: runInspectCommand,
}

func init() {
	InspectCmd.Flags().StringVarP(&inspectPdes, "pdes", "p", "", "Primary designation of the NEO")
	InspectCmd.Flags().StringVarP(&inspectName, "name", "n", "", "IAU name of the NEO")
	InspectCmd.Flags().BoolVarP(&inspectApproaches, "approaches", "a", false, "Also list the NEO's close approaches")
	InspectCmd.MarkFlagsOneRequired("pdes", "name")
	InspectCmd.MarkFlagsMutuallyExclusive("pdes", "name")
	registerDataFlags(InspectCmd)
}

func runInspectCommand(cmd *cobra.Command, args []string) error {
	database, err := loadDatabase(cmd)
	if err != nil {
		return err
	}

	var neo *types.NearEarthObject
	var ok bool
	if inspectPdes != "" {
		neo, ok = database.NEOByDesignation(inspectPdes)
		if !ok {
			return errors.WithHint(
				errors.NewNotFoundError("no NEO with designation %q", inspectPdes),
				"designations match exactly, e.g. 433 or 2020 AB")
		}
	} else {
		neo, ok = database.NEOByName(inspectName)
		if !ok {
			return errors.WithHint(
				errors.NewNotFoundError("no NEO named %q", inspectName),
				"names match exactly with the first letter capitalized, e.g. Eros")
		}
	}

	if display.ShouldOutputJSON(cmd) {
		return displayNEOJSON(neo)
	}

	fmt.Println(neo)
	if inspectApproaches {
		for _, ca := range neo.Approaches {
			fmt.Printf("- %s\n", ca)
		}
	}
	return nil
}

func displayNEOJSON(neo *types.NearEarthObject) error {
	view := struct {
		types.NEORecord
		Approaches []types.ApproachRecord `json:"approaches,omitempty"`
	}{NEORecord: neo.Serialize()}

	if inspectApproaches {
		for _, ca := range neo.Approaches {
			view.Approaches = append(view.Approaches, ca.Serialize())
		}
	}

	return display.OutputJSON(view)
}
