package main

import (
	"encoding/json"
	"fmt"

	"github.com/fyrsmithlabs/embedkit/pkg/models"
	"github.com/spf13/cobra"
)

var modelsJSON bool

func init() {
	modelsCmd.Flags().BoolVar(&modelsJSON, "json", false, "emit the catalog as JSON")
}

// modelsCmd lists the embedding model catalog
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the embedding model catalog",
	Long: `List every model in the catalog with its embedding width.

Model weights download into the cache directory on first use.

Examples:
  # Human-readable table
  embedkit models

  # JSON for scripting
  embedkit models --json`,
	RunE: runModels,
}

func runModels(cmd *cobra.Command, args []string) error {
	catalog := models.Catalog()

	if modelsJSON {
		out, err := json.MarshalIndent(catalog, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal catalog: %w", err)
		}
		cmd.Println(string(out))
		return nil
	}

	cmd.Printf("%-62s %5s  %s\n", "MODEL", "NDIMS", "DESCRIPTION")
	for _, info := range catalog {
		cmd.Printf("%-62s %5d  %s\n", info.Model, info.Dimensions, info.Description)
	}
	return nil
}
