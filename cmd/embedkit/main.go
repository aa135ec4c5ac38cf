// Package main implements the embedkit CLI for local embedding operations.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// configPath overrides the default config file location
	configPath string
	// version information
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "embedkit",
	Short: "Local text embeddings over the fastembed runtime",
	Long: `embedkit generates text embeddings locally using ONNX models, with no
remote API involved. It provides commands for listing the model catalog,
embedding documents, and installing the ONNX runtime.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/embedkit/config.yaml)")
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(embedCmd)
	rootCmd.AddCommand(setupCmd)
}
