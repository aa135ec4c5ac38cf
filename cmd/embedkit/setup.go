package main

import (
	"fmt"

	"github.com/fyrsmithlabs/embedkit/internal/config"
	"github.com/fyrsmithlabs/embedkit/pkg/embeddings"
	"github.com/spf13/cobra"
)

var forceDownload bool

func init() {
	setupCmd.Flags().BoolVarP(&forceDownload, "force", "f", false, "Force re-download even if ONNX runtime exists")
}

// setupCmd installs embedkit dependencies
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Install embedkit dependencies",
	Long: `Set up embedkit by downloading required dependencies.

Currently this downloads the ONNX runtime library required for local
embeddings. The library is installed to:
  ~/.config/embedkit/lib/

If the ONNX_PATH environment variable is set, that path takes precedence.

Examples:
  # Install the ONNX runtime
  embedkit setup

  # Force re-download even if already installed
  embedkit setup --force`,
	RunE: runSetup,
}

func runSetup(cmd *cobra.Command, args []string) error {
	if err := config.EnsureConfigDir(); err != nil {
		return err
	}

	// Check if already installed (unless --force)
	if !forceDownload {
		if path := embeddings.ONNXLibraryPath(); path != "" {
			cmd.Printf("ONNX runtime already installed at: %s\n", path)
			cmd.Println("Use --force to re-download.")
			return nil
		}
	}

	cmd.Printf("Downloading ONNX runtime v%s...\n", embeddings.DefaultONNXRuntimeVersion)

	if err := embeddings.DownloadONNXRuntime(cmd.Context(), ""); err != nil {
		return fmt.Errorf("failed to download ONNX runtime: %w", err)
	}

	// Verify installation
	path := embeddings.ONNXLibraryPath()
	if path == "" {
		return fmt.Errorf("download completed but library not found")
	}

	cmd.Printf("Successfully installed ONNX runtime to: %s\n", path)
	return nil
}
