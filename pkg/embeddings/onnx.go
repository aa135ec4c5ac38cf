package embeddings

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

// DefaultONNXRuntimeVersion is the ONNX runtime version matching the
// onnxruntime_go bindings fastembed links against. Update this when
// bumping that dependency in go.mod.
const DefaultONNXRuntimeVersion = "1.23.0"

// ErrUnsupportedPlatform indicates the current OS/arch has no published
// ONNX runtime build.
var ErrUnsupportedPlatform = fmt.Errorf("unsupported platform")

const onnxReleaseURLTemplate = "https://github.com/microsoft/onnxruntime/releases/download/v%s/onnxruntime-%s-%s.tgz"

// platformArchives maps GOOS/GOARCH to ONNX release archive names.
var platformArchives = map[string]map[string]string{
	"linux": {
		"amd64": "linux-x64",
		"arm64": "linux-aarch64",
	},
	"darwin": {
		"amd64": "osx-x86_64",
		"arm64": "osx-arm64",
	},
}

// libraryNames maps GOOS to the shared library filename.
var libraryNames = map[string]string{
	"linux":  "libonnxruntime.so",
	"darwin": "libonnxruntime.dylib",
}

func platformArchive(goos, goarch string) (string, error) {
	archMap, ok := platformArchives[goos]
	if !ok {
		return "", fmt.Errorf("%w: %s/%s", ErrUnsupportedPlatform, goos, goarch)
	}
	arch, ok := archMap[goarch]
	if !ok {
		return "", fmt.Errorf("%w: %s/%s", ErrUnsupportedPlatform, goos, goarch)
	}
	return arch, nil
}

func libraryName(goos string) string {
	if name, ok := libraryNames[goos]; ok {
		return name
	}
	return "libonnxruntime.so"
}

// onnxInstallDir is where managed ONNX runtime installs live.
func onnxInstallDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".config", "embedkit", "lib")
}

// ONNXLibraryPath returns the path to the ONNX runtime library, checking
// the ONNX_PATH environment variable first and the managed install at
// ~/.config/embedkit/lib second. Returns empty when neither exists.
func ONNXLibraryPath() string {
	if envPath := os.Getenv("ONNX_PATH"); envPath != "" {
		return envPath
	}

	managedPath := filepath.Join(onnxInstallDir(), libraryName(runtime.GOOS))
	if _, err := os.Stat(managedPath); err == nil {
		return managedPath
	}

	return ""
}

// DownloadONNXRuntime downloads the ONNX runtime for the current platform
// into the managed install directory. An empty version selects
// DefaultONNXRuntimeVersion.
func DownloadONNXRuntime(ctx context.Context, version string) error {
	if version == "" {
		version = DefaultONNXRuntimeVersion
	}

	platform, err := platformArchive(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return err
	}

	destDir := onnxInstallDir()
	if err := os.MkdirAll(destDir, 0700); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	url := fmt.Sprintf(onnxReleaseURLTemplate, version, platform, version)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("downloading ONNX runtime: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed with status %d", resp.StatusCode)
	}

	if err := extractRuntimeLibs(resp.Body, destDir, version, platform); err != nil {
		return fmt.Errorf("extracting archive: %w", err)
	}

	return nil
}

// extractRuntimeLibs pulls the lib/ directory out of the ONNX release
// tarball. The archive ships the shared library plus version-suffixed
// symlinks; everything under lib/ lands flat in destDir.
func extractRuntimeLibs(r io.Reader, destDir, version, platform string) error {
	gzr, err := gzip.NewReader(r)
	if err != nil {
		return fmt.Errorf("creating gzip reader: %w", err)
	}
	defer gzr.Close()

	tr := tar.NewReader(gzr)
	libPrefix := fmt.Sprintf("onnxruntime-%s-%s/lib/", platform, version)
	libName := libraryName(runtime.GOOS)

	var foundMainLib bool

	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading tar: %w", err)
		}

		name := strings.TrimPrefix(header.Name, "./")
		if !strings.HasPrefix(name, libPrefix) || header.Typeflag == tar.TypeDir {
			continue
		}

		filename := filepath.Base(name)
		destPath := filepath.Join(destDir, filename)

		switch header.Typeflag {
		case tar.TypeSymlink:
			os.Remove(destPath)
			if err := os.Symlink(header.Linkname, destPath); err != nil {
				// The regular file the link points at still gets extracted.
				continue
			}
		default:
			outFile, err := os.OpenFile(destPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
			if err != nil {
				return fmt.Errorf("creating file %s: %w", filename, err)
			}
			if _, err := io.Copy(outFile, tr); err != nil {
				outFile.Close()
				return fmt.Errorf("writing file %s: %w", filename, err)
			}
			outFile.Close()
		}

		if filename == libName || strings.HasPrefix(filename, libName+".") {
			foundMainLib = true
		}
	}

	if !foundMainLib {
		return fmt.Errorf("library %s not found in archive", libName)
	}

	return nil
}

// EnsureONNXRuntime makes sure the ONNX runtime library is installed,
// downloading it when missing, and exports its location through
// ONNX_PATH so the fastembed bindings can locate it. Returns the library
// path.
func EnsureONNXRuntime(ctx context.Context, logger *zap.Logger) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	path := ONNXLibraryPath()
	if path == "" {
		logger.Info("ONNX runtime not found, downloading",
			zap.String("version", DefaultONNXRuntimeVersion),
			zap.String("platform", runtime.GOOS+"/"+runtime.GOARCH),
		)

		if err := DownloadONNXRuntime(ctx, ""); err != nil {
			return "", fmt.Errorf("downloading ONNX runtime: %w (set ONNX_PATH to use an existing install)", err)
		}

		path = ONNXLibraryPath()
		if path == "" {
			return "", fmt.Errorf("ONNX runtime downloaded but library not found")
		}
		logger.Info("ONNX runtime installed", zap.String("path", path))
	}

	if os.Getenv("ONNX_PATH") == "" {
		if err := os.Setenv("ONNX_PATH", path); err != nil {
			return "", fmt.Errorf("setting ONNX_PATH: %w", err)
		}
	}

	return path, nil
}
